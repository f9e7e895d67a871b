package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	handlers "github.com/alam-gir/agency/internal/interface/http"
	"github.com/alam-gir/agency/internal/interface/middleware"
)

// CategoryModule: reads are public, writes are admin only.
type CategoryModule struct {
	Handler *handlers.CategoryHandler
	Auth    gin.HandlerFunc
}

func NewCategoryModule(h *handlers.CategoryHandler, auth gin.HandlerFunc) *CategoryModule {
	return &CategoryModule{Handler: h, Auth: auth}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/category", m.Handler.List)
	rg.GET("/category/:id", m.Handler.Get)

	admin := rg.Group("/category")
	admin.Use(m.Auth, middleware.Role(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		admin.POST("/create", m.Handler.Create)
		admin.PATCH("/:id/update/title", m.Handler.UpdateTitle)
		admin.PATCH("/:id/update/icon", m.Handler.UpdateIcon)
	}
}
