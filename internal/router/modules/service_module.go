package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	handlers "github.com/alam-gir/agency/internal/interface/http"
	"github.com/alam-gir/agency/internal/interface/middleware"
)

// ServiceModule: reads and search are public, writes are admin only.
type ServiceModule struct {
	Handler *handlers.ServiceHandler
	Auth    gin.HandlerFunc
}

func NewServiceModule(h *handlers.ServiceHandler, auth gin.HandlerFunc) *ServiceModule {
	return &ServiceModule{Handler: h, Auth: auth}
}

func (m *ServiceModule) Register(rg *gin.RouterGroup) {
	rg.GET("/service", m.Handler.List)
	rg.GET("/service/search", m.Handler.SearchServices)
	rg.GET("/service/:id", m.Handler.Get)

	admin := rg.Group("/service")
	admin.Use(m.Auth, middleware.Role(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		admin.POST("/create", m.Handler.Create)
		admin.PATCH("/:id/update", m.Handler.Update)
		admin.PATCH("/:id/update/icon", m.Handler.UpdateIcon)
	}
}
