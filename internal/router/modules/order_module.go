package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	handlers "github.com/alam-gir/agency/internal/interface/http"
	"github.com/alam-gir/agency/internal/interface/middleware"
)

// OrderModule: placement is public, everything else is admin only.
type OrderModule struct {
	Handler *handlers.OrderHandler
	Auth    gin.HandlerFunc
}

func NewOrderModule(h *handlers.OrderHandler, auth gin.HandlerFunc) *OrderModule {
	return &OrderModule{Handler: h, Auth: auth}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	rg.POST("/order/place", m.Handler.Place)

	admin := rg.Group("/order")
	admin.Use(m.Auth, middleware.Role(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		admin.GET("", m.Handler.List)
		admin.GET("/:id", m.Handler.Get)
		admin.PATCH("/:id/update/status", m.Handler.UpdateStatus)
	}
}
