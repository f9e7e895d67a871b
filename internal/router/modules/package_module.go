package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	handlers "github.com/alam-gir/agency/internal/interface/http"
	"github.com/alam-gir/agency/internal/interface/middleware"
)

// PackageModule: reads are public, writes are admin only. Every mutable
// field gets its own PATCH route.
type PackageModule struct {
	Handler *handlers.PackageHandler
	Auth    gin.HandlerFunc
}

func NewPackageModule(h *handlers.PackageHandler, auth gin.HandlerFunc) *PackageModule {
	return &PackageModule{Handler: h, Auth: auth}
}

func (m *PackageModule) Register(rg *gin.RouterGroup) {
	rg.GET("/package", m.Handler.List)
	rg.GET("/package/:id", m.Handler.Get)

	admin := rg.Group("/package")
	admin.Use(m.Auth, middleware.Role(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		admin.POST("/create", m.Handler.Create)
		admin.PATCH("/:id/update/title", m.Handler.UpdateTitle)
		admin.PATCH("/:id/update/description", m.Handler.UpdateDescription)
		admin.PATCH("/:id/update/status", m.Handler.UpdateStatus)
		admin.PATCH("/:id/update/category", m.Handler.UpdateCategory)
		admin.PATCH("/:id/update/price", m.Handler.UpdatePrice)
		admin.PATCH("/:id/update/deliverytime", m.Handler.UpdateDeliveryTime)
		admin.PATCH("/:id/update/revisiontime", m.Handler.UpdateRevisionTime)
		admin.PATCH("/:id/update/features", m.Handler.UpdateFeatures)
		admin.PATCH("/:id/update/icon", m.Handler.UpdateIcon)
	}
}
