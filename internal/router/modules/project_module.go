package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	handlers "github.com/alam-gir/agency/internal/interface/http"
	"github.com/alam-gir/agency/internal/interface/middleware"
)

// ProjectModule: reads are public, writes are admin only. The image and file
// collections are managed through their own sub-routes.
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	Auth    gin.HandlerFunc
}

func NewProjectModule(h *handlers.ProjectHandler, auth gin.HandlerFunc) *ProjectModule {
	return &ProjectModule{Handler: h, Auth: auth}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	rg.GET("/project", m.Handler.List)
	rg.GET("/project/:id", m.Handler.Get)

	admin := rg.Group("/project")
	admin.Use(m.Auth, middleware.Role(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		admin.POST("/create", m.Handler.Create)
		admin.PATCH("/:id/update/title", m.Handler.UpdateTitle)
		admin.PATCH("/:id/update/description", m.Handler.UpdateDescription)
		admin.PATCH("/:id/update/status", m.Handler.UpdateStatus)
		admin.PATCH("/:id/update/category", m.Handler.UpdateCategory)
		admin.DELETE("/:id/delete", m.Handler.Delete)

		admin.POST("/:id/upload/image", m.Handler.AddImage)
		admin.DELETE("/:id/delete/image/:assetID", m.Handler.RemoveImage)
		admin.POST("/:id/upload/file", m.Handler.AddFile)
		admin.DELETE("/:id/delete/file/:assetID", m.Handler.RemoveFile)
	}
}
