package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	handlers "github.com/alam-gir/agency/internal/interface/http"
	"github.com/alam-gir/agency/internal/interface/middleware"
)

// UserModule wires the profile surface. Everything requires a session; role
// reassignment additionally requires super-admin.
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/user")
	auth.Use(m.Auth)
	{
		auth.GET("/profile", m.Handler.Profile)
		auth.PATCH("/update/avatar", m.Handler.UpdateAvatar)
		auth.PATCH("/update/password", m.Handler.ChangePassword)
		auth.PATCH("/update/email", m.Handler.ChangeEmail)
		auth.PATCH("/update/phone", m.Handler.ChangePhone)
		auth.PATCH("/update/name", m.Handler.ChangeName)

		auth.PATCH("/update/role", middleware.Role(entity.RoleSuperAdmin), m.Handler.ChangeRole)
	}
}
