package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/alam-gir/agency/internal/interface/http"
)

// AuthModule wires the session lifecycle routes.
// Public: register, login, token rotation, password reset.
// Protected: logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, auth gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
	rg.POST("/auth/reset-token", m.Handler.Refresh)
	rg.POST("/auth/reset/init", m.Handler.ForgotPassword)
	rg.POST("/auth/reset/confirm", m.Handler.ResetPassword)

	auth := rg.Group("/")
	auth.Use(m.Auth)
	{
		auth.POST("/auth/logout", m.Handler.Logout)
	}
}
