package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/pkg/response"
)

// Role allows the request through only when the authenticated user holds one
// of the given roles. Must run after Auth.
func Role(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized request", nil)
			c.Abort()
			return
		}
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		response.Error[any](c, http.StatusForbidden, "you don't have permission for this action", nil)
		c.Abort()
	}
}
