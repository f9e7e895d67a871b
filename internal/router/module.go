package router

import "github.com/gin-gonic/gin"

// Module is one slice of the API surface (auth, user, category, ...) that
// registers its own routes on the versioned group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
