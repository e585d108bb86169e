package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers user lookup routes.
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler) {
	group := g.Group("/users")
	{
		group.GET("", h.Lookup)
		group.GET("/:matricula", h.Get)
	}
}
