package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/notifications")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.PATCH("", h.MarkAllRead)
		group.DELETE("/:id", h.Delete)
	}
}
