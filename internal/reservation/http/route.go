package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/reservations")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/availability", h.Availability)
		group.GET("/room", h.ListByRoom)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Delete)
	}
}
