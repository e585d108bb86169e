package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	reservations := g.Group("/reservations")
	{
		reservations.POST("/sweep-expired", h.SweepExpired)
		reservations.GET("/sweep-expired", h.SweepExpired)
	}

	g.POST("/notifications/process", h.Process)
}
