package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salareserva/room-reservation-backend/internal/lifecycle"
	"github.com/salareserva/room-reservation-backend/internal/pkg/response"
)

type Handler struct {
	sweeper *lifecycle.Sweeper
}

func NewHandler(sweeper *lifecycle.Sweeper) *Handler {
	return &Handler{sweeper: sweeper}
}

// SweepExpired completes every active reservation that already ended.
func (h *Handler) SweepExpired(c *gin.Context) {
	result, err := h.sweeper.SweepExpired(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SweepResponse{
		Message:     fmt.Sprintf("%d expired reservation(s) completed", result.ProcessedCount),
		SweepResult: result,
	})
}

// Process runs the reminder and completion passes on demand.
func (h *Handler) Process(c *gin.Context) {
	var body ProcessBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid action, use: reminders, completions or all", err)
		return
	}

	ctx := c.Request.Context()
	resp := ProcessResponse{Success: true}

	switch body.Action {
	case ActionReminders:
		reports, err := h.sweeper.EmitReminders(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		resp.Reminders = reports
		resp.Message = "reminders processed"
	case ActionCompletions:
		report, err := h.sweeper.EmitCompletions(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		resp.Completions = report
		resp.Message = "completions processed"
	case ActionAll:
		result, err := h.sweeper.RunAll(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		resp.Reminders = result.Reminders
		resp.Completions = result.Completions
		resp.Sweep = result.Sweep
		resp.Message = "all notifications processed"
	}

	c.JSON(http.StatusOK, resp)
}
