package http

import (
	"github.com/salareserva/room-reservation-backend/internal/lifecycle"
)

const (
	ActionReminders   = "reminders"
	ActionCompletions = "completions"
	ActionAll         = "all"
)

// ProcessBody selects which notification pass POST /notifications/process runs.
type ProcessBody struct {
	Action string `json:"action" binding:"required,oneof=reminders completions all"`
}

type SweepResponse struct {
	Message string `json:"message"`
	*lifecycle.SweepResult
}

type ProcessResponse struct {
	Success     bool                   `json:"success"`
	Message     string                 `json:"message"`
	Reminders   []lifecycle.Report     `json:"reminders,omitempty"`
	Completions *lifecycle.Report      `json:"completions,omitempty"`
	Sweep       *lifecycle.SweepResult `json:"sweep,omitempty"`
}
