package room

import (
	"net/http"
	"time"

	"github.com/salareserva/room-reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "room not found")
	ErrEmptyName   = apperror.New(http.StatusBadRequest, "room name is required")
	ErrUnavailable = apperror.New(http.StatusNotFound, "room not found or not available")
)

// Room is a bookable meeting room. Name is the human facing key.
type Room struct {
	ID          string
	Name        string
	Capacity    int
	IsAvailable bool
	Resources   []Resource
	CreatedAt   time.Time
}

// Resource is a display-only line item of equipment in a room (projector, TV, ...).
type Resource struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
