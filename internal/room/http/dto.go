package http

import (
	"time"

	"github.com/salareserva/room-reservation-backend/internal/room"
)

type RoomResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Capacity    int             `json:"capacity"`
	IsAvailable bool            `json:"isAvailable"`
	Resources   []room.Resource `json:"resources"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// RoomTag is a brief representation of a room embedded in other resources.
type RoomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	resources := r.Resources
	if resources == nil {
		resources = make([]room.Resource, 0)
	}
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		IsAvailable: r.IsAvailable,
		Resources:   resources,
		CreatedAt:   r.CreatedAt,
	}
}
