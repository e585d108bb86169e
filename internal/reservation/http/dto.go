package http

import (
	"time"

	"github.com/salareserva/room-reservation-backend/internal/pkg/request"
	"github.com/salareserva/room-reservation-backend/internal/reservation"
	roomHttp "github.com/salareserva/room-reservation-backend/internal/room/http"
	userHttp "github.com/salareserva/room-reservation-backend/internal/user/http"
)

// AvailabilityQuery defines query parameters for GET /reservations/availability.
type AvailabilityQuery struct {
	Room      string `form:"room" binding:"required"`
	Date      string `form:"date" binding:"required"`
	StartTime string `form:"startTime" binding:"required"`
	EndTime   string `form:"endTime" binding:"required"`
}

type AvailabilityResponse struct {
	Available bool                   `json:"available"`
	Conflicts []reservation.Conflict `json:"conflicts"`
	Message   string                 `json:"message"`
}

// CreateReservationBody mirrors the booking form. Nome and Ramal are sent by the
// form but the owner is always resolved from the matricula.
type CreateReservationBody struct {
	Nome       string          `json:"nome"`
	Matricula  request.FlexInt `json:"matricula" binding:"required,max=2147483647"`
	Ramal      string          `json:"ramal"`
	Local      string          `json:"local" binding:"required"`
	Data       string          `json:"data" binding:"required"`
	HoraInicio string          `json:"horaInicio" binding:"required"`
	HoraFim    string          `json:"horaFim" binding:"required"`
}

// RoomQuery binds ?room= for the per-room listing.
type RoomQuery struct {
	Room string `form:"room" binding:"required"`
}

type ReservationResponse struct {
	ID        string           `json:"id"`
	User      userHttp.UserTag `json:"user"`
	Room      roomHttp.RoomTag `json:"room"`
	StartTime time.Time        `json:"startDateTime"`
	EndTime   time.Time        `json:"endDateTime"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

func NewReservationResponse(b *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        b.ID,
		User:      userHttp.UserTag{Matricula: b.UserID, Name: b.UserName},
		Room:      roomHttp.RoomTag{ID: b.RoomID, Name: b.RoomName},
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
