package reservation

import (
	"net/http"
	"time"

	"github.com/salareserva/room-reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot conflicts with an existing reservation")
	ErrNotActive        = apperror.New(http.StatusConflict, "reservation is no longer active")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrDateInPast       = apperror.New(http.StatusBadRequest, "reservation date cannot be before today")
	ErrInvalidInput     = apperror.New(http.StatusBadRequest, "invalid input parameters")
	ErrUserNotFound     = apperror.New(http.StatusBadRequest, "user not found, check the matricula")
	ErrRoomUnavailable  = apperror.New(http.StatusBadRequest, "room not found or not available")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Reservation books a room for the half-open interval [StartTime, EndTime).
type Reservation struct {
	ID        string
	UserID    int // owner's matricula
	UserName  string
	RoomID    string
	RoomName  string
	StartTime time.Time
	EndTime   time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows reservation listings. Zero values do not filter.
type Filter struct {
	UserID      *int
	RoomID      string
	Status      Status
	StartFrom   *time.Time // start_time >= StartFrom
	StartBefore *time.Time // start_time < StartBefore
	EndFrom     *time.Time // end_time >= EndFrom
	EndUntil    *time.Time // end_time <= EndUntil
}

// Matches applies the filter to a single reservation.
func (f Filter) Matches(r *Reservation) bool {
	if f.UserID != nil && r.UserID != *f.UserID {
		return false
	}
	if f.RoomID != "" && r.RoomID != f.RoomID {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.StartFrom != nil && r.StartTime.Before(*f.StartFrom) {
		return false
	}
	if f.StartBefore != nil && !r.StartTime.Before(*f.StartBefore) {
		return false
	}
	if f.EndFrom != nil && r.EndTime.Before(*f.EndFrom) {
		return false
	}
	if f.EndUntil != nil && r.EndTime.After(*f.EndUntil) {
		return false
	}
	return true
}
