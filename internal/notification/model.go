package notification

import (
	"net/http"
	"time"

	"github.com/salareserva/room-reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "notification not found")
	ErrMatriculaRequired = apperror.New(http.StatusBadRequest, "matricula is required")
	ErrInvalidInput      = apperror.New(http.StatusBadRequest, "required fields: userId, title, message, type")
	ErrInvalidType       = apperror.New(http.StatusBadRequest, "invalid notification type")
	ErrAlreadyExists     = apperror.New(http.StatusConflict, "notification of this type already exists for the reservation")
	ErrUnknownReference  = apperror.New(http.StatusBadRequest, "user or reservation does not exist")
)

type Type string

const (
	TypeReservationCreated   Type = "RESERVATION_CREATED"
	TypeReservationCancelled Type = "RESERVATION_CANCELLED"
	TypeReminder3Days        Type = "RESERVATION_REMINDER_3_DAYS"
	TypeReminder1Day         Type = "RESERVATION_REMINDER_1_DAY"
	TypeReservationCompleted Type = "RESERVATION_COMPLETED"
)

func (t Type) Valid() bool {
	switch t {
	case TypeReservationCreated, TypeReservationCancelled,
		TypeReminder3Days, TypeReminder1Day, TypeReservationCompleted:
		return true
	}
	return false
}

// OncePerReservation reports whether at most one notification of this type may
// exist for a given reservation.
func (t Type) OncePerReservation() bool {
	return t == TypeReminder3Days || t == TypeReminder1Day || t == TypeReservationCompleted
}

// Notification is an in-app message for a user. Only IsRead ever changes after creation.
type Notification struct {
	ID            string
	UserID        int
	ReservationID *string
	Title         string
	Message       string
	Type          Type
	IsRead        bool
	CreatedAt     time.Time

	// Populated on listing when the notification references a reservation.
	Reservation *ReservationInfo
}

// ReservationInfo is the slice of the referenced reservation shown next to a notification.
type ReservationInfo struct {
	ID        string
	RoomName  string
	StartTime time.Time
	EndTime   time.Time
	Status    string
}
