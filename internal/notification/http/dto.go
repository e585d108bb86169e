package http

import (
	"time"

	"github.com/salareserva/room-reservation-backend/internal/notification"
	"github.com/salareserva/room-reservation-backend/internal/pkg/request"
)

// ListQuery defines query parameters for GET /notifications.
type ListQuery struct {
	Matricula request.FlexInt `form:"matricula"`
}

type CreateNotificationBody struct {
	UserID        request.FlexInt `json:"userId"`
	ReservationID *string         `json:"reservationId"`
	Title         string          `json:"title"`
	Message       string          `json:"message"`
	Type          string          `json:"type"`
}

type MarkReadBody struct {
	Matricula request.FlexInt `json:"matricula"`
}

type ReservationInfo struct {
	ID        string    `json:"id"`
	RoomName  string    `json:"roomName"`
	StartTime time.Time `json:"startDateTime"`
	EndTime   time.Time `json:"endDateTime"`
	Status    string    `json:"status"`
}

type NotificationResponse struct {
	ID            string           `json:"id"`
	UserID        int              `json:"userId"`
	ReservationID *string          `json:"reservationId"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Type          string           `json:"type"`
	IsRead        bool             `json:"isRead"`
	CreatedAt     time.Time        `json:"createdAt"`
	Reservation   *ReservationInfo `json:"reservation,omitempty"`
}

func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:            n.ID,
		UserID:        n.UserID,
		ReservationID: n.ReservationID,
		Title:         n.Title,
		Message:       n.Message,
		Type:          string(n.Type),
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
	if n.Reservation != nil {
		resp.Reservation = &ReservationInfo{
			ID:        n.Reservation.ID,
			RoomName:  n.Reservation.RoomName,
			StartTime: n.Reservation.StartTime,
			EndTime:   n.Reservation.EndTime,
			Status:    n.Reservation.Status,
		}
	}
	return resp
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
