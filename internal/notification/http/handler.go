package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salareserva/room-reservation-backend/internal/notification"
	"github.com/salareserva/room-reservation-backend/internal/pkg/request"
	"github.com/salareserva/room-reservation-backend/internal/pkg/response"
)

type Handler struct {
	service notification.Service
}

func NewHandler(service notification.Service) *Handler {
	return &Handler{service: service}
}

// List returns the notifications of ?matricula=, newest first.
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, notification.ErrMatriculaRequired.Message, err)
		return
	}

	list, err := h.service.ListByUser(c.Request.Context(), int(q.Matricula))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]NotificationResponse, len(list))
	for i, n := range list {
		items[i] = NewNotificationResponse(n)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateNotificationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	n, err := h.service.Create(c.Request.Context(), notification.CreateRequest{
		UserID:        int(body.UserID),
		ReservationID: body.ReservationID,
		Title:         body.Title,
		Message:       body.Message,
		Type:          notification.Type(body.Type),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewNotificationResponse(n))
}

// MarkAllRead flags every unread notification of the user as read.
func (h *Handler) MarkAllRead(c *gin.Context) {
	var body MarkReadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, notification.ErrMatriculaRequired.Message, err)
		return
	}

	if _, err := h.service.MarkAllRead(c.Request.Context(), int(body.Matricula)); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
