package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salareserva/room-reservation-backend/internal/pkg/request"
	"github.com/salareserva/room-reservation-backend/internal/pkg/response"
	"github.com/salareserva/room-reservation-backend/internal/reservation"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

// Availability answers whether a room is free for a slot and lists every conflict.
func (h *Handler) Availability(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "required parameters: room, date, startTime, endTime", err)
		return
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), reservation.CheckRequest{
		RoomName:  q.Room,
		Date:      q.Date,
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
	})
	if err != nil {
		if errors.Is(err, reservation.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"available": false, "error": reservation.ErrRoomNotFound.Message})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		Available: result.Available,
		Conflicts: response.List(result.Conflicts),
		Message:   result.Message,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		Matricula: int(body.Matricula),
		RoomName:  body.Local,
		Date:      body.Data,
		StartTime: body.HoraInicio,
		EndTime:   body.HoraFim,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(b))
}

// List returns active reservations, optionally only those of ?matricula=.
func (h *Handler) List(c *gin.Context) {
	var q request.MatriculaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, user.ErrInvalidMatricula.Message, err)
		return
	}

	list, err := h.service.ListActive(c.Request.Context(), q.Matricula)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(list))
}

// ListByRoom returns the active reservations of ?room=.
func (h *Handler) ListByRoom(c *gin.Context) {
	var q RoomQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "room parameter is required", err)
		return
	}

	list, err := h.service.ListActiveByRoom(c.Request.Context(), q.Room)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(list))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewReservationResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	if _, err := h.service.Cancel(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "reservation cancelled"})
}

func toResponses(list []*reservation.Reservation) []ReservationResponse {
	items := make([]ReservationResponse, len(list))
	for i, b := range list {
		items[i] = NewReservationResponse(b)
	}
	return items
}
