package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salareserva/room-reservation-backend/internal/pkg/response"
	"github.com/salareserva/room-reservation-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

// List returns every available room with its resource line items.
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}
	c.JSON(http.StatusOK, response.List(items))
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewRoomResponse(r))
}
