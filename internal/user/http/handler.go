package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salareserva/room-reservation-backend/internal/pkg/request"
	"github.com/salareserva/room-reservation-backend/internal/pkg/response"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

type UserHandler struct {
	userService user.Service
}

func NewHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get looks a user up by the employee number in the path.
func (h *UserHandler) Get(c *gin.Context) {
	var req request.ByMatriculaRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, user.ErrInvalidMatricula)
		return
	}

	h.respond(c, req.Matricula)
}

// Lookup is the query string variant used by the login form (?matricula=).
func (h *UserHandler) Lookup(c *gin.Context) {
	var req request.MatriculaQuery
	if err := c.ShouldBindQuery(&req); err != nil || req.Matricula == nil {
		response.Error(c, user.ErrInvalidMatricula)
		return
	}

	h.respond(c, *req.Matricula)
}

func (h *UserHandler) respond(c *gin.Context, matricula int) {
	u, err := h.userService.GetByMatricula(c.Request.Context(), matricula)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u))
}
