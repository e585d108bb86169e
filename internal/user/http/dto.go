package http

import "github.com/salareserva/room-reservation-backend/internal/user"

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	Matricula int    `json:"matricula"`
	Name      string `json:"name"`
	Ramal     string `json:"ramal"`
	Sector    string `json:"sector"`
}

// UserTag is a brief representation of a user embedded in other resources.
type UserTag struct {
	Matricula int    `json:"matricula"`
	Name      string `json:"name"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		Matricula: u.Matricula,
		Name:      u.Name,
		Ramal:     u.Ramal,
		Sector:    u.Sector,
	}
}
