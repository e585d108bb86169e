package user

import (
	"math"
	"net/http"

	"github.com/salareserva/room-reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "user not found")
	ErrInvalidMatricula = apperror.New(http.StatusBadRequest, "matricula must be a number between 1 and 2147483647")
)

// MaxMatricula is the largest employee number the users table can store.
const MaxMatricula = math.MaxInt32

// ValidMatricula reports whether n fits a stored employee number.
func ValidMatricula(n int) bool {
	return n > 0 && n <= MaxMatricula
}

// User is an employee identified by their employee number (matricula).
// Users are provisioned outside this service; the reservation flow only reads them.
type User struct {
	Matricula int
	Name      string
	Ramal     string // phone extension
	Sector    string
}
