package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salareserva/room-reservation-backend/internal/user"
)

func TestService_RejectsMatriculaOutOfRange(t *testing.T) {
	svc := user.NewService(nil)

	for _, m := range []int{0, -5, user.MaxMatricula + 1} {
		_, err := svc.GetByMatricula(context.Background(), m)
		assert.True(t, errors.Is(err, user.ErrInvalidMatricula), "matricula %d", m)
	}
	assert.True(t, user.ValidMatricula(user.MaxMatricula))
}
