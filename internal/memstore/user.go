package memstore

import (
	"context"

	"github.com/salareserva/room-reservation-backend/internal/user"
)

type userRepo struct{ s *Store }

func (r userRepo) GetByMatricula(_ context.Context, matricula int) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[matricula]
	if !ok {
		return nil, user.ErrNotFound
	}
	return copyOf(u), nil
}
