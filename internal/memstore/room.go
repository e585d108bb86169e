package memstore

import (
	"context"
	"sort"

	"github.com/salareserva/room-reservation-backend/internal/room"
)

type roomRepo struct{ s *Store }

func (r roomRepo) GetByName(_ context.Context, name string) (*room.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rm, ok := r.s.roomByName(name)
	if !ok {
		return nil, room.ErrNotFound
	}
	return copyOf(rm), nil
}

func (r roomRepo) ListAvailable(_ context.Context) ([]*room.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*room.Room
	for _, rm := range r.s.rooms {
		if rm.IsAvailable {
			out = append(out, copyOf(rm))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
