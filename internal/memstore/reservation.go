package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salareserva/room-reservation-backend/internal/reservation"
)

type reservationRepo struct{ s *Store }

func (r reservationRepo) overlapping(roomID string, start, end time.Time) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, b := range r.s.reservations {
		if b.RoomID == roomID && b.Overlaps(start, end) {
			out = append(out, copyOf(b))
		}
	}
	sortReservations(out)
	return out
}

// CreateIfFree holds the store lock across the check and the insert.
func (r reservationRepo) CreateIfFree(_ context.Context, b *reservation.Reservation) ([]*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[b.RoomID]; !ok {
		return nil, reservation.ErrRoomUnavailable
	}
	if _, ok := r.s.users[b.UserID]; !ok {
		return nil, reservation.ErrUserNotFound
	}
	if !b.EndTime.After(b.StartTime) {
		return nil, reservation.ErrInvalidTimeRange
	}

	if conflicts := r.overlapping(b.RoomID, b.StartTime, b.EndTime); len(conflicts) > 0 {
		return conflicts, nil
	}

	now := r.s.now()
	b.ID = uuid.NewString()
	b.Status = reservation.StatusActive
	b.CreatedAt = now
	b.UpdatedAt = now
	r.s.fillNames(b)
	r.s.reservations[b.ID] = *b
	return nil, nil
}

func (r reservationRepo) FindOverlapping(_ context.Context, roomID string, start, end time.Time) ([]*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.overlapping(roomID, start, end), nil
}

func (r reservationRepo) GetByID(_ context.Context, id string) (*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.reservations[id]
	if !ok {
		return nil, reservation.ErrNotFound
	}
	return copyOf(b), nil
}

func (r reservationRepo) List(_ context.Context, filter reservation.Filter) ([]*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*reservation.Reservation
	for _, b := range r.s.reservations {
		if filter.Matches(&b) {
			out = append(out, copyOf(b))
		}
	}
	sortReservations(out)
	return out, nil
}

func (r reservationRepo) Cancel(_ context.Context, id string) (*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.reservations[id]
	if !ok {
		return nil, reservation.ErrNotFound
	}
	if b.Status != reservation.StatusActive {
		return nil, reservation.ErrNotActive
	}
	b.Status = reservation.StatusCancelled
	b.UpdatedAt = r.s.now()
	r.s.reservations[id] = b
	return copyOf(b), nil
}

func (r reservationRepo) CompleteExpired(_ context.Context, now time.Time) ([]*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*reservation.Reservation
	for id, b := range r.s.reservations {
		if b.Status != reservation.StatusActive || !b.EndTime.Before(now) {
			continue
		}
		b.Status = reservation.StatusCompleted
		b.UpdatedAt = r.s.now()
		r.s.reservations[id] = b
		out = append(out, copyOf(b))
	}
	sortReservations(out)
	return out, nil
}

func (r reservationRepo) MarkCompleted(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.reservations[id]
	if !ok || b.Status != reservation.StatusActive {
		return false, nil
	}
	b.Status = reservation.StatusCompleted
	b.UpdatedAt = r.s.now()
	r.s.reservations[id] = b
	return true, nil
}
