package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/salareserva/room-reservation-backend/internal/notification"
)

type notificationRepo struct{ s *Store }

func (r notificationRepo) insert(n *notification.Notification) {
	n.ID = uuid.NewString()
	n.IsRead = false
	n.CreatedAt = r.s.now()
	stored := *n
	stored.Reservation = nil
	r.s.notifications[n.ID] = stored
	r.s.seq++
	r.s.notifSeq[n.ID] = r.s.seq
}

func (r notificationRepo) checkRefs(n *notification.Notification) error {
	if _, ok := r.s.users[n.UserID]; !ok {
		return notification.ErrUnknownReference
	}
	if n.ReservationID != nil {
		if _, ok := r.s.reservations[*n.ReservationID]; !ok {
			return notification.ErrUnknownReference
		}
	}
	return nil
}

func (r notificationRepo) exists(reservationID string, t notification.Type) bool {
	for _, n := range r.s.notifications {
		if n.ReservationID != nil && *n.ReservationID == reservationID && n.Type == t {
			return true
		}
	}
	return false
}

func (r notificationRepo) Create(_ context.Context, n *notification.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(n); err != nil {
		return err
	}
	if n.Type.OncePerReservation() && n.ReservationID != nil && r.exists(*n.ReservationID, n.Type) {
		return notification.ErrAlreadyExists
	}
	r.insert(n)
	return nil
}

func (r notificationRepo) CreateOnce(_ context.Context, n *notification.Notification) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(n); err != nil {
		return false, err
	}
	if n.ReservationID != nil && r.exists(*n.ReservationID, n.Type) {
		return false, nil
	}
	r.insert(n)
	return true, nil
}

func (r notificationRepo) Exists(_ context.Context, reservationID string, t notification.Type) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.exists(reservationID, t), nil
}

func (r notificationRepo) ListByUser(_ context.Context, userID int) ([]*notification.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*notification.Notification
	for _, n := range r.s.notifications {
		if n.UserID != userID {
			continue
		}
		n := n
		if n.ReservationID != nil {
			if b, ok := r.s.reservations[*n.ReservationID]; ok {
				n.Reservation = &notification.ReservationInfo{
					ID:        b.ID,
					RoomName:  b.RoomName,
					StartTime: b.StartTime,
					EndTime:   b.EndTime,
					Status:    string(b.Status),
				}
			}
		}
		out = append(out, &n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.s.notifSeq[out[i].ID] > r.s.notifSeq[out[j].ID]
	})
	return out, nil
}

func (r notificationRepo) MarkAllRead(_ context.Context, userID int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var count int64
	for id, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			r.s.notifications[id] = n
			count++
		}
	}
	return count, nil
}

func (r notificationRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notifications[id]; !ok {
		return notification.ErrNotFound
	}
	delete(r.s.notifications, id)
	delete(r.s.notifSeq, id)
	return nil
}
