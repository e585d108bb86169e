// Package memstore keeps every repository in memory behind one lock. It is the
// storage double for service and handler tests; production always runs on Postgres.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/salareserva/room-reservation-backend/internal/notification"
	"github.com/salareserva/room-reservation-backend/internal/pkg/clock"
	"github.com/salareserva/room-reservation-backend/internal/reservation"
	"github.com/salareserva/room-reservation-backend/internal/room"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

type Store struct {
	mu    sync.Mutex
	clock clock.Clock

	users         map[int]user.User
	rooms         map[string]room.Room // keyed by id
	reservations  map[string]reservation.Reservation
	notifications map[string]notification.Notification

	// seq orders notifications created at the same instant.
	seq      int64
	notifSeq map[string]int64
}

// New returns an empty store. Timestamps come from clk, or the system clock when nil.
func New(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.System()
	}
	return &Store{
		clock:         clk,
		users:         make(map[int]user.User),
		rooms:         make(map[string]room.Room),
		reservations:  make(map[string]reservation.Reservation),
		notifications: make(map[string]notification.Notification),
		notifSeq:      make(map[string]int64),
	}
}

func (s *Store) Users() user.Repository                 { return userRepo{s} }
func (s *Store) Rooms() room.Repository                 { return roomRepo{s} }
func (s *Store) Reservations() reservation.Repository   { return reservationRepo{s} }
func (s *Store) Notifications() notification.Repository { return notificationRepo{s} }

// AddUser stores u, replacing any user with the same matricula.
func (s *Store) AddUser(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Matricula] = u
}

// AddRoom stores rm and returns it with an id and creation time filled in.
func (s *Store) AddRoom(rm room.Room) room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rm.ID == "" {
		rm.ID = uuid.NewString()
	}
	if rm.CreatedAt.IsZero() {
		rm.CreatedAt = s.clock.Now()
	}
	for i := range rm.Resources {
		if rm.Resources[i].ID == "" {
			rm.Resources[i].ID = uuid.NewString()
		}
	}
	s.rooms[rm.ID] = rm
	return rm
}

// AddReservation stores r as is, skipping the overlap check. Tests use it to set up
// past or already terminal reservations.
func (s *Store) AddReservation(r reservation.Reservation) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = reservation.StatusActive
	}
	now := s.clock.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	s.fillNames(&r)
	s.reservations[r.ID] = r
	return &r
}

func (s *Store) fillNames(r *reservation.Reservation) {
	if u, ok := s.users[r.UserID]; ok {
		r.UserName = u.Name
	}
	if rm, ok := s.rooms[r.RoomID]; ok {
		r.RoomName = rm.Name
	}
}

func (s *Store) roomByName(name string) (room.Room, bool) {
	for _, rm := range s.rooms {
		if rm.Name == name {
			return rm, true
		}
	}
	return room.Room{}, false
}

func sortReservations(list []*reservation.Reservation) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].StartTime.Equal(list[j].StartTime) {
			return list[i].StartTime.Before(list[j].StartTime)
		}
		return list[i].ID < list[j].ID
	})
}

func copyOf[T any](v T) *T {
	return &v
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}
