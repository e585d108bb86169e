package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salareserva/room-reservation-backend/internal/notification"
	"github.com/salareserva/room-reservation-backend/internal/pkg/clock"
	"github.com/salareserva/room-reservation-backend/internal/reservation"
	"github.com/salareserva/room-reservation-backend/internal/room"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

func seeded(t *testing.T) (*Store, room.Room) {
	t.Helper()
	s := New(clock.NewFixed(time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)))
	s.AddUser(user.User{Matricula: 1001, Name: "Ana Souza"})
	return s, s.AddRoom(room.Room{Name: "Sala A", IsAvailable: true})
}

func TestCreateIfFree(t *testing.T) {
	s, rm := seeded(t)
	ctx := context.Background()
	repo := s.Reservations()

	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	first := &reservation.Reservation{UserID: 1001, RoomID: rm.ID, StartTime: start, EndTime: start.Add(time.Hour)}
	conflicts, err := repo.CreateIfFree(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Ana Souza", first.UserName)
	assert.Equal(t, "Sala A", first.RoomName)

	clash := &reservation.Reservation{UserID: 1001, RoomID: rm.ID, StartTime: start.Add(30 * time.Minute), EndTime: start.Add(90 * time.Minute)}
	conflicts, err = repo.CreateIfFree(ctx, clash)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, first.ID, conflicts[0].ID)
	assert.Empty(t, clash.ID, "nothing is written on conflict")

	_, err = repo.CreateIfFree(ctx, &reservation.Reservation{UserID: 1001, RoomID: "missing", StartTime: start, EndTime: start.Add(time.Hour)})
	assert.ErrorIs(t, err, reservation.ErrRoomUnavailable)

	_, err = repo.CreateIfFree(ctx, &reservation.Reservation{UserID: 9999, RoomID: rm.ID, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour)})
	assert.ErrorIs(t, err, reservation.ErrUserNotFound)

	_, err = repo.CreateIfFree(ctx, &reservation.Reservation{UserID: 1001, RoomID: rm.ID, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(2 * time.Hour)})
	assert.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
}

func TestMarkCompleted_Conditional(t *testing.T) {
	s, rm := seeded(t)
	ctx := context.Background()

	r := s.AddReservation(reservation.Reservation{UserID: 1001, RoomID: rm.ID, StartTime: time.Date(2025, 6, 9, 6, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 6, 9, 7, 0, 0, 0, time.UTC)})

	done, err := s.Reservations().MarkCompleted(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = s.Reservations().MarkCompleted(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, done, "second transition is a no-op")

	swept, err := s.Reservations().CompleteExpired(ctx, time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, swept)
}

func TestCreateOnce(t *testing.T) {
	s, rm := seeded(t)
	ctx := context.Background()
	r := s.AddReservation(reservation.Reservation{UserID: 1001, RoomID: rm.ID, StartTime: time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC)})

	n := func() *notification.Notification {
		return &notification.Notification{UserID: 1001, ReservationID: &r.ID, Title: "t", Message: "m", Type: notification.TypeReminder3Days}
	}

	created, err := s.Notifications().CreateOnce(ctx, n())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Notifications().CreateOnce(ctx, n())
	require.NoError(t, err)
	assert.False(t, created)

	assert.ErrorIs(t, s.Notifications().Create(ctx, n()), notification.ErrAlreadyExists)

	list, err := s.Notifications().ListByUser(ctx, 1001)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
