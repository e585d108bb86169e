package app_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notifHttp "github.com/salareserva/room-reservation-backend/internal/notification/http"
	reservationHttp "github.com/salareserva/room-reservation-backend/internal/reservation/http"
	roomHttp "github.com/salareserva/room-reservation-backend/internal/room/http"
	userHttp "github.com/salareserva/room-reservation-backend/internal/user/http"
)

func TestUsers(t *testing.T) {
	a := newTestApp(t)

	w := a.executeRequest("GET", "/users/1001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	u := decode[userHttp.UserResponse](t, w)
	assert.Equal(t, userHttp.UserResponse{Matricula: 1001, Name: "Ana Souza", Ramal: "2001", Sector: "TI"}, u)

	w = a.executeRequest("GET", "/users?matricula=1002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bruno Lima", decode[userHttp.UserResponse](t, w).Name)

	w = a.executeRequest("GET", "/users/4242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.executeRequest("GET", "/users/3000000000", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.executeRequest("GET", "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.executeRequest("GET", "/users", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRooms(t *testing.T) {
	a := newTestApp(t)

	w := a.executeRequest("GET", "/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms := decode[[]roomHttp.RoomResponse](t, w)
	require.Len(t, rooms, 1, "unavailable rooms are not listed")
	assert.Equal(t, "Sala A", rooms[0].Name)
	assert.Equal(t, 8, rooms[0].Capacity)
	require.Len(t, rooms[0].Resources, 2)
	assert.Equal(t, "Projetor", rooms[0].Resources[0].Name)

	w = a.executeRequest("GET", "/rooms/Sala%20B", nil)
	require.Equal(t, http.StatusOK, w.Code)
	b := decode[roomHttp.RoomResponse](t, w)
	assert.False(t, b.IsAvailable)
	assert.NotNil(t, b.Resources)

	w = a.executeRequest("GET", "/rooms/Sala%20Z", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotifications(t *testing.T) {
	a := newTestApp(t)

	w := a.executeRequest("POST", "/reservations", booking(1001, "Sala A", "2025-06-10", "10:00", "11:00"))
	require.Equal(t, http.StatusCreated, w.Code)
	res := decode[reservationHttp.ReservationResponse](t, w)

	t.Run("Reservation creation notifies the owner", func(t *testing.T) {
		w := a.executeRequest("GET", "/notifications?matricula=1001", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[[]notifHttp.NotificationResponse](t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "RESERVATION_CREATED", list[0].Type)
		assert.Equal(t, "Reserva Confirmada", list[0].Title)
		assert.False(t, list[0].IsRead)
		require.NotNil(t, list[0].Reservation)
		assert.Equal(t, "Sala A", list[0].Reservation.RoomName)
	})

	t.Run("List requires matricula", func(t *testing.T) {
		w := a.executeRequest("GET", "/notifications", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var createdID string
	t.Run("Create", func(t *testing.T) {
		body := map[string]any{
			"userId":        1001,
			"reservationId": res.ID,
			"title":         "Lembrete - Reserva amanhã",
			"message":       "amanhã",
			"type":          "RESERVATION_REMINDER_1_DAY",
		}
		w := a.executeRequest("POST", "/notifications", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		createdID = decode[notifHttp.NotificationResponse](t, w).ID

		w = a.executeRequest("POST", "/notifications", body)
		assert.Equal(t, http.StatusConflict, w.Code)

		body["type"] = "PROMO"
		w = a.executeRequest("POST", "/notifications", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = a.executeRequest("POST", "/notifications", map[string]any{"userId": 1001})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("The reminder pass does not duplicate a manual reminder", func(t *testing.T) {
		w := a.executeRequest("POST", "/notifications/process", map[string]string{"action": "reminders"})
		require.Equal(t, http.StatusOK, w.Code)

		w = a.executeRequest("GET", "/notifications?matricula=1001", nil)
		reminders := 0
		for _, n := range decode[[]notifHttp.NotificationResponse](t, w) {
			if n.Type == "RESERVATION_REMINDER_1_DAY" {
				reminders++
			}
		}
		assert.Equal(t, 1, reminders)
	})

	t.Run("Mark all read", func(t *testing.T) {
		w := a.executeRequest("PATCH", "/notifications", map[string]any{"matricula": "1001"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, notifHttp.SuccessResponse{Success: true}, decode[notifHttp.SuccessResponse](t, w))

		w = a.executeRequest("GET", "/notifications?matricula=1001", nil)
		for _, n := range decode[[]notifHttp.NotificationResponse](t, w) {
			assert.True(t, n.IsRead)
		}

		w = a.executeRequest("PATCH", "/notifications", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := a.executeRequest("DELETE", "/notifications/"+createdID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = a.executeRequest("DELETE", "/notifications/"+createdID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Cancellation notifies the owner", func(t *testing.T) {
		w := a.executeRequest("DELETE", "/reservations/"+res.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = a.executeRequest("GET", "/notifications?matricula=1001", nil)
		list := decode[[]notifHttp.NotificationResponse](t, w)
		require.NotEmpty(t, list)
		assert.Equal(t, "RESERVATION_CANCELLED", list[0].Type)
	})
}
