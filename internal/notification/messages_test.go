package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salareserva/room-reservation-backend/internal/reservation"
)

func TestCompose(t *testing.T) {
	r := &reservation.Reservation{
		RoomName:  "Sala A",
		StartTime: time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		typ       Type
		wantTitle string
		wantPart  string
	}{
		{typ: TypeReservationCreated, wantTitle: "Reserva Confirmada", wantPart: "foi confirmada para 10/06/2025 das 13:00 às 14:30"},
		{typ: TypeReservationCancelled, wantTitle: "Reserva Cancelada", wantPart: "foi cancelada"},
		{typ: TypeReminder3Days, wantTitle: "Lembrete - Reserva em 3 dias", wantPart: "em 3 dias (10/06/2025)"},
		{typ: TypeReminder1Day, wantTitle: "Lembrete - Reserva amanhã", wantPart: "amanhã (10/06/2025)"},
		{typ: TypeReservationCompleted, wantTitle: "Reserva Concluída", wantPart: "foi concluída"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			title, message := Compose(tt.typ, r, time.UTC)
			assert.Equal(t, tt.wantTitle, title)
			assert.Contains(t, message, tt.wantPart)
			assert.Contains(t, message, `sala "Sala A"`)
		})
	}
}

func TestCompose_UsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	r := &reservation.Reservation{
		RoomName:  "Sala A",
		StartTime: time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
	}

	_, message := Compose(TypeReservationCreated, r, loc)
	assert.Contains(t, message, "das 10:00 às 11:00")
}

func TestType(t *testing.T) {
	assert.True(t, TypeReservationCreated.Valid())
	assert.False(t, Type("SOMETHING_ELSE").Valid())

	assert.True(t, TypeReminder3Days.OncePerReservation())
	assert.True(t, TypeReminder1Day.OncePerReservation())
	assert.True(t, TypeReservationCompleted.OncePerReservation())
	assert.False(t, TypeReservationCreated.OncePerReservation())
	assert.False(t, TypeReservationCancelled.OncePerReservation())
}
