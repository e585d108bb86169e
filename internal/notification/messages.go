package notification

import (
	"fmt"
	"time"

	"github.com/salareserva/room-reservation-backend/internal/reservation"
)

// Compose renders the title and body shown to the user for a reservation event.
func Compose(t Type, r *reservation.Reservation, loc *time.Location) (title, message string) {
	date := reservation.FormatDate(r.StartTime, loc)
	start := reservation.FormatTime(r.StartTime, loc)
	end := reservation.FormatTime(r.EndTime, loc)

	switch t {
	case TypeReservationCreated:
		return "Reserva Confirmada",
			fmt.Sprintf("Sua reserva da sala \"%s\" foi confirmada para %s das %s às %s.", r.RoomName, date, start, end)
	case TypeReservationCancelled:
		return "Reserva Cancelada",
			fmt.Sprintf("Sua reserva da sala \"%s\" para %s das %s às %s foi cancelada.", r.RoomName, date, start, end)
	case TypeReminder3Days:
		return "Lembrete - Reserva em 3 dias",
			fmt.Sprintf("Lembre-se: você tem uma reserva da sala \"%s\" em 3 dias (%s) das %s às %s.", r.RoomName, date, start, end)
	case TypeReminder1Day:
		return "Lembrete - Reserva amanhã",
			fmt.Sprintf("Lembre-se: você tem uma reserva da sala \"%s\" amanhã (%s) das %s às %s.", r.RoomName, date, start, end)
	case TypeReservationCompleted:
		return "Reserva Concluída",
			fmt.Sprintf("Sua reserva da sala \"%s\" foi concluída. Obrigado por utilizar nossos serviços! (%s das %s às %s)", r.RoomName, date, start, end)
	}
	return string(t), ""
}
