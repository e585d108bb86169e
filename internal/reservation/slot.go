package reservation

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	displayDateLayout = "02/01/2006"
)

// Slot is a concrete interval composed from a civil date and two times of day.
type Slot struct {
	Date  time.Time // midnight of the day, in the application location
	Start time.Time
	End   time.Time
}

// ParseSlot composes date (YYYY-MM-DD) with start and end (HH:MM, seconds optional)
// in loc. It fails with ErrInvalidInput on malformed values and ErrInvalidTimeRange
// when end is not after start.
func ParseSlot(date, start, end string, loc *time.Location) (Slot, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return Slot{}, ErrInvalidInput.WithDetails("data must be formatted as YYYY-MM-DD")
	}

	startAt, err := atTimeOfDay(day, start)
	if err != nil {
		return Slot{}, ErrInvalidInput.WithDetails("horaInicio must be formatted as HH:MM")
	}
	endAt, err := atTimeOfDay(day, end)
	if err != nil {
		return Slot{}, ErrInvalidInput.WithDetails("horaFim must be formatted as HH:MM")
	}

	if !endAt.After(startAt) {
		return Slot{}, ErrInvalidTimeRange
	}

	return Slot{Date: day, Start: startAt, End: endAt}, nil
}

func atTimeOfDay(day time.Time, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	layout := TimeLayout
	if strings.Count(clock, ":") == 2 {
		layout = "15:04:05"
	}
	tod, err := time.Parse(layout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, day.Location()), nil
}

// FormatTime renders t as HH:MM in loc.
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimeLayout)
}

// FormatDate renders t as DD/MM/YYYY in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(displayDateLayout)
}
