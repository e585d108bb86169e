package reservation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	slot, err := ParseSlot("2025-06-10", "10:00", "11:30", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), slot.Date)
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, loc), slot.Start)
	assert.Equal(t, time.Date(2025, 6, 10, 11, 30, 0, 0, loc), slot.End)
	assert.Equal(t, 13, slot.Start.UTC().Hour(), "civil time is read in the configured zone")

	withSeconds, err := ParseSlot("2025-06-10", "10:00:00", "11:30:00", loc)
	require.NoError(t, err)
	assert.Equal(t, slot.Start, withSeconds.Start)
}

func TestParseSlot_Errors(t *testing.T) {
	tests := []struct {
		name             string
		date, start, end string
		want             error
	}{
		{name: "bad date", date: "10/06/2025", start: "10:00", end: "11:00", want: ErrInvalidInput},
		{name: "bad start", date: "2025-06-10", start: "10h", end: "11:00", want: ErrInvalidInput},
		{name: "bad end", date: "2025-06-10", start: "10:00", end: "25:00", want: ErrInvalidInput},
		{name: "end equals start", date: "2025-06-10", start: "10:00", end: "10:00", want: ErrInvalidTimeRange},
		{name: "end before start", date: "2025-06-10", start: "11:00", end: "10:00", want: ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSlot(tt.date, tt.start, tt.end, time.UTC)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 6, 10, 13, 5, 0, 0, time.UTC)
	assert.Equal(t, "13:05", FormatTime(ts, time.UTC))
	assert.Equal(t, "10/06/2025", FormatDate(ts, time.UTC))
}
