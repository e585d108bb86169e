package reservation

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Intervals that only touch (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Overlaps reports whether the reservation blocks the interval [start, end).
// Only active reservations block.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.Status == StatusActive && Overlaps(r.StartTime, r.EndTime, start, end)
}
