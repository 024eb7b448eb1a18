package domain

import "time"

// Booking is a committed reservation of one room for one office-hour slot on
// one calendar date. Bookings are created once and never updated or deleted.
type Booking struct {
	ID          int64
	RoomID      int
	BookingDate time.Time
	SlotHour    int
	TeamName    string
	CreatedAt   time.Time
}

// DateOnly normalizes t to midnight UTC so calendar dates compare cleanly
// regardless of how the caller constructed the time value.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
