package app

import (
	"context"
	"sync"
	"time"

	"github.com/armaan-vala/metting-room-management/internal/domain"
)

// fakeBookingRepo mimics the Postgres repository: insert is atomic and the
// slot triple is unique, so it can back both unit and concurrency tests.
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[fakeSlotKey]domain.Booking
	err      error
}

type fakeSlotKey struct {
	roomID int
	date   string
	hour   int
}

func newFakeBookingRepo(seed ...domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		nextID:   1,
		bookings: make(map[fakeSlotKey]domain.Booking),
	}
	for _, b := range seed {
		key := fakeSlotKey{
			roomID: b.RoomID,
			date:   domain.DateOnly(b.BookingDate).Format("2006-01-02"),
			hour:   b.SlotHour,
		}
		b.ID = repo.nextID
		repo.nextID++
		repo.bookings[key] = b
	}
	return repo
}

func (r *fakeBookingRepo) Create(_ context.Context, booking domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return domain.Booking{}, r.err
	}

	key := fakeSlotKey{
		roomID: booking.RoomID,
		date:   domain.DateOnly(booking.BookingDate).Format("2006-01-02"),
		hour:   booking.SlotHour,
	}
	if _, exists := r.bookings[key]; exists {
		return domain.Booking{}, domain.ErrSlotTaken
	}

	booking.ID = r.nextID
	r.nextID++
	r.bookings[key] = booking
	return booking, nil
}

func (r *fakeBookingRepo) ListByDate(_ context.Context, date time.Time) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}

	want := domain.DateOnly(date).Format("2006-01-02")
	var out []domain.Booking
	for key, b := range r.bookings {
		if key.date == want {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}
