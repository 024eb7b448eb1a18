package app

import (
	"context"
	"time"

	"github.com/armaan-vala/metting-room-management/internal/domain"
)

// BookingRepository is the storage surface the booking service depends on.
// Create must enforce slot uniqueness at the storage layer and report a taken
// slot as domain.ErrSlotTaken.
type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
}

type BookingService struct {
	repo    BookingRepository
	catalog domain.Catalog
}

func NewBookingService(repo BookingRepository, catalog domain.Catalog) *BookingService {
	return &BookingService{
		repo:    repo,
		catalog: catalog,
	}
}

type CreateBookingInput struct {
	RoomID      int
	BookingDate time.Time
	SlotHour    int
	TeamName    string
}

// CreateBooking validates the request against the catalog and persists it.
// The storage unique index is the sole arbiter of conflicts: no availability
// pre-check happens here, so concurrent callers racing for the same slot are
// resolved by the database, never by request ordering in this process.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.Booking, error) {
	if !s.catalog.RoomExists(in.RoomID) {
		return domain.Booking{}, domain.ErrInvalidRoom
	}
	if _, ok := s.catalog.SlotLabel(in.SlotHour); !ok {
		return domain.Booking{}, domain.ErrInvalidSlot
	}

	booking := domain.Booking{
		RoomID:      in.RoomID,
		BookingDate: domain.DateOnly(in.BookingDate),
		SlotHour:    in.SlotHour,
		TeamName:    in.TeamName,
	}
	return s.repo.Create(ctx, booking)
}
