package app

import (
	"context"
	"fmt"
	"time"

	"github.com/armaan-vala/metting-room-management/internal/domain"
)

// BookingLister is the storage surface the grid service depends on.
type BookingLister interface {
	ListByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// SlotState marks a grid cell as free or taken.
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotOccupied  SlotState = "occupied"
)

// SlotStatus is one cell of the dashboard grid.
type SlotStatus struct {
	TimeLabel string
	SlotHour  int
	Status    SlotState
	TeamName  *string
}

// RoomSchedule is one room's row of the grid, cells in catalog slot order.
type RoomSchedule struct {
	RoomID   int
	Schedule []SlotStatus
}

type GridService struct {
	repo    BookingLister
	catalog domain.Catalog
}

func NewGridService(repo BookingLister, catalog domain.Catalog) *GridService {
	return &GridService{
		repo:    repo,
		catalog: catalog,
	}
}

type slotKey struct {
	roomID   int
	slotHour int
}

// DashboardGrid builds the full occupancy view for one date: every room and
// every catalog slot is emitted exactly once, occupied or not. The store is
// consulted with a single date scan; grid construction itself never queries.
func (s *GridService) DashboardGrid(ctx context.Context, date time.Time) ([]RoomSchedule, error) {
	bookings, err := s.repo.ListByDate(ctx, domain.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	occupied := make(map[slotKey]domain.Booking, len(bookings))
	for _, b := range bookings {
		occupied[slotKey{roomID: b.RoomID, slotHour: b.SlotHour}] = b
	}

	grid := make([]RoomSchedule, 0, s.catalog.TotalRooms())
	for roomID := 1; roomID <= s.catalog.TotalRooms(); roomID++ {
		schedule := make([]SlotStatus, 0, len(s.catalog.Slots()))
		for _, slot := range s.catalog.Slots() {
			cell := SlotStatus{
				TimeLabel: slot.Label,
				SlotHour:  slot.Hour,
				Status:    SlotAvailable,
			}
			if booking, ok := occupied[slotKey{roomID: roomID, slotHour: slot.Hour}]; ok {
				team := booking.TeamName
				cell.Status = SlotOccupied
				cell.TeamName = &team
			}
			schedule = append(schedule, cell)
		}
		grid = append(grid, RoomSchedule{RoomID: roomID, Schedule: schedule})
	}
	return grid, nil
}
