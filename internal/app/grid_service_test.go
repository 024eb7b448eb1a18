package app

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/armaan-vala/metting-room-management/internal/domain"
)

func TestGridService_DashboardGrid(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	catalog := domain.DefaultCatalog()

	t.Run("empty date yields a complete grid of available cells", func(t *testing.T) {
		t.Parallel()
		svc := NewGridService(newFakeBookingRepo(), catalog)

		grid, err := svc.DashboardGrid(context.Background(), date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		assertGridShape(t, grid, catalog)

		for _, room := range grid {
			for _, cell := range room.Schedule {
				if cell.Status != SlotAvailable {
					t.Fatalf("room %d hour %d: expected available, got %s", room.RoomID, cell.SlotHour, cell.Status)
				}
				if cell.TeamName != nil {
					t.Fatalf("room %d hour %d: expected nil team name, got %q", room.RoomID, cell.SlotHour, *cell.TeamName)
				}
			}
		}
	})

	t.Run("booked slot is occupied and everything else is available", func(t *testing.T) {
		t.Parallel()
		repo := newFakeBookingRepo(domain.Booking{
			RoomID:      3,
			BookingDate: date,
			SlotHour:    14,
			TeamName:    "Alpha",
		})
		svc := NewGridService(repo, catalog)

		grid, err := svc.DashboardGrid(context.Background(), date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		assertGridShape(t, grid, catalog)

		for _, room := range grid {
			for _, cell := range room.Schedule {
				if room.RoomID == 3 && cell.SlotHour == 14 {
					if cell.Status != SlotOccupied {
						t.Fatalf("expected room 3 hour 14 occupied, got %s", cell.Status)
					}
					if cell.TeamName == nil || *cell.TeamName != "Alpha" {
						t.Fatalf("expected team Alpha, got %v", cell.TeamName)
					}
					if cell.TimeLabel != "2-3 PM" {
						t.Fatalf("expected label 2-3 PM, got %q", cell.TimeLabel)
					}
					continue
				}
				if cell.Status != SlotAvailable || cell.TeamName != nil {
					t.Fatalf("room %d hour %d: expected available/nil, got %s/%v",
						room.RoomID, cell.SlotHour, cell.Status, cell.TeamName)
				}
			}
		}
	})

	t.Run("rooms ascend and slots follow catalog order", func(t *testing.T) {
		t.Parallel()
		svc := NewGridService(newFakeBookingRepo(), catalog)

		grid, err := svc.DashboardGrid(context.Background(), date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for i, room := range grid {
			if room.RoomID != i+1 {
				t.Fatalf("expected room %d at position %d, got %d", i+1, i, room.RoomID)
			}
			for j, cell := range room.Schedule {
				want := catalog.Slots()[j]
				if cell.SlotHour != want.Hour || cell.TimeLabel != want.Label {
					t.Fatalf("room %d cell %d: expected (%d,%q), got (%d,%q)",
						room.RoomID, j, want.Hour, want.Label, cell.SlotHour, cell.TimeLabel)
				}
			}
		}
	})

	t.Run("bookings on other dates never leak in", func(t *testing.T) {
		t.Parallel()
		repo := newFakeBookingRepo(domain.Booking{
			RoomID:      3,
			BookingDate: date,
			SlotHour:    14,
			TeamName:    "Alpha",
		})
		svc := NewGridService(repo, catalog)

		grid, err := svc.DashboardGrid(context.Background(), date.AddDate(0, 0, 1))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, room := range grid {
			for _, cell := range room.Schedule {
				if cell.Status != SlotAvailable {
					t.Fatalf("room %d hour %d: expected available on other date, got %s",
						room.RoomID, cell.SlotHour, cell.Status)
				}
			}
		}
	})

	t.Run("repeated queries return identical grids", func(t *testing.T) {
		t.Parallel()
		repo := newFakeBookingRepo(
			domain.Booking{RoomID: 1, BookingDate: date, SlotHour: 10, TeamName: "Alpha"},
			domain.Booking{RoomID: 10, BookingDate: date, SlotHour: 18, TeamName: "Beta"},
		)
		svc := NewGridService(repo, catalog)

		first, err := svc.DashboardGrid(context.Background(), date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := svc.DashboardGrid(context.Background(), date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical grids across repeated queries")
		}
	})

	t.Run("storage errors propagate", func(t *testing.T) {
		t.Parallel()
		repo := newFakeBookingRepo()
		repo.err = errors.New("connection refused")
		svc := NewGridService(repo, catalog)

		if _, err := svc.DashboardGrid(context.Background(), date); err == nil {
			t.Fatalf("expected error from storage")
		}
	})
}

func assertGridShape(t *testing.T, grid []RoomSchedule, catalog domain.Catalog) {
	t.Helper()
	if len(grid) != catalog.TotalRooms() {
		t.Fatalf("expected %d room schedules, got %d", catalog.TotalRooms(), len(grid))
	}
	for _, room := range grid {
		if len(room.Schedule) != len(catalog.Slots()) {
			t.Fatalf("room %d: expected %d cells, got %d", room.RoomID, len(catalog.Slots()), len(room.Schedule))
		}
	}
}
