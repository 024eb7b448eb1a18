package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/armaan-vala/metting-room-management/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueBookingSlot is the unique index over (room_id, booking_date,
// slot_hour). Violating it is the only expected write failure; everything
// else propagates as an infrastructure error.
const uniqueBookingSlot = "unique_booking_slot"

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts the booking and returns it with its assigned ID. The insert
// is a single statement, so a conflicting write leaves no partial state: the
// slot either commits to exactly one caller or fails with domain.ErrSlotTaken.
func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const stmt = `
INSERT INTO bookings (room_id, booking_date, slot_hour, team_name)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, stmt,
		booking.RoomID,
		booking.BookingDate,
		booking.SlotHour,
		booking.TeamName,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		if isSlotConflict(err) {
			return domain.Booking{}, domain.ErrSlotTaken
		}
		return domain.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// ListByDate returns every booking on the given calendar date in one scan,
// ordered by room then slot hour.
func (r *BookingRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	const query = `
SELECT id, room_id, booking_date, slot_hour, team_name, created_at
FROM bookings
WHERE booking_date = $1
ORDER BY room_id, slot_hour`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.RoomID, &b.BookingDate, &b.SlotHour, &b.TeamName, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	return bookings, nil
}

func isSlotConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueBookingSlot
}
