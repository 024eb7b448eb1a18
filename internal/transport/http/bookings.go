package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/armaan-vala/metting-room-management/internal/app"
	"github.com/armaan-vala/metting-room-management/internal/domain"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// BookingCreator is the minimal interface needed to book a slot.
type BookingCreator interface {
	CreateBooking(ctx context.Context, in app.CreateBookingInput) (domain.Booking, error)
}

// HandleBookSlot returns an HTTP handler for creating bookings.
func HandleBookSlot(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req bookSlotRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		bookingDate, err := time.Parse(dateLayout, req.BookingDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBookingDate, "booking_date must be formatted YYYY-MM-DD")
			return
		}

		booking, err := svc.CreateBooking(r.Context(), app.CreateBookingInput{
			RoomID:      req.RoomID,
			BookingDate: bookingDate,
			SlotHour:    req.SlotHour,
			TeamName:    req.TeamName,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidRoom):
				writeError(w, http.StatusBadRequest, codeInvalidRoomID, err.Error())
			case errors.Is(err, domain.ErrInvalidSlot):
				writeError(w, http.StatusBadRequest, codeInvalidSlotHour, err.Error())
			case errors.Is(err, domain.ErrSlotTaken):
				writeError(w, http.StatusConflict, codeSlotConflict, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := bookSlotResponse{
			Message: "Booking successful",
			ID:      booking.ID,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type bookSlotRequest struct {
	RoomID      int    `json:"room_id"`
	BookingDate string `json:"booking_date"`
	SlotHour    int    `json:"slot_hour"`
	TeamName    string `json:"team_name"`
}

type bookSlotResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
