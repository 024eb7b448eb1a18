package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/armaan-vala/metting-room-management/internal/app"
)

// GridProvider is the minimal interface needed to serve the dashboard grid.
type GridProvider interface {
	DashboardGrid(ctx context.Context, date time.Time) ([]app.RoomSchedule, error)
}

// HandleDashboardGrid returns an HTTP handler serving the per-date occupancy
// grid for every room and office-hour slot.
func HandleDashboardGrid(svc GridProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		raw := r.URL.Query().Get("target_date")
		if raw == "" {
			writeError(w, http.StatusBadRequest, codeInvalidTargetDate, "target_date query parameter is required")
			return
		}
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTargetDate, "target_date must be formatted YYYY-MM-DD")
			return
		}

		grid, err := svc.DashboardGrid(r.Context(), date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]roomScheduleResponse, 0, len(grid))
		for _, room := range grid {
			schedule := make([]slotStatusResponse, 0, len(room.Schedule))
			for _, cell := range room.Schedule {
				schedule = append(schedule, slotStatusResponse{
					TimeLabel: cell.TimeLabel,
					SlotHour:  cell.SlotHour,
					Status:    string(cell.Status),
					TeamName:  cell.TeamName,
				})
			}
			resp = append(resp, roomScheduleResponse{
				RoomID:   room.RoomID,
				Schedule: schedule,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type roomScheduleResponse struct {
	RoomID   int                  `json:"room_id"`
	Schedule []slotStatusResponse `json:"schedule"`
}

type slotStatusResponse struct {
	TimeLabel string  `json:"time_label"`
	SlotHour  int     `json:"slot_hour"`
	Status    string  `json:"status"`
	TeamName  *string `json:"team_name"`
}
