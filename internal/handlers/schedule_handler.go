package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/contract"
)

type ScheduleHandler struct {
	scheduleService contract.ScheduleService
}

func New(scheduleService contract.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// HandleGenerate triggers a generation run for one week. Form values:
// week_start (YYYY-MM-DD, required) and location_id (optional, defaults
// to the first active location).
func (h *ScheduleHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	weekStart, locationID, err := parseWeekParams(r)
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	run, err := h.scheduleService.GenerateSchedule(r.Context(), weekStart, locationID)
	if err != nil {
		log.Printf("Schedule generation failed: %v", err)
		h.respondWithError(w, http.StatusInternalServerError, "schedule generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"run_id":     run.RunID,
		"week_start": run.WeekStart.Format("2006-01-02"),
		"location":   run.LocationID,
		"created":    len(run.Shifts),
		"dropped":    run.Dropped,
		"shifts":     run.Shifts,
	})
}

// HandleClear wipes a week's persisted shifts ahead of a fresh run.
func (h *ScheduleHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	weekStart, locationID, err := parseWeekParams(r)
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.scheduleService.ClearWeek(r.Context(), weekStart, locationID)
	if err != nil {
		log.Printf("Schedule clear failed: %v", err)
		h.respondWithError(w, http.StatusInternalServerError, "schedule clear failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"week_start": weekStart.Format("2006-01-02"),
		"deleted":    deleted,
	})
}

func parseWeekParams(r *http.Request) (time.Time, int64, error) {
	raw := r.FormValue("week_start")
	if raw == "" {
		return time.Time{}, 0, fmt.Errorf("week_start is required")
	}

	weekStart, err := time.ParseInLocation("2006-01-02", raw, domain.BusinessTime())
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid week_start: %s", raw)
	}

	var locationID int64
	if raw := r.FormValue("location_id"); raw != "" {
		locationID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("invalid location_id: %s", raw)
		}
	}

	return weekStart, locationID, nil
}

func (h *ScheduleHandler) respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
