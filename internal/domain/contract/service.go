package contract

import (
	"context"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// ScheduleService is the schedule-generation surface exposed to handlers.
type ScheduleService interface {
	GenerateSchedule(ctx context.Context, weekStart time.Time, locationID int64) (*entity.ScheduleRun, error)
	ClearWeek(ctx context.Context, weekStart time.Time, locationID int64) (int64, error)
}
