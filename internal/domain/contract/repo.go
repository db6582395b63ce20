package contract

import (
	"context"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Employee() EmployeeRepo
	Shift() ShiftRepo
	Leave() LeaveRepo
	TimeOff() TimeOffRepo
	Settings() SettingsRepo
	Location() LocationRepo
}

// EmployeeRepo defines the contract for the employee roster
type EmployeeRepo interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	GetActiveByLocation(locationID int64) ([]*entity.Employee, error)
}

// ShiftRepo defines the contract for persisted shifts
type ShiftRepo interface {
	Create(shift *entity.Shift) error
	CreateBatch(shifts []*entity.Shift) error
	GetByRange(locationID int64, start, end time.Time) ([]*entity.Shift, error)
	DeleteRange(locationID int64, start, end time.Time) (int64, error)
}

// LeaveRepo defines the contract for paid and unpaid leave entries
type LeaveRepo interface {
	CreatePaid(leave *entity.PaidLeave) error
	CreateUnpaid(leave *entity.UnpaidLeave) error
	GetPaidByRange(start, end time.Time) ([]*entity.PaidLeave, error)
	GetUnpaidByRange(start, end time.Time) ([]*entity.UnpaidLeave, error)
}

// TimeOffRepo defines the contract for approved time-off requests
type TimeOffRepo interface {
	Create(request *entity.TimeOffRequest) error
	GetApprovedByRange(start, end time.Time) ([]*entity.TimeOffRequest, error)
}

// SettingsRepo defines the contract for coverage targets
type SettingsRepo interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}

// LocationRepo defines the contract for store locations
type LocationRepo interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	GetActive() ([]*entity.Location, error)
}
