package database

import (
	"context"
	"fmt"

	"github.com/storeops/shift-scheduler/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	employeeRepo contract.EmployeeRepo
	shiftRepo    contract.ShiftRepo
	leaveRepo    contract.LeaveRepo
	timeOffRepo  contract.TimeOffRepo
	settingsRepo contract.SettingsRepo
	locationRepo contract.LocationRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	conn := db.conn
	i.employeeRepo = newEmployeeRepo(conn)
	i.shiftRepo = newShiftRepo(conn)
	i.leaveRepo = newLeaveRepo(conn)
	i.timeOffRepo = newTimeOffRepo(conn)
	i.settingsRepo = newSettingsRepo(conn)
	i.locationRepo = newLocationRepo(conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		employeeRepo: newEmployeeRepo(db),
		shiftRepo:    newShiftRepo(db),
		leaveRepo:    newLeaveRepo(db),
		timeOffRepo:  newTimeOffRepo(db),
		settingsRepo: newSettingsRepo(db),
		locationRepo: newLocationRepo(db),
	}
}

func (i *instance) Employee() contract.EmployeeRepo { return i.employeeRepo }
func (i *instance) Shift() contract.ShiftRepo       { return i.shiftRepo }
func (i *instance) Leave() contract.LeaveRepo       { return i.leaveRepo }
func (i *instance) TimeOff() contract.TimeOffRepo   { return i.timeOffRepo }
func (i *instance) Settings() contract.SettingsRepo { return i.settingsRepo }
func (i *instance) Location() contract.LocationRepo { return i.locationRepo }

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
