package database

import (
	"fmt"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain/contract"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

type shiftRepo struct {
	db dbConn
}

func newShiftRepo(db dbConn) contract.ShiftRepo {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (employee_id, location_id, start_time, end_time)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		shift.EmployeeID,
		shift.LocationID,
		shift.StartTime,
		shift.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	shift.ID = id
	return nil
}

// CreateBatch inserts a generated week in one pass. Callers wrap it in
// WithTransaction so a failed write leaves no partial schedule behind.
func (r *shiftRepo) CreateBatch(shifts []*entity.Shift) error {
	for _, shift := range shifts {
		if err := r.Create(shift); err != nil {
			return err
		}
	}
	return nil
}

func (r *shiftRepo) GetByRange(locationID int64, start, end time.Time) ([]*entity.Shift, error) {
	query := `
		SELECT id, employee_id, location_id, start_time, end_time
		FROM shifts
		WHERE location_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(query, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*entity.Shift
	for rows.Next() {
		shift := &entity.Shift{}
		err := rows.Scan(
			&shift.ID,
			&shift.EmployeeID,
			&shift.LocationID,
			&shift.StartTime,
			&shift.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}

func (r *shiftRepo) DeleteRange(locationID int64, start, end time.Time) (int64, error) {
	query := `DELETE FROM shifts WHERE location_id = ? AND start_time >= ? AND start_time < ?`

	result, err := r.db.Exec(query, locationID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to delete shifts: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted shifts: %w", err)
	}
	return deleted, nil
}
