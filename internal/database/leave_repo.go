package database

import (
	"fmt"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain/contract"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

type leaveRepo struct {
	db dbConn
}

func newLeaveRepo(db dbConn) contract.LeaveRepo {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) CreatePaid(leave *entity.PaidLeave) error {
	query := `
		INSERT INTO paid_leaves (employee_id, date, minutes, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query, leave.EmployeeID, leave.Date, leave.Minutes, leave.Status)
	if err != nil {
		return fmt.Errorf("failed to create paid leave: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	leave.ID = id
	return nil
}

func (r *leaveRepo) CreateUnpaid(leave *entity.UnpaidLeave) error {
	query := `
		INSERT INTO unpaid_leaves (employee_id, date, status)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, leave.EmployeeID, leave.Date, leave.Status)
	if err != nil {
		return fmt.Errorf("failed to create unpaid leave: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	leave.ID = id
	return nil
}

func (r *leaveRepo) GetPaidByRange(start, end time.Time) ([]*entity.PaidLeave, error) {
	query := `
		SELECT id, employee_id, date, minutes, status
		FROM paid_leaves
		WHERE date >= ? AND date < ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get paid leaves: %w", err)
	}
	defer rows.Close()

	var leaves []*entity.PaidLeave
	for rows.Next() {
		leave := &entity.PaidLeave{}
		err := rows.Scan(&leave.ID, &leave.EmployeeID, &leave.Date, &leave.Minutes, &leave.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan paid leave: %w", err)
		}
		leaves = append(leaves, leave)
	}

	return leaves, nil
}

func (r *leaveRepo) GetUnpaidByRange(start, end time.Time) ([]*entity.UnpaidLeave, error) {
	query := `
		SELECT id, employee_id, date, status
		FROM unpaid_leaves
		WHERE date >= ? AND date < ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get unpaid leaves: %w", err)
	}
	defer rows.Close()

	var leaves []*entity.UnpaidLeave
	for rows.Next() {
		leave := &entity.UnpaidLeave{}
		err := rows.Scan(&leave.ID, &leave.EmployeeID, &leave.Date, &leave.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unpaid leave: %w", err)
		}
		leaves = append(leaves, leave)
	}

	return leaves, nil
}
