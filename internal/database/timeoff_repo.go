package database

import (
	"fmt"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/contract"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

type timeOffRepo struct {
	db dbConn
}

func newTimeOffRepo(db dbConn) contract.TimeOffRepo {
	return &timeOffRepo{db: db}
}

func (r *timeOffRepo) Create(request *entity.TimeOffRequest) error {
	query := `
		INSERT INTO time_off_requests (employee_id, start_date, end_date, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query, request.EmployeeID, request.StartDate, request.EndDate, request.Status)
	if err != nil {
		return fmt.Errorf("failed to create time off request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	request.ID = id
	return nil
}

func (r *timeOffRepo) GetApprovedByRange(start, end time.Time) ([]*entity.TimeOffRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, status
		FROM time_off_requests
		WHERE status = ? AND start_date < ? AND end_date >= ?
		ORDER BY start_date ASC
	`

	rows, err := r.db.Query(query, domain.LeaveStatusApproved, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to get time off requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.TimeOffRequest
	for rows.Next() {
		request := &entity.TimeOffRequest{}
		err := rows.Scan(&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate, &request.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time off request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, nil
}
