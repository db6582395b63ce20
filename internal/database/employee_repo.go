package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/storeops/shift-scheduler/internal/domain/contract"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

type employeeRepo struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(employee *entity.Employee) error {
	nonWorking, err := json.Marshal(employee.NonWorkingDays)
	if err != nil {
		return fmt.Errorf("failed to encode non-working days: %w", err)
	}

	query := `
		INSERT INTO employees (full_name, job_code, max_weekly_hours, preferred_days, non_working_days,
			is_active, hide_from_schedule, hire_date, employment_type, location_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		employee.FullName,
		employee.JobCode,
		employee.MaxWeeklyHours,
		employee.PreferredDays,
		string(nonWorking),
		employee.IsActive,
		employee.HideFromSchedule,
		employee.HireDate,
		employee.EmploymentType,
		employee.LocationID,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = id
	return nil
}

const employeeColumns = `id, full_name, job_code, max_weekly_hours, preferred_days, non_working_days,
	is_active, hide_from_schedule, hire_date, employment_type, location_id`

func scanEmployee(scan func(dest ...interface{}) error) (*entity.Employee, error) {
	employee := &entity.Employee{}
	var nonWorking string
	err := scan(
		&employee.ID,
		&employee.FullName,
		&employee.JobCode,
		&employee.MaxWeeklyHours,
		&employee.PreferredDays,
		&nonWorking,
		&employee.IsActive,
		&employee.HideFromSchedule,
		&employee.HireDate,
		&employee.EmploymentType,
		&employee.LocationID,
	)
	if err != nil {
		return nil, err
	}
	if nonWorking != "" {
		if err := json.Unmarshal([]byte(nonWorking), &employee.NonWorkingDays); err != nil {
			return nil, fmt.Errorf("failed to decode non-working days: %w", err)
		}
	}
	return employee, nil
}

func (r *employeeRepo) GetByID(id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`

	employee, err := scanEmployee(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (r *employeeRepo) GetActiveByLocation(locationID int64) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE location_id = ? AND is_active = 1
		ORDER BY full_name ASC
	`

	rows, err := r.db.Query(query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, nil
}
