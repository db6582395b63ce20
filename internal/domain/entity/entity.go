package entity

import "time"

// Employee is a roster record. MaxWeeklyHours and PreferredDays are
// read-only inputs to the generator and are never mutated by a run.
type Employee struct {
	ID               int64     `json:"id" db:"id"`
	FullName         string    `json:"full_name" db:"full_name"`
	JobCode          string    `json:"job_code" db:"job_code"`
	MaxWeeklyHours   float64   `json:"max_weekly_hours" db:"max_weekly_hours"`
	PreferredDays    int       `json:"preferred_days" db:"preferred_days"`
	NonWorkingDays   []string  `json:"non_working_days" db:"non_working_days"` // weekday names
	IsActive         bool      `json:"is_active" db:"is_active"`
	HideFromSchedule bool      `json:"hide_from_schedule" db:"hide_from_schedule"`
	HireDate         time.Time `json:"hire_date" db:"hire_date"`
	EmploymentType   string    `json:"employment_type" db:"employment_type"`
	LocationID       int64     `json:"location_id" db:"location_id"`
}

// Shift is a proposed or persisted assignment. Times are business-local.
type Shift struct {
	ID         int64     `json:"id" db:"id"`
	EmployeeID int64     `json:"employee_id" db:"employee_id"`
	LocationID int64     `json:"location_id" db:"location_id"`
	StartTime  time.Time `json:"start_time" db:"start_time"`
	EndTime    time.Time `json:"end_time" db:"end_time"`
}

// PaidLeave credits hours against the weekly cap without a worked shift.
type PaidLeave struct {
	ID         int64     `json:"id" db:"id"`
	EmployeeID int64     `json:"employee_id" db:"employee_id"`
	Date       time.Time `json:"date" db:"date"`
	Minutes    int       `json:"minutes" db:"minutes"`
	Status     string    `json:"status" db:"status"`
}

// UnpaidLeave blocks a day contributing zero hours.
type UnpaidLeave struct {
	ID         int64     `json:"id" db:"id"`
	EmployeeID int64     `json:"employee_id" db:"employee_id"`
	Date       time.Time `json:"date" db:"date"`
	Status     string    `json:"status" db:"status"`
}

// TimeOffRequest blocks every day in its range once approved.
type TimeOffRequest struct {
	ID         int64     `json:"id" db:"id"`
	EmployeeID int64     `json:"employee_id" db:"employee_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	Status     string    `json:"status" db:"status"`
}

// Location carries per-store station limits. WeeklyHourBudget is
// informational only; scheduled hours are driven by employee capacity.
type Location struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	WeeklyHourBudget   float64 `json:"weekly_hour_budget" db:"weekly_hour_budget"`
	MaxApparelStations int     `json:"max_apparel_stations" db:"max_apparel_stations"`
	MaxPricingStations int     `json:"max_pricing_stations" db:"max_pricing_stations"`
	IsActive           bool    `json:"is_active" db:"is_active"`
}

// Settings are advisory coverage targets, not hard invariants.
type Settings struct {
	ID                int64   `json:"id" db:"id"`
	OpenerCount       int     `json:"opener_count" db:"opener_count"`
	CloserCount       int     `json:"closer_count" db:"closer_count"`
	ManagerCount      int     `json:"manager_count" db:"manager_count"`
	ProductionPercent float64 `json:"production_percent" db:"production_percent"`
	RegisterPercent   float64 `json:"register_percent" db:"register_percent"`
	DonorPercent      float64 `json:"donor_percent" db:"donor_percent"`
}

// ScheduleRun is the outcome of one generation run: the accepted shifts
// plus diagnostics about entries dropped at validation.
type ScheduleRun struct {
	RunID      string    `json:"run_id"`
	WeekStart  time.Time `json:"week_start"`
	LocationID int64     `json:"location_id"`
	Shifts     []*Shift  `json:"shifts"`
	Dropped    int       `json:"dropped"`
}
