package database

import (
	"database/sql"
	"fmt"

	"github.com/storeops/shift-scheduler/internal/domain/contract"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

type locationRepo struct {
	db dbConn
}

func newLocationRepo(db dbConn) contract.LocationRepo {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (name, weekly_hour_budget, max_apparel_stations, max_pricing_stations, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		location.Name,
		location.WeeklyHourBudget,
		location.MaxApparelStations,
		location.MaxPricingStations,
		location.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	location.ID = id
	return nil
}

func (r *locationRepo) GetByID(id int64) (*entity.Location, error) {
	location := &entity.Location{}
	query := `
		SELECT id, name, weekly_hour_budget, max_apparel_stations, max_pricing_stations, is_active
		FROM locations
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&location.ID,
		&location.Name,
		&location.WeeklyHourBudget,
		&location.MaxApparelStations,
		&location.MaxPricingStations,
		&location.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return location, nil
}

func (r *locationRepo) GetActive() ([]*entity.Location, error) {
	query := `
		SELECT id, name, weekly_hour_budget, max_apparel_stations, max_pricing_stations, is_active
		FROM locations
		WHERE is_active = 1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		location := &entity.Location{}
		err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.WeeklyHourBudget,
			&location.MaxApparelStations,
			&location.MaxPricingStations,
			&location.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, location)
	}

	return locations, nil
}
