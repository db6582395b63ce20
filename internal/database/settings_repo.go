package database

import (
	"database/sql"
	"fmt"

	"github.com/storeops/shift-scheduler/internal/domain/contract"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

// Get returns the single settings row, or nil when none has been saved.
func (r *settingsRepo) Get() (*entity.Settings, error) {
	settings := &entity.Settings{}
	query := `
		SELECT id, opener_count, closer_count, manager_count,
			production_percent, register_percent, donor_percent
		FROM settings
		ORDER BY id ASC
		LIMIT 1
	`

	err := r.db.QueryRow(query).Scan(
		&settings.ID,
		&settings.OpenerCount,
		&settings.CloserCount,
		&settings.ManagerCount,
		&settings.ProductionPercent,
		&settings.RegisterPercent,
		&settings.DonorPercent,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepo) Save(settings *entity.Settings) error {
	if settings.ID != 0 {
		query := `
			UPDATE settings
			SET opener_count = ?, closer_count = ?, manager_count = ?,
				production_percent = ?, register_percent = ?, donor_percent = ?
			WHERE id = ?
		`
		_, err := r.db.Exec(query,
			settings.OpenerCount,
			settings.CloserCount,
			settings.ManagerCount,
			settings.ProductionPercent,
			settings.RegisterPercent,
			settings.DonorPercent,
			settings.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO settings (opener_count, closer_count, manager_count,
			production_percent, register_percent, donor_percent)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.Exec(query,
		settings.OpenerCount,
		settings.CloserCount,
		settings.ManagerCount,
		settings.ProductionPercent,
		settings.RegisterPercent,
		settings.DonorPercent,
	)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	settings.ID = id
	return nil
}
