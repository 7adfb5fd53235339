package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type sectorRepository struct {
	db *database.DB
}

func NewSectorRepository(db *database.DB) sector.SectorRepository {
	return &sectorRepository{db: db}
}

// GetConfigByShift implements sector.SectorRepository.
func (r *sectorRepository) GetConfigByShift(ctx context.Context, shift string) (sector.SectorConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, shift_name, config, updated_at FROM sector_configurations WHERE shift_name = $1`

	var cfg sector.SectorConfiguration
	err := q.QueryRow(ctx, query, shift).Scan(&cfg.ID, &cfg.ShiftName, &cfg.Config, &cfg.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sector.SectorConfiguration{}, sector.ErrConfigNotFound
		}
		return sector.SectorConfiguration{}, fmt.Errorf("failed to get sector configuration: %w", err)
	}

	return cfg, nil
}

// UpsertConfig implements sector.SectorRepository.
func (r *sectorRepository) UpsertConfig(ctx context.Context, shift string, config json.RawMessage) (sector.SectorConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sector_configurations (id, shift_name, config, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shift_name) DO UPDATE SET
			config = EXCLUDED.config,
			updated_at = EXCLUDED.updated_at
		RETURNING id, updated_at
	`

	cfg := sector.SectorConfiguration{
		ShiftName: shift,
		Config:    config,
	}

	err := q.QueryRow(ctx, query, uuid.NewString(), shift, []byte(config), time.Now()).Scan(&cfg.ID, &cfg.UpdatedAt)
	if err != nil {
		return sector.SectorConfiguration{}, fmt.Errorf("failed to upsert sector configuration: %w", err)
	}

	return cfg, nil
}

// GetTargetByShift implements sector.SectorRepository.
func (r *sectorRepository) GetTargetByShift(ctx context.Context, shift string) (sector.HeadcountTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, shift_name, target_value, updated_at FROM headcount_targets WHERE shift_name = $1`

	var target sector.HeadcountTarget
	err := q.QueryRow(ctx, query, shift).Scan(&target.ID, &target.ShiftName, &target.TargetValue, &target.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sector.HeadcountTarget{}, sector.ErrTargetNotFound
		}
		return sector.HeadcountTarget{}, fmt.Errorf("failed to get headcount target: %w", err)
	}

	return target, nil
}

// ListTargets implements sector.SectorRepository.
func (r *sectorRepository) ListTargets(ctx context.Context) ([]sector.HeadcountTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, shift_name, target_value, updated_at FROM headcount_targets ORDER BY shift_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query headcount targets: %w", err)
	}
	defer rows.Close()

	var targets []sector.HeadcountTarget
	for rows.Next() {
		var target sector.HeadcountTarget
		if err := rows.Scan(&target.ID, &target.ShiftName, &target.TargetValue, &target.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan headcount target: %w", err)
		}
		targets = append(targets, target)
	}

	return targets, nil
}

// UpsertTarget implements sector.SectorRepository.
func (r *sectorRepository) UpsertTarget(ctx context.Context, shift string, value int) (sector.HeadcountTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO headcount_targets (id, shift_name, target_value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shift_name) DO UPDATE SET
			target_value = EXCLUDED.target_value,
			updated_at = EXCLUDED.updated_at
		RETURNING id, updated_at
	`

	target := sector.HeadcountTarget{
		ShiftName:   shift,
		TargetValue: value,
	}

	err := q.QueryRow(ctx, query, uuid.NewString(), shift, value, time.Now()).Scan(&target.ID, &target.UpdatedAt)
	if err != nil {
		return sector.HeadcountTarget{}, fmt.Errorf("failed to upsert headcount target: %w", err)
	}

	return target, nil
}
