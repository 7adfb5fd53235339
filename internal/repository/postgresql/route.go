package postgresql

import (
	"context"
	"fmt"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/route"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type routeRepository struct {
	db *database.DB
}

func NewRouteRepository(db *database.DB) route.RouteRepository {
	return &routeRepository{db: db}
}

// Create implements route.RouteRepository.
func (r *routeRepository) Create(ctx context.Context, newRoute route.Route) (route.Route, error) {
	q := GetQuerier(ctx, r.db)

	if newRoute.ID == "" {
		newRoute.ID = uuid.NewString()
	}

	query := `
		INSERT INTO routes (id, date, shift, code, destination, tonnage)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newRoute.ID, newRoute.Date, newRoute.Shift, newRoute.Code,
		newRoute.Destination, newRoute.Tonnage,
	).Scan(&newRoute.CreatedAt)

	if err != nil {
		return route.Route{}, fmt.Errorf("failed to create route: %w", err)
	}

	return newRoute, nil
}

// ListByDateShift implements route.RouteRepository.
func (r *routeRepository) ListByDateShift(ctx context.Context, date, shift string) ([]route.Route, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, shift, code, destination, tonnage, created_at
		FROM routes
		WHERE date = $1 AND shift = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, date, shift)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var routes []route.Route
	for rows.Next() {
		var rt route.Route
		err := rows.Scan(&rt.ID, &rt.Date, &rt.Shift, &rt.Code, &rt.Destination, &rt.Tonnage, &rt.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, rt)
	}

	return routes, nil
}

// SumTonnage implements route.RouteRepository.
func (r *routeRepository) SumTonnage(ctx context.Context, date, shift string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(tonnage), 0) FROM routes WHERE date = $1 AND shift = $2`

	var total float64
	if err := q.QueryRow(ctx, query, date, shift).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum route tonnage: %w", err)
	}

	return total, nil
}

// Delete implements route.RouteRepository.
func (r *routeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM routes WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return route.ErrRouteNotFound
	}

	return nil
}
