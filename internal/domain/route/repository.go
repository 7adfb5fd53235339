package route

import "context"

type RouteRepository interface {
	Create(ctx context.Context, newRoute Route) (Route, error)

	// ListByDateShift retrieves all routes dispatched in a shift
	ListByDateShift(ctx context.Context, date, shift string) ([]Route, error)

	// SumTonnage returns the realized tonnage for a pair
	SumTonnage(ctx context.Context, date, shift string) (float64, error)

	Delete(ctx context.Context, id string) error
}
