package route

import "context"

type RouteService interface {
	CreateRoute(ctx context.Context, req CreateRouteRequest) (RouteResponse, error)

	// ListRoutes returns the routes dispatched in a shift plus the summed
	// realized tonnage
	ListRoutes(ctx context.Context, date, shift string) (ListRoutesResponse, error)

	DeleteRoute(ctx context.Context, id string) error
}
