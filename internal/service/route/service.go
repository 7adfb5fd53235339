package route

import (
	"context"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/route"
)

type routeService struct {
	routeRepo route.RouteRepository
}

func NewRouteService(routeRepo route.RouteRepository) route.RouteService {
	return &routeService{routeRepo: routeRepo}
}

// CreateRoute implements route.RouteService.
func (s *routeService) CreateRoute(ctx context.Context, req route.CreateRouteRequest) (route.RouteResponse, error) {
	if err := req.Validate(); err != nil {
		return route.RouteResponse{}, err
	}

	created, err := s.routeRepo.Create(ctx, route.Route{
		Date:        req.Date,
		Shift:       req.Shift,
		Code:        req.Code,
		Destination: req.Destination,
		Tonnage:     req.Tonnage,
	})
	if err != nil {
		return route.RouteResponse{}, err
	}

	return toRouteResponse(created), nil
}

// ListRoutes implements route.RouteService.
func (s *routeService) ListRoutes(ctx context.Context, date, shift string) (route.ListRoutesResponse, error) {
	routes, err := s.routeRepo.ListByDateShift(ctx, date, shift)
	if err != nil {
		return route.ListRoutesResponse{}, err
	}

	resp := route.ListRoutesResponse{
		Routes: make([]route.RouteResponse, 0, len(routes)),
	}
	for _, rt := range routes {
		resp.Routes = append(resp.Routes, toRouteResponse(rt))
		resp.TotalTonnage += rt.Tonnage
	}

	return resp, nil
}

// DeleteRoute implements route.RouteService.
func (s *routeService) DeleteRoute(ctx context.Context, id string) error {
	return s.routeRepo.Delete(ctx, id)
}

func toRouteResponse(rt route.Route) route.RouteResponse {
	return route.RouteResponse{
		ID:          rt.ID,
		Date:        rt.Date,
		Shift:       rt.Shift,
		Code:        rt.Code,
		Destination: rt.Destination,
		Tonnage:     rt.Tonnage,
		CreatedAt:   rt.CreatedAt.Format(time.RFC3339),
	}
}
