package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/route"
	"github.com/expedicaonl/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RouteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RouteHandlerImpl struct {
	routeService route.RouteService
}

func NewRouteHandler(routeService route.RouteService) RouteHandler {
	return &RouteHandlerImpl{routeService: routeService}
}

// Create implements RouteHandler.
func (h *RouteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq route.CreateRouteRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRoute decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.routeService.CreateRoute(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateRoute service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Route created", resp)
}

// List implements RouteHandler.
func (h *RouteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	date, shift, ok := dateShiftParams(r)
	if !ok {
		response.BadRequest(w, "date (YYYY-MM-DD) and shift query parameters are required", nil)
		return
	}

	resp, err := h.routeService.ListRoutes(r.Context(), date, shift)
	if err != nil {
		slog.Error("ListRoutes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete implements RouteHandler.
func (h *RouteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.routeService.DeleteRoute(r.Context(), id); err != nil {
		slog.Error("DeleteRoute service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Route deleted", nil)
}
