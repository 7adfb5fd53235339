package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

// Create implements EventHandler.
func (h *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq event.CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.eventService.CreateEvent(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateEvent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created", resp)
}

// List implements EventHandler.
func (h *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := event.EventFilter{}
	query := r.URL.Query()

	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if eventType := query.Get("type"); eventType != "" {
		filter.Type = &eventType
	}
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if startDate := query.Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := query.Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	filter.Page = intParam(query.Get("page"))
	filter.Limit = intParam(query.Get("limit"))

	resp, err := h.eventService.ListEvents(r.Context(), filter)
	if err != nil {
		slog.Error("ListEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Events, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// Delete implements EventHandler.
func (h *EventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.eventService.DeleteEvent(r.Context(), id); err != nil {
		slog.Error("DeleteEvent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted", nil)
}
