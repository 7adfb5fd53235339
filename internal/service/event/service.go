package event

import (
	"context"
	"math"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
)

type eventService struct {
	eventRepo    event.EventRepository
	employeeRepo employee.EmployeeRepository
}

func NewEventService(eventRepo event.EventRepository, employeeRepo employee.EmployeeRepository) event.EventService {
	return &eventService{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateEvent implements event.EventService.
func (s *eventService) CreateEvent(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	newEvent := event.Event{
		Timestamp: time.Now(),
		Text:      req.Text,
		Type:      event.Type(req.Type),
		Category:  event.Category(req.Category),
		Sector:    req.Sector,
		Impact:    event.Impact(req.Impact),
	}

	if req.RegistrationID != nil && *req.RegistrationID != "" {
		emp, err := s.employeeRepo.GetByRegistrationID(ctx, *req.RegistrationID)
		if err != nil {
			return event.EventResponse{}, err
		}
		newEvent.EmployeeID = &emp.ID
		newEvent.EmployeeName = &emp.Name
	}

	created, err := s.eventRepo.Create(ctx, newEvent)
	if err != nil {
		return event.EventResponse{}, err
	}
	created.EmployeeName = newEvent.EmployeeName

	return event.ToResponse(created), nil
}

// ListEvents implements event.EventService.
func (s *eventService) ListEvents(ctx context.Context, filter event.EventFilter) (event.ListEventsResponse, error) {
	if err := filter.Validate(); err != nil {
		return event.ListEventsResponse{}, err
	}

	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return event.ListEventsResponse{}, err
	}

	resp := event.ListEventsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Events:     make([]event.EventResponse, 0, len(events)),
	}
	for _, evt := range events {
		resp.Events = append(resp.Events, event.ToResponse(evt))
	}

	return resp, nil
}

// DeleteEvent implements event.EventService.
func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}
