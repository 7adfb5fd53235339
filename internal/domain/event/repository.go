package event

import (
	"context"
	"time"
)

type EventRepository interface {
	// Create appends one event to the ledger
	Create(ctx context.Context, newEvent Event) (Event, error)

	GetByID(ctx context.Context, id string) (Event, error)

	// List retrieves ledger entries with filters and pagination, newest first
	List(ctx context.Context, filter EventFilter) ([]Event, int64, error)

	// ListByEmployee retrieves an employee's full history, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Event, error)

	// ExistsOnDay reports whether an event of the given type already exists
	// for the employee with a timestamp inside the given calendar day.
	// Used by the reconciler to avoid duplicate falta entries.
	ExistsOnDay(ctx context.Context, employeeID string, eventType Type, day time.Time) (bool, error)

	// UnlinkEmployee nulls employee_id on every event owned by the employee
	UnlinkEmployee(ctx context.Context, employeeID string) error

	// Delete removes one event (administrative correction only)
	Delete(ctx context.Context, id string) error
}
