package employee

import (
	"context"
	"time"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// CreateEmployee registers a new worker with status active
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees returns the roster plus per-shift headcount stats
	ListEmployees(ctx context.Context, filter ListFilter) (ListEmployeesResponse, error)

	// GetEmployee returns one employee with event history and counters
	GetEmployee(ctx context.Context, id string) (EmployeeDetailResponse, error)

	// UpdateEmployee updates registration data; identity changes leave an
	// alteracao_cadastro event behind
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ApplyStatusAction handles the status buttons: transitions emit a
	// history event, "delete" unlinks events and removes the row
	ApplyStatusAction(ctx context.Context, req StatusActionRequest) error

	// ScheduleVacation sets or clears the vacation window
	ScheduleVacation(ctx context.Context, req ScheduleVacationRequest) (EmployeeResponse, error)

	// ImportEmployees upserts pre-parsed roster rows, skipping duplicates
	ImportEmployees(ctx context.Context, req ImportEmployeesRequest) (ImportResult, error)

	// SyncVacationStatuses forces status=vacation inside configured windows
	// and reverts to active outside them. Invoked by the scheduler or on
	// demand, never as a side effect of a read.
	SyncVacationStatuses(ctx context.Context, ref time.Time) (VacationSyncResult, error)
}
