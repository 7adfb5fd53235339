package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee by internal id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByRegistrationID retrieves an employee by badge number
	GetByRegistrationID(ctx context.Context, registrationID string) (Employee, error)

	// List retrieves all employees, optionally filtered
	List(ctx context.Context, filter ListFilter) ([]Employee, error)

	// ListNotFired retrieves every employee still on the roster
	ListNotFired(ctx context.Context) ([]Employee, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error

	// UpdateStatus changes only the lifecycle status (and termination date
	// when firing)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SetVacationWindow sets or clears the vacation window
	SetVacationWindow(ctx context.Context, id string, start, end *string) error

	// Delete hard-removes the row; callers must unlink owned events first
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	Shift  *string
	Status *string
	Search *string
}
