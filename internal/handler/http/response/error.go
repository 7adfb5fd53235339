package response

import (
	"errors"
	"net/http"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/auth"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/route"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRegistrationIDExists):
		Conflict(w, "Registration id already exists")
	case errors.Is(err, employee.ErrReplacementNotFound):
		NotFound(w, "Replacement employee not found")
	case errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrInvalidStatusAction),
		errors.Is(err, employee.ErrInvalidVacationWindow):
		BadRequest(w, err.Error(), nil)

	// Operation domain errors
	case errors.Is(err, operation.ErrOperationNotFound):
		NotFound(w, "Daily operation not found")
	case errors.Is(err, operation.ErrInvalidDate),
		errors.Is(err, operation.ErrInvalidShift),
		errors.Is(err, operation.ErrInvalidEntryStatus),
		errors.Is(err, operation.ErrInvalidSectorJSON):
		BadRequest(w, err.Error(), nil)

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrInvalidType),
		errors.Is(err, event.ErrInvalidCategory),
		errors.Is(err, event.ErrInvalidImpact):
		BadRequest(w, err.Error(), nil)

	// Settings domain errors
	case errors.Is(err, sector.ErrConfigNotFound):
		NotFound(w, "Sector configuration not found")
	case errors.Is(err, sector.ErrTargetNotFound):
		NotFound(w, "Headcount target not found")
	case errors.Is(err, sector.ErrInvalidConfig):
		BadRequest(w, err.Error(), nil)

	// Route domain errors
	case errors.Is(err, route.ErrRouteNotFound):
		NotFound(w, "Route not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
