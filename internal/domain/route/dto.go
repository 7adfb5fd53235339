package route

import (
	"strings"

	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

type CreateRouteRequest struct {
	Date        string  `json:"date"`  // YYYY-MM-DD
	Shift       string  `json:"shift"` // Manhã, Tarde, Noite
	Code        string  `json:"code"`
	Destination *string `json:"destination,omitempty"`
	Tonnage     float64 `json:"tonnage"`
}

func (r *CreateRouteRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidShift(r.Shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: " + strings.Join(validator.Shifts, ", "),
		})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if r.Tonnage < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tonnage",
			Message: "tonnage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RouteResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Shift       string  `json:"shift"`
	Code        string  `json:"code"`
	Destination *string `json:"destination,omitempty"`
	Tonnage     float64 `json:"tonnage"`
	CreatedAt   string  `json:"created_at"`
}

type ListRoutesResponse struct {
	Routes       []RouteResponse `json:"routes"`
	TotalTonnage float64         `json:"total_tonnage"`
}
