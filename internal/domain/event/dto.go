package event

import (
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

type CreateEventRequest struct {
	Text           string  `json:"text"`
	Type           string  `json:"type"`
	Category       string  `json:"category"`
	Sector         string  `json:"sector"`
	Impact         string  `json:"impact"`
	RegistrationID *string `json:"registration_id,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown event type",
		})
	}

	if !Category(r.Category).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: pessoas, infraestrutura, processo, fornecedor",
		})
	}

	if r.Impact != "" && !Impact(r.Impact).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "impact",
			Message: "impact must be one of: low, medium, high",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Type       *string `json:"type,omitempty"`
	Category   *string `json:"category,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Type != nil && *f.Type != "" && !Type(*f.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown event type",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID           string  `json:"id"`
	Timestamp    string  `json:"timestamp"`
	Text         string  `json:"text"`
	Type         string  `json:"type"`
	Category     string  `json:"category"`
	Sector       string  `json:"sector"`
	Impact       string  `json:"impact"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

type ListEventsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Events     []EventResponse `json:"events"`
}

// ToResponse converts a ledger row to its transport shape.
func ToResponse(e Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Timestamp:    e.Timestamp.Format("2006-01-02 15:04:05"),
		Text:         e.Text,
		Type:         string(e.Type),
		Category:     string(e.Category),
		Sector:       e.Sector,
		Impact:       string(e.Impact),
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
	}
}
