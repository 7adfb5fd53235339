package employee

import (
	"strings"

	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name           string   `json:"name"`
	RegistrationID string   `json:"registration_id"`
	Role           string   `json:"role"`
	WorkShift      string   `json:"work_shift"`
	CostCenter     string   `json:"cost_center"`
	WorkDays       []string `json:"work_days,omitempty"`
	AdmissionDate  *string  `json:"admission_date,omitempty"` // YYYY-MM-DD
	Birthday       *string  `json:"birthday,omitempty"`       // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.RegistrationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration_id",
			Message: "registration_id is required",
		})
	} else if !validator.IsValidRegistrationID(strings.TrimSpace(r.RegistrationID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration_id",
			Message: "registration_id must be numeric (up to 10 digits)",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if !validator.IsValidShift(r.WorkShift) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_shift",
			Message: "work_shift must be one of: " + strings.Join(validator.Shifts, ", "),
		})
	}

	if validator.IsEmpty(r.CostCenter) {
		errs = append(errs, validator.ValidationError{
			Field:   "cost_center",
			Message: "cost_center is required",
		})
	}

	for _, day := range r.WorkDays {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "work_days",
				Message: "invalid weekday name: " + day,
			})
			break
		}
	}

	if r.AdmissionDate != nil && *r.AdmissionDate != "" {
		if _, valid := validator.IsValidDate(*r.AdmissionDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "admission_date",
				Message: "admission_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Birthday != nil && *r.Birthday != "" {
		if _, valid := validator.IsValidDate(*r.Birthday); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "birthday",
				Message: "birthday must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID             string   `json:"-"`
	Name           string   `json:"name"`
	RegistrationID string   `json:"registration_id"`
	Role           string   `json:"role"`
	WorkShift      string   `json:"work_shift"`
	CostCenter     string   `json:"cost_center"`
	WorkDays       []string `json:"work_days,omitempty"`
	AdmissionDate  *string  `json:"admission_date,omitempty"`
	Birthday       *string  `json:"birthday,omitempty"`
	ReplacementID  *string  `json:"replacement_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Name:           r.Name,
		RegistrationID: r.RegistrationID,
		Role:           r.Role,
		WorkShift:      r.WorkShift,
		CostCenter:     r.CostCenter,
		WorkDays:       r.WorkDays,
		AdmissionDate:  r.AdmissionDate,
		Birthday:       r.Birthday,
	}
	return create.Validate()
}

// StatusActionRequest drives the status buttons on the employee card.
// "delete" is a hard removal; everything else is a status transition that
// leaves a history event behind.
type StatusActionRequest struct {
	ID     string `json:"-"`
	Action string `json:"action"` // active, vacation, sick, away, fired, delete
}

var validStatusActions = []string{"active", "vacation", "sick", "away", "fired", "delete"}

func (r *StatusActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, validStatusActions) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: " + strings.Join(validStatusActions, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ScheduleVacationRequest sets or clears the vacation window. Both dates
// empty clears the window.
type ScheduleVacationRequest struct {
	ID            string `json:"-"`
	VacationStart string `json:"vacation_start"` // YYYY-MM-DD
	VacationEnd   string `json:"vacation_end"`   // YYYY-MM-DD
}

func (r *ScheduleVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.VacationStart == "" && r.VacationEnd == "" {
		return nil // clear request
	}

	start, startOK := validator.IsValidDate(r.VacationStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_start",
			Message: "vacation_start must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.VacationEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_end",
			Message: "vacation_end must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_end",
			Message: "vacation_end must not be before vacation_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportEmployeesRequest carries pre-parsed roster rows. Spreadsheet parsing
// happens on the client; the backend only validates and upserts.
type ImportEmployeesRequest struct {
	Rows []ImportRow `json:"rows"`
}

type ImportRow struct {
	RegistrationID string  `json:"registration_id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	WorkShift      string  `json:"work_shift"`
	CostCenter     string  `json:"cost_center"`
	AdmissionDate  *string `json:"admission_date,omitempty"`
	Birthday       *string `json:"birthday,omitempty"`
}

func (r *ImportEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "at least one row is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID              string   `json:"id"`
	RegistrationID  string   `json:"registration_id"`
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	CostCenter      string   `json:"cost_center"`
	WorkShift       string   `json:"work_shift"`
	WorkDays        []string `json:"work_days"`
	Status          string   `json:"status"`
	VacationStart   *string  `json:"vacation_start,omitempty"`
	VacationEnd     *string  `json:"vacation_end,omitempty"`
	TerminationDate *string  `json:"termination_date,omitempty"`
	ReplacementID   *string  `json:"replacement_id,omitempty"`
	AdmissionDate   *string  `json:"admission_date,omitempty"`
	Birthday        *string  `json:"birthday,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// ShiftHeadcount is one row of the roster headline: actives on a shift
// against the configured target.
type ShiftHeadcount struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Target    int    `json:"target"`
	Vacancies int    `json:"vacancies"`
}

type RosterStats struct {
	TotalActive int              `json:"total_active"`
	TotalTarget int              `json:"total_target"`
	Vacancies   int              `json:"vacancies"`
	Shifts      []ShiftHeadcount `json:"shifts"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Stats     RosterStats        `json:"stats"`
}

// EventHistoryStats are the counters shown on the employee detail card.
type EventHistoryStats struct {
	Faltas       int `json:"faltas"`
	Atestados    int `json:"atestados"`
	Advertencias int `json:"advertencias"`
	Ferias       int `json:"ferias"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type VacationSyncResult struct {
	Started  int `json:"started"`
	Returned int `json:"returned"`
}
