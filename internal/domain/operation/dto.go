package operation

import (
	"encoding/json"
	"strings"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

// RoutineUpdateRequest is a full replacement of the operation sheet for one
// (date, shift) pair. The attendance log is taken as-is; the reconciler
// derives status changes and history events from the diff against the
// stored log.
type RoutineUpdateRequest struct {
	Date          string          `json:"date"`  // YYYY-MM-DD
	Shift         string          `json:"shift"` // Manhã, Tarde, Noite
	AttendanceLog AttendanceLog   `json:"attendance_log"`
	Tonnage       *float64        `json:"tonnage,omitempty"`
	ArrivalTime   *string         `json:"arrival_time,omitempty"` // HH:MM
	ExitTime      *string         `json:"exit_time,omitempty"`    // HH:MM
	Report        *string         `json:"report,omitempty"`
	Rating        *int            `json:"rating,omitempty"`
	Status        *string         `json:"status,omitempty"` // open, closed
	SectorConfig  json.RawMessage `json:"sector_config,omitempty"`
	LogEntry      json.RawMessage `json:"log_entry,omitempty"`
}

func (r *RoutineUpdateRequest) Validate() error {
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

	for regID, entry := range r.AttendanceLog {
		if !entry.Status.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance_log." + regID,
				Message: "status must be one of: present, absent, sick, vacation, away",
			})
		}
	}

	if r.ArrivalTime != nil && *r.ArrivalTime != "" && !validator.IsValidTimeOfDay(*r.ArrivalTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "arrival_time",
			Message: "arrival_time must be in HH:MM format",
		})
	}

	if r.ExitTime != nil && *r.ExitTime != "" && !validator.IsValidTimeOfDay(*r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM format",
		})
	}

	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 5) {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 0 and 5",
		})
	}

	if r.Status != nil && *r.Status != "" {
		if *r.Status != OperationOpen && *r.Status != OperationClosed {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be open or closed",
			})
		}
	}

	if r.Tonnage != nil && *r.Tonnage < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tonnage",
			Message: "tonnage must not be negative",
		})
	}

	if len(r.SectorConfig) > 0 {
		if err := ValidateSectorConfig(r.SectorConfig); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "sector_config",
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateSectorConfig shape-checks the opaque sector configuration carried
// alongside a routine update.
func ValidateSectorConfig(raw json.RawMessage) error {
	if err := sector.ValidateConfigShape(raw); err != nil {
		return ErrInvalidSectorJSON
	}
	return nil
}

type RoutineResponse struct {
	ID            string            `json:"id,omitempty"`
	Date          string            `json:"date"`
	Shift         string            `json:"shift"`
	AttendanceLog AttendanceLog     `json:"attendance_log"`
	Tonnage       float64           `json:"tonnage"`
	ArrivalTime   *string           `json:"arrival_time,omitempty"`
	ExitTime      *string           `json:"exit_time,omitempty"`
	Report        *string           `json:"report,omitempty"`
	Rating        *int              `json:"rating,omitempty"`
	Status        string            `json:"status"`
	Logs          []json.RawMessage `json:"logs,omitempty"`
	Transient     bool              `json:"transient"`
	UpdatedAt     *string           `json:"updated_at,omitempty"`
}

type UpdateRoutineResult struct {
	OperationID   string `json:"operation_id"`
	EventsCreated int    `json:"events_created"`
	StatusChanges int    `json:"status_changes"`
}
