package sector

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

// ValidateConfigShape checks the one invariant enforced on the opaque sector
// JSON: an object carrying a non-null "sectors" array.
func ValidateConfigShape(raw json.RawMessage) error {
	var shape struct {
		Sectors *[]json.RawMessage `json:"sectors"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return ErrInvalidConfig
	}
	if shape.Sectors == nil {
		return ErrInvalidConfig
	}
	return nil
}

type UpdateConfigRequest struct {
	Shift  string          `json:"-"`
	Config json.RawMessage `json:"config"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidShift(r.Shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: " + strings.Join(validator.Shifts, ", "),
		})
	}

	if err := ValidateConfigShape(r.Config); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "config",
			Message: "config must be an object with a sectors array",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConfigResponse struct {
	Shift     string          `json:"shift"`
	Config    json.RawMessage `json:"config"`
	UpdatedAt *string         `json:"updated_at,omitempty"`
}

func ToConfigResponse(cfg SectorConfiguration) ConfigResponse {
	resp := ConfigResponse{
		Shift:  cfg.ShiftName,
		Config: cfg.Config,
	}
	if !cfg.UpdatedAt.IsZero() {
		updatedAt := cfg.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// UpdateTargetsRequest replaces headcount targets per shift name.
type UpdateTargetsRequest struct {
	Targets map[string]int `json:"targets"`
}

func (r *UpdateTargetsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Targets) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "targets",
			Message: "at least one target is required",
		})
	}

	for shift, value := range r.Targets {
		if !validator.IsValidShift(shift) {
			errs = append(errs, validator.ValidationError{
				Field:   "targets." + shift,
				Message: "shift must be one of: " + strings.Join(validator.Shifts, ", "),
			})
		}
		if value < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "targets." + shift,
				Message: "target must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TargetsResponse struct {
	Targets map[string]int `json:"targets"`
}
