package employee

import (
	"time"
)

// Employee is the canonical record of a worker on the site roster. The
// registration id is the badge number used as the external key inside
// attendance logs; the uuid id never leaves the backend.
type Employee struct {
	ID              string
	RegistrationID  string
	Name            string
	Role            string
	CostCenter      string
	WorkShift       string
	WorkDays        []string
	Status          Status
	VacationStart   *time.Time
	VacationEnd     *time.Time
	TerminationDate *time.Time
	ReplacementID   *string
	AdmissionDate   *time.Time
	Birthday        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusVacation Status = "vacation"
	StatusSick     Status = "sick"
	StatusAway     Status = "away"
	StatusFired    Status = "fired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusVacation, StatusSick, StatusAway, StatusFired:
		return true
	}
	return false
}

// DefaultWorkDays is the site's standard Monday-to-Saturday roster.
var DefaultWorkDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// OnVacationAt reports whether ref falls inside the employee's configured
// vacation window. The window is inclusive: the start day counts from
// midnight and the end day until the last instant before the next midnight.
func (e Employee) OnVacationAt(ref time.Time) bool {
	if e.VacationStart == nil || e.VacationEnd == nil {
		return false
	}
	start := time.Date(e.VacationStart.Year(), e.VacationStart.Month(), e.VacationStart.Day(), 0, 0, 0, 0, ref.Location())
	end := time.Date(e.VacationEnd.Year(), e.VacationEnd.Month(), e.VacationEnd.Day(), 23, 59, 59, 999999999, ref.Location())
	return !ref.Before(start) && !ref.After(end)
}

// HasVacationWindow reports whether a vacation window is configured at all.
func (e Employee) HasVacationWindow() bool {
	return e.VacationStart != nil && e.VacationEnd != nil
}
