package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrRegistrationIDExists   = errors.New("registration id already exists")
	ErrInvalidStatus          = errors.New("invalid employee status")
	ErrInvalidStatusAction    = errors.New("invalid status action")
	ErrInvalidVacationWindow  = errors.New("vacation end must not be before vacation start")
	ErrReplacementNotFound    = errors.New("replacement employee not found")
	ErrEmployeeAlreadyDeleted = errors.New("employee already deleted")
)
