package operation

import "errors"

// Daily operation domain errors
var (
	ErrOperationNotFound  = errors.New("daily operation not found")
	ErrInvalidShift       = errors.New("invalid shift name")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidEntryStatus = errors.New("invalid attendance entry status")
	ErrInvalidSectorJSON  = errors.New("sector_config must be an object with a sectors array")
)
