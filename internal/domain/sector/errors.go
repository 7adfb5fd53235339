package sector

import "errors"

var (
	ErrConfigNotFound = errors.New("sector configuration not found")
	ErrTargetNotFound = errors.New("headcount target not found")
	ErrInvalidConfig  = errors.New("sector configuration must be an object with a sectors array")
)
