package event

import "errors"

// Event domain errors
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidType     = errors.New("invalid event type")
	ErrInvalidCategory = errors.New("invalid event category")
	ErrInvalidImpact   = errors.New("invalid event impact")
)
