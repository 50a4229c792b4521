package event

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidStatus  = errors.New("invalid event status")
	ErrEventRequired  = errors.New("event id is required")
	ErrNotPermitted   = errors.New("session is not permitted")
	ErrUpstream       = errors.New("platform request failed")
	ErrInvalidFilters = errors.New("invalid list filters")
)
