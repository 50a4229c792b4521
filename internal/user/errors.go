package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidStatus  = errors.New("invalid user status")
	ErrUserRequired   = errors.New("user id is required")
	ErrEmptyUpdate    = errors.New("no fields to update")
	ErrNotPermitted   = errors.New("session is not permitted")
	ErrInvalidFilters = errors.New("invalid list filters")
	ErrUpstream       = errors.New("platform request failed")
)
