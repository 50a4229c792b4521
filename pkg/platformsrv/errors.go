package platformsrv

import "errors"

var (
	// ErrUnauthorized is returned when the platform API rejects the session.
	ErrUnauthorized = errors.New("platform: unauthorized")
	// ErrNotFound is returned when the requested record does not exist upstream.
	ErrNotFound = errors.New("platform: not found")
	// ErrBadRequest is returned when the platform API rejects the input.
	ErrBadRequest = errors.New("platform: bad request")
	// ErrUpstream is returned on any other upstream failure.
	ErrUpstream = errors.New("platform: upstream error")
)
