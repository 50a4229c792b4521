package http

import (
	"errors"

	"admin-srv/internal/event"
	pkgErrors "admin-srv/pkg/errors"
)

var (
	errInvalidInput   = pkgErrors.NewHTTPError(400, "Invalid input")
	errEventNotFound  = pkgErrors.NewHTTPError(404, "Event not found")
	errInvalidStatus  = pkgErrors.NewHTTPError(400, "Invalid event status")
	errEventRequired  = pkgErrors.NewHTTPError(400, "Event ID is required")
	errNotPermitted   = pkgErrors.NewHTTPError(403, "Not permitted")
	errInvalidFilters = pkgErrors.NewHTTPError(400, "Invalid list filters")
	errUpstream       = pkgErrors.NewHTTPError(502, "Events platform is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return errEventNotFound
	case errors.Is(err, event.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, event.ErrEventRequired):
		return errEventRequired
	case errors.Is(err, event.ErrNotPermitted):
		return errNotPermitted
	case errors.Is(err, event.ErrInvalidFilters):
		return errInvalidFilters
	case errors.Is(err, event.ErrUpstream):
		return errUpstream
	default:
		panic(err)
	}
}
