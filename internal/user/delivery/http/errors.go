package http

import (
	"errors"

	"admin-srv/internal/user"
	pkgErrors "admin-srv/pkg/errors"
)

var (
	errInvalidInput   = pkgErrors.NewHTTPError(400, "Invalid input")
	errUserNotFound   = pkgErrors.NewHTTPError(404, "User not found")
	errInvalidStatus  = pkgErrors.NewHTTPError(400, "Invalid user status")
	errUserRequired   = pkgErrors.NewHTTPError(400, "User ID is required")
	errEmptyUpdate    = pkgErrors.NewHTTPError(400, "No fields to update")
	errNotPermitted   = pkgErrors.NewHTTPError(403, "Not permitted")
	errInvalidFilters = pkgErrors.NewHTTPError(400, "Invalid list filters")
	errUpstream       = pkgErrors.NewHTTPError(502, "Events platform is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, user.ErrUserRequired):
		return errUserRequired
	case errors.Is(err, user.ErrEmptyUpdate):
		return errEmptyUpdate
	case errors.Is(err, user.ErrNotPermitted):
		return errNotPermitted
	case errors.Is(err, user.ErrInvalidFilters):
		return errInvalidFilters
	case errors.Is(err, user.ErrUpstream):
		return errUpstream
	default:
		panic(err)
	}
}
