package http

import (
	"errors"

	"admin-srv/internal/auth"
	pkgErrors "admin-srv/pkg/errors"
)

var (
	errInvalidInput       = pkgErrors.NewHTTPError(400, "Invalid input")
	errInvalidCredentials = pkgErrors.NewHTTPError(401, "Invalid email or password")
	errEmailTaken         = pkgErrors.NewHTTPError(409, "Email is already registered")
	errNotAdmin           = pkgErrors.NewHTTPError(403, "Account is not an admin")
	errUpstream           = pkgErrors.NewHTTPError(502, "Events platform is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, auth.ErrEmailTaken):
		return errEmailTaken
	case errors.Is(err, auth.ErrNotAdmin):
		return errNotAdmin
	case errors.Is(err, auth.ErrUpstream):
		return errUpstream
	default:
		panic(err)
	}
}
