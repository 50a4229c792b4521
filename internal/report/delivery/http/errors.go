package http

import (
	"errors"

	"admin-srv/internal/report"
	pkgErrors "admin-srv/pkg/errors"
)

var (
	errInvalidInput   = pkgErrors.NewHTTPError(400, "Invalid input")
	errFetchFailed    = pkgErrors.NewHTTPError(502, "Failed to fetch report")
	errInvalidPeriod  = pkgErrors.NewHTTPError(400, "Invalid period")
	errInvalidFamily  = pkgErrors.NewHTTPError(404, "Unknown report")
	errInvalidFormat  = pkgErrors.NewHTTPError(400, "Unknown export format")
	errNoReportData   = pkgErrors.NewHTTPError(404, "No report data to export")
	errInvalidFilters = pkgErrors.NewHTTPError(400, "Invalid report filters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrFetchFailed):
		return errFetchFailed
	case errors.Is(err, report.ErrInvalidPeriod):
		return errInvalidPeriod
	case errors.Is(err, report.ErrInvalidFamily):
		return errInvalidFamily
	case errors.Is(err, report.ErrInvalidFormat):
		return errInvalidFormat
	case errors.Is(err, report.ErrNoReportData):
		return errNoReportData
	case errors.Is(err, report.ErrInvalidFilters):
		return errInvalidFilters
	default:
		panic(err)
	}
}
