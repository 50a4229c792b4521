package report

import "errors"

var (
	ErrFetchFailed    = errors.New("report fetch failed")
	ErrInvalidPeriod  = errors.New("invalid report period")
	ErrInvalidFamily  = errors.New("unknown report family")
	ErrInvalidFormat  = errors.New("unknown export format")
	ErrNoReportData   = errors.New("no report data to export")
	ErrInvalidFilters = errors.New("invalid report filters")
)
