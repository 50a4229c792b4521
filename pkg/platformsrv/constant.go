package platformsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the events platform API.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second

	// DefaultCookieName is the session cookie the platform API expects.
	DefaultCookieName = "token"
)

// API path segments (full URLs built in platformsrv.go).
const (
	PathAuthLogin  = "/api/auth/login"
	PathAuthSignup = "/api/auth/signup"
	PathAuthLogout = "/api/auth/logout"

	PathAdminEvents = "/api/admin/events"
	PathAdminUsers  = "/api/admin/users"

	PathReportDashboard     = "/api/admin/reports/dashboard"
	PathReportPayments      = "/api/admin/reports/payments"
	PathReportEvents        = "/api/admin/reports/events"
	PathReportUsers         = "/api/admin/reports/users"
	PathReportEventPlanners = "/api/admin/reports/event-planners"
	PathReportCharts        = "/api/admin/reports/charts"

	PathChartRevenue       = PathReportCharts + "/revenue"
	PathChartRegistrations = PathReportCharts + "/registrations"
	PathChartEvents        = PathReportCharts + "/events"
)

// Error strings surfaced through Result. Kept stable because clients
// branch on them.
const (
	MsgNetworkError      = "Network error"
	MsgFetchFailedFormat = "Failed to fetch report (%d)"
)
