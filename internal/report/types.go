package report

import (
	"admin-srv/internal/model"
	"admin-srv/pkg/paginator"
)

// Report families. Every cached payload and export is keyed by one of these.
const (
	FamilyOverview      = "overview"
	FamilyPayments      = "payments"
	FamilyEvents        = "events"
	FamilyUsers         = "users"
	FamilyEventPlanners = "event-planners"

	FamilyChartRevenue       = "chart-revenue"
	FamilyChartRegistrations = "chart-registrations"
	FamilyChartEvents        = "chart-events"
)

// Export formats.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// Registration chart type filter.
const (
	RegistrationsAll           = "all"
	RegistrationsUsers         = "users"
	RegistrationsEventPlanners = "event-planners"
)

type DashboardInput struct {
	Period model.Period
	// Force skips the fresh cache for user-initiated refreshes. It never
	// changes the cache key; the refetched payload overwrites the entry.
	Force bool
}

func (i DashboardInput) Params() map[string]string {
	return map[string]string{"period": string(i.Period)}
}

type PaymentsInput struct {
	StartDate      string
	EndDate        string
	Status         string
	Plan           string
	EventPlannerID string
	Search         string
	SortBy         string
	SortOrder      string
	PagQuery       paginator.PaginateQuery
	Force          bool
}

func (i PaymentsInput) Params() map[string]string {
	params := i.PagQuery.Params()
	params["startDate"] = i.StartDate
	params["endDate"] = i.EndDate
	params["status"] = i.Status
	params["plan"] = i.Plan
	params["eventPlannerId"] = i.EventPlannerID
	params["search"] = i.Search
	params["sortBy"] = i.SortBy
	params["sortOrder"] = i.SortOrder
	return params
}

type EventsInput struct {
	Status    string
	Category  string
	Search    string
	StartDate string
	EndDate   string
	PagQuery  paginator.PaginateQuery
	Force     bool
}

// Params always requests engagement metrics, matching what the dashboard
// consumes.
func (i EventsInput) Params() map[string]string {
	params := i.PagQuery.Params()
	params["status"] = i.Status
	params["category"] = i.Category
	params["search"] = i.Search
	params["startDate"] = i.StartDate
	params["endDate"] = i.EndDate
	params["includeMetrics"] = "true"
	return params
}

type UsersInput struct {
	Period   model.Period
	Search   string
	PagQuery paginator.PaginateQuery
	Force    bool
}

func (i UsersInput) Params() map[string]string {
	params := i.PagQuery.Params()
	params["period"] = string(i.Period)
	params["search"] = i.Search
	return params
}

type EventPlannersInput struct {
	Period   model.Period
	Search   string
	PagQuery paginator.PaginateQuery
	Force    bool
}

func (i EventPlannersInput) Params() map[string]string {
	params := i.PagQuery.Params()
	params["period"] = string(i.Period)
	params["search"] = i.Search
	return params
}

type ChartInput struct {
	Period model.Period
	Force  bool
}

func (i ChartInput) Params() map[string]string {
	return map[string]string{"period": string(i.Period)}
}

type RegistrationsChartInput struct {
	Period model.Period
	Type   string
	Force  bool
}

func (i RegistrationsChartInput) Params() map[string]string {
	return map[string]string{
		"period": string(i.Period),
		"type":   i.Type,
	}
}

// Outputs carry the payload plus whether it was served stale from the
// last-good cache after an upstream failure.

type DashboardOutput struct {
	Data  model.DashboardOverview
	Stale bool
}

type PaymentsOutput struct {
	Data  model.PaymentsReportData
	Stale bool
}

type EventsOutput struct {
	Data  model.EventsReportData
	Stale bool
}

type UsersOutput struct {
	Data  model.UsersReportData
	Stale bool
}

type EventPlannersOutput struct {
	Data  model.EventPlannersReportData
	Stale bool
}

type ChartOutput struct {
	Data  model.ChartPayload
	Stale bool
}

// AllChartsOutput is the joined result of the three dashboard charts. A nil
// member means that chart's fetch failed; the others still render.
type AllChartsOutput struct {
	Revenue       *model.ChartPayload
	Registrations *model.ChartPayload
	Events        *model.ChartPayload
}

type ExportInput struct {
	Family string
	Format string
	// Params carries the family's filter set, same keys as the report fetch.
	Params map[string]string
	Force  bool
}

type ExportOutput struct {
	Filename    string
	ContentType string
	Body        []byte
}
