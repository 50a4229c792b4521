package http

import (
	"admin-srv/internal/model"
	"admin-srv/internal/report"
	"admin-srv/pkg/paginator"
)

type dashboardReq struct {
	Period  string `form:"period"`
	Refresh bool   `form:"refresh"`
}

func (r dashboardReq) toInput() report.DashboardInput {
	return report.DashboardInput{
		Period: model.Period(r.Period),
		Force:  r.Refresh,
	}
}

type paymentsReq struct {
	StartDate      string `form:"startDate"`
	EndDate        string `form:"endDate"`
	Status         string `form:"status"`
	Plan           string `form:"plan"`
	EventPlannerID string `form:"eventPlannerId"`
	Search         string `form:"search"`
	SortBy         string `form:"sortBy"`
	SortOrder      string `form:"sortOrder"`
	Refresh        bool   `form:"refresh"`
	paginator.PaginateQuery
}

func (r paymentsReq) toInput() report.PaymentsInput {
	return report.PaymentsInput{
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Status:         r.Status,
		Plan:           r.Plan,
		EventPlannerID: r.EventPlannerID,
		Search:         r.Search,
		SortBy:         r.SortBy,
		SortOrder:      r.SortOrder,
		PagQuery:       r.PaginateQuery,
		Force:          r.Refresh,
	}
}

type eventsReq struct {
	Status    string `form:"status"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Refresh   bool   `form:"refresh"`
	paginator.PaginateQuery
}

func (r eventsReq) toInput() report.EventsInput {
	return report.EventsInput{
		Status:    r.Status,
		Category:  r.Category,
		Search:    r.Search,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		PagQuery:  r.PaginateQuery,
		Force:     r.Refresh,
	}
}

type usersReq struct {
	Period  string `form:"period"`
	Search  string `form:"search"`
	Refresh bool   `form:"refresh"`
	paginator.PaginateQuery
}

func (r usersReq) toInput() report.UsersInput {
	return report.UsersInput{
		Period:   model.Period(r.Period),
		Search:   r.Search,
		PagQuery: r.PaginateQuery,
		Force:    r.Refresh,
	}
}

type eventPlannersReq struct {
	Period  string `form:"period"`
	Search  string `form:"search"`
	Refresh bool   `form:"refresh"`
	paginator.PaginateQuery
}

func (r eventPlannersReq) toInput() report.EventPlannersInput {
	return report.EventPlannersInput{
		Period:   model.Period(r.Period),
		Search:   r.Search,
		PagQuery: r.PaginateQuery,
		Force:    r.Refresh,
	}
}

type chartReq struct {
	Period  string `form:"period"`
	Refresh bool   `form:"refresh"`
}

func (r chartReq) toInput() report.ChartInput {
	return report.ChartInput{
		Period: model.Period(r.Period),
		Force:  r.Refresh,
	}
}

type registrationsChartReq struct {
	Period  string `form:"period"`
	Type    string `form:"type"`
	Refresh bool   `form:"refresh"`
}

func (r registrationsChartReq) toInput() report.RegistrationsChartInput {
	return report.RegistrationsChartInput{
		Period: model.Period(r.Period),
		Type:   r.Type,
		Force:  r.Refresh,
	}
}

// Stale marks payloads served from the last-good cache after an upstream
// failure.

type dashboardResp struct {
	model.DashboardOverview
	Stale bool `json:"stale,omitempty"`
}

type paymentsResp struct {
	model.PaymentsReportData
	Stale bool `json:"stale,omitempty"`
}

type eventsResp struct {
	model.EventsReportData
	Stale bool `json:"stale,omitempty"`
}

type usersResp struct {
	model.UsersReportData
	Stale bool `json:"stale,omitempty"`
}

type eventPlannersResp struct {
	model.EventPlannersReportData
	Stale bool `json:"stale,omitempty"`
}

type chartResp struct {
	model.ChartPayload
	Stale bool `json:"stale,omitempty"`
}

type allChartsResp struct {
	Revenue       *model.ChartPayload `json:"revenue"`
	Registrations *model.ChartPayload `json:"registrations"`
	Events        *model.ChartPayload `json:"events"`
}

func (h *handler) newAllChartsResp(o report.AllChartsOutput) allChartsResp {
	return allChartsResp{
		Revenue:       o.Revenue,
		Registrations: o.Registrations,
		Events:        o.Events,
	}
}
