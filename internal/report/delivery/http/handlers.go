package http

import (
	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard overview report
// @Description Aggregate user/planner/event/revenue/engagement stats for one period
// @Tags Report
// @Produce json
// @Param period query string false "week | month | year | all" default(month)
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} dashboardResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/dashboard [get]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[dashboardReq](h, c, "Dashboard")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Dashboard(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Dashboard: usecase Dashboard failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, dashboardResp{DashboardOverview: o.Data, Stale: o.Stale})
}

// @Summary Payments report
// @Description Filtered subscription transactions with summary aggregates
// @Tags Report
// @Produce json
// @Param startDate query string false "Filter start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter end date (YYYY-MM-DD)"
// @Param status query string false "Subscription status"
// @Param plan query string false "Subscription plan"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} paymentsResp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/payments [get]
func (h *handler) Payments(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[paymentsReq](h, c, "Payments")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Payments(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Payments: usecase Payments failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, paymentsResp{PaymentsReportData: o.Data, Stale: o.Stale})
}

// @Summary Events report
// @Description Filtered events with engagement metrics
// @Tags Report
// @Produce json
// @Param status query string false "Moderation status"
// @Param category query string false "Event category"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} eventsResp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/events [get]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[eventsReq](h, c, "Events")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Events(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Events: usecase Events failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, eventsResp{EventsReportData: o.Data, Stale: o.Stale})
}

// @Summary Users report
// @Description Users with registration trends and activity breakdown
// @Tags Report
// @Produce json
// @Param period query string false "week | month | year | all" default(month)
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} usersResp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/users [get]
func (h *handler) Users(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[usersReq](h, c, "Users")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Users(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Users: usecase Users failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, usersResp{UsersReportData: o.Data, Stale: o.Stale})
}

// @Summary Event planners report
// @Description Event planners with per-planner event and revenue aggregates
// @Tags Report
// @Produce json
// @Param period query string false "week | month | year | all" default(month)
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} eventPlannersResp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/event-planners [get]
func (h *handler) EventPlanners(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[eventPlannersReq](h, c, "EventPlanners")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.EventPlanners(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.EventPlanners: usecase EventPlanners failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, eventPlannersResp{EventPlannersReportData: o.Data, Stale: o.Stale})
}

// @Summary Revenue chart
// @Tags Report
// @Produce json
// @Param period query string false "week | month | year | all" default(month)
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} chartResp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/charts/revenue [get]
func (h *handler) RevenueChart(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[chartReq](h, c, "RevenueChart")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.RevenueChart(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.RevenueChart: usecase RevenueChart failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, chartResp{ChartPayload: o.Data, Stale: o.Stale})
}

// @Summary Registrations chart
// @Tags Report
// @Produce json
// @Param period query string false "week | month | year | all" default(month)
// @Param type query string false "users | event-planners | all" default(all)
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} chartResp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/charts/registrations [get]
func (h *handler) RegistrationsChart(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[registrationsChartReq](h, c, "RegistrationsChart")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.RegistrationsChart(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.RegistrationsChart: usecase RegistrationsChart failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, chartResp{ChartPayload: o.Data, Stale: o.Stale})
}

// @Summary Events chart
// @Tags Report
// @Produce json
// @Param period query string false "week | month | year | all" default(month)
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} chartResp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/charts/events [get]
func (h *handler) EventsChart(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[chartReq](h, c, "EventsChart")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.EventsChart(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.EventsChart: usecase EventsChart failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, chartResp{ChartPayload: o.Data, Stale: o.Stale})
}

// @Summary All dashboard charts
// @Description Fetch the three dashboard charts concurrently; failed charts come back null
// @Tags Report
// @Produce json
// @Param period query string false "week | month | year | all" default(month)
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {object} allChartsResp
// @Failure 400 {object} response.Resp
// @Router /admin/reports/charts [get]
func (h *handler) AllCharts(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := bindQuery[chartReq](h, c, "AllCharts")
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.AllCharts(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.AllCharts: usecase AllCharts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAllChartsResp(o))
}

// @Summary Export a report
// @Description Download one report family as CSV or Excel
// @Tags Report
// @Produce text/csv
// @Param family path string true "overview | payments | events | users | event-planners"
// @Param format query string false "csv | excel" default(csv)
// @Param refresh query bool false "Bypass the fresh cache and refetch"
// @Success 200 {file} file
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /admin/reports/export/{family} [get]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processExportRequest(c)

	o, err := h.uc.Export(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Attachment(c, o.Filename, o.ContentType, o.Body)
}
