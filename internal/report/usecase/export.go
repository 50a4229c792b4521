package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"admin-srv/internal/model"
	"admin-srv/internal/report"
	"admin-srv/pkg/platformsrv"
	"admin-srv/pkg/tabular"
	"admin-srv/pkg/util"
)

// Export renders one report family as a downloadable CSV or Excel file. The
// data goes through the same cached fetch path as the report endpoints.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input report.ExportInput) (report.ExportOutput, error) {
	contentType, ext, err := exportFormat(input.Format)
	if err != nil {
		return report.ExportOutput{}, err
	}
	if input.Params == nil {
		input.Params = map[string]string{}
	}

	var csv string
	switch input.Family {
	case report.FamilyOverview:
		csv, err = uc.exportOverview(ctx, sc, input.Params, input.Force)
	case report.FamilyPayments:
		csv, err = uc.exportPayments(ctx, sc, input.Params, input.Force)
	case report.FamilyEvents:
		csv, err = uc.exportEvents(ctx, sc, input.Params, input.Force)
	case report.FamilyUsers:
		csv, err = uc.exportUsers(ctx, sc, input.Params, input.Force)
	case report.FamilyEventPlanners:
		csv, err = uc.exportEventPlanners(ctx, sc, input.Params, input.Force)
	default:
		return report.ExportOutput{}, report.ErrInvalidFamily
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: %s export failed: %v", input.Family, err)
		return report.ExportOutput{}, err
	}
	if csv == "" {
		return report.ExportOutput{}, report.ErrNoReportData
	}

	filename := tabular.Filename(strings.ReplaceAll(input.Family, "-", "_"), ext)
	return report.ExportOutput{
		Filename:    filename,
		ContentType: contentType,
		Body:        []byte(tabular.BOM + csv),
	}, nil
}

func exportFormat(format string) (contentType, ext string, err error) {
	switch format {
	case report.FormatCSV, "":
		return tabular.MIMECSV, tabular.ExtCSV, nil
	case report.FormatExcel:
		return tabular.MIMEExcel, tabular.ExtExcel, nil
	default:
		return "", "", report.ErrInvalidFormat
	}
}

// exportOverview flattens the dashboard aggregate into Category/Metric/Value
// triples.
func (uc *implUseCase) exportOverview(ctx context.Context, sc model.Scope, params map[string]string, force bool) (string, error) {
	data, _, err := fetchCached[model.DashboardOverview](ctx, uc, sc,
		report.FamilyOverview, platformsrv.PathReportDashboard, params, force)
	if err != nil {
		return "", err
	}

	rows := []map[string]any{
		{"category": "Users", "metric": "Total Users", "value": data.Users.Total},
		{"category": "Users", "metric": "New in Period", "value": data.Users.InPeriod},
		{"category": "Users", "metric": "Growth %", "value": growthPct(data.Users.Growth)},
		{"category": "Event Planners", "metric": "Total Event Planners", "value": data.EventPlanners.Total},
		{"category": "Event Planners", "metric": "New in Period", "value": data.EventPlanners.InPeriod},
		{"category": "Event Planners", "metric": "Growth %", "value": growthPct(data.EventPlanners.Growth)},
		{"category": "Events", "metric": "Total Events", "value": data.Events.Total},
		{"category": "Events", "metric": "New in Period", "value": data.Events.InPeriod},
		{"category": "Events", "metric": "Growth %", "value": growthPct(data.Events.Growth)},
		{"category": "Events", "metric": "Draft Events", "value": data.Events.ByStatus.Draft},
		{"category": "Events", "metric": "Pending Events", "value": data.Events.ByStatus.Pending},
		{"category": "Events", "metric": "Approved Events", "value": data.Events.ByStatus.Approved},
		{"category": "Events", "metric": "Suspended Events", "value": data.Events.ByStatus.Suspended},
		{"category": "Events", "metric": "Rejected Events", "value": data.Events.ByStatus.Rejected},
		{"category": "Revenue", "metric": "Total Revenue", "value": data.Revenue.TotalFormatted},
		{"category": "Revenue", "metric": "Growth %", "value": growthPct(data.Revenue.Growth)},
		{"category": "Revenue", "metric": "Active Subscriptions", "value": data.Revenue.ActiveSubscriptions},
		{"category": "Revenue", "metric": "Total Subscriptions", "value": data.Revenue.TotalSubscriptions},
		{"category": "Engagement", "metric": "Total Views", "value": data.Engagement.TotalViews},
		{"category": "Engagement", "metric": "Unique Views", "value": data.Engagement.TotalUniqueViews},
		{"category": "Engagement", "metric": "Likes", "value": data.Engagement.TotalLikes},
		{"category": "Engagement", "metric": "Shares", "value": data.Engagement.TotalShares},
		{"category": "Engagement", "metric": "Comments", "value": data.Engagement.TotalComments},
		{"category": "Engagement", "metric": "RSVPs", "value": data.Engagement.TotalRsvps},
		{"category": "Engagement", "metric": "Ticket Clicks", "value": data.Engagement.TotalTicketRedirects},
	}

	columns := []tabular.Column{
		{Key: "category", Label: "Category"},
		{Key: "metric", Label: "Metric"},
		{Key: "value", Label: "Value"},
	}

	return tabular.ArrayToCSV(rows, columns), nil
}

func (uc *implUseCase) exportPayments(ctx context.Context, sc model.Scope, params map[string]string, force bool) (string, error) {
	data, _, err := fetchCached[model.PaymentsReportData](ctx, uc, sc,
		report.FamilyPayments, platformsrv.PathReportPayments, params, force)
	if err != nil {
		return "", err
	}

	rows, err := tabular.RowMaps(data.Transactions)
	if err != nil {
		return "", err
	}

	columns := []tabular.Column{
		{Key: "id", Label: "Transaction ID"},
		{Key: "eventPlanner.name", Label: "Event Planner", Format: orNA},
		{Key: "eventPlanner.email", Label: "Planner Email", Format: orNA},
		{Key: "event.name", Label: "Event", Format: orNA},
		{Key: "plan", Label: "Plan"},
		{Key: "amountFormatted", Label: "Amount"},
		{Key: "status", Label: "Status"},
		{Key: "currentPeriodStart", Label: "Period Start", Format: dateOrNA},
		{Key: "currentPeriodEnd", Label: "Period End", Format: dateOrNA},
		{Key: "createdAt", Label: "Created At", Format: dateOrNA},
	}

	return tabular.ArrayToCSV(rows, columns), nil
}

func (uc *implUseCase) exportEvents(ctx context.Context, sc model.Scope, params map[string]string, force bool) (string, error) {
	params["includeMetrics"] = "true"
	data, _, err := fetchCached[model.EventsReportData](ctx, uc, sc,
		report.FamilyEvents, platformsrv.PathReportEvents, params, force)
	if err != nil {
		return "", err
	}

	rows, err := tabular.RowMaps(data.Events)
	if err != nil {
		return "", err
	}

	columns := []tabular.Column{
		{Key: "id", Label: "Event ID"},
		{Key: "name", Label: "Event Name"},
		{Key: "category", Label: "Category"},
		{Key: "status", Label: "Status"},
		{Key: "ticketPrice", Label: "Ticket Price", Format: dollars},
		{Key: "dateTime", Label: "Event Date", Format: dateOrNA},
		{Key: "creator.name", Label: "Creator", Format: orNA},
		{Key: "creator.email", Label: "Creator Email", Format: orNA},
		{Key: "location.address", Label: "Location", Format: orNA},
		{Key: "metrics.views", Label: "Views", Format: orZero},
		{Key: "metrics.likes", Label: "Likes", Format: orZero},
		{Key: "metrics.comments", Label: "Comments", Format: orZero},
		{Key: "metrics.shares", Label: "Shares", Format: orZero},
		{Key: "metrics.rsvps.total", Label: "RSVPs", Format: orZero},
		{Key: "createdAt", Label: "Created At", Format: dateOrNA},
	}

	return tabular.ArrayToCSV(rows, columns), nil
}

func (uc *implUseCase) exportUsers(ctx context.Context, sc model.Scope, params map[string]string, force bool) (string, error) {
	data, _, err := fetchCached[model.UsersReportData](ctx, uc, sc,
		report.FamilyUsers, platformsrv.PathReportUsers, params, force)
	if err != nil {
		return "", err
	}

	rows, err := tabular.RowMaps(data.Users)
	if err != nil {
		return "", err
	}

	columns := []tabular.Column{
		{Key: "id", Label: "User ID"},
		{Key: "firstName", Label: "First Name"},
		{Key: "lastName", Label: "Last Name"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone", Format: orNA},
		{Key: "address", Label: "Address", Format: orNA},
		{Key: "createdAt", Label: "Joined Date", Format: dateOrNA},
	}

	return tabular.ArrayToCSV(rows, columns), nil
}

func (uc *implUseCase) exportEventPlanners(ctx context.Context, sc model.Scope, params map[string]string, force bool) (string, error) {
	data, _, err := fetchCached[model.EventPlannersReportData](ctx, uc, sc,
		report.FamilyEventPlanners, platformsrv.PathReportEventPlanners, params, force)
	if err != nil {
		return "", err
	}

	rows, err := tabular.RowMaps(data.EventPlanners)
	if err != nil {
		return "", err
	}

	columns := []tabular.Column{
		{Key: "id", Label: "ID"},
		{Key: "firstName", Label: "First Name"},
		{Key: "lastName", Label: "Last Name"},
		{Key: "email", Label: "Email"},
		{Key: "companyName", Label: "Company", Format: orNA},
		{Key: "phone", Label: "Phone", Format: orNA},
		{Key: "events.total", Label: "Total Events", Format: orZero},
		{Key: "events.approved", Label: "Approved Events", Format: orZero},
		{Key: "events.pending", Label: "Pending Events", Format: orZero},
		{Key: "revenue.totalFormatted", Label: "Total Revenue", Format: orZeroDollars},
		{Key: "revenue.activeSubscriptions", Label: "Active Subscriptions", Format: orZero},
		{Key: "revenue.totalSubscriptions", Label: "Total Subscriptions", Format: orZero},
		{Key: "createdAt", Label: "Joined Date", Format: dateOrNA},
	}

	return tabular.ArrayToCSV(rows, columns), nil
}

// growthPct renders a growth ratio with one decimal place.
func growthPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// empty reports whether a resolved cell value counts as absent: missing,
// blank, zero, or false.
func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}

func orNA(v any, _ map[string]any) string {
	if empty(v) {
		return "N/A"
	}
	return tabular.Stringify(v)
}

func orZero(v any, _ map[string]any) string {
	if empty(v) {
		return "0"
	}
	return tabular.Stringify(v)
}

func orZeroDollars(v any, _ map[string]any) string {
	if empty(v) {
		return "$0.00"
	}
	return tabular.Stringify(v)
}

func dollars(v any, _ map[string]any) string {
	if empty(v) {
		return "$0"
	}
	return fmt.Sprintf("$%s", tabular.Stringify(v))
}

func dateOrNA(v any, _ map[string]any) string {
	if empty(v) {
		return "N/A"
	}
	return util.FormatTimestamp(tabular.Stringify(v))
}
