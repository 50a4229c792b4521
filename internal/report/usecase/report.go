package usecase

import (
	"context"

	"admin-srv/internal/model"
	"admin-srv/internal/report"
	"admin-srv/pkg/platformsrv"
)

// Dashboard returns the aggregate overview for one period.
func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope, input report.DashboardInput) (report.DashboardOutput, error) {
	period, err := validPeriod(input.Period)
	if err != nil {
		return report.DashboardOutput{}, err
	}
	input.Period = period

	data, stale, err := fetchCached[model.DashboardOverview](ctx, uc, sc,
		report.FamilyOverview, platformsrv.PathReportDashboard, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Dashboard: fetch failed: %v", err)
		return report.DashboardOutput{}, err
	}

	return report.DashboardOutput{Data: data, Stale: stale}, nil
}

// Payments returns the filtered transaction report.
func (uc *implUseCase) Payments(ctx context.Context, sc model.Scope, input report.PaymentsInput) (report.PaymentsOutput, error) {
	input.PagQuery.Adjust()

	data, stale, err := fetchCached[model.PaymentsReportData](ctx, uc, sc,
		report.FamilyPayments, platformsrv.PathReportPayments, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Payments: fetch failed: %v", err)
		return report.PaymentsOutput{}, err
	}

	return report.PaymentsOutput{Data: data, Stale: stale}, nil
}

// Events returns the filtered event report with engagement metrics.
func (uc *implUseCase) Events(ctx context.Context, sc model.Scope, input report.EventsInput) (report.EventsOutput, error) {
	if input.Status != "" && !model.ValidEventStatus(model.EventStatus(input.Status)) {
		return report.EventsOutput{}, report.ErrInvalidFilters
	}
	input.PagQuery.Adjust()

	data, stale, err := fetchCached[model.EventsReportData](ctx, uc, sc,
		report.FamilyEvents, platformsrv.PathReportEvents, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Events: fetch failed: %v", err)
		return report.EventsOutput{}, err
	}

	return report.EventsOutput{Data: data, Stale: stale}, nil
}

// Users returns the user report.
func (uc *implUseCase) Users(ctx context.Context, sc model.Scope, input report.UsersInput) (report.UsersOutput, error) {
	period, err := validPeriod(input.Period)
	if err != nil {
		return report.UsersOutput{}, err
	}
	input.Period = period
	input.PagQuery.Adjust()

	data, stale, err := fetchCached[model.UsersReportData](ctx, uc, sc,
		report.FamilyUsers, platformsrv.PathReportUsers, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Users: fetch failed: %v", err)
		return report.UsersOutput{}, err
	}

	return report.UsersOutput{Data: data, Stale: stale}, nil
}

// EventPlanners returns the event-planner report.
func (uc *implUseCase) EventPlanners(ctx context.Context, sc model.Scope, input report.EventPlannersInput) (report.EventPlannersOutput, error) {
	period, err := validPeriod(input.Period)
	if err != nil {
		return report.EventPlannersOutput{}, err
	}
	input.Period = period
	input.PagQuery.Adjust()

	data, stale, err := fetchCached[model.EventPlannersReportData](ctx, uc, sc,
		report.FamilyEventPlanners, platformsrv.PathReportEventPlanners, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EventPlanners: fetch failed: %v", err)
		return report.EventPlannersOutput{}, err
	}

	return report.EventPlannersOutput{Data: data, Stale: stale}, nil
}
