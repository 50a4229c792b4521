package usecase

import (
	"context"
	"sync"

	"admin-srv/internal/model"
	"admin-srv/internal/report"
	"admin-srv/pkg/platformsrv"
)

// RevenueChart returns the revenue-over-time chart.
func (uc *implUseCase) RevenueChart(ctx context.Context, sc model.Scope, input report.ChartInput) (report.ChartOutput, error) {
	period, err := validPeriod(input.Period)
	if err != nil {
		return report.ChartOutput{}, err
	}
	input.Period = period

	data, stale, err := fetchCached[model.ChartPayload](ctx, uc, sc,
		report.FamilyChartRevenue, platformsrv.PathChartRevenue, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.RevenueChart: fetch failed: %v", err)
		return report.ChartOutput{}, err
	}

	return report.ChartOutput{Data: data, Stale: stale}, nil
}

// RegistrationsChart returns the registrations chart, optionally filtered to
// users or event planners.
func (uc *implUseCase) RegistrationsChart(ctx context.Context, sc model.Scope, input report.RegistrationsChartInput) (report.ChartOutput, error) {
	period, err := validPeriod(input.Period)
	if err != nil {
		return report.ChartOutput{}, err
	}
	input.Period = period
	if input.Type == "" {
		input.Type = report.RegistrationsAll
	}

	data, stale, err := fetchCached[model.ChartPayload](ctx, uc, sc,
		report.FamilyChartRegistrations, platformsrv.PathChartRegistrations, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.RegistrationsChart: fetch failed: %v", err)
		return report.ChartOutput{}, err
	}

	return report.ChartOutput{Data: data, Stale: stale}, nil
}

// EventsChart returns the events-by-period chart.
func (uc *implUseCase) EventsChart(ctx context.Context, sc model.Scope, input report.ChartInput) (report.ChartOutput, error) {
	period, err := validPeriod(input.Period)
	if err != nil {
		return report.ChartOutput{}, err
	}
	input.Period = period

	data, stale, err := fetchCached[model.ChartPayload](ctx, uc, sc,
		report.FamilyChartEvents, platformsrv.PathChartEvents, input.Params(), input.Force)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EventsChart: fetch failed: %v", err)
		return report.ChartOutput{}, err
	}

	return report.ChartOutput{Data: data, Stale: stale}, nil
}

// AllCharts fetches the three dashboard charts concurrently. A failed chart
// leaves its member nil and never fails the whole call; the dashboard
// renders whatever arrived.
func (uc *implUseCase) AllCharts(ctx context.Context, sc model.Scope, input report.ChartInput) (report.AllChartsOutput, error) {
	period, err := validPeriod(input.Period)
	if err != nil {
		return report.AllChartsOutput{}, err
	}
	input.Period = period

	var out report.AllChartsOutput
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		if o, err := uc.RevenueChart(ctx, sc, input); err == nil {
			out.Revenue = &o.Data
		} else {
			uc.l.Warnf(ctx, "report.usecase.AllCharts: revenue chart unavailable: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		regInput := report.RegistrationsChartInput{Period: input.Period, Type: report.RegistrationsAll, Force: input.Force}
		if o, err := uc.RegistrationsChart(ctx, sc, regInput); err == nil {
			out.Registrations = &o.Data
		} else {
			uc.l.Warnf(ctx, "report.usecase.AllCharts: registrations chart unavailable: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if o, err := uc.EventsChart(ctx, sc, input); err == nil {
			out.Events = &o.Data
		} else {
			uc.l.Warnf(ctx, "report.usecase.AllCharts: events chart unavailable: %v", err)
		}
	}()
	wg.Wait()

	return out, nil
}
