package report

import (
	"context"

	"admin-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Dashboard(ctx context.Context, sc model.Scope, input DashboardInput) (DashboardOutput, error)
	Payments(ctx context.Context, sc model.Scope, input PaymentsInput) (PaymentsOutput, error)
	Events(ctx context.Context, sc model.Scope, input EventsInput) (EventsOutput, error)
	Users(ctx context.Context, sc model.Scope, input UsersInput) (UsersOutput, error)
	EventPlanners(ctx context.Context, sc model.Scope, input EventPlannersInput) (EventPlannersOutput, error)

	RevenueChart(ctx context.Context, sc model.Scope, input ChartInput) (ChartOutput, error)
	RegistrationsChart(ctx context.Context, sc model.Scope, input RegistrationsChartInput) (ChartOutput, error)
	EventsChart(ctx context.Context, sc model.Scope, input ChartInput) (ChartOutput, error)
	AllCharts(ctx context.Context, sc model.Scope, input ChartInput) (AllChartsOutput, error)

	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
