package event

import (
	"context"

	"admin-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, eventID string) (model.Event, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Event, error)
}
