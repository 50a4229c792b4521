package user

import (
	"context"

	"admin-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	ListPending(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.User, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.User, error)
}
