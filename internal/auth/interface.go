package auth

import (
	"context"

	"admin-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (SessionOutput, error)
	Signup(ctx context.Context, input SignupInput) (SessionOutput, error)
	Logout(ctx context.Context, sc model.Scope) error
}
