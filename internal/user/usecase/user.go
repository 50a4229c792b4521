package usecase

import (
	"context"
	"errors"

	"admin-srv/internal/model"
	"admin-srv/internal/user"
	"admin-srv/pkg/platformsrv"
)

// List retrieves the management listing of users with the given filters.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input user.ListInput) (user.ListOutput, error) {
	if input.Status != "" && !model.ValidUserStatus(model.UserStatus(input.Status)) {
		return user.ListOutput{}, user.ErrInvalidFilters
	}
	input.PagQuery.Adjust()

	list, err := uc.platform.GetUsers(ctx, sc.SessionToken, input.Params())
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List: platform GetUsers failed: %v", err)
		return user.ListOutput{}, uc.mapPlatformError(err)
	}

	return user.ListOutput{
		Users:      list.Users,
		Pagination: list.Pagination,
	}, nil
}

// ListPending retrieves users awaiting approval.
func (uc *implUseCase) ListPending(ctx context.Context, sc model.Scope, input user.ListInput) (user.ListOutput, error) {
	input.PagQuery.Adjust()

	list, err := uc.platform.GetPendingUsers(ctx, sc.SessionToken, input.Params())
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ListPending: platform GetPendingUsers failed: %v", err)
		return user.ListOutput{}, uc.mapPlatformError(err)
	}

	return user.ListOutput{
		Users:      list.Users,
		Pagination: list.Pagination,
	}, nil
}

// UpdateStatus changes a user's account status. The enum is validated here
// so bad input never reaches the platform.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input user.UpdateStatusInput) (model.User, error) {
	if input.UserID == "" {
		return model.User{}, user.ErrUserRequired
	}
	if !model.ValidUserStatus(input.Status) {
		return model.User{}, user.ErrInvalidStatus
	}

	u, err := uc.platform.UpdateUserStatus(ctx, sc.SessionToken, input.UserID, input.Status)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.UpdateStatus: platform UpdateUserStatus failed: %v", err)
		return model.User{}, uc.mapPlatformError(err)
	}

	uc.l.Infof(ctx, "user.usecase.UpdateStatus: user %s set to %s by %s", input.UserID, input.Status, sc.UserID)
	return *u, nil
}

// Update patches profile fields on a user record.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input user.UpdateInput) (model.User, error) {
	if input.UserID == "" {
		return model.User{}, user.ErrUserRequired
	}

	fields := input.Fields()
	if len(fields) == 0 {
		return model.User{}, user.ErrEmptyUpdate
	}

	u, err := uc.platform.UpdateUser(ctx, sc.SessionToken, input.UserID, fields)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Update: platform UpdateUser failed: %v", err)
		return model.User{}, uc.mapPlatformError(err)
	}

	return *u, nil
}

func (uc *implUseCase) mapPlatformError(err error) error {
	switch {
	case errors.Is(err, platformsrv.ErrNotFound):
		return user.ErrUserNotFound
	case errors.Is(err, platformsrv.ErrUnauthorized):
		return user.ErrNotPermitted
	case errors.Is(err, platformsrv.ErrBadRequest):
		return user.ErrInvalidFilters
	default:
		return user.ErrUpstream
	}
}
