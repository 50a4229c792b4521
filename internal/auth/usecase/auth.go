package usecase

import (
	"context"
	"errors"

	"admin-srv/internal/auth"
	"admin-srv/internal/model"
	"admin-srv/pkg/platformsrv"
)

const roleAdmin = "admin"

// Login exchanges credentials for a platform session. Only admin accounts may
// sign in to this service.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	session, err := uc.platform.Login(ctx, platformsrv.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Login: platform login failed: %v", err)
		if errors.Is(err, platformsrv.ErrUnauthorized) || errors.Is(err, platformsrv.ErrBadRequest) {
			return auth.SessionOutput{}, auth.ErrInvalidCredentials
		}
		return auth.SessionOutput{}, auth.ErrUpstream
	}

	if session.User.Role != roleAdmin {
		uc.l.Warnf(ctx, "auth.usecase.Login: non-admin login rejected: %s", session.User.Email)
		return auth.SessionOutput{}, auth.ErrNotAdmin
	}

	return auth.SessionOutput{
		Token:    session.Token,
		User:     session.User,
		Remember: input.Remember,
	}, nil
}

// Signup registers a new admin account with the platform.
func (uc *implUseCase) Signup(ctx context.Context, input auth.SignupInput) (auth.SessionOutput, error) {
	session, err := uc.platform.Signup(ctx, platformsrv.SignupInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Signup: platform signup failed: %v", err)
		if errors.Is(err, platformsrv.ErrBadRequest) {
			return auth.SessionOutput{}, auth.ErrEmailTaken
		}
		return auth.SessionOutput{}, auth.ErrUpstream
	}

	return auth.SessionOutput{
		Token: session.Token,
		User:  session.User,
	}, nil
}

// Logout invalidates the platform session. An already-dead session upstream
// still counts as a successful logout here.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if err := uc.platform.Logout(ctx, sc.SessionToken); err != nil {
		if errors.Is(err, platformsrv.ErrUnauthorized) {
			return nil
		}
		uc.l.Errorf(ctx, "auth.usecase.Logout: platform logout failed: %v", err)
		return auth.ErrUpstream
	}
	return nil
}
