package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"admin-srv/internal/auth"
	"admin-srv/internal/model"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

// fakePlatform stubs the platform auth endpoints.
type fakePlatform struct {
	platformsrv.IPlatform

	loginSession  *platformsrv.Session
	loginErr      error
	signupSession *platformsrv.Session
	signupErr     error
	logoutErr     error
	logoutToken   string
}

func (p *fakePlatform) Login(_ context.Context, _ platformsrv.LoginInput) (*platformsrv.Session, error) {
	return p.loginSession, p.loginErr
}

func (p *fakePlatform) Signup(_ context.Context, _ platformsrv.SignupInput) (*platformsrv.Session, error) {
	return p.signupSession, p.signupErr
}

func (p *fakePlatform) Logout(_ context.Context, sessionToken string) error {
	p.logoutToken = sessionToken
	return p.logoutErr
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin login succeeds", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{
			loginSession: &platformsrv.Session{
				Token: "session-tok",
				User:  model.User{ID: "u1", Email: "admin@example.com", Role: "admin"},
			},
		})

		out, err := uc.Login(ctx, auth.LoginInput{Email: "admin@example.com", Password: "pw", Remember: true})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if out.Token != "session-tok" {
			t.Errorf("token: got %q, want session-tok", out.Token)
		}
		if !out.Remember {
			t.Error("Remember: got false, want true")
		}
	})

	t.Run("non-admin accounts are rejected", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{
			loginSession: &platformsrv.Session{
				Token: "tok",
				User:  model.User{ID: "u2", Email: "user@example.com", Role: "user"},
			},
		})

		_, err := uc.Login(ctx, auth.LoginInput{Email: "user@example.com", Password: "pw"})
		if !errors.Is(err, auth.ErrNotAdmin) {
			t.Fatalf("error: got %v, want ErrNotAdmin", err)
		}
	})

	t.Run("bad credentials map to invalid credentials", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{
			loginErr: fmt.Errorf("%w: wrong password", platformsrv.ErrUnauthorized),
		})

		_, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.c", Password: "nope"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Fatalf("error: got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("platform outage maps to upstream error", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{
			loginErr: fmt.Errorf("%w (status 502)", platformsrv.ErrUpstream),
		})

		_, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.c", Password: "pw"})
		if !errors.Is(err, auth.ErrUpstream) {
			t.Fatalf("error: got %v, want ErrUpstream", err)
		}
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate email maps to email taken", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{
			signupErr: fmt.Errorf("%w: email exists", platformsrv.ErrBadRequest),
		})

		_, err := uc.Signup(ctx, auth.SignupInput{Email: "a@b.c", Password: "pw"})
		if !errors.Is(err, auth.ErrEmailTaken) {
			t.Fatalf("error: got %v, want ErrEmailTaken", err)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards session token upstream", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := New(log.NewNopLogger(), platform)

		if err := uc.Logout(ctx, model.Scope{SessionToken: "tok-1"}); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.logoutToken != "tok-1" {
			t.Errorf("logout token: got %q, want tok-1", platform.logoutToken)
		}
	})

	t.Run("dead upstream session still logs out", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{
			logoutErr: fmt.Errorf("%w (status 401)", platformsrv.ErrUnauthorized),
		})

		if err := uc.Logout(ctx, model.Scope{SessionToken: "tok"}); err != nil {
			t.Errorf("Logout: got %v, want nil", err)
		}
	})
}
