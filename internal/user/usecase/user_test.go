package usecase

import (
	"context"
	"errors"
	"testing"

	"admin-srv/internal/model"
	"admin-srv/internal/user"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

type fakePlatform struct {
	platformsrv.IPlatform

	list      *model.UserList
	updated   *model.User
	err       error
	gotUserID string
	gotStatus model.UserStatus
	gotFields map[string]any
}

func (p *fakePlatform) GetUsers(_ context.Context, _ string, params map[string]string) (*model.UserList, error) {
	return p.list, p.err
}

func (p *fakePlatform) GetPendingUsers(_ context.Context, _ string, params map[string]string) (*model.UserList, error) {
	return p.list, p.err
}

func (p *fakePlatform) UpdateUserStatus(_ context.Context, _ string, userID string, status model.UserStatus) (*model.User, error) {
	p.gotUserID = userID
	p.gotStatus = status
	return p.updated, p.err
}

func (p *fakePlatform) UpdateUser(_ context.Context, _ string, userID string, fields map[string]any) (*model.User, error) {
	p.gotUserID = userID
	p.gotFields = fields
	return p.updated, p.err
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1", SessionToken: "tok"}

	t.Run("valid transition reaches the platform", func(t *testing.T) {
		platform := &fakePlatform{updated: &model.User{ID: "u1", Status: model.UserStatusApproved}}
		uc := New(log.NewNopLogger(), platform)

		out, err := uc.UpdateStatus(ctx, sc, user.UpdateStatusInput{UserID: "u1", Status: model.UserStatusApproved})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.gotStatus != model.UserStatusApproved {
			t.Errorf("status sent: got %q, want approved", platform.gotStatus)
		}
		if out.Status != model.UserStatusApproved {
			t.Errorf("returned status: got %q, want approved", out.Status)
		}
	})

	t.Run("unknown status never reaches the platform", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := New(log.NewNopLogger(), platform)

		_, err := uc.UpdateStatus(ctx, sc, user.UpdateStatusInput{UserID: "u1", Status: "suspended"})
		if !errors.Is(err, user.ErrInvalidStatus) {
			t.Fatalf("error: got %v, want ErrInvalidStatus", err)
		}
		if platform.gotUserID != "" {
			t.Error("platform must not be called for an invalid status")
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionToken: "tok"}

	strPtr := func(s string) *string { return &s }

	t.Run("only set fields are sent", func(t *testing.T) {
		platform := &fakePlatform{updated: &model.User{ID: "u1"}}
		uc := New(log.NewNopLogger(), platform)

		_, err := uc.Update(ctx, sc, user.UpdateInput{
			UserID:    "u1",
			FirstName: strPtr("Ada"),
			Phone:     strPtr("+84123456789"),
		})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if len(platform.gotFields) != 2 {
			t.Errorf("fields: got %v, want firstName and phone only", platform.gotFields)
		}
		if platform.gotFields["firstName"] != "Ada" {
			t.Errorf("firstName: got %v, want Ada", platform.gotFields["firstName"])
		}
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{})

		_, err := uc.Update(ctx, sc, user.UpdateInput{UserID: "u1"})
		if !errors.Is(err, user.ErrEmptyUpdate) {
			t.Fatalf("error: got %v, want ErrEmptyUpdate", err)
		}
	})

	t.Run("missing user id is rejected", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{})

		_, err := uc.Update(ctx, sc, user.UpdateInput{FirstName: strPtr("Ada")})
		if !errors.Is(err, user.ErrUserRequired) {
			t.Fatalf("error: got %v, want ErrUserRequired", err)
		}
	})
}
