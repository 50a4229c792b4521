package scope

import (
	"context"
	"testing"

	"admin-srv/internal/model"
)

func TestNewScope(t *testing.T) {
	t.Run("maps payload claims", func(t *testing.T) {
		sc := NewScope(Payload{
			UserID:   "u1",
			Username: "admin@example.com",
			Role:     "admin",
			Subject:  "sub1",
		})

		if sc.UserID != "u1" {
			t.Errorf("UserID: got %q, want u1", sc.UserID)
		}
		if sc.Username != "admin@example.com" {
			t.Errorf("Username: got %q, want admin@example.com", sc.Username)
		}
		if sc.Role != "admin" {
			t.Errorf("Role: got %q, want admin", sc.Role)
		}
	})

	t.Run("falls back to subject when user id is blank", func(t *testing.T) {
		sc := NewScope(Payload{Subject: "sub1"})
		if sc.UserID != "sub1" {
			t.Errorf("UserID: got %q, want sub1", sc.UserID)
		}
	})
}

func TestScopeContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := model.Scope{UserID: "u1", Role: "admin", SessionToken: "tok"}
		ctx := SetScopeToContext(context.Background(), want)

		if got := GetScopeFromContext(ctx); got != want {
			t.Errorf("scope: got %+v, want %+v", got, want)
		}
	})

	t.Run("unauthenticated context yields zero scope", func(t *testing.T) {
		if got := GetScopeFromContext(context.Background()); got != (model.Scope{}) {
			t.Errorf("scope: got %+v, want zero", got)
		}
	})
}
