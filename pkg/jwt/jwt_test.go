package jwt

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		SecretKey: testSecret,
		Issuer:    "events-platform",
		TTL:       time.Hour,
	})
	if err != nil {
		t.Fatalf("New: unexpected error %v", err)
	}
	return m
}

func TestNew(t *testing.T) {
	t.Run("rejects missing secret", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Error("New without secret must fail")
		}
	})

	t.Run("defaults TTL when unset", func(t *testing.T) {
		m, err := New(Config{SecretKey: testSecret})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if m.ttl != 24*time.Hour {
			t.Errorf("ttl: got %v, want 24h", m.ttl)
		}
	})
}

func TestVerify(t *testing.T) {
	m := newTestManager(t)

	t.Run("round trip carries identity claims", func(t *testing.T) {
		token, err := m.GenerateToken("user-1", "admin@example.com", "admin")
		if err != nil {
			t.Fatalf("GenerateToken: unexpected error %v", err)
		}

		payload, err := m.Verify(token)
		if err != nil {
			t.Fatalf("Verify: unexpected error %v", err)
		}
		if payload.UserID != "user-1" {
			t.Errorf("UserID: got %q, want user-1", payload.UserID)
		}
		if payload.Username != "admin@example.com" {
			t.Errorf("Username: got %q, want admin@example.com", payload.Username)
		}
		if payload.Role != "admin" {
			t.Errorf("Role: got %q, want admin", payload.Role)
		}
		if payload.Issuer != "events-platform" {
			t.Errorf("Issuer: got %q, want events-platform", payload.Issuer)
		}
		if payload.ExpiresAt <= payload.IssuedAt {
			t.Error("ExpiresAt must be after IssuedAt")
		}
		if payload.Id == "" {
			t.Error("token must carry a JTI")
		}
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other, err := New(Config{SecretKey: strings.Repeat("x", 32)})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		token, err := other.GenerateToken("user-1", "a@b.c", "admin")
		if err != nil {
			t.Fatalf("GenerateToken: unexpected error %v", err)
		}

		if _, err := m.Verify(token); err == nil {
			t.Error("Verify must reject a foreign signature")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := m.Verify("not.a.token"); err == nil {
			t.Error("Verify must reject malformed tokens")
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		short, err := New(Config{SecretKey: testSecret, TTL: time.Nanosecond})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		token, err := short.GenerateToken("user-1", "a@b.c", "admin")
		if err != nil {
			t.Fatalf("GenerateToken: unexpected error %v", err)
		}

		time.Sleep(10 * time.Millisecond)
		if _, err := m.Verify(token); err == nil {
			t.Error("Verify must reject an expired token")
		}
	})
}
