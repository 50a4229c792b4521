package repository

import "testing"

func TestCacheKey(t *testing.T) {
	t.Run("params are sorted for determinism", func(t *testing.T) {
		a := CacheKey("payments", map[string]string{"status": "active", "page": "1", "limit": "10"})
		b := CacheKey("payments", map[string]string{"limit": "10", "page": "1", "status": "active"})
		if a != b {
			t.Errorf("equal filter sets must share a key: %q vs %q", a, b)
		}
		want := "payments|limit=10|page=1|status=active"
		if a != want {
			t.Errorf("key: got %q, want %q", a, want)
		}
	})

	t.Run("blank values are dropped", func(t *testing.T) {
		got := CacheKey("events", map[string]string{"status": "", "period": "month"})
		want := "events|period=month"
		if got != want {
			t.Errorf("key: got %q, want %q", got, want)
		}
	})

	t.Run("no params is just the family", func(t *testing.T) {
		if got := CacheKey("overview", nil); got != "overview" {
			t.Errorf("key: got %q, want overview", got)
		}
	})

	t.Run("different families never collide", func(t *testing.T) {
		if CacheKey("users", nil) == CacheKey("event-planners", nil) {
			t.Error("family must be part of the key")
		}
	})
}
