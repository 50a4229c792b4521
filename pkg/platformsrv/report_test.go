package platformsrv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkghttp "admin-srv/pkg/http"
)

type reportPayload struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

func newTestPlatform(baseURL string) IPlatform {
	return New(PlatformConfig{
		BaseURL:    baseURL,
		CookieName: "token",
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   2 * time.Second,
			Retries:   0,
			RetryWait: 10 * time.Millisecond,
		}),
	})
}

func TestFetchReport(t *testing.T) {
	ctx := context.Background()

	t.Run("unwraps response envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"totalRevenue":1500.5}}`))
		}))
		defer server.Close()

		res := FetchReport[reportPayload](ctx, newTestPlatform(server.URL), "tok", "/api/admin/reports/dashboard", nil)
		if !res.Success {
			t.Fatalf("expected success, got error %q", res.Error)
		}
		if res.Data.TotalRevenue != 1500.5 {
			t.Errorf("totalRevenue: got %v, want 1500.5", res.Data.TotalRevenue)
		}
	})

	t.Run("accepts bare payload without envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"totalRevenue":99}`))
		}))
		defer server.Close()

		res := FetchReport[reportPayload](ctx, newTestPlatform(server.URL), "tok", "/x", nil)
		if !res.Success {
			t.Fatalf("expected success, got error %q", res.Error)
		}
		if res.Data.TotalRevenue != 99 {
			t.Errorf("totalRevenue: got %v, want 99", res.Data.TotalRevenue)
		}
	})

	t.Run("omits blank params and forwards session cookie", func(t *testing.T) {
		var gotQuery string
		var gotCookie string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			gotCookie = r.Header.Get("Cookie")
			w.Write([]byte(`{"data":{}}`))
		}))
		defer server.Close()

		params := map[string]string{"period": "30d", "status": ""}
		res := FetchReport[reportPayload](ctx, newTestPlatform(server.URL), "session-token", "/x", params)
		if !res.Success {
			t.Fatalf("expected success, got error %q", res.Error)
		}
		if gotQuery != "period=30d" {
			t.Errorf("query: got %q, want period=30d", gotQuery)
		}
		if gotCookie != "token=session-token" {
			t.Errorf("cookie: got %q, want token=session-token", gotCookie)
		}
	})

	t.Run("non-2xx surfaces upstream message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"No report data available"}`))
		}))
		defer server.Close()

		res := FetchReport[reportPayload](ctx, newTestPlatform(server.URL), "tok", "/x", nil)
		if res.Success {
			t.Fatal("expected failure")
		}
		if res.Error != "No report data available" {
			t.Errorf("error: got %q, want upstream message", res.Error)
		}
		if res.Data != nil {
			t.Errorf("data: got %v, want nil", res.Data)
		}
	})

	t.Run("non-2xx without message uses status fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		res := FetchReport[reportPayload](ctx, newTestPlatform(server.URL), "tok", "/x", nil)
		if res.Success {
			t.Fatal("expected failure")
		}
		want := "Failed to fetch report (503)"
		if res.Error != want {
			t.Errorf("error: got %q, want %q", res.Error, want)
		}
	})

	t.Run("transport failure is a network error", func(t *testing.T) {
		// Closed server guarantees a connection error.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		res := FetchReport[reportPayload](ctx, newTestPlatform(server.URL), "tok", "/x", nil)
		if res.Success {
			t.Fatal("expected failure")
		}
		if res.Error != MsgNetworkError {
			t.Errorf("error: got %q, want %q", res.Error, MsgNetworkError)
		}
	})

	t.Run("undecodable body is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		res := FetchReport[reportPayload](ctx, newTestPlatform(server.URL), "tok", "/x", nil)
		if res.Success {
			t.Fatal("expected failure")
		}
		if res.Error != MsgNetworkError {
			t.Errorf("error: got %q, want %q", res.Error, MsgNetworkError)
		}
	})
}
