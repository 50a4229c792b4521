package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"admin-srv/internal/model"
	"admin-srv/internal/report"
	"admin-srv/internal/report/repository"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
	"admin-srv/pkg/tabular"
)

// fakeCache is an in-memory repository.Cache.
type fakeCache struct {
	mu    sync.Mutex
	fresh map[string][]byte
	last  map[string][]byte
	saves int
}

func newFakeCache() *fakeCache {
	return &fakeCache{fresh: map[string][]byte{}, last: map[string][]byte{}}
}

func (c *fakeCache) GetFresh(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.fresh[key]; ok {
		return v, nil
	}
	return nil, repository.ErrCacheMiss
}

func (c *fakeCache) GetLastGood(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.last[key]; ok {
		return v, nil
	}
	return nil, repository.ErrCacheMiss
}

func (c *fakeCache) Save(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fresh[key] = payload
	c.last[key] = payload
	c.saves++
	return nil
}

// fakePlatform stubs the upstream report endpoint. Only GetJSON is used by
// the report usecase; the embedded interface covers the rest.
type fakePlatform struct {
	platformsrv.IPlatform

	mu         sync.Mutex
	calls      int
	lastPath   string
	lastParams map[string]string
	delay      time.Duration
	respond    func(path string, params map[string]string) ([]byte, int, error)
}

func (p *fakePlatform) GetJSON(_ context.Context, _ string, path string, params map[string]string) ([]byte, int, error) {
	p.mu.Lock()
	p.calls++
	p.lastPath = path
	p.lastParams = params
	respond := p.respond
	delay := p.delay
	p.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if respond != nil {
		return respond(path, params)
	}
	return []byte(`{"data":{}}`), http.StatusOK, nil
}

func (p *fakePlatform) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newTestUseCase(platform *fakePlatform, cache *fakeCache) report.UseCase {
	return New(log.NewNopLogger(), platform, cache)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", SessionToken: "tok"}

	t.Run("equal filter sets fetch upstream once", func(t *testing.T) {
		platform := &fakePlatform{respond: func(path string, params map[string]string) ([]byte, int, error) {
			return []byte(`{"data":{"period":"` + params["period"] + `","users":{"total":10}}}`), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		// Same sequence an impatient dashboard produces: repeated equal
		// selections collapse, each distinct period fetches once.
		periods := []model.Period{
			model.PeriodMonth, model.PeriodMonth, model.PeriodMonth,
			model.PeriodYear, model.PeriodYear,
			model.PeriodAll,
		}
		for _, p := range periods {
			out, err := uc.Dashboard(ctx, sc, report.DashboardInput{Period: p})
			if err != nil {
				t.Fatalf("Dashboard(%s): unexpected error %v", p, err)
			}
			if out.Stale {
				t.Errorf("Dashboard(%s): got stale, want fresh", p)
			}
		}

		if got := platform.callCount(); got != 3 {
			t.Errorf("upstream calls: got %d, want 3", got)
		}
	})

	t.Run("forced refresh bypasses the fresh window", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return []byte(`{"data":{"period":"month","users":{"total":10}}}`), http.StatusOK, nil
		}}
		cache := newFakeCache()
		uc := newTestUseCase(platform, cache)

		input := report.DashboardInput{Period: model.PeriodMonth}
		for i := 0; i < 2; i++ {
			if _, err := uc.Dashboard(ctx, sc, input); err != nil {
				t.Fatalf("Dashboard: unexpected error %v", err)
			}
		}
		if got := platform.callCount(); got != 1 {
			t.Fatalf("upstream calls before refresh: got %d, want 1", got)
		}

		// A user-initiated refresh refetches even though the cached
		// payload is still fresh, and rewrites the cache entry.
		input.Force = true
		if _, err := uc.Dashboard(ctx, sc, input); err != nil {
			t.Fatalf("Dashboard(refresh): unexpected error %v", err)
		}
		if got := platform.callCount(); got != 2 {
			t.Errorf("upstream calls after refresh: got %d, want 2", got)
		}
		if cache.saves != 2 {
			t.Errorf("cache saves: got %d, want 2", cache.saves)
		}

		// The refetched payload is fresh again for non-forced callers.
		input.Force = false
		if _, err := uc.Dashboard(ctx, sc, input); err != nil {
			t.Fatalf("Dashboard: unexpected error %v", err)
		}
		if got := platform.callCount(); got != 2 {
			t.Errorf("upstream calls after refresh settles: got %d, want 2", got)
		}
	})

	t.Run("blank period defaults to month", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := newTestUseCase(platform, newFakeCache())

		if _, err := uc.Dashboard(ctx, sc, report.DashboardInput{}); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.lastParams["period"] != "month" {
			t.Errorf("period param: got %q, want month", platform.lastParams["period"])
		}
	})

	t.Run("invalid period is rejected without an upstream call", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := newTestUseCase(platform, newFakeCache())

		_, err := uc.Dashboard(ctx, sc, report.DashboardInput{Period: "decade"})
		if !errors.Is(err, report.ErrInvalidPeriod) {
			t.Fatalf("error: got %v, want ErrInvalidPeriod", err)
		}
		if got := platform.callCount(); got != 0 {
			t.Errorf("upstream calls: got %d, want 0", got)
		}
	})

	t.Run("upstream failure serves last-good as stale", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return nil, http.StatusInternalServerError, nil
		}}
		cache := newFakeCache()
		key := repository.CacheKey(report.FamilyOverview, map[string]string{"period": "month"})
		cache.last[key] = []byte(`{"period":"month","users":{"total":7}}`)

		uc := newTestUseCase(platform, cache)
		out, err := uc.Dashboard(ctx, sc, report.DashboardInput{Period: model.PeriodMonth})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if !out.Stale {
			t.Error("Stale: got false, want true")
		}
		if out.Data.Users.Total != 7 {
			t.Errorf("users total: got %d, want 7", out.Data.Users.Total)
		}
	})

	t.Run("upstream failure without last-good is an error", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return nil, http.StatusBadGateway, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		_, err := uc.Dashboard(ctx, sc, report.DashboardInput{Period: model.PeriodMonth})
		if !errors.Is(err, report.ErrFetchFailed) {
			t.Fatalf("error: got %v, want ErrFetchFailed", err)
		}
	})

	t.Run("concurrent requests collapse into one upstream call", func(t *testing.T) {
		platform := &fakePlatform{
			delay: 50 * time.Millisecond,
			respond: func(string, map[string]string) ([]byte, int, error) {
				return []byte(`{"data":{"period":"month"}}`), http.StatusOK, nil
			},
		}
		uc := newTestUseCase(platform, newFakeCache())

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := uc.Dashboard(ctx, sc, report.DashboardInput{Period: model.PeriodMonth}); err != nil {
					t.Errorf("concurrent Dashboard: unexpected error %v", err)
				}
			}()
		}
		wg.Wait()

		if got := platform.callCount(); got != 1 {
			t.Errorf("upstream calls: got %d, want 1", got)
		}
	})
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionToken: "tok"}

	t.Run("always requests engagement metrics", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := newTestUseCase(platform, newFakeCache())

		if _, err := uc.Events(ctx, sc, report.EventsInput{}); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.lastParams["includeMetrics"] != "true" {
			t.Errorf("includeMetrics param: got %q, want true", platform.lastParams["includeMetrics"])
		}
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := newTestUseCase(platform, newFakeCache())

		_, err := uc.Events(ctx, sc, report.EventsInput{Status: "archived"})
		if !errors.Is(err, report.ErrInvalidFilters) {
			t.Fatalf("error: got %v, want ErrInvalidFilters", err)
		}
		if got := platform.callCount(); got != 0 {
			t.Errorf("upstream calls: got %d, want 0", got)
		}
	})

	t.Run("pagination is normalized before the fetch", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := newTestUseCase(platform, newFakeCache())

		if _, err := uc.Events(ctx, sc, report.EventsInput{}); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.lastParams["page"] != "1" || platform.lastParams["limit"] != "10" {
			t.Errorf("pagination params: got page=%q limit=%q, want 1/10",
				platform.lastParams["page"], platform.lastParams["limit"])
		}
	})
}

func TestAllCharts(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionToken: "tok"}

	t.Run("failed chart stays nil, the rest still arrive", func(t *testing.T) {
		platform := &fakePlatform{respond: func(path string, _ map[string]string) ([]byte, int, error) {
			if path == platformsrv.PathChartRevenue {
				return nil, http.StatusInternalServerError, nil
			}
			return []byte(`{"data":{"period":"month","timeRange":"Last 30 days"}}`), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		out, err := uc.AllCharts(ctx, sc, report.ChartInput{Period: model.PeriodMonth})
		if err != nil {
			t.Fatalf("AllCharts must not fail on a partial outage, got %v", err)
		}
		if out.Revenue != nil {
			t.Error("Revenue: got payload, want nil")
		}
		if out.Registrations == nil {
			t.Error("Registrations: got nil, want payload")
		}
		if out.Events == nil {
			t.Error("Events: got nil, want payload")
		}
	})

	t.Run("registrations chart defaults to all registrations", func(t *testing.T) {
		var regParams map[string]string
		var mu sync.Mutex
		platform := &fakePlatform{respond: func(path string, params map[string]string) ([]byte, int, error) {
			if path == platformsrv.PathChartRegistrations {
				mu.Lock()
				regParams = params
				mu.Unlock()
			}
			return []byte(`{"data":{}}`), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		if _, err := uc.AllCharts(ctx, sc, report.ChartInput{Period: model.PeriodMonth}); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if regParams["type"] != report.RegistrationsAll {
			t.Errorf("type param: got %q, want all", regParams["type"])
		}
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionToken: "tok"}

	overviewBody := `{"data":{
		"period":"month",
		"users":{"total":120,"inPeriod":12,"growth":8.5},
		"eventPlanners":{"total":30,"inPeriod":3,"growth":-2},
		"events":{"total":45,"inPeriod":5,"growth":0,"byStatus":{"draft":2,"pending":3,"approved":38,"suspended":1,"rejected":1}},
		"revenue":{"totalCents":150000,"totalFormatted":"$1,500.00","growth":12.25,"activeSubscriptions":20,"totalSubscriptions":25},
		"engagement":{"totalViews":900,"totalUniqueViews":700,"totalLikes":50,"totalShares":10,"totalComments":5,"totalRsvps":60,"totalTicketRedirects":15}
	}}`

	t.Run("overview export renders category/metric/value triples", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return []byte(overviewBody), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		out, err := uc.Export(ctx, sc, report.ExportInput{Family: report.FamilyOverview, Format: report.FormatCSV})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		body := string(out.Body)
		if !strings.HasPrefix(body, tabular.BOM) {
			t.Error("body must start with the UTF-8 BOM")
		}
		lines := strings.Split(strings.TrimPrefix(body, tabular.BOM), "\n")
		if lines[0] != "Category,Metric,Value" {
			t.Errorf("header: got %q", lines[0])
		}
		if lines[1] != "Users,Total Users,120" {
			t.Errorf("first row: got %q", lines[1])
		}
		if !strings.Contains(body, "Users,Growth %,8.5%") {
			t.Error("growth must render with one decimal place and a percent sign")
		}
		if !strings.Contains(body, `"Revenue,Total Revenue,""$1,500.00"""`) &&
			!strings.Contains(body, "Revenue,Total Revenue,\"$1,500.00\"") {
			t.Error("formatted revenue must be CSV-escaped")
		}
		if out.ContentType != tabular.MIMECSV {
			t.Errorf("content type: got %q, want %q", out.ContentType, tabular.MIMECSV)
		}
		if !strings.HasPrefix(out.Filename, "overview_report_") || !strings.HasSuffix(out.Filename, ".csv") {
			t.Errorf("filename: got %q", out.Filename)
		}
	})

	t.Run("excel export keeps csv content under spreadsheet type", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return []byte(overviewBody), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		out, err := uc.Export(ctx, sc, report.ExportInput{Family: report.FamilyOverview, Format: report.FormatExcel})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if out.ContentType != tabular.MIMEExcel {
			t.Errorf("content type: got %q, want %q", out.ContentType, tabular.MIMEExcel)
		}
		if !strings.HasSuffix(out.Filename, ".xlsx") {
			t.Errorf("filename: got %q, want .xlsx suffix", out.Filename)
		}
	})

	t.Run("payments export substitutes N/A and formats dates", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return []byte(`{"data":{"transactions":[{
				"id":"tx_1",
				"eventPlanner":null,
				"event":null,
				"plan":"monthly",
				"amountFormatted":"$25.00",
				"status":"active",
				"currentPeriodStart":"2026-08-01T00:00:00Z",
				"currentPeriodEnd":"",
				"createdAt":"2026-08-15T10:30:00Z"
			}]}}`), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		out, err := uc.Export(ctx, sc, report.ExportInput{Family: report.FamilyPayments})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		lines := strings.Split(strings.TrimPrefix(string(out.Body), tabular.BOM), "\n")
		want := "tx_1,N/A,N/A,N/A,monthly,$25.00,active,2026-08-01,N/A,2026-08-15"
		if lines[1] != want {
			t.Errorf("row: got %q, want %q", lines[1], want)
		}
	})

	t.Run("empty result set refuses to export", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return []byte(`{"data":{"users":[]}}`), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		_, err := uc.Export(ctx, sc, report.ExportInput{Family: report.FamilyUsers})
		if !errors.Is(err, report.ErrNoReportData) {
			t.Fatalf("error: got %v, want ErrNoReportData", err)
		}
	})

	t.Run("unknown family is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakePlatform{}, newFakeCache())

		_, err := uc.Export(ctx, sc, report.ExportInput{Family: "ledger"})
		if !errors.Is(err, report.ErrInvalidFamily) {
			t.Fatalf("error: got %v, want ErrInvalidFamily", err)
		}
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakePlatform{}, newFakeCache())

		_, err := uc.Export(ctx, sc, report.ExportInput{Family: report.FamilyOverview, Format: "pdf"})
		if !errors.Is(err, report.ErrInvalidFormat) {
			t.Fatalf("error: got %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("events export requests engagement metrics", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return []byte(`{"data":{"events":[{
				"id":"ev_1",
				"name":"Gala",
				"category":"concert",
				"status":"approved",
				"ticketPrice":20,
				"dateTime":"2026-09-10T19:00:00Z",
				"creator":{"name":"Ada","email":"ada@example.com"},
				"location":{"address":"Main Hall"},
				"metrics":{"views":150,"likes":12,"comments":3,"shares":4,"rsvps":{"total":80}},
				"createdAt":"2026-08-01T00:00:00Z"
			}]}}`), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		out, err := uc.Export(ctx, sc, report.ExportInput{Family: report.FamilyEvents})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.lastParams["includeMetrics"] != "true" {
			t.Errorf("includeMetrics param: got %q, want true", platform.lastParams["includeMetrics"])
		}

		lines := strings.Split(strings.TrimPrefix(string(out.Body), tabular.BOM), "\n")
		want := "ev_1,Gala,concert,approved,$20,2026-09-10,Ada,ada@example.com,Main Hall,150,12,3,4,80,2026-08-01"
		if lines[1] != want {
			t.Errorf("row: got %q, want %q", lines[1], want)
		}
	})

	t.Run("event planner export zero-fills counters and revenue", func(t *testing.T) {
		platform := &fakePlatform{respond: func(string, map[string]string) ([]byte, int, error) {
			return []byte(`{"data":{"eventPlanners":[{
				"id":"ep_1",
				"firstName":"Ada",
				"lastName":"Planner",
				"email":"ada@example.com"
			}]}}`), http.StatusOK, nil
		}}
		uc := newTestUseCase(platform, newFakeCache())

		out, err := uc.Export(ctx, sc, report.ExportInput{Family: report.FamilyEventPlanners})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		lines := strings.Split(strings.TrimPrefix(string(out.Body), tabular.BOM), "\n")
		want := "ep_1,Ada,Planner,ada@example.com,N/A,N/A,0,0,0,$0.00,0,0,N/A"
		if lines[1] != want {
			t.Errorf("row: got %q, want %q", lines[1], want)
		}
	})
}
