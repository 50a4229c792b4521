package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int
	}{
		{"zero values get defaults", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative values get defaults", PaginateQuery{Page: -3, Limit: -1}, DefaultPage, DefaultLimit},
		{"valid values pass through", PaginateQuery{Page: 4, Limit: 25}, 4, 25},
		{"limit is capped", PaginateQuery{Page: 1, Limit: 500}, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			if q.Page != tt.wantPage {
				t.Errorf("Page: got %d, want %d", q.Page, tt.wantPage)
			}
			if q.Limit != tt.wantLimit {
				t.Errorf("Limit: got %d, want %d", q.Limit, tt.wantLimit)
			}
		})
	}
}

func TestParams(t *testing.T) {
	q := PaginateQuery{Page: 2, Limit: 50}
	params := q.Params()
	if params["page"] != "2" {
		t.Errorf("page param: got %q, want 2", params["page"])
	}
	if params["limit"] != "50" {
		t.Errorf("limit param: got %q, want 50", params["limit"])
	}
}

func TestPaginator(t *testing.T) {
	t.Run("total pages rounds up", func(t *testing.T) {
		p := Paginator{Total: 101, PerPage: 10, CurrentPage: 1}
		if got := p.TotalPages(); got != 11 {
			t.Errorf("TotalPages: got %d, want 11", got)
		}
	})

	t.Run("empty result has no pages", func(t *testing.T) {
		p := Paginator{Total: 0, PerPage: 10}
		if got := p.TotalPages(); got != 0 {
			t.Errorf("TotalPages: got %d, want 0", got)
		}
	})

	t.Run("next and previous page flags", func(t *testing.T) {
		p := Paginator{Total: 30, PerPage: 10, CurrentPage: 2}
		if !p.HasNextPage() {
			t.Error("HasNextPage: got false, want true")
		}
		if !p.HasPreviousPage() {
			t.Error("HasPreviousPage: got false, want true")
		}

		last := Paginator{Total: 30, PerPage: 10, CurrentPage: 3}
		if last.HasNextPage() {
			t.Error("HasNextPage on last page: got true, want false")
		}
	})
}
