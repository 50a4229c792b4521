package util

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339 becomes plain date", "2026-08-15T10:30:00Z", "2026-08-15"},
		{"offset timestamps keep the source date", "2026-01-02T23:00:00+07:00", "2026-01-02"},
		{"unparseable input passes through", "yesterday", "yesterday"},
		{"empty input passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.in); got != tt.want {
				t.Errorf("FormatTimestamp(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrToDate(t *testing.T) {
	dt, err := StrToDate("2026-08-28")
	if err != nil {
		t.Fatalf("StrToDate: unexpected error %v", err)
	}
	if got := DateToStr(dt); got != "2026-08-28" {
		t.Errorf("round trip: got %q, want 2026-08-28", got)
	}

	if _, err := StrToDate("28/08/2026"); err == nil {
		t.Error("StrToDate must reject non ISO dates")
	}
}
