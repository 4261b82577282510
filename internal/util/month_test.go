package util

import (
	"testing"
	"time"
)

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2026, 3, 17, 15, 4, 5, 0, time.UTC)
	got := StartOfMonth(in)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfMonth(%v) = %v, want %v", in, got, want)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"same year", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 2, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"year wrap", time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC), 3, time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"end of month does not overflow", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"zero months", time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), 0, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.from, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

func TestMonthsElapsedInYear(t *testing.T) {
	tests := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1},
		{time.June, 6},
		{time.December, 12},
	}

	for _, tt := range tests {
		now := time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC)
		if got := MonthsElapsedInYear(now); got != tt.want {
			t.Errorf("MonthsElapsedInYear(%s) = %d, want %d", tt.month, got, tt.want)
		}
	}
}

func TestFormatFutureMonth(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	if got := FormatFutureMonth(now, 0); got != "October 2026" {
		t.Errorf("FormatFutureMonth(now, 0) = %q, want %q", got, "October 2026")
	}
	if got := FormatFutureMonth(now, 20); got != "June 2028" {
		t.Errorf("FormatFutureMonth(now, 20) = %q, want %q", got, "June 2028")
	}
}

func TestFormatShortMonth(t *testing.T) {
	got := FormatShortMonth(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if got != "Jan '25" {
		t.Errorf("FormatShortMonth() = %q, want %q", got, "Jan '25")
	}
}
