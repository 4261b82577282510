package util

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{6600, "6600.00"},
		{1599.999, "1600.00"},
		{83.3333333, "83.33"},
		{math.NaN(), "0.00"},
		{math.Inf(1), "0.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(200.0 / 3000.0); got != "0.0667" {
		t.Errorf("FormatRatio = %q, want 0.0667", got)
	}
}

func TestPayoffMonthsPtr(t *testing.T) {
	if got := PayoffMonthsPtr(math.MaxInt, math.MaxInt); got != nil {
		t.Errorf("expected nil for never, got %v", *got)
	}
	got := PayoffMonthsPtr(33, math.MaxInt)
	if got == nil || *got != 33 {
		t.Errorf("expected 33, got %v", got)
	}
}
