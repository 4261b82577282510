package util

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an engine amount as a two-decimal string, e.g. "6600.00".
// Non-finite values render as "0.00".
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatRatio renders a fraction with four decimals, e.g. "0.0667"
func FormatRatio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.0000"
	}
	return decimal.NewFromFloat(v).StringFixed(4)
}

// PayoffMonthsPtr returns nil for an infinite payoff horizon and a pointer to
// months otherwise, so JSON renders "never" as null
func PayoffMonthsPtr(months, never int) *int {
	if months == never {
		return nil
	}
	return &months
}
