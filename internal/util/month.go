package util

import "time"

// StartOfMonth returns midnight on the first day of t's month, in t's location
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths moves t forward by n calendar months, anchored on the first of the
// month so that e.g. Jan 31 + 1 lands in February rather than March
func AddMonths(t time.Time, n int) time.Time {
	return StartOfMonth(t).AddDate(0, n, 0)
}

// MonthsElapsedInYear returns the number of calendar months of t's year so far,
// counting t's own month (January = 1, December = 12)
func MonthsElapsedInYear(t time.Time) int {
	return int(t.Month())
}

// FormatFutureMonth formats the month n months after now as e.g. "June 2028"
func FormatFutureMonth(now time.Time, n int) string {
	return AddMonths(now, n).Format("January 2006")
}

// FormatShortMonth formats t as e.g. "Jan '25"
func FormatShortMonth(t time.Time) string {
	return t.Format("Jan '06")
}
