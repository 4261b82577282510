package cli

import (
	"fmt"
	"strings"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/util"
)

// FormatMoney renders an amount with two decimals and thousands separators,
// e.g. "12,345.67"
func FormatMoney(v float64) string {
	s := util.FormatMoney(v)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}

// FormatPercent renders a fraction as a percentage, e.g. 0.0667 -> "6.7%"
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// FormatMonths renders a payoff horizon, e.g. "33 months (2y 9m)"
func FormatMonths(months int) string {
	if months == domain.PayoffNever {
		return domain.DebtFreeDateNever
	}
	if months == 1 {
		return "1 month"
	}
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	return fmt.Sprintf("%d months (%dy %dm)", months, months/12, months%12)
}
