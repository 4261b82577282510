package service

import (
	"math"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/util"
)

// Debt projection functions. All of them are pure: they read only their
// arguments and never touch storage, so they are safe to call concurrently.
// Functions that label months take the reference date explicitly.

// CalculateMonthlyInterest returns one month of interest on principal at a
// nominal annual rate given as a percentage
func CalculateMonthlyInterest(principal, annualRatePercent float64) float64 {
	return principal * monthlyRate(annualRatePercent)
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// CalculateTimeToPayoff returns the whole number of months needed to pay off
// principal with a fixed monthly payment, rounding a partial month up.
// Returns 0 when there is nothing to pay or no payment, and
// domain.PayoffNever when the payment does not outpace the interest.
func CalculateTimeToPayoff(principal, annualRatePercent, monthlyPayment float64) int {
	if monthlyPayment <= 0 || principal <= 0 {
		return 0
	}

	rate := monthlyRate(annualRatePercent)
	if rate == 0 {
		return int(math.Ceil(principal / monthlyPayment))
	}

	// n = -ln(1 - P*r/PMT) / ln(1+r)
	numerator := -math.Log(1 - principal*rate/monthlyPayment)
	denominator := math.Log(1 + rate)
	months := numerator / denominator

	if math.IsNaN(months) || math.IsInf(months, 0) || denominator == 0 {
		return domain.PayoffNever
	}
	months = math.Ceil(months)
	if months >= float64(domain.PayoffNever) {
		return domain.PayoffNever
	}
	return int(months)
}

// CalculateTotalMonthlyPayment sums the minimum payments of all debts
func CalculateTotalMonthlyPayment(debts []*domain.Debt) float64 {
	total := 0.0
	for _, d := range debts {
		total += d.PaymentFloat()
	}
	return total
}

// CalculateTotalDebt sums the outstanding principal of all debts
func CalculateTotalDebt(debts []*domain.Debt) float64 {
	total := 0.0
	for _, d := range debts {
		total += d.AmountFloat()
	}
	return total
}

// CalculateInterestPaidYTD approximates the interest accrued this calendar
// year by charging each debt's current monthly interest for every month
// elapsed so far, including the current one. Balances are assumed constant
// since January.
func CalculateInterestPaidYTD(debts []*domain.Debt, now time.Time) float64 {
	monthsElapsed := float64(util.MonthsElapsedInYear(now))

	total := 0.0
	for _, d := range debts {
		total += CalculateMonthlyInterest(d.AmountFloat(), d.RateFloat()) * monthsElapsed
	}
	return total
}

// CalculateDebtFreeDate returns the payoff horizon of the slowest debt and its
// month label. An empty list is "N/A" with zero months; a debt that can never
// be paid off makes the whole list "Never" with domain.PayoffNever months.
func CalculateDebtFreeDate(debts []*domain.Debt, now time.Time) (string, int) {
	if len(debts) == 0 {
		return domain.DebtFreeDateNotApplicable, 0
	}

	maxMonths := 0
	for _, d := range debts {
		months := CalculateTimeToPayoff(d.AmountFloat(), d.RateFloat(), d.PaymentFloat())
		if months > maxMonths {
			maxMonths = months
		}
	}

	if maxMonths == domain.PayoffNever {
		return domain.DebtFreeDateNever, domain.PayoffNever
	}
	return FormatFutureDate(maxMonths, now), maxMonths
}

// FormatFutureDate labels the month that is monthsFromNow after now, e.g. "June 2028"
func FormatFutureDate(monthsFromNow int, now time.Time) string {
	if monthsFromNow == domain.PayoffNever {
		return domain.DebtFreeDateNever
	}
	return util.FormatFutureMonth(now, monthsFromNow)
}

// FormatMonthYear labels a timeline month, e.g. "Jan '25"
func FormatMonthYear(t time.Time) string {
	return util.FormatShortMonth(t)
}

// CalculatePaymentToIncomeRatio divides monthly payments by monthly income,
// returning 0 for a non-positive income
func CalculatePaymentToIncomeRatio(monthlyPayment, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	return monthlyPayment / monthlyIncome
}

// isNonAmortizing reports whether a debt's payment fails to cover its interest
func isNonAmortizing(d *domain.Debt) bool {
	return d.PaymentFloat() <= CalculateMonthlyInterest(d.AmountFloat(), d.RateFloat())
}

// CalculateTotalRemainingPayments sums principal plus interest still to be
// paid across debts. A debt whose payment does not cover its interest has no
// finite total and contributes only its principal.
func CalculateTotalRemainingPayments(debts []*domain.Debt) float64 {
	total := 0.0
	for _, d := range debts {
		if isNonAmortizing(d) {
			total += d.AmountFloat()
			continue
		}
		months := CalculateTimeToPayoff(d.AmountFloat(), d.RateFloat(), d.PaymentFloat())
		total += d.PaymentFloat() * float64(months)
	}
	return total
}

// CalculateFutureInterest sums the interest still to be paid across debts.
// A debt whose payment does not cover its interest contributes nothing.
func CalculateFutureInterest(debts []*domain.Debt) float64 {
	total := 0.0
	for _, d := range debts {
		if isNonAmortizing(d) {
			continue
		}
		months := CalculateTimeToPayoff(d.AmountFloat(), d.RateFloat(), d.PaymentFloat())
		total += d.PaymentFloat()*float64(months) - d.AmountFloat()
	}
	return total
}

// GroupDebtsByType totals principal per debt type in first-seen order
func GroupDebtsByType(debts []*domain.Debt) []domain.DebtTypeTotal {
	groups := make([]domain.DebtTypeTotal, 0)
	index := make(map[string]int)

	for _, d := range debts {
		i, ok := index[d.Type]
		if !ok {
			i = len(groups)
			index[d.Type] = i
			groups = append(groups, domain.DebtTypeTotal{
				Name:  d.Type,
				Color: domain.DebtTypeColor(d.Type),
			})
		}
		groups[i].Value += d.AmountFloat()
	}
	return groups
}

// WeightedInterestRate returns the principal-weighted average annual rate
// Σ(amount·rate) / Σamount, or 0 when there is no principal
func WeightedInterestRate(debts []*domain.Debt) float64 {
	totalDebt := CalculateTotalDebt(debts)
	if totalDebt == 0 {
		return 0
	}

	weighted := 0.0
	for _, d := range debts {
		weighted += d.AmountFloat() * d.RateFloat()
	}
	return weighted / totalDebt
}

// GeneratePaymentTimeline projects the combined balance month by month using
// a single blended rate and the total of minimum payments. This is a
// smoothed aggregate for charting and deliberately does not follow each
// debt's own amortization. The projection runs for debtFreeMonths, capped at
// domain.MaxTimelineMonths; a capped run that has not reached zero ends with
// a "..." point carrying the remaining balance.
func GeneratePaymentTimeline(debts []*domain.Debt, debtFreeMonths int, now time.Time) []domain.TimelinePoint {
	totalDebt := CalculateTotalDebt(debts)
	if totalDebt == 0 {
		return []domain.TimelinePoint{{Month: domain.TimelineLabelNow, ProjectedBalance: 0}}
	}

	totalPayment := CalculateTotalMonthlyPayment(debts)
	weightedRate := WeightedInterestRate(debts)

	monthsToProject := debtFreeMonths
	if monthsToProject > domain.MaxTimelineMonths {
		monthsToProject = domain.MaxTimelineMonths
	}

	timeline := make([]domain.TimelinePoint, 0, monthsToProject+2)
	timeline = append(timeline, domain.TimelinePoint{Month: domain.TimelineLabelNow, ProjectedBalance: totalDebt})

	balance := totalDebt
	for i := 1; i <= monthsToProject; i++ {
		balance += CalculateMonthlyInterest(balance, weightedRate)
		balance -= totalPayment
		balance = math.Max(0, balance)

		timeline = append(timeline, domain.TimelinePoint{
			Month:            FormatMonthYear(util.AddMonths(now, i)),
			ProjectedBalance: balance,
		})

		if balance == 0 {
			break
		}
	}

	if monthsToProject == domain.MaxTimelineMonths && balance > 0 {
		timeline = append(timeline, domain.TimelinePoint{Month: domain.TimelineLabelContinued, ProjectedBalance: balance})
	}

	return timeline
}

// GenerateDebtSummary computes the full summary for a debt list and a monthly
// income as of now
func GenerateDebtSummary(debts []*domain.Debt, monthlyIncome float64, now time.Time) domain.DebtSummary {
	monthlyPayments := CalculateTotalMonthlyPayment(debts)
	debtFreeDate, debtFreeMonths := CalculateDebtFreeDate(debts, now)

	return domain.DebtSummary{
		TotalDebt:              CalculateTotalDebt(debts),
		MonthlyPayments:        monthlyPayments,
		InterestPaidYTD:        CalculateInterestPaidYTD(debts, now),
		DebtFreeDate:           debtFreeDate,
		DebtFreeMonths:         debtFreeMonths,
		PaymentToIncomeRatio:   CalculatePaymentToIncomeRatio(monthlyPayments, monthlyIncome),
		TotalRemainingPayments: CalculateTotalRemainingPayments(debts),
		FutureInterest:         CalculateFutureInterest(debts),
		DebtByType:             GroupDebtsByType(debts),
		PaymentTimeline:        GeneratePaymentTimeline(debts, debtFreeMonths, now),
	}
}

// PayoffEstimate is the payoff picture for a single debt
type PayoffEstimate struct {
	MonthlyInterest float64
	Months          int
	PayoffDate      string
	TotalPayments   float64
	FutureInterest  float64
	NonAmortizing   bool
}

// EstimatePayoff computes the payoff figures of one debt using the same rules
// as the summary totals
func EstimatePayoff(debt *domain.Debt, now time.Time) PayoffEstimate {
	debts := []*domain.Debt{debt}
	months := CalculateTimeToPayoff(debt.AmountFloat(), debt.RateFloat(), debt.PaymentFloat())

	return PayoffEstimate{
		MonthlyInterest: CalculateMonthlyInterest(debt.AmountFloat(), debt.RateFloat()),
		Months:          months,
		PayoffDate:      FormatFutureDate(months, now),
		TotalPayments:   CalculateTotalRemainingPayments(debts),
		FutureInterest:  CalculateFutureInterest(debts),
		NonAmortizing:   isNonAmortizing(debt),
	}
}
