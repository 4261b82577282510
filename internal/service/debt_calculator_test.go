package service

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var calcNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newDebt(debtType string, amount, rate, payment float64) *domain.Debt {
	return &domain.Debt{
		ID:             uuid.New(),
		UserID:         "auth0|test",
		Name:           debtType,
		Type:           debtType,
		Amount:         decimal.NewFromFloat(amount),
		InterestRate:   decimal.NewFromFloat(rate),
		MinimumPayment: decimal.NewFromFloat(payment),
	}
}

// simulatePayoff applies interest then payment each month and returns the
// first month the balance drops to zero or below
func simulatePayoff(principal, rate, payment float64, limit int) int {
	balance := principal
	for month := 1; month <= limit; month++ {
		balance += CalculateMonthlyInterest(balance, rate)
		balance -= payment
		if balance <= 1e-9 {
			return month
		}
	}
	return -1
}

func TestCalculateMonthlyInterest(t *testing.T) {
	assert.InDelta(t, 83.3333, CalculateMonthlyInterest(5000, 20), 0.0001)
	assert.Equal(t, 0.0, CalculateMonthlyInterest(5000, 0))
	assert.Equal(t, 0.0, CalculateMonthlyInterest(0, 20))
	assert.InDelta(t, 12.0, CalculateMonthlyInterest(1200, 12), 1e-9)
}

func TestCalculateTimeToPayoff_NothingToPay(t *testing.T) {
	assert.Equal(t, 0, CalculateTimeToPayoff(0, 20, 200))
	assert.Equal(t, 0, CalculateTimeToPayoff(-100, 20, 200))
	assert.Equal(t, 0, CalculateTimeToPayoff(5000, 20, 0))
	assert.Equal(t, 0, CalculateTimeToPayoff(5000, 20, -10))
}

func TestCalculateTimeToPayoff_ZeroRate(t *testing.T) {
	tests := []struct {
		principal, payment float64
		want               int
	}{
		{1000, 300, 4},
		{1000, 250, 4},
		{1000, 1000, 1},
		{1000, 5000, 1},
		{999.99, 100, 10},
	}

	for _, tt := range tests {
		got := CalculateTimeToPayoff(tt.principal, 0, tt.payment)
		assert.Equal(t, tt.want, got, "principal %v payment %v", tt.principal, tt.payment)
		assert.Equal(t, int(math.Ceil(tt.principal/tt.payment)), got)
	}
}

func TestCalculateTimeToPayoff_Scenario5000At20Percent(t *testing.T) {
	months := CalculateTimeToPayoff(5000, 20, 200)

	assert.Equal(t, 33, months)
	simulated := simulatePayoff(5000, 20, 200, 1000)
	assert.LessOrEqual(t, math.Abs(float64(months-simulated)), 1.0)
}

func TestCalculateTimeToPayoff_MatchesSimulation(t *testing.T) {
	principals := []float64{1, 250, 5000, 18000, 250000}
	rates := []float64{0, 0.5, 3.9, 12, 20, 29.99, 100}
	paymentMultipliers := []float64{1.05, 1.5, 3, 20}

	for _, principal := range principals {
		for _, rate := range rates {
			interest := CalculateMonthlyInterest(principal, rate)
			for _, mult := range paymentMultipliers {
				// Keep zero-rate payments positive and comparable
				payment := math.Max(interest, principal/100) * mult

				months := CalculateTimeToPayoff(principal, rate, payment)
				require.NotEqual(t, domain.PayoffNever, months, "P=%v r=%v pmt=%v", principal, rate, payment)
				require.Greater(t, months, 0)

				simulated := simulatePayoff(principal, rate, payment, 100000)
				require.NotEqual(t, -1, simulated)
				assert.LessOrEqual(t, math.Abs(float64(months-simulated)), 1.0,
					"P=%v r=%v pmt=%v closed=%d simulated=%d", principal, rate, payment, months, simulated)
			}
		}
	}
}

func TestCalculateTimeToPayoff_NonAmortizing(t *testing.T) {
	// Monthly interest on 5000 at 20% is ~83.33
	assert.Equal(t, domain.PayoffNever, CalculateTimeToPayoff(5000, 20, 50))
	assert.Equal(t, domain.PayoffNever, CalculateTimeToPayoff(5000, 20, 83))

	// Payment exactly equal to the interest never reduces principal
	assert.Equal(t, domain.PayoffNever, CalculateTimeToPayoff(1200, 12, 12))

	for _, principal := range []float64{100, 5000, 300000} {
		for _, rate := range []float64{1, 18, 100} {
			interest := CalculateMonthlyInterest(principal, rate)
			for _, fraction := range []float64{0.01, 0.5, 0.99, 1} {
				assert.Equal(t, domain.PayoffNever, CalculateTimeToPayoff(principal, rate, interest*fraction),
					"P=%v r=%v pmt=%v", principal, rate, interest*fraction)
			}
		}
	}
}

func TestCalculateTotalMonthlyPaymentAndDebt(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 5000, 20, 200),
		newDebt(domain.DebtTypeAutoLoan, 12000, 6.5, 350),
	}

	assert.InDelta(t, 550.0, CalculateTotalMonthlyPayment(debts), 1e-9)
	assert.InDelta(t, 17000.0, CalculateTotalDebt(debts), 1e-9)
	assert.Equal(t, 0.0, CalculateTotalMonthlyPayment(nil))
	assert.Equal(t, 0.0, CalculateTotalDebt(nil))
}

func TestCalculateInterestPaidYTD(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 1200, 12, 100), // 12 per month
		newDebt(domain.DebtTypeStudentLoan, 6000, 0, 100), // no interest
	}

	march := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 36.0, CalculateInterestPaidYTD(debts, march), 1e-9)

	january := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 12.0, CalculateInterestPaidYTD(debts, january), 1e-9)

	december := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 144.0, CalculateInterestPaidYTD(debts, december), 1e-9)

	assert.Equal(t, 0.0, CalculateInterestPaidYTD(nil, march))
}

func TestCalculateDebtFreeDate_Empty(t *testing.T) {
	label, months := CalculateDebtFreeDate(nil, calcNow)
	assert.Equal(t, domain.DebtFreeDateNotApplicable, label)
	assert.Equal(t, 0, months)
}

func TestCalculateDebtFreeDate_IsMaxOfPayoffs(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 5000, 20, 200),
		newDebt(domain.DebtTypeAutoLoan, 12000, 6.5, 350),
		newDebt(domain.DebtTypeMedicalDebt, 800, 0, 100),
	}

	want := 0
	for _, d := range debts {
		if m := CalculateTimeToPayoff(d.AmountFloat(), d.RateFloat(), d.PaymentFloat()); m > want {
			want = m
		}
	}

	label, months := CalculateDebtFreeDate(debts, calcNow)
	assert.Equal(t, want, months)
	assert.Equal(t, FormatFutureDate(want, calcNow), label)
}

func TestCalculateDebtFreeDate_Label(t *testing.T) {
	debts := []*domain.Debt{newDebt(domain.DebtTypeCreditCard, 5000, 20, 200)}

	label, months := CalculateDebtFreeDate(debts, calcNow)
	assert.Equal(t, 33, months)
	// October 2026 + 33 months
	assert.Equal(t, "July 2029", label)
}

func TestCalculateDebtFreeDate_Never(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 5000, 20, 200),
		newDebt(domain.DebtTypePersonalLoan, 5000, 20, 50),
	}

	label, months := CalculateDebtFreeDate(debts, calcNow)
	assert.Equal(t, domain.DebtFreeDateNever, label)
	assert.Equal(t, domain.PayoffNever, months)
}

func TestCalculatePaymentToIncomeRatio(t *testing.T) {
	assert.InDelta(t, 0.25, CalculatePaymentToIncomeRatio(750, 3000), 1e-9)
	assert.Equal(t, 0.0, CalculatePaymentToIncomeRatio(750, 0))
	assert.Equal(t, 0.0, CalculatePaymentToIncomeRatio(750, -100))
}

func TestRemainingPaymentsAndFutureInterest_Amortizing(t *testing.T) {
	debts := []*domain.Debt{newDebt(domain.DebtTypeCreditCard, 5000, 20, 200)}

	months := CalculateTimeToPayoff(5000, 20, 200)
	assert.InDelta(t, 200*float64(months), CalculateTotalRemainingPayments(debts), 1e-9)
	assert.InDelta(t, 200*float64(months)-5000, CalculateFutureInterest(debts), 1e-9)
}

func TestRemainingPaymentsAndFutureInterest_NonAmortizing(t *testing.T) {
	debts := []*domain.Debt{newDebt(domain.DebtTypeCreditCard, 5000, 20, 50)}

	assert.InDelta(t, 5000.0, CalculateTotalRemainingPayments(debts), 1e-9)
	assert.Equal(t, 0.0, CalculateFutureInterest(debts))
}

func TestRemainingPaymentsAndFutureInterest_Mixed(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 5000, 20, 200),
		newDebt(domain.DebtTypePersonalLoan, 5000, 20, 50),
	}

	months := CalculateTimeToPayoff(5000, 20, 200)
	assert.InDelta(t, 200*float64(months)+5000, CalculateTotalRemainingPayments(debts), 1e-9)
	assert.InDelta(t, 200*float64(months)-5000, CalculateFutureInterest(debts), 1e-9)
}

func TestGroupDebtsByType(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeStudentLoan, 15000, 5, 150),
		newDebt(domain.DebtTypeCreditCard, 2000, 22, 60),
		newDebt(domain.DebtTypeStudentLoan, 5000, 4, 50),
		newDebt("Payday Loan", 300, 100, 100),
		newDebt(domain.DebtTypeCreditCard, 1000, 18, 40),
	}

	groups := GroupDebtsByType(debts)
	require.Len(t, groups, 3)

	// First-seen order, not sorted
	assert.Equal(t, domain.DebtTypeStudentLoan, groups[0].Name)
	assert.Equal(t, domain.DebtTypeCreditCard, groups[1].Name)
	assert.Equal(t, "Payday Loan", groups[2].Name)

	assert.InDelta(t, 20000.0, groups[0].Value, 1e-9)
	assert.InDelta(t, 3000.0, groups[1].Value, 1e-9)
	assert.InDelta(t, 300.0, groups[2].Value, 1e-9)

	assert.Equal(t, "#2CA58D", groups[0].Color)
	assert.Equal(t, "#30BFBF", groups[1].Color)
	assert.Equal(t, domain.DebtTypeColor(domain.DebtTypeOther), groups[2].Color)

	sum := 0.0
	for _, g := range groups {
		sum += g.Value
	}
	assert.InDelta(t, CalculateTotalDebt(debts), sum, 1e-6)
}

func TestGroupDebtsByType_CaseSensitive(t *testing.T) {
	debts := []*domain.Debt{
		newDebt("Mortgage", 100000, 4, 600),
		newDebt("mortgage", 50000, 4, 300),
	}

	groups := GroupDebtsByType(debts)
	assert.Len(t, groups, 2)
}

func TestGroupDebtsByType_Empty(t *testing.T) {
	groups := GroupDebtsByType(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestWeightedInterestRate_IsPrincipalWeighted(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 1000, 10, 100),
		newDebt(domain.DebtTypeAutoLoan, 9000, 20, 300),
	}

	want := (1000*10.0 + 9000*20.0) / (1000 + 9000)
	simpleAverage := (10.0 + 20.0) / 2

	got := WeightedInterestRate(debts)
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, 19.0, got, 1e-9)
	assert.NotEqual(t, simpleAverage, got)

	assert.Equal(t, 0.0, WeightedInterestRate(nil))
}

func TestGeneratePaymentTimeline_UsesWeightedRate(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 1000, 10, 100),
		newDebt(domain.DebtTypeAutoLoan, 9000, 20, 300),
	}

	timeline := GeneratePaymentTimeline(debts, 40, calcNow)
	require.GreaterOrEqual(t, len(timeline), 2)

	expected := 10000 + CalculateMonthlyInterest(10000, 19) - 400
	assert.InDelta(t, expected, timeline[1].ProjectedBalance, 1e-9)

	withSimpleAverage := 10000 + CalculateMonthlyInterest(10000, 15) - 400
	assert.NotEqual(t, withSimpleAverage, timeline[1].ProjectedBalance)
}

func TestGeneratePaymentTimeline_ZeroPrincipal(t *testing.T) {
	timeline := GeneratePaymentTimeline(nil, 0, calcNow)
	assert.Equal(t, []domain.TimelinePoint{{Month: "Now", ProjectedBalance: 0}}, timeline)
}

func TestGeneratePaymentTimeline_Amortizing(t *testing.T) {
	debts := []*domain.Debt{newDebt(domain.DebtTypeCreditCard, 5000, 20, 200)}
	months := CalculateTimeToPayoff(5000, 20, 200)

	timeline := GeneratePaymentTimeline(debts, months, calcNow)

	assert.Equal(t, domain.TimelineLabelNow, timeline[0].Month)
	assert.InDelta(t, 5000.0, timeline[0].ProjectedBalance, 1e-9)
	assert.Equal(t, "Nov '26", timeline[1].Month)
	assert.Equal(t, "Dec '26", timeline[2].Month)
	assert.Equal(t, "Jan '27", timeline[3].Month)

	assert.LessOrEqual(t, len(timeline), months+1)
	for i := 1; i < len(timeline); i++ {
		assert.LessOrEqual(t, timeline[i].ProjectedBalance, timeline[i-1].ProjectedBalance)
	}
	assert.Equal(t, 0.0, timeline[len(timeline)-1].ProjectedBalance)
	assert.NotEqual(t, domain.TimelineLabelContinued, timeline[len(timeline)-1].Month)
}

func TestGeneratePaymentTimeline_StopsAtZero(t *testing.T) {
	debts := []*domain.Debt{newDebt(domain.DebtTypeMedicalDebt, 1000, 0, 400)}

	// Horizon longer than needed: the projection stops once the balance is zero
	timeline := GeneratePaymentTimeline(debts, 12, calcNow)

	require.Len(t, timeline, 4)
	assert.InDelta(t, 600.0, timeline[1].ProjectedBalance, 1e-9)
	assert.InDelta(t, 200.0, timeline[2].ProjectedBalance, 1e-9)
	assert.Equal(t, 0.0, timeline[3].ProjectedBalance)
}

func TestGeneratePaymentTimeline_NeverIsCappedWithMarker(t *testing.T) {
	debts := []*domain.Debt{newDebt(domain.DebtTypeCreditCard, 5000, 20, 50)}

	timeline := GeneratePaymentTimeline(debts, domain.PayoffNever, calcNow)

	require.Len(t, timeline, domain.MaxTimelineMonths+2)
	last := timeline[len(timeline)-1]
	assert.Equal(t, domain.TimelineLabelContinued, last.Month)
	assert.Greater(t, last.ProjectedBalance, 5000.0)
	assert.Equal(t, timeline[len(timeline)-2].ProjectedBalance, last.ProjectedBalance)
}

func TestGeneratePaymentTimeline_LongHorizonIsCapped(t *testing.T) {
	// 30-year mortgage with a long tail beyond 360 months
	debts := []*domain.Debt{newDebt(domain.DebtTypeMortgage, 300000, 6, 1600)}
	months := CalculateTimeToPayoff(300000, 6, 1600)
	require.Greater(t, months, domain.MaxTimelineMonths)

	timeline := GeneratePaymentTimeline(debts, months, calcNow)

	assert.LessOrEqual(t, len(timeline), domain.MaxTimelineMonths+2)
	assert.Equal(t, domain.TimelineLabelContinued, timeline[len(timeline)-1].Month)
}

func TestGeneratePaymentTimeline_AggregateCanFinishDespiteNeverDebt(t *testing.T) {
	// One debt never pays off alone, but the blended projection reaches zero
	debts := []*domain.Debt{
		newDebt(domain.DebtTypePersonalLoan, 5000, 20, 50),
		newDebt(domain.DebtTypeMedicalDebt, 1000, 0, 500),
	}

	_, months := CalculateDebtFreeDate(debts, calcNow)
	require.Equal(t, domain.PayoffNever, months)

	timeline := GeneratePaymentTimeline(debts, months, calcNow)
	last := timeline[len(timeline)-1]
	assert.Equal(t, 0.0, last.ProjectedBalance)
	assert.NotEqual(t, domain.TimelineLabelContinued, last.Month)
	assert.Less(t, len(timeline), 30)
}

func TestGeneratePaymentTimeline_ZeroHorizon(t *testing.T) {
	// No payments: payoff is 0 months, so only the starting point is produced
	debts := []*domain.Debt{newDebt(domain.DebtTypeOther, 1000, 10, 0)}

	timeline := GeneratePaymentTimeline(debts, 0, calcNow)
	assert.Equal(t, []domain.TimelinePoint{{Month: "Now", ProjectedBalance: 1000}}, timeline)
}

func TestGenerateDebtSummary_Empty(t *testing.T) {
	for _, income := range []float64{3000, 0, -1} {
		summary := GenerateDebtSummary(nil, income, calcNow)

		assert.Equal(t, 0.0, summary.TotalDebt)
		assert.Equal(t, 0.0, summary.MonthlyPayments)
		assert.Equal(t, 0.0, summary.InterestPaidYTD)
		assert.Equal(t, domain.DebtFreeDateNotApplicable, summary.DebtFreeDate)
		assert.Equal(t, 0, summary.DebtFreeMonths)
		assert.Equal(t, 0.0, summary.PaymentToIncomeRatio)
		assert.Equal(t, 0.0, summary.TotalRemainingPayments)
		assert.Equal(t, 0.0, summary.FutureInterest)
		assert.Empty(t, summary.DebtByType)
		assert.Equal(t, []domain.TimelinePoint{{Month: "Now", ProjectedBalance: 0}}, summary.PaymentTimeline)
	}
}

func TestGenerateDebtSummary_Portfolio(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 5000, 20, 200),
		newDebt(domain.DebtTypeStudentLoan, 15000, 5, 250),
		newDebt(domain.DebtTypeAutoLoan, 8000, 7, 300),
	}

	summary := GenerateDebtSummary(debts, 3000, calcNow)

	assert.InDelta(t, 28000.0, summary.TotalDebt, 1e-9)
	assert.InDelta(t, 750.0, summary.MonthlyPayments, 1e-9)
	assert.InDelta(t, 0.25, summary.PaymentToIncomeRatio, 1e-9)
	assert.InDelta(t, CalculateInterestPaidYTD(debts, calcNow), summary.InterestPaidYTD, 1e-9)

	label, months := CalculateDebtFreeDate(debts, calcNow)
	assert.Equal(t, label, summary.DebtFreeDate)
	assert.Equal(t, months, summary.DebtFreeMonths)
	assert.False(t, summary.IsDebtFreeNever())

	assert.InDelta(t, summary.TotalDebt+summary.FutureInterest, summary.TotalRemainingPayments, 1e-6)
	assert.Len(t, summary.DebtByType, 3)
	assert.InDelta(t, 28000.0, summary.PaymentTimeline[0].ProjectedBalance, 1e-9)
}

func TestGenerateDebtSummary_NonAmortizingScenario(t *testing.T) {
	debts := []*domain.Debt{newDebt(domain.DebtTypeCreditCard, 5000, 20, 50)}

	summary := GenerateDebtSummary(debts, 3000, calcNow)

	assert.True(t, summary.IsDebtFreeNever())
	assert.Equal(t, domain.DebtFreeDateNever, summary.DebtFreeDate)
	assert.Equal(t, 0.0, summary.FutureInterest)
	assert.InDelta(t, 5000.0, summary.TotalRemainingPayments, 1e-9)
	assert.Equal(t, domain.TimelineLabelContinued, summary.PaymentTimeline[len(summary.PaymentTimeline)-1].Month)
}

func TestGenerateDebtSummary_DeterministicAndConcurrent(t *testing.T) {
	debts := []*domain.Debt{
		newDebt(domain.DebtTypeCreditCard, 5000, 20, 200),
		newDebt(domain.DebtTypeMortgage, 200000, 5.5, 1300),
	}
	want := GenerateDebtSummary(debts, 4200, calcNow)

	var wg sync.WaitGroup
	results := make([]domain.DebtSummary, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GenerateDebtSummary(debts, 4200, calcNow)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestEstimatePayoff(t *testing.T) {
	estimate := EstimatePayoff(newDebt(domain.DebtTypeCreditCard, 5000, 20, 200), calcNow)

	assert.InDelta(t, 83.3333, estimate.MonthlyInterest, 0.0001)
	assert.Equal(t, 33, estimate.Months)
	assert.Equal(t, "July 2029", estimate.PayoffDate)
	assert.InDelta(t, 6600.0, estimate.TotalPayments, 1e-9)
	assert.InDelta(t, 1600.0, estimate.FutureInterest, 1e-9)
	assert.False(t, estimate.NonAmortizing)

	never := EstimatePayoff(newDebt(domain.DebtTypeCreditCard, 5000, 20, 50), calcNow)
	assert.Equal(t, domain.PayoffNever, never.Months)
	assert.Equal(t, domain.DebtFreeDateNever, never.PayoffDate)
	assert.InDelta(t, 5000.0, never.TotalPayments, 1e-9)
	assert.Equal(t, 0.0, never.FutureInterest)
	assert.True(t, never.NonAmortizing)
}
