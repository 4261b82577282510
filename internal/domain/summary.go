package domain

import "math"

// PayoffNever is the payoff horizon of a debt that cannot be paid off
// under its current payment
const PayoffNever = math.MaxInt

// Debt-free date labels
const (
	DebtFreeDateNever         = "Never"
	DebtFreeDateNotApplicable = "N/A"
)

// Timeline labels
const (
	TimelineLabelNow       = "Now"
	TimelineLabelContinued = "..."
)

// MaxTimelineMonths caps the payment timeline projection at 30 years
const MaxTimelineMonths = 360

// DefaultMonthlyIncome is the income assumed when the user has not set one
const DefaultMonthlyIncome = 3000.0

// DebtTypeTotal is the principal owed under one debt type
type DebtTypeTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// TimelinePoint is one month of the aggregate balance projection
type TimelinePoint struct {
	Month            string  `json:"month"`
	ProjectedBalance float64 `json:"projectedBalance"`
}

// DebtSummary is derived from a debt list and an income assumption.
// It is recomputed whenever either changes and never persisted.
type DebtSummary struct {
	TotalDebt              float64         `json:"totalDebt"`
	MonthlyPayments        float64         `json:"monthlyPayments"`
	InterestPaidYTD        float64         `json:"interestPaidYTD"`
	DebtFreeDate           string          `json:"debtFreeDate"`
	DebtFreeMonths         int             `json:"debtFreeMonths"`
	PaymentToIncomeRatio   float64         `json:"paymentToIncomeRatio"`
	TotalRemainingPayments float64         `json:"totalRemainingPayments"`
	FutureInterest         float64         `json:"futureInterest"`
	DebtByType             []DebtTypeTotal `json:"debtByType"`
	PaymentTimeline        []TimelinePoint `json:"paymentTimeline"`
}

// IsDebtFreeNever reports whether at least one debt can never be paid off
func (s *DebtSummary) IsDebtFreeNever() bool {
	return s.DebtFreeMonths == PayoffNever
}
