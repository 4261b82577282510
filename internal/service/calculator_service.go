package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxCalculatorDebts caps the number of debts accepted by a stateless summary
const MaxCalculatorDebts = 100

// ErrTooManyDebts is returned when a stateless summary request carries too many debts
var ErrTooManyDebts = errors.New("too many debts in one request")

// DebtInputError reports which posted debt failed validation
type DebtInputError struct {
	Index int
	Err   error
}

func (e *DebtInputError) Error() string {
	return fmt.Sprintf("debt %d: %v", e.Index, e.Err)
}

func (e *DebtInputError) Unwrap() error {
	return e.Err
}

// CalculatorService runs the projection engine on caller-supplied debts
// without touching storage
type CalculatorService struct {
	now func() time.Time
}

// NewCalculatorService creates a new CalculatorService. A nil clock means time.Now.
func NewCalculatorService(now func() time.Time) *CalculatorService {
	if now == nil {
		now = time.Now
	}
	return &CalculatorService{now: now}
}

// CalculatorDebtInput is one debt supplied to the calculator. Name and type
// are optional.
type CalculatorDebtInput struct {
	Name           string
	Type           string
	Amount         decimal.Decimal
	InterestRate   decimal.Decimal
	MinimumPayment decimal.Decimal
}

// toDebt checks the numeric ranges accepted at data entry and fills in
// display defaults for the optional fields
func (in CalculatorDebtInput) toDebt() (*domain.Debt, error) {
	debt := &domain.Debt{
		Name:           strings.TrimSpace(in.Name),
		Type:           in.Type,
		Amount:         in.Amount,
		InterestRate:   in.InterestRate,
		MinimumPayment: in.MinimumPayment,
	}
	if debt.Name == "" {
		debt.Name = "Debt"
	}
	if debt.Type == "" {
		debt.Type = domain.DebtTypeOther
	}
	if err := debt.Validate(); err != nil {
		return nil, err
	}
	return debt, nil
}

// EstimatePayoff returns the payoff figures for a single debt
func (s *CalculatorService) EstimatePayoff(input CalculatorDebtInput) (*PayoffEstimate, error) {
	debt, err := input.toDebt()
	if err != nil {
		return nil, err
	}
	estimate := EstimatePayoff(debt, s.now())
	return &estimate, nil
}

// Summarize computes the full summary for the supplied debts and income
func (s *CalculatorService) Summarize(inputs []CalculatorDebtInput, monthlyIncome float64) (*DashboardSnapshot, error) {
	if len(inputs) > MaxCalculatorDebts {
		return nil, ErrTooManyDebts
	}
	if monthlyIncome <= 0 || math.IsNaN(monthlyIncome) || math.IsInf(monthlyIncome, 0) {
		return nil, domain.ErrIncomeInvalid
	}

	debts := make([]*domain.Debt, 0, len(inputs))
	for i, in := range inputs {
		debt, err := in.toDebt()
		if err != nil {
			return nil, &DebtInputError{Index: i, Err: err}
		}
		debts = append(debts, debt)
	}

	now := s.now()
	summary := GenerateDebtSummary(debts, monthlyIncome, now)
	return &DashboardSnapshot{
		Summary:       summary,
		MonthlyIncome: monthlyIncome,
		RiskLevel:     domain.ClassifyRisk(summary.PaymentToIncomeRatio, summary.DebtFreeMonths),
		DebtCount:     len(debts),
		ComputedAt:    now,
	}, nil
}
