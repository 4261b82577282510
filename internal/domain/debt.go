package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDebtNotFound             = errors.New("debt not found")
	ErrDebtNameEmpty            = errors.New("debt name is required")
	ErrDebtNameTooLong          = errors.New("debt name must be 100 characters or less")
	ErrDebtTypeInvalid          = errors.New("debt type is not recognized")
	ErrDebtAmountInvalid        = errors.New("debt balance must be at least 1")
	ErrDebtAmountTooLarge       = errors.New("debt balance must be less than 1,000,000,000,000")
	ErrDebtRateInvalid          = errors.New("interest rate must be between 0 and 100")
	ErrDebtRatePrecision        = errors.New("interest rate can have at most 2 decimal places")
	ErrDebtPaymentInvalid       = errors.New("minimum payment cannot be negative")
	ErrDebtPaymentTooLarge      = errors.New("minimum payment must be less than 1,000,000,000,000")
	ErrDebtRemainingTermInvalid = errors.New("remaining term must be at least 1 month")
)

// MaxDebtNameLength is the longest accepted debt display name
const MaxDebtNameLength = 100

// Limits matching the NUMERIC(14,2) money columns and NUMERIC(5,2) rate column
var (
	maxDebtMoney  = decimal.New(1, 12)
	ratePrecision = int32(2)
)

// Debt types. The set is closed; anything else is grouped under its own
// name by the calculator but rejected on entry.
const (
	DebtTypeCreditCard   = "Credit Card"
	DebtTypeStudentLoan  = "Student Loan"
	DebtTypeMortgage     = "Mortgage"
	DebtTypeAutoLoan     = "Auto Loan"
	DebtTypePersonalLoan = "Personal Loan"
	DebtTypeMedicalDebt  = "Medical Debt"
	DebtTypeTaxDebt      = "Tax Debt"
	DebtTypeOther        = "Other"
)

// debtTypeColors maps each debt type to its chart color
var debtTypeColors = map[string]string{
	DebtTypeCreditCard:   "#30BFBF",
	DebtTypeStudentLoan:  "#2CA58D",
	DebtTypeMortgage:     "#0A2342",
	DebtTypeAutoLoan:     "#3B4754",
	DebtTypePersonalLoan: "#90A955",
	DebtTypeMedicalDebt:  "#E76F51",
	DebtTypeTaxDebt:      "#F4A261",
	DebtTypeOther:        "#6D6875",
}

// DebtTypes lists the accepted debt types in display order
var DebtTypes = []string{
	DebtTypeCreditCard,
	DebtTypeStudentLoan,
	DebtTypeMortgage,
	DebtTypeAutoLoan,
	DebtTypePersonalLoan,
	DebtTypeMedicalDebt,
	DebtTypeTaxDebt,
	DebtTypeOther,
}

// DebtTypeColor returns the chart color for a debt type, falling back to
// the color of DebtTypeOther for unrecognized types
func DebtTypeColor(debtType string) string {
	if color, ok := debtTypeColors[debtType]; ok {
		return color
	}
	return debtTypeColors[DebtTypeOther]
}

// IsValidDebtType reports whether debtType is one of DebtTypes (case-sensitive)
func IsValidDebtType(debtType string) bool {
	_, ok := debtTypeColors[debtType]
	return ok
}

// Debt is a single outstanding debt owned by a user
type Debt struct {
	ID             uuid.UUID       `json:"id"`
	UserID         string          `json:"userId"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
	// RemainingTerm is the contractual term in months. Stored and returned
	// but not used by payoff calculations.
	RemainingTerm *int32    `json:"remainingTerm,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Validate checks the entry rules for a debt
func (d *Debt) Validate() error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrDebtNameEmpty
	}
	if len(name) > MaxDebtNameLength {
		return ErrDebtNameTooLong
	}
	if !IsValidDebtType(d.Type) {
		return ErrDebtTypeInvalid
	}
	if d.Amount.LessThan(decimal.NewFromInt(1)) {
		return ErrDebtAmountInvalid
	}
	if d.Amount.GreaterThanOrEqual(maxDebtMoney) {
		return ErrDebtAmountTooLarge
	}
	if d.InterestRate.LessThan(decimal.Zero) || d.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrDebtRateInvalid
	}
	if !d.InterestRate.Equal(d.InterestRate.Round(ratePrecision)) {
		return ErrDebtRatePrecision
	}
	if d.MinimumPayment.LessThan(decimal.Zero) {
		return ErrDebtPaymentInvalid
	}
	if d.MinimumPayment.GreaterThanOrEqual(maxDebtMoney) {
		return ErrDebtPaymentTooLarge
	}
	if d.RemainingTerm != nil && *d.RemainingTerm < 1 {
		return ErrDebtRemainingTermInvalid
	}
	return nil
}

// AmountFloat returns the outstanding principal as a float64
func (d *Debt) AmountFloat() float64 {
	return d.Amount.InexactFloat64()
}

// RateFloat returns the nominal annual interest rate percentage as a float64
func (d *Debt) RateFloat() float64 {
	return d.InterestRate.InexactFloat64()
}

// PaymentFloat returns the monthly minimum payment as a float64
func (d *Debt) PaymentFloat() float64 {
	return d.MinimumPayment.InexactFloat64()
}

// DebtRepository defines persistence operations for debts.
// GetAllByUser returns debts newest first.
type DebtRepository interface {
	Create(ctx context.Context, debt *Debt) (*Debt, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*Debt, error)
	GetAllByUser(ctx context.Context, userID string) ([]*Debt, error)
	Update(ctx context.Context, debt *Debt) (*Debt, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
