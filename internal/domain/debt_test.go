package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validDebt() *Debt {
	return &Debt{
		UserID:         "auth0|test",
		Name:           "Visa",
		Type:           DebtTypeCreditCard,
		Amount:         decimal.NewFromInt(5000),
		InterestRate:   decimal.NewFromInt(20),
		MinimumPayment: decimal.NewFromInt(200),
	}
}

func TestDebtValidate(t *testing.T) {
	zeroTerm := int32(0)

	tests := []struct {
		name    string
		mutate  func(d *Debt)
		wantErr error
	}{
		{"valid debt", func(d *Debt) {}, nil},
		{"blank name", func(d *Debt) { d.Name = "   " }, ErrDebtNameEmpty},
		{"name too long", func(d *Debt) { d.Name = strings.Repeat("a", MaxDebtNameLength+1) }, ErrDebtNameTooLong},
		{"unknown type", func(d *Debt) { d.Type = "credit card" }, ErrDebtTypeInvalid},
		{"balance below one", func(d *Debt) { d.Amount = decimal.NewFromFloat(0.5) }, ErrDebtAmountInvalid},
		{"negative rate", func(d *Debt) { d.InterestRate = decimal.NewFromInt(-1) }, ErrDebtRateInvalid},
		{"rate above 100", func(d *Debt) { d.InterestRate = decimal.NewFromFloat(100.01) }, ErrDebtRateInvalid},
		{"rate of exactly 100", func(d *Debt) { d.InterestRate = decimal.NewFromInt(100) }, nil},
		{"zero payment allowed", func(d *Debt) { d.MinimumPayment = decimal.Zero }, nil},
		{"negative payment", func(d *Debt) { d.MinimumPayment = decimal.NewFromInt(-5) }, ErrDebtPaymentInvalid},
		{"balance just under the column limit", func(d *Debt) { d.Amount = decimal.RequireFromString("999999999999.99") }, nil},
		{"balance at the column limit", func(d *Debt) { d.Amount = decimal.New(1, 12) }, ErrDebtAmountTooLarge},
		{"balance beyond float range", func(d *Debt) { d.Amount = decimal.RequireFromString("1e400") }, ErrDebtAmountTooLarge},
		{"payment at the column limit", func(d *Debt) { d.MinimumPayment = decimal.New(1, 12) }, ErrDebtPaymentTooLarge},
		{"rate with two decimals", func(d *Debt) { d.InterestRate = decimal.RequireFromString("19.99") }, nil},
		{"rate with trailing zero", func(d *Debt) { d.InterestRate = decimal.RequireFromString("19.990") }, nil},
		{"rate with three decimals", func(d *Debt) { d.InterestRate = decimal.RequireFromString("19.999") }, ErrDebtRatePrecision},
		{"zero remaining term", func(d *Debt) { d.RemainingTerm = &zeroTerm }, ErrDebtRemainingTermInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDebt()
			tt.mutate(d)
			if err := d.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDebtTypeColor(t *testing.T) {
	if got := DebtTypeColor(DebtTypeMortgage); got != "#0A2342" {
		t.Errorf("DebtTypeColor(Mortgage) = %s, want #0A2342", got)
	}
	if got := DebtTypeColor("Payday Loan"); got != DebtTypeColor(DebtTypeOther) {
		t.Errorf("unknown type should fall back to Other color, got %s", got)
	}
	// Lookup is case-sensitive
	if got := DebtTypeColor("mortgage"); got != DebtTypeColor(DebtTypeOther) {
		t.Errorf("lowercase type should fall back to Other color, got %s", got)
	}
}

func TestDebtTypesAllHaveColors(t *testing.T) {
	for _, debtType := range DebtTypes {
		if !IsValidDebtType(debtType) {
			t.Errorf("%s is listed but has no color", debtType)
		}
	}
	if len(DebtTypes) != len(debtTypeColors) {
		t.Errorf("DebtTypes has %d entries, color table has %d", len(DebtTypes), len(debtTypeColors))
	}
}

func TestDebtFloatAccessors(t *testing.T) {
	d := validDebt()
	d.Amount = decimal.RequireFromString("1234.56")

	if d.AmountFloat() != 1234.56 {
		t.Errorf("AmountFloat() = %v, want 1234.56", d.AmountFloat())
	}
	if d.RateFloat() != 20 {
		t.Errorf("RateFloat() = %v, want 20", d.RateFloat())
	}
	if d.PaymentFloat() != 200 {
		t.Errorf("PaymentFloat() = %v, want 200", d.PaymentFloat())
	}
}
