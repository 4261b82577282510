package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dafibh/karja/karja-backend/internal/service"
	"github.com/shopspring/decimal"
)

// DebtFile is a TOML list of debts for offline projection:
//
//	monthly_income = 4200
//
//	[[debt]]
//	name = "Visa"
//	type = "Credit Card"
//	amount = 5000
//	interest_rate = 19.99
//	minimum_payment = 150
type DebtFile struct {
	MonthlyIncome float64     `toml:"monthly_income"`
	Debts         []DebtEntry `toml:"debt"`
}

// DebtEntry is one debt in a DebtFile
type DebtEntry struct {
	Name           string  `toml:"name"`
	Type           string  `toml:"type"`
	Amount         float64 `toml:"amount"`
	InterestRate   float64 `toml:"interest_rate"`
	MinimumPayment float64 `toml:"minimum_payment"`
}

// LoadDebtFile reads and parses a debt file
func LoadDebtFile(path string) (*DebtFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading debt file: %w", err)
	}

	var file DebtFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("parsing debt file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing debt file: unknown key %q", undecoded[0].String())
	}

	return &file, nil
}

// Inputs converts the file's debts to calculator inputs. Non-finite
// numbers such as nan or inf are rejected with the position of the debt.
func (f *DebtFile) Inputs() ([]service.CalculatorDebtInput, error) {
	inputs := make([]service.CalculatorDebtInput, len(f.Debts))
	for i, d := range f.Debts {
		amount, err := finiteDecimal("amount", d.Amount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.debtLabel(i), err)
		}
		rate, err := finiteDecimal("interest_rate", d.InterestRate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.debtLabel(i), err)
		}
		payment, err := finiteDecimal("minimum_payment", d.MinimumPayment)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.debtLabel(i), err)
		}

		inputs[i] = service.CalculatorDebtInput{
			Name:           d.Name,
			Type:           d.Type,
			Amount:         amount,
			InterestRate:   rate,
			MinimumPayment: payment,
		}
	}
	return inputs, nil
}

// debtLabel names the i-th debt for error messages, e.g. "debt #2 (Visa)"
func (f *DebtFile) debtLabel(i int) string {
	if name := f.Debts[i].Name; name != "" {
		return fmt.Sprintf("debt #%d (%s)", i+1, name)
	}
	return fmt.Sprintf("debt #%d", i+1)
}

// finiteDecimal converts v, which decimal.NewFromFloat cannot do for NaN or ±Inf
func finiteDecimal(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%s must be a finite number", field)
	}
	return decimal.NewFromFloat(v), nil
}
