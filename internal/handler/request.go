package handler

import (
	"errors"
	"strings"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// parseDecimalField parses a required decimal string field
func parseDecimalField(field, value string) (decimal.Decimal, *ValidationError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, &ValidationError{Field: field, Message: "This field is required"}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Message: "Must be a valid decimal number"}
	}
	return d, nil
}

// debtFieldErrors maps debt validation errors to the request field they concern
var debtFieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrDebtNameEmpty, "name", "Name is required"},
	{domain.ErrDebtNameTooLong, "name", "Name must be 100 characters or less"},
	{domain.ErrDebtTypeInvalid, "type", "Type must be one of: " + strings.Join(domain.DebtTypes, ", ")},
	{domain.ErrDebtAmountInvalid, "amount", "Amount must be at least 1"},
	{domain.ErrDebtAmountTooLarge, "amount", "Amount must be less than 1,000,000,000,000"},
	{domain.ErrDebtRateInvalid, "interestRate", "Interest rate must be between 0 and 100"},
	{domain.ErrDebtRatePrecision, "interestRate", "Interest rate can have at most 2 decimal places"},
	{domain.ErrDebtPaymentInvalid, "minimumPayment", "Minimum payment must be non-negative"},
	{domain.ErrDebtPaymentTooLarge, "minimumPayment", "Minimum payment must be less than 1,000,000,000,000"},
	{domain.ErrDebtRemainingTermInvalid, "remainingTerm", "Remaining term must be at least 1 month"},
}

// debtValidationErrors returns the field error for a debt validation error,
// or nil if err is not one
func debtValidationErrors(err error) []ValidationError {
	for _, fe := range debtFieldErrors {
		if errors.Is(err, fe.err) {
			return []ValidationError{{Field: fe.field, Message: fe.message}}
		}
	}
	return nil
}
