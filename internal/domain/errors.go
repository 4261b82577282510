package domain

import "errors"

// Domain errors
var (
	ErrIncomeInvalid = errors.New("monthly income must be positive")
)
