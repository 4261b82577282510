package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/service"
	"github.com/dafibh/karja/karja-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CalculatorHandler serves stateless projections over posted debts
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
	defaultIncome     float64
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculatorService *service.CalculatorService, defaultIncome float64) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService, defaultIncome: defaultIncome}
}

// CalculatorDebtRequest is one debt posted to the calculator
type CalculatorDebtRequest struct {
	Name           string `json:"name,omitempty"`
	Type           string `json:"type,omitempty"`
	Amount         string `json:"amount"`
	InterestRate   string `json:"interestRate"`
	MinimumPayment string `json:"minimumPayment"`
}

// CalculatorSummaryRequest is the body of a stateless summary request.
// MonthlyIncome defaults to the server's default income when empty.
type CalculatorSummaryRequest struct {
	Debts         []CalculatorDebtRequest `json:"debts"`
	MonthlyIncome string                  `json:"monthlyIncome,omitempty"`
}

// PayoffResponse is the payoff picture of one debt.
// Months is null when the payment never covers the interest.
type PayoffResponse struct {
	MonthlyInterest string `json:"monthlyInterest"`
	Months          *int   `json:"months"`
	PayoffDate      string `json:"payoffDate"`
	TotalPayments   string `json:"totalPayments"`
	FutureInterest  string `json:"futureInterest"`
	NonAmortizing   bool   `json:"nonAmortizing"`
}

func (r CalculatorDebtRequest) toInput(prefix string) (service.CalculatorDebtInput, []ValidationError) {
	var fieldErrors []ValidationError
	parse := func(field, value string) decimal.Decimal {
		d, fe := parseDecimalField(prefix+field, value)
		if fe != nil {
			fieldErrors = append(fieldErrors, *fe)
		}
		return d
	}

	input := service.CalculatorDebtInput{
		Name:           r.Name,
		Type:           r.Type,
		Amount:         parse("amount", r.Amount),
		InterestRate:   parse("interestRate", r.InterestRate),
		MinimumPayment: parse("minimumPayment", r.MinimumPayment),
	}
	return input, fieldErrors
}

// prefixFieldErrors qualifies field names with the debt's position in the request
func prefixFieldErrors(prefix string, errs []ValidationError) []ValidationError {
	for i := range errs {
		errs[i].Field = prefix + errs[i].Field
	}
	return errs
}

// Payoff godoc
// @Summary Estimate one debt's payoff
// @Description Months to payoff, payoff month, total payments and future interest for a single debt. Nothing is stored.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculatorDebtRequest true "Debt"
// @Success 200 {object} PayoffResponse
// @Failure 400 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /calculator/payoff [post]
func (h *CalculatorHandler) Payoff(c echo.Context) error {
	var req CalculatorDebtRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, fieldErrors := req.toInput("")
	if len(fieldErrors) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrors)
	}

	estimate, err := h.calculatorService.EstimatePayoff(input)
	if err != nil {
		if fieldErrors := debtValidationErrors(err); fieldErrors != nil {
			return NewValidationError(c, "Validation failed", fieldErrors)
		}
		log.Error().Err(err).Msg("Failed to estimate payoff")
		return NewInternalError(c, "Failed to estimate payoff")
	}

	return c.JSON(http.StatusOK, PayoffResponse{
		MonthlyInterest: util.FormatMoney(estimate.MonthlyInterest),
		Months:          util.PayoffMonthsPtr(estimate.Months, domain.PayoffNever),
		PayoffDate:      estimate.PayoffDate,
		TotalPayments:   util.FormatMoney(estimate.TotalPayments),
		FutureInterest:  util.FormatMoney(estimate.FutureInterest),
		NonAmortizing:   estimate.NonAmortizing,
	})
}

// Summary godoc
// @Summary Summarize posted debts
// @Description Full debt summary for the posted debts and income. Nothing is stored.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculatorSummaryRequest true "Debts and income"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /calculator/summary [post]
func (h *CalculatorHandler) Summary(c echo.Context) error {
	var req CalculatorSummaryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	income := h.defaultIncome
	if req.MonthlyIncome != "" {
		d, fe := parseDecimalField("monthlyIncome", req.MonthlyIncome)
		if fe != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{*fe})
		}
		income = d.InexactFloat64()
	}

	if len(req.Debts) > service.MaxCalculatorDebts {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "debts", Message: fmt.Sprintf("At most %d debts are accepted", service.MaxCalculatorDebts)},
		})
	}

	inputs := make([]service.CalculatorDebtInput, 0, len(req.Debts))
	var fieldErrors []ValidationError
	for i, d := range req.Debts {
		input, errs := d.toInput(fmt.Sprintf("debts[%d].", i))
		fieldErrors = append(fieldErrors, errs...)
		inputs = append(inputs, input)
	}
	if len(fieldErrors) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrors)
	}

	snapshot, err := h.calculatorService.Summarize(inputs, income)
	if err != nil {
		if errors.Is(err, domain.ErrIncomeInvalid) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "monthlyIncome", Message: "Monthly income must be greater than 0"},
			})
		}
		var inputErr *service.DebtInputError
		if errors.As(err, &inputErr) {
			if errs := debtValidationErrors(inputErr.Err); errs != nil {
				return NewValidationError(c, "Validation failed", prefixFieldErrors(fmt.Sprintf("debts[%d].", inputErr.Index), errs))
			}
		}
		log.Error().Err(err).Msg("Failed to summarize debts")
		return NewInternalError(c, "Failed to summarize debts")
	}

	return c.JSON(http.StatusOK, toSummaryResponse(snapshot))
}
