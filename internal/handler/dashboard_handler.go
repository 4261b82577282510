package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/middleware"
	"github.com/dafibh/karja/karja-backend/internal/service"
	"github.com/dafibh/karja/karja-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DebtTypeTotalResponse is the principal owed under one debt type
type DebtTypeTotalResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// TimelinePointResponse is one month of the projected balance
type TimelinePointResponse struct {
	Month            string `json:"month"`
	ProjectedBalance string `json:"projectedBalance"`
}

// SummaryResponse represents a debt summary in API responses.
// DebtFreeMonths is null when some debt can never be paid off.
type SummaryResponse struct {
	TotalDebt              string                  `json:"totalDebt"`
	MonthlyPayments        string                  `json:"monthlyPayments"`
	InterestPaidYTD        string                  `json:"interestPaidYTD"`
	DebtFreeDate           string                  `json:"debtFreeDate"`
	DebtFreeMonths         *int                    `json:"debtFreeMonths"`
	PaymentToIncomeRatio   string                  `json:"paymentToIncomeRatio"`
	TotalRemainingPayments string                  `json:"totalRemainingPayments"`
	FutureInterest         string                  `json:"futureInterest"`
	DebtByType             []DebtTypeTotalResponse `json:"debtByType"`
	PaymentTimeline        []TimelinePointResponse `json:"paymentTimeline"`
	MonthlyIncome          string                  `json:"monthlyIncome"`
	RiskLevel              domain.RiskLevel        `json:"riskLevel"`
	DebtCount              int                     `json:"debtCount"`
	ComputedAt             string                  `json:"computedAt"`
}

// UpdateIncomeRequest represents the update income request body
type UpdateIncomeRequest struct {
	MonthlyIncome string `json:"monthlyIncome"`
}

func toSummaryResponse(snapshot *service.DashboardSnapshot) SummaryResponse {
	summary := snapshot.Summary

	byType := make([]DebtTypeTotalResponse, len(summary.DebtByType))
	for i, g := range summary.DebtByType {
		byType[i] = DebtTypeTotalResponse{Name: g.Name, Value: util.FormatMoney(g.Value), Color: g.Color}
	}

	timeline := make([]TimelinePointResponse, len(summary.PaymentTimeline))
	for i, p := range summary.PaymentTimeline {
		timeline[i] = TimelinePointResponse{Month: p.Month, ProjectedBalance: util.FormatMoney(p.ProjectedBalance)}
	}

	computedAt := ""
	if !snapshot.ComputedAt.IsZero() {
		computedAt = snapshot.ComputedAt.Format(time.RFC3339)
	}

	return SummaryResponse{
		TotalDebt:              util.FormatMoney(summary.TotalDebt),
		MonthlyPayments:        util.FormatMoney(summary.MonthlyPayments),
		InterestPaidYTD:        util.FormatMoney(summary.InterestPaidYTD),
		DebtFreeDate:           summary.DebtFreeDate,
		DebtFreeMonths:         util.PayoffMonthsPtr(summary.DebtFreeMonths, domain.PayoffNever),
		PaymentToIncomeRatio:   util.FormatRatio(summary.PaymentToIncomeRatio),
		TotalRemainingPayments: util.FormatMoney(summary.TotalRemainingPayments),
		FutureInterest:         util.FormatMoney(summary.FutureInterest),
		DebtByType:             byType,
		PaymentTimeline:        timeline,
		MonthlyIncome:          util.FormatMoney(snapshot.MonthlyIncome),
		RiskLevel:              snapshot.RiskLevel,
		DebtCount:              snapshot.DebtCount,
		ComputedAt:             computedAt,
	}
}

// GetSummary godoc
// @Summary Get the debt summary
// @Description Payoff horizon, interest burden, payment-to-income ratio and balance projection for the user's debts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	snapshot, err := h.dashboardService.GetSummary(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get dashboard summary")
		return NewServiceUnavailableError(c, "Failed to load debts")
	}

	return c.JSON(http.StatusOK, toSummaryResponse(snapshot))
}

// Refresh godoc
// @Summary Refresh the debt summary
// @Description Re-fetch the user's debts and recompute the summary
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	snapshot, err := h.dashboardService.Refresh(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to refresh dashboard summary")
		return NewServiceUnavailableError(c, "Failed to load debts")
	}

	return c.JSON(http.StatusOK, toSummaryResponse(snapshot))
}

// UpdateIncome godoc
// @Summary Set the monthly income
// @Description Change the income assumption used for the payment-to-income ratio
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateIncomeRequest true "Monthly income"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /dashboard/income [put]
func (h *DashboardHandler) UpdateIncome(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	income, fe := parseDecimalField("monthlyIncome", req.MonthlyIncome)
	if fe != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{*fe})
	}

	snapshot, err := h.dashboardService.SetMonthlyIncome(c.Request().Context(), userID, income.InexactFloat64())
	if err != nil {
		if errors.Is(err, domain.ErrIncomeInvalid) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "monthlyIncome", Message: "Monthly income must be greater than 0"},
			})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to update monthly income")
		return NewServiceUnavailableError(c, "Failed to load debts")
	}

	log.Info().Str("user_id", userID).Str("monthly_income", income.StringFixed(2)).Msg("Monthly income updated")

	return c.JSON(http.StatusOK, toSummaryResponse(snapshot))
}
