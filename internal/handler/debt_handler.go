package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/middleware"
	"github.com/dafibh/karja/karja-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DebtHandler handles debt-related HTTP requests
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// DebtRequest represents the create and update debt request body
type DebtRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Amount         string `json:"amount"`
	InterestRate   string `json:"interestRate"`
	MinimumPayment string `json:"minimumPayment"`
	RemainingTerm  *int32 `json:"remainingTerm,omitempty"`
}

// DebtResponse represents a debt in API responses
type DebtResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Color          string `json:"color"`
	Amount         string `json:"amount"`
	InterestRate   string `json:"interestRate"`
	MinimumPayment string `json:"minimumPayment"`
	RemainingTerm  *int32 `json:"remainingTerm,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

func toDebtResponse(debt *domain.Debt) DebtResponse {
	return DebtResponse{
		ID:             debt.ID.String(),
		Name:           debt.Name,
		Type:           debt.Type,
		Color:          domain.DebtTypeColor(debt.Type),
		Amount:         debt.Amount.StringFixed(2),
		InterestRate:   debt.InterestRate.StringFixed(2),
		MinimumPayment: debt.MinimumPayment.StringFixed(2),
		RemainingTerm:  debt.RemainingTerm,
		CreatedAt:      debt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      debt.UpdatedAt.Format(time.RFC3339),
	}
}

// toInput parses the money fields of a debt request
func (r DebtRequest) toInput() (service.DebtInput, []ValidationError) {
	var fieldErrors []ValidationError

	amount, fe := parseDecimalField("amount", r.Amount)
	if fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}
	rate, fe := parseDecimalField("interestRate", r.InterestRate)
	if fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}
	payment, fe := parseDecimalField("minimumPayment", r.MinimumPayment)
	if fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}

	return service.DebtInput{
		Name:           r.Name,
		Type:           r.Type,
		Amount:         amount,
		InterestRate:   rate,
		MinimumPayment: payment,
		RemainingTerm:  r.RemainingTerm,
	}, fieldErrors
}

// CreateDebt godoc
// @Summary Create a debt
// @Description Add a debt to the user's list. The dashboard summary is recomputed.
// @Tags debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DebtRequest true "Debt"
// @Success 201 {object} DebtResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /debts [post]
func (h *DebtHandler) CreateDebt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req DebtRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, fieldErrors := req.toInput()
	if len(fieldErrors) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrors)
	}

	debt, err := h.debtService.CreateDebt(c.Request().Context(), userID, input)
	if err != nil {
		if fieldErrors := debtValidationErrors(err); fieldErrors != nil {
			return NewValidationError(c, "Validation failed", fieldErrors)
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create debt")
		return NewInternalError(c, "Failed to create debt")
	}

	log.Info().Str("user_id", userID).Str("debt_id", debt.ID.String()).Str("type", debt.Type).Msg("Debt created")

	return c.JSON(http.StatusCreated, toDebtResponse(debt))
}

// GetDebts godoc
// @Summary List debts
// @Description List the user's debts, newest first
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DebtResponse
// @Failure 401 {object} ProblemDetails
// @Router /debts [get]
func (h *DebtHandler) GetDebts(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	debts, err := h.debtService.GetDebts(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get debts")
		return NewInternalError(c, "Failed to get debts")
	}

	response := make([]DebtResponse, len(debts))
	for i, debt := range debts {
		response[i] = toDebtResponse(debt)
	}

	return c.JSON(http.StatusOK, response)
}

// GetDebt godoc
// @Summary Get a debt
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Debt ID (UUID)"
// @Success 200 {object} DebtResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /debts/{id} [get]
func (h *DebtHandler) GetDebt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid debt ID", nil)
	}

	debt, err := h.debtService.GetDebtByID(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrDebtNotFound) {
			return NewNotFoundError(c, "Debt not found")
		}
		log.Error().Err(err).Str("user_id", userID).Str("debt_id", id.String()).Msg("Failed to get debt")
		return NewInternalError(c, "Failed to get debt")
	}

	return c.JSON(http.StatusOK, toDebtResponse(debt))
}

// UpdateDebt godoc
// @Summary Update a debt
// @Description Replace a debt's fields. The dashboard summary is recomputed.
// @Tags debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Debt ID (UUID)"
// @Param request body DebtRequest true "Debt"
// @Success 200 {object} DebtResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid debt ID", nil)
	}

	var req DebtRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, fieldErrors := req.toInput()
	if len(fieldErrors) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrors)
	}

	debt, err := h.debtService.UpdateDebt(c.Request().Context(), userID, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrDebtNotFound) {
			return NewNotFoundError(c, "Debt not found")
		}
		if fieldErrors := debtValidationErrors(err); fieldErrors != nil {
			return NewValidationError(c, "Validation failed", fieldErrors)
		}
		log.Error().Err(err).Str("user_id", userID).Str("debt_id", id.String()).Msg("Failed to update debt")
		return NewInternalError(c, "Failed to update debt")
	}

	log.Info().Str("user_id", userID).Str("debt_id", id.String()).Msg("Debt updated")

	return c.JSON(http.StatusOK, toDebtResponse(debt))
}

// DeleteDebt godoc
// @Summary Delete a debt
// @Tags debts
// @Security BearerAuth
// @Param id path string true "Debt ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid debt ID", nil)
	}

	if err := h.debtService.DeleteDebt(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, domain.ErrDebtNotFound) {
			return NewNotFoundError(c, "Debt not found")
		}
		log.Error().Err(err).Str("user_id", userID).Str("debt_id", id.String()).Msg("Failed to delete debt")
		return NewInternalError(c, "Failed to delete debt")
	}

	log.Info().Str("user_id", userID).Str("debt_id", id.String()).Msg("Debt deleted")

	return c.NoContent(http.StatusNoContent)
}

// GetDebtTypes godoc
// @Summary List debt types
// @Description The accepted debt types and their chart colors
// @Tags debts
// @Produce json
// @Success 200 {array} DebtTypeResponse
// @Router /debt-types [get]
func (h *DebtHandler) GetDebtTypes(c echo.Context) error {
	response := make([]DebtTypeResponse, len(domain.DebtTypes))
	for i, t := range domain.DebtTypes {
		response[i] = DebtTypeResponse{Name: t, Color: domain.DebtTypeColor(t)}
	}
	return c.JSON(http.StatusOK, response)
}

// DebtTypeResponse is one accepted debt type
type DebtTypeResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
