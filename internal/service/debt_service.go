package service

import (
	"context"
	"strings"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtChangeListener is notified after a user's debts change
type DebtChangeListener interface {
	DebtsChanged(ctx context.Context, userID string)
}

// DebtService handles debt entry business logic
type DebtService struct {
	debtRepo       domain.DebtRepository
	listener       DebtChangeListener
	eventPublisher websocket.EventPublisher
}

// NewDebtService creates a new DebtService. listener may be nil.
func NewDebtService(debtRepo domain.DebtRepository, listener DebtChangeListener) *DebtService {
	return &DebtService{debtRepo: debtRepo, listener: listener}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *DebtService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *DebtService) publishEvent(userID string, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

func (s *DebtService) notify(ctx context.Context, userID string) {
	if s.listener != nil {
		s.listener.DebtsChanged(ctx, userID)
	}
}

// DebtInput contains input for creating or updating a debt
type DebtInput struct {
	Name           string
	Type           string
	Amount         decimal.Decimal
	InterestRate   decimal.Decimal
	MinimumPayment decimal.Decimal
	RemainingTerm  *int32
}

// DebtPayload is the websocket payload for debt events
type DebtPayload struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name,omitempty"`
	Type           string    `json:"type,omitempty"`
	Amount         string    `json:"amount,omitempty"`
	InterestRate   string    `json:"interestRate,omitempty"`
	MinimumPayment string    `json:"minimumPayment,omitempty"`
}

func newDebtPayload(debt *domain.Debt) DebtPayload {
	return DebtPayload{
		ID:             debt.ID,
		Name:           debt.Name,
		Type:           debt.Type,
		Amount:         debt.Amount.StringFixed(2),
		InterestRate:   debt.InterestRate.StringFixed(2),
		MinimumPayment: debt.MinimumPayment.StringFixed(2),
	}
}

func (in DebtInput) toDebt(userID string) *domain.Debt {
	return &domain.Debt{
		UserID:         userID,
		Name:           strings.TrimSpace(in.Name),
		Type:           in.Type,
		Amount:         in.Amount,
		InterestRate:   in.InterestRate,
		MinimumPayment: in.MinimumPayment,
		RemainingTerm:  in.RemainingTerm,
	}
}

// CreateDebt validates and stores a new debt
func (s *DebtService) CreateDebt(ctx context.Context, userID string, input DebtInput) (*domain.Debt, error) {
	debt := input.toDebt(userID)
	if err := debt.Validate(); err != nil {
		return nil, err
	}
	debt.ID = uuid.New()

	created, err := s.debtRepo.Create(ctx, debt)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.DebtCreated(newDebtPayload(created)))
	s.notify(ctx, userID)
	return created, nil
}

// GetDebts retrieves all debts for a user, newest first
func (s *DebtService) GetDebts(ctx context.Context, userID string) ([]*domain.Debt, error) {
	return s.debtRepo.GetAllByUser(ctx, userID)
}

// GetDebtByID retrieves a debt owned by the user
func (s *DebtService) GetDebtByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Debt, error) {
	return s.debtRepo.GetByID(ctx, userID, id)
}

// UpdateDebt validates and overwrites an existing debt
func (s *DebtService) UpdateDebt(ctx context.Context, userID string, id uuid.UUID, input DebtInput) (*domain.Debt, error) {
	if _, err := s.debtRepo.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}

	debt := input.toDebt(userID)
	if err := debt.Validate(); err != nil {
		return nil, err
	}
	debt.ID = id

	updated, err := s.debtRepo.Update(ctx, debt)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.DebtUpdated(newDebtPayload(updated)))
	s.notify(ctx, userID)
	return updated, nil
}

// DeleteDebt removes a debt owned by the user
func (s *DebtService) DeleteDebt(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.debtRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.DebtDeleted(DebtPayload{ID: id}))
	s.notify(ctx, userID)
	return nil
}
