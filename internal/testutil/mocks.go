package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockDebtRepository is a mock implementation of domain.DebtRepository
type MockDebtRepository struct {
	Debts map[uuid.UUID]*domain.Debt

	// Err fields force the matching method to fail
	CreateErr       error
	GetAllByUserErr error
	UpdateErr       error
	DeleteErr       error

	// Calls counts GetAllByUser invocations
	Calls int

	mu  sync.Mutex
	seq int
}

// NewMockDebtRepository creates a new MockDebtRepository
func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{
		Debts: make(map[uuid.UUID]*domain.Debt),
	}
}

// Create stores a debt, assigning an ID and timestamps when missing
func (m *MockDebtRepository) Create(ctx context.Context, debt *domain.Debt) (*domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if debt.ID == uuid.Nil {
		debt.ID = uuid.New()
	}
	m.stamp(debt)
	stored := *debt
	m.Debts[debt.ID] = &stored
	return copyDebt(&stored), nil
}

// GetByID retrieves a debt owned by userID
func (m *MockDebtRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	debt, ok := m.Debts[id]
	if !ok || debt.UserID != userID {
		return nil, domain.ErrDebtNotFound
	}
	return copyDebt(debt), nil
}

// GetAllByUser retrieves all debts owned by userID, newest first
func (m *MockDebtRepository) GetAllByUser(ctx context.Context, userID string) ([]*domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	if m.GetAllByUserErr != nil {
		return nil, m.GetAllByUserErr
	}

	debts := make([]*domain.Debt, 0)
	for _, d := range m.Debts {
		if d.UserID == userID {
			debts = append(debts, copyDebt(d))
		}
	}
	sort.Slice(debts, func(i, j int) bool {
		return debts[i].CreatedAt.After(debts[j].CreatedAt)
	})
	return debts, nil
}

// Update overwrites a stored debt owned by the same user
func (m *MockDebtRepository) Update(ctx context.Context, debt *domain.Debt) (*domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	existing, ok := m.Debts[debt.ID]
	if !ok || existing.UserID != debt.UserID {
		return nil, domain.ErrDebtNotFound
	}
	debt.CreatedAt = existing.CreatedAt
	m.seq++
	debt.UpdatedAt = existing.CreatedAt.Add(time.Duration(m.seq) * time.Second)
	stored := *debt
	m.Debts[debt.ID] = &stored
	return copyDebt(&stored), nil
}

// Delete removes a debt owned by userID
func (m *MockDebtRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	debt, ok := m.Debts[id]
	if !ok || debt.UserID != userID {
		return domain.ErrDebtNotFound
	}
	delete(m.Debts, id)
	return nil
}

// AddDebt adds a debt to the mock repository (helper for tests)
func (m *MockDebtRepository) AddDebt(debt *domain.Debt) *domain.Debt {
	m.mu.Lock()
	defer m.mu.Unlock()

	if debt.ID == uuid.Nil {
		debt.ID = uuid.New()
	}
	m.stamp(debt)
	m.Debts[debt.ID] = debt
	return debt
}

// GetAllByUserCalls returns how many times GetAllByUser has been called
func (m *MockDebtRepository) GetAllByUserCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// stamp gives each inserted debt a strictly increasing creation time so
// newest-first ordering is deterministic
func (m *MockDebtRepository) stamp(debt *domain.Debt) {
	if !debt.CreatedAt.IsZero() {
		return
	}
	m.seq++
	debt.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	debt.UpdatedAt = debt.CreatedAt
}

func copyDebt(d *domain.Debt) *domain.Debt {
	c := *d
	if d.RemainingTerm != nil {
		term := *d.RemainingTerm
		c.RemainingTerm = &term
	}
	return &c
}

// NewDebt builds a valid debt for userID with whole-number money fields
func NewDebt(userID, name, debtType string, amount, rate, payment int64) *domain.Debt {
	return &domain.Debt{
		UserID:         userID,
		Name:           name,
		Type:           debtType,
		Amount:         decimal.NewFromInt(amount),
		InterestRate:   decimal.NewFromInt(rate),
		MinimumPayment: decimal.NewFromInt(payment),
	}
}

// PublishedEvent is one event captured by RecordingPublisher
type PublishedEvent struct {
	UserID string
	Event  websocket.Event
}

// RecordingPublisher is a websocket.EventPublisher that records every event
type RecordingPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

// Publish records the event
func (p *RecordingPublisher) Publish(userID string, event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, PublishedEvent{UserID: userID, Event: event})
}

// Events returns a copy of the recorded events
func (p *RecordingPublisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PublishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Types returns the recorded event types in publish order
func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Event.Type)
	}
	return types
}
