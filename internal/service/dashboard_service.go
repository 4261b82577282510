package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/util"
	"github.com/dafibh/karja/karja-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// DashboardSession is the per-user dashboard state: the last fetched debts,
// the income assumption and the summary computed from both
type DashboardSession struct {
	UserID        string
	Debts         []*domain.Debt
	MonthlyIncome float64
	Summary       domain.DebtSummary
	ComputedAt    time.Time
	LastSeen      time.Time
	loaded        bool
}

// DashboardSnapshot is a read-only copy of a session handed to callers
type DashboardSnapshot struct {
	Summary       domain.DebtSummary
	MonthlyIncome float64
	RiskLevel     domain.RiskLevel
	DebtCount     int
	ComputedAt    time.Time
}

// SummaryUpdatedPayload is the websocket payload sent after a recompute
type SummaryUpdatedPayload struct {
	TotalDebt            string           `json:"totalDebt"`
	MonthlyPayments      string           `json:"monthlyPayments"`
	DebtFreeDate         string           `json:"debtFreeDate"`
	DebtFreeMonths       *int             `json:"debtFreeMonths"`
	PaymentToIncomeRatio string           `json:"paymentToIncomeRatio"`
	FutureInterest       string           `json:"futureInterest"`
	RiskLevel            domain.RiskLevel `json:"riskLevel"`
}

// IncomeUpdatedPayload is the websocket payload sent after an income change
type IncomeUpdatedPayload struct {
	MonthlyIncome string `json:"monthlyIncome"`
}

// DashboardServiceConfig holds configuration for the dashboard service
type DashboardServiceConfig struct {
	DefaultMonthlyIncome float64          // Income assumed for new sessions
	SessionTTL           time.Duration    // Idle time before a session is evicted
	JanitorInterval      time.Duration    // How often idle sessions are swept
	Now                  func() time.Time // Clock used as the projection reference date
}

// DefaultDashboardServiceConfig returns sensible defaults
func DefaultDashboardServiceConfig() DashboardServiceConfig {
	return DashboardServiceConfig{
		DefaultMonthlyIncome: domain.DefaultMonthlyIncome,
		SessionTTL:           30 * time.Minute,
		JanitorInterval:      5 * time.Minute,
		Now:                  time.Now,
	}
}

// DashboardService keeps one session per user and recomputes its summary
// whenever the debts or the income change
type DashboardService struct {
	debtRepo       domain.DebtRepository
	eventPublisher websocket.EventPublisher
	logger         zerolog.Logger

	defaultIncome   float64
	sessionTTL      time.Duration
	janitorInterval time.Duration
	now             func() time.Time

	mu       sync.RWMutex
	sessions map[string]*DashboardSession

	runMu   sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(debtRepo domain.DebtRepository, logger zerolog.Logger, config DashboardServiceConfig) *DashboardService {
	defaults := DefaultDashboardServiceConfig()
	if config.DefaultMonthlyIncome <= 0 || math.IsNaN(config.DefaultMonthlyIncome) {
		config.DefaultMonthlyIncome = defaults.DefaultMonthlyIncome
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = defaults.SessionTTL
	}
	if config.JanitorInterval <= 0 {
		config.JanitorInterval = defaults.JanitorInterval
	}
	if config.Now == nil {
		config.Now = defaults.Now
	}

	return &DashboardService{
		debtRepo:        debtRepo,
		logger:          logger.With().Str("component", "dashboard_service").Logger(),
		defaultIncome:   config.DefaultMonthlyIncome,
		sessionTTL:      config.SessionTTL,
		janitorInterval: config.JanitorInterval,
		now:             config.Now,
		sessions:        make(map[string]*DashboardSession),
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *DashboardService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *DashboardService) publishEvent(userID string, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// GetSummary returns the user's dashboard, loading debts on first access
func (s *DashboardService) GetSummary(ctx context.Context, userID string) (*DashboardSnapshot, error) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if ok && session.loaded {
		session.LastSeen = s.now()
		snapshot := s.snapshot(session)
		s.mu.Unlock()
		return snapshot, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx, userID)
}

// Refresh re-fetches the user's debts and recomputes the summary. On a
// storage error the session keeps its previous state.
func (s *DashboardService) Refresh(ctx context.Context, userID string) (*DashboardSnapshot, error) {
	debts, err := s.debtRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	s.mu.Lock()
	session := s.sessionLocked(userID)
	session.Debts = debts
	session.loaded = true
	s.recomputeLocked(session)
	snapshot := s.snapshot(session)
	s.mu.Unlock()

	s.logger.Debug().
		Str("user_id", userID).
		Int("debts", len(debts)).
		Str("debt_free_date", snapshot.Summary.DebtFreeDate).
		Msg("Recomputed dashboard summary")

	s.publishEvent(userID, websocket.SummaryUpdated(newSummaryPayload(snapshot)))
	return snapshot, nil
}

// SetMonthlyIncome changes the user's income assumption. The income must be
// a positive finite number.
func (s *DashboardService) SetMonthlyIncome(ctx context.Context, userID string, income float64) (*DashboardSnapshot, error) {
	if income <= 0 || math.IsNaN(income) || math.IsInf(income, 0) {
		return nil, domain.ErrIncomeInvalid
	}

	s.mu.Lock()
	session := s.sessionLocked(userID)
	session.MonthlyIncome = income
	loaded := session.loaded
	s.mu.Unlock()

	s.publishEvent(userID, websocket.IncomeUpdated(IncomeUpdatedPayload{MonthlyIncome: util.FormatMoney(income)}))

	if !loaded {
		return s.Refresh(ctx, userID)
	}

	s.mu.Lock()
	recomputed := s.applyIncomeLocked(session)
	snapshot := s.snapshot(session)
	s.mu.Unlock()

	if recomputed {
		s.publishEvent(userID, websocket.SummaryUpdated(newSummaryPayload(snapshot)))
	}
	return snapshot, nil
}

// DebtsChanged refreshes the user's session if one is open. Users without an
// open dashboard load their debts on the next GetSummary.
func (s *DashboardService) DebtsChanged(ctx context.Context, userID string) {
	s.mu.RLock()
	session, ok := s.sessions[userID]
	open := ok && session.loaded
	s.mu.RUnlock()
	if !open {
		return
	}

	if _, err := s.Refresh(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to refresh dashboard after debt change")
	}
}

// MonthlyIncome returns the user's current income assumption
func (s *DashboardService) MonthlyIncome(userID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[userID]; ok {
		return session.MonthlyIncome
	}
	return s.defaultIncome
}

// DefaultMonthlyIncome returns the income assumed for new sessions
func (s *DashboardService) DefaultMonthlyIncome() float64 {
	return s.defaultIncome
}

// SessionCount returns the number of open sessions
func (s *DashboardService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// applyIncomeLocked recomputes the summary with the session's income, but
// only when there are debts to project
func (s *DashboardService) applyIncomeLocked(session *DashboardSession) bool {
	if len(session.Debts) == 0 {
		return false
	}
	s.recomputeLocked(session)
	return true
}

func (s *DashboardService) sessionLocked(userID string) *DashboardSession {
	session, ok := s.sessions[userID]
	if !ok {
		session = &DashboardSession{
			UserID:        userID,
			MonthlyIncome: s.defaultIncome,
			Summary:       GenerateDebtSummary(nil, s.defaultIncome, s.now()),
		}
		s.sessions[userID] = session
	}
	session.LastSeen = s.now()
	return session
}

func (s *DashboardService) recomputeLocked(session *DashboardSession) {
	now := s.now()
	session.Summary = GenerateDebtSummary(session.Debts, session.MonthlyIncome, now)
	session.ComputedAt = now
}

func (s *DashboardService) snapshot(session *DashboardSession) *DashboardSnapshot {
	return &DashboardSnapshot{
		Summary:       session.Summary,
		MonthlyIncome: session.MonthlyIncome,
		RiskLevel:     domain.ClassifyRisk(session.Summary.PaymentToIncomeRatio, session.Summary.DebtFreeMonths),
		DebtCount:     len(session.Debts),
		ComputedAt:    session.ComputedAt,
	}
}

func newSummaryPayload(snapshot *DashboardSnapshot) SummaryUpdatedPayload {
	summary := snapshot.Summary
	return SummaryUpdatedPayload{
		TotalDebt:            util.FormatMoney(summary.TotalDebt),
		MonthlyPayments:      util.FormatMoney(summary.MonthlyPayments),
		DebtFreeDate:         summary.DebtFreeDate,
		DebtFreeMonths:       util.PayoffMonthsPtr(summary.DebtFreeMonths, domain.PayoffNever),
		PaymentToIncomeRatio: util.FormatRatio(summary.PaymentToIncomeRatio),
		FutureInterest:       util.FormatMoney(summary.FutureInterest),
		RiskLevel:            snapshot.RiskLevel,
	}
}

// Start begins sweeping idle sessions in the background
func (s *DashboardService) Start(ctx context.Context) {
	s.runMu.Lock()
	if s.running {
		s.runMu.Unlock()
		return
	}
	// Fresh channels per run so the janitor can be restarted after Stop
	stopCh, doneCh := make(chan struct{}), make(chan struct{})
	s.stopCh, s.doneCh = stopCh, doneCh
	s.running = true
	s.runMu.Unlock()

	s.logger.Info().
		Dur("session_ttl", s.sessionTTL).
		Dur("interval", s.janitorInterval).
		Msg("Starting dashboard session janitor")

	go s.run(ctx, stopCh, doneCh)
}

// Stop gracefully stops the session janitor
func (s *DashboardService) Stop() {
	s.runMu.Lock()
	if !s.running {
		s.runMu.Unlock()
		return
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.running = false
	s.runMu.Unlock()

	s.logger.Info().Msg("Stopping dashboard session janitor")
	close(stopCh)
	<-doneCh
	s.logger.Info().Msg("Dashboard session janitor stopped")
}

// IsRunning returns whether the janitor is currently running
func (s *DashboardService) IsRunning() bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.running
}

func (s *DashboardService) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(s.janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.setStopped(doneCh)
			return
		case <-stopCh:
			return
		case <-ticker.C:
			if evicted := s.EvictIdle(); evicted > 0 {
				s.logger.Debug().Int("evicted", evicted).Msg("Evicted idle dashboard sessions")
			}
		}
	}
}

// setStopped clears running unless a newer run has already replaced this one
func (s *DashboardService) setStopped(doneCh chan struct{}) {
	s.runMu.Lock()
	if s.doneCh == doneCh {
		s.running = false
	}
	s.runMu.Unlock()
}

// EvictIdle removes sessions not seen within the session TTL and returns
// how many were removed
func (s *DashboardService) EvictIdle() int {
	cutoff := s.now().Add(-s.sessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for userID, session := range s.sessions {
		if session.LastSeen.Before(cutoff) {
			delete(s.sessions, userID)
			evicted++
		}
	}
	return evicted
}
