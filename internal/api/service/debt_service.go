package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtwise-ledger/internal/audit"
	"github.com/debtwise-ledger/internal/domain/debt"
	"github.com/debtwise-ledger/internal/domain/history"
	"github.com/debtwise-ledger/internal/ledger"
	"github.com/debtwise-ledger/internal/platform/events"
	"github.com/debtwise-ledger/internal/stats"
)

// DebtServiceImpl implements the DebtService interface. It drives the
// ledger store, mirrors the current list through a store subscription
// the way dashboards do, and hands every mutation to the audit recorder.
type DebtServiceImpl struct {
	logger   *slog.Logger
	store    *ledger.Store
	recorder *audit.Recorder
	now      func() time.Time

	// latest mirrors the store's list via the change subscription; the
	// subscription also keeps statistics reads off the store lock
	mu     sync.RWMutex
	latest []debt.Debt
}

// NewDebtService creates a new debt service subscribed to store changes
func NewDebtService(logger *slog.Logger, store *ledger.Store, recorder *audit.Recorder) *DebtServiceImpl {
	s := &DebtServiceImpl{
		logger:   logger,
		store:    store,
		recorder: recorder,
		now:      time.Now,
	}
	store.Subscribe(func(debts []debt.Debt) {
		s.mu.Lock()
		s.latest = debts
		s.mu.Unlock()
	})
	return s
}

// AddDebt creates a debt from caller-supplied fields and appends it to the ledger
func (s *DebtServiceImpl) AddDebt(ctx context.Context, name string, amount, interestRate decimal.Decimal, dueDate time.Time, debtType debt.Type, correlationID string) (*debt.Debt, error) {
	d, err := debt.New(name, amount, interestRate, dueDate, debtType)
	if err != nil {
		return nil, err
	}

	s.store.Add(ctx, *d)

	s.record(history.NewRecord(history.ActionDebtAdded, correlationID).ForDebt(d.ID, d.Name).WithAmount(d.Amount))
	return d, nil
}

// ListDebts returns the ordered debt list
func (s *DebtServiceImpl) ListDebts(_ context.Context) []debt.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// GetDebt retrieves one debt by ID, returns ErrDebtNotFound if absent
func (s *DebtServiceImpl) GetDebt(_ context.Context, id uuid.UUID) (*debt.Debt, error) {
	d, ok := s.store.Get(id)
	if !ok {
		return nil, debt.ErrDebtNotFound{DebtID: id}
	}
	return &d, nil
}

// UpdateDebt replaces the debt with the same ID wholesale. The store's
// silent no-op on an unknown ID is surfaced here as ErrDebtNotFound.
func (s *DebtServiceImpl) UpdateDebt(ctx context.Context, d debt.Debt, correlationID string) (*debt.Debt, error) {
	if _, ok := s.store.Get(d.ID); !ok {
		return nil, debt.ErrDebtNotFound{DebtID: d.ID}
	}

	s.store.Update(ctx, d)

	s.record(history.NewRecord(history.ActionDebtUpdated, correlationID).ForDebt(d.ID, d.Name).WithAmount(d.Amount))
	return &d, nil
}

// RemoveDebt deletes one debt by ID, returns ErrDebtNotFound if absent
func (s *DebtServiceImpl) RemoveDebt(ctx context.Context, id uuid.UUID, correlationID string) error {
	d, ok := s.store.Get(id)
	if !ok {
		return debt.ErrDebtNotFound{DebtID: id}
	}

	pos := s.store.IndexOf(id)
	if pos < 0 {
		return debt.ErrDebtNotFound{DebtID: id}
	}
	s.store.RemoveAt(ctx, pos)

	s.record(history.NewRecord(history.ActionDebtRemoved, correlationID).ForDebt(d.ID, d.Name).WithAmount(d.Amount))
	return nil
}

// RemoveAtPositions deletes the debts at the given list positions. The
// core ignores out-of-range values, so repeated UI deletions stay
// idempotent; records are only written for entries that existed.
func (s *DebtServiceImpl) RemoveAtPositions(ctx context.Context, positions []int, correlationID string) {
	list := s.store.List()
	removed := make([]debt.Debt, 0, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(list) {
			removed = append(removed, list[p])
		}
	}

	s.store.RemoveAt(ctx, positions...)

	for _, d := range removed {
		s.record(history.NewRecord(history.ActionDebtRemoved, correlationID).ForDebt(d.ID, d.Name).WithAmount(d.Amount))
	}
}

// MakePayment reduces a debt's balance, removing it on full payoff
func (s *DebtServiceImpl) MakePayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, correlationID string) (*PaymentResult, error) {
	before, ok := s.store.Get(id)
	if !ok {
		return nil, debt.ErrDebtNotFound{DebtID: id}
	}

	s.store.MakePayment(ctx, id, amount)

	after, stillThere := s.store.Get(id)
	result := &PaymentResult{PaidOff: !stillThere}
	if stillThere {
		result.Debt = &after
		result.Applied = amount
		s.record(history.NewRecord(history.ActionPaymentMade, correlationID).ForDebt(before.ID, before.Name).WithAmount(amount))
	} else {
		// overpayments clamp, so only the outstanding balance was applied
		result.Applied = before.Amount
		s.record(history.NewRecord(history.ActionDebtPaidOff, correlationID).ForDebt(before.ID, before.Name).WithAmount(before.Amount))
	}
	return result, nil
}

// ClearAll empties the ledger
func (s *DebtServiceImpl) ClearAll(ctx context.Context, correlationID string) {
	s.store.ClearAll(ctx)
	s.record(history.NewRecord(history.ActionLedgerCleared, correlationID))
}

// Statistics computes the aggregate figures for the current ledger.
// Figures are recomputed from scratch on every call; list sizes are
// small and correctness dominates.
func (s *DebtServiceImpl) Statistics(_ context.Context) stats.Summary {
	s.mu.RLock()
	debts := s.latest
	s.mu.RUnlock()
	return stats.Compute(debts, s.now())
}

// record forwards the mutation to the audit recorder together with a
// snapshot-derived event
func (s *DebtServiceImpl) record(rec *history.Record) {
	if s.recorder == nil {
		return
	}

	s.mu.RLock()
	total := decimal.Zero
	for _, d := range s.latest {
		total = total.Add(d.Amount)
	}
	active := len(s.latest)
	s.mu.RUnlock()

	s.recorder.Record(rec, &events.DebtEvent{
		EventID:       uuid.New(),
		Action:        rec.Action,
		DebtID:        rec.DebtID,
		Amount:        rec.Amount,
		TotalDebt:     total,
		ActiveDebts:   active,
		CorrelationID: rec.CorrelationID,
		Timestamp:     rec.CreatedAt,
	})
}

var _ DebtService = (*DebtServiceImpl)(nil)
