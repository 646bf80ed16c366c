// Package ledger owns the authoritative ordered list of debts. Every
// mutation updates the list, persists the full snapshot to the KV store
// and notifies subscribed observers, in that order, under one lock, so
// readers never observe a partially applied mutation.
package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtwise-ledger/internal/domain/debt"
)

// StorageKey is the fixed key the serialized debt list lives under
const StorageKey = "debtwise:debts"

// Observer receives the current debt list after every mutation. The
// slice is a snapshot owned by the receiver. Callbacks run while the
// store lock is held and must not call back into the store.
type Observer func(debts []debt.Debt)

// Store is the single source of truth for the debt collection. All
// mutations are expected from one logical writer; the mutex makes the
// list update, snapshot write and observer notification atomic for
// concurrent readers.
type Store struct {
	logger *slog.Logger
	kv     KV
	key    string

	mu     sync.Mutex
	debts  []debt.Debt
	subs   []*Subscription
	nextID uint64
}

// NewStore creates a store backed by the given KV and loads the last
// persisted snapshot. A missing or undecodable snapshot degrades to an
// empty ledger; loading never fails.
func NewStore(ctx context.Context, logger *slog.Logger, kv KV) *Store {
	s := &Store{
		logger: logger,
		kv:     kv,
		key:    StorageKey,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("Failed to load debt snapshot, starting empty", "key", s.key, "error", err)
		return
	}
	if data == nil {
		return
	}

	var debts []debt.Debt
	if err := json.Unmarshal(data, &debts); err != nil {
		s.logger.Warn("Failed to decode debt snapshot, starting empty", "key", s.key, "error", err)
		return
	}
	s.debts = debts
}

// persist writes the full current list under the fixed key. A failed
// save is logged and swallowed; in-memory state stays authoritative
// until a later save succeeds.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.debts)
	if err != nil {
		s.logger.Error("Failed to encode debt snapshot, changes not persisted", "key", s.key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.logger.Error("Failed to save debt snapshot, changes not persisted", "key", s.key, "error", err)
	}
}

func (s *Store) snapshot() []debt.Debt {
	out := make([]debt.Debt, len(s.debts))
	copy(out, s.debts)
	return out
}

func (s *Store) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshot()
	for _, sub := range s.subs {
		sub.fn(snap)
	}
}

// Add appends the debt to the end of the list. Insertion order is the
// canonical, user-visible order.
func (s *Store) Add(ctx context.Context, d debt.Debt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debts = append(s.debts, d)
	s.persist(ctx)
	s.notify()
}

// RemoveAt deletes the debts at the given positions. Positions refer to
// one coherent snapshot of the list at call time; out-of-range values
// are ignored so repeated UI deletions stay idempotent.
func (s *Store) RemoveAt(ctx context.Context, positions ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := make([]int, 0, len(positions))
	seen := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(s.debts) {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return
	}

	// Highest positions first so earlier indices stay valid
	sort.Sort(sort.Reverse(sort.IntSlice(valid)))
	for _, p := range valid {
		s.debts = append(s.debts[:p], s.debts[p+1:]...)
	}

	s.persist(ctx)
	s.notify()
}

// Update replaces the entry with the same ID wholesale, keeping its
// position. An absent ID is a no-op: no save, no notification.
func (s *Store) Update(ctx context.Context, d debt.Debt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(d.ID)
	if idx < 0 {
		return
	}
	s.debts[idx] = d

	s.persist(ctx)
	s.notify()
}

// MakePayment reduces the debt's balance by amount, clamping at zero.
// A balance driven to zero removes the debt (payoff); an overpayment
// simply closes it. An absent ID is a no-op.
func (s *Store) MakePayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	newAmount := s.debts[idx].Amount.Sub(amount)
	if newAmount.Sign() <= 0 {
		s.debts = append(s.debts[:idx], s.debts[idx+1:]...)
	} else {
		s.debts[idx] = s.debts[idx].WithAmount(newAmount)
	}

	s.persist(ctx)
	s.notify()
}

// ClearAll empties the ledger
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debts = nil
	s.persist(ctx)
	s.notify()
}

// List returns a copy of the current ordered debt list
func (s *Store) List() []debt.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Get looks up a debt by ID
func (s *Store) Get(id uuid.UUID) (debt.Debt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return debt.Debt{}, false
	}
	return s.debts[idx], true
}

// IndexOf returns the position of the debt with the given ID, or -1
func (s *Store) IndexOf(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id)
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i := range s.debts {
		if s.debts[i].ID == id {
			return i
		}
	}
	return -1
}
