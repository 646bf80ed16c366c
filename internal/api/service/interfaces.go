package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtwise-ledger/internal/domain/debt"
	"github.com/debtwise-ledger/internal/domain/history"
	"github.com/debtwise-ledger/internal/stats"
)

// PaymentResult describes the outcome of a payment against a debt
type PaymentResult struct {
	// Debt carries the reduced entry; nil when the payment paid the debt off
	Debt    *debt.Debt
	PaidOff bool
	// Applied is the amount actually deducted, which may be less than
	// the requested amount when an overpayment closes the debt
	Applied decimal.Decimal
}

// DebtService defines the interface for ledger operations
type DebtService interface {
	// AddDebt creates a debt from caller-supplied fields and appends it
	// to the ledger. Returns the created debt with its generated ID.
	AddDebt(ctx context.Context, name string, amount, interestRate decimal.Decimal, dueDate time.Time, debtType debt.Type, correlationID string) (*debt.Debt, error)

	// ListDebts returns the ordered debt list
	ListDebts(ctx context.Context) []debt.Debt

	// GetDebt retrieves one debt by ID
	// Returns ErrDebtNotFound if the debt doesn't exist
	GetDebt(ctx context.Context, id uuid.UUID) (*debt.Debt, error)

	// UpdateDebt replaces the debt with the same ID wholesale
	// Returns ErrDebtNotFound if the debt doesn't exist
	UpdateDebt(ctx context.Context, d debt.Debt, correlationID string) (*debt.Debt, error)

	// RemoveDebt deletes one debt by ID
	// Returns ErrDebtNotFound if the debt doesn't exist
	RemoveDebt(ctx context.Context, id uuid.UUID, correlationID string) error

	// RemoveAtPositions deletes the debts at the given list positions,
	// ignoring out-of-range values
	RemoveAtPositions(ctx context.Context, positions []int, correlationID string)

	// MakePayment reduces a debt's balance, removing it on full payoff.
	// Returns ErrDebtNotFound if the debt doesn't exist; overpayments
	// clamp to the outstanding balance and close the debt.
	MakePayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, correlationID string) (*PaymentResult, error)

	// ClearAll empties the ledger
	ClearAll(ctx context.Context, correlationID string)

	// Statistics computes the aggregate figures for the current ledger
	Statistics(ctx context.Context) stats.Summary
}

// HistoryService defines the interface for audit trail reads
type HistoryService interface {
	// GetRecent retrieves a paginated page of audit records, newest
	// first, together with the total record count
	GetRecent(ctx context.Context, page, perPage int) ([]*history.Record, int64, error)

	// GetByDebt retrieves a paginated page of audit records for one
	// debt, newest first, together with that debt's record count
	GetByDebt(ctx context.Context, debtID uuid.UUID, page, perPage int) ([]*history.Record, int64, error)
}
