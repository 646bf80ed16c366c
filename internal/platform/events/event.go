package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/debtwise-ledger/internal/domain/history"
)

// DebtEvent is the message published after every ledger mutation.
// Downstream consumers (budgeting, notifications) key on the debt ID.
type DebtEvent struct {
	EventID       uuid.UUID        `json:"event_id"`
	Action        history.Action   `json:"action"`
	DebtID        *uuid.UUID       `json:"debt_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	TotalDebt     decimal.Decimal  `json:"total_debt"`
	ActiveDebts   int              `json:"active_debts"`
	CorrelationID string           `json:"correlation_id,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}
