package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Action defines the ledger mutations recorded in the audit trail
type Action string

const (
	ActionDebtAdded     Action = "DEBT_ADDED"
	ActionDebtUpdated   Action = "DEBT_UPDATED"
	ActionDebtRemoved   Action = "DEBT_REMOVED"
	ActionPaymentMade   Action = "PAYMENT_MADE"
	ActionDebtPaidOff   Action = "DEBT_PAID_OFF"
	ActionLedgerCleared Action = "LEDGER_CLEARED"
)

// Record is one audit entry describing a ledger mutation
type Record struct {
	ID            uuid.UUID        `json:"id" bson:"record_id"`
	Action        Action           `json:"action" bson:"action"`
	DebtID        *uuid.UUID       `json:"debt_id,omitempty" bson:"debt_id,omitempty"`
	DebtName      string           `json:"debt_name,omitempty" bson:"debt_name,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty" bson:"amount,omitempty"`
	CorrelationID string           `json:"correlation_id,omitempty" bson:"correlation_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
}

// NewRecord creates an audit record stamped with the current time
func NewRecord(action Action, correlationID string) *Record {
	return &Record{
		ID:            uuid.New(),
		Action:        action,
		CorrelationID: correlationID,
		CreatedAt:     time.Now().UTC(),
	}
}

// ForDebt attaches the subject debt's identity to the record
func (r *Record) ForDebt(id uuid.UUID, name string) *Record {
	r.DebtID = &id
	r.DebtName = name
	return r
}

// WithAmount attaches the monetary amount involved in the mutation
func (r *Record) WithAmount(amount decimal.Decimal) *Record {
	r.Amount = &amount
	return r
}
