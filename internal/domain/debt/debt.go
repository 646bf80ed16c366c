package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrNegativeInterestRate = errors.New("interest rate cannot be negative")
	ErrUnknownType          = errors.New("unknown debt type")
)

// Debt represents one outstanding liability. A Debt is never mutated in
// place; updates and payments replace the entry wholesale while keeping
// the same ID.
type Debt struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"` // Display label; non-emptiness is a caller contract
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interest_rate"` // Annual percentage rate
	DueDate      time.Time       `json:"due_date"`
	Type         Type            `json:"type"`
}

// New creates a new debt with a freshly generated ID
func New(name string, amount, interestRate decimal.Decimal, dueDate time.Time, debtType Type) (*Debt, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if interestRate.IsNegative() {
		return nil, ErrNegativeInterestRate
	}
	if !debtType.Valid() {
		return nil, ErrUnknownType
	}

	return &Debt{
		ID:           uuid.New(),
		Name:         name,
		Amount:       amount,
		InterestRate: interestRate,
		DueDate:      dueDate,
		Type:         debtType,
	}, nil
}

// WithAmount returns a copy of the debt carrying the given balance.
// Identity and all other fields are preserved.
func (d Debt) WithAmount(amount decimal.Decimal) Debt {
	d.Amount = amount
	return d
}

// Equal reports whether two debts carry the same identity and field
// values. Amounts and rates compare by numeric value, due dates by
// instant.
func (d Debt) Equal(other Debt) bool {
	return d.ID == other.ID &&
		d.Name == other.Name &&
		d.Amount.Equal(other.Amount) &&
		d.InterestRate.Equal(other.InterestRate) &&
		d.DueDate.Equal(other.DueDate) &&
		d.Type == other.Type
}
