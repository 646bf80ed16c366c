package debt

import "github.com/google/uuid"

// ErrDebtNotFound indicates a missing debt. The ledger core treats an
// absent ID as a silent no-op; this error exists for the API surface,
// where callers expect a 404 instead of silence.
type ErrDebtNotFound struct {
	DebtID uuid.UUID
}

func (e ErrDebtNotFound) Error() string {
	return "debt not found: " + e.DebtID.String()
}

// Is implements the errors.Is interface for ErrDebtNotFound
func (e ErrDebtNotFound) Is(target error) bool {
	t, ok := target.(ErrDebtNotFound)
	if !ok {
		return false
	}
	if t.DebtID == uuid.Nil {
		return true
	}
	return e.DebtID == t.DebtID
}
