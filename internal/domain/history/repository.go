package history

import (
	"context"

	"github.com/google/uuid"
)

// Repository manages audit record persistence with pagination support
type Repository interface {
	Create(ctx context.Context, record *Record) error
	GetRecent(ctx context.Context, limit, offset int) ([]*Record, error)
	GetByDebtID(ctx context.Context, debtID uuid.UUID, limit, offset int) ([]*Record, error)
	Count(ctx context.Context) (int64, error)
	CountByDebtID(ctx context.Context, debtID uuid.UUID) (int64, error)
}
