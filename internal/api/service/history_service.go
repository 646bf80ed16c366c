package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/debtwise-ledger/internal/domain/history"
)

// HistoryServiceImpl implements the HistoryService interface
type HistoryServiceImpl struct {
	historyRepo history.Repository
}

// NewHistoryService creates a new history service
func NewHistoryService(historyRepo history.Repository) HistoryService {
	return &HistoryServiceImpl{
		historyRepo: historyRepo,
	}
}

// GetRecent retrieves a paginated page of audit records, newest first
func (s *HistoryServiceImpl) GetRecent(ctx context.Context, page, perPage int) ([]*history.Record, int64, error) {
	total, err := s.historyRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	records, err := s.historyRepo.GetRecent(ctx, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetByDebt retrieves a paginated page of audit records for one debt,
// newest first. A debt with no recorded mutations yields an empty page.
func (s *HistoryServiceImpl) GetByDebt(ctx context.Context, debtID uuid.UUID, page, perPage int) ([]*history.Record, int64, error) {
	total, err := s.historyRepo.CountByDebtID(ctx, debtID)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	records, err := s.historyRepo.GetByDebtID(ctx, debtID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
