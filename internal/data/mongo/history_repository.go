package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/debtwise-ledger/internal/domain/history"
)

const (
	// HistoryCollectionName is the name of the audit trail collection in MongoDB
	HistoryCollectionName = "ledger_history"
)

// HistoryRepository implements the history.Repository interface for MongoDB
type HistoryRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewHistoryRepository creates a new MongoDB history repository
func NewHistoryRepository(logger *slog.Logger, db *mongo.Database) history.Repository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new audit record
func (r *HistoryRepository) Create(ctx context.Context, record *history.Record) error {
	collection := r.db.Collection(HistoryCollectionName)

	_, err := collection.InsertOne(ctx, record)
	if err != nil {
		r.logger.Error("Failed to create history record",
			"record_id", record.ID.String(),
			"action", string(record.Action),
			"error", err)
		return fmt.Errorf("failed to create history record: %w", err)
	}

	return nil
}

// GetRecent retrieves paginated audit records, newest first
func (r *HistoryRepository) GetRecent(ctx context.Context, limit, offset int) ([]*history.Record, error) {
	collection := r.db.Collection(HistoryCollectionName)

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("Failed to get history records", "error", err)
		return nil, fmt.Errorf("failed to get history records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*history.Record
	if err := cursor.All(ctx, &records); err != nil {
		r.logger.Error("Failed to decode history records", "error", err)
		return nil, fmt.Errorf("failed to decode history records: %w", err)
	}

	return records, nil
}

// GetByDebtID retrieves paginated audit records for one debt, newest first
func (r *HistoryRepository) GetByDebtID(ctx context.Context, debtID uuid.UUID, limit, offset int) ([]*history.Record, error) {
	collection := r.db.Collection(HistoryCollectionName)

	filter := bson.M{"debt_id": debtID}
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get history records for debt",
			"debt_id", debtID.String(),
			"error", err)
		return nil, fmt.Errorf("failed to get history records for debt: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*history.Record
	if err := cursor.All(ctx, &records); err != nil {
		r.logger.Error("Failed to decode history records for debt",
			"debt_id", debtID.String(),
			"error", err)
		return nil, fmt.Errorf("failed to decode history records for debt: %w", err)
	}

	return records, nil
}

// Count counts all audit records
func (r *HistoryRepository) Count(ctx context.Context) (int64, error) {
	collection := r.db.Collection(HistoryCollectionName)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to count history records", "error", err)
		return 0, fmt.Errorf("failed to count history records: %w", err)
	}

	return count, nil
}

// CountByDebtID counts the audit records for one debt
func (r *HistoryRepository) CountByDebtID(ctx context.Context, debtID uuid.UUID) (int64, error) {
	collection := r.db.Collection(HistoryCollectionName)

	count, err := collection.CountDocuments(ctx, bson.M{"debt_id": debtID})
	if err != nil {
		r.logger.Error("Failed to count history records for debt",
			"debt_id", debtID.String(),
			"error", err)
		return 0, fmt.Errorf("failed to count history records for debt: %w", err)
	}

	return count, nil
}
