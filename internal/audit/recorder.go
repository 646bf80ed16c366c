// Package audit records ledger mutations to the history repository and
// publishes debt events, off the mutation path. Writes ride a worker
// pool so a slow Mongo or Kafka never blocks the ledger; failures are
// logged and dropped, matching the ledger's best-effort posture.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/debtwise-ledger/internal/domain/history"
	"github.com/debtwise-ledger/internal/platform/events"
)

const writeTimeout = 10 * time.Second

// Recorder fans ledger mutations out to the audit trail and the events
// topic asynchronously
type Recorder struct {
	logger    *slog.Logger
	pool      *ants.Pool
	records   history.Repository
	publisher events.Publisher
}

// NewRecorder creates a recorder backed by a worker pool of the given size
func NewRecorder(logger *slog.Logger, size int, records history.Repository, publisher events.Publisher) (*Recorder, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}

	return &Recorder{
		logger:    logger,
		pool:      pool,
		records:   records,
		publisher: publisher,
	}, nil
}

// Record submits the audit record and its event for background delivery.
// The write uses its own context so it survives the originating request.
func (r *Recorder) Record(record *history.Record, event *events.DebtEvent) {
	err := r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := r.records.Create(ctx, record); err != nil {
			r.logger.Error("Failed to write history record",
				"record_id", record.ID.String(),
				"action", string(record.Action),
				"error", err,
			)
		}

		key := record.ID.String()
		if record.DebtID != nil {
			key = record.DebtID.String()
		}
		if err := r.publisher.Publish(ctx, key, event); err != nil {
			r.logger.Error("Failed to publish debt event",
				"event_id", event.EventID.String(),
				"action", string(event.Action),
				"error", err,
			)
		}
	})
	if err != nil {
		r.logger.Error("Failed to submit audit write to worker pool",
			"record_id", record.ID.String(),
			"error", err,
		)
	}
}

// Shutdown releases the worker pool
func (r *Recorder) Shutdown() {
	r.logger.Info("Shutting down audit recorder", "running_workers", r.pool.Running())
	r.pool.Release()
}

// Running returns the number of in-flight audit writes
func (r *Recorder) Running() int {
	return r.pool.Running()
}
