package audit

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtwise-ledger/internal/domain/history"
	"github.com/debtwise-ledger/internal/platform/events"
)

var testLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

// capturingRepository records every Create call
type capturingRepository struct {
	mu      sync.Mutex
	created []*history.Record
	done    chan struct{}
}

func (c *capturingRepository) Create(_ context.Context, record *history.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.created = append(c.created, record)
	if c.done != nil {
		c.done <- struct{}{}
	}
	return nil
}

func (c *capturingRepository) GetRecent(context.Context, int, int) ([]*history.Record, error) {
	return nil, nil
}

func (c *capturingRepository) GetByDebtID(context.Context, uuid.UUID, int, int) ([]*history.Record, error) {
	return nil, nil
}

func (c *capturingRepository) Count(context.Context) (int64, error) { return 0, nil }

func (c *capturingRepository) CountByDebtID(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

// capturingPublisher records every Publish call
type capturingPublisher struct {
	mu        sync.Mutex
	keys      []string
	published []interface{}
	done      chan struct{}
}

func (c *capturingPublisher) Publish(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, key)
	c.published = append(c.published, value)
	if c.done != nil {
		c.done <- struct{}{}
	}
	return nil
}

func (c *capturingPublisher) Close() error { return nil }

func TestRecorder_Record(t *testing.T) {
	repo := &capturingRepository{done: make(chan struct{}, 1)}
	publisher := &capturingPublisher{done: make(chan struct{}, 1)}

	recorder, err := NewRecorder(testLogger, 2, repo, publisher)
	require.NoError(t, err)
	defer recorder.Shutdown()

	debtID := uuid.New()
	record := history.NewRecord(history.ActionDebtAdded, "corr-1").ForDebt(debtID, "Visa")
	event := &events.DebtEvent{
		EventID:   uuid.New(),
		Action:    history.ActionDebtAdded,
		DebtID:    &debtID,
		Timestamp: time.Now().UTC(),
	}

	recorder.Record(record, event)

	waitFor(t, repo.done)
	waitFor(t, publisher.done)

	repo.mu.Lock()
	require.Len(t, repo.created, 1)
	assert.Equal(t, record.ID, repo.created[0].ID)
	repo.mu.Unlock()

	publisher.mu.Lock()
	require.Len(t, publisher.keys, 1)
	assert.Equal(t, debtID.String(), publisher.keys[0], "events for a debt key on its ID")
	publisher.mu.Unlock()
}

func TestRecorder_RecordWithoutDebtKeysOnRecordID(t *testing.T) {
	repo := &capturingRepository{done: make(chan struct{}, 1)}
	publisher := &capturingPublisher{done: make(chan struct{}, 1)}

	recorder, err := NewRecorder(testLogger, 1, repo, publisher)
	require.NoError(t, err)
	defer recorder.Shutdown()

	record := history.NewRecord(history.ActionLedgerCleared, "")
	event := &events.DebtEvent{EventID: uuid.New(), Action: history.ActionLedgerCleared}

	recorder.Record(record, event)

	waitFor(t, repo.done)
	waitFor(t, publisher.done)

	publisher.mu.Lock()
	require.Len(t, publisher.keys, 1)
	assert.Equal(t, record.ID.String(), publisher.keys[0])
	publisher.mu.Unlock()
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for async audit write")
	}
}
