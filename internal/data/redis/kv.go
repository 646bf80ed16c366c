// Package redis implements the ledger KV contract on a Redis instance.
// The ledger snapshot is a single value under a fixed key, so plain
// GET/SET is the whole surface.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/debtwise-ledger/internal/ledger"
)

// KV persists values in Redis without expiry
type KV struct {
	logger *slog.Logger
	client redis.Cmdable
}

// NewKV creates a Redis-backed KV store
func NewKV(logger *slog.Logger, client redis.Cmdable) *KV {
	return &KV{
		logger: logger,
		client: client,
	}
}

// Get returns the value stored under key, or (nil, nil) when absent
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := kv.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		kv.logger.Error("Failed to read key from redis", "key", key, "error", err)
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Set stores the value under key with no expiry; the ledger snapshot
// must outlive any session.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := kv.client.Set(ctx, key, value, 0).Err(); err != nil {
		kv.logger.Error("Failed to write key to redis", "key", key, "error", err)
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

var _ ledger.KV = (*KV)(nil)
