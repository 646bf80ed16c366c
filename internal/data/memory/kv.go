// Package memory provides an in-memory KV store, used in tests and as a
// fallback when no Redis is configured. Contents do not survive restarts.
package memory

import (
	"context"
	"sync"

	"github.com/debtwise-ledger/internal/ledger"
)

// KV is a process-local key-value store
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKV creates an empty in-memory KV store
func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get returns the stored value, or (nil, nil) when the key is absent
func (kv *KV) Get(_ context.Context, key string) ([]byte, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	value, ok := kv.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of the value under the key
func (kv *KV) Set(_ context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	kv.data[key] = stored
	return nil
}

var _ ledger.KV = (*KV)(nil)
