package ledger

import "context"

// KV is the durable key-value contract the store snapshots into. Get
// returns (nil, nil) when the key is absent; absence is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
