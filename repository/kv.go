package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the persistence collaborator: best-effort storage of
// JSON-serialized collections under distinct keys. Implementations make no
// atomicity promises beyond a single Set.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
