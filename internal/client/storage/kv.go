package storage

import (
	"context"
)

//go:generate moq -out kvstorage_mock.go . KVStorage

// KVStorage defines the durable key-value store used by the client.
// This is the lowest storage layer - it works with raw bytes and knows
// nothing about value types. Typed access lives in the persist package.
type KVStorage interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if nothing is stored
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Apply writes puts and removes deletes in a single transaction:
	// either every change is visible afterwards or none is.
	Apply(ctx context.Context, puts map[string][]byte, deletes []string) error

	// Close releases the underlying database
	Close() error
}
