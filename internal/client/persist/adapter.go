// Package persist provides typed, fault-tolerant access to the client's
// durable key-value storage. It is the only place that knows the storage
// keys and their JSON encoding.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/fitkeeper/internal/client/storage"
)

// Ключи хранилища
const (
	KeyToken        = "token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
	KeyProfile      = "profile"
	KeyCart         = "cart"
)

// Adapter reads and writes JSON values on top of storage.KVStorage
type Adapter struct {
	store  storage.KVStorage
	logger *slog.Logger
}

// New creates a new persistence adapter
func New(store storage.KVStorage, logger *slog.Logger) *Adapter {
	return &Adapter{
		store:  store,
		logger: logger,
	}
}

// Load returns the value stored under key decoded into T.
// Absent keys, unreadable storage and malformed JSON all yield def;
// the latter two are logged and never surfaced to the caller.
func Load[T any](ctx context.Context, a *Adapter, key string, def T) T {
	raw, ok := a.read(ctx, key)
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		a.logger.Warn("Corrupt persisted value, using default", "key", key, "error", err)
		return def
	}

	return v
}

// LoadString returns a raw string value, "" when absent or unreadable
func (a *Adapter) LoadString(ctx context.Context, key string) string {
	raw, ok := a.read(ctx, key)
	if !ok {
		return ""
	}
	return string(raw)
}

// Save encodes v as JSON and stores it under key
func (a *Adapter) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	if err := a.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %q: %w", key, err)
	}

	return nil
}

// SaveString stores a raw string value under key
func (a *Adapter) SaveString(ctx context.Context, key, value string) error {
	if err := a.store.Put(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("failed to persist %q: %w", key, err)
	}
	return nil
}

// Remove deletes keys in one transaction
func (a *Adapter) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := a.store.Apply(ctx, nil, keys); err != nil {
		return fmt.Errorf("failed to remove %v: %w", keys, err)
	}

	return nil
}

// Batch collects writes that SaveAll commits atomically
type Batch struct {
	puts    map[string][]byte
	deletes []string
}

// NewBatch creates an empty batch
func NewBatch() *Batch {
	return &Batch{puts: make(map[string][]byte)}
}

// Set adds a JSON-encoded value
func (b *Batch) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	b.puts[key] = data
	return nil
}

// SetString adds a raw string value
func (b *Batch) SetString(key, value string) {
	b.puts[key] = []byte(value)
}

// Remove schedules key for deletion
func (b *Batch) Remove(key string) {
	delete(b.puts, key)
	b.deletes = append(b.deletes, key)
}

// SaveAll commits every write in the batch in one storage transaction
func (a *Adapter) SaveAll(ctx context.Context, b *Batch) error {
	if err := a.store.Apply(ctx, b.puts, b.deletes); err != nil {
		return fmt.Errorf("failed to persist batch: %w", err)
	}
	return nil
}

func (a *Adapter) read(ctx context.Context, key string) ([]byte, bool) {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			a.logger.Warn("Failed to read persisted value", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}
