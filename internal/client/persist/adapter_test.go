package persist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitkeeper/internal/client/storage"
	"github.com/iudanet/fitkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/fitkeeper/internal/models"
)

func newTestAdapter(t *testing.T) (*Adapter, *boltdb.Storage, *bytes.Buffer) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "persist.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return New(store, logger), store, &logs
}

func TestLoad_AbsentKeyReturnsDefault(t *testing.T) {
	ctx := context.Background()
	a, _, logs := newTestAdapter(t)

	def := models.CartState{Items: []models.Product{}}
	got := Load(ctx, a, KeyCart, def)

	assert.Equal(t, def, got)
	assert.Empty(t, logs.String())
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newTestAdapter(t)

	user := &models.User{ID: 3, Username: "alice", Email: "alice@example.com"}
	require.NoError(t, a.Save(ctx, KeyUser, user))

	got := Load[*models.User](ctx, a, KeyUser, nil)
	require.NotNil(t, got)
	assert.Equal(t, user, got)
}

func TestLoad_CorruptValueReturnsDefault(t *testing.T) {
	ctx := context.Background()
	a, store, logs := newTestAdapter(t)

	require.NoError(t, store.Put(ctx, KeyProfile, []byte("{not json")))

	got := Load(ctx, a, KeyProfile, models.EmptyProfile())
	assert.Equal(t, models.EmptyProfile(), got)
	assert.Contains(t, logs.String(), "Corrupt persisted value")
	assert.Contains(t, logs.String(), "key=profile")
}

func TestLoad_StorageFailureReturnsDefault(t *testing.T) {
	ctx := context.Background()

	mock := &storage.KVStorageMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("disk on fire")
		},
	}
	var logs bytes.Buffer
	a := New(mock, slog.New(slog.NewTextHandler(&logs, nil)))

	assert.Equal(t, 42, Load(ctx, a, "answer", 42))
	assert.Equal(t, "", a.LoadString(ctx, KeyToken))
	assert.Contains(t, logs.String(), "disk on fire")
}

func TestStrings(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newTestAdapter(t)

	assert.Equal(t, "", a.LoadString(ctx, KeyToken))
	require.NoError(t, a.SaveString(ctx, KeyToken, "a.b.c"))
	assert.Equal(t, "a.b.c", a.LoadString(ctx, KeyToken))
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newTestAdapter(t)

	require.NoError(t, a.SaveString(ctx, KeyToken, "a.b.c"))
	require.NoError(t, a.SaveString(ctx, KeyRefreshToken, "r"))

	require.NoError(t, a.Remove(ctx, KeyToken, KeyRefreshToken, KeyUser))
	assert.Equal(t, "", a.LoadString(ctx, KeyToken))
	assert.Equal(t, "", a.LoadString(ctx, KeyRefreshToken))

	// Пустой список ключей ничего не делает
	assert.NoError(t, a.Remove(ctx))
}

func TestSaveAll_IsSingleTransaction(t *testing.T) {
	ctx := context.Background()

	var applied []map[string][]byte
	var deleted [][]string
	mock := &storage.KVStorageMock{
		ApplyFunc: func(ctx context.Context, puts map[string][]byte, deletes []string) error {
			applied = append(applied, puts)
			deleted = append(deleted, deletes)
			return nil
		},
	}
	a := New(mock, slog.Default())

	b := NewBatch()
	b.SetString(KeyToken, "a.b.c")
	require.NoError(t, b.Set(KeyUser, &models.User{ID: 1}))
	b.Remove(KeyRefreshToken)

	require.NoError(t, a.SaveAll(ctx, b))

	require.Len(t, mock.ApplyCalls(), 1)
	assert.Equal(t, "a.b.c", string(applied[0][KeyToken]))
	assert.JSONEq(t, `{"id":1,"username":""}`, string(applied[0][KeyUser]))
	assert.Equal(t, []string{KeyRefreshToken}, deleted[0])
}

func TestSaveAll_FailureLeavesPreviousValues(t *testing.T) {
	ctx := context.Background()

	mock := &storage.KVStorageMock{
		ApplyFunc: func(ctx context.Context, puts map[string][]byte, deletes []string) error {
			return errors.New("write failed")
		},
	}
	a := New(mock, slog.Default())

	b := NewBatch()
	b.SetString(KeyToken, "a.b.c")
	err := a.SaveAll(ctx, b)
	assert.ErrorContains(t, err, "write failed")
}
