package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/persist"
	"github.com/iudanet/fitkeeper/internal/client/storage"
	"github.com/iudanet/fitkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/fitkeeper/internal/models"
)

const testToken = "header.payload.signature"

type testEnv struct {
	store   *TokenStore
	persist *persist.Adapter
	kv      storage.KVStorage
	bus     *events.Bus
	logger  *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := persist.New(kv, logger)
	bus := events.NewBus(logger)

	return &testEnv{
		store:   NewTokenStore(p, bus, logger),
		persist: p,
		kv:      kv,
		bus:     bus,
		logger:  logger,
	}
}

func TestTokenStore_SetSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	var changes []models.Session
	events.Subscribe(env.bus, events.SessionChanged, func(s models.Session) {
		changes = append(changes, s)
	})

	user := &models.User{ID: 1, Username: "alice"}
	require.NoError(t, env.store.SetSession(ctx, user, testToken, "refresh"))

	assert.Equal(t, testToken, env.store.CurrentToken(ctx))
	assert.Equal(t, testToken, env.persist.LoadString(ctx, persist.KeyToken))
	assert.Equal(t, "refresh", env.persist.LoadString(ctx, persist.KeyRefreshToken))
	assert.Equal(t, user, persist.Load[*models.User](ctx, env.persist, persist.KeyUser, nil))

	// Изменение исходного пользователя не влияет на сессию
	user.Username = "mallory"
	assert.Equal(t, "alice", env.store.Session(ctx).User.Username)

	require.Len(t, changes, 1)
	assert.Equal(t, testToken, changes[0].AccessToken)
}

func TestTokenStore_SetSession_InvalidToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := &models.User{ID: 1, Username: "alice"}
	require.NoError(t, env.store.SetSession(ctx, user, testToken, "refresh"))

	for _, token := range []string{"", "abc", "a.b", "a..c"} {
		err := env.store.SetSession(ctx, &models.User{ID: 2, Username: "bob"}, token, "other")
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
	assert.ErrorIs(t, env.store.SetSession(ctx, nil, testToken, ""), ErrInvalidToken)

	// Ни память, ни хранилище не изменились
	s := env.store.Session(ctx)
	assert.Equal(t, testToken, s.AccessToken)
	assert.Equal(t, "alice", s.User.Username)
	assert.Equal(t, "refresh", env.persist.LoadString(ctx, persist.KeyRefreshToken))
}

func TestTokenStore_SetSession_DropsStaleRefreshToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.store.SetSession(ctx, &models.User{ID: 1}, testToken, "stale"))
	require.NoError(t, env.store.SetSession(ctx, &models.User{ID: 1}, "x.y.z", ""))

	assert.Equal(t, "", env.persist.LoadString(ctx, persist.KeyRefreshToken))
	assert.Equal(t, "", env.store.Session(ctx).RefreshToken)
}

func TestTokenStore_SetSession_StorageFailure(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kv := &storage.KVStorageMock{
		ApplyFunc: func(ctx context.Context, puts map[string][]byte, deletes []string) error {
			return errors.New("disk full")
		},
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, storage.ErrKeyNotFound
		},
	}
	store := NewTokenStore(persist.New(kv, logger), events.NewBus(logger), logger)

	err := store.SetSession(ctx, &models.User{ID: 1}, testToken, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "", store.CurrentToken(ctx))
}

func TestTokenStore_ClearSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.store.SetSession(ctx, &models.User{ID: 1}, testToken, "refresh"))

	var changes int
	events.Subscribe(env.bus, events.SessionChanged, func(models.Session) { changes++ })

	require.NoError(t, env.store.ClearSession(ctx))
	assert.Equal(t, "", env.store.CurrentToken(ctx))
	assert.True(t, env.store.Session(ctx).IsZero())
	assert.Equal(t, "", env.persist.LoadString(ctx, persist.KeyToken))
	assert.Equal(t, "", env.persist.LoadString(ctx, persist.KeyRefreshToken))
	assert.Nil(t, persist.Load[*models.User](ctx, env.persist, persist.KeyUser, nil))

	// Повторная очистка идемпотентна и не шлет событие
	require.NoError(t, env.store.ClearSession(ctx))
	assert.Equal(t, 1, changes)
}

func TestTokenStore_LateHydration(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// Сессию записал предыдущий процесс
	require.NoError(t, env.persist.SaveString(ctx, persist.KeyToken, testToken))
	require.NoError(t, env.persist.Save(ctx, persist.KeyUser, &models.User{ID: 9, Username: "carol"}))

	fresh := NewTokenStore(env.persist, env.bus, env.logger)
	assert.Equal(t, testToken, fresh.CurrentToken(ctx))

	s := fresh.Session(ctx)
	assert.Equal(t, "carol", s.User.Username)
	assert.Equal(t, "", s.RefreshToken)
}

func TestTokenStore_Hydrate_IgnoresBrokenState(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.persist.SaveString(ctx, persist.KeyToken, "undefined"))
		require.NoError(t, env.persist.Save(ctx, persist.KeyUser, &models.User{ID: 1}))

		assert.True(t, env.store.Hydrate(ctx).IsZero())
		assert.Equal(t, "", env.store.CurrentToken(ctx))
	})

	t.Run("token without user", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.persist.SaveString(ctx, persist.KeyToken, testToken))
		require.NoError(t, env.kv.Put(ctx, persist.KeyUser, []byte("{broken")))

		assert.True(t, env.store.Hydrate(ctx).IsZero())
		assert.Equal(t, "", env.store.CurrentToken(ctx))
	})
}
