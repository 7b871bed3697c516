package guard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitkeeper/internal/client/api"
	"github.com/iudanet/fitkeeper/internal/client/auth"
	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/persist"
	"github.com/iudanet/fitkeeper/internal/client/profile"
	"github.com/iudanet/fitkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/fitkeeper/internal/models"
)

const testToken = "a.b.c"

type testEnv struct {
	tokens  *auth.TokenStore
	persist *persist.Adapter
	bus     *events.Bus
	logger  *slog.Logger
	changes []events.StateChange
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "guard.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := persist.New(kv, logger)
	bus := events.NewBus(logger)

	env := &testEnv{
		tokens:  auth.NewTokenStore(p, bus, logger),
		persist: p,
		bus:     bus,
		logger:  logger,
	}
	events.Subscribe(bus, events.GuardState, func(c events.StateChange) {
		env.changes = append(env.changes, c)
	})
	return env
}

func (env *testEnv) login(t *testing.T, token string) {
	t.Helper()
	require.NoError(t, env.tokens.SetSession(context.Background(), &models.User{ID: 1, Username: "alice"}, token, ""))
}

func (env *testEnv) transitions() []string {
	out := make([]string, len(env.changes))
	for i, c := range env.changes {
		out[i] = fmt.Sprintf("%s->%s", c.From, c.To)
	}
	return out
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 1, "exp": exp.Unix()}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestNew_InitialState(t *testing.T) {
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		env := newTestEnv(t)
		g := New(ctx, env.tokens, &RefresherMock{}, env.bus, env.logger, Config{})
		defer g.Close()

		assert.Equal(t, Unauthenticated, g.State())
		assert.Equal(t, ViewLogin, g.PublicEntry())
	})

	t.Run("persisted token", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.persist.SaveString(ctx, persist.KeyToken, testToken))
		require.NoError(t, env.persist.Save(ctx, persist.KeyUser, &models.User{ID: 1}))

		// Новый TokenStore: сессия подтягивается лениво
		tokens := auth.NewTokenStore(env.persist, env.bus, env.logger)
		g := New(ctx, tokens, &RefresherMock{}, env.bus, env.logger, Config{})
		defer g.Close()

		assert.Equal(t, Authenticating, g.State())
	})
}

func TestGuard_Authenticate_Success(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.login(t, testToken)

	refresher := &RefresherMock{
		RefreshFunc: func(ctx context.Context, session models.Session) error {
			assert.Equal(t, testToken, session.AccessToken)
			return nil
		},
	}
	g := New(ctx, env.tokens, refresher, env.bus, env.logger, Config{})
	defer g.Close()

	require.NoError(t, g.Authenticate(ctx))
	assert.Equal(t, Authenticated, g.State())
	assert.Equal(t, []string{"authenticating->authenticated"}, env.transitions())

	assert.Equal(t, Decision{Action: Render}, g.Check(ctx, ViewWorkouts))
}

func TestGuard_Authenticate_Rejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.login(t, testToken)

	refresher := &RefresherMock{
		RefreshFunc: func(ctx context.Context, session models.Session) error {
			return fmt.Errorf("%w: 401", profile.ErrSessionExpired)
		},
	}
	g := New(ctx, env.tokens, refresher, env.bus, env.logger, Config{})
	defer g.Close()

	err := g.Authenticate(ctx)
	assert.ErrorIs(t, err, profile.ErrSessionExpired)
	assert.Equal(t, Unauthenticated, g.State())
	assert.Equal(t, "", env.tokens.CurrentToken(ctx))
	assert.Equal(t, []string{"authenticating->rejected", "rejected->unauthenticated"}, env.transitions())
}

func TestGuard_Authenticate_NetworkFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.login(t, testToken)

	refresher := &RefresherMock{
		RefreshFunc: func(ctx context.Context, session models.Session) error {
			return fmt.Errorf("%w: connection refused", profile.ErrFetchFailed)
		},
	}
	g := New(ctx, env.tokens, refresher, env.bus, env.logger, Config{})
	defer g.Close()

	err := g.Authenticate(ctx)
	assert.ErrorIs(t, err, profile.ErrFetchFailed)
	assert.Equal(t, Authenticating, g.State())
	assert.Equal(t, testToken, env.tokens.CurrentToken(ctx))

	// Защищенный экран недоступен, пока профиль не загружен
	assert.Equal(t, Decision{Action: Redirect, Location: ViewLogin}, g.Check(ctx, ViewProfile))
}

func TestGuard_Authenticate_NoSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	refresher := &RefresherMock{}
	g := New(ctx, env.tokens, refresher, env.bus, env.logger, Config{})
	defer g.Close()

	assert.ErrorIs(t, g.Authenticate(ctx), profile.ErrNotAuthenticated)
	assert.Empty(t, refresher.RefreshCalls())
	assert.Equal(t, Unauthenticated, g.State())
}

func TestGuard_Check(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g := New(ctx, env.tokens, &RefresherMock{}, env.bus, env.logger, Config{PublicEntry: "/"})
	defer g.Close()

	for _, view := range []string{ViewHome, ViewLogin, ViewSignup} {
		assert.Equal(t, Render, g.Check(ctx, view).Action, view)
	}
	for _, view := range []string{ViewDashboard, ViewWorkouts, ViewNutrition, ViewProducts, ViewCommunity, ViewProfile, "/unknown"} {
		assert.Equal(t, Decision{Action: Redirect, Location: "/"}, g.Check(ctx, view), view)
	}
}

func TestGuard_Check_ForceLogoutOnExpiredToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	now := time.Now()
	env.login(t, signedToken(t, now.Add(time.Minute)))

	refresher := &RefresherMock{RefreshFunc: func(ctx context.Context, session models.Session) error { return nil }}
	g := New(ctx, env.tokens, refresher, env.bus, env.logger, Config{Now: func() time.Time { return now }})
	defer g.Close()

	require.NoError(t, g.Authenticate(ctx))
	assert.Equal(t, Render, g.Check(ctx, ViewDashboard).Action)

	// Время ушло вперед, токен истек
	now = now.Add(2 * time.Minute)
	assert.Equal(t, Decision{Action: ForceLogout, Location: ViewLogin}, g.Check(ctx, ViewDashboard))
	assert.Equal(t, Unauthenticated, g.State())
	assert.Equal(t, "", env.tokens.CurrentToken(ctx))

	assert.Equal(t, Redirect, g.Check(ctx, ViewDashboard).Action)
}

func TestGuard_Check_ForceLogoutWhenTokenVanished(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.login(t, testToken)

	refresher := &RefresherMock{RefreshFunc: func(ctx context.Context, session models.Session) error { return nil }}
	g := New(ctx, env.tokens, refresher, env.bus, env.logger, Config{})
	defer g.Close()
	require.NoError(t, g.Authenticate(ctx))

	// Отписанный Guard не узнает об очистке сессии через шину
	g.Close()
	require.NoError(t, env.tokens.ClearSession(ctx))

	assert.Equal(t, ForceLogout, g.Check(ctx, ViewCommunity).Action)
	assert.Equal(t, Unauthenticated, g.State())
}

func TestGuard_FollowsSessionEvents(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g := New(ctx, env.tokens, &RefresherMock{}, env.bus, env.logger, Config{})
	defer g.Close()

	env.login(t, testToken)
	assert.Equal(t, Authenticating, g.State())

	require.NoError(t, env.tokens.ClearSession(ctx))
	assert.Equal(t, Unauthenticated, g.State())
}

func TestGuard_Close(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g := New(ctx, env.tokens, &RefresherMock{}, env.bus, env.logger, Config{})
	assert.Equal(t, 1, env.bus.Subscribers(events.SessionChanged.Name))

	g.Close()
	g.Close()
	assert.Zero(t, env.bus.Subscribers(events.SessionChanged.Name))
	assert.Zero(t, env.bus.Subscribers(events.SessionExpiry.Name))
}

// Сценарий входа: токен сохранен, профиль загружен, Guard в Authenticated
func TestScenario_LoginAuthenticates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	client := &api.ClientAPIMock{
		GetProfileFunc: func(ctx context.Context, accessToken string) (*models.ProfileSnapshot, error) {
			p := models.EmptyProfile()
			p.CompletedWorkouts = []int64{1}
			return &p, nil
		},
	}
	cache := profile.NewCache(client, env.tokens, env.persist, env.bus, env.logger)
	g := New(ctx, env.tokens, cache, env.bus, env.logger, Config{})
	defer g.Close()

	require.NoError(t, env.tokens.SetSession(ctx, &models.User{ID: 1}, "a.b.c", ""))
	assert.Equal(t, "a.b.c", env.tokens.CurrentToken(ctx))

	require.NoError(t, g.Authenticate(ctx))
	assert.Equal(t, Authenticated, g.State())
	assert.Len(t, client.GetProfileCalls(), 1)
	assert.Equal(t, []int64{1}, cache.Snapshot().CompletedWorkouts)
}

// Сервер отверг токен при загрузке профиля
func TestScenario_ProfileUnauthorized(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	client := &api.ClientAPIMock{
		GetProfileFunc: func(ctx context.Context, accessToken string) (*models.ProfileSnapshot, error) {
			return nil, &api.StatusError{StatusCode: http.StatusUnauthorized, Message: "Token has expired"}
		},
	}
	cache := profile.NewCache(client, env.tokens, env.persist, env.bus, env.logger)
	env.login(t, testToken)

	g := New(ctx, env.tokens, cache, env.bus, env.logger, Config{})
	defer g.Close()

	err := g.Authenticate(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, profile.ErrSessionExpired))
	assert.Equal(t, Unauthenticated, g.State())
	assert.Equal(t, []string{"authenticating->rejected", "rejected->unauthenticated"}, env.transitions())
	assert.Equal(t, "", env.tokens.CurrentToken(ctx))
}
