// Package guard decides whether a protected view may be shown for the
// current session.
package guard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/fitkeeper/internal/client/auth"
	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/profile"
	"github.com/iudanet/fitkeeper/internal/models"
)

//go:generate moq -out refresher_mock.go . Refresher

// Refresher загружает профиль для сессии (реализуется profile.Cache)
type Refresher interface {
	Refresh(ctx context.Context, session models.Session) error
}

// Config настройки Guard
type Config struct {
	// Now источник времени для проверки exp токена
	Now func() time.Time
	// PublicEntry куда перенаправлять неавторизованного пользователя
	PublicEntry string
	// PublicViews экраны, которые показываются всегда
	PublicViews []string
}

// Guard конечный автомат состояния аутентификации
type Guard struct {
	sessions    auth.SessionStore
	refresher   Refresher
	bus         *events.Bus
	logger      *slog.Logger
	public      map[string]bool
	cfg         Config
	unsubscribe []func()
	state       State
	mu          sync.Mutex
}

// New создает Guard. Начальное состояние определяется синхронно:
// без валидного токена Unauthenticated, иначе Authenticating до вызова Authenticate.
func New(ctx context.Context, sessions auth.SessionStore, refresher Refresher, bus *events.Bus, logger *slog.Logger, cfg Config) *Guard {
	if cfg.PublicEntry == "" {
		cfg.PublicEntry = ViewLogin
	}
	if cfg.PublicViews == nil {
		cfg.PublicViews = DefaultPublicViews
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	g := &Guard{
		sessions:  sessions,
		refresher: refresher,
		bus:       bus,
		logger:    logger,
		cfg:       cfg,
		public:    make(map[string]bool, len(cfg.PublicViews)+1),
		state:     Unauthenticated,
	}
	for _, v := range cfg.PublicViews {
		g.public[v] = true
	}
	g.public[cfg.PublicEntry] = true

	if sessions.CurrentToken(ctx) != "" {
		g.state = Authenticating
	}

	g.unsubscribe = append(g.unsubscribe,
		events.Subscribe(bus, events.SessionExpiry, g.onSessionExpired),
		events.Subscribe(bus, events.SessionChanged, g.onSessionChanged),
	)

	return g
}

// State возвращает текущее состояние
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// PublicEntry экран входа
func (g *Guard) PublicEntry() string {
	return g.cfg.PublicEntry
}

// Authenticate загружает профиль для текущей сессии.
// Ошибка сети оставляет Guard в Authenticating и сохраняет сессию.
func (g *Guard) Authenticate(ctx context.Context) error {
	session := g.sessions.Session(ctx)
	if session.AccessToken == "" {
		g.transition(Unauthenticated)
		return profile.ErrNotAuthenticated
	}

	g.transition(Authenticating)

	err := g.refresher.Refresh(ctx, session)
	switch {
	case err == nil:
		g.transition(Authenticated)
		return nil
	case errors.Is(err, profile.ErrSessionChanged):
		// Состоянием уже распорядился обработчик session:changed
		return err
	case errors.Is(err, profile.ErrSessionExpired), errors.Is(err, profile.ErrNotAuthenticated):
		g.reject(ctx, err.Error())
		return err
	default:
		g.logger.Warn("Authentication pending, profile fetch failed", "error", err)
		return err
	}
}

// Check решает, можно ли показать view
func (g *Guard) Check(ctx context.Context, view string) Decision {
	if g.public[view] {
		return Decision{Action: Render}
	}

	if g.State() != Authenticated {
		return Decision{Action: Redirect, Location: g.cfg.PublicEntry}
	}

	token := g.sessions.CurrentToken(ctx)
	if token == "" || auth.Expired(token, g.cfg.Now()) {
		g.logger.Warn("Session is no longer valid, forcing logout", "view", view)
		if err := g.sessions.ClearSession(ctx); err != nil {
			g.logger.Error("Failed to clear session", "error", err)
		}
		g.transition(Unauthenticated)
		return Decision{Action: ForceLogout, Location: g.cfg.PublicEntry}
	}

	return Decision{Action: Render}
}

// Close отписывает Guard от шины
func (g *Guard) Close() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
}

func (g *Guard) onSessionExpired(e events.SessionExpired) {
	g.reject(context.Background(), e.Reason)
}

func (g *Guard) onSessionChanged(s models.Session) {
	if s.AccessToken == "" {
		g.transition(Unauthenticated)
		return
	}
	// Новая сессия ждет Authenticate
	g.transition(Authenticating)
}

// reject Rejected -> очистка сессии -> Unauthenticated
func (g *Guard) reject(ctx context.Context, reason string) {
	if g.State() == Unauthenticated {
		return
	}

	g.logger.Warn("Session rejected", "reason", reason)
	g.transition(Rejected)

	if err := g.sessions.ClearSession(ctx); err != nil {
		g.logger.Error("Failed to clear session", "error", err)
	}
	g.transition(Unauthenticated)
}

func (g *Guard) transition(to State) {
	g.mu.Lock()
	from := g.state
	if from == to {
		g.mu.Unlock()
		return
	}
	g.state = to
	g.mu.Unlock()

	g.logger.Info("Guard state changed", "from", from.String(), "to", to.String())
	events.Publish(g.bus, events.GuardState, events.StateChange{From: from.String(), To: to.String()})
}
