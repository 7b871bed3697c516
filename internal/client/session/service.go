// Package session wires the client state components together. One Service
// is built per process and handed to whatever needs the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/fitkeeper/internal/client/api"
	"github.com/iudanet/fitkeeper/internal/client/auth"
	"github.com/iudanet/fitkeeper/internal/client/cart"
	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/guard"
	"github.com/iudanet/fitkeeper/internal/client/mutation"
	"github.com/iudanet/fitkeeper/internal/client/persist"
	"github.com/iudanet/fitkeeper/internal/client/profile"
	"github.com/iudanet/fitkeeper/internal/client/storage"
	"github.com/iudanet/fitkeeper/internal/models"
)

// Config настройки сессионного сервиса
type Config struct {
	Guard guard.Config
}

// Service владеет всеми компонентами состояния клиента
type Service struct {
	apiClient api.ClientAPI
	bus       *events.Bus
	tokens    *auth.TokenStore
	auth      *auth.Service
	profile   *profile.Cache
	mutations *mutation.Dispatcher
	guard     *guard.Guard
	cart      *cart.Cart
	logger    *slog.Logger
}

// New собирает сервис из явно переданных зависимостей
func New(ctx context.Context, apiClient api.ClientAPI, kv storage.KVStorage, logger *slog.Logger, cfg Config) *Service {
	p := persist.New(kv, logger.With("component", "persist"))
	bus := events.NewBus(logger.With("component", "events"))

	tokens := auth.NewTokenStore(p, bus, logger.With("component", "tokens"))
	cache := profile.NewCache(apiClient, tokens, p, bus, logger.With("component", "profile"))

	return &Service{
		apiClient: apiClient,
		bus:       bus,
		tokens:    tokens,
		auth:      auth.NewService(apiClient, tokens, logger.With("component", "auth")),
		profile:   cache,
		mutations: mutation.NewDispatcher(apiClient, tokens, cache, bus, logger.With("component", "mutations")),
		guard:     guard.New(ctx, tokens, cache, bus, logger.With("component", "guard"), cfg.Guard),
		cart:      cart.New(p, bus, logger.With("component", "cart")),
		logger:    logger,
	}
}

// Start поднимает сохраненное состояние и, если есть сессия, загружает профиль.
// Ошибка сети не сбрасывает сессию и возвращается вызывающему.
func (s *Service) Start(ctx context.Context) error {
	session := s.tokens.Hydrate(ctx)
	s.profile.Load(ctx)
	s.cart.Load(ctx)

	if session.AccessToken == "" {
		s.logger.Debug("No stored session")
		return nil
	}

	s.logger.Info("Resuming session", "username", session.User.Username)
	return s.guard.Authenticate(ctx)
}

// Login входит и загружает профиль
func (s *Service) Login(ctx context.Context, username, password string) (models.Session, error) {
	session, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}
	return session, s.authenticate(ctx)
}

// Register регистрирует пользователя, входит и загружает профиль
func (s *Service) Register(ctx context.Context, in auth.RegisterInput) (models.Session, error) {
	session, err := s.auth.Register(ctx, in)
	if err != nil {
		return models.Session{}, err
	}
	return session, s.authenticate(ctx)
}

// Logout очищает сессию и профиль. Корзина сохраняется.
func (s *Service) Logout(ctx context.Context) error {
	err := s.auth.Logout(ctx)
	s.profile.Clear(ctx)
	return err
}

// Refresh перезагружает профиль для текущей сессии
func (s *Service) Refresh(ctx context.Context) error {
	return s.guard.Authenticate(ctx)
}

// Session возвращает копию текущей сессии
func (s *Service) Session(ctx context.Context) models.Session {
	return s.tokens.Session(ctx)
}

// Token возвращает текущий access token ("" без сессии)
func (s *Service) Token(ctx context.Context) string {
	return s.tokens.CurrentToken(ctx)
}

// Close отписывает компоненты от шины
func (s *Service) Close() {
	s.guard.Close()
}

// API клиент сервера для чтения каталогов
func (s *Service) API() api.ClientAPI { return s.apiClient }

// Guard SessionGuard процесса
func (s *Service) Guard() *guard.Guard { return s.guard }

// Mutations диспетчер действий пользователя
func (s *Service) Mutations() *mutation.Dispatcher { return s.mutations }

// Cart корзина
func (s *Service) Cart() *cart.Cart { return s.cart }

// Profile кэш профиля
func (s *Service) Profile() *profile.Cache { return s.profile }

// Bus шина событий
func (s *Service) Bus() *events.Bus { return s.bus }

func (s *Service) authenticate(ctx context.Context) error {
	if err := s.guard.Authenticate(ctx); err != nil {
		if errors.Is(err, profile.ErrFetchFailed) {
			return fmt.Errorf("signed in, but the profile could not be loaded: %w", err)
		}
		return err
	}
	return nil
}
