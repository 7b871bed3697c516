package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/persist"
	"github.com/iudanet/fitkeeper/internal/models"
)

// ErrInvalidToken возвращается SetSession для токена неверной формы или без пользователя
var ErrInvalidToken = errors.New("invalid access token")

// TokenStore хранит текущую сессию в памяти и в persist.Adapter.
// Запись в хранилище всегда предшествует обновлению памяти, поэтому
// после сбоя записи память остается прежней.
type TokenStore struct {
	persist *persist.Adapter
	bus     *events.Bus
	logger  *slog.Logger
	session models.Session
	mu      sync.RWMutex
}

var _ SessionStore = (*TokenStore)(nil)

// NewTokenStore создает пустое хранилище; сессия подтягивается лениво
// при первом CurrentToken или явно через Hydrate
func NewTokenStore(p *persist.Adapter, bus *events.Bus, logger *slog.Logger) *TokenStore {
	return &TokenStore{
		persist: p,
		bus:     bus,
		logger:  logger,
	}
}

// SetSession сохраняет token, user и refresh_token одной транзакцией.
// Пустой refreshToken удаляет ранее сохраненный.
func (s *TokenStore) SetSession(ctx context.Context, user *models.User, accessToken, refreshToken string) error {
	if user == nil || !IsValid(accessToken) {
		return ErrInvalidToken
	}

	batch := persist.NewBatch()
	batch.SetString(persist.KeyToken, accessToken)
	if err := batch.Set(persist.KeyUser, user); err != nil {
		return err
	}
	if refreshToken != "" {
		batch.SetString(persist.KeyRefreshToken, refreshToken)
	} else {
		batch.Remove(persist.KeyRefreshToken)
	}

	s.mu.Lock()
	if err := s.persist.SaveAll(ctx, batch); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.session = models.Session{
		User:         cloneUser(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	snapshot := s.session.Clone()
	s.mu.Unlock()

	s.logger.Info("Session stored", "username", user.Username)
	events.Publish(s.bus, events.SessionChanged, snapshot)

	return nil
}

// ClearSession удаляет ключи сессии из хранилища и сбрасывает память
func (s *TokenStore) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	hadSession := !s.session.IsZero()
	err := s.persist.Remove(ctx, persist.KeyToken, persist.KeyRefreshToken, persist.KeyUser)
	// Память сбрасываем даже при ошибке хранилища: выход не должен зависеть от диска
	s.session = models.Session{}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if hadSession {
		s.logger.Info("Session cleared")
		events.Publish(s.bus, events.SessionChanged, models.Session{})
	}

	return nil
}

// CurrentToken возвращает access token из памяти; если его нет,
// перечитывает хранилище и при валидном токене гидрирует память
func (s *TokenStore) CurrentToken(ctx context.Context) string {
	s.mu.RLock()
	token := s.session.AccessToken
	s.mu.RUnlock()

	if IsValid(token) {
		return token
	}

	return s.hydrate(ctx).AccessToken
}

// Session возвращает копию текущей сессии
func (s *TokenStore) Session(ctx context.Context) models.Session {
	if s.CurrentToken(ctx) == "" {
		return models.Session{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Clone()
}

// Hydrate загружает сохраненную сессию в память
func (s *TokenStore) Hydrate(ctx context.Context) models.Session {
	return s.hydrate(ctx).Clone()
}

func (s *TokenStore) hydrate(ctx context.Context) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if IsValid(s.session.AccessToken) {
		return s.session
	}

	token := s.persist.LoadString(ctx, persist.KeyToken)
	if !IsValid(token) {
		if token != "" {
			s.logger.Warn("Ignoring malformed persisted token")
		}
		return models.Session{}
	}

	user := persist.Load[*models.User](ctx, s.persist, persist.KeyUser, nil)
	if user == nil {
		s.logger.Warn("Persisted token has no user, ignoring session")
		return models.Session{}
	}

	s.session = models.Session{
		User:         user,
		AccessToken:  token,
		RefreshToken: s.persist.LoadString(ctx, persist.KeyRefreshToken),
	}
	s.logger.Debug("Session hydrated from storage", "username", user.Username)

	return s.session
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}
