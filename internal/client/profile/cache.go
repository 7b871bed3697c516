// Package profile holds the client's denormalized profile snapshot and the
// merge rules used to fold user actions into it.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/fitkeeper/internal/client/api"
	"github.com/iudanet/fitkeeper/internal/client/auth"
	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/persist"
	"github.com/iudanet/fitkeeper/internal/models"
)

type pending struct {
	undo     undo
	mutation Mutation
	intent   models.MutationIntent
}

// Cache единственный владелец снимка профиля.
// Каждый успешный Refresh увеличивает поколение снимка; оптимистичные
// изменения, примененные в предыдущем поколении, больше не трогают снимок.
type Cache struct {
	apiClient  api.ClientAPI
	sessions   auth.SessionStore
	persist    *persist.Adapter
	bus        *events.Bus
	logger     *slog.Logger
	pending    map[string]pending
	snapshot   models.ProfileSnapshot
	generation uint64
	mu         sync.Mutex
}

// NewCache создает кэш с пустым снимком
func NewCache(apiClient api.ClientAPI, sessions auth.SessionStore, p *persist.Adapter, bus *events.Bus, logger *slog.Logger) *Cache {
	return &Cache{
		apiClient: apiClient,
		sessions:  sessions,
		persist:   p,
		bus:       bus,
		logger:    logger,
		pending:   make(map[string]pending),
		snapshot:  models.EmptyProfile(),
	}
}

// Refresh загружает профиль с сервера и целиком заменяет снимок
func (c *Cache) Refresh(ctx context.Context, session models.Session) error {
	if !auth.IsValid(session.AccessToken) {
		return ErrNotAuthenticated
	}

	c.logger.Debug("Fetching profile")

	snap, err := c.apiClient.GetProfile(ctx, session.AccessToken)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			c.Expire(ctx, err)
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		c.logger.Warn("Profile fetch failed", "error", err)
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if snap == nil {
		return fmt.Errorf("%w: empty response", ErrFetchFailed)
	}

	// Ответ для уже неактуальной сессии не применяем
	if c.sessions.CurrentToken(ctx) != session.AccessToken {
		c.logger.Info("Discarding profile fetched for a previous session")
		return ErrSessionChanged
	}

	next := snap.Clone()
	next.Normalize()
	if u := session.User; u != nil {
		if next.Username == "" {
			next.Username = u.Username
		}
		if next.Email == "" {
			next.Email = u.Email
		}
		if next.Avatar == "" {
			next.Avatar = u.Avatar
		}
	}

	c.mu.Lock()
	c.snapshot = next
	c.generation++
	dropped := 0
	for id, p := range c.pending {
		if reflected(next, p.mutation) {
			delete(c.pending, id)
			dropped++
		}
	}
	out := c.snapshot.Clone()
	c.save(ctx, out)
	c.mu.Unlock()

	c.logger.Info("Profile refreshed",
		"workouts", len(out.CompletedWorkouts),
		"challenges", len(out.CommunityChallenges),
		"friends", len(out.Friends),
		"recipes", len(out.SavedRecipes),
		"dropped_intents", dropped,
	)

	events.Publish(c.bus, events.ProfileUpdate, models.FullDelta(out))

	return nil
}

// Apply вносит подтвержденную мутацию в снимок вне оптимистичного цикла
func (c *Cache) Apply(ctx context.Context, m Mutation) bool {
	c.mu.Lock()
	_, changed := apply(&c.snapshot, m)
	out := c.commitLocked(ctx, changed)
	c.mu.Unlock()

	if changed {
		c.publish(out, m.Kind)
	}
	return changed
}

// Contains сообщает, что эффект мутации уже отражен в снимке.
// Для удаления это значит, что цели в снимке нет.
func (c *Cache) Contains(m Mutation) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return isNoop(c.snapshot, m)
}

// ApplyOptimistic применяет мутацию до ответа сервера и регистрирует намерение.
// Возвращает false, если мутация ничего не меняет.
func (c *Cache) ApplyOptimistic(ctx context.Context, m Mutation) (models.MutationIntent, bool) {
	c.mu.Lock()
	if isNoop(c.snapshot, m) {
		c.mu.Unlock()
		return models.MutationIntent{}, false
	}

	u, changed := apply(&c.snapshot, m)
	if !changed {
		c.mu.Unlock()
		return models.MutationIntent{}, false
	}

	intent := models.MutationIntent{
		ID:         uuid.NewString(),
		Kind:       m.Kind,
		TargetID:   m.TargetID(),
		AppliedAt:  time.Now(),
		Generation: c.generation,
	}
	c.pending[intent.ID] = pending{intent: intent, mutation: m, undo: u}
	out := c.commitLocked(ctx, true)
	c.mu.Unlock()

	c.publish(out, m.Kind)
	return intent, true
}

// Revert откатывает ровно оптимистичное изменение намерения.
// Если с тех пор снимок заменен Refresh, ничего не делает.
func (c *Cache) Revert(ctx context.Context, intent models.MutationIntent) bool {
	c.mu.Lock()
	p, ok := c.settle(intent)
	if !ok {
		c.mu.Unlock()
		return false
	}
	p.undo(&c.snapshot)
	out := c.commitLocked(ctx, true)
	c.mu.Unlock()

	c.logger.Info("Optimistic change rolled back", "kind", intent.Kind, "target", intent.TargetID)
	c.publish(out, intent.Kind)
	return true
}

// Confirm завершает намерение и применяет каноническое представление сервера.
// canonical может быть nil, если сервер не вернул ничего нового.
func (c *Cache) Confirm(ctx context.Context, intent models.MutationIntent, canonical *Mutation) bool {
	c.mu.Lock()
	p, ok := c.settle(intent)
	if !ok || canonical == nil {
		c.mu.Unlock()
		return false
	}
	m := *canonical
	if m.Kind == models.MutationJoinChallenge {
		m.Supersedes = p.mutation.Challenge
	}
	_, changed := apply(&c.snapshot, m)
	out := c.commitLocked(ctx, changed)
	c.mu.Unlock()

	if changed {
		c.publish(out, canonical.Kind)
	}
	return changed
}

// Pending возвращает намерения, еще ожидающие ответа сервера
func (c *Cache) Pending() []models.MutationIntent {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.MutationIntent, 0, len(c.pending))
	for _, p := range c.pending {
		out = append(out, p.intent)
	}
	return out
}

// Snapshot возвращает глубокую копию текущего снимка
func (c *Cache) Snapshot() models.ProfileSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Clone()
}

// Generation возвращает номер текущего поколения снимка
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Load поднимает сохраненный снимок (показывается до первого Refresh)
func (c *Cache) Load(ctx context.Context) models.ProfileSnapshot {
	snap := persist.Load(ctx, c.persist, persist.KeyProfile, models.EmptyProfile())
	snap.Normalize()

	c.mu.Lock()
	c.snapshot = snap
	out := c.snapshot.Clone()
	c.mu.Unlock()

	return out
}

// Clear сбрасывает снимок (выход из системы)
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	c.snapshot = models.EmptyProfile()
	c.generation++
	clear(c.pending)
	out := c.snapshot.Clone()
	if err := c.persist.Remove(ctx, persist.KeyProfile); err != nil {
		c.logger.Warn("Failed to remove persisted profile", "error", err)
	}
	c.mu.Unlock()

	events.Publish(c.bus, events.ProfileUpdate, models.FullDelta(out))
}

// settle снимает намерение с учета; false, если снимок уже другого поколения.
// Вызывается под c.mu.
func (c *Cache) settle(intent models.MutationIntent) (pending, bool) {
	p, ok := c.pending[intent.ID]
	if !ok {
		return pending{}, false
	}
	delete(c.pending, intent.ID)

	if p.intent.Generation != c.generation {
		return pending{}, false
	}
	return p, true
}

// Expire очищает сессию и снимок после отказа сервера в авторизации
// и сообщает об этом через session:expired
func (c *Cache) Expire(ctx context.Context, cause error) {
	c.logger.Warn("Session rejected by server, logging out", "error", cause)

	// Подписчики (SessionGuard) видят событие до очистки и проходят через Rejected
	events.Publish(c.bus, events.SessionExpiry, events.SessionExpired{Reason: cause.Error()})

	if err := c.sessions.ClearSession(ctx); err != nil {
		c.logger.Error("Failed to clear session", "error", err)
	}
	c.Clear(ctx)
}

// commitLocked сохраняет снимок, если он изменился, и возвращает его копию.
// Вызывается под c.mu, чтобы записи в хранилище шли в порядке изменений.
func (c *Cache) commitLocked(ctx context.Context, changed bool) models.ProfileSnapshot {
	out := c.snapshot.Clone()
	if changed {
		c.save(ctx, out)
	}
	return out
}

func (c *Cache) publish(out models.ProfileSnapshot, kind models.MutationKind) {
	events.Publish(c.bus, events.ProfileUpdate, delta(out, kind))
}

func (c *Cache) save(ctx context.Context, snap models.ProfileSnapshot) {
	if err := c.persist.Save(ctx, persist.KeyProfile, snap); err != nil {
		c.logger.Warn("Failed to persist profile", "error", err)
	}
}
