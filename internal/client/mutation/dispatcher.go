// Package mutation applies user actions to the profile optimistically and
// reconciles them with the server's answer.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/fitkeeper/internal/client/api"
	"github.com/iudanet/fitkeeper/internal/client/auth"
	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/profile"
	"github.com/iudanet/fitkeeper/internal/models"
	"github.com/iudanet/fitkeeper/internal/validation"
)

var (
	// ErrMutationInFlight действие над той же целью еще не завершено
	ErrMutationInFlight = errors.New("another action on this item is still in progress")
	// ErrMutationFailed сервер не подтвердил действие; оптимистичное изменение откачено
	ErrMutationFailed = errors.New("action failed")
	// ErrEmptyPost пост без текста
	ErrEmptyPost = fmt.Errorf("%w: post content cannot be empty", validation.ErrInvalidInput)
)

// State итоговое состояние действия
type State string

const (
	StateConfirmed State = "confirmed"
	StateFailed    State = "failed"
	StateNoop      State = "noop"
)

// Result итог выполнения действия
type Result struct {
	Intent models.MutationIntent
	State  State
}

// sendFunc выполняет запрос к серверу и возвращает каноническое представление
// измененной сущности (nil, если сервер ничего нового не вернул)
type sendFunc func(ctx context.Context, token string) (*profile.Mutation, error)

// Dispatcher применяет действия пользователя к профилю
type Dispatcher struct {
	apiClient api.ClientAPI
	sessions  auth.SessionStore
	cache     *profile.Cache
	bus       *events.Bus
	logger    *slog.Logger
	inFlight  map[string]struct{}
	mu        sync.Mutex
}

// NewDispatcher создает диспетчер действий
func NewDispatcher(apiClient api.ClientAPI, sessions auth.SessionStore, cache *profile.Cache, bus *events.Bus, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		apiClient: apiClient,
		sessions:  sessions,
		cache:     cache,
		bus:       bus,
		logger:    logger,
		inFlight:  make(map[string]struct{}),
	}
}

// CompleteWorkout отмечает тренировку выполненной
func (d *Dispatcher) CompleteWorkout(ctx context.Context, w models.CompletedWorkout) (*Result, error) {
	m := profile.Mutation{Kind: models.MutationCompleteWorkout, Workout: w}

	return d.dispatch(ctx, m, "complete workout", func(ctx context.Context, token string) (*profile.Mutation, error) {
		resp, err := d.apiClient.CompleteWorkout(ctx, token, w.ID)
		if err != nil {
			return nil, err
		}
		if resp == nil {
			return nil, nil
		}
		canonical := profile.Mutation{
			Kind:    models.MutationCompleteWorkout,
			Workout: models.CompletedWorkout{ID: w.ID, Name: resp.Name},
		}
		return &canonical, nil
	})
}

// DeleteWorkout удаляет выполненную тренировку
func (d *Dispatcher) DeleteWorkout(ctx context.Context, workoutID int64) (*Result, error) {
	m := profile.Mutation{Kind: models.MutationDeleteWorkout, Workout: models.CompletedWorkout{ID: workoutID}}

	return d.dispatch(ctx, m, "delete workout", func(ctx context.Context, token string) (*profile.Mutation, error) {
		return nil, d.apiClient.DeleteWorkout(ctx, token, workoutID)
	})
}

// JoinChallenge присоединяет пользователя к челленджу
func (d *Dispatcher) JoinChallenge(ctx context.Context, c models.ChallengeRef) (*Result, error) {
	m := profile.Mutation{Kind: models.MutationJoinChallenge, Challenge: c}

	return d.dispatch(ctx, m, "join challenge", func(ctx context.Context, token string) (*profile.Mutation, error) {
		resp, err := d.apiClient.JoinChallenge(ctx, token, c.ID)
		if err != nil {
			return nil, err
		}
		if resp == nil || resp.Challenge == nil {
			return nil, nil
		}
		return &profile.Mutation{Kind: models.MutationJoinChallenge, Challenge: *resp.Challenge}, nil
	})
}

// AddFriend добавляет друга
func (d *Dispatcher) AddFriend(ctx context.Context, f models.FriendRef) (*Result, error) {
	m := profile.Mutation{Kind: models.MutationAddFriend, Friend: f}

	return d.dispatch(ctx, m, "add friend", func(ctx context.Context, token string) (*profile.Mutation, error) {
		resp, err := d.apiClient.AddFriend(ctx, token, f.ID)
		if err != nil {
			return nil, err
		}
		if resp == nil || resp.Friends == nil {
			return nil, nil
		}
		return &profile.Mutation{Kind: models.MutationAddFriend, Friend: f, Friends: resp.Friends}, nil
	})
}

// RemoveFriend удаляет друга
func (d *Dispatcher) RemoveFriend(ctx context.Context, friendID int64) (*Result, error) {
	m := profile.Mutation{Kind: models.MutationRemoveFriend, Friend: models.FriendRef{ID: friendID}}

	return d.dispatch(ctx, m, "remove friend", func(ctx context.Context, token string) (*profile.Mutation, error) {
		return nil, d.apiClient.RemoveFriend(ctx, token, friendID)
	})
}

// SaveRecipe сохраняет рецепт в профиль
func (d *Dispatcher) SaveRecipe(ctx context.Context, r models.SavedRecipe) (*Result, error) {
	m := profile.Mutation{Kind: models.MutationSaveRecipe, Recipe: r}

	return d.dispatch(ctx, m, "save recipe", func(ctx context.Context, token string) (*profile.Mutation, error) {
		return nil, d.apiClient.SaveRecipe(ctx, token, r.ID)
	})
}

// DeleteRecipe удаляет сохраненный рецепт
func (d *Dispatcher) DeleteRecipe(ctx context.Context, recipeID int64) (*Result, error) {
	m := profile.Mutation{Kind: models.MutationDeleteRecipe, Recipe: models.SavedRecipe{ID: recipeID}}

	return d.dispatch(ctx, m, "delete recipe", func(ctx context.Context, token string) (*profile.Mutation, error) {
		return nil, d.apiClient.DeleteRecipe(ctx, token, recipeID)
	})
}

// AddPost публикует пост. До ответа сервера пост виден с временным id.
func (d *Dispatcher) AddPost(ctx context.Context, content string) (*Result, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyPost
	}

	provisional := models.Post{
		ID:          uuid.NewString(),
		Content:     content,
		CreatedAt:   time.Now().UTC(),
		Provisional: true,
	}
	if u := d.sessions.Session(ctx).User; u != nil {
		provisional.Author = &models.PostAuthor{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
	}

	m := profile.Mutation{Kind: models.MutationAddPost, Post: provisional}

	return d.dispatch(ctx, m, "publish post", func(ctx context.Context, token string) (*profile.Mutation, error) {
		post, err := d.apiClient.CreatePost(ctx, token, content)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, nil
		}
		canonical := *post
		canonical.Provisional = false
		if canonical.Author == nil {
			canonical.Author = provisional.Author
		}
		return &profile.Mutation{Kind: models.MutationAddPost, Post: canonical, ReplaceID: provisional.ID}, nil
	})
}

// dispatch проводит действие через состояния:
// optimistic-applied -> network pending -> confirmed | failed
func (d *Dispatcher) dispatch(ctx context.Context, m profile.Mutation, label string, send sendFunc) (*Result, error) {
	key := models.TargetKey(m.Kind, m.TargetID())
	if !d.acquire(key) {
		d.logger.Info("Rejected concurrent action", "kind", m.Kind, "target", key)
		return nil, fmt.Errorf("%w: %s", ErrMutationInFlight, key)
	}
	defer d.release(key)

	token := d.sessions.CurrentToken(ctx)
	if token == "" {
		return nil, profile.ErrNotAuthenticated
	}

	intent, ok := d.cache.ApplyOptimistic(ctx, m)
	if !ok {
		d.logger.Debug("Action is a no-op", "kind", m.Kind, "target", key)
		return &Result{State: StateNoop}, nil
	}

	d.logger.Debug("Optimistic change applied", "kind", m.Kind, "target", key, "intent", intent.ID)

	canonical, err := send(ctx, token)
	if err != nil {
		d.cache.Revert(ctx, intent)
		d.logger.Warn("Action failed, rolled back", "kind", m.Kind, "target", key, "error", err)

		if errors.Is(err, api.ErrUnauthorized) {
			d.cache.Expire(ctx, err)
		}

		events.Publish(d.bus, events.NoticeTopic, events.Notice{
			Level:   events.LevelError,
			Message: fmt.Sprintf("Failed to %s: %v", label, err),
		})
		return &Result{Intent: intent, State: StateFailed}, fmt.Errorf("%w: %s: %w", ErrMutationFailed, label, err)
	}

	d.cache.Confirm(ctx, intent, canonical)
	d.logger.Info("Action confirmed", "kind", m.Kind, "target", key)

	events.Publish(d.bus, events.NoticeTopic, events.Notice{
		Level:   events.LevelInfo,
		Message: successMessage(m.Kind),
	})
	return &Result{Intent: intent, State: StateConfirmed}, nil
}

func (d *Dispatcher) acquire(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, busy := d.inFlight[key]; busy {
		return false
	}
	d.inFlight[key] = struct{}{}
	return true
}

func (d *Dispatcher) release(key string) {
	d.mu.Lock()
	delete(d.inFlight, key)
	d.mu.Unlock()
}

func successMessage(kind models.MutationKind) string {
	switch kind {
	case models.MutationCompleteWorkout:
		return "Workout completed"
	case models.MutationDeleteWorkout:
		return "Workout deleted"
	case models.MutationJoinChallenge:
		return "Challenge joined successfully"
	case models.MutationAddFriend:
		return "Friend added"
	case models.MutationRemoveFriend:
		return "Friendship removed"
	case models.MutationSaveRecipe:
		return "Recipe saved"
	case models.MutationDeleteRecipe:
		return "Recipe removed"
	case models.MutationAddPost:
		return "Post published"
	default:
		return "Done"
	}
}
