package models

import (
	"fmt"
	"time"
)

// MutationKind тип оптимистичного действия пользователя
type MutationKind string

// Виды мутаций профиля
const (
	MutationCompleteWorkout MutationKind = "complete_workout"
	MutationDeleteWorkout   MutationKind = "delete_workout"
	MutationJoinChallenge   MutationKind = "join_challenge"
	MutationAddFriend       MutationKind = "add_friend"
	MutationRemoveFriend    MutationKind = "remove_friend"
	MutationSaveRecipe      MutationKind = "save_recipe"
	MutationDeleteRecipe    MutationKind = "delete_recipe"
	MutationAddPost         MutationKind = "add_post"
)

// Resource возвращает семейство ресурса, к которому относится мутация.
// Мутации одного семейства над одной целью не должны выполняться параллельно.
func (k MutationKind) Resource() string {
	switch k {
	case MutationCompleteWorkout, MutationDeleteWorkout:
		return "workout"
	case MutationJoinChallenge:
		return "challenge"
	case MutationAddFriend, MutationRemoveFriend:
		return "friend"
	case MutationSaveRecipe, MutationDeleteRecipe:
		return "recipe"
	case MutationAddPost:
		return "post"
	default:
		return string(k)
	}
}

// MutationIntent описание ожидающего подтверждения оптимистичного изменения.
// Живет от применения действия до завершения сетевого запроса.
type MutationIntent struct {
	AppliedAt  time.Time    `json:"applied_at"`
	ID         string       `json:"id"`         // UUID намерения
	Kind       MutationKind `json:"kind"`       // вид мутации
	TargetID   string       `json:"target_id"`  // идентификатор цели (workout id, friend id, ...)
	Generation uint64       `json:"generation"` // поколение снимка профиля на момент применения
}

// TargetKey ключ цели для защиты от параллельных мутаций одного ресурса
func (i MutationIntent) TargetKey() string {
	return TargetKey(i.Kind, i.TargetID)
}

// TargetKey строит ключ цели из вида мутации и идентификатора
func TargetKey(kind MutationKind, targetID string) string {
	return fmt.Sprintf("%s:%s", kind.Resource(), targetID)
}
