package profile

import (
	"slices"
	"strconv"
	"time"

	"github.com/iudanet/fitkeeper/internal/models"
)

// Mutation изменение снимка профиля одного из видов models.MutationKind.
// Используется поле, соответствующее Kind; для удаления достаточно ID.
type Mutation struct {
	Post      models.Post
	Challenge models.ChallengeRef
	Workout   models.CompletedWorkout
	Recipe    models.SavedRecipe
	Friend    models.FriendRef
	Kind      models.MutationKind
	// Friends полный список друзей, если сервер вернул его в ответе
	Friends []models.FriendRef
	// ReplaceID временный id поста, который заменяется серверным
	ReplaceID string
	// Supersedes локальная ссылка на челлендж, которую заменяет серверная
	Supersedes models.ChallengeRef
}

// TargetID идентификатор цели мутации
func (m Mutation) TargetID() string {
	switch m.Kind {
	case models.MutationCompleteWorkout, models.MutationDeleteWorkout:
		return strconv.FormatInt(m.Workout.ID, 10)
	case models.MutationJoinChallenge:
		if m.Challenge.ID == 0 {
			return m.Challenge.Name
		}
		return strconv.FormatInt(m.Challenge.ID, 10)
	case models.MutationAddFriend, models.MutationRemoveFriend:
		return strconv.FormatInt(m.Friend.ID, 10)
	case models.MutationSaveRecipe, models.MutationDeleteRecipe:
		return strconv.FormatInt(m.Recipe.ID, 10)
	case models.MutationAddPost:
		return m.Post.ID
	default:
		return ""
	}
}

// undo обратная операция к примененной мутации
type undo func(p *models.ProfileSnapshot)

// apply применяет мутацию к снимку по идемпотентным правилам.
// Возвращает обратную операцию и признак того, что снимок изменился.
func apply(p *models.ProfileSnapshot, m Mutation) (undo, bool) {
	switch m.Kind {
	case models.MutationCompleteWorkout:
		return completeWorkout(p, m.Workout)
	case models.MutationDeleteWorkout:
		return deleteWorkout(p, m.Workout.ID)
	case models.MutationJoinChallenge:
		return joinChallenge(p, m.Challenge, m.Supersedes)
	case models.MutationAddFriend:
		if m.Friends != nil {
			return replaceFriends(p, m.Friends)
		}
		return addFriend(p, m.Friend)
	case models.MutationRemoveFriend:
		return removeFriend(p, m.Friend.ID)
	case models.MutationSaveRecipe:
		return saveRecipe(p, m.Recipe)
	case models.MutationDeleteRecipe:
		return deleteRecipe(p, m.Recipe.ID)
	case models.MutationAddPost:
		return addPost(p, m.Post, m.ReplaceID)
	default:
		return nil, false
	}
}

// reflected сообщает, что эффект мутации уже присутствует в снимке
func reflected(p models.ProfileSnapshot, m Mutation) bool {
	switch m.Kind {
	case models.MutationCompleteWorkout:
		return p.HasCompletedWorkout(m.Workout.ID)
	case models.MutationDeleteWorkout:
		return !p.HasCompletedWorkout(m.Workout.ID)
	case models.MutationJoinChallenge:
		return p.HasChallenge(m.Challenge)
	case models.MutationAddFriend:
		return p.HasFriend(m.Friend.ID)
	case models.MutationRemoveFriend:
		return !p.HasFriend(m.Friend.ID)
	case models.MutationSaveRecipe:
		return p.HasSavedRecipe(m.Recipe.ID)
	case models.MutationDeleteRecipe:
		return !p.HasSavedRecipe(m.Recipe.ID)
	default:
		// серверные посты приходят без временного id, сопоставить нельзя
		return false
	}
}

// isNoop сообщает, что действие пользователя ничего не изменит
func isNoop(p models.ProfileSnapshot, m Mutation) bool {
	if m.Kind == models.MutationAddPost {
		return false
	}
	return reflected(p, m)
}

// delta строит дельту только из затронутых мутацией коллекций
func delta(p models.ProfileSnapshot, kind models.MutationKind) models.ProfileDelta {
	c := p.Clone()
	switch kind {
	case models.MutationCompleteWorkout, models.MutationDeleteWorkout:
		return models.ProfileDelta{
			CompletedWorkouts:       c.CompletedWorkouts,
			CompletedWorkoutDetails: c.CompletedWorkoutDetails,
		}
	case models.MutationJoinChallenge:
		return models.ProfileDelta{CommunityChallenges: c.CommunityChallenges}
	case models.MutationAddFriend, models.MutationRemoveFriend:
		return models.ProfileDelta{Friends: c.Friends}
	case models.MutationSaveRecipe, models.MutationDeleteRecipe:
		return models.ProfileDelta{SavedRecipes: c.SavedRecipes}
	case models.MutationAddPost:
		return models.ProfileDelta{Posts: c.Posts}
	default:
		return models.FullDelta(c)
	}
}

func completeWorkout(p *models.ProfileSnapshot, w models.CompletedWorkout) (undo, bool) {
	if w.CompletedAt.IsZero() {
		w.CompletedAt = time.Now().UTC()
	}

	if i := slices.IndexFunc(p.CompletedWorkoutDetails, func(d models.CompletedWorkout) bool { return d.ID == w.ID }); i >= 0 {
		// Уже выполнена: уточняем название каноническим значением сервера
		prev := p.CompletedWorkoutDetails[i]
		if w.Name == "" || w.Name == prev.Name {
			return nil, false
		}
		p.CompletedWorkoutDetails[i].Name = w.Name
		return func(p *models.ProfileSnapshot) {
			if j := slices.IndexFunc(p.CompletedWorkoutDetails, func(d models.CompletedWorkout) bool { return d.ID == w.ID }); j >= 0 {
				p.CompletedWorkoutDetails[j].Name = prev.Name
			}
		}, true
	}

	p.CompletedWorkouts = append(p.CompletedWorkouts, w.ID)
	p.CompletedWorkoutDetails = append(p.CompletedWorkoutDetails, w)
	return func(p *models.ProfileSnapshot) {
		deleteWorkout(p, w.ID)
	}, true
}

func deleteWorkout(p *models.ProfileSnapshot, id int64) (undo, bool) {
	idIdx := slices.Index(p.CompletedWorkouts, id)
	detailIdx := slices.IndexFunc(p.CompletedWorkoutDetails, func(d models.CompletedWorkout) bool { return d.ID == id })
	if idIdx < 0 && detailIdx < 0 {
		return nil, false
	}

	detail := models.CompletedWorkout{ID: id}
	if detailIdx >= 0 {
		detail = p.CompletedWorkoutDetails[detailIdx]
		p.CompletedWorkoutDetails = slices.Delete(p.CompletedWorkoutDetails, detailIdx, detailIdx+1)
	}
	if idIdx >= 0 {
		p.CompletedWorkouts = slices.Delete(p.CompletedWorkouts, idIdx, idIdx+1)
	}

	return func(p *models.ProfileSnapshot) {
		if p.HasCompletedWorkout(id) {
			return
		}
		p.CompletedWorkouts = insertAt(p.CompletedWorkouts, max(idIdx, 0), id)
		p.CompletedWorkoutDetails = insertAt(p.CompletedWorkoutDetails, max(detailIdx, 0), detail)
	}, true
}

func joinChallenge(p *models.ProfileSnapshot, c, prior models.ChallengeRef) (undo, bool) {
	match := func(x models.ChallengeRef) bool {
		return c.Same(x) || prior.Same(x)
	}

	var found []int
	for i, x := range p.CommunityChallenges {
		if match(x) {
			found = append(found, i)
		}
	}

	switch len(found) {
	case 0:
		p.CommunityChallenges = append(p.CommunityChallenges, c)
		return func(p *models.ProfileSnapshot) {
			p.CommunityChallenges = slices.DeleteFunc(p.CommunityChallenges, c.Same)
		}, true
	case 1:
		i := found[0]
		prev := p.CommunityChallenges[i]
		if prev == c {
			return nil, false
		}
		// Каноническое представление от сервера заменяет локальное
		p.CommunityChallenges[i] = c
		return func(p *models.ProfileSnapshot) {
			if j := slices.IndexFunc(p.CommunityChallenges, c.Same); j >= 0 {
				p.CommunityChallenges[j] = prev
			}
		}, true
	}

	// Несколько записей об одном челлендже (по имени и по id) схлопываются в одну
	prev := slices.Clone(p.CommunityChallenges)
	first := found[0]
	out := make([]models.ChallengeRef, 0, len(prev)-len(found)+1)
	for i, x := range prev {
		switch {
		case i == first:
			out = append(out, c)
		case !match(x):
			out = append(out, x)
		}
	}
	p.CommunityChallenges = out
	return func(p *models.ProfileSnapshot) {
		p.CommunityChallenges = prev
	}, true
}

func addFriend(p *models.ProfileSnapshot, f models.FriendRef) (undo, bool) {
	if p.HasFriend(f.ID) {
		return nil, false
	}

	p.Friends = append(p.Friends, f)
	return func(p *models.ProfileSnapshot) {
		removeFriend(p, f.ID)
	}, true
}

func replaceFriends(p *models.ProfileSnapshot, friends []models.FriendRef) (undo, bool) {
	if slices.Equal(p.Friends, friends) {
		return nil, false
	}

	prev := p.Friends
	p.Friends = slices.Clone(friends)
	return func(p *models.ProfileSnapshot) {
		p.Friends = prev
	}, true
}

func removeFriend(p *models.ProfileSnapshot, id int64) (undo, bool) {
	i := slices.IndexFunc(p.Friends, func(f models.FriendRef) bool { return f.ID == id })
	if i < 0 {
		return nil, false
	}

	removed := p.Friends[i]
	p.Friends = slices.Delete(p.Friends, i, i+1)
	return func(p *models.ProfileSnapshot) {
		if !p.HasFriend(id) {
			p.Friends = insertAt(p.Friends, i, removed)
		}
	}, true
}

func saveRecipe(p *models.ProfileSnapshot, r models.SavedRecipe) (undo, bool) {
	if p.HasSavedRecipe(r.ID) {
		return nil, false
	}
	if r.SavedAt.IsZero() {
		r.SavedAt = time.Now().UTC()
	}

	p.SavedRecipes = append(p.SavedRecipes, r)
	return func(p *models.ProfileSnapshot) {
		deleteRecipe(p, r.ID)
	}, true
}

func deleteRecipe(p *models.ProfileSnapshot, id int64) (undo, bool) {
	i := slices.IndexFunc(p.SavedRecipes, func(r models.SavedRecipe) bool { return r.ID == id })
	if i < 0 {
		return nil, false
	}

	removed := p.SavedRecipes[i]
	p.SavedRecipes = slices.Delete(p.SavedRecipes, i, i+1)
	return func(p *models.ProfileSnapshot) {
		if !p.HasSavedRecipe(id) {
			p.SavedRecipes = insertAt(p.SavedRecipes, i, removed)
		}
	}, true
}

func addPost(p *models.ProfileSnapshot, post models.Post, replaceID string) (undo, bool) {
	byID := func(id string) func(models.Post) bool {
		return func(x models.Post) bool { return id != "" && x.ID == id }
	}

	if replaceID != "" {
		if i := slices.IndexFunc(p.Posts, byID(replaceID)); i >= 0 {
			prev := p.Posts[i]
			p.Posts[i] = post
			return func(p *models.ProfileSnapshot) {
				if j := slices.IndexFunc(p.Posts, byID(post.ID)); j >= 0 {
					p.Posts[j] = prev
				}
			}, true
		}
	}

	if slices.ContainsFunc(p.Posts, byID(post.ID)) {
		return nil, false
	}

	// Новые посты показываются первыми
	p.Posts = insertAt(p.Posts, 0, post)
	return func(p *models.ProfileSnapshot) {
		p.Posts = slices.DeleteFunc(p.Posts, byID(post.ID))
	}, true
}

// insertAt вставляет v на позицию i, ограничивая ее длиной слайса
func insertAt[T any](s []T, i int, v T) []T {
	return slices.Insert(s, min(i, len(s)), v)
}
