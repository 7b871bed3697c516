package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// CompletedWorkout описывает выполненную тренировку в профиле
type CompletedWorkout struct {
	CompletedAt time.Time `json:"completedAt"`
	Name        string    `json:"name"`
	ID          int64     `json:"id"`
}

// UnmarshalJSON принимает как completedAt, так и устаревшее поле date
func (w *CompletedWorkout) UnmarshalJSON(data []byte) error {
	var raw struct {
		CompletedAt *Timestamp `json:"completedAt"`
		Date        *Timestamp `json:"date"`
		Name        string     `json:"name"`
		ID          int64      `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	w.ID = raw.ID
	w.Name = raw.Name
	switch {
	case raw.CompletedAt != nil:
		w.CompletedAt = raw.CompletedAt.Time
	case raw.Date != nil:
		w.CompletedAt = raw.Date.Time
	default:
		w.CompletedAt = time.Time{}
	}
	return nil
}

// ChallengeRef ссылка на челлендж, в котором участвует пользователь
type ChallengeRef struct {
	Name     string `json:"name"`
	ID       int64  `json:"id"`
	Progress int    `json:"progress"`
	Target   int    `json:"target"`
}

// UnmarshalJSON принимает объект челленджа или просто его название (так отдает /api/profile)
func (c *ChallengeRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = ChallengeRef{Name: name}
		return nil
	}

	type plain ChallengeRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("challenge must be a name or an object: %w", err)
	}
	*c = ChallengeRef(p)
	return nil
}

// Same сравнивает челленджи: по ID, если он известен у обоих, иначе по названию
func (c ChallengeRef) Same(other ChallengeRef) bool {
	if c.ID != 0 && other.ID != 0 {
		return c.ID == other.ID
	}
	return c.Name != "" && c.Name == other.Name
}

// FriendRef ссылка на друга пользователя
type FriendRef struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	ID       int64  `json:"id"`
}

// PostAuthor автор поста в ленте
type PostAuthor struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	ID       int64  `json:"id"`
}

// Post представляет пост пользователя в сообществе.
// До подтверждения сервером ID поста временный (UUID), см. Provisional.
type Post struct {
	CreatedAt   time.Time   `json:"created_at"`
	Author      *PostAuthor `json:"user,omitempty"`
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	Likes       int         `json:"likes"`
	Provisional bool        `json:"provisional,omitempty"`
}

// UnmarshalJSON принимает числовой или строковый id и поле time вместо created_at
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw struct {
		CreatedAt   *Timestamp      `json:"created_at"`
		Time        *Timestamp      `json:"time"`
		Author      *PostAuthor     `json:"user"`
		ID          json.RawMessage `json:"id"`
		Content     string          `json:"content"`
		Likes       int             `json:"likes"`
		Provisional bool            `json:"provisional"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Content = raw.Content
	p.Likes = raw.Likes
	p.Author = raw.Author
	p.Provisional = raw.Provisional
	p.ID = rawID(raw.ID)
	switch {
	case raw.CreatedAt != nil:
		p.CreatedAt = raw.CreatedAt.Time
	case raw.Time != nil:
		p.CreatedAt = raw.Time.Time
	default:
		p.CreatedAt = time.Time{}
	}
	return nil
}

// SavedRecipe сохраненный рецепт (план питания)
type SavedRecipe struct {
	SavedAt time.Time `json:"savedAt"`
	Name    string    `json:"name"`
	ID      int64     `json:"id"`
}

// UnmarshalJSON принимает объект рецепта или просто числовой id (так отдает /api/profile)
func (r *SavedRecipe) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		*r = SavedRecipe{ID: id}
		return nil
	}

	var raw struct {
		SavedAt *Timestamp `json:"savedAt"`
		Date    *Timestamp `json:"date"`
		Name    string     `json:"name"`
		ID      int64      `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("saved recipe must be an id or an object: %w", err)
	}
	r.ID = raw.ID
	r.Name = raw.Name
	switch {
	case raw.SavedAt != nil:
		r.SavedAt = raw.SavedAt.Time
	case raw.Date != nil:
		r.SavedAt = raw.Date.Time
	default:
		r.SavedAt = time.Time{}
	}
	return nil
}

// ProfileSnapshot денормализованный снимок профиля пользователя.
// CompletedWorkouts и CompletedWorkoutDetails всегда согласованы:
// по одной записи на каждый id, без дубликатов (см. Normalize).
type ProfileSnapshot struct {
	Username                string             `json:"username,omitempty"`
	Email                   string             `json:"email,omitempty"`
	Avatar                  string             `json:"avatar,omitempty"`
	CompletedWorkouts       []int64            `json:"completedWorkouts"`
	CompletedWorkoutDetails []CompletedWorkout `json:"completedWorkoutDetails"`
	CommunityChallenges     []ChallengeRef     `json:"communityChallenges"`
	Friends                 []FriendRef        `json:"friends"`
	Posts                   []Post             `json:"posts"`
	SavedRecipes            []SavedRecipe      `json:"savedRecipes"`
}

// EmptyProfile возвращает пустой снимок со всеми коллекциями, инициализированными пустыми слайсами
func EmptyProfile() ProfileSnapshot {
	return ProfileSnapshot{
		CompletedWorkouts:       []int64{},
		CompletedWorkoutDetails: []CompletedWorkout{},
		CommunityChallenges:     []ChallengeRef{},
		Friends:                 []FriendRef{},
		Posts:                   []Post{},
		SavedRecipes:            []SavedRecipe{},
	}
}

// Clone создает глубокую копию снимка
func (p ProfileSnapshot) Clone() ProfileSnapshot {
	out := p
	out.CompletedWorkouts = cloneOrEmpty(p.CompletedWorkouts)
	out.CompletedWorkoutDetails = cloneOrEmpty(p.CompletedWorkoutDetails)
	out.CommunityChallenges = cloneOrEmpty(p.CommunityChallenges)
	out.Friends = cloneOrEmpty(p.Friends)
	out.SavedRecipes = cloneOrEmpty(p.SavedRecipes)
	out.Posts = make([]Post, len(p.Posts))
	for i, post := range p.Posts {
		out.Posts[i] = post
		if post.Author != nil {
			a := *post.Author
			out.Posts[i].Author = &a
		}
	}
	return out
}

// Normalize восстанавливает инвариант согласованности выполненных тренировок:
// дубликаты удаляются (сохраняется первое вхождение), для каждого id есть детали,
// для каждой детали есть id. Коллекции nil заменяются пустыми.
func (p *ProfileSnapshot) Normalize() {
	ids := make([]int64, 0, len(p.CompletedWorkouts))
	seen := make(map[int64]bool, len(p.CompletedWorkouts))
	for _, id := range p.CompletedWorkouts {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	details := make(map[int64]CompletedWorkout, len(p.CompletedWorkoutDetails))
	for i, d := range p.CompletedWorkoutDetails {
		// /api/profile отдает детали без id, в том же порядке, что и completedWorkouts
		if d.ID == 0 {
			if i >= len(p.CompletedWorkouts) {
				continue
			}
			d.ID = p.CompletedWorkouts[i]
		}
		if _, ok := details[d.ID]; ok {
			continue
		}
		details[d.ID] = d
		// деталь без id в списке: добавляем id в конец
		if !seen[d.ID] {
			seen[d.ID] = true
			ids = append(ids, d.ID)
		}
	}

	p.CompletedWorkouts = ids
	p.CompletedWorkoutDetails = make([]CompletedWorkout, 0, len(ids))
	for _, id := range ids {
		d, ok := details[id]
		if !ok {
			d = CompletedWorkout{ID: id}
		}
		p.CompletedWorkoutDetails = append(p.CompletedWorkoutDetails, d)
	}

	if p.CommunityChallenges == nil {
		p.CommunityChallenges = []ChallengeRef{}
	}
	if p.Friends == nil {
		p.Friends = []FriendRef{}
	}
	if p.Posts == nil {
		p.Posts = []Post{}
	}
	if p.SavedRecipes == nil {
		p.SavedRecipes = []SavedRecipe{}
	}
}

// HasCompletedWorkout проверяет, отмечена ли тренировка выполненной
func (p ProfileSnapshot) HasCompletedWorkout(id int64) bool {
	return slices.Contains(p.CompletedWorkouts, id)
}

// HasChallenge проверяет участие в челлендже
func (p ProfileSnapshot) HasChallenge(c ChallengeRef) bool {
	return slices.ContainsFunc(p.CommunityChallenges, c.Same)
}

// HasFriend проверяет наличие друга по id
func (p ProfileSnapshot) HasFriend(id int64) bool {
	return slices.ContainsFunc(p.Friends, func(f FriendRef) bool { return f.ID == id })
}

// HasSavedRecipe проверяет, сохранен ли рецепт
func (p ProfileSnapshot) HasSavedRecipe(id int64) bool {
	return slices.ContainsFunc(p.SavedRecipes, func(r SavedRecipe) bool { return r.ID == id })
}

// ProfileDelta частичное изменение снимка профиля, рассылаемое через profile:update.
// nil коллекция означает "не изменилась".
type ProfileDelta struct {
	CompletedWorkouts       []int64
	CompletedWorkoutDetails []CompletedWorkout
	CommunityChallenges     []ChallengeRef
	Friends                 []FriendRef
	Posts                   []Post
	SavedRecipes            []SavedRecipe
	Replaced                bool // снимок заменен целиком (refresh/logout)
}

// FullDelta строит дельту, содержащую все коллекции снимка
func FullDelta(p ProfileSnapshot) ProfileDelta {
	c := p.Clone()
	return ProfileDelta{
		CompletedWorkouts:       c.CompletedWorkouts,
		CompletedWorkoutDetails: c.CompletedWorkoutDetails,
		CommunityChallenges:     c.CommunityChallenges,
		Friends:                 c.Friends,
		Posts:                   c.Posts,
		SavedRecipes:            c.SavedRecipes,
		Replaced:                true,
	}
}

func cloneOrEmpty[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
