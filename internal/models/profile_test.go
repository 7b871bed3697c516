package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ответ /api/profile в том виде, в котором его отдает сервер
const serverProfile = `{
	"completedWorkouts": [3, 5],
	"completedWorkoutDetails": [
		{"name": "Morning Run", "date": "2024-05-01T07:30:00"},
		{"name": "Yoga", "date": "2024-05-02T18:00:00.123456"}
	],
	"communityChallenges": ["10k steps", {"id": 4, "name": "Plank", "progress": 2, "target": 30}],
	"savedRecipes": [9, {"id": 11, "name": "Oatmeal", "savedAt": "2024-05-03T08:00:00Z"}],
	"friends": [{"id": 2, "username": "bob", "avatar": "🚴"}],
	"posts": [{"content": "hi", "time": "2024-05-04T09:00:00"}, {"id": 12, "content": "yo", "created_at": "2024-05-05T10:00:00+02:00"}]
}`

func TestProfileSnapshot_DecodeServerShape(t *testing.T) {
	var p ProfileSnapshot
	require.NoError(t, json.Unmarshal([]byte(serverProfile), &p))
	p.Normalize()

	assert.Equal(t, []int64{3, 5}, p.CompletedWorkouts)
	require.Len(t, p.CompletedWorkoutDetails, 2)
	assert.Equal(t, CompletedWorkout{ID: 3, Name: "Morning Run", CompletedAt: time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)}, p.CompletedWorkoutDetails[0])
	assert.Equal(t, int64(5), p.CompletedWorkoutDetails[1].ID)
	assert.Equal(t, 123456000, p.CompletedWorkoutDetails[1].CompletedAt.Nanosecond())

	assert.Equal(t, []ChallengeRef{
		{Name: "10k steps"},
		{ID: 4, Name: "Plank", Progress: 2, Target: 30},
	}, p.CommunityChallenges)

	require.Len(t, p.SavedRecipes, 2)
	assert.Equal(t, SavedRecipe{ID: 9}, p.SavedRecipes[0])
	assert.Equal(t, "Oatmeal", p.SavedRecipes[1].Name)

	require.Len(t, p.Posts, 2)
	assert.Equal(t, "", p.Posts[0].ID)
	assert.Equal(t, time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC), p.Posts[0].CreatedAt)
	assert.Equal(t, "12", p.Posts[1].ID)
	assert.Equal(t, 8, p.Posts[1].CreatedAt.UTC().Hour())
}

func TestProfileSnapshot_DecodeInvalid(t *testing.T) {
	var p ProfileSnapshot
	err := json.Unmarshal([]byte(`{"communityChallenges": [true]}`), &p)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"completedWorkoutDetails": [{"date": "yesterday"}]}`), &p)
	assert.Error(t, err)
}

func TestProfileSnapshot_Normalize(t *testing.T) {
	tests := []struct {
		name        string
		in          ProfileSnapshot
		wantIDs     []int64
		wantDetails []CompletedWorkout
	}{
		{
			name:        "duplicates keep first occurrence",
			in:          ProfileSnapshot{CompletedWorkouts: []int64{1, 2, 1}, CompletedWorkoutDetails: []CompletedWorkout{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 1, Name: "dup"}}},
			wantIDs:     []int64{1, 2},
			wantDetails: []CompletedWorkout{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
		},
		{
			name:        "missing details are created",
			in:          ProfileSnapshot{CompletedWorkouts: []int64{4}},
			wantIDs:     []int64{4},
			wantDetails: []CompletedWorkout{{ID: 4}},
		},
		{
			name:        "detail without id in the list is appended",
			in:          ProfileSnapshot{CompletedWorkouts: []int64{1}, CompletedWorkoutDetails: []CompletedWorkout{{ID: 1}, {ID: 9, Name: "orphan"}}},
			wantIDs:     []int64{1, 9},
			wantDetails: []CompletedWorkout{{ID: 1}, {ID: 9, Name: "orphan"}},
		},
		{
			name:        "positional ids for details without id",
			in:          ProfileSnapshot{CompletedWorkouts: []int64{7, 8}, CompletedWorkoutDetails: []CompletedWorkout{{Name: "seven"}, {Name: "eight"}, {Name: "extra"}}},
			wantIDs:     []int64{7, 8},
			wantDetails: []CompletedWorkout{{ID: 7, Name: "seven"}, {ID: 8, Name: "eight"}},
		},
		{
			name:        "nil collections",
			in:          ProfileSnapshot{},
			wantIDs:     []int64{},
			wantDetails: []CompletedWorkout{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Normalize()
			assert.Equal(t, tt.wantIDs, p.CompletedWorkouts)
			assert.Equal(t, tt.wantDetails, p.CompletedWorkoutDetails)
			assert.NotNil(t, p.CommunityChallenges)
			assert.NotNil(t, p.Friends)
			assert.NotNil(t, p.Posts)
			assert.NotNil(t, p.SavedRecipes)
		})
	}
}

func TestProfileSnapshot_Clone(t *testing.T) {
	orig := EmptyProfile()
	orig.CompletedWorkouts = []int64{1}
	orig.Friends = []FriendRef{{ID: 2, Username: "bob"}}
	orig.Posts = []Post{{ID: "p", Content: "hi", Author: &PostAuthor{ID: 1, Username: "alice"}}}

	c := orig.Clone()
	c.CompletedWorkouts[0] = 99
	c.Friends[0].Username = "eve"
	c.Posts[0].Author.Username = "mallory"

	assert.Equal(t, int64(1), orig.CompletedWorkouts[0])
	assert.Equal(t, "bob", orig.Friends[0].Username)
	assert.Equal(t, "alice", orig.Posts[0].Author.Username)
}

func TestChallengeRef_Same(t *testing.T) {
	assert.True(t, ChallengeRef{ID: 1, Name: "a"}.Same(ChallengeRef{ID: 1, Name: "b"}))
	assert.False(t, ChallengeRef{ID: 1, Name: "a"}.Same(ChallengeRef{ID: 2, Name: "a"}))
	assert.True(t, ChallengeRef{Name: "a"}.Same(ChallengeRef{ID: 2, Name: "a"}))
	assert.False(t, ChallengeRef{}.Same(ChallengeRef{}))
}

func TestProfileSnapshot_Has(t *testing.T) {
	p := ProfileSnapshot{
		CompletedWorkouts:   []int64{1},
		CommunityChallenges: []ChallengeRef{{Name: "10k steps"}},
		Friends:             []FriendRef{{ID: 2}},
		SavedRecipes:        []SavedRecipe{{ID: 3}},
	}

	assert.True(t, p.HasCompletedWorkout(1))
	assert.False(t, p.HasCompletedWorkout(2))
	assert.True(t, p.HasChallenge(ChallengeRef{ID: 5, Name: "10k steps"}))
	assert.True(t, p.HasFriend(2))
	assert.True(t, p.HasSavedRecipe(3))
	assert.False(t, p.HasSavedRecipe(4))
}

func TestFullDelta(t *testing.T) {
	p := EmptyProfile()
	p.Friends = []FriendRef{{ID: 1}}

	d := FullDelta(p)
	assert.True(t, d.Replaced)
	assert.Equal(t, p.Friends, d.Friends)
	assert.NotNil(t, d.Posts)

	d.Friends[0].ID = 42
	assert.Equal(t, int64(1), p.Friends[0].ID)
}

func TestTargetKey(t *testing.T) {
	assert.Equal(t, "workout:3", TargetKey(MutationCompleteWorkout, "3"))
	assert.Equal(t, TargetKey(MutationCompleteWorkout, "3"), TargetKey(MutationDeleteWorkout, "3"))
	assert.Equal(t, "friend:2", MutationIntent{Kind: MutationRemoveFriend, TargetID: "2"}.TargetKey())
}

func TestSession_CloneAndIsZero(t *testing.T) {
	assert.True(t, Session{}.IsZero())

	s := Session{AccessToken: "a.b.c", User: &User{ID: 1, Username: "alice"}}
	assert.False(t, s.IsZero())

	c := s.Clone()
	c.User.Username = "bob"
	assert.Equal(t, "alice", s.User.Username)
}
