package api

import (
	"github.com/iudanet/fitkeeper/internal/models"
)

// Workout тренировка из каталога /api/workouts
type Workout struct {
	CreatedAt   models.Timestamp `json:"created_at"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Difficulty  string           `json:"difficulty,omitempty"`
	VideoURL    string           `json:"video_url,omitempty"`
	ID          int64            `json:"id"`
	Duration    int              `json:"duration"`
}

// CompleteWorkoutRequest тело POST /api/workouts/:id
type CompleteWorkoutRequest struct {
	Completed bool `json:"completed"`
}

// NutritionPlan рецепт / план питания из /api/nutrition
type NutritionPlan struct {
	CreatedAt   models.Timestamp `json:"created_at"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	ID          int64            `json:"id"`
	Calories    float64          `json:"calories"`
	Protein     float64          `json:"protein"`
	Carbs       float64          `json:"carbs"`
	Fats        float64          `json:"fats"`
}

// NutritionListResponse ответ GET /api/nutrition
type NutritionListResponse struct {
	Plans []NutritionPlan `json:"plans"`
}

// Challenge челлендж сообщества из /api/challenges
type Challenge struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	ID                int64  `json:"id"`
	Target            int    `json:"target"`
	ParticipantsCount int    `json:"participants_count"`
}

// JoinChallengeResponse ответ POST /api/challenges/:id/join
type JoinChallengeResponse struct {
	Challenge *models.ChallengeRef `json:"challenge"`
	Message   string               `json:"message"`
}

// FriendsResponse ответ GET /api/friends и POST /api/friends/:id.
// Сервер может вернуть как объект с полем friends, так и голый массив, см. decodeFriends.
type FriendsResponse struct {
	Message string             `json:"message,omitempty"`
	Friends []models.FriendRef `json:"friends,omitempty"`
}

// SuggestionsResponse ответ GET /api/users/suggestions
type SuggestionsResponse struct {
	Data struct {
		Users []models.FriendRef `json:"users"`
	} `json:"data"`
}

// CreatePostRequest тело POST /api/posts
type CreatePostRequest struct {
	Content string `json:"content"`
}

// PostResponse ответ POST /api/posts
type PostResponse struct {
	Post    *models.Post `json:"post"`
	Message string       `json:"message"`
}

// PostsResponse ответ GET /api/posts
type PostsResponse struct {
	Posts []models.Post `json:"posts"`
}

// MessageResponse универсальный ответ сервера с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
