package api

import (
	"context"

	"github.com/iudanet/fitkeeper/internal/models"
	"github.com/iudanet/fitkeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает REST поверхность сервера, которую использует клиент
type ClientAPI interface {
	// Auth
	Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Profile
	GetProfile(ctx context.Context, accessToken string) (*models.ProfileSnapshot, error)

	// Workouts
	ListWorkouts(ctx context.Context) ([]api.Workout, error)
	CompleteWorkout(ctx context.Context, accessToken string, workoutID int64) (*api.Workout, error)
	DeleteWorkout(ctx context.Context, accessToken string, workoutID int64) error

	// Nutrition
	ListNutrition(ctx context.Context) ([]api.NutritionPlan, error)
	SaveRecipe(ctx context.Context, accessToken string, recipeID int64) error
	DeleteRecipe(ctx context.Context, accessToken string, recipeID int64) error

	// Products
	ListProducts(ctx context.Context) ([]models.Product, error)

	// Community
	ListChallenges(ctx context.Context, accessToken string) ([]api.Challenge, error)
	JoinChallenge(ctx context.Context, accessToken string, challengeID int64) (*api.JoinChallengeResponse, error)
	ListFriends(ctx context.Context, accessToken string) ([]models.FriendRef, error)
	AddFriend(ctx context.Context, accessToken string, friendID int64) (*api.FriendsResponse, error)
	RemoveFriend(ctx context.Context, accessToken string, friendID int64) error
	Suggestions(ctx context.Context, accessToken string) ([]models.FriendRef, error)
	ListPosts(ctx context.Context, accessToken string) ([]models.Post, error)
	CreatePost(ctx context.Context, accessToken, content string) (*models.Post, error)
}
