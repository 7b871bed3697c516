package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitkeeper/internal/models"
	"github.com/iudanet/fitkeeper/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:5000"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешный логин
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "secret", req.Password)

		_, _ = w.Write([]byte(`{"access_token":"a.b.c","refresh_token":"r.r.r","user":{"id":1,"username":"alice"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), api.LoginRequest{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", resp.AccessToken)
	assert.Equal(t, "r.r.r", resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
}

// TestClient_Register_Error проверяет обработку ошибок при регистрации
func TestClient_Register_Error(t *testing.T) {
	tests := []struct {
		name           string
		responseBody   string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "Username already exists",
			statusCode:     http.StatusBadRequest,
			responseBody:   `{"message":"Username already exists"}`,
			expectedErrMsg: "server error (400): Username already exists",
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.Register(context.Background(), api.RegisterRequest{Username: "bob"})

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.statusCode, statusErr.StatusCode)
			assert.NotErrorIs(t, err, ErrUnauthorized)
		})
	}
}

// TestClient_GetProfile проверяет заголовок Authorization и разбор снимка профиля
func TestClient_GetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)
		assert.Equal(t, "Bearer a.b.c", r.Header.Get("Authorization"))

		// Формат, который отдает сервер: челленджи названиями, рецепты id
		_, _ = w.Write([]byte(`{
			"completedWorkouts": [7],
			"completedWorkoutDetails": [{"id": 7, "name": "Run", "date": "2024-05-01T10:00:00Z"}],
			"communityChallenges": ["30 day plank"],
			"friends": [{"id": 2, "username": "bob"}],
			"posts": [{"content": "hi", "time": "2024-05-02T10:00:00Z"}],
			"savedRecipes": [11]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	profile, err := client.GetProfile(context.Background(), "a.b.c")

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, profile.CompletedWorkouts)
	require.Len(t, profile.CompletedWorkoutDetails, 1)
	assert.Equal(t, "Run", profile.CompletedWorkoutDetails[0].Name)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), profile.CompletedWorkoutDetails[0].CompletedAt)
	assert.Equal(t, []models.ChallengeRef{{Name: "30 day plank"}}, profile.CommunityChallenges)
	assert.Equal(t, []models.FriendRef{{ID: 2, Username: "bob"}}, profile.Friends)
	require.Len(t, profile.Posts, 1)
	assert.Equal(t, "hi", profile.Posts[0].Content)
	assert.Equal(t, []models.SavedRecipe{{ID: 11}}, profile.SavedRecipes)
}

// TestClient_Unauthorized проверяет, что 401 и 403 распознаются как ErrUnauthorized
func TestClient_Unauthorized(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
				_, _ = w.Write([]byte(`{"msg":"Token has expired"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.GetProfile(context.Background(), "a.b.c")

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnauthorized))
		})
	}
}

// TestClient_NetworkError проверяет ошибку транспорта
func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.GetProfile(context.Background(), "a.b.c")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestClient_JoinChallenge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/challenges/3/join", r.URL.Path)
		assert.Equal(t, "Bearer a.b.c", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"message":"Challenge joined successfully","challenge":{"id":3,"name":"Plank","progress":0,"target":30}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.JoinChallenge(context.Background(), "a.b.c", 3)

	require.NoError(t, err)
	require.NotNil(t, resp.Challenge)
	assert.Equal(t, models.ChallengeRef{ID: 3, Name: "Plank", Target: 30}, *resp.Challenge)
}

// TestClient_Friends проверяет оба формата ответа о друзьях
func TestClient_Friends(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []models.FriendRef
	}{
		{name: "bare array", body: `[{"id":2,"username":"bob"}]`, want: []models.FriendRef{{ID: 2, Username: "bob"}}},
		{name: "wrapped", body: `{"friends":[{"id":3,"username":"eve"}]}`, want: []models.FriendRef{{ID: 3, Username: "eve"}}},
		{name: "empty", body: ``, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/friends", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			friends, err := client.ListFriends(context.Background(), "a.b.c")
			require.NoError(t, err)
			assert.Equal(t, tt.want, friends)
		})
	}
}

func TestClient_AddFriend_MessageOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/friends/5", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Friend request sent"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.AddFriend(context.Background(), "a.b.c", 5)

	require.NoError(t, err)
	assert.Equal(t, "Friend request sent", resp.Message)
	assert.Empty(t, resp.Friends)
}

func TestClient_CreatePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.CreatePostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Content)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Post created successfully","post":{"id":42,"content":"hello","likes":0,"created_at":"2024-05-02T10:00:00Z","user":{"id":1,"username":"alice"}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	post, err := client.CreatePost(context.Background(), "a.b.c", "hello")

	require.NoError(t, err)
	assert.Equal(t, "42", post.ID)
	assert.Equal(t, "hello", post.Content)
	require.NotNil(t, post.Author)
	assert.Equal(t, "alice", post.Author.Username)
}

func TestClient_CompleteAndDeleteWorkout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/workouts/9", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			var req api.CompleteWorkoutRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.True(t, req.Completed)
			_, _ = w.Write([]byte(`{"id":9,"name":"Leg day","duration":45}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"Workout deleted"}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	workout, err := client.CompleteWorkout(ctx, "a.b.c", 9)
	require.NoError(t, err)
	assert.Equal(t, "Leg day", workout.Name)

	require.NoError(t, client.DeleteWorkout(ctx, "a.b.c", 9))
}

func TestClient_CompleteWorkout_MethodNotAllowed(t *testing.T) {
	// Сервер, у которого /api/workouts/:id принимает только GET, PUT и DELETE
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodPut, http.MethodDelete:
			_, _ = w.Write([]byte(`{"id":9}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	workout, err := NewClient(server.URL).CompleteWorkout(context.Background(), "a.b.c", 9)
	assert.Nil(t, workout)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusMethodNotAllowed, statusErr.StatusCode)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestClient_Catalogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Mat","price":19.5}]`))
		case "/api/nutrition":
			_, _ = w.Write([]byte(`{"plans":[{"id":4,"name":"Oats","calories":300}]}`))
		case "/api/users/suggestions":
			_, _ = w.Write([]byte(`{"data":{"users":[{"id":8,"username":"zed"}]}}`))
		case "/api/posts":
			_, _ = w.Write([]byte(`{"posts":[{"id":1,"content":"x"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	products, err := client.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Product{{ID: 1, Name: "Mat", Price: 19.5}}, products)

	plans, err := client.ListNutrition(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Oats", plans[0].Name)

	users, err := client.Suggestions(ctx, "a.b.c")
	require.NoError(t, err)
	assert.Equal(t, []models.FriendRef{{ID: 8, Username: "zed"}}, users)

	posts, err := client.ListPosts(ctx, "a.b.c")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].ID)

	_, err = client.ListWorkouts(ctx)
	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
