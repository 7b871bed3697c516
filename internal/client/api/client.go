package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/fitkeeper/internal/models"
	"github.com/iudanet/fitkeeper/pkg/api"
)

// ErrUnauthorized сервер отклонил запрос как неавторизованный (401/403).
// Сессия после такого ответа считается недействительной.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError ответ сервера с кодом вне диапазона 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Is позволяет errors.Is(err, ErrUnauthorized) для 401 и 403
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				// (flask отвечает 308 на /api/friends -> /api/friends/)
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GetProfile получает полный снимок профиля текущего пользователя
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*models.ProfileSnapshot, error) {
	var resp models.ProfileSnapshot
	if err := c.doRequest(ctx, http.MethodGet, "/api/profile", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// ListWorkouts возвращает каталог тренировок
func (c *Client) ListWorkouts(ctx context.Context) ([]api.Workout, error) {
	var resp []api.Workout
	if err := c.doRequest(ctx, http.MethodGet, "/api/workouts", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("list workouts request failed: %w", err)
	}
	return resp, nil
}

// CompleteWorkout отмечает тренировку выполненной и возвращает ее каноничное представление
func (c *Client) CompleteWorkout(ctx context.Context, accessToken string, workoutID int64) (*api.Workout, error) {
	var resp api.Workout
	path := fmt.Sprintf("/api/workouts/%d", workoutID)
	body := api.CompleteWorkoutRequest{Completed: true}
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, body, &resp); err != nil {
		return nil, fmt.Errorf("complete workout request failed: %w", err)
	}
	return &resp, nil
}

// DeleteWorkout удаляет тренировку
func (c *Client) DeleteWorkout(ctx context.Context, accessToken string, workoutID int64) error {
	path := fmt.Sprintf("/api/workouts/%d", workoutID)
	if err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete workout request failed: %w", err)
	}
	return nil
}

// ListNutrition возвращает первую страницу планов питания
func (c *Client) ListNutrition(ctx context.Context) ([]api.NutritionPlan, error) {
	var resp api.NutritionListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/nutrition", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("list nutrition request failed: %w", err)
	}
	return resp.Plans, nil
}

// SaveRecipe сохраняет рецепт в профиль пользователя
func (c *Client) SaveRecipe(ctx context.Context, accessToken string, recipeID int64) error {
	path := fmt.Sprintf("/api/nutrition/%d/save", recipeID)
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("save recipe request failed: %w", err)
	}
	return nil
}

// DeleteRecipe удаляет рецепт
func (c *Client) DeleteRecipe(ctx context.Context, accessToken string, recipeID int64) error {
	path := fmt.Sprintf("/api/nutrition/%d", recipeID)
	if err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete recipe request failed: %w", err)
	}
	return nil
}

// ListProducts возвращает каталог товаров
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp []models.Product
	if err := c.doRequest(ctx, http.MethodGet, "/api/products", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return resp, nil
}

// ListChallenges возвращает активные челленджи
func (c *Client) ListChallenges(ctx context.Context, accessToken string) ([]api.Challenge, error) {
	var resp []api.Challenge
	if err := c.doRequest(ctx, http.MethodGet, "/api/challenges", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list challenges request failed: %w", err)
	}
	return resp, nil
}

// JoinChallenge присоединяет пользователя к челленджу
func (c *Client) JoinChallenge(ctx context.Context, accessToken string, challengeID int64) (*api.JoinChallengeResponse, error) {
	var resp api.JoinChallengeResponse
	path := fmt.Sprintf("/api/challenges/%d/join", challengeID)
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("join challenge request failed: %w", err)
	}
	return &resp, nil
}

// ListFriends возвращает список друзей
func (c *Client) ListFriends(ctx context.Context, accessToken string) ([]models.FriendRef, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/friends", accessToken, nil, &raw); err != nil {
		return nil, fmt.Errorf("list friends request failed: %w", err)
	}
	resp, err := decodeFriends(raw)
	if err != nil {
		return nil, fmt.Errorf("list friends request failed: %w", err)
	}
	return resp.Friends, nil
}

// AddFriend отправляет заявку в друзья
func (c *Client) AddFriend(ctx context.Context, accessToken string, friendID int64) (*api.FriendsResponse, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/friends/%d", friendID)
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, nil, &raw); err != nil {
		return nil, fmt.Errorf("add friend request failed: %w", err)
	}
	resp, err := decodeFriends(raw)
	if err != nil {
		return nil, fmt.Errorf("add friend request failed: %w", err)
	}
	return resp, nil
}

// RemoveFriend удаляет дружбу в обе стороны
func (c *Client) RemoveFriend(ctx context.Context, accessToken string, friendID int64) error {
	path := fmt.Sprintf("/api/friends/%d", friendID)
	if err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("remove friend request failed: %w", err)
	}
	return nil
}

// Suggestions возвращает пользователей, которых можно добавить в друзья
func (c *Client) Suggestions(ctx context.Context, accessToken string) ([]models.FriendRef, error) {
	var resp api.SuggestionsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/users/suggestions", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("suggestions request failed: %w", err)
	}
	return resp.Data.Users, nil
}

// ListPosts возвращает ленту сообщества
func (c *Client) ListPosts(ctx context.Context, accessToken string) ([]models.Post, error) {
	var resp api.PostsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/posts", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}
	return resp.Posts, nil
}

// CreatePost публикует пост и возвращает его каноничное представление
func (c *Client) CreatePost(ctx context.Context, accessToken, content string) (*models.Post, error) {
	var resp api.PostResponse
	req := api.CreatePostRequest{Content: content}
	if err := c.doRequest(ctx, http.MethodPost, "/api/posts", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}
	if resp.Post == nil {
		return nil, fmt.Errorf("create post request failed: empty post in response")
	}
	return resp.Post, nil
}

// decodeFriends разбирает ответ о друзьях: голый массив или объект {friends, message}
func decodeFriends(raw json.RawMessage) (*api.FriendsResponse, error) {
	resp := &api.FriendsResponse{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return resp, nil
	}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &resp.Friends); err != nil {
			return nil, fmt.Errorf("failed to decode friends: %w", err)
		}
		return resp, nil
	}
	if err := json.Unmarshal(trimmed, resp); err != nil {
		return nil, fmt.Errorf("failed to decode friends: %w", err)
	}
	return resp, nil
}

// doRequest выполняет HTTP запрос.
// accessToken добавляется в заголовок Authorization, если не пустой.
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
			if statusErr.Message == "" {
				// flask-jwt-extended отдает описание в поле msg/error
				statusErr.Message = errResp.Error
			}
		}
		return statusErr
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
