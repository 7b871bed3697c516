package api

import "github.com/iudanet/fitkeeper/internal/models"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (проверяется только сервером)
	Bio      string `json:"bio"`      // короткое описание профиля
	Avatar   string `json:"avatar,omitempty"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль
}

// TokenResponse представляет ответ /api/auth/login и /api/auth/register
type TokenResponse struct {
	User         *models.User `json:"user"`                    // авторизованный пользователь
	AccessToken  string       `json:"access_token"`            // JWT access token
	RefreshToken string       `json:"refresh_token,omitempty"` // refresh token (register его не отдает)
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}
