package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/fitkeeper/internal/client/api"
	"github.com/iudanet/fitkeeper/internal/models"
	"github.com/iudanet/fitkeeper/internal/validation"
	pkgapi "github.com/iudanet/fitkeeper/pkg/api"
)

// ErrInvalidCredentials возвращается Login, когда сервер отверг пару логин/пароль
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultAvatar аватар, который сервер назначает при регистрации без avatar
const DefaultAvatar = "👤"

// RegisterInput данные формы регистрации
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Bio             string
	Avatar          string
}

// Validate выполняет локальные проверки до обращения к серверу
func (in RegisterInput) Validate() error {
	if err := validation.ValidateRequired("username", in.Username); err != nil {
		return err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return err
	}
	if err := validation.ValidatePasswordConfirmation(in.Password, in.ConfirmPassword); err != nil {
		return err
	}
	return validation.ValidateRequired("bio", in.Bio)
}

// Service предоставляет функции авторизации
type Service struct {
	apiClient api.ClientAPI
	store     SessionStore
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, store SessionStore, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
	}
}

// Login выполняет аутентификацию и сохраняет полученную сессию
func (s *Service) Login(ctx context.Context, username, password string) (models.Session, error) {
	if err := validation.ValidateRequired("username", username); err != nil {
		return models.Session{}, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return models.Session{}, err
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.Session{}, fmt.Errorf("login failed: %w", err)
	}

	return s.storeSession(ctx, resp)
}

// Register регистрирует пользователя и сразу открывает сессию
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.Session, error) {
	if err := in.Validate(); err != nil {
		return models.Session{}, err
	}

	avatar := in.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Bio:      in.Bio,
		Avatar:   avatar,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("registration failed: %w", err)
	}

	return s.storeSession(ctx, resp)
}

// Logout удаляет локальную сессию. На сервере выхода нет: токен просто забывается.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

func (s *Service) storeSession(ctx context.Context, resp *pkgapi.TokenResponse) (models.Session, error) {
	if resp == nil {
		return models.Session{}, fmt.Errorf("empty auth response: %w", ErrInvalidToken)
	}

	if err := s.store.SetSession(ctx, resp.User, resp.AccessToken, resp.RefreshToken); err != nil {
		return models.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("Authenticated", "username", resp.User.Username)

	return s.store.Session(ctx), nil
}
