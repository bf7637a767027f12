package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "workout-tracker/internal/domain/user"
	repo "workout-tracker/internal/repository/interfaces"
	jwtsvc "workout-tracker/pkg/jwt"
	"workout-tracker/pkg/password"
)

// Service описывает usecase-слой, связанный с аутентификацией:
// регистрацию и вход по username/паролю, обновление токенов.
type Service interface {
	// Register регистрирует пользователя по username и паролю.
	// Возвращает созданного пользователя или ошибку
	// (включая repo.ErrUsernameExists при занятом username).
	Register(ctx context.Context, username, rawPassword string) (*domain.User, error)

	// Login выполняет вход по username/паролю.
	// Возвращает пользователя и пару access/refresh токенов.
	Login(ctx context.Context, username, rawPassword string) (*domain.User, string, string, error)

	// Refresh обновляет пару access/refresh токенов по действительному refresh-токену.
	Refresh(ctx context.Context, refreshToken string) (*domain.User, string, string, error)
}

// Ошибки бизнес-логики usecase-слоя.
var (
	ErrInvalidCredentials  = fmt.Errorf("invalid username or password")
	ErrInvalidRefreshToken = fmt.Errorf("invalid refresh token")
)

type service struct {
	users repo.UserRepository
	jwt   jwtsvc.Service
}

// NewService создаёт новый auth usecase-сервис.
func NewService(users repo.UserRepository, jwt jwtsvc.Service) Service {
	return &service{
		users: users,
		jwt:   jwt,
	}
}

// Register регистрирует нового пользователя.
func (s *service) Register(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	if username == "" || rawPassword == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	// Хешируем пароль на уровне usecase.
	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(username, hashed)

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login выполняет вход по username/паролю и возвращает пару токенов.
// Неизвестный username и неверный пароль намеренно неразличимы для клиента.
func (s *service) Login(ctx context.Context, username, rawPassword string) (*domain.User, string, string, error) {
	if username == "" || rawPassword == "" {
		return nil, "", "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}

	return user, access, refresh, nil
}

// Refresh обновляет пару токенов по refresh-токену.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*domain.User, string, string, error) {
	claims, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, "", "", ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, "", "", ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", "", ErrInvalidRefreshToken
		}
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}

	return user, access, refresh, nil
}

// issueTokens генерирует пару access/refresh токенов для пользователя.
func (s *service) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, _, err := s.jwt.GenerateRefreshToken(user)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return access, refresh, nil
}
