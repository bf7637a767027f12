package user

import (
	"context"

	"github.com/google/uuid"

	domain "workout-tracker/internal/domain/user"
	repo "workout-tracker/internal/repository/interfaces"
)

// Service описывает usecase-слой справочника пользователей.
//
// Ядро тренировок получает разрешённого пользователя (caller) явным
// аргументом; этот сервис используется транспортным слоем, чтобы превратить
// идентификатор из токена в запись пользователя.
type Service interface {
	// GetByID возвращает пользователя по идентификатору.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername возвращает пользователя по username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type service struct {
	users repo.UserRepository
}

// NewService создаёт новый сервис пользователей.
func NewService(users repo.UserRepository) Service {
	return &service{users: users}
}

// GetByID возвращает пользователя по ID.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByUsername возвращает пользователя по username.
func (s *service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}
