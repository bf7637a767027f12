package exercise

import (
	"context"

	domain "workout-tracker/internal/domain/exercise"
	repo "workout-tracker/internal/repository/interfaces"
)

// Service описывает usecase-слой справочника упражнений.
// Справочник только читается: наполнение выполняется миграциями.
type Service interface {
	// GetByID возвращает упражнение по идентификатору.
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)

	// List возвращает все упражнения справочника.
	List(ctx context.Context) ([]*domain.Exercise, error)
}

type service struct {
	exercises repo.ExerciseRepository
}

// NewService создаёт новый сервис справочника упражнений.
func NewService(exercises repo.ExerciseRepository) Service {
	return &service{exercises: exercises}
}

// GetByID возвращает упражнение по ID.
func (s *service) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	return s.exercises.GetByID(ctx, id)
}

// List возвращает все упражнения справочника.
func (s *service) List(ctx context.Context) ([]*domain.Exercise, error) {
	return s.exercises.List(ctx)
}
