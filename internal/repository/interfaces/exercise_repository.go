package interfaces

import (
	"context"

	domain "workout-tracker/internal/domain/exercise"
)

// ExerciseRepository определяет контракт для чтения справочника упражнений.
//
// Справочник неизменяем со стороны приложения: наполнение выполняется
// миграциями, поэтому интерфейс содержит только операции чтения.
type ExerciseRepository interface {
	// GetByID возвращает упражнение по идентификатору.
	// Возвращает (nil, ErrNotFound), если упражнение не найдено.
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)

	// List возвращает все упражнения справочника, отсортированные по идентификатору.
	List(ctx context.Context) ([]*domain.Exercise, error)
}
