package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "workout-tracker/internal/domain/workout"
)

// WorkoutRepository определяет контракт для работы с агрегатом тренировки.
//
// Агрегат (тренировка + планы упражнений) всегда сохраняется и удаляется
// как единое целое: реализация обязана выполнять запись родителя и детей
// в одной транзакции. Каскадную семантику обеспечивает хранилище, а не
// вызывающий код.
type WorkoutRepository interface {
	// SaveAggregate атомарно сохраняет агрегат целиком: создает или обновляет
	// тренировку, целиком заменяет набор её планов (старые удаляются, новые
	// вставляются в порядке слайса Plans). После первого сохранения
	// заполняет workout.ID и идентификаторы планов.
	SaveAggregate(ctx context.Context, workout *domain.Workout) error

	// FindByID возвращает агрегат по идентификатору вместе с планами
	// (в порядке вставки) и разрешёнными упражнениями.
	// Возвращает (nil, ErrNotFound), если тренировка не найдена.
	FindByID(ctx context.Context, id int64) (*domain.Workout, error)

	// DeleteAggregate атомарно удаляет тренировку вместе со всеми планами.
	// Возвращает ErrNotFound, если тренировка не найдена.
	DeleteAggregate(ctx context.Context, id int64) error

	// Reschedule обновляет только дату и время тренировки, не трогая
	// остальные поля и набор планов (их идентификаторы остаются стабильными).
	// Возвращает ErrNotFound, если тренировка не найдена.
	Reschedule(ctx context.Context, id int64, dateTime time.Time) error

	// ListByUser возвращает тренировки пользователя в порядке создания.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error)

	// ListByUserAndStatus возвращает тренировки пользователя с данным статусом,
	// отсортированные по дате проведения по убыванию.
	ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status domain.Status) ([]*domain.Workout, error)
}
