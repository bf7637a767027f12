package workout

import (
	"time"

	"github.com/google/uuid"

	"workout-tracker/internal/domain/exercise"
)

// Status описывает статус тренировки.
// Сервис никогда не переключает статус сам: значение полностью
// управляется клиентом (планирование даты не делает тренировку активной).
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid проверяет, что значение входит в допустимый набор статусов.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Workout представляет агрегат тренировки: корневую сущность
// вместе с упорядоченным набором планов упражнений.
//
// Инварианты агрегата:
//   - владелец (UserID) назначается при создании и никогда не меняется;
//   - планы живут строго внутри агрегата: при обновлении набор заменяется
//     целиком, при удалении тренировки удаляются все планы;
//   - идентификатор назначается при первом сохранении и далее стабилен.
type Workout struct {
	ID       int64     // Идентификатор (0 до первого сохранения)
	Name     string    // Название тренировки
	DateTime time.Time // Запланированные дата и время
	Status   Status    // Статус (управляется клиентом)
	Comment  string    // Произвольный комментарий
	UserID   uuid.UUID // Владелец; неизменяем после создания

	Plans []ExercisePlan // Планы упражнений в порядке запроса

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время последнего обновления
}

// ExercisePlan представляет дочернюю сущность агрегата: одно упражнение
// тренировки с параметрами выполнения.
//
// План ссылается на родителя по идентификатору, а не живым указателем,
// чтобы не создавать циклических ссылок между сущностями.
type ExercisePlan struct {
	ID        int64             // Идентификатор (0 до первого сохранения)
	Exercise  exercise.Exercise // Разрешённое справочное упражнение
	Reps      *int              // Повторения (опционально)
	Sets      *int              // Подходы (опционально)
	Weight    *int              // Вес (опционально)
	WorkoutID int64             // Идентификатор родительской тренировки
}

// NewWorkout — фабрика для создания новой тренировки на доменном уровне.
// Планы упражнений добавляются отдельно, после разрешения справочных ссылок.
func NewWorkout(name string, dateTime time.Time, status Status, comment string, userID uuid.UUID) *Workout {
	now := time.Now().UTC()
	return &Workout{
		Name:      name,
		DateTime:  dateTime,
		Status:    status,
		Comment:   comment,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy сообщает, принадлежит ли тренировка пользователю с данным ID.
// Владение проверяется строго по равенству идентификаторов.
func (w *Workout) IsOwnedBy(userID uuid.UUID) bool {
	return w.UserID == userID
}
