package workout

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated возвращается, когда операция вызвана без
// аутентифицированного пользователя. Создание тренировки без владельца
// запрещено: такой агрегат был бы навсегда недоступен для изменения.
var ErrUnauthenticated = errors.New("authenticated user required")

// WorkoutNotFoundError возвращается, когда тренировка с данным
// идентификатором отсутствует в хранилище.
type WorkoutNotFoundError struct {
	ID int64
}

func (e *WorkoutNotFoundError) Error() string {
	return fmt.Sprintf("workout not found with id: %d", e.ID)
}

// UnauthorizedAccessError возвращается, когда вызывающий пользователь
// не является владельцем тренировки. Проверка выполняется до любых
// изменений, поэтому при этой ошибке состояние хранилища не меняется.
type UnauthorizedAccessError struct {
	ID int64
}

func (e *UnauthorizedAccessError) Error() string {
	return fmt.Sprintf("user is not authorized to modify workout with id: %d", e.ID)
}

// ExerciseNotFoundError возвращается, когда упражнение, на которое
// ссылается план, отсутствует в справочнике. Вся пачка планов при этом
// отбрасывается целиком.
type ExerciseNotFoundError struct {
	ID int64
}

func (e *ExerciseNotFoundError) Error() string {
	return fmt.Sprintf("exercise not found with id: %d", e.ID)
}
