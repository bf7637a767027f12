package workout

import (
	"context"
	"errors"
	"time"

	userdomain "workout-tracker/internal/domain/user"
	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
)

// CreateInput описывает данные для создания тренировки.
type CreateInput struct {
	Name      string
	DateTime  time.Time
	Status    domain.Status
	Comment   string
	Exercises []PlanInput
}

// UpdateInput описывает данные для полного обновления тренировки.
// Набор планов заменяется целиком содержимым Exercises.
type UpdateInput struct {
	ID        int64
	Name      string
	DateTime  time.Time
	Status    domain.Status
	Comment   string
	Exercises []PlanInput
}

// Service описывает usecase-слой агрегата тренировки.
//
// Вызывающий пользователь (caller) передаётся явным аргументом каждому
// методу: сервис не обращается ни к какому неявному контексту аутентификации.
// Все проверки владения выполняются до любых изменений, поэтому при
// классифицированной ошибке состояние хранилища гарантированно не меняется.
type Service interface {
	// Create создаёт тренировку с планами упражнений, владелец — caller.
	// Возвращает ExerciseNotFoundError, если какое-либо упражнение неизвестно;
	// тренировка при этом не сохраняется.
	Create(ctx context.Context, caller *userdomain.User, input CreateInput) (*domain.Workout, error)

	// Update полностью обновляет тренировку, целиком заменяя набор планов.
	// Возвращает WorkoutNotFoundError, UnauthorizedAccessError или
	// ExerciseNotFoundError; во всех этих случаях тренировка остаётся прежней.
	Update(ctx context.Context, caller *userdomain.User, input UpdateInput) (*domain.Workout, error)

	// Delete удаляет тренировку вместе с планами и возвращает снимок
	// удалённого состояния.
	Delete(ctx context.Context, caller *userdomain.User, id int64) (*domain.Workout, error)

	// Schedule изменяет только дату и время тренировки, не трогая
	// название, статус, комментарий и планы.
	Schedule(ctx context.Context, caller *userdomain.User, id int64, dateTime time.Time) (*domain.Workout, error)

	// List возвращает тренировки caller'а в порядке создания.
	// Чужие тренировки никогда не попадают в результат.
	List(ctx context.Context, caller *userdomain.User) ([]*domain.Workout, error)

	// ListByStatus возвращает тренировки caller'а с данным статусом,
	// отсортированные по дате проведения по убыванию.
	ListByStatus(ctx context.Context, caller *userdomain.User, status domain.Status) ([]*domain.Workout, error)

	// Report формирует текстовый отчёт по всем тренировкам caller'а.
	Report(ctx context.Context, caller *userdomain.User) (string, error)
}

type service struct {
	workouts repo.WorkoutRepository
	plans    *planBuilder
}

// NewService создаёт новый сервис тренировок.
// Каталог упражнений нужен для разрешения ссылок при сборке планов.
func NewService(workouts repo.WorkoutRepository, catalog ExerciseCatalog) Service {
	return &service{
		workouts: workouts,
		plans:    newPlanBuilder(catalog),
	}
}

// Create создаёт тренировку с планами упражнений.
func (s *service) Create(ctx context.Context, caller *userdomain.User, input CreateInput) (*domain.Workout, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	// Сначала разрешаем все упражнения: при неизвестном идентификаторе
	// тренировка не должна сохраниться вовсе
	plans, err := s.plans.build(ctx, input.Exercises)
	if err != nil {
		return nil, err
	}

	w := domain.NewWorkout(input.Name, input.DateTime, input.Status, input.Comment, caller.ID)
	w.Plans = plans

	if err := s.workouts.SaveAggregate(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

// Update полностью обновляет тренировку, целиком заменяя набор планов.
func (s *service) Update(ctx context.Context, caller *userdomain.User, input UpdateInput) (*domain.Workout, error) {
	w, err := s.loadOwned(ctx, caller, input.ID)
	if err != nil {
		return nil, err
	}

	// Разрешаем новый набор планов до любых изменений агрегата:
	// обновление либо применяется целиком, либо не применяется вовсе
	plans, err := s.plans.build(ctx, input.Exercises)
	if err != nil {
		return nil, err
	}

	w.Name = input.Name
	w.DateTime = input.DateTime
	w.Status = input.Status
	w.Comment = input.Comment
	w.Plans = plans

	if err := s.workouts.SaveAggregate(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

// Delete удаляет тренировку и возвращает снимок удалённого состояния.
func (s *service) Delete(ctx context.Context, caller *userdomain.User, id int64) (*domain.Workout, error) {
	w, err := s.loadOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := s.workouts.DeleteAggregate(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, &WorkoutNotFoundError{ID: id}
		}
		return nil, err
	}

	return w, nil
}

// Schedule изменяет только дату и время тренировки.
func (s *service) Schedule(ctx context.Context, caller *userdomain.User, id int64, dateTime time.Time) (*domain.Workout, error) {
	w, err := s.loadOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := s.workouts.Reschedule(ctx, id, dateTime); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, &WorkoutNotFoundError{ID: id}
		}
		return nil, err
	}

	w.DateTime = dateTime
	return w, nil
}

// List возвращает тренировки caller'а.
func (s *service) List(ctx context.Context, caller *userdomain.User) ([]*domain.Workout, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	return s.workouts.ListByUser(ctx, caller.ID)
}

// ListByStatus возвращает тренировки caller'а с данным статусом.
func (s *service) ListByStatus(ctx context.Context, caller *userdomain.User, status domain.Status) ([]*domain.Workout, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	return s.workouts.ListByUserAndStatus(ctx, caller.ID, status)
}

// Report формирует текстовый отчёт по всем тренировкам caller'а.
func (s *service) Report(ctx context.Context, caller *userdomain.User) (string, error) {
	if caller == nil {
		return "", ErrUnauthenticated
	}

	workouts, err := s.workouts.ListByUser(ctx, caller.ID)
	if err != nil {
		return "", err
	}

	return FormatReport(caller, workouts), nil
}

// loadOwned загружает тренировку и проверяет владение.
// Порядок проверок фиксированный: сначала наличие, затем владелец,
// и только потом какие-либо изменения.
func (s *service) loadOwned(ctx context.Context, caller *userdomain.User, id int64) (*domain.Workout, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	w, err := s.workouts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, &WorkoutNotFoundError{ID: id}
		}
		return nil, err
	}

	// Владение проверяется строго по равенству идентификаторов
	if !w.IsOwnedBy(caller.ID) {
		return nil, &UnauthorizedAccessError{ID: id}
	}

	return w, nil
}
