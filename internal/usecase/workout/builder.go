package workout

import (
	"context"
	"errors"

	exdomain "workout-tracker/internal/domain/exercise"
	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
)

// ExerciseCatalog описывает минимальный контракт справочника упражнений,
// необходимый для сборки планов. Реализуется репозиторием упражнений.
type ExerciseCatalog interface {
	// GetByID возвращает упражнение по идентификатору
	// или (nil, repo.ErrNotFound), если оно отсутствует.
	GetByID(ctx context.Context, id int64) (*exdomain.Exercise, error)
}

// PlanInput описывает один запрошенный план упражнения.
// Числовые параметры опциональны и передаются в план без изменений.
type PlanInput struct {
	ExerciseID int64
	Reps       *int
	Sets       *int
	Weight     *int
}

// planBuilder собирает дочерние планы агрегата, разрешая ссылки
// на справочник упражнений.
type planBuilder struct {
	catalog ExerciseCatalog
}

// newPlanBuilder создаёт сборщик планов поверх справочника упражнений.
func newPlanBuilder(catalog ExerciseCatalog) *planBuilder {
	return &planBuilder{catalog: catalog}
}

// build разрешает каждый запрос по справочнику и возвращает планы
// в порядке входных запросов.
//
// Сборка атомарна: первый неизвестный идентификатор упражнения прерывает
// всю пачку с ExerciseNotFoundError, частичный список не возвращается.
func (b *planBuilder) build(ctx context.Context, requests []PlanInput) ([]domain.ExercisePlan, error) {
	plans := make([]domain.ExercisePlan, 0, len(requests))

	for _, req := range requests {
		ex, err := b.catalog.GetByID(ctx, req.ExerciseID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, &ExerciseNotFoundError{ID: req.ExerciseID}
			}
			return nil, err
		}

		plans = append(plans, domain.ExercisePlan{
			Exercise: *ex,
			Reps:     req.Reps,
			Sets:     req.Sets,
			Weight:   req.Weight,
		})
	}

	return plans, nil
}
