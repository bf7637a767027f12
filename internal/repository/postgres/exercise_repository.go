package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "workout-tracker/internal/domain/exercise"
	repo "workout-tracker/internal/repository/interfaces"
)

// pgExercise представляет собой ORM-модель для таблицы exercises.
type pgExercise struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;type:varchar(100);not null"`
	Description string  `gorm:"column:description;type:text"`
	Category    string  `gorm:"column:category;type:text;not null"`
	MuscleGroup *string `gorm:"column:muscle_group;type:text"`
}

func (pgExercise) TableName() string {
	return "exercises"
}

// toDomain маппит ORM-модель упражнения в доменную.
func (m *pgExercise) toDomain() *domain.Exercise {
	var group *domain.MuscleGroup
	if m.MuscleGroup != nil {
		g := domain.MuscleGroup(*m.MuscleGroup)
		group = &g
	}
	return &domain.Exercise{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    domain.Category(m.Category),
		MuscleGroup: group,
	}
}

// ExerciseRepository реализует repo.ExerciseRepository с использованием GORM и Postgres.
//
// Справочник упражнений наполняется миграциями, поэтому репозиторий только читает.
type ExerciseRepository struct {
	db *gorm.DB
}

// Убедимся на этапе компиляции, что структура реализует интерфейс.
var _ repo.ExerciseRepository = (*ExerciseRepository)(nil)

// NewExerciseRepository создает новый репозиторий справочника упражнений.
func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// GetByID возвращает упражнение по идентификатору.
func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	var model pgExercise
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

// List возвращает все упражнения справочника.
func (r *ExerciseRepository) List(ctx context.Context) ([]*domain.Exercise, error) {
	var models []pgExercise
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	exercises := make([]*domain.Exercise, 0, len(models))
	for i := range models {
		exercises = append(exercises, models[i].toDomain())
	}
	return exercises, nil
}
