package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
)

// pgWorkout представляет собой ORM-модель для таблицы workouts.
type pgWorkout struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	DateTime  time.Time `gorm:"column:date_time;type:timestamptz;not null"`
	Status    string    `gorm:"column:status;type:text;not null"`
	Comment   string    `gorm:"column:comment;type:text"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`

	Plans []pgExercisePlan `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

func (pgWorkout) TableName() string {
	return "workouts"
}

// pgExercisePlan представляет собой ORM-модель для таблицы exercise_plans.
type pgExercisePlan struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	WorkoutID  int64  `gorm:"column:workout_id;not null"`
	ExerciseID int64  `gorm:"column:exercise_id;not null"`
	Reps       *int   `gorm:"column:reps"`
	Sets       *int   `gorm:"column:sets"`
	Weight     *int   `gorm:"column:weight"`

	Exercise pgExercise `gorm:"foreignKey:ExerciseID"`
}

func (pgExercisePlan) TableName() string {
	return "exercise_plans"
}

// toDomain маппит ORM-модель агрегата в доменную.
func (m *pgWorkout) toDomain() (*domain.Workout, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.ExercisePlan, 0, len(m.Plans))
	for i := range m.Plans {
		p := m.Plans[i]
		plans = append(plans, domain.ExercisePlan{
			ID:        p.ID,
			Exercise:  *p.Exercise.toDomain(),
			Reps:      p.Reps,
			Sets:      p.Sets,
			Weight:    p.Weight,
			WorkoutID: p.WorkoutID,
		})
	}

	return &domain.Workout{
		ID:        m.ID,
		Name:      m.Name,
		DateTime:  m.DateTime,
		Status:    domain.Status(m.Status),
		Comment:   m.Comment,
		UserID:    userID,
		Plans:     plans,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// fromDomainWorkout маппит доменный агрегат в ORM-модель (без планов).
func fromDomainWorkout(w *domain.Workout) *pgWorkout {
	return &pgWorkout{
		ID:        w.ID,
		Name:      w.Name,
		DateTime:  w.DateTime,
		Status:    string(w.Status),
		Comment:   w.Comment,
		UserID:    w.UserID.String(),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// WorkoutRepository реализует repo.WorkoutRepository с использованием GORM и Postgres.
//
// Все операции записи выполняются в одной транзакции на весь агрегат:
// тренировка и её планы либо сохраняются вместе, либо не сохраняются вовсе.
type WorkoutRepository struct {
	db *gorm.DB
}

// Убедимся на этапе компиляции, что структура реализует интерфейс.
var _ repo.WorkoutRepository = (*WorkoutRepository)(nil)

// NewWorkoutRepository создает новый репозиторий тренировок.
func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// SaveAggregate атомарно сохраняет агрегат целиком.
// Набор планов заменяется полностью: старые строки удаляются,
// новые вставляются в порядке слайса Plans.
func (r *WorkoutRepository) SaveAggregate(ctx context.Context, w *domain.Workout) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := fromDomainWorkout(w)

		if w.ID == 0 {
			// Первое сохранение: вставляем родителя и получаем идентификатор
			if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
				return err
			}
			w.ID = model.ID
		} else {
			// Обновляем только изменяемые поля родителя
			result := tx.Model(&pgWorkout{}).
				Where("id = ?", w.ID).
				Updates(map[string]interface{}{
					"name":       model.Name,
					"date_time":  model.DateTime,
					"status":     model.Status,
					"comment":    model.Comment,
					"updated_at": time.Now().UTC(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return repo.ErrNotFound
			}

			// Полная замена набора планов: сначала удаляем старые
			if err := tx.Where("workout_id = ?", w.ID).Delete(&pgExercisePlan{}).Error; err != nil {
				return err
			}
		}

		if len(w.Plans) == 0 {
			return nil
		}

		// Вставляем планы одним запросом: порядок строк (и их идентификаторов)
		// совпадает с порядком слайса
		rows := make([]pgExercisePlan, 0, len(w.Plans))
		for i := range w.Plans {
			p := &w.Plans[i]
			rows = append(rows, pgExercisePlan{
				WorkoutID:  w.ID,
				ExerciseID: p.Exercise.ID,
				Reps:       p.Reps,
				Sets:       p.Sets,
				Weight:     p.Weight,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return err
		}

		// Возвращаем в домен присвоенные идентификаторы
		for i := range rows {
			w.Plans[i].ID = rows[i].ID
			w.Plans[i].WorkoutID = w.ID
		}

		return nil
	})
}

// FindByID возвращает агрегат по идентификатору с планами и упражнениями.
func (r *WorkoutRepository) FindByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var model pgWorkout
	err := r.db.WithContext(ctx).
		Preload("Plans", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercise_plans.id ASC")
		}).
		Preload("Plans.Exercise").
		Where("id = ?", id).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

// DeleteAggregate атомарно удаляет тренировку вместе со всеми планами.
// Планы удаляются явно в той же транзакции, не полагаясь на каскад БД.
func (r *WorkoutRepository) DeleteAggregate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", id).Delete(&pgExercisePlan{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&pgWorkout{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

// Reschedule обновляет только дату и время тренировки.
// Набор планов не затрагивается, их идентификаторы остаются стабильными.
func (r *WorkoutRepository) Reschedule(ctx context.Context, id int64, dateTime time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&pgWorkout{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"date_time":  dateTime,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// listByCondition возвращает агрегаты пользователя по условию в заданном порядке.
func (r *WorkoutRepository) listByCondition(ctx context.Context, order string, query string, args ...interface{}) ([]*domain.Workout, error) {
	var models []pgWorkout
	err := r.db.WithContext(ctx).
		Preload("Plans", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercise_plans.id ASC")
		}).
		Preload("Plans.Exercise").
		Where(query, args...).
		Order(order).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	workouts := make([]*domain.Workout, 0, len(models))
	for i := range models {
		w, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// ListByUser возвращает тренировки пользователя в порядке создания.
func (r *WorkoutRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	return r.listByCondition(ctx, "id ASC", "user_id = ?", userID.String())
}

// ListByUserAndStatus возвращает тренировки пользователя с данным статусом,
// отсортированные по дате проведения по убыванию.
func (r *WorkoutRepository) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status domain.Status) ([]*domain.Workout, error) {
	return r.listByCondition(ctx, "date_time DESC", "user_id = ? AND status = ?", userID.String(), string(status))
}
