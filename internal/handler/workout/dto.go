package workout

import (
	"time"

	domain "workout-tracker/internal/domain/workout"
	exhandler "workout-tracker/internal/handler/exercise"
	workoutuc "workout-tracker/internal/usecase/workout"
)

// PlanRequest описывает один план упражнения в теле запроса.
// Числовые параметры опциональны, но если заданы — должны быть положительными.
type PlanRequest struct {
	ExerciseID int64 `json:"exercise_id" binding:"required"`
	Reps       *int  `json:"reps,omitempty" binding:"omitempty,gt=0"`
	Sets       *int  `json:"sets,omitempty" binding:"omitempty,gt=0"`
	Weight     *int  `json:"weight,omitempty" binding:"omitempty,gt=0"`
}

// WorkoutRequest описывает тело запроса создания/полного обновления тренировки.
// Поле exercises задаёт итоговый набор планов целиком: при обновлении
// прежние планы заменяются этим списком.
type WorkoutRequest struct {
	Name      string        `json:"name" binding:"required,max=255"`
	Exercises []PlanRequest `json:"exercises" binding:"omitempty,dive"`
	DateTime  time.Time     `json:"date_time" binding:"required"`
	Status    string        `json:"status" binding:"required"`
	Comment   string        `json:"comment"`
}

// ScheduleRequest описывает тело запроса переноса тренировки:
// меняется только дата и время.
type ScheduleRequest struct {
	DateTime time.Time `json:"date_time" binding:"required"`
}

// PlanResponse описывает план упражнения в ответах API.
// План несёт полное определение упражнения из справочника.
type PlanResponse struct {
	ID        int64                      `json:"id"`
	Exercise  exhandler.ExerciseResponse `json:"exercise"`
	Reps      *int                       `json:"reps,omitempty"`
	Sets      *int                       `json:"sets,omitempty"`
	Weight    *int                       `json:"weight,omitempty"`
	WorkoutID int64                      `json:"workout_id"`
}

// WorkoutResponse описывает тренировку в ответах API.
type WorkoutResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Exercises []PlanResponse `json:"exercises"`
	DateTime  time.Time      `json:"date_time"`
	Status    string         `json:"status"`
	Comment   string         `json:"comment,omitempty"`
	UserID    string         `json:"user_id"`
}

// toPlanInputs маппит запрошенные планы в usecase-модель, сохраняя порядок.
func toPlanInputs(requests []PlanRequest) []workoutuc.PlanInput {
	inputs := make([]workoutuc.PlanInput, 0, len(requests))
	for _, r := range requests {
		inputs = append(inputs, workoutuc.PlanInput{
			ExerciseID: r.ExerciseID,
			Reps:       r.Reps,
			Sets:       r.Sets,
			Weight:     r.Weight,
		})
	}
	return inputs
}

// toWorkoutResponse маппит доменный агрегат в DTO.
func toWorkoutResponse(w *domain.Workout) WorkoutResponse {
	plans := make([]PlanResponse, 0, len(w.Plans))
	for i := range w.Plans {
		p := &w.Plans[i]
		plans = append(plans, PlanResponse{
			ID:        p.ID,
			Exercise:  exhandler.ToExerciseResponse(&p.Exercise),
			Reps:      p.Reps,
			Sets:      p.Sets,
			Weight:    p.Weight,
			WorkoutID: p.WorkoutID,
		})
	}

	return WorkoutResponse{
		ID:        w.ID,
		Name:      w.Name,
		Exercises: plans,
		DateTime:  w.DateTime,
		Status:    string(w.Status),
		Comment:   w.Comment,
		UserID:    w.UserID.String(),
	}
}

// toWorkoutResponses маппит список агрегатов в DTO, сохраняя порядок.
func toWorkoutResponses(workouts []*domain.Workout) []WorkoutResponse {
	result := make([]WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		result = append(result, toWorkoutResponse(w))
	}
	return result
}
