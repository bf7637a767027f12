package exercise

import domain "workout-tracker/internal/domain/exercise"

// ExerciseResponse описывает упражнение справочника в ответах API.
type ExerciseResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	MuscleGroup *string `json:"muscle_group,omitempty"`
}

// ToExerciseResponse маппит доменную модель упражнения в DTO.
// Используется также в ответах тренировок, где план несёт полное упражнение.
func ToExerciseResponse(e *domain.Exercise) ExerciseResponse {
	var group *string
	if e.MuscleGroup != nil {
		g := string(*e.MuscleGroup)
		group = &g
	}
	return ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    string(e.Category),
		MuscleGroup: group,
	}
}
