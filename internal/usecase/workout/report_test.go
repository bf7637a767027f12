package workout_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	exdomain "workout-tracker/internal/domain/exercise"
	domain "workout-tracker/internal/domain/workout"
	workoutuc "workout-tracker/internal/usecase/workout"
)

func TestFormatReport_NoWorkouts(t *testing.T) {
	alice := testUser("alice")

	report := workoutuc.FormatReport(alice, nil)

	require.Equal(t, "Workout Report: alice\n\nNo workouts found.", report)
	require.NotContains(t, report, "Total Workouts")
}

func TestFormatReport_TwoWorkouts(t *testing.T) {
	alice := testUser("alice")

	workouts := []*domain.Workout{
		{
			ID:       1,
			Name:     "Morning Run",
			DateTime: time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC),
			Status:   domain.StatusCompleted,
			Comment:  "easy pace",
			UserID:   alice.ID,
			Plans: []domain.ExercisePlan{
				{
					ID:       1,
					Exercise: exdomain.Exercise{ID: 1, Name: "Running", Category: exdomain.CategoryCardio},
					Reps:     nil,
					Sets:     nil,
					Weight:   nil,
				},
			},
		},
		{
			ID:       2,
			Name:     "Push Day",
			DateTime: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
			Status:   domain.StatusPending,
			Comment:  "",
			UserID:   alice.ID,
			Plans: []domain.ExercisePlan{
				{
					ID:       2,
					Exercise: exdomain.Exercise{ID: 2, Name: "Bench Press", Category: exdomain.CategoryStrength},
					Reps:     intPtr(8),
					Sets:     intPtr(4),
					Weight:   intPtr(185),
				},
			},
		},
	}

	report := workoutuc.FormatReport(alice, workouts)

	require.Contains(t, report, "Workout Report: alice\n")
	require.Contains(t, report, "Total Workouts: 2\n")

	require.Contains(t, report, "Workout: Morning Run\n")
	require.Contains(t, report, "Date & Time: 2025-06-01T07:30:00\n")
	require.Contains(t, report, "Status: completed\n")
	require.Contains(t, report, "Comment: easy pace\n")
	// Незаданные числовые поля печатаются как "-"
	require.Contains(t, report, "\tName: Running,Reps: -,Sets: -,Weights: -\n")

	require.Contains(t, report, "Workout: Push Day\n")
	require.Contains(t, report, "\tName: Bench Press,Reps: 8,Sets: 4,Weights: 185\n")

	// Тренировки идут в порядке входного списка
	require.Less(t,
		strings.Index(report, "Morning Run"),
		strings.Index(report, "Push Day"),
	)
}

func TestReport_ThroughService(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")
	bob := testUser("bob")

	createWorkout(t, svc, alice, "Full Body Workout", []workoutuc.PlanInput{
		{ExerciseID: 1, Reps: intPtr(12), Sets: intPtr(3), Weight: intPtr(135)},
	})
	createWorkout(t, svc, bob, "Bob's Workout", nil)

	report, err := svc.Report(context.Background(), alice)
	require.NoError(t, err)

	require.Contains(t, report, "Workout Report: alice")
	require.Contains(t, report, "Total Workouts: 1")
	require.Contains(t, report, "Workout: Full Body Workout")
	require.NotContains(t, report, "Bob's Workout")
}

func TestReport_NilCaller(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())

	_, err := svc.Report(context.Background(), nil)
	require.ErrorIs(t, err, workoutuc.ErrUnauthenticated)
}
