package workout_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/domain/workout"
)

func TestStatus_IsValid(t *testing.T) {
	valid := []workout.Status{
		workout.StatusPending,
		workout.StatusActive,
		workout.StatusCompleted,
		workout.StatusCancelled,
	}
	for _, s := range valid {
		require.True(t, s.IsValid(), "status %q", s)
	}

	require.False(t, workout.Status("done").IsValid())
	require.False(t, workout.Status("").IsValid())
}

func TestNewWorkout(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	w := workout.NewWorkout("Full Body Workout", date, workout.StatusPending, "no comment", userID)

	require.Zero(t, w.ID)
	require.Equal(t, "Full Body Workout", w.Name)
	require.Equal(t, date, w.DateTime)
	require.Equal(t, workout.StatusPending, w.Status)
	require.Equal(t, userID, w.UserID)
	require.Empty(t, w.Plans)
	require.False(t, w.CreatedAt.IsZero())
	require.Equal(t, w.CreatedAt, w.UpdatedAt)
}

func TestIsOwnedBy(t *testing.T) {
	owner := uuid.New()
	w := workout.NewWorkout("Full Body Workout", time.Now().UTC(), workout.StatusPending, "", owner)

	require.True(t, w.IsOwnedBy(owner))
	require.False(t, w.IsOwnedBy(uuid.New()))
}
