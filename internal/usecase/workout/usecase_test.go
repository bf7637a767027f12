package workout_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	exdomain "workout-tracker/internal/domain/exercise"
	userdomain "workout-tracker/internal/domain/user"
	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
	workoutuc "workout-tracker/internal/usecase/workout"
)

// ==== Fakes for repositories ====

type fakeCatalog struct {
	exercises map[int64]*exdomain.Exercise
}

func (f *fakeCatalog) GetByID(_ context.Context, id int64) (*exdomain.Exercise, error) {
	ex, ok := f.exercises[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return ex, nil
}

type fakeWorkoutRepo struct {
	workouts   map[int64]*domain.Workout
	nextID     int64
	nextPlanID int64
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: map[int64]*domain.Workout{}}
}

func copyWorkout(w *domain.Workout) *domain.Workout {
	cp := *w
	cp.Plans = make([]domain.ExercisePlan, len(w.Plans))
	copy(cp.Plans, w.Plans)
	return &cp
}

func (r *fakeWorkoutRepo) SaveAggregate(_ context.Context, w *domain.Workout) error {
	if w.ID == 0 {
		r.nextID++
		w.ID = r.nextID
	} else if _, ok := r.workouts[w.ID]; !ok {
		return repo.ErrNotFound
	}
	for i := range w.Plans {
		r.nextPlanID++
		w.Plans[i].ID = r.nextPlanID
		w.Plans[i].WorkoutID = w.ID
	}
	r.workouts[w.ID] = copyWorkout(w)
	return nil
}

func (r *fakeWorkoutRepo) FindByID(_ context.Context, id int64) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return copyWorkout(w), nil
}

func (r *fakeWorkoutRepo) DeleteAggregate(_ context.Context, id int64) error {
	if _, ok := r.workouts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r *fakeWorkoutRepo) Reschedule(_ context.Context, id int64, dateTime time.Time) error {
	w, ok := r.workouts[id]
	if !ok {
		return repo.ErrNotFound
	}
	w.DateTime = dateTime
	return nil
}

func (r *fakeWorkoutRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	var result []*domain.Workout
	for _, w := range r.workouts {
		if w.UserID == userID {
			result = append(result, copyWorkout(w))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeWorkoutRepo) ListByUserAndStatus(_ context.Context, userID uuid.UUID, status domain.Status) ([]*domain.Workout, error) {
	var result []*domain.Workout
	for _, w := range r.workouts {
		if w.UserID == userID && w.Status == status {
			result = append(result, copyWorkout(w))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateTime.After(result[j].DateTime) })
	return result, nil
}

var _ repo.WorkoutRepository = (*fakeWorkoutRepo)(nil)

// ==== Test fixtures ====

func intPtr(v int) *int { return &v }

func testCatalog() *fakeCatalog {
	return &fakeCatalog{exercises: map[int64]*exdomain.Exercise{
		1: {ID: 1, Name: "Running", Description: "Running at a steady pace", Category: exdomain.CategoryCardio},
		2: {ID: 2, Name: "Bench Press", Category: exdomain.CategoryStrength},
		3: {ID: 3, Name: "Squat", Category: exdomain.CategoryStrength},
	}}
}

func testUser(username string) *userdomain.User {
	return &userdomain.User{
		ID:       uuid.New(),
		Username: username,
		Role:     userdomain.RoleUser,
	}
}

func createWorkout(t *testing.T, svc workoutuc.Service, caller *userdomain.User, name string, exercises []workoutuc.PlanInput) *domain.Workout {
	t.Helper()
	w, err := svc.Create(context.Background(), caller, workoutuc.CreateInput{
		Name:      name,
		DateTime:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:    domain.StatusPending,
		Comment:   "no comment",
		Exercises: exercises,
	})
	require.NoError(t, err)
	return w
}

// ==== Create ====

func TestCreate_BuildsAggregateForCaller(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	w, err := svc.Create(context.Background(), alice, workoutuc.CreateInput{
		Name:     "Full Body Workout",
		DateTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:   domain.StatusPending,
		Comment:  "no comment",
		Exercises: []workoutuc.PlanInput{
			{ExerciseID: 1, Reps: intPtr(12), Sets: intPtr(3), Weight: intPtr(135)},
		},
	})
	require.NoError(t, err)

	require.NotZero(t, w.ID)
	require.Equal(t, alice.ID, w.UserID)
	require.Len(t, w.Plans, 1)

	plan := w.Plans[0]
	require.Equal(t, int64(1), plan.Exercise.ID)
	require.Equal(t, "Running", plan.Exercise.Name)
	require.Equal(t, 12, *plan.Reps)
	require.Equal(t, 3, *plan.Sets)
	require.Equal(t, 135, *plan.Weight)
	require.Equal(t, w.ID, plan.WorkoutID)
}

func TestCreate_UnknownExercise_NothingPersisted(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	_, err := svc.Create(context.Background(), alice, workoutuc.CreateInput{
		Name:     "Leg Day",
		DateTime: time.Now().UTC(),
		Status:   domain.StatusPending,
		Exercises: []workoutuc.PlanInput{
			{ExerciseID: 1, Reps: intPtr(10)},
			{ExerciseID: 999},
		},
	})

	var notFound *workoutuc.ExerciseNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, int64(999), notFound.ID)
	require.Empty(t, store.workouts)
}

func TestCreate_NilCaller_Rejected(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())

	_, err := svc.Create(context.Background(), nil, workoutuc.CreateInput{
		Name:     "Anonymous Workout",
		DateTime: time.Now().UTC(),
		Status:   domain.StatusPending,
	})
	require.ErrorIs(t, err, workoutuc.ErrUnauthenticated)
	require.Empty(t, store.workouts)
}

func TestCreate_PlanOrderPreserved(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	w := createWorkout(t, svc, alice, "Push Day", []workoutuc.PlanInput{
		{ExerciseID: 3},
		{ExerciseID: 1},
		{ExerciseID: 2},
	})

	require.Len(t, w.Plans, 3)
	require.Equal(t, int64(3), w.Plans[0].Exercise.ID)
	require.Equal(t, int64(1), w.Plans[1].Exercise.ID)
	require.Equal(t, int64(2), w.Plans[2].Exercise.ID)
}

// ==== Update ====

func TestUpdate_WholesaleReplacesPlans(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	w := createWorkout(t, svc, alice, "Full Body Workout", []workoutuc.PlanInput{
		{ExerciseID: 1, Reps: intPtr(12)},
		{ExerciseID: 2, Sets: intPtr(5)},
	})

	updated, err := svc.Update(context.Background(), alice, workoutuc.UpdateInput{
		ID:       w.ID,
		Name:     "Leg Day",
		DateTime: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		Status:   domain.StatusActive,
		Comment:  "heavy",
		Exercises: []workoutuc.PlanInput{
			{ExerciseID: 3, Reps: intPtr(8), Sets: intPtr(4)},
		},
	})
	require.NoError(t, err)

	// Набор планов заменён целиком, а не объединён со старым
	require.Len(t, updated.Plans, 1)
	require.Equal(t, int64(3), updated.Plans[0].Exercise.ID)
	require.Equal(t, "Leg Day", updated.Name)
	require.Equal(t, domain.StatusActive, updated.Status)
	require.Equal(t, "heavy", updated.Comment)

	stored, err := store.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.Len(t, stored.Plans, 1)
	require.Equal(t, int64(3), stored.Plans[0].Exercise.ID)
}

func TestUpdate_ForeignOwner_Unchanged(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	bob := testUser("bob")
	alice := testUser("alice")

	w := createWorkout(t, svc, bob, "Bob's Workout", []workoutuc.PlanInput{{ExerciseID: 1}})

	_, err := svc.Update(context.Background(), alice, workoutuc.UpdateInput{
		ID:       w.ID,
		Name:     "Hijacked",
		DateTime: time.Now().UTC(),
		Status:   domain.StatusCancelled,
	})

	var unauthorized *workoutuc.UnauthorizedAccessError
	require.ErrorAs(t, err, &unauthorized)
	require.Equal(t, w.ID, unauthorized.ID)

	stored, err := store.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.Equal(t, "Bob's Workout", stored.Name)
	require.Equal(t, domain.StatusPending, stored.Status)
	require.Len(t, stored.Plans, 1)
}

func TestUpdate_UnknownExercise_KeepsOldAggregate(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	w := createWorkout(t, svc, alice, "Full Body Workout", []workoutuc.PlanInput{{ExerciseID: 1}})

	_, err := svc.Update(context.Background(), alice, workoutuc.UpdateInput{
		ID:       w.ID,
		Name:     "Broken Update",
		DateTime: time.Now().UTC(),
		Status:   domain.StatusActive,
		Exercises: []workoutuc.PlanInput{
			{ExerciseID: 999},
		},
	})

	var notFound *workoutuc.ExerciseNotFoundError
	require.ErrorAs(t, err, &notFound)

	stored, err := store.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.Equal(t, "Full Body Workout", stored.Name)
	require.Len(t, stored.Plans, 1)
	require.Equal(t, int64(1), stored.Plans[0].Exercise.ID)
}

func TestUpdate_NotFound(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	_, err := svc.Update(context.Background(), alice, workoutuc.UpdateInput{
		ID:       42,
		Name:     "Ghost",
		DateTime: time.Now().UTC(),
		Status:   domain.StatusPending,
	})

	var notFound *workoutuc.WorkoutNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, int64(42), notFound.ID)
}

// ==== Delete ====

func TestDelete_ReturnsSnapshotAndRemoves(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	w := createWorkout(t, svc, alice, "Full Body Workout", []workoutuc.PlanInput{{ExerciseID: 1}})

	snapshot, err := svc.Delete(context.Background(), alice, w.ID)
	require.NoError(t, err)
	require.Equal(t, w.ID, snapshot.ID)
	require.Equal(t, "Full Body Workout", snapshot.Name)
	require.Len(t, snapshot.Plans, 1)

	_, err = store.FindByID(context.Background(), w.ID)
	require.Error(t, err)
	require.Empty(t, store.workouts)
}

func TestDelete_NotFound(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	_, err := svc.Delete(context.Background(), alice, 123)

	var notFound *workoutuc.WorkoutNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, int64(123), notFound.ID)
}

func TestDelete_ForeignOwner_Unchanged(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	bob := testUser("bob")
	alice := testUser("alice")

	w := createWorkout(t, svc, bob, "Bob's Workout", nil)

	_, err := svc.Delete(context.Background(), alice, w.ID)

	var unauthorized *workoutuc.UnauthorizedAccessError
	require.ErrorAs(t, err, &unauthorized)

	_, err = store.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
}

// ==== Schedule ====

func TestSchedule_ChangesOnlyDateTime(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	w := createWorkout(t, svc, alice, "Full Body Workout", []workoutuc.PlanInput{{ExerciseID: 1, Reps: intPtr(12)}})
	planID := w.Plans[0].ID

	newDate := time.Date(2025, 8, 15, 18, 30, 0, 0, time.UTC)
	rescheduled, err := svc.Schedule(context.Background(), alice, w.ID, newDate)
	require.NoError(t, err)
	require.Equal(t, newDate, rescheduled.DateTime)

	stored, err := store.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.Equal(t, newDate, stored.DateTime)
	require.Equal(t, "Full Body Workout", stored.Name)
	require.Equal(t, domain.StatusPending, stored.Status)
	require.Equal(t, "no comment", stored.Comment)
	require.Len(t, stored.Plans, 1)
	require.Equal(t, planID, stored.Plans[0].ID)
}

func TestSchedule_ForeignOwner(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	bob := testUser("bob")
	alice := testUser("alice")

	w := createWorkout(t, svc, bob, "Bob's Workout", nil)

	_, err := svc.Schedule(context.Background(), alice, w.ID, time.Now().UTC())

	var unauthorized *workoutuc.UnauthorizedAccessError
	require.ErrorAs(t, err, &unauthorized)
	require.Equal(t, w.ID, unauthorized.ID)
}

// ==== List ====

func TestList_ScopedToCaller(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")
	bob := testUser("bob")

	first := createWorkout(t, svc, alice, "Morning Run", []workoutuc.PlanInput{{ExerciseID: 1}})
	second := createWorkout(t, svc, alice, "Evening Lift", []workoutuc.PlanInput{{ExerciseID: 2}})
	createWorkout(t, svc, bob, "Bob's Workout", nil)

	workouts, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	require.Equal(t, first.ID, workouts[0].ID)
	require.Equal(t, second.ID, workouts[1].ID)
	for _, w := range workouts {
		require.Equal(t, alice.ID, w.UserID)
	}
}

func TestListByStatus_FiltersAndOrdersByDateDesc(t *testing.T) {
	store := newFakeWorkoutRepo()
	svc := workoutuc.NewService(store, testCatalog())
	alice := testUser("alice")

	early, err := svc.Create(context.Background(), alice, workoutuc.CreateInput{
		Name:     "Early",
		DateTime: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Status:   domain.StatusCompleted,
	})
	require.NoError(t, err)

	late, err := svc.Create(context.Background(), alice, workoutuc.CreateInput{
		Name:     "Late",
		DateTime: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		Status:   domain.StatusCompleted,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), alice, workoutuc.CreateInput{
		Name:     "Pending",
		DateTime: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
		Status:   domain.StatusPending,
	})
	require.NoError(t, err)

	workouts, err := svc.ListByStatus(context.Background(), alice, domain.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	require.Equal(t, late.ID, workouts[0].ID)
	require.Equal(t, early.ID, workouts[1].ID)
}
