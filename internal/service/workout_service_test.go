package service

import (
	"context"
	"testing"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newServices(t *testing.T) (RoutineService, WorkoutService) {
	t.Helper()
	store := memory.NewStore()
	routines := NewRoutineService(store.Routines())
	workouts := NewWorkoutService(store.Workouts(), store.Routines())
	return routines, workouts
}

func TestStartWorkoutCopiesRoutine(t *testing.T) {
	ctx := context.Background()
	routines, workouts := newServices(t)

	routine, err := routines.CreateRoutine(ctx, 1, "Full Body", []domain.RoutineExercise{
		{ExerciseID: 1, Sets: 3, Reps: ptr(10)},
		{ExerciseID: 2, Sets: 1, Duration: ptr(60)},
	}, 600)
	require.NoError(t, err)

	workout, err := workouts.StartWorkout(ctx, 1, routine.ID)
	require.NoError(t, err)
	require.Equal(t, 1, workout.UserID)
	require.Equal(t, routine.ID, workout.RoutineID)
	require.Equal(t, 600, workout.Duration)
	require.False(t, workout.Completed)
	require.Len(t, workout.CompletedExercises, 2)
	for i, ex := range workout.CompletedExercises {
		require.Equal(t, routine.Exercises[i].ExerciseID, ex.ExerciseID)
		require.Equal(t, routine.Exercises[i].Sets, ex.Sets)
		require.False(t, ex.Completed)
	}
}

func TestStartWorkoutRoutineMissing(t *testing.T) {
	ctx := context.Background()
	_, workouts := newServices(t)

	_, err := workouts.StartWorkout(ctx, 1, 42)
	require.ErrorIs(t, err, ErrRoutineNotFound)
}

// Completing the only exercise must complete the whole workout and stamp the
// routine, without an explicit CompleteWorkout call.
func TestLastExerciseCompletionCascades(t *testing.T) {
	ctx := context.Background()
	routines, workouts := newServices(t)

	routine, err := routines.CreateRoutine(ctx, 1, "A", []domain.RoutineExercise{
		{ExerciseID: 1, Sets: 3, Reps: ptr(10)},
	}, 300)
	require.NoError(t, err)
	require.Nil(t, routine.LastCompleted)

	workout, err := workouts.StartWorkout(ctx, 1, routine.ID)
	require.NoError(t, err)

	done, err := workouts.UpdateWorkoutExercise(ctx, workout.ID, 1, domain.CompletedExercisePatch{Completed: ptr(true)})
	require.NoError(t, err)
	require.True(t, done.Completed)
	require.True(t, done.CompletedExercises[0].Completed)

	updated, err := routines.GetRoutine(ctx, routine.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastCompleted)
	// The completion stamp, not the creation stamp, is what the routine gets.
	require.Equal(t, done.CompletedAt, *updated.LastCompleted)
}

func TestPartialProgressDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	routines, workouts := newServices(t)

	routine, err := routines.CreateRoutine(ctx, 1, "Two Moves", []domain.RoutineExercise{
		{ExerciseID: 1, Sets: 3, Reps: ptr(10)},
		{ExerciseID: 2, Sets: 1, Duration: ptr(60)},
	}, 300)
	require.NoError(t, err)

	workout, err := workouts.StartWorkout(ctx, 1, routine.ID)
	require.NoError(t, err)

	progressed, err := workouts.UpdateWorkoutExercise(ctx, workout.ID, 1, domain.CompletedExercisePatch{Completed: ptr(true)})
	require.NoError(t, err)
	require.False(t, progressed.Completed)

	updated, err := routines.GetRoutine(ctx, routine.ID)
	require.NoError(t, err)
	require.Nil(t, updated.LastCompleted)
}

// An exercise id that is not part of the workout is accepted and changes
// nothing, and in particular must not trigger the completion cascade.
func TestUnknownExerciseDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	routines, workouts := newServices(t)

	routine, err := routines.CreateRoutine(ctx, 1, "A", []domain.RoutineExercise{
		{ExerciseID: 1, Sets: 3, Reps: ptr(10)},
	}, 300)
	require.NoError(t, err)

	workout, err := workouts.StartWorkout(ctx, 1, routine.ID)
	require.NoError(t, err)

	unchanged, err := workouts.UpdateWorkoutExercise(ctx, workout.ID, 99, domain.CompletedExercisePatch{Completed: ptr(true)})
	require.NoError(t, err)
	require.False(t, unchanged.Completed)
	require.False(t, unchanged.CompletedExercises[0].Completed)
}

func TestUpdateWorkoutCompletedFlipBumpsRoutine(t *testing.T) {
	ctx := context.Background()
	routines, workouts := newServices(t)

	routine, err := routines.CreateRoutine(ctx, 1, "A", []domain.RoutineExercise{
		{ExerciseID: 1, Sets: 3, Reps: ptr(10)},
	}, 300)
	require.NoError(t, err)

	workout, err := workouts.StartWorkout(ctx, 1, routine.ID)
	require.NoError(t, err)

	flipped, err := workouts.UpdateWorkout(ctx, workout.ID, domain.WorkoutPatch{Completed: ptr(true)})
	require.NoError(t, err)
	require.True(t, flipped.Completed)

	updated, err := routines.GetRoutine(ctx, routine.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastCompleted)
}

func TestUpdateWorkoutCompletedFlipSurvivesDeletedRoutine(t *testing.T) {
	ctx := context.Background()
	routines, workouts := newServices(t)

	routine, err := routines.CreateRoutine(ctx, 1, "A", []domain.RoutineExercise{
		{ExerciseID: 1, Sets: 3, Reps: ptr(10)},
	}, 300)
	require.NoError(t, err)

	workout, err := workouts.StartWorkout(ctx, 1, routine.ID)
	require.NoError(t, err)

	require.NoError(t, routines.DeleteRoutine(ctx, routine.ID))

	flipped, err := workouts.UpdateWorkout(ctx, workout.ID, domain.WorkoutPatch{Completed: ptr(true)})
	require.NoError(t, err)
	require.True(t, flipped.Completed)
}

func TestGetActiveWorkoutLifecycle(t *testing.T) {
	ctx := context.Background()
	routines, workouts := newServices(t)

	_, err := workouts.GetActiveWorkout(ctx, 1)
	require.ErrorIs(t, err, ErrNoActiveWorkout)

	routine, err := routines.CreateRoutine(ctx, 1, "A", []domain.RoutineExercise{
		{ExerciseID: 1, Sets: 3, Reps: ptr(10)},
	}, 300)
	require.NoError(t, err)

	workout, err := workouts.StartWorkout(ctx, 1, routine.ID)
	require.NoError(t, err)

	active, err := workouts.GetActiveWorkout(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, workout.ID, active.ID)

	_, err = workouts.CompleteWorkout(ctx, workout.ID)
	require.NoError(t, err)

	_, err = workouts.GetActiveWorkout(ctx, 1)
	require.ErrorIs(t, err, ErrNoActiveWorkout)
}
