package memory

import (
	"context"
	"sort"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// workoutRepository implements repository.WorkoutRepository over the shared
// store.
type workoutRepository struct {
	store *Store
}

func (r *workoutRepository) Create(_ context.Context, workout *domain.Workout) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.workoutSeq++
	workout.ID = r.store.workoutSeq
	// Stamped at creation, re-stamped on completion.
	workout.CompletedAt = r.store.now().UTC()
	r.store.workouts[workout.ID] = cloneWorkout(workout)
	return workout.ID, nil
}

func (r *workoutRepository) GetByID(_ context.Context, id int) (*domain.Workout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	workout, ok := r.store.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneWorkout(workout), nil
}

func (r *workoutRepository) GetByUserID(_ context.Context, userID int) ([]domain.Workout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	workouts := make([]domain.Workout, 0)
	for _, workout := range r.store.workouts {
		if workout.UserID == userID {
			workouts = append(workouts, *cloneWorkout(workout))
		}
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].ID < workouts[j].ID })
	return workouts, nil
}

// GetActiveByUserID returns the user's first uncompleted workout, lowest id
// first. At most one is expected per user by convention; the store does not
// enforce that.
func (r *workoutRepository) GetActiveByUserID(_ context.Context, userID int) (*domain.Workout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var active *domain.Workout
	for _, workout := range r.store.workouts {
		if workout.UserID != userID || workout.Completed {
			continue
		}
		if active == nil || workout.ID < active.ID {
			active = workout
		}
	}
	if active == nil {
		return nil, repository.ErrNotFound
	}
	return cloneWorkout(active), nil
}

func (r *workoutRepository) Update(_ context.Context, id int, patch domain.WorkoutPatch) (*domain.Workout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	workout, ok := r.store.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(workout)
	return cloneWorkout(workout), nil
}

// UpdateExercise patches the single entry whose exercise id matches. When no
// entry matches, the workout is returned unchanged and no error is raised;
// whether the caller asked for a nonexistent entry is not the store's call.
func (r *workoutRepository) UpdateExercise(_ context.Context, workoutID, exerciseID int, patch domain.CompletedExercisePatch) (*domain.Workout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	workout, ok := r.store.workouts[workoutID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i := range workout.CompletedExercises {
		if workout.CompletedExercises[i].ExerciseID == exerciseID {
			patch.Apply(&workout.CompletedExercises[i])
		}
	}
	return cloneWorkout(workout), nil
}

// Complete marks the workout and every exercise entry finished, re-stamps
// CompletedAt, and bumps the parent routine's LastCompleted to the same
// timestamp. A routine that no longer exists is skipped silently; the workout
// side of the update stands either way.
func (r *workoutRepository) Complete(_ context.Context, id int) (*domain.Workout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	workout, ok := r.store.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	now := r.store.now().UTC()
	workout.Completed = true
	workout.CompletedAt = now
	for i := range workout.CompletedExercises {
		workout.CompletedExercises[i].Completed = true
	}

	if routine, ok := r.store.routines[workout.RoutineID]; ok {
		t := now
		routine.LastCompleted = &t
	}

	return cloneWorkout(workout), nil
}
