package service

import (
	"context"
	"errors"
	"time"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrNoActiveWorkout = errors.New("no active workout")
)

// WorkoutService runs workout sessions. The store knows nothing about when a
// workout counts as finished; that decision (and the resulting completion
// cascade) lives here.
type WorkoutService interface {
	StartWorkout(ctx context.Context, userID, routineID int) (*domain.Workout, error)
	GetWorkout(ctx context.Context, id int) (*domain.Workout, error)
	GetWorkoutsForUser(ctx context.Context, userID int) ([]domain.Workout, error)
	GetActiveWorkout(ctx context.Context, userID int) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, id int, patch domain.WorkoutPatch) (*domain.Workout, error)
	UpdateWorkoutExercise(ctx context.Context, workoutID, exerciseID int, patch domain.CompletedExercisePatch) (*domain.Workout, error)
	CompleteWorkout(ctx context.Context, id int) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	routineRepo repository.RoutineRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, routineRepo repository.RoutineRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		routineRepo: routineRepo,
	}
}

// StartWorkout creates a workout from a routine: the routine's exercise list
// is copied entry by entry with Completed=false, and the estimated duration
// is carried over. Callers wanting "one active workout per user" must check
// GetActiveWorkout first; the store does not enforce the convention.
func (s *workoutService) StartWorkout(ctx context.Context, userID, routineID int) (*domain.Workout, error) {
	routine, err := s.routineRepo.GetByID(ctx, routineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	completedExercises := make([]domain.CompletedExercise, len(routine.Exercises))
	for i, ex := range routine.Exercises {
		completedExercises[i] = domain.CompletedExercise{
			ExerciseID: ex.ExerciseID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Duration:   ex.Duration,
			Completed:  false,
		}
	}

	workout := &domain.Workout{
		UserID:             userID,
		RoutineID:          routineID,
		CompletedExercises: completedExercises,
		Duration:           routine.Duration,
		Completed:          false,
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, id int) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) GetWorkoutsForUser(ctx context.Context, userID int) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

func (s *workoutService) GetActiveWorkout(ctx context.Context, userID int) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveWorkout
		}
		return nil, err
	}
	return workout, nil
}

// UpdateWorkout applies the patch. When the patch flips Completed to true the
// routine's LastCompleted is bumped as well; a routine deleted in the
// meantime is skipped silently.
func (s *workoutService) UpdateWorkout(ctx context.Context, id int, patch domain.WorkoutPatch) (*domain.Workout, error) {
	workout, err := s.workoutRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if patch.Completed != nil && *patch.Completed {
		now := time.Now().UTC()
		_, err := s.routineRepo.Update(ctx, workout.RoutineID, domain.RoutinePatch{LastCompleted: &now})
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return workout, nil
}

// UpdateWorkoutExercise patches a single exercise entry, then checks whether
// the workout is now done. When every entry is complete the whole workout is
// completed, which also stamps the routine's LastCompleted. An exercise id
// with no matching entry leaves the workout unchanged and is not an error.
func (s *workoutService) UpdateWorkoutExercise(ctx context.Context, workoutID, exerciseID int, patch domain.CompletedExercisePatch) (*domain.Workout, error) {
	workout, err := s.workoutRepo.UpdateExercise(ctx, workoutID, exerciseID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if !workout.Completed && workout.AllCompleted() {
		return s.CompleteWorkout(ctx, workoutID)
	}
	return workout, nil
}

func (s *workoutService) CompleteWorkout(ctx context.Context, id int) (*domain.Workout, error) {
	workout, err := s.workoutRepo.Complete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}
