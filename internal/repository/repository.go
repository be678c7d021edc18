package repository

import (
	"context"

	"fittrack/webfitness/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error)
}

// ExerciseRepository defines the interface for interacting with the exercise
// catalog. Catalog entries are append-only.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Exercise, error)
	GetByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Exercise, error)
}

// RoutineRepository defines the interface for interacting with routine data.
type RoutineRepository interface {
	Create(ctx context.Context, routine *domain.Routine) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Routine, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.Routine, error)
	Update(ctx context.Context, id int, patch domain.RoutinePatch) (*domain.Routine, error)
	Delete(ctx context.Context, id int) error
}

// WorkoutRepository defines the interface for interacting with workout data.
//
// Complete is the one cross-entity operation in the system: besides marking
// the workout and all of its exercise entries finished, it bumps the parent
// routine's LastCompleted to the same timestamp. A missing routine is skipped
// silently; the workout update has already been applied by then.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Workout, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.Workout, error)
	GetActiveByUserID(ctx context.Context, userID int) (*domain.Workout, error)
	Update(ctx context.Context, id int, patch domain.WorkoutPatch) (*domain.Workout, error)
	UpdateExercise(ctx context.Context, workoutID, exerciseID int, patch domain.CompletedExercisePatch) (*domain.Workout, error)
	Complete(ctx context.Context, id int) (*domain.Workout, error)
}
