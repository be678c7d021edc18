package memory

import (
	"sync"
	"time"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// Store holds all entity state in memory for the process lifetime: one
// id-keyed table per entity plus a per-table sequence counter. Ids start at 1
// and are never reused, even after a delete.
//
// A single RWMutex guards every table, so callers always read their own
// writes. Complete (workout + routine) runs under one lock acquisition, so
// the cascade is atomic from the caller's perspective.
type Store struct {
	mu sync.RWMutex

	users     map[int]*domain.User
	exercises map[int]*domain.Exercise
	routines  map[int]*domain.Routine
	workouts  map[int]*domain.Workout

	userSeq     int
	exerciseSeq int
	routineSeq  int
	workoutSeq  int

	now func() time.Time
}

// NewStore creates an empty store. Seeding the exercise catalog is the
// caller's job (see the seed package), so tests can start from a clean slate.
func NewStore() *Store {
	return &Store{
		users:     make(map[int]*domain.User),
		exercises: make(map[int]*domain.Exercise),
		routines:  make(map[int]*domain.Routine),
		workouts:  make(map[int]*domain.Workout),
		now:       time.Now,
	}
}

// Users returns the user table view of the store.
func (s *Store) Users() repository.UserRepository { return &userRepository{s} }

// Exercises returns the exercise catalog view of the store.
func (s *Store) Exercises() repository.ExerciseRepository { return &exerciseRepository{s} }

// Routines returns the routine table view of the store.
func (s *Store) Routines() repository.RoutineRepository { return &routineRepository{s} }

// Workouts returns the workout table view of the store.
func (s *Store) Workouts() repository.WorkoutRepository { return &workoutRepository{s} }

// --- copy helpers ---
// Getters hand out copies so callers can't mutate table state behind the lock.

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func cloneExercise(e *domain.Exercise) *domain.Exercise {
	c := *e
	c.Instructions = append([]domain.Instruction(nil), e.Instructions...)
	c.Modifications = append([]domain.Modification(nil), e.Modifications...)
	return &c
}

func cloneRoutine(r *domain.Routine) *domain.Routine {
	c := *r
	c.Exercises = append([]domain.RoutineExercise(nil), r.Exercises...)
	if r.LastCompleted != nil {
		t := *r.LastCompleted
		c.LastCompleted = &t
	}
	return &c
}

func cloneWorkout(w *domain.Workout) *domain.Workout {
	c := *w
	c.CompletedExercises = append([]domain.CompletedExercise(nil), w.CompletedExercises...)
	return &c
}
