package memory

import (
	"context"
	"sort"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// exerciseRepository implements repository.ExerciseRepository over the shared
// store. The catalog is append-only: no update or delete.
type exerciseRepository struct {
	store *Store
}

func (r *exerciseRepository) Create(_ context.Context, exercise *domain.Exercise) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.exerciseSeq++
	exercise.ID = r.store.exerciseSeq
	r.store.exercises[exercise.ID] = cloneExercise(exercise)
	return exercise.ID, nil
}

func (r *exerciseRepository) GetByID(_ context.Context, id int) (*domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	exercise, ok := r.store.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneExercise(exercise), nil
}

func (r *exerciseRepository) GetAll(_ context.Context) ([]domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.collect(func(*domain.Exercise) bool { return true }), nil
}

func (r *exerciseRepository) GetByCategory(_ context.Context, category string) ([]domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.collect(func(e *domain.Exercise) bool { return e.Category == category }), nil
}

// GetByAgeRange keeps "All Ages" entries and entries whose encoded range
// overlaps [minAge, maxAge]. Entries with an unparsable range are excluded.
func (r *exerciseRepository) GetByAgeRange(_ context.Context, minAge, maxAge int) ([]domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.collect(func(e *domain.Exercise) bool { return e.MatchesAgeRange(minAge, maxAge) }), nil
}

// collect filters the table into a slice sorted by id, so repeated calls see
// a stable order. Callers must hold the lock.
func (r *exerciseRepository) collect(keep func(*domain.Exercise) bool) []domain.Exercise {
	exercises := make([]domain.Exercise, 0, len(r.store.exercises))
	for _, e := range r.store.exercises {
		if keep(e) {
			exercises = append(exercises, *cloneExercise(e))
		}
	}
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].ID < exercises[j].ID })
	return exercises
}
