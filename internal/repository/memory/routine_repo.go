package memory

import (
	"context"
	"sort"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// routineRepository implements repository.RoutineRepository over the shared
// store.
type routineRepository struct {
	store *Store
}

func (r *routineRepository) Create(_ context.Context, routine *domain.Routine) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.routineSeq++
	routine.ID = r.store.routineSeq
	routine.CreatedAt = r.store.now().UTC()
	r.store.routines[routine.ID] = cloneRoutine(routine)
	return routine.ID, nil
}

func (r *routineRepository) GetByID(_ context.Context, id int) (*domain.Routine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	routine, ok := r.store.routines[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneRoutine(routine), nil
}

func (r *routineRepository) GetByUserID(_ context.Context, userID int) ([]domain.Routine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	routines := make([]domain.Routine, 0)
	for _, routine := range r.store.routines {
		if routine.UserID == userID {
			routines = append(routines, *cloneRoutine(routine))
		}
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].ID < routines[j].ID })
	return routines, nil
}

func (r *routineRepository) Update(_ context.Context, id int, patch domain.RoutinePatch) (*domain.Routine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	routine, ok := r.store.routines[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(routine)
	return cloneRoutine(routine), nil
}

// Delete removes the routine. Workouts referencing it are left alone; a
// completed workout for a deleted routine simply skips the LastCompleted
// bump.
func (r *routineRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.routines[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.routines, id)
	return nil
}
