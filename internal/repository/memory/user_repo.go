package memory

import (
	"context"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// userRepository implements repository.UserRepository over the shared store.
type userRepository struct {
	store *Store
}

func (r *userRepository) Create(_ context.Context, user *domain.User) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.userSeq++
	user.ID = r.store.userSeq
	r.store.users[user.ID] = cloneUser(user)
	return user.ID, nil
}

func (r *userRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(user), nil
}

// GetByUsername is a linear scan; usernames are assumed unique.
func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) Update(_ context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(user)
	return cloneUser(user), nil
}
