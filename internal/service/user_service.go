package service

import (
	"context"
	"errors"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

// UserService handles onboarding and profile updates.
type UserService interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, username, password string, age int, name string) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser stores a new user. The password is kept as given; there is no
// account system layered on top of this profile.
func (s *userService) CreateUser(ctx context.Context, username, password string, age int, name string) (*domain.User, error) {
	if username == "" || name == "" {
		return nil, ErrValidationFailed
	}

	user := &domain.User{
		Username: username,
		Password: password,
		Age:      age,
		Name:     name,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
