package service

import (
	"context"
	"errors"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ExerciseService exposes the exercise library.
type ExerciseService interface {
	GetExercise(ctx context.Context, id int) (*domain.Exercise, error)
	GetAllExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExercisesByCategory(ctx context.Context, category string) ([]domain.Exercise, error)
	GetExercisesByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) GetExercise(ctx context.Context, id int) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetAllExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

func (s *exerciseService) GetExercisesByCategory(ctx context.Context, category string) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetByCategory(ctx, category)
}

func (s *exerciseService) GetExercisesByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetByAgeRange(ctx, minAge, maxAge)
}

func (s *exerciseService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" {
		return nil, ErrValidationFailed
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}
