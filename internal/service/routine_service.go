package service

import (
	"context"
	"errors"

	"fittrack/webfitness/internal/domain"
	"fittrack/webfitness/internal/repository"
)

// --- Error Definitions ---
var (
	ErrRoutineNotFound = errors.New("routine not found")
)

// RoutineService manages a user's workout templates.
type RoutineService interface {
	GetRoutine(ctx context.Context, id int) (*domain.Routine, error)
	GetRoutinesForUser(ctx context.Context, userID int) ([]domain.Routine, error)
	CreateRoutine(ctx context.Context, userID int, name string, exercises []domain.RoutineExercise, duration int) (*domain.Routine, error)
	UpdateRoutine(ctx context.Context, id int, patch domain.RoutinePatch) (*domain.Routine, error)
	DeleteRoutine(ctx context.Context, id int) error
}

// routineService implements the RoutineService interface.
type routineService struct {
	routineRepo repository.RoutineRepository
}

// NewRoutineService creates a new instance of routineService.
func NewRoutineService(routineRepo repository.RoutineRepository) RoutineService {
	return &routineService{routineRepo: routineRepo}
}

func (s *routineService) GetRoutine(ctx context.Context, id int) (*domain.Routine, error) {
	routine, err := s.routineRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return routine, nil
}

func (s *routineService) GetRoutinesForUser(ctx context.Context, userID int) ([]domain.Routine, error) {
	return s.routineRepo.GetByUserID(ctx, userID)
}

// CreateRoutine stores a new routine for the user. Referenced exercise ids
// are taken on faith; the library and the routine editor live on the client.
func (s *routineService) CreateRoutine(ctx context.Context, userID int, name string, exercises []domain.RoutineExercise, duration int) (*domain.Routine, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	routine := &domain.Routine{
		UserID:    userID,
		Name:      name,
		Exercises: exercises,
		Duration:  duration,
	}
	if _, err := s.routineRepo.Create(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *routineService) UpdateRoutine(ctx context.Context, id int, patch domain.RoutinePatch) (*domain.Routine, error) {
	routine, err := s.routineRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return routine, nil
}

// DeleteRoutine removes the routine. Workouts started from it keep their
// copied exercise list and routine id.
func (s *routineService) DeleteRoutine(ctx context.Context, id int) error {
	err := s.routineRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoutineNotFound
		}
		return err
	}
	return nil
}
