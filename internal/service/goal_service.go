package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"gorm.io/gorm"
)

type GoalService struct {
	goalRepo repository.GoalRepository
}

func NewGoalService(goalRepo repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

type GoalInput struct {
	Title       string
	Description string
	Status      domain.GoalStatus
}

func (s *GoalService) Create(ctx context.Context, userID uint, input GoalInput) (*domain.Goal, error) {
	status := input.Status
	if status == "" {
		status = domain.GoalStatusActive
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidGoalStatus
	}

	goal := &domain.Goal{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		UserID:      userID,
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Get(ctx context.Context, id, userID uint) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID uint, status domain.GoalStatus) ([]*domain.Goal, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidGoalStatus
	}
	return s.goalRepo.ListByUser(ctx, userID, status)
}

func (s *GoalService) Update(ctx context.Context, id, userID uint, input GoalInput) (*domain.Goal, error) {
	goal, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.ErrInvalidGoalStatus
	}

	goal.Title = input.Title
	goal.Description = input.Description
	if input.Status != "" {
		goal.Status = input.Status
	}
	goal.UpdatedAt = time.Now()

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// UpdateStatus changes only the goal's status. Transitions between the
// three states are unrestricted.
func (s *GoalService) UpdateStatus(ctx context.Context, id, userID uint, status domain.GoalStatus) (*domain.Goal, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidGoalStatus
	}

	goal, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	goal.Status = status
	goal.UpdatedAt = time.Now()

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id, userID uint) error {
	err := s.goalRepo.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrGoalNotFound
	}
	return err
}
