package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"gorm.io/gorm"
)

type GameSessionService struct {
	sessionRepo repository.GameSessionRepository
}

func NewGameSessionService(sessionRepo repository.GameSessionRepository) *GameSessionService {
	return &GameSessionService{sessionRepo: sessionRepo}
}

type GameSessionInput struct {
	Date            *time.Time
	PlayerCharacter string
	EnemyCharacter  string
	Result          string
	MoodRating      int
	GoalProgress    []domain.GoalProgressEntry
	Notes           string
}

func (in GameSessionInput) validate() error {
	if in.MoodRating < 1 || in.MoodRating > 5 {
		return domain.ErrInvalidMoodRating
	}
	return nil
}

func (s *GameSessionService) Create(ctx context.Context, userID uint, input GameSessionInput) (*domain.GameSession, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	session := &domain.GameSession{
		Date:            date,
		PlayerCharacter: input.PlayerCharacter,
		EnemyCharacter:  input.EnemyCharacter,
		Result:          input.Result,
		MoodRating:      input.MoodRating,
		GoalProgress:    input.GoalProgress,
		Notes:           input.Notes,
		UserID:          userID,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *GameSessionService) Get(ctx context.Context, id, userID uint) (*domain.GameSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGameSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *GameSessionService) List(ctx context.Context, userID uint, limit, offset int) ([]*domain.GameSession, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.sessionRepo.ListByUser(ctx, userID, limit, offset)
}

// Update performs a full replace of the session's mutable fields.
func (s *GameSessionService) Update(ctx context.Context, id, userID uint, input GameSessionInput) (*domain.GameSession, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	session, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		session.Date = *input.Date
	}
	session.PlayerCharacter = input.PlayerCharacter
	session.EnemyCharacter = input.EnemyCharacter
	session.Result = input.Result
	session.MoodRating = input.MoodRating
	session.GoalProgress = input.GoalProgress
	session.Notes = input.Notes

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *GameSessionService) Delete(ctx context.Context, id, userID uint) error {
	err := s.sessionRepo.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrGameSessionNotFound
	}
	return err
}
