package postgres

import (
	"context"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"gorm.io/gorm"
)

type gameSessionRepository struct {
	db *gorm.DB
}

func NewGameSessionRepository(db *gorm.DB) *gameSessionRepository {
	return &gameSessionRepository{db: db}
}

func (r *gameSessionRepository) Create(ctx context.Context, session *domain.GameSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *gameSessionRepository) GetByID(ctx context.Context, id, userID uint) (*domain.GameSession, error) {
	var session domain.GameSession
	err := r.db.WithContext(ctx).First(&session, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *gameSessionRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.GameSession, error) {
	var sessions []*domain.GameSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *gameSessionRepository) Update(ctx context.Context, session *domain.GameSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *gameSessionRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.GameSession{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
