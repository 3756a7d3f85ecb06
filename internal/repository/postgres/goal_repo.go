package postgres

import (
	"context"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"gorm.io/gorm"
)

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *goalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) GetByID(ctx context.Context, id, userID uint) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.db.WithContext(ctx).First(&goal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) ListByUser(ctx context.Context, userID uint, status domain.GoalStatus) ([]*domain.Goal, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var goals []*domain.Goal
	err := query.Order("created_at ASC").Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

func (r *goalRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Goal{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
