package postgres

import (
	"context"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"gorm.io/gorm"
)

type creatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) *creatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) Create(ctx context.Context, creator *domain.Creator) error {
	return r.db.WithContext(ctx).Create(creator).Error
}

func (r *creatorRepository) GetByID(ctx context.Context, id uint) (*domain.Creator, error) {
	var creator domain.Creator
	err := r.db.WithContext(ctx).First(&creator, id).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) GetByName(ctx context.Context, name string) (*domain.Creator, error) {
	var creator domain.Creator
	err := r.db.WithContext(ctx).First(&creator, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) List(ctx context.Context) ([]*domain.Creator, error) {
	var creators []*domain.Creator
	err := r.db.WithContext(ctx).Order("name ASC").Find(&creators).Error
	if err != nil {
		return nil, err
	}
	return creators, nil
}

func (r *creatorRepository) Update(ctx context.Context, creator *domain.Creator) error {
	return r.db.WithContext(ctx).Save(creator).Error
}

func (r *creatorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Creator{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
