package postgres

import (
	"context"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"gorm.io/gorm"
)

type videoCategoryRepository struct {
	db *gorm.DB
}

func NewVideoCategoryRepository(db *gorm.DB) *videoCategoryRepository {
	return &videoCategoryRepository{db: db}
}

func (r *videoCategoryRepository) Create(ctx context.Context, category *domain.VideoCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *videoCategoryRepository) GetByID(ctx context.Context, id uint) (*domain.VideoCategory, error) {
	var category domain.VideoCategory
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *videoCategoryRepository) GetByName(ctx context.Context, name string) (*domain.VideoCategory, error) {
	var category domain.VideoCategory
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *videoCategoryRepository) List(ctx context.Context) ([]*domain.VideoCategory, error) {
	var categories []*domain.VideoCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *videoCategoryRepository) Update(ctx context.Context, category *domain.VideoCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *videoCategoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.VideoCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
