package postgres

import (
	"context"
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *videoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.VideoTutorial) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) GetByID(ctx context.Context, id uint) (*domain.VideoTutorial, error) {
	var video domain.VideoTutorial
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("CreatorObj").
		First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) GetByKemonoID(ctx context.Context, kemonoID string) (*domain.VideoTutorial, error) {
	var video domain.VideoTutorial
	err := r.db.WithContext(ctx).First(&video, "kemono_id = ?", kemonoID).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context) ([]*domain.VideoTutorial, error) {
	var videos []*domain.VideoTutorial
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("CreatorObj").
		Order("id ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) ListByCreator(ctx context.Context, creatorID uint) ([]*domain.VideoTutorial, error) {
	var videos []*domain.VideoTutorial
	err := r.db.WithContext(ctx).
		Where("creator_relation_id = ?", creatorID).
		Order("id ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) Search(ctx context.Context, params repository.VideoSearchParams) ([]*domain.VideoTutorial, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("CreatorObj")

	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if params.CreatorID != nil {
		query = query.Where("creator_relation_id = ?", *params.CreatorID)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	for _, tag := range params.Tags {
		query = query.Where(datatypes.JSONArrayQuery("tags").Contains(tag))
	}
	if params.MinPublished != nil {
		query = query.Where("published_date >= ?", *params.MinPublished)
	}
	if params.MaxPublished != nil {
		query = query.Where("published_date <= ?", *params.MaxPublished)
	}

	sortBy := params.SortBy
	switch sortBy {
	case "title", "published_date", "added_date", "upload_date", "id":
	default:
		sortBy = "published_date"
	}
	order := "DESC"
	if params.SortOrder == "asc" {
		order = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s NULLS LAST", sortBy, order))

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Skip > 0 {
		query = query.Offset(params.Skip)
	}

	var videos []*domain.VideoTutorial
	if err := query.Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) Update(ctx context.Context, video *domain.VideoTutorial) error {
	return r.db.WithContext(ctx).Omit("Category", "CreatorObj").Save(video).Error
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.VideoTutorial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
