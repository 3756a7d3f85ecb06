package postgres

import (
	"context"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type videoProgressRepository struct {
	db *gorm.DB
}

func NewVideoProgressRepository(db *gorm.DB) *videoProgressRepository {
	return &videoProgressRepository{db: db}
}

func (r *videoProgressRepository) Upsert(ctx context.Context, progress *domain.VideoProgress) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		UpdateAll: true,
	}).Create(progress).Error
}

func (r *videoProgressRepository) GetByUserAndVideo(ctx context.Context, userID, videoID uint) (*domain.VideoProgress, error) {
	var progress domain.VideoProgress
	err := r.db.WithContext(ctx).First(&progress, "user_id = ? AND video_id = ?", userID, videoID).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *videoProgressRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.VideoProgress, error) {
	var records []*domain.VideoProgress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *videoProgressRepository) DeleteByVideo(ctx context.Context, videoID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.VideoProgress{}, "video_id = ?", videoID).Error
}
