package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/kemono"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"gorm.io/gorm"
)

var ErrCategoryNameExists = errors.New("video category already exists")

type VideoService struct {
	videoRepo    repository.VideoRepository
	categoryRepo repository.VideoCategoryRepository
	progressRepo repository.VideoProgressRepository
	creatorRepo  repository.CreatorRepository
	kemono       *kemono.Client
}

func NewVideoService(
	videoRepo repository.VideoRepository,
	categoryRepo repository.VideoCategoryRepository,
	progressRepo repository.VideoProgressRepository,
	creatorRepo repository.CreatorRepository,
	kemonoClient *kemono.Client,
) *VideoService {
	return &VideoService{
		videoRepo:    videoRepo,
		categoryRepo: categoryRepo,
		progressRepo: progressRepo,
		creatorRepo:  creatorRepo,
		kemono:       kemonoClient,
	}
}

func (s *VideoService) Create(ctx context.Context, video *domain.VideoTutorial) (*domain.VideoTutorial, error) {
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return s.Get(ctx, video.ID, 0)
}

// Get returns a video with its category and creator attached. When userID
// is non-zero the caller's progress record is attached as well.
func (s *VideoService) Get(ctx context.Context, id, userID uint) (*domain.VideoTutorial, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}

	if userID != 0 {
		s.attachProgress(ctx, userID, video)
	}

	return video, nil
}

func (s *VideoService) List(ctx context.Context, userID uint) ([]*domain.VideoTutorial, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.attachProgress(ctx, userID, videos...)
	return videos, nil
}

func (s *VideoService) Search(ctx context.Context, userID uint, params repository.VideoSearchParams) ([]*domain.VideoTutorial, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}

	videos, err := s.videoRepo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	s.attachProgress(ctx, userID, videos...)
	return videos, nil
}

func (s *VideoService) attachProgress(ctx context.Context, userID uint, videos ...*domain.VideoTutorial) {
	records, err := s.progressRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("ERROR [VideoService] failed to load progress for user %d: %v", userID, err)
		return
	}

	byVideo := make(map[uint]*domain.VideoProgress, len(records))
	for _, p := range records {
		byVideo[p.VideoID] = p
	}
	for _, v := range videos {
		v.ProgressData = byVideo[v.ID]
	}
}

func (s *VideoService) Update(ctx context.Context, id uint, update *domain.VideoTutorial) (*domain.VideoTutorial, error) {
	video, err := s.Get(ctx, id, 0)
	if err != nil {
		return nil, err
	}

	video.Title = update.Title
	video.Creator = update.Creator
	video.URL = update.URL
	video.Description = update.Description
	video.VideoType = update.VideoType
	video.KeyPoints = update.KeyPoints
	video.Tags = update.Tags
	video.CategoryID = update.CategoryID
	video.CreatorRelationID = update.CreatorRelationID
	if update.UploadDate != nil {
		video.UploadDate = update.UploadDate
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	return s.Get(ctx, id, 0)
}

func (s *VideoService) Delete(ctx context.Context, id uint) error {
	// Progress rows reference the video; drop them first.
	if err := s.progressRepo.DeleteByVideo(ctx, id); err != nil {
		return err
	}

	err := s.videoRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrVideoNotFound
	}
	return err
}

// SetCreator links a video to a creator entity.
func (s *VideoService) SetCreator(ctx context.Context, videoID, creatorID uint) (*domain.VideoTutorial, error) {
	if _, err := s.creatorRepo.GetByID(ctx, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, err
	}

	video, err := s.Get(ctx, videoID, 0)
	if err != nil {
		return nil, err
	}

	video.CreatorRelationID = &creatorID
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	return s.Get(ctx, videoID, 0)
}

type VideoProgressInput struct {
	IsWatched     *bool
	WatchProgress *float64
	PersonalNotes *string
	IsBookmarked  *bool
}

// SaveProgress upserts the caller's progress record for a video. Only the
// fields present in the input are changed.
func (s *VideoService) SaveProgress(ctx context.Context, userID, videoID uint, input VideoProgressInput) (*domain.VideoProgress, error) {
	if _, err := s.Get(ctx, videoID, 0); err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.GetByUserAndVideo(ctx, userID, videoID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		progress = &domain.VideoProgress{UserID: userID, VideoID: videoID}
	}

	if input.IsWatched != nil {
		progress.IsWatched = *input.IsWatched
	}
	if input.WatchProgress != nil {
		progress.WatchProgress = *input.WatchProgress
	}
	if input.PersonalNotes != nil {
		progress.PersonalNotes = *input.PersonalNotes
	}
	if input.IsBookmarked != nil {
		progress.IsBookmarked = *input.IsBookmarked
	}
	progress.LastWatched = time.Now()

	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	return progress, nil
}

func (s *VideoService) GetProgress(ctx context.Context, userID, videoID uint) (*domain.VideoProgress, error) {
	progress, err := s.progressRepo.GetByUserAndVideo(ctx, userID, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, err
	}
	return progress, nil
}

// Categories

func (s *VideoService) CreateCategory(ctx context.Context, category *domain.VideoCategory) (*domain.VideoCategory, error) {
	if existing, err := s.categoryRepo.GetByName(ctx, category.Name); err == nil && existing != nil {
		return nil, ErrCategoryNameExists
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *VideoService) GetCategory(ctx context.Context, id uint) (*domain.VideoCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *VideoService) ListCategories(ctx context.Context) ([]*domain.VideoCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *VideoService) UpdateCategory(ctx context.Context, id uint, update *domain.VideoCategory) (*domain.VideoCategory, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = update.Name
	category.Description = update.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *VideoService) DeleteCategory(ctx context.Context, id uint) error {
	err := s.categoryRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCategoryNotFound
	}
	return err
}

// Kemono import

type ImportResult struct {
	TotalVideos    int                     `json:"total_videos"`
	ImportedVideos int                     `json:"imported_videos"`
	SkippedVideos  int                     `json:"skipped_videos"`
	Videos         []*domain.VideoTutorial `json:"videos"`
}

// PreviewKemono fetches a creator's posts without importing anything.
func (s *VideoService) PreviewKemono(ctx context.Context, service, creatorID string) ([]kemono.Post, error) {
	return s.kemono.FetchPosts(ctx, service, creatorID)
}

// ImportKemono pulls a creator's feed and stores every post that carries a
// video and has not been imported before. The creator entity is created on
// first import.
func (s *VideoService) ImportKemono(ctx context.Context, service, creatorID string) (*ImportResult, error) {
	posts, err := s.kemono.FetchPosts(ctx, service, creatorID)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{TotalVideos: len(posts)}

	for _, post := range posts {
		url := post.VideoURL("https://kemono.su")
		if url == "" {
			result.SkippedVideos++
			continue
		}

		if _, err := s.videoRepo.GetByKemonoID(ctx, post.ID); err == nil {
			result.SkippedVideos++
			continue
		}

		creator, err := s.ensureCreator(ctx, post.User, service)
		if err != nil {
			return nil, err
		}

		video := &domain.VideoTutorial{
			Title:           strings.TrimSpace(post.Title),
			Creator:         post.User,
			URL:             url,
			Description:     post.Content,
			VideoType:       "direct",
			KemonoID:        post.ID,
			Service:         post.Service,
			KemonoCreatorID: post.User,
			AddedDate:       parseKemonoTime(post.Added),
			PublishedDate:   parseKemonoTime(post.Published),
			Tags:            post.Tags,
		}
		if creator != nil {
			video.CreatorRelationID = &creator.ID
		}

		if err := s.videoRepo.Create(ctx, video); err != nil {
			return nil, err
		}

		result.ImportedVideos++
		result.Videos = append(result.Videos, video)
	}

	return result, nil
}

func (s *VideoService) ensureCreator(ctx context.Context, name, platform string) (*domain.Creator, error) {
	creator, err := s.creatorRepo.GetByName(ctx, name)
	if err == nil {
		return creator, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	creator = &domain.Creator{
		Name:     name,
		Platform: platform,
	}
	if err := s.creatorRepo.Create(ctx, creator); err != nil {
		return nil, err
	}
	return creator, nil
}

func parseKemonoTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
