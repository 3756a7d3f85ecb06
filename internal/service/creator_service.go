package service

import (
	"context"
	"errors"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"gorm.io/gorm"
)

var ErrCreatorNameExists = errors.New("creator with this name already exists")

type CreatorService struct {
	creatorRepo repository.CreatorRepository
	videoRepo   repository.VideoRepository
}

func NewCreatorService(creatorRepo repository.CreatorRepository, videoRepo repository.VideoRepository) *CreatorService {
	return &CreatorService{
		creatorRepo: creatorRepo,
		videoRepo:   videoRepo,
	}
}

func (s *CreatorService) Create(ctx context.Context, creator *domain.Creator) (*domain.Creator, error) {
	if existing, err := s.creatorRepo.GetByName(ctx, creator.Name); err == nil && existing != nil {
		return nil, ErrCreatorNameExists
	}
	if err := s.creatorRepo.Create(ctx, creator); err != nil {
		return nil, err
	}
	return creator, nil
}

func (s *CreatorService) Get(ctx context.Context, id uint) (*domain.Creator, error) {
	creator, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, err
	}
	return creator, nil
}

func (s *CreatorService) List(ctx context.Context) ([]*domain.Creator, error) {
	return s.creatorRepo.List(ctx)
}

func (s *CreatorService) Update(ctx context.Context, id uint, update *domain.Creator) (*domain.Creator, error) {
	creator, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != "" && update.Name != creator.Name {
		if existing, err := s.creatorRepo.GetByName(ctx, update.Name); err == nil && existing != nil {
			return nil, ErrCreatorNameExists
		}
		creator.Name = update.Name
	}
	creator.Description = update.Description
	creator.Platform = update.Platform
	creator.Website = update.Website

	if err := s.creatorRepo.Update(ctx, creator); err != nil {
		return nil, err
	}
	return creator, nil
}

// Delete removes a creator and detaches any videos that reference it.
func (s *CreatorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	videos, err := s.videoRepo.ListByCreator(ctx, id)
	if err != nil {
		return err
	}
	for _, video := range videos {
		video.CreatorRelationID = nil
		if err := s.videoRepo.Update(ctx, video); err != nil {
			return err
		}
	}

	return s.creatorRepo.Delete(ctx, id)
}

func (s *CreatorService) ListVideos(ctx context.Context, id uint) ([]*domain.VideoTutorial, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.videoRepo.ListByCreator(ctx, id)
}
