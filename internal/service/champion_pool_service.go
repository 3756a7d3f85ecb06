package service

import (
	"context"
	"errors"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"gorm.io/gorm"
)

type ChampionPoolService struct {
	poolRepo repository.ChampionPoolRepository
}

func NewChampionPoolService(poolRepo repository.ChampionPoolRepository) *ChampionPoolService {
	return &ChampionPoolService{poolRepo: poolRepo}
}

type ChampionEntryInput struct {
	ChampionID   string
	ChampionName string
	Category     domain.PoolCategory
	Notes        string
}

type ChampionPoolInput struct {
	Name        string
	Description string
	Champions   []ChampionEntryInput
}

func (in ChampionEntryInput) toEntry(poolID uint) (domain.ChampionPoolEntry, error) {
	category := in.Category
	if category == "" {
		category = domain.PoolCategoryBlind
	}
	if !category.Valid() {
		return domain.ChampionPoolEntry{}, domain.ErrInvalidPoolCategory
	}

	name := in.ChampionName
	if name == "" {
		name = in.ChampionID
	}

	return domain.ChampionPoolEntry{
		ChampionID:   in.ChampionID,
		ChampionName: name,
		Category:     category,
		Notes:        in.Notes,
		PoolID:       poolID,
	}, nil
}

func (s *ChampionPoolService) Create(ctx context.Context, userID uint, input ChampionPoolInput) (*domain.ChampionPool, error) {
	pool := &domain.ChampionPool{
		Name:        input.Name,
		Description: input.Description,
		UserID:      userID,
	}

	for _, c := range input.Champions {
		entry, err := c.toEntry(0)
		if err != nil {
			return nil, err
		}
		pool.Champions = append(pool.Champions, entry)
	}

	if err := s.poolRepo.Create(ctx, pool); err != nil {
		return nil, err
	}

	return s.Get(ctx, pool.ID, userID)
}

func (s *ChampionPoolService) Get(ctx context.Context, id, userID uint) (*domain.ChampionPool, error) {
	pool, err := s.poolRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPoolNotFound
		}
		return nil, err
	}
	return pool, nil
}

func (s *ChampionPoolService) List(ctx context.Context, userID uint) ([]*domain.ChampionPool, error) {
	return s.poolRepo.ListByUser(ctx, userID)
}

// Update replaces the pool's metadata and, when champions are provided,
// its entry list wholesale.
func (s *ChampionPoolService) Update(ctx context.Context, id, userID uint, input ChampionPoolInput) (*domain.ChampionPool, error) {
	pool, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		pool.Name = input.Name
	}
	pool.Description = input.Description

	pool.Champions = pool.Champions[:0]
	for _, c := range input.Champions {
		entry, err := c.toEntry(pool.ID)
		if err != nil {
			return nil, err
		}
		pool.Champions = append(pool.Champions, entry)
	}

	if err := s.poolRepo.Update(ctx, pool); err != nil {
		return nil, err
	}

	return s.Get(ctx, id, userID)
}

func (s *ChampionPoolService) Delete(ctx context.Context, id, userID uint) error {
	err := s.poolRepo.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrPoolNotFound
	}
	return err
}

func (s *ChampionPoolService) AddChampion(ctx context.Context, poolID, userID uint, input ChampionEntryInput) (*domain.ChampionPoolEntry, error) {
	if _, err := s.Get(ctx, poolID, userID); err != nil {
		return nil, err
	}

	entry, err := input.toEntry(poolID)
	if err != nil {
		return nil, err
	}

	if err := s.poolRepo.AddEntry(ctx, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// RemoveChampion deletes a champion's entries from a pool. An empty
// category removes the champion from every category it appears under.
func (s *ChampionPoolService) RemoveChampion(ctx context.Context, poolID, userID uint, championID string, category domain.PoolCategory) error {
	if category != "" && !category.Valid() {
		return domain.ErrInvalidPoolCategory
	}

	if _, err := s.Get(ctx, poolID, userID); err != nil {
		return err
	}

	removed, err := s.poolRepo.RemoveEntries(ctx, poolID, championID, category)
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrChampionNotInPool
	}
	return nil
}

func (s *ChampionPoolService) ListAllChampions(ctx context.Context, userID uint) ([]*domain.ChampionPoolEntry, error) {
	return s.poolRepo.ListEntriesByUser(ctx, userID)
}

func (s *ChampionPoolService) ListChampionsByCategory(ctx context.Context, userID uint, category domain.PoolCategory) ([]*domain.ChampionPoolEntry, error) {
	if !category.Valid() {
		return nil, domain.ErrInvalidPoolCategory
	}
	return s.poolRepo.ListEntriesByCategory(ctx, userID, category)
}
