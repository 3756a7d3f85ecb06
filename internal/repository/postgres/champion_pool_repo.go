package postgres

import (
	"context"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"gorm.io/gorm"
)

type championPoolRepository struct {
	db *gorm.DB
}

func NewChampionPoolRepository(db *gorm.DB) *championPoolRepository {
	return &championPoolRepository{db: db}
}

func (r *championPoolRepository) Create(ctx context.Context, pool *domain.ChampionPool) error {
	return r.db.WithContext(ctx).Create(pool).Error
}

func (r *championPoolRepository) GetByID(ctx context.Context, id, userID uint) (*domain.ChampionPool, error) {
	var pool domain.ChampionPool
	err := r.db.WithContext(ctx).
		Preload("Champions").
		First(&pool, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (r *championPoolRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.ChampionPool, error) {
	var pools []*domain.ChampionPool
	err := r.db.WithContext(ctx).
		Preload("Champions").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&pools).Error
	if err != nil {
		return nil, err
	}
	return pools, nil
}

func (r *championPoolRepository) Update(ctx context.Context, pool *domain.ChampionPool) error {
	// Entries are replaced wholesale on full updates
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.ChampionPoolEntry{}, "pool_id = ?", pool.ID).Error; err != nil {
			return err
		}
		return tx.Omit("Champions.ID").Save(pool).Error
	})
	return err
}

func (r *championPoolRepository) Delete(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.ChampionPoolEntry{}, "pool_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.ChampionPool{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *championPoolRepository) AddEntry(ctx context.Context, entry *domain.ChampionPoolEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *championPoolRepository) RemoveEntries(ctx context.Context, poolID uint, championID string, category domain.PoolCategory) (int64, error) {
	query := r.db.WithContext(ctx).Where("pool_id = ? AND champion_id = ?", poolID, championID)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	result := query.Delete(&domain.ChampionPoolEntry{})
	return result.RowsAffected, result.Error
}

func (r *championPoolRepository) ListEntriesByUser(ctx context.Context, userID uint) ([]*domain.ChampionPoolEntry, error) {
	var entries []*domain.ChampionPoolEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN champion_pools ON champion_pools.id = champion_pool_entries.pool_id").
		Where("champion_pools.user_id = ?", userID).
		Order("champion_pool_entries.champion_name ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *championPoolRepository) ListEntriesByCategory(ctx context.Context, userID uint, category domain.PoolCategory) ([]*domain.ChampionPoolEntry, error) {
	var entries []*domain.ChampionPoolEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN champion_pools ON champion_pools.id = champion_pool_entries.pool_id").
		Where("champion_pools.user_id = ? AND champion_pool_entries.category = ?", userID, category).
		Order("champion_pool_entries.champion_name ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
