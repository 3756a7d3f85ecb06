package domain

type PoolCategory string

const (
	PoolCategoryBlind       PoolCategory = "blind"
	PoolCategorySituational PoolCategory = "situational"
	PoolCategoryTest        PoolCategory = "test"
)

func (c PoolCategory) Valid() bool {
	switch c {
	case PoolCategoryBlind, PoolCategorySituational, PoolCategoryTest:
		return true
	}
	return false
}

type ChampionPool struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Name        string              `json:"name" gorm:"index;not null"`
	Description string              `json:"description,omitempty"`
	UserID      uint                `json:"user_id" gorm:"index;not null"`
	Champions   []ChampionPoolEntry `json:"champions" gorm:"foreignKey:PoolID;constraint:OnDelete:CASCADE"`
}

// ChampionPoolEntry is one champion within a pool. The same champion may
// appear more than once in a pool under different categories.
type ChampionPoolEntry struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	ChampionID   string       `json:"champion_id" gorm:"index:idx_pool_champion_category,unique;not null"`
	ChampionName string       `json:"champion_name"`
	Category     PoolCategory `json:"category" gorm:"index:idx_pool_champion_category,unique;not null;default:'blind'"`
	Notes        string       `json:"notes,omitempty"`
	PoolID       uint         `json:"pool_id" gorm:"index:idx_pool_champion_category,unique;not null"`
}
