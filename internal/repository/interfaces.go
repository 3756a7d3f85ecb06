package repository

import (
	"context"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

type GameSessionRepository interface {
	Create(ctx context.Context, session *domain.GameSession) error
	GetByID(ctx context.Context, id, userID uint) (*domain.GameSession, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.GameSession, error)
	Update(ctx context.Context, session *domain.GameSession) error
	Delete(ctx context.Context, id, userID uint) error
}

type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	GetByID(ctx context.Context, id, userID uint) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID uint, status domain.GoalStatus) ([]*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id, userID uint) error
}

// VideoSearchParams narrows List results. Nil pointer fields are skipped.
type VideoSearchParams struct {
	Query        string
	CreatorID    *uint
	CategoryID   *uint
	Tags         []string
	MinPublished *time.Time
	MaxPublished *time.Time
	SortBy       string
	SortOrder    string
	Skip         int
	Limit        int
}

type VideoRepository interface {
	Create(ctx context.Context, video *domain.VideoTutorial) error
	GetByID(ctx context.Context, id uint) (*domain.VideoTutorial, error)
	GetByKemonoID(ctx context.Context, kemonoID string) (*domain.VideoTutorial, error)
	List(ctx context.Context) ([]*domain.VideoTutorial, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]*domain.VideoTutorial, error)
	Search(ctx context.Context, params VideoSearchParams) ([]*domain.VideoTutorial, error)
	Update(ctx context.Context, video *domain.VideoTutorial) error
	Delete(ctx context.Context, id uint) error
}

type VideoCategoryRepository interface {
	Create(ctx context.Context, category *domain.VideoCategory) error
	GetByID(ctx context.Context, id uint) (*domain.VideoCategory, error)
	GetByName(ctx context.Context, name string) (*domain.VideoCategory, error)
	List(ctx context.Context) ([]*domain.VideoCategory, error)
	Update(ctx context.Context, category *domain.VideoCategory) error
	Delete(ctx context.Context, id uint) error
}

type VideoProgressRepository interface {
	Upsert(ctx context.Context, progress *domain.VideoProgress) error
	GetByUserAndVideo(ctx context.Context, userID, videoID uint) (*domain.VideoProgress, error)
	ListByUser(ctx context.Context, userID uint) ([]*domain.VideoProgress, error)
	DeleteByVideo(ctx context.Context, videoID uint) error
}

type CreatorRepository interface {
	Create(ctx context.Context, creator *domain.Creator) error
	GetByID(ctx context.Context, id uint) (*domain.Creator, error)
	GetByName(ctx context.Context, name string) (*domain.Creator, error)
	List(ctx context.Context) ([]*domain.Creator, error)
	Update(ctx context.Context, creator *domain.Creator) error
	Delete(ctx context.Context, id uint) error
}

type ChampionPoolRepository interface {
	Create(ctx context.Context, pool *domain.ChampionPool) error
	GetByID(ctx context.Context, id, userID uint) (*domain.ChampionPool, error)
	ListByUser(ctx context.Context, userID uint) ([]*domain.ChampionPool, error)
	Update(ctx context.Context, pool *domain.ChampionPool) error
	Delete(ctx context.Context, id, userID uint) error
	AddEntry(ctx context.Context, entry *domain.ChampionPoolEntry) error
	RemoveEntries(ctx context.Context, poolID uint, championID string, category domain.PoolCategory) (int64, error)
	ListEntriesByUser(ctx context.Context, userID uint) ([]*domain.ChampionPoolEntry, error)
	ListEntriesByCategory(ctx context.Context, userID uint, category domain.PoolCategory) ([]*domain.ChampionPoolEntry, error)
}

type Repositories struct {
	User          UserRepository
	GameSession   GameSessionRepository
	Goal          GoalRepository
	Video         VideoRepository
	VideoCategory VideoCategoryRepository
	VideoProgress VideoProgressRepository
	Creator       CreatorRepository
	ChampionPool  ChampionPoolRepository
}
