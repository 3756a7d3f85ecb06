package postgres

import (
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.GameSession{},
		&domain.Goal{},
		&domain.VideoCategory{},
		&domain.Creator{},
		&domain.VideoTutorial{},
		&domain.VideoProgress{},
		&domain.ChampionPool{},
		&domain.ChampionPoolEntry{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:          NewUserRepository(db),
		GameSession:   NewGameSessionRepository(db),
		Goal:          NewGoalRepository(db),
		Video:         NewVideoRepository(db),
		VideoCategory: NewVideoCategoryRepository(db),
		VideoProgress: NewVideoProgressRepository(db),
		Creator:       NewCreatorRepository(db),
		ChampionPool:  NewChampionPoolRepository(db),
	}
}
