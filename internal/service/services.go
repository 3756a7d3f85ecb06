package service

import (
	"github.com/dom/league-improvement-tracker/internal/config"
	"github.com/dom/league-improvement-tracker/internal/kemono"
	"github.com/dom/league-improvement-tracker/internal/repository"
)

type Services struct {
	Auth         *AuthService
	GameSession  *GameSessionService
	Goal         *GoalService
	Video        *VideoService
	Creator      *CreatorService
	ChampionPool *ChampionPoolService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	kemonoClient := kemono.NewClient(cfg.KemonoBaseURL)

	return &Services{
		Auth:         NewAuthService(repos.User, cfg),
		GameSession:  NewGameSessionService(repos.GameSession),
		Goal:         NewGoalService(repos.Goal),
		Video:        NewVideoService(repos.Video, repos.VideoCategory, repos.VideoProgress, repos.Creator, kemonoClient),
		Creator:      NewCreatorService(repos.Creator, repos.Video),
		ChampionPool: NewChampionPoolService(repos.ChampionPool),
	}
}
