package domain

import (
	"time"

	"gorm.io/datatypes"
)

// GoalProgressEntry records how a single goal went during one game session.
// Rating uses the same 1-5 scale as the session mood.
type GoalProgressEntry struct {
	GoalID         uint   `json:"goal_id"`
	Title          string `json:"title"`
	Notes          string `json:"notes,omitempty"`
	ProgressRating int    `json:"progress_rating"`
}

type GameSession struct {
	ID              uint                                   `json:"id" gorm:"primaryKey"`
	Date            time.Time                              `json:"date"`
	PlayerCharacter string                                 `json:"player_character" gorm:"index;not null"`
	EnemyCharacter  string                                 `json:"enemy_character" gorm:"index"`
	Result          string                                 `json:"result"`
	MoodRating      int                                    `json:"mood_rating"`
	GoalProgress    datatypes.JSONSlice[GoalProgressEntry] `json:"goal_progress"`
	Notes           string                                 `json:"notes,omitempty"`
	UserID          uint                                   `json:"user_id" gorm:"index;not null"`
}
