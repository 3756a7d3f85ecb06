package domain

import "errors"

// Validation errors
var (
	ErrInvalidGoalStatus   = errors.New("status must be one of: active, completed, archived")
	ErrInvalidPoolCategory = errors.New("category must be one of: blind, situational, test")
	ErrInvalidMoodRating   = errors.New("mood rating must be between 1 and 5")
)

// Not-found errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrGameSessionNotFound = errors.New("game session not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrVideoNotFound       = errors.New("video tutorial not found")
	ErrCategoryNotFound    = errors.New("video category not found")
	ErrCreatorNotFound     = errors.New("creator not found")
	ErrPoolNotFound        = errors.New("champion pool not found")
	ErrChampionNotInPool   = errors.New("champion not found in pool")
	ErrProgressNotFound    = errors.New("video progress not found")
)
