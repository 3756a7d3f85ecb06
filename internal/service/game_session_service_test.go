package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository/postgres"
	"github.com/dom/league-improvement-tracker/internal/service"
	"github.com/dom/league-improvement-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSessionService_CreateValidatesMood(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewGameSessionService(repos.GameSession)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := sessionService.Create(ctx, user.ID, service.GameSessionInput{
		PlayerCharacter: "Jax",
		Result:          "win",
		MoodRating:      6,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMoodRating)

	session, err := sessionService.Create(ctx, user.ID, service.GameSessionInput{
		PlayerCharacter: "Jax",
		Result:          "win",
		MoodRating:      5,
		GoalProgress: []domain.GoalProgressEntry{
			{GoalID: 1, Title: "CS at 10", ProgressRating: 4, Notes: "hit 80"},
		},
	})
	require.NoError(t, err)
	require.Len(t, session.GoalProgress, 1)
	assert.Equal(t, 4, session.GoalProgress[0].ProgressRating)
}

func TestGameSessionService_ListNewestFirst(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewGameSessionService(repos.GameSession)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewSessionBuilder(user.ID).
		WithChampion("Jax").
		WithDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, testDB.DB)
	testutil.NewSessionBuilder(user.ID).
		WithChampion("Gwen").
		WithDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, testDB.DB)

	sessions, err := sessionService.List(ctx, user.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Gwen", sessions[0].PlayerCharacter)
	assert.Equal(t, "Jax", sessions[1].PlayerCharacter)
}

func TestGameSessionService_UpdateReplacesProgress(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewGameSessionService(repos.GameSession)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)

	updated, err := sessionService.Update(ctx, session.ID, user.ID, service.GameSessionInput{
		PlayerCharacter: "Fiora",
		Result:          "loss",
		MoodRating:      2,
		GoalProgress: []domain.GoalProgressEntry{
			{GoalID: 3, Title: "Trading stance", ProgressRating: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Fiora", updated.PlayerCharacter)
	assert.Equal(t, "loss", updated.Result)
	require.Len(t, updated.GoalProgress, 1)
	assert.Equal(t, uint(3), updated.GoalProgress[0].GoalID)
}
