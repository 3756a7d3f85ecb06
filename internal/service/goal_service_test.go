package service_test

import (
	"context"
	"testing"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository/postgres"
	"github.com/dom/league-improvement-tracker/internal/service"
	"github.com/dom/league-improvement-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_CRUD(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	goalService := service.NewGoalService(repos.Goal)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	goal, err := goalService.Create(ctx, user.ID, service.GoalInput{
		Title:       "Improve wave management",
		Description: "Freeze and slow push on purpose",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusActive, goal.Status, "new goals default to active")

	got, err := goalService.Get(ctx, goal.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.Title, got.Title)

	updated, err := goalService.UpdateStatus(ctx, goal.ID, user.ID, domain.GoalStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusCompleted, updated.Status)

	require.NoError(t, goalService.Delete(ctx, goal.ID, user.ID))

	_, err = goalService.Get(ctx, goal.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestGoalService_ListFiltersByStatus(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	goalService := service.NewGoalService(repos.Goal)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewGoalBuilder(user.ID).WithTitle("a").Build(t, testDB.DB)
	testutil.NewGoalBuilder(user.ID).WithTitle("b").WithStatus(domain.GoalStatusArchived).Build(t, testDB.DB)

	all, err := goalService.List(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	archived, err := goalService.List(ctx, user.ID, domain.GoalStatusArchived)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "b", archived[0].Title)

	_, err = goalService.List(ctx, user.ID, domain.GoalStatus("bogus"))
	assert.ErrorIs(t, err, domain.ErrInvalidGoalStatus)
}

func TestGoalService_ScopedToOwner(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	goalService := service.NewGoalService(repos.Goal)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	goal := testutil.NewGoalBuilder(owner.ID).Build(t, testDB.DB)

	_, err := goalService.Get(ctx, goal.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrGoalNotFound, "another user's goal must look like it does not exist")

	err = goalService.Delete(ctx, goal.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}
