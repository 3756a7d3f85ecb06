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

func TestChampionPoolService_Lifecycle(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	poolService := service.NewChampionPoolService(repos.ChampionPool)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	pool, err := poolService.Create(ctx, user.ID, service.ChampionPoolInput{
		Name:        "Top lane",
		Description: "Main role",
		Champions: []service.ChampionEntryInput{
			{ChampionID: "Jax", Category: domain.PoolCategoryBlind},
			{ChampionID: "Malphite", Category: domain.PoolCategorySituational, Notes: "into full AD"},
		},
	})
	require.NoError(t, err)
	require.Len(t, pool.Champions, 2)
	assert.Equal(t, "Jax", pool.Champions[0].ChampionName, "name falls back to the champion id")

	entry, err := poolService.AddChampion(ctx, pool.ID, user.ID, service.ChampionEntryInput{
		ChampionID: "Gwen",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PoolCategoryBlind, entry.Category, "category defaults to blind")

	got, err := poolService.Get(ctx, pool.ID, user.ID)
	require.NoError(t, err)
	assert.Len(t, got.Champions, 3)

	err = poolService.RemoveChampion(ctx, pool.ID, user.ID, "Gwen", "")
	require.NoError(t, err)

	err = poolService.RemoveChampion(ctx, pool.ID, user.ID, "Gwen", "")
	assert.ErrorIs(t, err, domain.ErrChampionNotInPool)

	require.NoError(t, poolService.Delete(ctx, pool.ID, user.ID))
	_, err = poolService.Get(ctx, pool.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrPoolNotFound)
}

func TestChampionPoolService_CategoryScopedRemove(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	poolService := service.NewChampionPoolService(repos.ChampionPool)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	pool, err := poolService.Create(ctx, user.ID, service.ChampionPoolInput{
		Name: "Mid lane",
		Champions: []service.ChampionEntryInput{
			{ChampionID: "Ahri", Category: domain.PoolCategoryBlind},
			{ChampionID: "Ahri", Category: domain.PoolCategoryTest},
		},
	})
	require.NoError(t, err)

	err = poolService.RemoveChampion(ctx, pool.ID, user.ID, "Ahri", domain.PoolCategoryTest)
	require.NoError(t, err)

	got, err := poolService.Get(ctx, pool.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Champions, 1)
	assert.Equal(t, domain.PoolCategoryBlind, got.Champions[0].Category)
}

func TestChampionPoolService_InvalidCategory(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	poolService := service.NewChampionPoolService(repos.ChampionPool)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := poolService.Create(ctx, user.ID, service.ChampionPoolInput{
		Name: "Broken",
		Champions: []service.ChampionEntryInput{
			{ChampionID: "Ahri", Category: domain.PoolCategory("flex")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPoolCategory)

	_, err = poolService.ListChampionsByCategory(ctx, user.ID, domain.PoolCategory("flex"))
	assert.ErrorIs(t, err, domain.ErrInvalidPoolCategory)
}

func TestChampionPoolService_ListAllChampions(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	poolService := service.NewChampionPoolService(repos.ChampionPool)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := poolService.Create(ctx, user.ID, service.ChampionPoolInput{
		Name: "Top",
		Champions: []service.ChampionEntryInput{
			{ChampionID: "Jax", Category: domain.PoolCategoryBlind},
		},
	})
	require.NoError(t, err)

	_, err = poolService.Create(ctx, other.ID, service.ChampionPoolInput{
		Name: "Jungle",
		Champions: []service.ChampionEntryInput{
			{ChampionID: "Lee Sin", Category: domain.PoolCategoryBlind},
		},
	})
	require.NoError(t, err)

	entries, err := poolService.ListAllChampions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the caller's entries are listed")
	assert.Equal(t, "Jax", entries[0].ChampionID)
}
