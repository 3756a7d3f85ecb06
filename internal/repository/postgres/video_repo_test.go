package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"github.com/dom/league-improvement-tracker/internal/repository/postgres"
	"github.com/dom/league-improvement-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoRepository_Search(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVideoRepository(testDB.DB)
	ctx := context.Background()

	old := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	videos := []*domain.VideoTutorial{
		{Title: "Wave management masterclass", Description: "freeze, slow push", Tags: []string{"macro", "laning"}, PublishedDate: &old},
		{Title: "Jungle pathing 101", Description: "full clear routes", Tags: []string{"jungle"}, PublishedDate: &recent},
		{Title: "Advanced wave control", Description: "bounce timing", Tags: []string{"macro"}, PublishedDate: &recent},
	}
	for _, v := range videos {
		require.NoError(t, repo.Create(ctx, v))
	}

	t.Run("free text matches title and description", func(t *testing.T) {
		got, err := repo.Search(ctx, repository.VideoSearchParams{Query: "wave"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = repo.Search(ctx, repository.VideoSearchParams{Query: "clear routes"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("tag filter", func(t *testing.T) {
		got, err := repo.Search(ctx, repository.VideoSearchParams{Tags: []string{"macro"}})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = repo.Search(ctx, repository.VideoSearchParams{Tags: []string{"macro", "laning"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Wave management masterclass", got[0].Title)
	})

	t.Run("publication window", func(t *testing.T) {
		cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		got, err := repo.Search(ctx, repository.VideoSearchParams{MinPublished: &cutoff})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("sort defaults to published date descending", func(t *testing.T) {
		got, err := repo.Search(ctx, repository.VideoSearchParams{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, recent.Unix(), got[0].PublishedDate.Unix())
		assert.Equal(t, old.Unix(), got[2].PublishedDate.Unix())
	})

	t.Run("unknown sort column falls back", func(t *testing.T) {
		got, err := repo.Search(ctx, repository.VideoSearchParams{SortBy: "robert'); drop table videos;--"})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("limit and skip", func(t *testing.T) {
		got, err := repo.Search(ctx, repository.VideoSearchParams{SortBy: "id", SortOrder: "asc", Limit: 2, Skip: 1})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Jungle pathing 101", got[0].Title)
	})
}

func TestVideoRepository_KemonoLookup(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVideoRepository(testDB.DB)
	ctx := context.Background()

	video := &domain.VideoTutorial{
		Title:    "Imported VOD",
		KemonoID: "abc123",
		Service:  "patreon",
	}
	require.NoError(t, repo.Create(ctx, video))

	got, err := repo.GetByKemonoID(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, video.ID, got.ID)

	_, err = repo.GetByKemonoID(ctx, "missing")
	assert.Error(t, err)
}
