//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaper(keyword, key string, published time.Time) *papers.Paper {
	return &papers.Paper{
		ID:              key + "v1",
		Key:             key,
		Title:           "Paper " + key,
		URL:             "http://arxiv.org/abs/" + key + "v1",
		Abstract:        "An abstract.",
		Authors:         []string{"Ada Lovelace"},
		PrimaryCategory: "cs.CV",
		PublishedAt:     published,
		UpdatedAt:       published,
		Keyword:         keyword,
		CodeURL:         fmt.Sprintf("https://arxiv.paperswithcode.com/api/v0/papers/%sv1", key),
		RepoURL:         "#",
		CrawledAt:       time.Now().UTC(),
	}
}

func TestPaperRepository_Upsert_SQLite(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	published := time.Date(2021, 8, 20, 0, 0, 0, 0, time.UTC)
	paper := testPaper("Survey", "2108.09112", published)

	created, err := tc.PaperRepo.Upsert(ctx, paper)
	require.NoError(t, err)
	assert.True(t, created)

	// Re-crawling the same paper replaces the row: new version, new repo link.
	revised := time.Date(2021, 8, 25, 0, 0, 0, 0, time.UTC)
	updated := testPaper("Survey", "2108.09112", published)
	updated.ID = "2108.09112v2"
	updated.UpdatedAt = revised
	updated.RepoURL = "https://github.com/example/sod"

	created, err = tc.PaperRepo.Upsert(ctx, updated)
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := tc.PaperRepo.GetByKey(ctx, "2108.09112")
	require.NoError(t, err)
	assert.Equal(t, "2108.09112v2", stored.ID)
	assert.Equal(t, "https://github.com/example/sod", stored.RepoURL)
	// The stored revision date is the one arXiv reported, not the write time.
	assert.True(t, stored.UpdatedAt.Equal(revised))
	assert.True(t, stored.PublishedAt.Equal(published))

	// The same paper under another keyword is a separate row.
	other := testPaper("Rethinking", "2108.09112", published)
	created, err = tc.PaperRepo.Upsert(ctx, other)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestPaperRepository_Upsert_InvalidPaper_SQLite(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	paper := testPaper("Survey", "2108.09112", time.Now())
	paper.Authors = nil

	_, err := tc.PaperRepo.Upsert(context.Background(), paper)
	assert.Error(t, err)
}

func TestPaperRepository_List_SQLite(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	base := time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		paper := testPaper("Survey", fmt.Sprintf("2108.0000%d", i), base.AddDate(0, 0, i))
		if i%2 == 0 {
			paper.PrimaryCategory = "cs.LG"
		}
		_, err := tc.PaperRepo.Upsert(ctx, paper)
		require.NoError(t, err)
	}
	_, err := tc.PaperRepo.Upsert(ctx, testPaper("Rethinking", "2109.00001", base))
	require.NoError(t, err)

	t.Run("filter by keyword, newest first", func(t *testing.T) {
		query := papers.NewPaperQuery()
		query.Keyword = "Survey"

		results, err := tc.PaperRepo.List(ctx, query)
		require.NoError(t, err)
		require.Len(t, results, 5)
		assert.Equal(t, "2108.00004", results[0].Key)
		assert.Equal(t, "2108.00000", results[4].Key)
	})

	t.Run("filter by category", func(t *testing.T) {
		query := papers.NewPaperQuery()
		query.Category = "cs.LG"

		results, err := tc.PaperRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("filter by published since", func(t *testing.T) {
		query := papers.NewPaperQuery()
		query.Keyword = "Survey"
		query.PublishedSince = base.AddDate(0, 0, 3)

		results, err := tc.PaperRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		query := papers.NewPaperQuery()
		query.Keyword = "Survey"
		query.Limit = 2
		query.Offset = 2

		results, err := tc.PaperRepo.List(ctx, query)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "2108.00002", results[0].Key)
	})

	t.Run("invalid query", func(t *testing.T) {
		query := papers.NewPaperQuery()
		query.SortBy = "abstract"

		_, err := tc.PaperRepo.List(ctx, query)
		assert.Error(t, err)
	})
}

func TestPaperRepository_DeleteByKey_SQLite(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	published := time.Date(2021, 8, 20, 0, 0, 0, 0, time.UTC)
	_, err := tc.PaperRepo.Upsert(ctx, testPaper("Survey", "2108.09112", published))
	require.NoError(t, err)
	_, err = tc.PaperRepo.Upsert(ctx, testPaper("Rethinking", "2108.09112", published))
	require.NoError(t, err)

	require.NoError(t, tc.PaperRepo.DeleteByKey(ctx, "2108.09112"))

	_, err = tc.PaperRepo.GetByKey(ctx, "2108.09112")
	assert.Error(t, err)
}

func TestPaperRepository_CountByKeyword_SQLite(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	base := time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := tc.PaperRepo.Upsert(ctx, testPaper("Survey", fmt.Sprintf("2108.0000%d", i), base))
		require.NoError(t, err)
	}
	_, err := tc.PaperRepo.Upsert(ctx, testPaper("Rethinking", "2109.00001", base))
	require.NoError(t, err)

	counts, err := tc.PaperRepo.CountByKeyword(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts["Survey"])
	assert.Equal(t, int64(1), counts["Rethinking"])
}
