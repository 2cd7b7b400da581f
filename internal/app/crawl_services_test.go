//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"arxiv_daily_service/internal/domain/feeds"
	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/domain/reports"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type crawlServiceMocks struct {
	feedConnector *MockFeedConnector
	codeConnector *MockCodeConnector
	paperRepo     *MockPaperRepository
	runRepo       *MockCrawlRunRepository
	archiveStore  *MockArchiveStore
	renderer      *MockRenderer
}

func testCrawlerSettings() *config.CrawlerSettings {
	return &config.CrawlerSettings{
		Keywords: map[string]string{
			"Survey":           `abs:"survey"`,
			"Change Detection": `abs:"change detection"`,
		},
		MaxResultsPerKeyword:  10,
		PageSize:              10,
		PageDelaySeconds:      0,
		MaxRetries:            0,
		RequestTimeoutSeconds: 5,
		FeedBaseURL:           config.DefaultFeedBaseURL,
		CodeBaseURL:           config.DefaultCodeBaseURL,
	}
}

func setupCrawlService(t *testing.T) (papers.CrawlService, *crawlServiceMocks) {
	t.Helper()

	mocks := &crawlServiceMocks{
		feedConnector: new(MockFeedConnector),
		codeConnector: new(MockCodeConnector),
		paperRepo:     new(MockPaperRepository),
		runRepo:       new(MockCrawlRunRepository),
		archiveStore:  new(MockArchiveStore),
		renderer:      new(MockRenderer),
	}

	service, err := NewCrawlService(
		mocks.feedConnector,
		mocks.codeConnector,
		mocks.paperRepo,
		mocks.runRepo,
		mocks.archiveStore,
		mocks.renderer,
		testCrawlerSettings(),
		testutil.SetupTestLogger(t),
	)
	require.NoError(t, err)
	return service, mocks
}

func testFeedEntry(id string) *feeds.FeedEntry {
	published := time.Date(2021, 8, 20, 0, 0, 0, 0, time.UTC)
	return &feeds.FeedEntry{
		ID:              "http://arxiv.org/abs/" + id,
		Title:           "Paper " + id,
		Summary:         "First line.\n  Second line.",
		Authors:         []string{"Ada Lovelace"},
		PrimaryCategory: "cs.CV",
		Published:       published,
		Updated:         published,
	}
}

func TestCrawlService_Crawl_Success(t *testing.T) {
	service, mocks := setupCrawlService(t)
	ctx := context.Background()

	entries := []*feeds.FeedEntry{testFeedEntry("2108.00001v1"), testFeedEntry("2108.00002v2")}
	mocks.feedConnector.On("Search", ctx, mock.MatchedBy(func(q *feeds.SearchQuery) bool {
		return q.Keyword == "Survey" && q.Expression == `abs:"survey"` && q.MaxResults == 10
	})).Return(entries, nil)

	mocks.codeConnector.On("ResolveRepo", ctx, "2108.00001v1").Return("https://github.com/example/repo", nil)
	mocks.codeConnector.On("ResolveRepo", ctx, "2108.00002v2").Return("#", nil)

	var upserted []*papers.Paper
	mocks.paperRepo.On("Upsert", ctx, mock.AnythingOfType("*papers.Paper")).Run(func(args mock.Arguments) {
		upserted = append(upserted, args.Get(1).(*papers.Paper))
	}).Return(true, nil).Once()
	mocks.paperRepo.On("Upsert", ctx, mock.AnythingOfType("*papers.Paper")).Run(func(args mock.Arguments) {
		upserted = append(upserted, args.Get(1).(*papers.Paper))
	}).Return(false, nil).Once()

	mocks.runRepo.On("Create", ctx, mock.AnythingOfType("*papers.CrawlRun")).Return(nil)
	mocks.runRepo.On("UpdateByID", ctx, mock.AnythingOfType("*papers.CrawlRun")).Return(nil)

	snapshot := reports.Snapshot{"Survey": {}}
	mocks.archiveStore.On("Merge", mock.AnythingOfType("[]*papers.Paper")).Return(snapshot, nil)
	mocks.renderer.On("Render", snapshot).Return(nil)
	mocks.paperRepo.On("CountByKeyword", ctx).Return(map[string]int64{"Survey": 2}, nil)

	run, err := service.Crawl(ctx, []string{"Survey"})
	require.NoError(t, err)

	assert.Equal(t, papers.CrawlStatusSucceeded, run.Status)
	assert.Equal(t, []string{"Survey"}, run.Keywords)
	assert.Equal(t, 2, run.PaperCount)
	assert.Equal(t, 1, run.NewCount)
	require.NotNil(t, run.FinishedAt)

	require.Len(t, upserted, 2)
	first := upserted[0]
	assert.Equal(t, "2108.00001v1", first.ID)
	assert.Equal(t, "2108.00001", first.Key)
	assert.Equal(t, "First line. Second line.", first.Abstract)
	assert.Equal(t, "https://github.com/example/repo", first.RepoURL)
	assert.Equal(t, "https://arxiv.paperswithcode.com/api/v0/papers/2108.00001v1", first.CodeURL)
	assert.Equal(t, "#", upserted[1].RepoURL)

	mocks.runRepo.AssertExpectations(t)
	mocks.renderer.AssertExpectations(t)
}

func TestCrawlService_Crawl_AllConfiguredKeywords(t *testing.T) {
	service, mocks := setupCrawlService(t)
	ctx := context.Background()

	// Keywords crawl in sorted order when none are requested.
	mocks.feedConnector.On("Search", ctx, mock.MatchedBy(func(q *feeds.SearchQuery) bool {
		return q.Keyword == "Change Detection"
	})).Return([]*feeds.FeedEntry{}, nil)
	mocks.feedConnector.On("Search", ctx, mock.MatchedBy(func(q *feeds.SearchQuery) bool {
		return q.Keyword == "Survey"
	})).Return([]*feeds.FeedEntry{}, nil)

	mocks.runRepo.On("Create", ctx, mock.AnythingOfType("*papers.CrawlRun")).Return(nil)
	mocks.runRepo.On("UpdateByID", ctx, mock.AnythingOfType("*papers.CrawlRun")).Return(nil)
	mocks.archiveStore.On("Merge", mock.Anything).Return(reports.Snapshot{}, nil)
	mocks.renderer.On("Render", mock.Anything).Return(nil)
	mocks.paperRepo.On("CountByKeyword", ctx).Return(map[string]int64{}, nil)

	run, err := service.Crawl(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Change Detection", "Survey"}, run.Keywords)
	assert.Equal(t, 0, run.PaperCount)
}

func TestCrawlService_Crawl_UnknownKeyword(t *testing.T) {
	service, mocks := setupCrawlService(t)

	run, err := service.Crawl(context.Background(), []string{"No Such Topic"})
	assert.Nil(t, run)
	assert.ErrorContains(t, err, "unknown keyword")
	mocks.runRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrawlService_Crawl_FeedFailure(t *testing.T) {
	service, mocks := setupCrawlService(t)
	ctx := context.Background()

	mocks.feedConnector.On("Search", ctx, mock.Anything).Return(nil, fmt.Errorf("upstream unavailable"))
	mocks.runRepo.On("Create", ctx, mock.AnythingOfType("*papers.CrawlRun")).Return(nil)
	mocks.runRepo.On("UpdateByID", ctx, mock.MatchedBy(func(r *papers.CrawlRun) bool {
		return r.Status == papers.CrawlStatusFailed && r.ErrorMessage != ""
	})).Return(nil)

	run, err := service.Crawl(ctx, []string{"Survey"})
	require.Error(t, err)
	require.NotNil(t, run)
	assert.Equal(t, papers.CrawlStatusFailed, run.Status)
	assert.Contains(t, run.ErrorMessage, "upstream unavailable")

	mocks.runRepo.AssertExpectations(t)
	mocks.archiveStore.AssertNotCalled(t, "Merge", mock.Anything)
}

func TestCrawlService_Crawl_UpsertFailureSkipsPaper(t *testing.T) {
	service, mocks := setupCrawlService(t)
	ctx := context.Background()

	entries := []*feeds.FeedEntry{testFeedEntry("2108.00001v1"), testFeedEntry("2108.00002v1")}
	mocks.feedConnector.On("Search", ctx, mock.Anything).Return(entries, nil)
	mocks.codeConnector.On("ResolveRepo", ctx, mock.Anything).Return("#", nil)

	mocks.paperRepo.On("Upsert", ctx, mock.Anything).Return(false, fmt.Errorf("validation failed")).Once()
	mocks.paperRepo.On("Upsert", ctx, mock.Anything).Return(true, nil).Once()

	mocks.runRepo.On("Create", ctx, mock.Anything).Return(nil)
	mocks.runRepo.On("UpdateByID", ctx, mock.Anything).Return(nil)
	mocks.archiveStore.On("Merge", mock.MatchedBy(func(list []*papers.Paper) bool {
		return len(list) == 1
	})).Return(reports.Snapshot{}, nil)
	mocks.renderer.On("Render", mock.Anything).Return(nil)
	mocks.paperRepo.On("CountByKeyword", ctx).Return(map[string]int64{}, nil)

	run, err := service.Crawl(ctx, []string{"Survey"})
	require.NoError(t, err)
	assert.Equal(t, 1, run.PaperCount)
	assert.Equal(t, 1, run.NewCount)
}

func TestCrawlService_Crawl_CodeLookupFailureUsesSentinel(t *testing.T) {
	service, mocks := setupCrawlService(t)
	ctx := context.Background()

	mocks.feedConnector.On("Search", ctx, mock.Anything).Return([]*feeds.FeedEntry{testFeedEntry("2108.00001v1")}, nil)
	mocks.codeConnector.On("ResolveRepo", ctx, "2108.00001v1").Return("#", fmt.Errorf("connection refused"))

	mocks.paperRepo.On("Upsert", ctx, mock.MatchedBy(func(p *papers.Paper) bool {
		return p.RepoURL == "#"
	})).Return(true, nil)

	mocks.runRepo.On("Create", ctx, mock.Anything).Return(nil)
	mocks.runRepo.On("UpdateByID", ctx, mock.Anything).Return(nil)
	mocks.archiveStore.On("Merge", mock.Anything).Return(reports.Snapshot{}, nil)
	mocks.renderer.On("Render", mock.Anything).Return(nil)
	mocks.paperRepo.On("CountByKeyword", ctx).Return(map[string]int64{}, nil)

	run, err := service.Crawl(ctx, []string{"Survey"})
	require.NoError(t, err)
	assert.Equal(t, 1, run.PaperCount)
	mocks.paperRepo.AssertExpectations(t)
}

func TestCrawlService_ListRuns_DefaultLimit(t *testing.T) {
	service, mocks := setupCrawlService(t)
	ctx := context.Background()

	mocks.runRepo.On("List", ctx, 20).Return([]*papers.CrawlRun{}, nil)

	_, err := service.ListRuns(ctx, 0)
	require.NoError(t, err)
	mocks.runRepo.AssertExpectations(t)
}
