//go:build unit
// +build unit

package app

import (
	"context"

	"arxiv_daily_service/internal/domain/feeds"
	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/domain/reports"

	"github.com/stretchr/testify/mock"
)

// MockFeedConnector is a mock implementation of FeedConnector
type MockFeedConnector struct {
	mock.Mock
}

func (m *MockFeedConnector) Search(ctx context.Context, query *feeds.SearchQuery) ([]*feeds.FeedEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feeds.FeedEntry), args.Error(1)
}

// MockCodeConnector is a mock implementation of CodeConnector
type MockCodeConnector struct {
	mock.Mock
}

func (m *MockCodeConnector) ResolveRepo(ctx context.Context, paperID string) (string, error) {
	args := m.Called(ctx, paperID)
	return args.String(0), args.Error(1)
}

// MockPaperRepository is a mock implementation of PaperRepository
type MockPaperRepository struct {
	mock.Mock
}

func (m *MockPaperRepository) Upsert(ctx context.Context, paper *papers.Paper) (bool, error) {
	args := m.Called(ctx, paper)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaperRepository) List(ctx context.Context, query *papers.PaperQuery) ([]*papers.Paper, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*papers.Paper), args.Error(1)
}

func (m *MockPaperRepository) GetByKey(ctx context.Context, key string) (*papers.Paper, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*papers.Paper), args.Error(1)
}

func (m *MockPaperRepository) DeleteByKey(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockPaperRepository) CountByKeyword(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockCrawlRunRepository is a mock implementation of CrawlRunRepository
type MockCrawlRunRepository struct {
	mock.Mock
}

func (m *MockCrawlRunRepository) Create(ctx context.Context, run *papers.CrawlRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockCrawlRunRepository) UpdateByID(ctx context.Context, run *papers.CrawlRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockCrawlRunRepository) List(ctx context.Context, limit int) ([]*papers.CrawlRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*papers.CrawlRun), args.Error(1)
}

// MockArchiveStore is a mock implementation of ArchiveStore
type MockArchiveStore struct {
	mock.Mock
}

func (m *MockArchiveStore) Load() (reports.Snapshot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(reports.Snapshot), args.Error(1)
}

func (m *MockArchiveStore) Merge(paperList []*papers.Paper) (reports.Snapshot, error) {
	args := m.Called(paperList)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(reports.Snapshot), args.Error(1)
}

// MockRenderer is a mock implementation of Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(snapshot reports.Snapshot) error {
	args := m.Called(snapshot)
	return args.Error(0)
}

// MockCrawlService is a mock implementation of CrawlService
type MockCrawlService struct {
	mock.Mock
}

func (m *MockCrawlService) Crawl(ctx context.Context, keywords []string) (*papers.CrawlRun, error) {
	args := m.Called(ctx, keywords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*papers.CrawlRun), args.Error(1)
}

func (m *MockCrawlService) ListRuns(ctx context.Context, limit int) ([]*papers.CrawlRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*papers.CrawlRun), args.Error(1)
}
