//go:build unit
// +build unit

package v1

import (
	"context"

	"arxiv_daily_service/internal/domain/papers"

	"github.com/stretchr/testify/mock"
)

// MockPaperMetadataService is a mock implementation of PaperMetadataService
type MockPaperMetadataService struct {
	mock.Mock
}

func (m *MockPaperMetadataService) List(ctx context.Context, query *papers.PaperQuery) ([]*papers.Paper, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*papers.Paper), args.Error(1)
}

func (m *MockPaperMetadataService) GetByKey(ctx context.Context, key string) (*papers.Paper, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*papers.Paper), args.Error(1)
}

func (m *MockPaperMetadataService) DeleteByKey(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
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
