package app

import (
	"context"
	"fmt"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/logger"
)

// paperMetadataService implements the PaperMetadataService interface on top
// of the paper repository.
type paperMetadataService struct {
	paperRepo papers.PaperRepository
	logger    logger.Logger
}

// NewPaperMetadataService creates a new instance of paperMetadataService
func NewPaperMetadataService(paperRepo papers.PaperRepository, logger logger.Logger) (papers.PaperMetadataService, error) {
	return &paperMetadataService{
		paperRepo: paperRepo,
		logger:    logger,
	}, nil
}

// List retrieves stored papers considering a query filter when set.
func (s *paperMetadataService) List(ctx context.Context, query *papers.PaperQuery) ([]*papers.Paper, error) {
	if query == nil {
		query = papers.NewPaperQuery()
	}
	return s.paperRepo.List(ctx, query)
}

// GetByKey retrieves the most recently crawled paper for a versionless key.
func (s *paperMetadataService) GetByKey(ctx context.Context, key string) (*papers.Paper, error) {
	if key == "" {
		return nil, fmt.Errorf("paper key must not be empty")
	}
	return s.paperRepo.GetByKey(ctx, key)
}

// DeleteByKey deletes all stored rows for a versionless key.
func (s *paperMetadataService) DeleteByKey(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("paper key must not be empty")
	}

	if err := s.paperRepo.DeleteByKey(ctx, key); err != nil {
		return err
	}

	s.logger.Info("Deleted stored rows for paper key ", key)
	return nil
}
