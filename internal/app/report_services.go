package app

import (
	"context"
	"fmt"

	"arxiv_daily_service/internal/domain/reports"
	"arxiv_daily_service/internal/pkg/logger"
)

// reportService implements the ReportService interface. It regenerates the
// HTML page from the archive already on disk, without touching the network.
type reportService struct {
	archiveStore reports.ArchiveStore
	renderer     reports.Renderer
	logger       logger.Logger
}

// NewReportService creates a new instance of reportService
func NewReportService(archiveStore reports.ArchiveStore, renderer reports.Renderer, logger logger.Logger) (reports.ReportService, error) {
	return &reportService{
		archiveStore: archiveStore,
		renderer:     renderer,
		logger:       logger,
	}, nil
}

// Rebuild re-renders the HTML report from the current JSON archive.
func (s *reportService) Rebuild(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot, err := s.archiveStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load archive: %w", err)
	}

	if err := s.renderer.Render(snapshot); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	s.logger.Info("Report rebuilt from archive with ", len(snapshot), " topics")
	return nil
}
