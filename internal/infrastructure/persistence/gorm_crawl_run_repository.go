package persistence

import (
	"context"
	"fmt"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/infrastructure/persistence/models"
	"arxiv_daily_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCrawlRunRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCrawlRunRepository creates a new GORM-based CrawlRunRepository implementation
func NewGormCrawlRunRepository(db *gorm.DB, logger logger.Logger) (papers.CrawlRunRepository, error) {
	return &gormCrawlRunRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCrawlRunRepository) Create(ctx context.Context, run *papers.CrawlRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CrawlRunModel{}
	if err := model.FromDomain(run); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create crawl run: %w", err)
	}

	r.logger.Info("Recorded crawl run with id ", run.ID)
	return nil
}

func (r *gormCrawlRunRepository) UpdateByID(ctx context.Context, run *papers.CrawlRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CrawlRunModel{}
	if err := model.FromDomain(run); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update crawl run: %w", err)
	}

	return nil
}

func (r *gormCrawlRunRepository) List(ctx context.Context, limit int) ([]*papers.CrawlRun, error) {
	dbQuery := r.db.WithContext(ctx).
		Model(&models.CrawlRunModel{}).
		Order("started_at desc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	var modelList []*models.CrawlRunModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch crawl runs: %w", err)
	}

	runs := make([]*papers.CrawlRun, 0, len(modelList))
	for _, model := range modelList {
		run, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}
