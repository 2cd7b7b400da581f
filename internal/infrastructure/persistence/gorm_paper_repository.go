package persistence

import (
	"context"
	"errors"
	"fmt"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/infrastructure/persistence/models"
	"arxiv_daily_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPaperRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaperRepository creates a new GORM-based PaperRepository implementation
func NewGormPaperRepository(db *gorm.DB, logger logger.Logger) (papers.PaperRepository, error) {
	return &gormPaperRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPaperRepository) Upsert(ctx context.Context, paper *papers.Paper) (bool, error) {
	// Validate domain entity (business rules)
	if err := paper.Validate(); err != nil {
		return false, fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.PaperModel{}
	if err := model.FromDomain(paper); err != nil {
		return false, err
	}

	var existing models.PaperModel
	err := r.db.WithContext(ctx).
		Where("keyword = ? AND paper_key = ?", paper.Keyword, paper.Key).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return false, fmt.Errorf("failed to create paper: %w", err)
		}
		r.logger.Debug("Stored new paper ", paper.Key, " under keyword ", paper.Keyword)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up paper: %w", err)
	}

	// The latest crawl wins: newer version, newer code link.
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return false, fmt.Errorf("failed to update paper: %w", err)
	}

	r.logger.Debug("Updated paper ", paper.Key, " under keyword ", paper.Keyword)
	return false, nil
}

func (r *gormPaperRepository) List(ctx context.Context, query *papers.PaperQuery) ([]*papers.Paper, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.PaperModel
	dbQuery := r.db.WithContext(ctx).Model(&models.PaperModel{})

	// Apply filters
	if query.Keyword != "" {
		dbQuery = dbQuery.Where("keyword = ?", query.Keyword)
	}
	if query.Category != "" {
		dbQuery = dbQuery.Where("primary_category = ?", query.Category)
	}
	if query.Title != "" {
		dbQuery = dbQuery.Where("title LIKE ?", "%"+query.Title+"%")
	}
	if !query.PublishedSince.IsZero() {
		dbQuery = dbQuery.Where("published_at >= ?", query.PublishedSince)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch papers: %w", err)
	}

	// Convert to domain models
	domainList := make([]*papers.Paper, 0, len(modelList))
	for _, model := range modelList {
		paper, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList = append(domainList, paper)
	}

	return domainList, nil
}

func (r *gormPaperRepository) GetByKey(ctx context.Context, key string) (*papers.Paper, error) {
	var model models.PaperModel
	err := r.db.WithContext(ctx).
		Where("paper_key = ?", key).
		Order("crawled_at desc").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("paper with key %s not found", key)
		}
		return nil, fmt.Errorf("failed to fetch paper: %w", err)
	}
	return model.ToDomain()
}

func (r *gormPaperRepository) DeleteByKey(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("paper_key = ?", key).Delete(&models.PaperModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete paper: %w", err)
	}

	r.logger.Info("Deleted paper rows with key ", key)
	return nil
}

func (r *gormPaperRepository) CountByKeyword(ctx context.Context) (map[string]int64, error) {
	type keywordCount struct {
		Keyword string
		Count   int64
	}

	var rows []keywordCount
	err := r.db.WithContext(ctx).
		Model(&models.PaperModel{}).
		Select("keyword, count(*) as count").
		Group("keyword").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count papers: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Keyword] = row.Count
	}
	return counts, nil
}
