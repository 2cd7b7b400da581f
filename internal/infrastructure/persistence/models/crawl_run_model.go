package models

import (
	"encoding/json"
	"fmt"
	"time"

	"arxiv_daily_service/internal/domain/papers"
)

// CrawlRunModel is the GORM database model for crawl history records
type CrawlRunModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	StartedAt    time.Time `gorm:"not null;index"`
	FinishedAt   *time.Time
	Status       string `gorm:"not null;type:varchar(16)"`
	Keywords     string `gorm:"not null;type:text"`
	PaperCount   int    `gorm:"not null"`
	NewCount     int    `gorm:"not null"`
	ErrorMessage string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (CrawlRunModel) TableName() string {
	return "crawl_runs"
}

// ToDomain converts the GORM model to a domain entity
func (m *CrawlRunModel) ToDomain() (*papers.CrawlRun, error) {
	var keywords []string
	if err := json.Unmarshal([]byte(m.Keywords), &keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords for run %s: %w", m.ID, err)
	}

	return &papers.CrawlRun{
		ID:           m.ID,
		StartedAt:    m.StartedAt,
		FinishedAt:   m.FinishedAt,
		Status:       m.Status,
		Keywords:     keywords,
		PaperCount:   m.PaperCount,
		NewCount:     m.NewCount,
		ErrorMessage: m.ErrorMessage,
	}, nil
}

// FromDomain converts a domain entity to the GORM model
func (m *CrawlRunModel) FromDomain(r *papers.CrawlRun) error {
	keywords, err := json.Marshal(r.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords for run %s: %w", r.ID, err)
	}

	m.ID = r.ID
	m.StartedAt = r.StartedAt
	m.FinishedAt = r.FinishedAt
	m.Status = r.Status
	m.Keywords = string(keywords)
	m.PaperCount = r.PaperCount
	m.NewCount = r.NewCount
	m.ErrorMessage = r.ErrorMessage
	return nil
}
