package models

import (
	"encoding/json"
	"fmt"
	"time"

	"arxiv_daily_service/internal/domain/papers"
)

// PaperModel is the GORM database model for papers (infrastructure concern).
// A paper is stored once per keyword it was found under; the composite
// primary key (keyword, paper_key) is the upsert identity.
type PaperModel struct {
	Keyword         string    `gorm:"primaryKey;type:varchar(255)"`
	PaperKey        string    `gorm:"primaryKey;type:varchar(64)"`
	PaperID         string    `gorm:"not null;type:varchar(64)"`
	Title           string    `gorm:"not null;type:text"`
	URL             string    `gorm:"not null;type:varchar(255)"`
	Abstract        string    `gorm:"not null;type:text"`
	Authors         string    `gorm:"not null;type:text"`
	PrimaryCategory string    `gorm:"not null;index;type:varchar(50)"`
	Comments        string    `gorm:"type:text"`
	PublishedAt     time.Time `gorm:"not null;index"`
	// The arXiv revision date, not a row timestamp; GORM must not touch it.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	CodeURL         string    `gorm:"not null;type:varchar(255)"`
	RepoURL         string    `gorm:"not null;type:varchar(255)"`
	CrawledAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PaperModel) TableName() string {
	return "papers"
}

// ToDomain converts the GORM model to a domain entity
func (m *PaperModel) ToDomain() (*papers.Paper, error) {
	var authors []string
	if err := json.Unmarshal([]byte(m.Authors), &authors); err != nil {
		return nil, fmt.Errorf("failed to decode authors for paper %s: %w", m.PaperKey, err)
	}

	return &papers.Paper{
		ID:              m.PaperID,
		Key:             m.PaperKey,
		Title:           m.Title,
		URL:             m.URL,
		Abstract:        m.Abstract,
		Authors:         authors,
		PrimaryCategory: m.PrimaryCategory,
		Comments:        m.Comments,
		PublishedAt:     m.PublishedAt,
		UpdatedAt:       m.UpdatedAt,
		Keyword:         m.Keyword,
		CodeURL:         m.CodeURL,
		RepoURL:         m.RepoURL,
		CrawledAt:       m.CrawledAt,
	}, nil
}

// FromDomain converts a domain entity to the GORM model
func (m *PaperModel) FromDomain(p *papers.Paper) error {
	authors, err := json.Marshal(p.Authors)
	if err != nil {
		return fmt.Errorf("failed to encode authors for paper %s: %w", p.Key, err)
	}

	m.Keyword = p.Keyword
	m.PaperKey = p.Key
	m.PaperID = p.ID
	m.Title = p.Title
	m.URL = p.URL
	m.Abstract = p.Abstract
	m.Authors = string(authors)
	m.PrimaryCategory = p.PrimaryCategory
	m.Comments = p.Comments
	m.PublishedAt = p.PublishedAt
	m.UpdatedAt = p.UpdatedAt
	m.CodeURL = p.CodeURL
	m.RepoURL = p.RepoURL
	m.CrawledAt = p.CrawledAt
	return nil
}
