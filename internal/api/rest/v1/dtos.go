package v1

import (
	"fmt"
	"time"

	"arxiv_daily_service/internal/domain/papers"

	"github.com/go-playground/validator/v10"
)

// TriggerCrawlRequest is the request body for starting a crawl. An empty
// keyword list crawls every configured keyword.
type TriggerCrawlRequest struct {
	Keywords []string `json:"keywords" validate:"omitempty,dive,min=1,max=255"`
}

// Validate checks that all fields in TriggerCrawlRequest are valid
func (r *TriggerCrawlRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// PaperResponse represents one stored paper in API responses
type PaperResponse struct {
	ID              string    `json:"id"`
	Key             string    `json:"key"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Abstract        string    `json:"abstract"`
	Authors         []string  `json:"authors"`
	PrimaryCategory string    `json:"primary_category"`
	Comments        string    `json:"comments,omitempty"`
	PublishedAt     time.Time `json:"published_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Keyword         string    `json:"keyword"`
	CodeURL         string    `json:"code_url"`
	RepoURL         string    `json:"repo_url"`
	CrawledAt       time.Time `json:"crawled_at"`
}

// NewPaperResponse maps a domain paper onto its API representation.
func NewPaperResponse(paper *papers.Paper) PaperResponse {
	return PaperResponse{
		ID:              paper.ID,
		Key:             paper.Key,
		Title:           paper.Title,
		URL:             paper.URL,
		Abstract:        paper.Abstract,
		Authors:         paper.Authors,
		PrimaryCategory: paper.PrimaryCategory,
		Comments:        paper.Comments,
		PublishedAt:     paper.PublishedAt,
		UpdatedAt:       paper.UpdatedAt,
		Keyword:         paper.Keyword,
		CodeURL:         paper.CodeURL,
		RepoURL:         paper.RepoURL,
		CrawledAt:       paper.CrawledAt,
	}
}

// CrawlRunResponse represents one crawl run in API responses
type CrawlRunResponse struct {
	ID           string     `json:"id"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	Status       string     `json:"status"`
	Keywords     []string   `json:"keywords"`
	PaperCount   int        `json:"paper_count"`
	NewCount     int        `json:"new_count"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// NewCrawlRunResponse maps a domain crawl run onto its API representation.
func NewCrawlRunResponse(run *papers.CrawlRun) CrawlRunResponse {
	return CrawlRunResponse{
		ID:           run.ID,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
		Status:       run.Status,
		Keywords:     run.Keywords,
		PaperCount:   run.PaperCount,
		NewCount:     run.NewCount,
		ErrorMessage: run.ErrorMessage,
	}
}

// ErrorResponse is the uniform error body of the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human readable confirmation message
type InfoResponse struct {
	Message string `json:"message"`
}
