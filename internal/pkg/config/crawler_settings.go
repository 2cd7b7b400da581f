package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default endpoints of the external paper services
const (
	DefaultFeedBaseURL = "https://export.arxiv.org"
	DefaultCodeBaseURL = "https://arxiv.paperswithcode.com"
)

// CrawlerSettings holds configuration settings for the arXiv crawler, including
// the keyword-to-query map and the pacing of the paged feed requests.
type CrawlerSettings struct {
	Keywords              map[string]string `mapstructure:"keywords" validate:"required,min=1"`
	MaxResultsPerKeyword  int               `mapstructure:"max_results_per_keyword" validate:"required,min=1,max=2000"`
	PageSize              int               `mapstructure:"page_size" validate:"required,min=1,max=2000"`
	PageDelaySeconds      int               `mapstructure:"page_delay_seconds" validate:"min=0,max=60"`
	MaxRetries            int               `mapstructure:"max_retries" validate:"min=0,max=10"`
	RequestTimeoutSeconds int               `mapstructure:"request_timeout_seconds" validate:"min=0,max=300"`
	FeedBaseURL           string            `mapstructure:"feed_base_url" validate:"required,url"`
	CodeBaseURL           string            `mapstructure:"code_base_url" validate:"required,url"`
}

// Validate checks that all fields in CrawlerSettings are valid
func (s *CrawlerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CrawlerSettings: %w", err)
	}

	for keyword, query := range s.Keywords {
		if keyword == "" {
			return fmt.Errorf("keyword names must not be empty")
		}
		if query == "" {
			return fmt.Errorf("query expression for keyword %q must not be empty", keyword)
		}
	}

	if s.PageSize > s.MaxResultsPerKeyword {
		s.PageSize = s.MaxResultsPerKeyword
	}

	return nil
}
