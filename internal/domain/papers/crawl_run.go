package papers

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Crawl run status constants
const (
	CrawlStatusRunning   = "running"
	CrawlStatusSucceeded = "succeeded"
	CrawlStatusFailed    = "failed"
)

// CrawlRun records one execution of the crawler across a set of keywords
type CrawlRun struct {
	ID           string     `validate:"required,uuid4"`
	StartedAt    time.Time  `validate:"required"`
	FinishedAt   *time.Time `validate:"omitempty"`
	Status       string     `validate:"required,oneof=running succeeded failed"`
	Keywords     []string   `validate:"required,min=1,dive,required"`
	PaperCount   int        `validate:"min=0"`
	NewCount     int        `validate:"min=0"`
	ErrorMessage string
}

// Validate for validating the CrawlRun struct
func (r *CrawlRun) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
