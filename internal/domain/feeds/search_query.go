package feeds

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// SearchQuery describes one keyword crawl against the arXiv feed
type SearchQuery struct {
	Keyword    string `validate:"required,min=1,max=255"`
	Expression string `validate:"required,min=1"`
	MaxResults int    `validate:"required,min=1,max=2000"`
}

// Validate checks that all fields in SearchQuery are valid
func (q *SearchQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// FeedEntry is one raw Atom entry returned by the arXiv API
type FeedEntry struct {
	ID              string
	Title           string
	Summary         string
	Authors         []string
	PrimaryCategory string
	Comment         string
	Published       time.Time
	Updated         time.Time
}

// ShortID extracts the short arXiv identifier (e.g. 2108.09112v1) from the
// entry ID URL (e.g. http://arxiv.org/abs/2108.09112v1).
func (e *FeedEntry) ShortID() string {
	if idx := strings.Index(e.ID, "/abs/"); idx >= 0 {
		return e.ID[idx+len("/abs/"):]
	}
	if idx := strings.LastIndex(e.ID, "/"); idx >= 0 {
		return e.ID[idx+1:]
	}
	return e.ID
}
