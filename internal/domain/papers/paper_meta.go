package papers

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"arxiv_daily_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

var versionSuffixPattern = regexp.MustCompile(`v\d+$`)

// KeyFromID derives the versionless archive key from a full arXiv
// identifier, e.g. 2108.09112v1 -> 2108.09112.
func KeyFromID(id string) string {
	return versionSuffixPattern.ReplaceAllString(id, "")
}

// Paper entity
type Paper struct {
	ID              string    `validate:"required,arxivIDValidation"`
	Key             string    `validate:"required,arxivIDValidation"`
	Title           string    `validate:"required,min=1"`
	URL             string    `validate:"required,url"`
	Abstract        string    `validate:"required"`
	Authors         []string  `validate:"required,min=1,dive,required"`
	PrimaryCategory string    `validate:"required,min=1,max=50"`
	Comments        string    `validate:"omitempty"`
	PublishedAt     time.Time `validate:"required"`
	UpdatedAt       time.Time `validate:"required"`
	Keyword         string    `validate:"required,min=1,max=255"`
	CodeURL         string    `validate:"required,url"`
	RepoURL         string    `validate:"required"`
	CrawledAt       time.Time
}

// Validate for validating the Paper struct
func (p *Paper) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("arxivIDValidation", validators.ArxivIDValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// PaperQuery is the filter used when listing stored papers
type PaperQuery struct {
	Keyword        string    `validate:"omitempty,min=1,max=255"`
	Category       string    `validate:"omitempty,min=1,max=50"`
	Title          string    `validate:"omitempty,min=1,max=255"`
	PublishedSince time.Time `validate:"omitempty"`

	SortBy    string `validate:"omitempty,oneof=published_at updated_at title crawled_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`

	Limit  int `validate:"omitempty,min=1,max=1000"`
	Offset int `validate:"omitempty,min=0"`
}

// NewPaperQuery creates a PaperQuery with sane defaults: newest papers first,
// at most 100 rows.
func NewPaperQuery() *PaperQuery {
	return &PaperQuery{
		SortBy:    "published_at",
		SortOrder: "desc",
		Limit:     100,
		Offset:    0,
	}
}

// Validate for validating the PaperQuery struct
func (q *PaperQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
