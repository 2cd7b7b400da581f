package reports

import (
	"time"

	"arxiv_daily_service/internal/domain/papers"
)

// DateLayout is the date format used in the JSON archive (publish_time,
// update_time fields).
const DateLayout = "2006-01-02"

// Record is one archived paper entry. The field names are the stable wire
// format of arxiv-daily.json and must not change.
type Record struct {
	PaperID         string   `json:"paper_id"`
	CodeURL         string   `json:"code_url"`
	PaperKey        string   `json:"paper_key"`
	PaperTitle      string   `json:"paper_title"`
	PaperURL        string   `json:"paper_url"`
	PaperAbstract   string   `json:"paper_abstract"`
	PaperAuthors    []string `json:"paper_authors"`
	PrimaryCategory string   `json:"primary_category"`
	PublishTime     string   `json:"publish_time"`
	UpdateTime      string   `json:"update_time"`
	Comments        string   `json:"comments"`
	RepoURL         string   `json:"repo_url"`
}

// NewRecord converts a Paper entity into its archive representation.
func NewRecord(p *papers.Paper) Record {
	return Record{
		PaperID:         p.ID,
		CodeURL:         p.CodeURL,
		PaperKey:        p.Key,
		PaperTitle:      p.Title,
		PaperURL:        p.URL,
		PaperAbstract:   p.Abstract,
		PaperAuthors:    p.Authors,
		PrimaryCategory: p.PrimaryCategory,
		PublishTime:     p.PublishedAt.Format(DateLayout),
		UpdateTime:      p.UpdatedAt.Format(DateLayout),
		Comments:        p.Comments,
		RepoURL:         p.RepoURL,
	}
}

// HasRepo reports whether an official code repository is known for the record.
func (r Record) HasRepo() bool {
	return r.RepoURL != "" && r.RepoURL != "#"
}

// PublishedAt parses the archived publish date. The zero time is returned
// for malformed entries so that sorting still works.
func (r Record) PublishedAt() time.Time {
	t, err := time.Parse(DateLayout, r.PublishTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Snapshot is the full archive state: keyword -> paper key -> record.
type Snapshot map[string]map[string]Record
