//go:build unit
// +build unit

package reports

import (
	"testing"
	"time"

	"arxiv_daily_service/internal/domain/papers"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	published := time.Date(2021, 8, 20, 14, 30, 0, 0, time.UTC)
	updated := time.Date(2021, 8, 21, 9, 0, 0, 0, time.UTC)

	paper := &papers.Paper{
		ID:              "2108.09112v1",
		Key:             "2108.09112",
		Title:           "A Paper",
		URL:             "http://arxiv.org/abs/2108.09112v1",
		Abstract:        "An abstract.",
		Authors:         []string{"Ada Lovelace", "Alan Turing"},
		PrimaryCategory: "cs.CV",
		Comments:        "10 pages",
		PublishedAt:     published,
		UpdatedAt:       updated,
		Keyword:         "Survey",
		CodeURL:         "https://arxiv.paperswithcode.com/api/v0/papers/2108.09112v1",
		RepoURL:         "#",
	}

	record := NewRecord(paper)

	assert.Equal(t, "2108.09112v1", record.PaperID)
	assert.Equal(t, "2108.09112", record.PaperKey)
	assert.Equal(t, "2021-08-20", record.PublishTime)
	assert.Equal(t, "2021-08-21", record.UpdateTime)
	assert.Equal(t, paper.Authors, record.PaperAuthors)
	assert.Equal(t, "10 pages", record.Comments)
}

func TestRecord_HasRepo(t *testing.T) {
	assert.False(t, Record{RepoURL: ""}.HasRepo())
	assert.False(t, Record{RepoURL: "#"}.HasRepo())
	assert.True(t, Record{RepoURL: "https://github.com/example/repo"}.HasRepo())
}

func TestRecord_PublishedAt(t *testing.T) {
	record := Record{PublishTime: "2021-08-20"}
	assert.Equal(t, time.Date(2021, 8, 20, 0, 0, 0, 0, time.UTC), record.PublishedAt())

	malformed := Record{PublishTime: "20.08.2021"}
	assert.True(t, malformed.PublishedAt().IsZero())
}
