//go:build unit
// +build unit

package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery_Validate(t *testing.T) {
	query := &SearchQuery{
		Keyword:    "Salient Object Detection",
		Expression: `"Salient Object Detection"OR"Video Salient Object Detection"`,
		MaxResults: 200,
	}
	assert.NoError(t, query.Validate())

	query.Expression = ""
	assert.Error(t, query.Validate())

	query.Expression = `"Survey"`
	query.MaxResults = 0
	assert.Error(t, query.Validate())
}

func TestFeedEntry_ShortID(t *testing.T) {
	entry := &FeedEntry{ID: "http://arxiv.org/abs/2108.09112v1"}
	assert.Equal(t, "2108.09112v1", entry.ShortID())

	entry = &FeedEntry{ID: "http://arxiv.org/abs/cs/9901002v1"}
	assert.Equal(t, "cs/9901002v1", entry.ShortID())

	entry = &FeedEntry{ID: "2108.09112v1"}
	assert.Equal(t, "2108.09112v1", entry.ShortID())
}
