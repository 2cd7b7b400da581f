//go:build unit
// +build unit

package connector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"arxiv_daily_service/internal/domain/feeds"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title>ArXiv Query Results</title>
  <entry>
    <id>http://arxiv.org/abs/2108.09112v1</id>
    <title>Rethinking Salient Object Detection</title>
    <summary>We rethink salient
object detection.</summary>
    <published>2021-08-20T17:59:59Z</published>
    <updated>2021-08-21T08:00:00Z</updated>
    <author><name>Ada Lovelace</name></author>
    <author><name>Alan Turing</name></author>
    <arxiv:comment>Accepted by ICCV 2021</arxiv:comment>
    <arxiv:primary_category term="cs.CV"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2108.00001v2</id>
    <title>A Survey of Change Detection</title>
    <summary>A survey.</summary>
    <published>2021-08-01T00:00:00Z</published>
    <updated>2021-08-15T00:00:00Z</updated>
    <author><name>Grace Hopper</name></author>
    <arxiv:primary_category term="cs.LG"/>
  </entry>
</feed>`

func feedSettings(baseURL string) *config.CrawlerSettings {
	return &config.CrawlerSettings{
		Keywords:              map[string]string{"Survey": `"Survey"`},
		MaxResultsPerKeyword:  200,
		PageSize:              200,
		PageDelaySeconds:      0,
		MaxRetries:            0,
		RequestTimeoutSeconds: 5,
		FeedBaseURL:           baseURL,
		CodeBaseURL:           baseURL,
	}
}

func TestArxivFeedConnector_Search(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/query", r.URL.Path)
		gotQuery = map[string]string{
			"search_query": r.URL.Query().Get("search_query"),
			"sortBy":       r.URL.Query().Get("sortBy"),
			"sortOrder":    r.URL.Query().Get("sortOrder"),
			"start":        r.URL.Query().Get("start"),
			"max_results":  r.URL.Query().Get("max_results"),
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, atomFixture)
	}))
	defer server.Close()

	log := testutil.SetupTestLogger(t)
	feedConnector, err := NewArxivFeedConnector(feedSettings(server.URL), log)
	require.NoError(t, err)

	query := &feeds.SearchQuery{
		Keyword:    "Survey",
		Expression: `"Survey"OR"Review"`,
		MaxResults: 10,
	}
	entries, err := feedConnector.Search(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, `"Survey"OR"Review"`, gotQuery["search_query"])
	assert.Equal(t, "submittedDate", gotQuery["sortBy"])
	assert.Equal(t, "descending", gotQuery["sortOrder"])
	assert.Equal(t, "0", gotQuery["start"])
	assert.Equal(t, "10", gotQuery["max_results"])

	first := entries[0]
	assert.Equal(t, "2108.09112v1", first.ShortID())
	assert.Equal(t, "Rethinking Salient Object Detection", first.Title)
	assert.Equal(t, []string{"Ada Lovelace", "Alan Turing"}, first.Authors)
	assert.Equal(t, "cs.CV", first.PrimaryCategory)
	assert.Equal(t, "Accepted by ICCV 2021", first.Comment)
	assert.Equal(t, 2021, first.Published.Year())

	second := entries[1]
	assert.Equal(t, "2108.00001", second.ShortID()[:10])
	assert.Empty(t, second.Comment)
}

func TestArxivFeedConnector_Search_Paged(t *testing.T) {
	var starts []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		starts = append(starts, r.URL.Query().Get("start"))
		w.Header().Set("Content-Type", "application/atom+xml")
		if r.URL.Query().Get("start") == "0" {
			fmt.Fprint(w, atomFixture) // full page of 2
			return
		}
		fmt.Fprint(w, `<feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
	}))
	defer server.Close()

	settings := feedSettings(server.URL)
	settings.PageSize = 2
	settings.MaxResultsPerKeyword = 6

	log := testutil.SetupTestLogger(t)
	feedConnector, err := NewArxivFeedConnector(settings, log)
	require.NoError(t, err)

	query := &feeds.SearchQuery{Keyword: "Survey", Expression: `"Survey"`, MaxResults: 6}
	entries, err := feedConnector.Search(context.Background(), query)
	require.NoError(t, err)

	// First page is full, second page is empty and ends the stream.
	assert.Len(t, entries, 2)
	assert.Equal(t, []string{"0", "2"}, starts)
}

func TestArxivFeedConnector_Search_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	log := testutil.SetupTestLogger(t)
	feedConnector, err := NewArxivFeedConnector(feedSettings(server.URL), log)
	require.NoError(t, err)

	query := &feeds.SearchQuery{Keyword: "Survey", Expression: `"Survey"`, MaxResults: 10}
	_, err = feedConnector.Search(context.Background(), query)
	assert.Error(t, err)
}

func TestArxivFeedConnector_Search_InvalidQuery(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	feedConnector, err := NewArxivFeedConnector(feedSettings("http://localhost:0"), log)
	require.NoError(t, err)

	_, err = feedConnector.Search(context.Background(), &feeds.SearchQuery{})
	assert.Error(t, err)
}
