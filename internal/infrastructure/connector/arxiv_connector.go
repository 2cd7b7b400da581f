package connector

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"arxiv_daily_service/internal/domain/feeds"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"

	"resty.dev/v3"
)

// atomFeed mirrors the subset of the arXiv Atom response the crawler needs.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string       `xml:"id"`
	Title           string       `xml:"title"`
	Summary         string       `xml:"summary"`
	Published       string       `xml:"published"`
	Updated         string       `xml:"updated"`
	Comment         string       `xml:"comment"`
	Authors         []atomAuthor `xml:"author"`
	PrimaryCategory atomCategory `xml:"primary_category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type arxivFeedConnector struct {
	client   *resty.Client
	settings *config.CrawlerSettings
	logger   logger.Logger
}

// NewArxivFeedConnector creates a FeedConnector backed by the arXiv export
// API. Requests are paged, throttled and retried according to the crawler
// settings.
func NewArxivFeedConnector(settings *config.CrawlerSettings, logger logger.Logger) (feeds.FeedConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid crawler settings: %w", err)
	}

	client := resty.New().
		SetBaseURL(settings.FeedBaseURL).
		SetTimeout(time.Duration(settings.RequestTimeoutSeconds) * time.Second).
		SetRetryCount(settings.MaxRetries).
		SetRetryWaitTime(time.Duration(settings.PageDelaySeconds) * time.Second)

	return &arxivFeedConnector{
		client:   client,
		settings: settings,
		logger:   logger,
	}, nil
}

// Search fetches entries matching the query, newest submissions first.
func (c *arxivFeedConnector) Search(ctx context.Context, query *feeds.SearchQuery) ([]*feeds.FeedEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search query: %w", err)
	}

	var entries []*feeds.FeedEntry
	for start := 0; start < query.MaxResults; start += c.settings.PageSize {
		if start > 0 {
			if err := c.pause(ctx); err != nil {
				return nil, err
			}
		}

		pageSize := c.settings.PageSize
		if remaining := query.MaxResults - start; remaining < pageSize {
			pageSize = remaining
		}

		page, err := c.fetchPage(ctx, query.Expression, start, pageSize)
		if err != nil {
			return nil, err
		}

		entries = append(entries, page...)
		c.logger.Debug("Fetched feed page for keyword ", query.Keyword, " start ", start, " entries ", len(page))

		// A short page means the feed is exhausted.
		if len(page) < pageSize {
			break
		}
	}

	return entries, nil
}

func (c *arxivFeedConnector) fetchPage(ctx context.Context, expression string, start, maxResults int) ([]*feeds.FeedEntry, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_query": expression,
			"sortBy":       "submittedDate",
			"sortOrder":    "descending",
			"start":        strconv.Itoa(start),
			"max_results":  strconv.Itoa(maxResults),
		}).
		Get("/api/query")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed page: %w", err)
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("feed request failed with status %d", res.StatusCode())
	}

	var feed atomFeed
	if err := xml.Unmarshal(res.Bytes(), &feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	entries := make([]*feeds.FeedEntry, 0, len(feed.Entries))
	for _, raw := range feed.Entries {
		entry, err := raw.toDomain()
		if err != nil {
			c.logger.Warn("Skipping malformed feed entry ", raw.ID, ": ", err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// pause waits the configured politeness delay between page requests.
func (c *arxivFeedConnector) pause(ctx context.Context) error {
	delay := time.Duration(c.settings.PageDelaySeconds) * time.Second
	if delay == 0 {
		return nil
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *atomEntry) toDomain() (*feeds.FeedEntry, error) {
	published, err := time.Parse(time.RFC3339, e.Published)
	if err != nil {
		return nil, fmt.Errorf("invalid published time %q: %w", e.Published, err)
	}

	updated, err := time.Parse(time.RFC3339, e.Updated)
	if err != nil {
		return nil, fmt.Errorf("invalid updated time %q: %w", e.Updated, err)
	}

	authors := make([]string, 0, len(e.Authors))
	for _, author := range e.Authors {
		if author.Name != "" {
			authors = append(authors, author.Name)
		}
	}

	return &feeds.FeedEntry{
		ID:              e.ID,
		Title:           e.Title,
		Summary:         e.Summary,
		Authors:         authors,
		PrimaryCategory: e.PrimaryCategory.Term,
		Comment:         e.Comment,
		Published:       published,
		Updated:         updated,
	}, nil
}
