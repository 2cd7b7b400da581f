package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"arxiv_daily_service/internal/domain/feeds"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"

	"resty.dev/v3"
)

type codeLookupResponse struct {
	Official *struct {
		URL string `json:"url"`
	} `json:"official"`
}

type papersWithCodeConnector struct {
	client *resty.Client
	logger logger.Logger
}

// NewPapersWithCodeConnector creates a CodeConnector backed by the
// PapersWithCode arXiv index.
func NewPapersWithCodeConnector(settings *config.CrawlerSettings, logger logger.Logger) (feeds.CodeConnector, error) {
	client := resty.New().
		SetBaseURL(settings.CodeBaseURL).
		SetTimeout(time.Duration(settings.RequestTimeoutSeconds) * time.Second).
		SetRetryCount(settings.MaxRetries)

	return &papersWithCodeConnector{
		client: client,
		logger: logger,
	}, nil
}

// ResolveRepo returns the official repository URL for a paper, or the "#"
// sentinel when the index has no entry for it.
func (c *papersWithCodeConnector) ResolveRepo(ctx context.Context, paperID string) (string, error) {
	res, err := c.client.R().
		SetContext(ctx).
		Get("/api/v0/papers/" + paperID)
	if err != nil {
		return feeds.NoRepoSentinel, fmt.Errorf("code lookup failed for %s: %w", paperID, err)
	}
	if res.StatusCode() != 200 {
		// Unindexed papers are the common case, not an error.
		return feeds.NoRepoSentinel, nil
	}

	var lookup codeLookupResponse
	if err := json.Unmarshal(res.Bytes(), &lookup); err != nil {
		return feeds.NoRepoSentinel, fmt.Errorf("failed to decode code lookup for %s: %w", paperID, err)
	}

	if lookup.Official == nil || lookup.Official.URL == "" {
		return feeds.NoRepoSentinel, nil
	}

	return lookup.Official.URL, nil
}
