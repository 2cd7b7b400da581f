package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"arxiv_daily_service/internal/domain/feeds"
	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/domain/reports"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// crawlService implements the CrawlService interface. It orchestrates one
// crawl: fetch feed entries per keyword, resolve code repositories, upsert
// the papers, merge them into the JSON archive and re-render the HTML page.
type crawlService struct {
	feedConnector feeds.FeedConnector
	codeConnector feeds.CodeConnector
	paperRepo     papers.PaperRepository
	runRepo       papers.CrawlRunRepository
	archiveStore  reports.ArchiveStore
	renderer      reports.Renderer
	settings      *config.CrawlerSettings
	logger        logger.Logger
}

// NewCrawlService creates a new instance of crawlService
func NewCrawlService(
	feedConnector feeds.FeedConnector,
	codeConnector feeds.CodeConnector,
	paperRepo papers.PaperRepository,
	runRepo papers.CrawlRunRepository,
	archiveStore reports.ArchiveStore,
	renderer reports.Renderer,
	settings *config.CrawlerSettings,
	logger logger.Logger,
) (papers.CrawlService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid crawler settings: %w", err)
	}

	return &crawlService{
		feedConnector: feedConnector,
		codeConnector: codeConnector,
		paperRepo:     paperRepo,
		runRepo:       runRepo,
		archiveStore:  archiveStore,
		renderer:      renderer,
		settings:      settings,
		logger:        logger,
	}, nil
}

// Crawl fetches papers for the requested keywords, stores them and refreshes
// the report artifacts. An empty keyword slice crawls every configured
// keyword. The recorded CrawlRun is returned together with any fatal error.
func (s *crawlService) Crawl(ctx context.Context, keywords []string) (*papers.CrawlRun, error) {
	selected, err := s.resolveKeywords(keywords)
	if err != nil {
		return nil, err
	}

	run := &papers.CrawlRun{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Status:    papers.CrawlStatusRunning,
		Keywords:  selected,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record crawl run: %w", err)
	}

	collected, newCount, err := s.collect(ctx, selected)
	if err != nil {
		return s.failRun(ctx, run, err)
	}

	snapshot, err := s.archiveStore.Merge(collected)
	if err != nil {
		return s.failRun(ctx, run, fmt.Errorf("failed to update archive: %w", err))
	}

	if err := s.renderer.Render(snapshot); err != nil {
		return s.failRun(ctx, run, fmt.Errorf("failed to render report: %w", err))
	}

	finishedAt := time.Now().UTC()
	run.FinishedAt = &finishedAt
	run.Status = papers.CrawlStatusSucceeded
	run.PaperCount = len(collected)
	run.NewCount = newCount
	if err := s.runRepo.UpdateByID(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to update crawl run %s: %w", run.ID, err)
	}

	s.logger.Info("Crawl ", run.ID, " finished with ", run.PaperCount, " papers (", run.NewCount, " new)")

	if totals, err := s.paperRepo.CountByKeyword(ctx); err == nil {
		for _, keyword := range selected {
			s.logger.Info("Keyword ", keyword, " now holds ", totals[keyword], " papers")
		}
	}

	return run, nil
}

// ListRuns returns the most recent crawl runs, newest first.
func (s *crawlService) ListRuns(ctx context.Context, limit int) ([]*papers.CrawlRun, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.runRepo.List(ctx, limit)
}

// resolveKeywords maps the requested keyword names onto the configured
// query expressions. Names are sorted so crawl order is deterministic.
func (s *crawlService) resolveKeywords(keywords []string) ([]string, error) {
	if len(keywords) == 0 {
		all := make([]string, 0, len(s.settings.Keywords))
		for keyword := range s.settings.Keywords {
			all = append(all, keyword)
		}
		sort.Strings(all)
		return all, nil
	}

	selected := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if _, ok := s.settings.Keywords[keyword]; !ok {
			return nil, fmt.Errorf("unknown keyword %q", keyword)
		}
		selected = append(selected, keyword)
	}
	sort.Strings(selected)
	return selected, nil
}

func (s *crawlService) collect(ctx context.Context, keywords []string) ([]*papers.Paper, int, error) {
	var collected []*papers.Paper
	newCount := 0

	for _, keyword := range keywords {
		query := &feeds.SearchQuery{
			Keyword:    keyword,
			Expression: s.settings.Keywords[keyword],
			MaxResults: s.settings.MaxResultsPerKeyword,
		}

		entries, err := s.feedConnector.Search(ctx, query)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to fetch feed for keyword %q: %w", keyword, err)
		}
		s.logger.Info("Fetched ", len(entries), " entries for keyword ", keyword)

		for _, entry := range entries {
			paper := s.buildPaper(ctx, keyword, entry)

			created, err := s.paperRepo.Upsert(ctx, paper)
			if err != nil {
				// A single malformed entry must not abort the whole crawl.
				s.logger.Warn("Skipping paper ", paper.ID, ": ", err)
				continue
			}
			if created {
				newCount++
			}
			collected = append(collected, paper)
		}
	}

	return collected, newCount, nil
}

func (s *crawlService) buildPaper(ctx context.Context, keyword string, entry *feeds.FeedEntry) *papers.Paper {
	shortID := entry.ShortID()

	repoURL, err := s.codeConnector.ResolveRepo(ctx, shortID)
	if err != nil {
		// A missing code index entry is not fatal; the sentinel marks it.
		s.logger.Warn("Code lookup failed for ", shortID, ": ", err)
		repoURL = feeds.NoRepoSentinel
	}

	return &papers.Paper{
		ID:              shortID,
		Key:             papers.KeyFromID(shortID),
		Title:           strings.TrimSpace(entry.Title),
		URL:             entry.ID,
		Abstract:        collapseWhitespace(entry.Summary),
		Authors:         entry.Authors,
		PrimaryCategory: entry.PrimaryCategory,
		Comments:        strings.TrimSpace(entry.Comment),
		PublishedAt:     entry.Published,
		UpdatedAt:       entry.Updated,
		Keyword:         keyword,
		CodeURL:         strings.TrimRight(s.settings.CodeBaseURL, "/") + "/api/v0/papers/" + shortID,
		RepoURL:         repoURL,
		CrawledAt:       time.Now().UTC(),
	}
}

func (s *crawlService) failRun(ctx context.Context, run *papers.CrawlRun, cause error) (*papers.CrawlRun, error) {
	finishedAt := time.Now().UTC()
	run.FinishedAt = &finishedAt
	run.Status = papers.CrawlStatusFailed
	run.ErrorMessage = cause.Error()

	if err := s.runRepo.UpdateByID(ctx, run); err != nil {
		s.logger.Error("Failed to record failed crawl run ", run.ID, ": ", err)
	}
	return run, cause
}

// collapseWhitespace flattens the multi-line Atom summary into a single line.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
