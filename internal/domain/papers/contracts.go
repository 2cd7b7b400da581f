package papers

import (
	"context"
)

// PaperRepository defines the interface for Paper-related storage operations
type PaperRepository interface {
	// Upsert inserts a Paper or replaces the stored row with the same
	// (keyword, key) identity. It reports whether a new row was created.
	Upsert(ctx context.Context, paper *Paper) (bool, error)
	// List lists Papers in the database with optional filter
	List(ctx context.Context, query *PaperQuery) ([]*Paper, error)
	// GetByKey retrieves the most recently crawled Paper with the given versionless key
	GetByKey(ctx context.Context, key string) (*Paper, error)
	// DeleteByKey deletes all stored rows for the given versionless key
	DeleteByKey(ctx context.Context, key string) error
	// CountByKeyword returns the number of stored papers per keyword
	CountByKeyword(ctx context.Context) (map[string]int64, error)
}

// CrawlRunRepository defines the interface for crawl history storage
type CrawlRunRepository interface {
	Create(ctx context.Context, run *CrawlRun) error
	UpdateByID(ctx context.Context, run *CrawlRun) error
	// List returns runs ordered by start time descending, at most limit rows.
	List(ctx context.Context, limit int) ([]*CrawlRun, error)
}

// PaperMetadataService defines methods for querying and pruning stored papers.
type PaperMetadataService interface {
	// List retrieves stored papers considering a query filter when set.
	// It returns a slice of Paper and any error encountered during the retrieval.
	List(ctx context.Context, query *PaperQuery) ([]*Paper, error)

	// GetByKey retrieves a paper by its versionless arXiv key.
	GetByKey(ctx context.Context, key string) (*Paper, error)

	// DeleteByKey deletes all stored rows for a versionless arXiv key.
	DeleteByKey(ctx context.Context, key string) error
}

// CrawlService defines methods for running crawls and inspecting their history.
type CrawlService interface {
	// Crawl fetches papers for the given keywords (all configured keywords
	// when the slice is empty), stores them, updates the JSON archive and
	// re-renders the HTML report. It returns the recorded run.
	Crawl(ctx context.Context, keywords []string) (*CrawlRun, error)

	// ListRuns returns the most recent crawl runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*CrawlRun, error)
}

// ScheduleService drives periodic crawls from a cron expression.
type ScheduleService interface {
	// Start begins scheduling crawls. It returns immediately; crawls run on
	// the schedule until Stop is called or the context is cancelled.
	Start(ctx context.Context) error

	// Stop halts scheduling and waits for an in-flight crawl to finish.
	Stop()
}
