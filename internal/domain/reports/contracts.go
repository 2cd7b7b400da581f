package reports

import (
	"context"

	"arxiv_daily_service/internal/domain/papers"
)

// ArchiveStore persists the keyword-keyed JSON archive (arxiv-daily.json).
type ArchiveStore interface {
	// Load reads the archive from disk. A missing file yields an empty snapshot.
	Load() (Snapshot, error)

	// Merge overlays the given papers onto the stored archive, grouped by
	// keyword and keyed by the versionless paper key, and writes the result
	// back atomically. It returns the merged snapshot.
	Merge(papers []*papers.Paper) (Snapshot, error)
}

// Renderer renders a snapshot into the HTML report (index.html).
type Renderer interface {
	Render(snapshot Snapshot) error
}

// ReportService regenerates the HTML report from the stored archive.
type ReportService interface {
	Rebuild(ctx context.Context) error
}
