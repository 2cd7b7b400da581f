package feeds

import (
	"context"
)

// NoRepoSentinel is reported when no official code repository is known.
const NoRepoSentinel = "#"

// FeedConnector is an interface for fetching paper listings from the arXiv API.
type FeedConnector interface {
	// Search fetches up to query.MaxResults entries matching the query
	// expression, newest submissions first. Results are fetched in pages
	// with a politeness delay between page requests.
	Search(ctx context.Context, query *SearchQuery) ([]*FeedEntry, error)
}

// CodeConnector is an interface for resolving the official code repository
// of a paper. The current implementation uses the PapersWithCode API, but
// this may be replaced with another code index in the future.
type CodeConnector interface {
	// ResolveRepo returns the official repository URL for the given short
	// arXiv identifier, or the "#" sentinel when none is known.
	ResolveRepo(ctx context.Context, paperID string) (string, error)
}
