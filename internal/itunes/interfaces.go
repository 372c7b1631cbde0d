package itunes

import (
	"context"

	"github.com/ytget/itunes-gallery/internal/model"
)

// Searcher defines the interface for the search client.
type Searcher interface {
	// Search performs one request. The returned Response carries the request
	// URL even when err is an *InsufficientResultsError.
	Search(ctx context.Context, query model.SearchQuery) (*Response, error)
}
