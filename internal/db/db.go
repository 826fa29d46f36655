// Package db defines the backend-neutral contract for the document index.
package db

import (
	"context"
	"time"

	"github.com/plateful/recipe-search/internal/domain/search/query"
)

// Store is the index store facade. Consumers depend on the narrow
// sub-interfaces, not on Store itself.
type Store interface {
	Pinger
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks index connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher executes composed queries over an FT index.
type Searcher interface {
	Search(ctx context.Context, q *SearchQuery) (*SearchResult, error)
}

// SearchQuery carries a composed query to a named index.
type SearchQuery struct {
	Index string
	Query *query.Query
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit. HasScore is false when the query
// sorted by a stored field and the backend returned no relevance score.
type SearchEntry struct {
	Key      string
	Score    float64
	HasScore bool
	Fields   map[string]string
}
