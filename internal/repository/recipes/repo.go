// Package recipes is the index-backed recipe repository. It owns the
// recipe index schema and translates composed queries into backend
// searches, mapping outcomes to domain errors.
package recipes

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/plateful/recipe-search/internal/db"
	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/search/query"
	"github.com/plateful/recipe-search/internal/domain/search/result"
)

const defaultTimeout = 10 * time.Second

// Store is the backend surface the repository needs.
type Store interface {
	db.IndexManager
	db.Searcher
}

// Repo executes recipe searches against a named FT index.
type Repo struct {
	store   Store
	index   string
	prefix  string
	timeout time.Duration
}

// Option configures the repository.
type Option func(*Repo)

// WithTimeout overrides the per-search timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Repo) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates a recipe repository over the given index and key prefix.
func New(store Store, index, prefix string, opts ...Option) *Repo {
	r := &Repo{
		store:   store,
		index:   index,
		prefix:  prefix,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// indexDefinition returns the recipe index schema. The category hash
// field is indexed twice: as TAG for the exact category filter and under
// a TEXT alias so it participates in full-text scoring.
func (r *Repo) indexDefinition() *db.IndexDefinition {
	return db.NewIndex(r.index).
		Prefix(r.prefix).
		TextWeighted("recipe_name", 3).
		Text("description").
		Text("ingredients").
		Text("keywords").
		Tag("category").
		TextAlias("category", "category_text").
		Tag("visibility").
		Numeric("recipe_id").
		Numeric("user_id").
		Numeric("total_time").
		NumericSortable("created_at").
		MustBuild()
}

// EnsureIndex creates the recipe index if it does not already exist.
// Losing the creation race to another instance is not an error.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.index)
	if err != nil {
		return fmt.Errorf("check index %q: %w", r.index, err)
	}
	if exists {
		return nil
	}
	if err := r.store.CreateIndex(ctx, r.indexDefinition()); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %q: %w", r.index, err)
	}
	return nil
}

// Search executes a composed query and maps the raw entries into hits.
// Backend failures surface as ErrSearchBackendUnavailable.
func (r *Repo) Search(ctx context.Context, q *query.Query) ([]result.Hit, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.store.Search(ctx, &db.SearchQuery{Index: r.index, Query: q})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchBackendUnavailable, err)
	}

	hits := make([]result.Hit, 0, len(res.Entries))
	for i := range res.Entries {
		hits = append(hits, r.toHit(&res.Entries[i]))
	}
	return hits, nil
}

func (r *Repo) toHit(e *db.SearchEntry) result.Hit {
	var score *float64
	if e.HasScore {
		s := e.Score
		score = &s
	}

	fields := make(map[string]any, len(e.Fields))
	for k, v := range e.Fields {
		fields[k] = fieldValue(v)
	}

	return result.New(strings.TrimPrefix(e.Key, r.prefix), score, fields)
}

// fieldValue restores numeric hash values to numbers so the response
// body carries them untyped rather than as strings.
func fieldValue(v string) any {
	if v == "" {
		return v
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
