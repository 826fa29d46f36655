// Package request defines the validated inbound search request.
package request

import (
	"fmt"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/search/view"
)

// Pagination bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Request is a validated, read-only search request. It is owned by the
// request lifetime and discarded after the response.
type Request struct {
	requestedView view.View
	query         string
	category      string
	maxTotalTime  int
	skip          int
	limit         int
}

// New validates and creates a Request. maxTotalTime <= 0 means no
// total-time filter. Pagination violations fail with ErrInvalidPagination
// before any upstream call is made.
func New(v view.View, query, category string, maxTotalTime, skip, limit int) (Request, error) {
	if !v.IsValid() {
		return Request{}, fmt.Errorf("invalid view %q", v)
	}
	if skip < 0 {
		return Request{}, fmt.Errorf("%w: skip must be non-negative, got %d", domain.ErrInvalidPagination, skip)
	}
	if limit < 1 || limit > MaxLimit {
		return Request{}, fmt.Errorf("%w: limit must be between 1 and %d, got %d",
			domain.ErrInvalidPagination, MaxLimit, limit)
	}
	if maxTotalTime < 0 {
		maxTotalTime = 0
	}

	return Request{
		requestedView: v,
		query:         query,
		category:      category,
		maxTotalTime:  maxTotalTime,
		skip:          skip,
		limit:         limit,
	}, nil
}

// View returns the requested view.
func (r *Request) View() view.View { return r.requestedView }

// Query returns the full-text query. Empty means none.
func (r *Request) Query() string { return r.query }

// Category returns the exact-match category filter. Empty means none.
func (r *Request) Category() string { return r.category }

// MaxTotalTime returns the inclusive total-time upper bound. Zero means none.
func (r *Request) MaxTotalTime() int { return r.maxTotalTime }

// Skip returns the pagination offset.
func (r *Request) Skip() int { return r.skip }

// Limit returns the pagination size.
func (r *Request) Limit() int { return r.limit }
