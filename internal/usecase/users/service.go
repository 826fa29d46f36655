// Package users proxies username searches to the user directory.
package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/search/request"
	"github.com/plateful/recipe-search/internal/metrics"
)

// metricsView labels user-directory searches in the shared collectors.
const metricsView = "users"

// Directory is the upstream user-directory contract.
type Directory interface {
	Search(ctx context.Context, q string, skip, limit int) ([]json.RawMessage, error)
}

// Service validates and forwards user searches. Results pass through
// verbatim; this service adds no shaping of its own.
type Service struct {
	dir     Directory
	metrics *metrics.SearchMetrics
}

// New creates a user search service.
func New(dir Directory, m *metrics.SearchMetrics) *Service {
	return &Service{dir: dir, metrics: m}
}

// Search validates pagination and proxies the query to the directory.
func (s *Service) Search(ctx context.Context, q string, skip, limit int) ([]json.RawMessage, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must be non-negative, got %d", domain.ErrInvalidPagination, skip)
	}
	if limit < 1 || limit > request.MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d, got %d",
			domain.ErrInvalidPagination, request.MaxLimit, limit)
	}

	results, err := s.dir.Search(ctx, q, skip, limit)
	if err != nil {
		s.metrics.ObserveError(metricsView)
		return nil, err
	}

	s.metrics.ObserveSuccess(metricsView, len(results))
	return results, nil
}
