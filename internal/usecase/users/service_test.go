package users

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/metrics"
)

type mockDirectory struct {
	results []json.RawMessage
	err     error
	called  bool
}

func (m *mockDirectory) Search(_ context.Context, _ string, _, _ int) ([]json.RawMessage, error) {
	m.called = true
	return m.results, m.err
}

func newTestService(t *testing.T) (*Service, *mockDirectory) {
	t.Helper()
	dir := &mockDirectory{}
	return New(dir, metrics.NewSearchMetrics(prometheus.NewRegistry())), dir
}

func TestSearch_Proxy(t *testing.T) {
	svc, dir := newTestService(t)
	dir.results = []json.RawMessage{json.RawMessage(`{"id":1}`)}

	results, err := svc.Search(context.Background(), "ali", 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || string(results[0]) != `{"id":1}` {
		t.Errorf("results should pass through verbatim, got %v", results)
	}
}

func TestSearch_PaginationRejectedBeforeUpstream(t *testing.T) {
	svc, dir := newTestService(t)

	cases := []struct{ skip, limit int }{
		{-1, 20},
		{0, 0},
		{0, 101},
	}
	for _, tc := range cases {
		_, err := svc.Search(context.Background(), "ali", tc.skip, tc.limit)
		if !errors.Is(err, domain.ErrInvalidPagination) {
			t.Errorf("skip=%d limit=%d: expected ErrInvalidPagination, got %v", tc.skip, tc.limit, err)
		}
	}
	if dir.called {
		t.Error("directory should not be called for invalid pagination")
	}
}

func TestSearch_UpstreamFailure(t *testing.T) {
	svc, dir := newTestService(t)
	dir.err = domain.ErrUserDirectoryUnavailable

	_, err := svc.Search(context.Background(), "ali", 0, 20)
	if !errors.Is(err, domain.ErrUserDirectoryUnavailable) {
		t.Fatalf("expected ErrUserDirectoryUnavailable, got %v", err)
	}
}
