package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/plateful/recipe-search/internal/domain/relationship"
	"github.com/plateful/recipe-search/internal/domain/search/query"
	"github.com/plateful/recipe-search/internal/domain/search/result"
	"github.com/plateful/recipe-search/internal/domain/viewer"
	"github.com/plateful/recipe-search/internal/metrics"
	healthuc "github.com/plateful/recipe-search/internal/usecase/health"
	searchuc "github.com/plateful/recipe-search/internal/usecase/search"
	usersuc "github.com/plateful/recipe-search/internal/usecase/users"
)

type mockIndex struct {
	hits []result.Hit
	err  error
}

func (m *mockIndex) Search(_ context.Context, _ *query.Query) ([]result.Hit, error) {
	return m.hits, m.err
}

type mockSocial struct {
	following relationship.Set
	saved     relationship.Set
	err       error
}

func (m *mockSocial) Following(_ context.Context, _ string) (relationship.Set, error) {
	return m.following, m.err
}

func (m *mockSocial) Saved(_ context.Context, _ string) (relationship.Set, error) {
	return m.saved, m.err
}

type mockDirectory struct {
	results []json.RawMessage
	err     error
}

func (m *mockDirectory) Search(_ context.Context, _ string, _, _ int) ([]json.RawMessage, error) {
	return m.results, m.err
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// mockResolver resolves every request to a fixed viewer.
type mockResolver struct {
	vc  viewer.Context
	err error
}

func (m *mockResolver) Resolve(_ string) (viewer.Context, error) {
	return m.vc, m.err
}

type testDeps struct {
	index    *mockIndex
	social   *mockSocial
	dir      *mockDirectory
	pinger   *mockPinger
	resolver *mockResolver
}

func newTestRouter(t *testing.T, deps *testDeps) chi.Router {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.NewSearchMetrics(reg)

	server := NewServer(
		searchuc.New(deps.index, deps.social, m),
		usersuc.New(deps.dir, m),
		healthuc.New(deps.pinger),
		deps.resolver,
		zap.NewNop(),
	)

	r := chi.NewRouter()
	server.Routes(r)
	return r
}

func defaultDeps() *testDeps {
	return &testDeps{
		index:    &mockIndex{},
		social:   &mockSocial{},
		dir:      &mockDirectory{},
		pinger:   &mockPinger{},
		resolver: &mockResolver{vc: viewer.Anonymous()},
	}
}

func doGet(t *testing.T, r chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}
