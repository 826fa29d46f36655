package search

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/plateful/recipe-search/internal/domain/relationship"
	"github.com/plateful/recipe-search/internal/domain/search/query"
	"github.com/plateful/recipe-search/internal/domain/search/request"
	"github.com/plateful/recipe-search/internal/domain/search/result"
	"github.com/plateful/recipe-search/internal/domain/search/view"
	"github.com/plateful/recipe-search/internal/metrics"
)

// mockIndex implements the consumer interface for tests.
type mockIndex struct {
	hits      []result.Hit
	err       error
	called    bool
	lastQuery *query.Query
}

func (m *mockIndex) Search(_ context.Context, q *query.Query) ([]result.Hit, error) {
	m.called = true
	m.lastQuery = q
	return m.hits, m.err
}

// mockSocial implements the relationship contract for tests.
type mockSocial struct {
	following       relationship.Set
	saved           relationship.Set
	followingErr    error
	savedErr        error
	followingCalled bool
	savedCalled     bool
}

func (m *mockSocial) Following(_ context.Context, _ string) (relationship.Set, error) {
	m.followingCalled = true
	return m.following, m.followingErr
}

func (m *mockSocial) Saved(_ context.Context, _ string) (relationship.Set, error) {
	m.savedCalled = true
	return m.saved, m.savedErr
}

func newTestService(t *testing.T, index *mockIndex, social *mockSocial) (*Service, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(index, social, metrics.NewSearchMetrics(reg)), reg
}

func mustRequest(t *testing.T, v view.View, q string) *request.Request {
	t.Helper()
	r, err := request.New(v, q, "", 0, 0, request.DefaultLimit)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

// counterValue reads one labelled counter from the registry. Absent
// series count as zero.
func counterValue(t *testing.T, reg *prometheus.Registry, name, viewLabel, status string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, m := range fam.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["view"] == viewLabel && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
