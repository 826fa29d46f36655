// Package metrics holds the process-wide Prometheus collectors. All
// collectors are explicitly constructed and registered against an
// injected registry; there are no ambient singletons.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// SearchMetrics records per-view request outcomes: a success/error
// counter and a result-count distribution. Safe for concurrent use.
type SearchMetrics struct {
	queries *prometheus.CounterVec
	results *prometheus.HistogramVec
}

// NewSearchMetrics creates and registers the search collectors.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	m := &SearchMetrics{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total number of search queries",
			},
			[]string{"view", "status"},
		),
		results: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_results_returned",
				Help:    "Number of results returned per search query",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
			[]string{"view", "status"},
		),
	}
	reg.MustRegister(m.queries, m.results)
	return m
}

// ObserveSuccess records one successful request for the view and the
// number of results it returned. A legitimate empty result set is a
// zero-count success, not an error.
func (m *SearchMetrics) ObserveSuccess(view string, resultCount int) {
	m.queries.WithLabelValues(view, "success").Inc()
	m.results.WithLabelValues(view, "success").Observe(float64(resultCount))
}

// ObserveError records one failed request for the view.
func (m *SearchMetrics) ObserveError(view string) {
	m.queries.WithLabelValues(view, "error").Inc()
}
