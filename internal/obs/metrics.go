package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder observes the outcome of one CGR or CMR search. Implementations
// must be safe for concurrent use since a caller may share one Recorder
// across many searches.
type Recorder interface {
	// ObserveSearch records the outcome of one completed search: which
	// algorithm ran, whether it found a route, how many hops the result
	// has (0 when none was found), and how long the search took.
	ObserveSearch(algorithm string, found bool, hops int, dur time.Duration)
}

// NoopRecorder discards every observation. It is the zero-value default
// for both cgr and cmr so the engine carries no observability cost unless
// a caller opts in via WithMetrics.
type NoopRecorder struct{}

// ObserveSearch implements Recorder by doing nothing.
func (NoopRecorder) ObserveSearch(string, bool, int, time.Duration) {}

// PromRecorder is a Recorder backed by Prometheus collectors, grounded on
// the metrics.GetMetrics() singleton pattern used throughout the ASGARD
// services (e.g. Pricilla/internal/metrics and
// internal/platform/observability): one package-scoped set of collectors
// registered once via promauto, label cardinality kept to the handful of
// dimensions a caller can reasonably distinguish by.
type PromRecorder struct {
	searchesTotal  *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	routeHops      prometheus.Gauge
}

// NewPromRecorder registers and returns a PromRecorder on reg. Passing
// nil creates the collectors without registering them anywhere, which is
// how promauto.With treats a nil Registerer.
func NewPromRecorder(reg prometheus.Registerer) *PromRecorder {
	factory := promauto.With(reg)

	return &PromRecorder{
		searchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cgr",
				Name:      "searches_total",
				Help:      "Total number of route searches performed, by algorithm and outcome.",
			},
			[]string{"algorithm", "found"},
		),
		searchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "cgr",
				Name:      "search_duration_seconds",
				Help:      "Route search wall-clock duration in seconds, by algorithm.",
				Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 16),
			},
			[]string{"algorithm"},
		),
		routeHops: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cgr",
				Name:      "route_hops",
				Help:      "Hop count of the most recently found route (searches that find none leave it unchanged).",
			},
		),
	}
}

// ObserveSearch implements Recorder.
func (r *PromRecorder) ObserveSearch(algorithm string, found bool, hops int, dur time.Duration) {
	foundLabel := "false"
	if found {
		foundLabel = "true"
	}

	r.searchesTotal.WithLabelValues(algorithm, foundLabel).Inc()
	r.searchDuration.WithLabelValues(algorithm).Observe(dur.Seconds())
	if found {
		r.routeHops.Set(float64(hops))
	}
}
