package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchEngineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediasearch",
			Name:      "engine_requests_total",
			Help:      "Total number of search engine requests",
		},
		[]string{"status"}, // "ok" / "error"
	)

	SearchEngineRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mediasearch",
			Name:      "engine_request_duration_seconds",
			Help:      "Search engine request duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediasearch",
			Name:      "search_cache_total",
			Help:      "Search response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchEngineRequestsTotal)
	prometheus.MustRegister(SearchEngineRequestDuration)
	prometheus.MustRegister(SearchCacheTotal)
	searchMetricsRegistered = true
}
