// Package metrics defines Prometheus metrics for the search engine and HTTP API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts searches by the phase that produced the final
	// result set: "lexical", "semantic", "filter", or "empty".
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "searches_total",
			Help:      "Total number of searches by resolution mode",
		},
		[]string{"mode"},
	)

	// SearchDuration observes end-to-end search latency.
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "careconnect",
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// LazyGateSkipsTotal counts searches where a confident lexical result
	// made the semantic phase unnecessary.
	LazyGateSkipsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "lazy_gate_skips_total",
			Help:      "Searches that skipped the vector phase on lexical confidence",
		},
	)

	// CrisisDetectionsTotal counts queries that triggered the safety override.
	CrisisDetectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "crisis_detections_total",
			Help:      "Queries that triggered the crisis safety override",
		},
	)

	// EmbeddingRequestsTotal counts embedding API calls by outcome.
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding requests",
		},
		[]string{"status"},
	)

	// EmbeddingRequestDuration observes embedding API latency.
	EmbeddingRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "careconnect",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// EmbeddingCacheTotal counts embedding cache hits and misses.
	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		SearchesTotal,
		SearchDuration,
		LazyGateSkipsTotal,
		CrisisDetectionsTotal,
		EmbeddingRequestsTotal,
		EmbeddingRequestDuration,
		EmbeddingCacheTotal,
	)
}
