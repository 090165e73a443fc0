package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the product recommendations HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the product recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Recommendations served, split by similarity-table vs fallback source
	RecommendRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total recommendation requests served",
	}, []string{"source"})

	RecommendClicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_clicks_total",
		Help: "Total recommendation clicks recorded",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequestsTotal,
		RecommendClicksTotal,
	)
}
