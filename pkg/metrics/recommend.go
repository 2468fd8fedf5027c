package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handlers
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_request_latency_seconds",
		Help:    "Latency of recommendation handlers",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation HTTP requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_http_requests_total",
		Help: "Total number of recommendation HTTP requests",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
	)
}
