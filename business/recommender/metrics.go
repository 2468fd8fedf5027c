package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_requests_total",
			Help: "Count of recommendation requests by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_catalog_items",
			Help: "Number of fragrances in the active catalog snapshot.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsTotal, CatalogSize)
}
