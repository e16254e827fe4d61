package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
	explored prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citygraph_route_queries_total",
			Help: "Route queries by outcome",
		}, []string{"result"}), // "hit", "miss", "no_path", "not_found", "error"

		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "citygraph_route_query_duration_seconds",
			Help:    "Route query duration in seconds, cache hits included",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),

		explored: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "citygraph_route_explored_nodes",
			Help:    "Nodes settled per computed route",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}
