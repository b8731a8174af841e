package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Route outcomes used as the "outcome" label.
const (
	outcomeFound        = "found"
	outcomeNoPath       = "no_path"
	outcomeUnknownNode  = "unknown_node"
	outcomeInvalid      = "invalid"
	outcomeInconsistent = "inconsistent"
)

var (
	routeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "layover_route_requests_total",
		Help: "Total route requests by outcome",
	}, []string{"outcome"})

	routeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "layover_route_duration_seconds",
		Help:    "Time spent searching and reconstructing a route",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	})
)
