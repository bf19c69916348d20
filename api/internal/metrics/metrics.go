package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hint_relay_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// AssistTotal counts model round trips by intent and outcome (ok|error).
	AssistTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hint_relay_assist_total",
		Help: "Hint and solution requests by outcome.",
	}, []string{"intent", "outcome"})

	ModelDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hint_relay_model_duration_seconds",
		Help:    "Time spent waiting on the model.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"intent"})
)
