package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus-метрики API. Расчёты дешёвые и синхронные, поэтому
// гистограмма с суб-миллисекундными бакетами.

var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "perprisk",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Total number of API requests",
	},
	[]string{"op", "code"},
)

var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "perprisk",
		Subsystem: "api",
		Name:      "request_duration_ms",
		Help:      "Request handling time in milliseconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
	[]string{"op"},
)

var ValidationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "perprisk",
		Subsystem: "api",
		Name:      "validation_failures_total",
		Help:      "Requests rejected by position validation",
	},
	[]string{"op"},
)
