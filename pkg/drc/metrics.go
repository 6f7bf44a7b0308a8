package drc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drc_checks_total",
			Help: "Total number of check executions",
		},
		[]string{"check", "status"},
	)

	checkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drc_check_duration_seconds",
			Help:    "Time taken by individual checks",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"check"},
	)

	violationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drc_violations_total",
			Help: "Total number of violations found",
		},
		[]string{"category", "severity"},
	)
)
