// Package metrics exposes Prometheus collectors for wash cycles.
package metrics

import (
	dw "controlling_dishwasher"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "dishwasher"
	subsystem = "cycle"
)

var (
	cyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "attempts_total",
			Help:      "Cycle attempts by program and resulting status",
		},
		[]string{"program", "status"},
	)

	runMinutes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "run_minutes",
			Help:      "Nominal run time of successful cycles in minutes",
			Buckets:   []float64{15, 30, 60, 90, 120, 180},
		},
		[]string{"program"},
	)
)

// ObserveCycle records one cycle attempt.
func ObserveCycle(program dw.WashingProgram, res dw.RunResult) {
	cyclesTotal.WithLabelValues(program.String(), res.Status().String()).Inc()
	if res.Status() == dw.StatusSuccess {
		runMinutes.WithLabelValues(program.String()).Observe(float64(res.RunMinutes()))
	}
}
