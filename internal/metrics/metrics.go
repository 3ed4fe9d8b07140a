// Package metrics exposes Prometheus instrumentation for computations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder tracks computation outcomes.
type Recorder struct {
	computations *prometheus.CounterVec
	errors       *prometheus.CounterVec
	weightedSum  prometheus.Histogram
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "concord_computations_total",
				Help: "Successful computations by activation function",
			},
			[]string{"activation"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "concord_computation_errors_total",
				Help: "Failed computations by error kind",
			},
			[]string{"kind"},
		),
		weightedSum: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "concord_weighted_sum",
				Help:    "Distribution of weighted sums before activation",
				Buckets: []float64{-10, -5, -2, -1, -0.5, 0, 0.25, 0.5, 0.75, 1, 2, 5, 10},
			},
		),
	}
	reg.MustRegister(r.computations, r.errors, r.weightedSum)
	return r
}

func (r *Recorder) Computed(activation string, weightedSum float64) {
	r.computations.WithLabelValues(activation).Inc()
	r.weightedSum.Observe(weightedSum)
}

func (r *Recorder) Failed(kind string) {
	r.errors.WithLabelValues(kind).Inc()
}
