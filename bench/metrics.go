package bench

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metric label names and the values of OutcomeLabel.
const (
	AlgorithmLabel = "algorithm"
	OutcomeLabel   = "outcome"

	OutcomeOK      = "ok"
	OutcomeSkipped = "skipped"
	OutcomeError   = "error"
)

// Metrics holds the collectors a Runner reports to.
type Metrics struct {
	duration *prometheus.HistogramVec
	solves   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg (if non-nil).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "knapsack",
				Name:      "solve_duration_seconds",
				Help:      "Wall-clock duration of a single solve call.",
				// 1µs .. ~4s
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{AlgorithmLabel},
		),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "knapsack",
				Name:      "solves_total",
				Help:      "Solve calls by algorithm and outcome.",
			},
			[]string{AlgorithmLabel, OutcomeLabel},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.duration, m.solves} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering metrics")
		}
	}

	return m, nil
}

func (m *Metrics) observe(ms Measurement) {
	algo := ms.Algorithm.String()
	switch {
	case ms.Skipped:
		m.solves.WithLabelValues(algo, OutcomeSkipped).Inc()
	case ms.Err != nil:
		m.solves.WithLabelValues(algo, OutcomeError).Inc()
	default:
		m.solves.WithLabelValues(algo, OutcomeOK).Inc()
		m.duration.WithLabelValues(algo).Observe(ms.Elapsed.Seconds())
	}
}
