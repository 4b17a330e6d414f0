package bench

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/knapsack/knapsack"
)

// Measurement is the outcome of one strategy on one instance.
type Measurement struct {
	Instance  string
	Items     int
	Capacity  int
	Algorithm knapsack.Algorithm
	Value     float64
	Elapsed   time.Duration
	Skipped   bool
	Err       error
}

// Runner measures the configured strategies. It is not safe for concurrent use;
// running strategies one after another keeps the timings free of contention.
type Runner struct {
	cfg     Config
	log     logr.Logger
	metrics *Metrics
}

// NewRunner validates cfg and registers the runner metrics on reg. A nil reg
// keeps the metrics private to the runner.
func NewRunner(cfg Config, log logr.Logger, reg prometheus.Registerer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, log: log, metrics: m}, nil
}

// Run solves inst with every configured strategy. The instance is validated
// once up front; an invalid instance yields an error and no measurements.
func (r *Runner) Run(name string, inst knapsack.Instance) ([]Measurement, error) {
	log := r.log.WithValues("instance", name, "items", len(inst.Items), "capacity", inst.Capacity)
	if err := knapsack.Validate(inst); err != nil {
		log.Error(err, "invalid instance")

		return nil, errors.Wrapf(err, "instance %s", name)
	}

	var (
		algos = r.cfg.algorithms()
		out   = make([]Measurement, 0, len(algos))
		opts  = knapsack.DefaultOptions()
	)
	opts.BoundAlgo = r.cfg.BoundAlgo

	for _, a := range algos {
		ms := Measurement{
			Instance:  name,
			Items:     len(inst.Items),
			Capacity:  inst.Capacity,
			Algorithm: a,
		}
		if r.cfg.skip(a, inst) {
			ms.Skipped = true
			log.V(1).Info("skipping strategy", "algorithm", a.String(), "limit", r.cfg.BacktrackMaxItems)
		} else {
			opts.Algo = a
			start := time.Now()
			res, err := knapsack.Solve(inst.Capacity, inst.Items, opts)
			ms.Elapsed = time.Since(start)
			ms.Value, ms.Err = res.Value, err
			log.V(1).Info("solved", "algorithm", a.String(), "value", ms.Value, "elapsed", ms.Elapsed, "err", err)
		}
		r.metrics.observe(ms)
		out = append(out, ms)
	}

	if err := Check(out); err != nil {
		log.Error(err, "strategies disagree")
	} else {
		log.Info("instance measured", "strategies", len(out))
	}

	return out, nil
}
