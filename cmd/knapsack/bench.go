package main

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/instance"
)

type benchOptions struct {
	MetricsFile string
	SummaryOnly bool
}

func (o *benchOptions) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile,
		"Write solve metrics in the Prometheus text format to this file.")
	flags.BoolVar(&o.SummaryOnly, "summary-only", o.SummaryOnly,
		"Print only the per-strategy summary table.")
}

func newBenchCmd(a *app) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench DIR|FILE...",
		Short: "Measure every selected strategy on a set of instances.",
		Long:  "Measure every selected strategy on a set of instances. Directories are searched recursively for *.txt instance files.",
		Args:  cobra.MinimumNArgs(1),
	}
	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := a.benchConfig()
		if err != nil {
			return err
		}
		paths, err := instance.Collect(args...)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return errors.New("no instance files found")
		}

		reg := prometheus.NewRegistry()
		runner, err := bench.NewRunner(cfg, a.log, reg)
		if err != nil {
			return err
		}

		var (
			all       []bench.Measurement
			conflicts int
		)
		for _, path := range paths {
			inst, err := instance.ReadFile(path)
			if err != nil {
				return err
			}
			ms, err := runner.Run(path, inst)
			if err != nil {
				return err
			}
			if bench.Check(ms) != nil {
				conflicts++
			}
			all = append(all, ms...)
		}

		if !opts.SummaryOnly {
			headers := []string{"INSTANCE", "N", "CAPACITY", "STRATEGY", "VALUE", "ELAPSED", "STATUS"}
			if err := printTable(a.out, headers, measurementRows(all, true)); err != nil {
				return err
			}
		}
		headers := []string{"STRATEGY", "RUNS", "SKIPPED", "FAILED", "MEAN", "MAX"}
		if err := printTable(a.out, headers, summaryRows(bench.Summarize(all))); err != nil {
			return err
		}

		if opts.MetricsFile != "" {
			if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
				return errors.Wrap(err, "writing metrics")
			}
		}
		if conflicts > 0 {
			return errors.Wrapf(bench.ErrDisagreement, "%d of %d instances", conflicts, len(paths))
		}

		return nil
	}

	return cmd
}
