package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/instance"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve one instance with every selected strategy.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.benchConfig()
			if err != nil {
				return err
			}
			inst, err := instance.ReadFile(args[0])
			if err != nil {
				return err
			}

			runner, err := bench.NewRunner(cfg, a.log, nil)
			if err != nil {
				return err
			}
			ms, err := runner.Run(args[0], inst)
			if err != nil {
				return err
			}

			if err := printTable(a.out, []string{"STRATEGY", "VALUE", "ELAPSED", "STATUS"}, measurementRows(ms, false)); err != nil {
				return err
			}

			return bench.Check(ms)
		},
	}
}
