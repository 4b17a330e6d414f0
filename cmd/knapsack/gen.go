package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/knapsack/instance"
)

type genOptions struct {
	Seed int64
	instance.GenerateConfig
}

func (o *genOptions) AddFlags(flags *pflag.FlagSet) {
	flags.Int64Var(&o.Seed, "seed", o.Seed, "Random seed (0 selects the fixed default seed).")
	flags.IntVar(&o.Tests, "tests", o.Tests, "Instances per category.")
	flags.IntVar(&o.MaxItems, "max-items", o.MaxItems, "Largest item count.")
	flags.IntVar(&o.MaxCapacity, "max-capacity", o.MaxCapacity, "Largest capacity.")
	flags.IntVar(&o.MaxWeight, "max-weight", o.MaxWeight, "Largest item weight.")
	flags.IntVar(&o.MaxValue, "max-value", o.MaxValue, "Largest item value.")
}

func newGenCmd(a *app) *cobra.Command {
	opts := genOptions{GenerateConfig: instance.DefaultGenerateConfig()}

	cmd := &cobra.Command{
		Use:   "gen DIR",
		Short: "Generate the two benchmark categories of random instances.",
		Long:  "Generate random instances into DIR/category1 (varying item count, fixed capacity) and DIR/category2 (fixed item count, varying capacity).",
		Args:  cobra.ExactArgs(1),
	}
	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cat1, cat2, err := instance.Generate(opts.GenerateConfig, instance.NewRand(opts.Seed))
		if err != nil {
			return err
		}
		paths, err := instance.WriteCategories(args[0], cat1, cat2)
		if err != nil {
			return err
		}
		a.log.V(1).Info("instances written", "dir", args[0], "files", len(paths))

		_, err = fmt.Fprintf(a.out, "Generated %d test cases for category 1 and category 2.\n", opts.Tests)

		return err
	}

	return cmd
}
