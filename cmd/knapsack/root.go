package main

import (
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/knapsack"
)

const (
	flagConfig            = "config"
	flagAlgorithms        = "algorithms"
	flagBound             = "bound"
	flagBacktrackMaxItems = "backtrack-max-items"
	flagLogLevel          = "log-level"

	envPrefix = "KNAPSACK"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	log    logr.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
		log:    logr.Discard(),
	}

	cmd := &cobra.Command{
		Use:          "knapsack",
		Short:        "Solve and benchmark 0/1 and fractional knapsack instances.",
		Version:      "dev",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	addPersistentFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newSolveCmd(a),
		newBenchCmd(a),
		newGenCmd(a),
	)

	return cmd
}

func addPersistentFlags(flags *pflag.FlagSet) {
	def := bench.DefaultConfig()
	names := make([]string, 0, len(def.Algorithms))
	for _, algo := range def.Algorithms {
		names = append(names, algo.String())
	}

	flags.String(flagConfig, "", "Config file (yaml, toml or json) with defaults for any flag.")
	flags.StringSlice(flagAlgorithms, names, "Strategies to run: dp, backtrack, bnb, fractional.")
	flags.String(flagBound, def.BoundAlgo.String(), "Branch-and-bound bound: density, input or none.")
	flags.Int(flagBacktrackMaxItems, def.BacktrackMaxItems, "Skip backtracking above this many items (0 = no limit).")
	flags.String(flagLogLevel, "info", "Log level: debug, info, warn, error.")
}

// setup merges flags, KNAPSACK_* environment variables and the optional config
// file, in that order of precedence, then builds the logger.
func (a *app) setup(flags *pflag.FlagSet) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	if path := a.v.GetString(flagConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}
	}

	log, err := newLogger(a.errOut, a.v.GetString(flagLogLevel))
	if err != nil {
		return err
	}
	a.log = log

	return nil
}

// benchConfig builds the runner configuration from the merged settings.
func (a *app) benchConfig() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	cfg.Algorithms = cfg.Algorithms[:0]

	for _, entry := range a.v.GetStringSlice(flagAlgorithms) {
		// Environment and config files may carry a single comma-separated string.
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			algo, err := knapsack.ParseAlgorithm(name)
			if err != nil {
				return bench.Config{}, err
			}
			cfg.Algorithms = append(cfg.Algorithms, algo)
		}
	}

	bound, err := knapsack.ParseBoundAlgo(a.v.GetString(flagBound))
	if err != nil {
		return bench.Config{}, err
	}
	cfg.BoundAlgo = bound
	cfg.BacktrackMaxItems = a.v.GetInt(flagBacktrackMaxItems)

	return cfg, nil
}
