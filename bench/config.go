package bench

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/knapsack"
)

// ErrBadConfig indicates an unusable Config.
var ErrBadConfig = errors.New("bench: invalid config")

// DefaultBacktrackMaxItems keeps exhaustive enumeration under roughly 3·10⁷
// assignments.
const DefaultBacktrackMaxItems = 25

// Config selects what a Runner measures.
type Config struct {
	// Algorithms run in the given order. Empty means every strategy.
	Algorithms []knapsack.Algorithm

	// BoundAlgo is passed to branch-and-bound.
	BoundAlgo knapsack.BoundAlgo

	// BacktrackMaxItems skips backtracking on instances with more items.
	// Zero or negative disables the cap.
	BacktrackMaxItems int
}

// DefaultConfig measures all four strategies with the density bound and the
// default backtracking cap.
func DefaultConfig() Config {
	return Config{
		Algorithms:        knapsack.Algorithms(),
		BoundAlgo:         knapsack.DensityBound,
		BacktrackMaxItems: DefaultBacktrackMaxItems,
	}
}

// Validate checks that every algorithm and the bound policy are known.
func (c Config) Validate() error {
	for _, a := range c.Algorithms {
		if _, err := knapsack.ParseAlgorithm(a.String()); err != nil {
			return fmt.Errorf("%w: %w", ErrBadConfig, err)
		}
	}
	if _, err := knapsack.ParseBoundAlgo(c.BoundAlgo.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return nil
}

func (c Config) algorithms() []knapsack.Algorithm {
	if len(c.Algorithms) == 0 {
		return knapsack.Algorithms()
	}

	return c.Algorithms
}

func (c Config) skip(a knapsack.Algorithm, inst knapsack.Instance) bool {
	return a == knapsack.Backtracking && c.BacktrackMaxItems > 0 && len(inst.Items) > c.BacktrackMaxItems
}
