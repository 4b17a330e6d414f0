package knapsack_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/knapsack"
)

// epsTiny absorbs float noise in take-vector sums.
const epsTiny = 1e-9

// scenarioItems is the reference instance: capacity 10, optimum 70 (items 1 and 2).
func scenarioItems() []knapsack.Item {
	return []knapsack.Item{
		{Weight: 5, Value: 10},
		{Weight: 4, Value: 40},
		{Weight: 6, Value: 30},
	}
}

const scenarioCapacity = 10

// newTestRand returns a seeded generator so failures are reproducible.
func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomItems draws n items with weights in [0, maxWeight] and values that are
// multiples of 0.25 in [0, 30). Quarter values sum exactly in binary, so exact
// strategies can be compared with ==. Roughly one item in ten is weightless.
func randomItems(rng *rand.Rand, n, maxWeight int) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := range items {
		w := rng.Intn(maxWeight) + 1
		if rng.Intn(10) == 0 {
			w = 0
		}
		items[i] = knapsack.Item{Weight: w, Value: float64(rng.Intn(120)) / 4}
	}

	return items
}

// densitySorted returns a copy of items ordered by value/weight, highest first
// (stable). Callers must pass positive weights only.
func densitySorted(items []knapsack.Item) []knapsack.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b knapsack.Item) int {
		da := a.Value / float64(a.Weight)
		db := b.Value / float64(b.Weight)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}

		return 0
	})

	return out
}

// exactSolvers lists every 0/1 strategy under a readable name.
func exactSolvers() map[string]func(int, []knapsack.Item) (knapsack.Result, error) {
	bnb := func(policy knapsack.BoundAlgo) func(int, []knapsack.Item) (knapsack.Result, error) {
		return func(c int, items []knapsack.Item) (knapsack.Result, error) {
			opts := knapsack.DefaultOptions()
			opts.BoundAlgo = policy

			return knapsack.SolveBranchAndBound(c, items, opts)
		}
	}

	return map[string]func(int, []knapsack.Item) (knapsack.Result, error){
		"dp":        knapsack.SolveDP,
		"backtrack": knapsack.SolveBacktrack,
		"bnb":       bnb(knapsack.DensityBound),
		"bnb/none":  bnb(knapsack.NoBound),
	}
}

// mustConsistentTake asserts that res.Take describes a feasible selection worth
// res.Value. When integral is set every share must be exactly 0 or 1.
func mustConsistentTake(t *testing.T, capacity int, items []knapsack.Item, res knapsack.Result, integral bool) {
	t.Helper()
	require.Len(t, res.Take, len(items))

	var weight, value float64
	for i, share := range res.Take {
		require.GreaterOrEqual(t, share, 0.0, "take[%d]", i)
		require.LessOrEqual(t, share, 1.0, "take[%d]", i)
		if integral {
			require.Contains(t, []float64{0, 1}, share, "take[%d] must be 0 or 1", i)
		}
		weight += share * float64(items[i].Weight)
		value += share * items[i].Value
	}
	require.LessOrEqual(t, weight, float64(capacity)+epsTiny, "selection exceeds capacity")
	require.InDelta(t, res.Value, value, epsTiny, "take vector does not sum to Value")
}
