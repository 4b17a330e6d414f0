package knapsack

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the solvers and the dispatcher.
var (
	// ErrInvalidCapacity indicates a negative knapsack capacity.
	ErrInvalidCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrInvalidItem indicates an item with a negative weight, or a value that is
	// negative, NaN or infinite. It is returned wrapped with the item index.
	ErrInvalidItem = errors.New("knapsack: invalid item")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrUnsupportedBound indicates an unknown Options.BoundAlgo.
	ErrUnsupportedBound = errors.New("knapsack: unsupported bound algorithm")

	// ErrTableTooLarge indicates that the (n+1)x(capacity+1) DP table cannot be
	// addressed with an int.
	ErrTableTooLarge = errors.New("knapsack: dp table too large")
)

// Item is a single candidate for the knapsack.
// Items are identified by their position in the input slice.
type Item struct {
	Weight int
	Value  float64
}

// Instance pairs a capacity with the ordered item list it applies to.
type Instance struct {
	Capacity int
	Items    []Item
}

// Result holds the outcome of a solver.
type Result struct {
	// Value is the best achievable value, stabilized to 1e-9.
	Value float64

	// Take[i] is the share of items[i] in the answer: 0 or 1 for the 0/1
	// strategies, anywhere in [0,1] for the fractional relaxation.
	// len(Take) == len(items).
	Take []float64
}

// Algorithm selects the strategy run by Solve.
type Algorithm int

const (
	// DynamicProgramming tabulates the exact optimum (O(n·capacity)).
	DynamicProgramming Algorithm = iota
	// Backtracking enumerates every include/exclude assignment (O(2ⁿ)).
	Backtracking
	// BranchAndBound runs a best-first search pruned by an optimistic bound.
	BranchAndBound
	// Fractional solves the divisible relaxation greedily by value density.
	Fractional
)

var algorithmNames = [...]string{
	DynamicProgramming: "dp",
	Backtracking:       "backtrack",
	BranchAndBound:     "bnb",
	Fractional:         "fractional",
}

// String returns the short strategy name used by the CLI and metric labels.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms lists every strategy in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{DynamicProgramming, Backtracking, BranchAndBound, Fractional}
}

// ParseAlgorithm maps a short strategy name (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	var name = strings.ToLower(strings.TrimSpace(s))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// BoundAlgo selects the optimistic bound used by the branch-and-bound search.
type BoundAlgo int

const (
	// DensityBound fills the remaining capacity with the remaining items taken in
	// value-density order, splitting the first one that does not fit. It equals the
	// fractional optimum of the remaining subproblem and is always admissible.
	DensityBound BoundAlgo = iota

	// InputOrderBound fills the remaining capacity with the subsequent items in
	// input order, splitting the first one that does not fit. It over-estimates
	// only when items are presented in non-increasing density.
	InputOrderBound

	// NoBound disables pruning (bound = +Inf). Testing only.
	NoBound
)

var boundNames = [...]string{
	DensityBound:    "density",
	InputOrderBound: "input",
	NoBound:         "none",
}

func (b BoundAlgo) String() string {
	if b < 0 || int(b) >= len(boundNames) {
		return fmt.Sprintf("BoundAlgo(%d)", int(b))
	}

	return boundNames[b]
}

// ParseBoundAlgo maps "density", "input" or "none" to a BoundAlgo.
func ParseBoundAlgo(s string) (BoundAlgo, error) {
	var name = strings.ToLower(strings.TrimSpace(s))
	for i, n := range boundNames {
		if n == name {
			return BoundAlgo(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBound, s)
}

// Options configures Solve and SolveBranchAndBound.
type Options struct {
	Algo      Algorithm
	BoundAlgo BoundAlgo
}

// DefaultOptions returns the exact DP strategy with the admissible density bound
// preselected for branch-and-bound.
func DefaultOptions() Options {
	return Options{
		Algo:      DynamicProgramming,
		BoundAlgo: DensityBound,
	}
}

// roundLimit is the magnitude above which x*1e9 leaves the exact-integer range
// of float64; larger values are returned as is.
const roundLimit = 1e6

// round1e9 stabilizes a value to 1e-9 so results of different summation orders
// compare equal.
func round1e9(x float64) float64 {
	if math.Abs(x) >= roundLimit {
		return x
	}

	return math.Round(x*1e9) / 1e9
}
