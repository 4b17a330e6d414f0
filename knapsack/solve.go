// Package knapsack - unified dispatcher for the four strategies.
//
// Solve validates Options and routes to SolveDP, SolveBacktrack,
// SolveBranchAndBound or SolveFractional. Each strategy still validates its own
// (capacity, items) input, so calling a strategy directly is equivalent.
package knapsack

// Solve runs the strategy selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm, ErrUnsupportedBound, and the input sentinels
// (ErrInvalidCapacity, ErrInvalidItem).
//
// Complexity: per strategy; see SolveDP, SolveBacktrack, SolveBranchAndBound
// and SolveFractional.
func Solve(capacity int, items []Item, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case DynamicProgramming:
		return SolveDP(capacity, items)
	case Backtracking:
		return SolveBacktrack(capacity, items)
	case BranchAndBound:
		return SolveBranchAndBound(capacity, items, opts)
	case Fractional:
		return SolveFractional(capacity, items)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// SolveInstance is Solve on an Instance.
func SolveInstance(inst Instance, opts Options) (Result, error) {
	return Solve(inst.Capacity, inst.Items, opts)
}
