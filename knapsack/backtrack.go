package knapsack

// btFrame is one level of the explicit backtracking stack.
type btFrame struct {
	weight int     // accumulated weight of the decided prefix
	value  float64 // accumulated value of the decided prefix
	stage  uint8   // 0: include next, 1: exclude next, 2: exhausted
}

const (
	stageInclude uint8 = iota
	stageExclude
	stageDone
)

// SolveBacktrack solves the 0/1 knapsack by exhaustive depth-first enumeration of
// every include/exclude assignment. There is no pruning beyond skipping include
// branches whose item does not fit; it is a correctness oracle and a worst-case
// baseline, not a solver for large n.
//
// The traversal uses an explicit stack of depth n+1 instead of recursion, so
// large item counts cannot exhaust the call stack. The visiting order is the
// recursive one: at each level the include branch is explored before the
// exclude branch, and the best value is replaced only on strict improvement at
// a complete assignment, so the first optimum in that order wins.
//
// Errors: ErrInvalidCapacity, ErrInvalidItem.
//
// Time complexity:   O(2ⁿ)
// Memory complexity: O(n)
func SolveBacktrack(capacity int, items []Item) (Result, error) {
	if err := validate(capacity, items); err != nil {
		return Result{}, err
	}
	n := len(items)

	var (
		best     float64
		bestPath = make([]bool, n) // all-exclude is always feasible with value 0
		path     = make([]bool, n) // decisions of the current prefix
		stack    = make([]btFrame, 1, n+1)
	)

	for len(stack) > 0 {
		level := len(stack) - 1
		top := stack[level]

		// Complete assignment: compare and unwind.
		if level == n {
			if top.value > best {
				best = top.value
				copy(bestPath, path)
			}
			stack = stack[:level]

			continue
		}

		switch top.stage {
		case stageInclude:
			stack[level].stage = stageExclude
			it := items[level]
			if it.Weight <= capacity-top.weight {
				path[level] = true
				stack = append(stack, btFrame{weight: top.weight + it.Weight, value: top.value + it.Value})
			}
		case stageExclude:
			stack[level].stage = stageDone
			path[level] = false
			stack = append(stack, btFrame{weight: top.weight, value: top.value})
		default:
			stack = stack[:level]
		}
	}

	take := make([]float64, n)
	for i, in := range bestPath {
		if in {
			take[i] = 1
		}
	}

	return Result{Value: round1e9(best), Take: take}, nil
}
