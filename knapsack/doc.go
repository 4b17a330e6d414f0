// Package knapsack solves the 0/1 knapsack problem and its fractional relaxation.
//
// Given a capacity and an ordered list of items (weight, value), every solver
// returns the best achievable total value plus the share of each item it took.
//
// Strategies:
//
//	SolveDP              bottom-up dynamic programming over (item, capacity)
//	                     O(n·C) time and memory; exact, the reference result
//	SolveBacktrack       include/exclude enumeration on an explicit stack
//	                     O(2ⁿ) time, O(n) memory; exact, an oracle for small n
//	SolveBranchAndBound  best-first search ordered by an optimistic bound
//	                     O(2ⁿ) worst case; exact under DensityBound (default)
//	SolveFractional      greedy by value density, one split item at the end
//	                     O(n log n); never below the 0/1 optimum
//
// Solve dispatches on Options.Algo.
//
// Inputs:
//   - capacity ≥ 0; weights ≥ 0; values finite and ≥ 0.
//   - Items heavier than the capacity are valid and never selected.
//   - Zero-weight items are free: every strategy takes them.
//
// Errors:
//
//   - ErrInvalidCapacity      negative capacity
//   - ErrInvalidItem          negative weight, negative or non-finite value
//   - ErrUnsupportedAlgorithm unknown Options.Algo
//   - ErrUnsupportedBound     unknown Options.BoundAlgo
//   - ErrTableTooLarge        SolveDP table size overflows an int
//
// Solvers are synchronous pure functions: they never mutate the caller's items,
// keep no state between calls, perform no I/O and do not log. Concurrent calls
// are safe.
package knapsack
