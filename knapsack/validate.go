// Package knapsack - validation shared by every solver.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) in the number of items; no allocations.
package knapsack

import (
	"fmt"
	"math"
)

// validate checks the capacity and every item before any solver starts work.
//
// Contract:
//   - capacity ≥ 0, otherwise ErrInvalidCapacity.
//   - every item has Weight ≥ 0 and a finite Value ≥ 0, otherwise ErrInvalidItem
//     wrapped with the offending index.
//   - weights above capacity are valid; such items are simply never selectable.
//
// Complexity: O(n).
func validate(capacity int, items []Item) error {
	// Stage 1: capacity.
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	// Stage 2: items.
	var (
		i  int
		it Item
	)
	for i, it = range items {
		if it.Weight < 0 {
			return fmt.Errorf("%w: item %d has negative weight %d", ErrInvalidItem, i, it.Weight)
		}
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return fmt.Errorf("%w: item %d has non-finite value %v", ErrInvalidItem, i, it.Value)
		}
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d has negative value %v", ErrInvalidItem, i, it.Value)
		}
	}

	return nil
}

// validateOptions checks the enum fields of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Algo {
	case DynamicProgramming, Backtracking, BranchAndBound, Fractional:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}
	switch opts.BoundAlgo {
	case DensityBound, InputOrderBound, NoBound:
		// ok
	default:
		return ErrUnsupportedBound
	}

	return nil
}

// Validate reports whether inst is a well-formed instance, using the same rules
// the solvers apply.
func Validate(inst Instance) error {
	return validate(inst.Capacity, inst.Items)
}
