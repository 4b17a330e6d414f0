package knapsack

import (
	"cmp"
	"slices"
)

// densityOrder returns the item indices sorted by value density (value/weight),
// highest first. The sort is stable, so equal densities keep input order.
// Zero-weight items count as infinite density and come first; densities are
// compared by cross-multiplication, so no division happens here.
//
// The input slice is not touched.
//
// Complexity: O(n log n) time, O(n) space.
func densityOrder(items []Item) []int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		ia, ib := items[a], items[b]
		switch {
		case ia.Weight == 0 && ib.Weight == 0:
			return 0
		case ia.Weight == 0:
			return -1
		case ib.Weight == 0:
			return 1
		}
		// da > db  ⇔  va·wb > vb·wa  (weights are positive here)
		return cmp.Compare(ib.Value*float64(ia.Weight), ia.Value*float64(ib.Weight))
	})

	return idx
}

// SolveFractional solves the divisible relaxation of the knapsack greedily.
//
// Items are visited by non-increasing value density (stable on ties, zero-weight
// items first) and taken whole while they fit. The first item that does not fit
// contributes (remaining/weight)·value and the loop stops. By the exchange
// argument this is optimal for the relaxed problem, so the result is never below
// the 0/1 optimum.
//
// The sort works on a private index permutation; the caller's slice keeps its
// order.
//
// Errors: ErrInvalidCapacity, ErrInvalidItem.
//
// Time complexity:   O(n log n)
// Memory complexity: O(n)
func SolveFractional(capacity int, items []Item) (Result, error) {
	if err := validate(capacity, items); err != nil {
		return Result{}, err
	}

	var (
		take  = make([]float64, len(items))
		room  = capacity
		total float64
		it    Item
		share float64
	)
	for _, i := range densityOrder(items) {
		it = items[i]
		if it.Weight <= room {
			take[i] = 1
			room -= it.Weight
			total += it.Value

			continue
		}
		share = float64(room) / float64(it.Weight)
		take[i] = share
		total += float64(room) * it.Value / float64(it.Weight)

		break
	}

	return Result{Value: round1e9(total), Take: take}, nil
}
