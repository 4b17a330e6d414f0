package knapsack

import (
	"fmt"
	"math"
)

// SolveDP solves the 0/1 knapsack exactly with bottom-up dynamic programming.
//
// Row i of the table means "using only the first i items", column j is the
// capacity still available:
//
//	t[i][j] = max(t[i-1][j], v[i-1] + t[i-1][j-w[i-1]])   if w[i-1] ≤ j
//	t[i][j] = t[i-1][j]                                   otherwise
//
// Row 0 is zero. Column 0 is zero as long as every weight is positive; a
// weightless item fits at any capacity, so it also lifts column 0. The answer
// is t[n][capacity]. The take vector is recovered by walking rows from n down
// to 1: a row whose value differs from the row above at the current column took
// that item.
//
// SolveDP is the reference result the other strategies are checked against.
//
// Errors: ErrInvalidCapacity, ErrInvalidItem, and ErrTableTooLarge when
// (n+1)·(capacity+1) overflows an int.
//
// Time complexity:   O(n · capacity)
// Memory complexity: O(n · capacity)
func SolveDP(capacity int, items []Item) (Result, error) {
	if err := validate(capacity, items); err != nil {
		return Result{}, err
	}
	n := len(items)

	// --- 1. Allocate the (n+1)x(capacity+1) table in one backing slice ---
	if capacity >= math.MaxInt/(n+1) {
		return Result{}, fmt.Errorf("%w: %d items x capacity %d", ErrTableTooLarge, n, capacity)
	}
	width := capacity + 1
	cells := make([]float64, (n+1)*width)
	table := make([][]float64, n+1)
	for i := range table {
		table[i] = cells[i*width : (i+1)*width]
	}

	// --- 2. Fill row by row ---
	for i := 1; i <= n; i++ {
		w, v := items[i-1].Weight, items[i-1].Value
		prev, cur := table[i-1], table[i]
		for j := 0; j <= capacity; j++ {
			cur[j] = prev[j]
			if w <= j {
				if cand := v + prev[j-w]; cand > cur[j] {
					cur[j] = cand
				}
			}
		}
	}

	// --- 3. Reconstruct the chosen items ---
	take := make([]float64, n)
	j := capacity
	for i := n; i >= 1; i-- {
		if table[i][j] != table[i-1][j] {
			take[i-1] = 1
			j -= items[i-1].Weight
		}
	}

	return Result{Value: round1e9(table[n][capacity]), Take: take}, nil
}
