// Package knapsack — Branch-and-Bound (exact best-first search with an optimistic bound).
//
// SolveBranchAndBound explores partial assignments in best-first order: a max-priority
// queue always yields the node with the highest optimistic bound next. Nodes whose
// bound cannot beat the best value found so far are never enqueued.
//
// Rationale (succinct):
//  1. Levels follow the input order: the node at level L has decided items 0..L.
//     The root sits at level -1 (nothing decided).
//  2. Expansion of a node at level L creates an include child for item L+1 (only
//     when it fits) and an exclude child. The include child's value is compared
//     with the incumbent before the push test, so a child that fills the knapsack
//     exactly still records its value even though nothing more can be added.
//  3. A child is pushed only if bound > incumbent at push time. Queued nodes are
//     never re-pruned when the incumbent later improves; a stale node is simply
//     expanded and its children fail the push test.
//  4. Priority is an explicit "higher bound first" comparison; bounds are never
//     negated.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes; per node O(n) for the bound + O(log Q) heap work.
//   - Memory: O(Q) live nodes plus their parent chains.
//
// Governance (Options.BoundAlgo):
//
//	DensityBound    → fractional optimum of the remaining items (admissible; default).
//	InputOrderBound → greedy fill of the subsequent items in input order.
//	NoBound         → +Inf (exhaustive best-first search; testing only).
package knapsack

import (
	"container/heap"
	"math"
)

// bbNode is a partial assignment owned by the priority queue until popped.
type bbNode struct {
	level  int     // index of the last decided item (-1 at the root)
	value  float64 // accumulated value
	weight int     // accumulated weight
	bound  float64 // optimistic estimate of the best total reachable from here

	parent *bbNode // decision chain, used to rebuild the winning assignment
	took   bool    // whether items[level] was included
}

// nodePQ is a max-heap of *bbNode ordered by bound, highest first.
type nodePQ []*bbNode

func (pq nodePQ) Len() int { return len(pq) }

// Less reports whether i should be dequeued before j: higher bound wins.
func (pq nodePQ) Less(i, j int) bool { return pq[i].bound > pq[j].bound }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*bbNode)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// bbEngine holds the search data for one SolveBranchAndBound call.
type bbEngine struct {
	capacity int
	items    []Item
	policy   BoundAlgo

	// order lists item indices by non-increasing density (DensityBound only).
	order []int

	pq       nodePQ
	best     float64
	bestNode *bbNode
}

// bound returns the optimistic value reachable from nd under the engine policy.
func (e *bbEngine) bound(nd *bbNode) float64 {
	switch e.policy {
	case NoBound:
		return math.Inf(1)

	case InputOrderBound:
		if nd.weight >= e.capacity {
			return 0
		}
		var (
			room = e.capacity - nd.weight
			est  = nd.value
			j    int
			it   Item
		)
		for j = nd.level + 1; j < len(e.items); j++ {
			it = e.items[j]
			if it.Weight > room {
				est += float64(room) * it.Value / float64(it.Weight)

				break
			}
			room -= it.Weight
			est += it.Value
		}

		return est

	default: // DensityBound
		if nd.weight > e.capacity {
			return 0
		}
		var (
			room = e.capacity - nd.weight
			est  = nd.value
			it   Item
		)
		// Zero-weight items sort first and always fit, so a full knapsack
		// still collects them.
		for _, j := range e.order {
			if j <= nd.level {
				continue
			}
			it = e.items[j]
			if it.Weight > room {
				est += float64(room) * it.Value / float64(it.Weight)

				break
			}
			room -= it.Weight
			est += it.Value
		}

		return est
	}
}

// offer records an improving include child and enqueues any child whose bound
// beats the incumbent.
func (e *bbEngine) offer(child *bbNode) {
	if child.took && child.value > e.best {
		e.best = child.value
		e.bestNode = child
	}
	child.bound = e.bound(child)
	if child.bound > e.best {
		heap.Push(&e.pq, child)
	}
}

// expand generates the include and exclude children of nd.
func (e *bbEngine) expand(nd *bbNode) {
	next := nd.level + 1
	it := e.items[next]

	if it.Weight <= e.capacity-nd.weight {
		e.offer(&bbNode{
			level:  next,
			value:  nd.value + it.Value,
			weight: nd.weight + it.Weight,
			parent: nd,
			took:   true,
		})
	}
	e.offer(&bbNode{
		level:  next,
		value:  nd.value,
		weight: nd.weight,
		parent: nd,
	})
}

// run drives the queue until it empties.
func (e *bbEngine) run() {
	last := len(e.items) - 1

	root := &bbNode{level: -1}
	root.bound = e.bound(root)
	heap.Init(&e.pq)
	heap.Push(&e.pq, root)

	var nd *bbNode
	for e.pq.Len() > 0 {
		nd = heap.Pop(&e.pq).(*bbNode)
		if nd.level == last {
			continue // leaf: nothing left to decide
		}
		e.expand(nd)
	}
}

// take rebuilds the 0/1 take vector from the incumbent's decision chain.
func (e *bbEngine) take() []float64 {
	out := make([]float64, len(e.items))
	for nd := e.bestNode; nd != nil && nd.level >= 0; nd = nd.parent {
		if nd.took {
			out[nd.level] = 1
		}
	}

	return out
}

// SolveBranchAndBound solves the 0/1 knapsack exactly by best-first branch-and-bound.
// opts.BoundAlgo selects the bound policy; opts.Algo is ignored.
//
// The result is 0 for an empty item list or when no item fits.
//
// Errors: ErrInvalidCapacity, ErrInvalidItem, ErrUnsupportedBound.
func SolveBranchAndBound(capacity int, items []Item, opts Options) (Result, error) {
	if err := validate(capacity, items); err != nil {
		return Result{}, err
	}
	switch opts.BoundAlgo {
	case DensityBound, InputOrderBound, NoBound:
	default:
		return Result{}, ErrUnsupportedBound
	}

	e := bbEngine{
		capacity: capacity,
		items:    items,
		policy:   opts.BoundAlgo,
	}
	if e.policy == DensityBound {
		e.order = densityOrder(items)
	}

	e.run()

	return Result{Value: round1e9(e.best), Take: e.take()}, nil
}
