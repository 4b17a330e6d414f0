package bench

import (
	"time"

	"github.com/katalvlaran/knapsack/knapsack"
)

// Summary aggregates the measurements of one strategy across instances.
type Summary struct {
	Algorithm knapsack.Algorithm
	Runs      int
	Skipped   int
	Failed    int
	Total     time.Duration
	Max       time.Duration
}

// Mean is Total/Runs, or zero when nothing ran.
func (s Summary) Mean() time.Duration {
	if s.Runs == 0 {
		return 0
	}

	return s.Total / time.Duration(s.Runs)
}

// Summarize groups ms by strategy, in the order strategies first appear.
func Summarize(ms []Measurement) []Summary {
	var (
		out   []Summary
		index = make(map[knapsack.Algorithm]int)
	)
	for _, m := range ms {
		i, ok := index[m.Algorithm]
		if !ok {
			i = len(out)
			index[m.Algorithm] = i
			out = append(out, Summary{Algorithm: m.Algorithm})
		}
		s := &out[i]
		switch {
		case m.Skipped:
			s.Skipped++
		case m.Err != nil:
			s.Failed++
		default:
			s.Runs++
			s.Total += m.Elapsed
			if m.Elapsed > s.Max {
				s.Max = m.Elapsed
			}
		}
	}

	return out
}
