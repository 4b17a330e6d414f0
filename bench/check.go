package bench

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/knapsack"
)

// ErrDisagreement indicates that two strategies contradict each other on one
// instance.
var ErrDisagreement = errors.New("bench: strategies disagree")

// tolerance absorbs summation-order noise on non-integral values.
const tolerance = 1e-9

// Check verifies the measurements of a single instance:
//   - every exact strategy equals the reference (DP when present, otherwise the
//     first exact strategy that ran);
//   - the fractional relaxation is never below the reference.
//
// Skipped and failed measurements are ignored.
func Check(ms []Measurement) error {
	var (
		ref    float64
		refBy  knapsack.Algorithm
		hasRef bool
	)
	for _, m := range ms {
		if m.Skipped || m.Err != nil || m.Algorithm == knapsack.Fractional {
			continue
		}
		if !hasRef || m.Algorithm == knapsack.DynamicProgramming {
			ref, refBy, hasRef = m.Value, m.Algorithm, true
		}
	}
	if !hasRef {
		return nil
	}

	for _, m := range ms {
		if m.Skipped || m.Err != nil {
			continue
		}
		switch m.Algorithm {
		case knapsack.Fractional:
			if m.Value < ref-tolerance {
				return errors.Wrapf(ErrDisagreement, "%s: fractional %v below %s %v", m.Instance, m.Value, refBy, ref)
			}
		default:
			if math.Abs(m.Value-ref) > tolerance {
				return errors.Wrapf(ErrDisagreement, "%s: %s %v != %s %v", m.Instance, m.Algorithm, m.Value, refBy, ref)
			}
		}
	}

	return nil
}
