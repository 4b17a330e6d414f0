package bench_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/knapsack"
)

func measurement(a knapsack.Algorithm, value float64) bench.Measurement {
	return bench.Measurement{Instance: "case", Algorithm: a, Value: value}
}

var _ = Describe("Check", func() {
	It("accepts agreeing exact strategies and a larger relaxation", func() {
		ms := []bench.Measurement{
			measurement(knapsack.DynamicProgramming, 70),
			measurement(knapsack.Backtracking, 70),
			measurement(knapsack.BranchAndBound, 70),
			measurement(knapsack.Fractional, 72.5),
		}
		Expect(bench.Check(ms)).To(Succeed())
	})

	It("tolerates summation noise", func() {
		a, b := 0.1, 0.2
		ms := []bench.Measurement{
			measurement(knapsack.DynamicProgramming, 0.3),
			measurement(knapsack.BranchAndBound, a+b),
		}
		Expect(bench.Check(ms)).To(Succeed())
	})

	It("flags an exact strategy that differs from DP", func() {
		ms := []bench.Measurement{
			measurement(knapsack.BranchAndBound, 95),
			measurement(knapsack.DynamicProgramming, 100),
		}
		err := bench.Check(ms)
		Expect(err).To(MatchError(bench.ErrDisagreement))
		Expect(err.Error()).To(ContainSubstring("bnb"))
	})

	It("flags a relaxation below the 0/1 optimum", func() {
		ms := []bench.Measurement{
			measurement(knapsack.DynamicProgramming, 70),
			measurement(knapsack.Fractional, 69),
		}
		Expect(bench.Check(ms)).To(MatchError(bench.ErrDisagreement))
	})

	It("falls back to the first exact strategy when DP did not run", func() {
		ms := []bench.Measurement{
			measurement(knapsack.Backtracking, 10),
			measurement(knapsack.BranchAndBound, 11),
		}
		Expect(bench.Check(ms)).To(MatchError(bench.ErrDisagreement))
	})

	It("ignores skipped and failed measurements", func() {
		skipped := measurement(knapsack.Backtracking, 0)
		skipped.Skipped = true
		failed := measurement(knapsack.BranchAndBound, 0)
		failed.Err = errors.New("boom")

		ms := []bench.Measurement{measurement(knapsack.DynamicProgramming, 70), skipped, failed}
		Expect(bench.Check(ms)).To(Succeed())
		Expect(bench.Check([]bench.Measurement{measurement(knapsack.Fractional, 3)})).To(Succeed())
		Expect(bench.Check(nil)).To(Succeed())
	})
})

var _ = Describe("Summarize", func() {
	It("groups by strategy in order of first appearance", func() {
		skipped := bench.Measurement{Algorithm: knapsack.Backtracking, Skipped: true}
		failed := bench.Measurement{Algorithm: knapsack.DynamicProgramming, Err: errors.New("boom")}
		ms := []bench.Measurement{
			{Algorithm: knapsack.BranchAndBound, Elapsed: 3 * time.Millisecond},
			{Algorithm: knapsack.DynamicProgramming, Elapsed: 2 * time.Millisecond},
			skipped,
			{Algorithm: knapsack.BranchAndBound, Elapsed: 5 * time.Millisecond},
			failed,
		}

		s := bench.Summarize(ms)
		Expect(s).To(HaveLen(3))

		Expect(s[0].Algorithm).To(Equal(knapsack.BranchAndBound))
		Expect(s[0].Runs).To(Equal(2))
		Expect(s[0].Total).To(Equal(8 * time.Millisecond))
		Expect(s[0].Max).To(Equal(5 * time.Millisecond))
		Expect(s[0].Mean()).To(Equal(4 * time.Millisecond))

		Expect(s[1].Algorithm).To(Equal(knapsack.DynamicProgramming))
		Expect(s[1].Runs).To(Equal(1))
		Expect(s[1].Failed).To(Equal(1))

		Expect(s[2].Algorithm).To(Equal(knapsack.Backtracking))
		Expect(s[2].Skipped).To(Equal(1))
		Expect(s[2].Mean()).To(BeZero())
	})
})

var _ = Describe("Config", func() {
	It("defaults to every strategy with the density bound", func() {
		cfg := bench.DefaultConfig()
		Expect(cfg.Algorithms).To(Equal(knapsack.Algorithms()))
		Expect(cfg.BoundAlgo).To(Equal(knapsack.DensityBound))
		Expect(cfg.BacktrackMaxItems).To(Equal(bench.DefaultBacktrackMaxItems))
		Expect(cfg.Validate()).To(Succeed())
	})

	It("treats an empty algorithm list as valid", func() {
		Expect(bench.Config{}.Validate()).To(Succeed())
	})
})
