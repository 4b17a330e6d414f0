package bench_test

import (
	"strings"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/knapsack"
)

var _ = Describe("Runner", func() {
	var (
		reg      *prometheus.Registry
		cfg      bench.Config
		scenario knapsack.Instance
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		cfg = bench.DefaultConfig()
		scenario = knapsack.Instance{
			Capacity: 10,
			Items: []knapsack.Item{
				{Weight: 5, Value: 10},
				{Weight: 4, Value: 40},
				{Weight: 6, Value: 30},
			},
		}
	})

	Context("with the default config", func() {
		It("runs every strategy in canonical order and agrees on the optimum", func() {
			r, err := bench.NewRunner(cfg, logr.Discard(), reg)
			Expect(err).NotTo(HaveOccurred())

			ms, err := r.Run("scenario", scenario)
			Expect(err).NotTo(HaveOccurred())
			Expect(ms).To(HaveLen(4))
			for i, a := range knapsack.Algorithms() {
				Expect(ms[i].Algorithm).To(Equal(a))
				Expect(ms[i].Instance).To(Equal("scenario"))
				Expect(ms[i].Items).To(Equal(3))
				Expect(ms[i].Capacity).To(Equal(10))
				Expect(ms[i].Skipped).To(BeFalse())
				Expect(ms[i].Err).NotTo(HaveOccurred())
				Expect(ms[i].Value).To(Equal(70.0))
			}
			Expect(bench.Check(ms)).To(Succeed())
		})

		It("counts every solve in the registry", func() {
			r, err := bench.NewRunner(cfg, logr.Discard(), reg)
			Expect(err).NotTo(HaveOccurred())
			_, err = r.Run("a", scenario)
			Expect(err).NotTo(HaveOccurred())
			_, err = r.Run("b", scenario)
			Expect(err).NotTo(HaveOccurred())

			Expect(testutil.GatherAndCount(reg, "knapsack_solves_total")).To(Equal(4))
			Expect(testutil.GatherAndCount(reg, "knapsack_solve_duration_seconds")).To(Equal(4))
		})

		It("agrees on random generated instances", func() {
			cat1, cat2, err := instance.Generate(instance.GenerateConfig{
				Tests: 5, MaxItems: 14, MaxCapacity: 30, MaxWeight: 12, MaxValue: 25,
			}, instance.NewRand(17))
			Expect(err).NotTo(HaveOccurred())

			r, err := bench.NewRunner(cfg, logr.Discard(), nil)
			Expect(err).NotTo(HaveOccurred())
			for _, inst := range append(cat1, cat2...) {
				ms, err := r.Run("generated", inst)
				Expect(err).NotTo(HaveOccurred())
				Expect(bench.Check(ms)).To(Succeed())
			}
		})
	})

	Context("when the instance is larger than the backtracking cap", func() {
		It("skips backtracking and reports it", func() {
			cfg.BacktrackMaxItems = 2
			r, err := bench.NewRunner(cfg, logr.Discard(), reg)
			Expect(err).NotTo(HaveOccurred())

			ms, err := r.Run("scenario", scenario)
			Expect(err).NotTo(HaveOccurred())
			Expect(ms[1].Algorithm).To(Equal(knapsack.Backtracking))
			Expect(ms[1].Skipped).To(BeTrue())
			Expect(ms[1].Elapsed).To(BeZero())

			Expect(testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP knapsack_solves_total Solve calls by algorithm and outcome.
# TYPE knapsack_solves_total counter
knapsack_solves_total{algorithm="backtrack",outcome="skipped"} 1
knapsack_solves_total{algorithm="bnb",outcome="ok"} 1
knapsack_solves_total{algorithm="dp",outcome="ok"} 1
knapsack_solves_total{algorithm="fractional",outcome="ok"} 1
`), "knapsack_solves_total")).To(Succeed())
		})
	})

	Context("with a restricted algorithm list", func() {
		It("runs only the listed strategies in the given order", func() {
			cfg.Algorithms = []knapsack.Algorithm{knapsack.Fractional, knapsack.BranchAndBound}
			r, err := bench.NewRunner(cfg, logr.Discard(), nil)
			Expect(err).NotTo(HaveOccurred())

			ms, err := r.Run("scenario", scenario)
			Expect(err).NotTo(HaveOccurred())
			Expect(ms).To(HaveLen(2))
			Expect(ms[0].Algorithm).To(Equal(knapsack.Fractional))
			Expect(ms[1].Algorithm).To(Equal(knapsack.BranchAndBound))
		})
	})

	Context("with invalid input", func() {
		It("rejects an unknown strategy", func() {
			cfg.Algorithms = []knapsack.Algorithm{knapsack.Algorithm(12)}
			_, err := bench.NewRunner(cfg, logr.Discard(), nil)
			Expect(err).To(MatchError(bench.ErrBadConfig))
			Expect(err).To(MatchError(knapsack.ErrUnsupportedAlgorithm))
		})

		It("rejects an unknown bound policy", func() {
			cfg.BoundAlgo = knapsack.BoundAlgo(-3)
			_, err := bench.NewRunner(cfg, logr.Discard(), nil)
			Expect(err).To(MatchError(bench.ErrBadConfig))
			Expect(err).To(MatchError(knapsack.ErrUnsupportedBound))
		})

		It("refuses a second runner on the same registry", func() {
			_, err := bench.NewRunner(cfg, logr.Discard(), reg)
			Expect(err).NotTo(HaveOccurred())
			_, err = bench.NewRunner(cfg, logr.Discard(), reg)
			Expect(err).To(HaveOccurred())
		})

		It("returns no measurements for an invalid instance", func() {
			r, err := bench.NewRunner(cfg, logr.Discard(), reg)
			Expect(err).NotTo(HaveOccurred())

			ms, err := r.Run("broken", knapsack.Instance{Capacity: -1})
			Expect(err).To(MatchError(knapsack.ErrInvalidCapacity))
			Expect(ms).To(BeEmpty())
			Expect(testutil.GatherAndCount(reg, "knapsack_solves_total")).To(BeZero())
		})
	})
})
