// Package instance - random instance generation.
//
// Generation is deterministic by seed: the same GenerateConfig and seed yield
// identical instances on every platform. seed==0 selects a fixed default seed,
// so there is no time-based randomness anywhere.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; do not share one across
// goroutines.
package instance

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/knapsack"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// ErrBadConfig indicates a GenerateConfig with a non-positive bound.
var ErrBadConfig = errors.New("instance: invalid generate config")

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// GenerateConfig bounds the random instances produced by Generate.
type GenerateConfig struct {
	Tests       int // instances per category
	MaxItems    int // upper bound on n (category 1) and the fixed n (category 2)
	MaxCapacity int // fixed capacity (category 1) and upper bound on it (category 2)
	MaxWeight   int // item weights are drawn from [1, MaxWeight]
	MaxValue    int // item values are drawn from [1, MaxValue]
}

// DefaultGenerateConfig returns 20 tests per category with up to 50 items,
// capacity 25, weights up to 15 and values up to 30.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Tests:       20,
		MaxItems:    50,
		MaxCapacity: 25,
		MaxWeight:   15,
		MaxValue:    30,
	}
}

func (c GenerateConfig) validate() error {
	if c.Tests < 1 || c.MaxItems < 1 || c.MaxCapacity < 1 || c.MaxWeight < 1 || c.MaxValue < 1 {
		return errors.Wrapf(ErrBadConfig, "%+v", c)
	}

	return nil
}

// Random draws one instance with n items and the given capacity; weights are in
// [1, maxWeight] and integral values in [1, maxValue].
func Random(rng *rand.Rand, n, capacity, maxWeight, maxValue int) knapsack.Instance {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{
			Weight: rng.Intn(maxWeight) + 1,
			Value:  float64(rng.Intn(maxValue) + 1),
		}
	}

	return knapsack.Instance{Capacity: capacity, Items: items}
}

// Generate produces two benchmark categories:
//   - category 1 varies n in [1, MaxItems] with the capacity fixed at MaxCapacity;
//   - category 2 fixes n = MaxItems and varies the capacity in [1, MaxCapacity].
//
// Both categories are interleaved on the same stream, one instance of each per
// test index.
func Generate(cfg GenerateConfig, rng *rand.Rand) (category1, category2 []knapsack.Instance, err error) {
	if err = cfg.validate(); err != nil {
		return nil, nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	category1 = make([]knapsack.Instance, 0, cfg.Tests)
	category2 = make([]knapsack.Instance, 0, cfg.Tests)
	for i := 0; i < cfg.Tests; i++ {
		n := rng.Intn(cfg.MaxItems) + 1
		category1 = append(category1, Random(rng, n, cfg.MaxCapacity, cfg.MaxWeight, cfg.MaxValue))

		capacity := rng.Intn(cfg.MaxCapacity) + 1
		category2 = append(category2, Random(rng, cfg.MaxItems, capacity, cfg.MaxWeight, cfg.MaxValue))
	}

	return category1, category2, nil
}

// WriteCategories stores the two categories under dir/category1 and
// dir/category2 as test_case_<i>.txt (1-based). It returns the written paths.
func WriteCategories(dir string, category1, category2 []knapsack.Instance) ([]string, error) {
	var (
		paths []string
		sets  = []struct {
			name  string
			items []knapsack.Instance
		}{
			{"category1", category1},
			{"category2", category2},
		}
	)
	for _, set := range sets {
		sub := filepath.Join(dir, set.name)
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating %s", sub)
		}
		for i, inst := range set.items {
			path := filepath.Join(sub, fmt.Sprintf("test_case_%d.txt", i+1))
			if err := WriteFile(path, inst); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
	}

	return paths, nil
}
