// Package knapsack is a small workbench for the 0/1 knapsack problem and its
// fractional relaxation: four solving strategies, a plain-text instance format,
// a random instance generator and a benchmark harness that cross-checks the
// strategies against each other.
//
// 🚀 What is inside?
//
//	• Exact strategies: dynamic programming, exhaustive backtracking and
//	  best-first branch-and-bound with selectable bounds
//	• Relaxation: greedy fractional knapsack by value density
//	• Instances: "<n> <capacity>" text files, deterministic seeded generation
//	• Benchmarks: per-strategy timings, agreement checks, Prometheus metrics
//
// Everything is organized under three packages and one command:
//
//	knapsack/       — Item, Instance, Result, Options and the four solvers
//	instance/       — parsing, formatting, file discovery and generation
//	bench/          — Runner, Measurement, Check, Summarize and metrics
//	cmd/knapsack/   — the solve, bench and gen subcommands
//
// Quick start:
//
//	items := []knapsack.Item{{Weight: 5, Value: 10}, {Weight: 4, Value: 40}, {Weight: 6, Value: 30}}
//	res, err := knapsack.Solve(10, items, knapsack.DefaultOptions())
//	// res.Value == 70, res.Take == [0 1 1]
//
// From the command line:
//
//	knapsack gen   tests/ --seed 7
//	knapsack bench tests/ --algorithms dp,bnb,fractional --metrics-file knapsack.prom
//	knapsack solve tests/category1/test_case_1.txt --bound none
package knapsack
