// Command knapsack solves and benchmarks knapsack instances.
//
//	knapsack solve  tests/category1/test_case_1.txt
//	knapsack bench  tests/ --metrics-file knapsack.prom
//	knapsack gen    tests/ --seed 7
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
