// Package bench runs knapsack strategies over problem instances and measures
// them.
//
// A Runner invokes each configured strategy sequentially on one instance,
// records the wall-clock duration of every call, exports it as Prometheus
// metrics and logs a summary through logr. Check applies the correctness gate:
// every exact strategy must agree with dynamic programming and the fractional
// relaxation must never fall below it.
//
// The solvers cannot be interrupted, so exponential strategies are bounded by
// policy instead of by a timeout: backtracking is skipped above
// Config.BacktrackMaxItems items and reported as such.
package bench
