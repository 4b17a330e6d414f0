// Package instance reads, writes and generates knapsack problem instances.
//
// File format (one instance per file):
//
//	<n> <capacity>
//	<weight> <value>
//	...                 (n item lines)
//
// Generate reproduces the two benchmark categories used to compare the
// strategies: a varying item count under a fixed capacity, and a varying
// capacity over a fixed item count. WriteCategories lays them out as
// category1/test_case_<i>.txt and category2/test_case_<i>.txt.
package instance
