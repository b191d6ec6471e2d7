// Package bench provides the sort algorithms and the benchmarking harness for sortbench.
//
// # Reading Guide
//
// Start with these files to understand a benchmark run:
//   - sorts.go: the sort algorithms (insertion, merge, baseline) and Merge
//   - generator.go: input distributions (random, sorted, reversed, partially sorted)
//   - timing.go: the timing harness (mean wall-clock seconds over repetitions)
//   - runner.go: the sizes × distributions × algorithms sweep
//
// # Architecture
//
// The bench package owns the data model (Distribution, Algorithm, ResultTable)
// and the measurement loop. Presentation lives in a sub-package:
//   - bench/report/: console tables, the 2×2 chart, summaries, results export
//
// Everything runs on the calling goroutine. ResultTable and PartitionedRNG are
// NOT thread-safe.
package bench
