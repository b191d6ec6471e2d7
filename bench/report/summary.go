package report

import (
	"fmt"
	"io"
	"math"

	"github.com/sortbench/sortbench/bench"
)

// DistributionSummary aggregates one distribution's results.
type DistributionSummary struct {
	Distribution bench.Distribution
	Fastest      []string // fastest algorithm per size, index-aligned with the table's sizes
	// At the largest size: fastest and slowest algorithms and the ratio of their means.
	// Speedup is 0 when the fastest mean is 0 (too quick to measure).
	FastestAtMax string
	SlowestAtMax string
	Speedup      float64
}

// Summarize computes per-distribution winners from a table.
// Safe for nil or empty tables (returns an empty slice).
func Summarize(table *bench.ResultTable) []DistributionSummary {
	if table == nil || len(table.Sizes) == 0 || len(table.Algorithms) == 0 {
		return []DistributionSummary{}
	}
	summaries := make([]DistributionSummary, 0, len(table.Distributions))
	for _, d := range table.Distributions {
		s := DistributionSummary{
			Distribution: d,
			Fastest:      make([]string, len(table.Sizes)),
		}
		for i := range table.Sizes {
			s.Fastest[i], _ = extremes(table, d, i)
		}
		last := len(table.Sizes) - 1
		s.FastestAtMax, s.SlowestAtMax = extremes(table, d, last)
		fast := sampleAt(table, d, s.FastestAtMax, last)
		slow := sampleAt(table, d, s.SlowestAtMax, last)
		if fast > 0 {
			s.Speedup = slow / fast
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// extremes returns the fastest and slowest algorithm at size index i.
// Ties go to the algorithm listed first.
func extremes(table *bench.ResultTable, d bench.Distribution, i int) (fastest, slowest string) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, a := range table.Algorithms {
		v := sampleAt(table, d, a, i)
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo, fastest = v, a
		}
		if v > hi {
			hi, slowest = v, a
		}
	}
	return fastest, slowest
}

func sampleAt(table *bench.ResultTable, d bench.Distribution, algorithm string, i int) float64 {
	series := table.Series(d, algorithm)
	if i >= len(series) {
		return math.NaN()
	}
	return series[i]
}

// PrintSummary writes the fastest algorithm per distribution at the largest size.
func PrintSummary(w io.Writer, summaries []DistributionSummary, largestSize int) error {
	if len(summaries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n=== Summary (size %d) ===\n", largestSize); err != nil {
		return fmt.Errorf("%w: writing summary: %v", ErrIOFailure, err)
	}
	for _, s := range summaries {
		line := fmt.Sprintf("%-25s: fastest %s", s.Distribution.Title(), s.FastestAtMax)
		if s.Speedup > 0 && s.SlowestAtMax != s.FastestAtMax {
			line += fmt.Sprintf(" (%.1fx faster than %s)", s.Speedup, s.SlowestAtMax)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("%w: writing summary: %v", ErrIOFailure, err)
		}
	}
	return nil
}
