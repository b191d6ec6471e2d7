package bench

import "fmt"

// SeriesKey identifies one line of results: an algorithm on a distribution.
type SeriesKey struct {
	Distribution Distribution
	Algorithm    string // Algorithm.Name
}

// ResultTable collects mean timings for a sweep. Each series holds one sample
// per size, index-aligned with Sizes.
type ResultTable struct {
	Sizes         []int
	Distributions []Distribution
	Algorithms    []string // display names, report order
	series        map[SeriesKey][]float64
}

// NewResultTable creates an empty table ready for recording.
func NewResultTable(distributions []Distribution, algorithms []string) *ResultTable {
	return &ResultTable{
		Sizes:         make([]int, 0),
		Distributions: distributions,
		Algorithms:    algorithms,
		series:        make(map[SeriesKey][]float64),
	}
}

// AddSize appends a tested size. Samples for that size follow via Record.
func (rt *ResultTable) AddSize(size int) {
	rt.Sizes = append(rt.Sizes, size)
}

// Record appends a timing sample to the (dist, algorithm) series.
// A series may not run ahead of Sizes.
func (rt *ResultTable) Record(dist Distribution, algorithm string, seconds float64) error {
	key := SeriesKey{Distribution: dist, Algorithm: algorithm}
	if len(rt.series[key]) >= len(rt.Sizes) {
		return fmt.Errorf("%w: series %s/%s already has %d samples for %d sizes",
			ErrInvalidArgument, dist, algorithm, len(rt.series[key]), len(rt.Sizes))
	}
	rt.series[key] = append(rt.series[key], seconds)
	return nil
}

// Series returns the samples for (dist, algorithm), or nil if none were recorded.
func (rt *ResultTable) Series(dist Distribution, algorithm string) []float64 {
	return rt.series[SeriesKey{Distribution: dist, Algorithm: algorithm}]
}

// Complete reports whether every series has one sample per size.
func (rt *ResultTable) Complete() bool {
	for _, d := range rt.Distributions {
		for _, a := range rt.Algorithms {
			if len(rt.Series(d, a)) != len(rt.Sizes) {
				return false
			}
		}
	}
	return true
}
