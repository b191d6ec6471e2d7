// Package testutil provides shared test infrastructure for sortbench.
// It consolidates ordering and permutation assertions used across the bench
// and bench/report test packages.
package testutil

import (
	"cmp"
	"math"
	"slices"
	"testing"

	"github.com/sortbench/sortbench/bench"
)

// Pair is an element carrying its original position, used for stability checks.
type Pair struct {
	Key   int
	Index int
}

// ComparePairKeys orders pairs by Key only.
func ComparePairKeys(a, b Pair) int {
	return cmp.Compare(a.Key, b.Key)
}

// PairsFromKeys tags each key with its position in keys.
func PairsFromKeys(keys []int) []Pair {
	out := make([]Pair, len(keys))
	for i, k := range keys {
		out[i] = Pair{Key: k, Index: i}
	}
	return out
}

// AssertNonDecreasing fails the test if s[i] > s[i+1] for any i.
func AssertNonDecreasing[T cmp.Ordered](t *testing.T, name string, s []T) {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			t.Errorf("%s: not non-decreasing at index %d: %v > %v", name, i, s[i-1], s[i])
			return
		}
	}
}

// AssertNonIncreasing fails the test if s[i] < s[i+1] for any i.
func AssertNonIncreasing[T cmp.Ordered](t *testing.T, name string, s []T) {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i-1] < s[i] {
			t.Errorf("%s: not non-increasing at index %d: %v < %v", name, i, s[i-1], s[i])
			return
		}
	}
}

// AssertPermutation fails the test unless got holds the same multiset as want.
func AssertPermutation[T cmp.Ordered](t *testing.T, name string, want, got []T) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: length %d, want %d", name, len(got), len(want))
		return
	}
	w := slices.Clone(want)
	g := slices.Clone(got)
	slices.Sort(w)
	slices.Sort(g)
	if !slices.Equal(w, g) {
		t.Errorf("%s: not a permutation of the input", name)
	}
}

// AssertStable fails the test if two pairs with equal keys appear out of
// their original index order.
func AssertStable(t *testing.T, name string, sorted []Pair) {
	t.Helper()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Key == sorted[i].Key && sorted[i-1].Index > sorted[i].Index {
			t.Errorf("%s: equal keys %d reordered: index %d before %d",
				name, sorted[i].Key, sorted[i-1].Index, sorted[i].Index)
			return
		}
	}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// FixedTable builds a complete ResultTable with deterministic samples:
// sample = (algorithm position + 1) * size * 1e-6 for every distribution.
func FixedTable(sizes []int) *bench.ResultTable {
	algos := bench.Algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.Name
	}
	table := bench.NewResultTable(bench.Distributions(), names)
	for _, size := range sizes {
		table.AddSize(size)
		for _, d := range table.Distributions {
			for ai, name := range names {
				_ = table.Record(d, name, float64(ai+1)*float64(size)*1e-6)
			}
		}
	}
	return table
}
