package bench_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/sortbench/sortbench/bench"
	"github.com/sortbench/sortbench/bench/internal/testutil"
)

func TestInsertionSort_Scenario(t *testing.T) {
	got := bench.InsertionSort([]int{5, 3, 1, 4, 2})
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, got); diff != "" {
		t.Errorf("InsertionSort mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeSort_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, bench.MergeSort([]int{}))
	assert.Equal(t, []int{7}, bench.MergeSort([]int{7}))
}

func TestMerge_Interleaves(t *testing.T) {
	got := bench.Merge([]int{1, 3, 5}, []int{2, 4, 6})
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_EmptySides(t *testing.T) {
	assert.Equal(t, []int{1, 2}, bench.Merge([]int{}, []int{1, 2}))
	assert.Equal(t, []int{1, 2}, bench.Merge([]int{1, 2}, nil))
	assert.Empty(t, bench.Merge[int](nil, nil))
}

func TestMergeFunc_TiesTakeLeftFirst(t *testing.T) {
	left := []testutil.Pair{{Key: 1, Index: 0}, {Key: 2, Index: 1}}
	right := []testutil.Pair{{Key: 1, Index: 2}, {Key: 2, Index: 3}}
	got := bench.MergeFunc(left, right, testutil.ComparePairKeys)
	want := []testutil.Pair{
		{Key: 1, Index: 0}, {Key: 1, Index: 2}, {Key: 2, Index: 1}, {Key: 2, Index: 3},
	}
	assert.Equal(t, want, got)
}

func TestAlgorithms_SortProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := make([]int, 300)
	for i := range random {
		random[i] = rng.Intn(50) // many duplicates
	}
	inputs := map[string][]int{
		"nil":        nil,
		"empty":      {},
		"single":     {42},
		"pair":       {2, 1},
		"duplicates": {3, 1, 3, 1, 2, 2},
		"negatives":  {0, -5, 7, -5, 3},
		"random":     random,
		"sorted":     {1, 2, 3, 4, 5, 6},
		"reversed":   {6, 5, 4, 3, 2, 1},
	}

	for _, algo := range bench.Algorithms() {
		for name, input := range inputs {
			t.Run(algo.Key+"/"+name, func(t *testing.T) {
				// GIVEN a snapshot of the caller's slice
				original := slices.Clone(input)

				// WHEN the algorithm sorts it
				got := algo.Sort(input)

				// THEN the output is an ordered permutation
				testutil.AssertPermutation(t, "output", original, got)
				testutil.AssertNonDecreasing(t, "output", got)

				// AND sorting again changes nothing
				assert.Equal(t, got, algo.Sort(got), "idempotence")

				// AND the caller's slice is untouched
				assert.Equal(t, original, input, "input mutated")
			})
		}
	}
}

func TestAlgorithms_SortGeneratedDistributions(t *testing.T) {
	for _, size := range []int{0, 1, 33, 500} {
		instances, err := bench.GenerateAll(size, bench.NewPartitionedRNG(bench.NewRunKey(21)))
		if err != nil {
			t.Fatal(err)
		}
		for _, inst := range instances {
			for _, algo := range bench.Algorithms() {
				name := fmt.Sprintf("%s/%s/%d", algo.Key, inst.Distribution, size)
				t.Run(name, func(t *testing.T) {
					// GIVEN a generated input
					original := slices.Clone(inst.Data)

					// WHEN it is sorted
					got := algo.Sort(inst.Data)

					// THEN the result is an ordered permutation, stable under re-sorting
					testutil.AssertPermutation(t, name, original, got)
					testutil.AssertNonDecreasing(t, name, got)
					assert.Equal(t, got, algo.Sort(got), "idempotence")
					assert.Equal(t, original, inst.Data, "input mutated")
				})
			}
		}
	}
}

func TestAlgorithms_ReturnIndependentSlice(t *testing.T) {
	for _, algo := range bench.Algorithms() {
		t.Run(algo.Key, func(t *testing.T) {
			input := []int{1, 2, 3}
			got := algo.Sort(input)
			got[0] = 99
			assert.Equal(t, []int{1, 2, 3}, input, "output must not alias input")
		})
	}
}

func TestSortFuncs_Stable(t *testing.T) {
	keys := []int{3, 1, 2, 3, 1, 2, 3, 1, 2, 0, 0, 3}
	sorters := map[string]func([]testutil.Pair, func(a, b testutil.Pair) int) []testutil.Pair{
		"insertion": bench.InsertionSortFunc[testutil.Pair],
		"merge":     bench.MergeSortFunc[testutil.Pair],
		"baseline":  bench.BaselineSortFunc[testutil.Pair],
	}
	for name, sortFn := range sorters {
		t.Run(name, func(t *testing.T) {
			pairs := testutil.PairsFromKeys(keys)
			got := sortFn(pairs, testutil.ComparePairKeys)

			sortedKeys := make([]int, len(got))
			for i, p := range got {
				sortedKeys[i] = p.Key
			}
			testutil.AssertNonDecreasing(t, name, sortedKeys)
			testutil.AssertStable(t, name, got)
			assert.Equal(t, testutil.PairsFromKeys(keys), pairs, "input mutated")
		})
	}
}

func TestSorts_GenericOverStrings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "apple"}
	want := []string{"apple", "apple", "fig", "pear"}
	assert.Equal(t, want, bench.InsertionSort(in))
	assert.Equal(t, want, bench.MergeSort(in))
	assert.Equal(t, want, bench.BaselineSort(in))
}

func TestLookupAlgorithm(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{bench.AlgorithmInsertion, "Insertion Sort", false},
		{bench.AlgorithmMerge, "Merge Sort", false},
		{bench.AlgorithmBaseline, "Baseline Sort", false},
		{"bogo", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			a, err := bench.LookupAlgorithm(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, a.Name)
		})
	}
}

func TestSelectAlgorithms_ReportOrderAndDedup(t *testing.T) {
	got, err := bench.SelectAlgorithms([]string{"baseline", "insertion", "baseline"})
	assert.NoError(t, err)
	keys := make([]string, len(got))
	for i, a := range got {
		keys[i] = a.Key
	}
	assert.Equal(t, []string{"insertion", "baseline"}, keys)

	all, err := bench.SelectAlgorithms(nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = bench.SelectAlgorithms([]string{"merge", "heap"})
	assert.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}
