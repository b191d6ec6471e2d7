package bench_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortbench/sortbench/bench"
	"github.com/sortbench/sortbench/bench/internal/testutil"
)

func TestGenerateSorted_AscendingFromZero(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 1000} {
		got, err := bench.GenerateSorted(n)
		require.NoError(t, err)
		assert.Len(t, got, n)
		testutil.AssertNonDecreasing(t, "sorted", got)
		if n > 0 {
			assert.Equal(t, 0, got[0])
			assert.Equal(t, n-1, got[n-1])
		}
	}
}

func TestGenerateReversed_DescendingToOne(t *testing.T) {
	got, err := bench.GenerateReversed(5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)

	for _, n := range []int{0, 1, 999} {
		got, err := bench.GenerateReversed(n)
		require.NoError(t, err)
		assert.Len(t, got, n)
		testutil.AssertNonIncreasing(t, "reversed", got)
	}
}

func TestGenerateRandom_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got, err := bench.GenerateRandom(5000, rng)
	require.NoError(t, err)
	assert.Len(t, got, 5000)
	for i, v := range got {
		if v < 0 || v > bench.RandomValueMax {
			t.Fatalf("got[%d] = %d, want within [0, %d]", i, v, bench.RandomValueMax)
		}
	}
}

func TestGeneratePartiallySorted_PrefixIsAscendingRun(t *testing.T) {
	// GIVEN size 10
	got, err := bench.GeneratePartiallySorted(10, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	// THEN the first half is exactly 0..4
	assert.Len(t, got, 10)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got[:5])
}

func TestGeneratePartiallySorted_OddAndTinySizes(t *testing.T) {
	tests := []struct {
		size       int
		wantPrefix []int
	}{
		{0, []int{}},
		{1, []int{}},
		{3, []int{0}},
		{11, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		got, err := bench.GeneratePartiallySorted(tt.size, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		assert.Len(t, got, tt.size)
		assert.Equal(t, tt.wantPrefix, got[:tt.size/2])
		for _, v := range got[tt.size/2:] {
			assert.True(t, v >= 0 && v <= bench.RandomValueMax)
		}
	}
}

func TestGenerators_NegativeSizeRejected(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := bench.GenerateRandom(-1, rng)
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
	_, err = bench.GenerateSorted(-1)
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
	_, err = bench.GenerateReversed(-3)
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
	_, err = bench.GeneratePartiallySorted(-2, rng)
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)

	_, err = bench.Generate(bench.DistributionSorted, -1, bench.NewPartitionedRNG(bench.NewRunKey(1)))
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
}

func TestGenerate_UnknownDistribution(t *testing.T) {
	_, err := bench.Generate("zigzag", 10, bench.NewPartitionedRNG(bench.NewRunKey(1)))
	assert.ErrorIs(t, err, bench.ErrUnknownDistribution)
}

func TestGenerateAll_ReportOrderAndSizes(t *testing.T) {
	instances, err := bench.GenerateAll(64, bench.NewPartitionedRNG(bench.NewRunKey(42)))
	require.NoError(t, err)
	require.Len(t, instances, 4)
	for i, d := range bench.Distributions() {
		assert.Equal(t, d, instances[i].Distribution)
		assert.Equal(t, 64, instances[i].Size)
		assert.Len(t, instances[i].Data, 64)
	}
}

func TestGenerateAll_DeterministicForSeed(t *testing.T) {
	// GIVEN two RNGs built from the same key
	a, err := bench.GenerateAll(200, bench.NewPartitionedRNG(bench.NewRunKey(99)))
	require.NoError(t, err)
	b, err := bench.GenerateAll(200, bench.NewPartitionedRNG(bench.NewRunKey(99)))
	require.NoError(t, err)

	// THEN every instance is identical
	assert.Equal(t, a, b)

	// AND a different key changes the random instance
	c, err := bench.GenerateAll(200, bench.NewPartitionedRNG(bench.NewRunKey(100)))
	require.NoError(t, err)
	assert.NotEqual(t, a[0].Data, c[0].Data)
}

func TestDistribution_Titles(t *testing.T) {
	assert.Equal(t, "Random Arrays", bench.DistributionRandom.Title())
	assert.Equal(t, "Sorted Arrays", bench.DistributionSorted.Title())
	assert.Equal(t, "Reversed Arrays", bench.DistributionReversed.Title())
	assert.Equal(t, "Partially Sorted Arrays", bench.DistributionPartiallySorted.Title())
	assert.Equal(t, "zigzag", bench.Distribution("zigzag").Title())
	assert.True(t, bench.IsValidDistribution("partially_sorted"))
	assert.False(t, bench.IsValidDistribution("zigzag"))
}
