package bench

import (
	"fmt"
	"math/rand"
)

// Distribution names the structural shape of a generated input.
type Distribution string

const (
	DistributionRandom          Distribution = "random"
	DistributionSorted          Distribution = "sorted"
	DistributionReversed        Distribution = "reversed"
	DistributionPartiallySorted Distribution = "partially_sorted"
)

// RandomValueMax is the inclusive upper bound of randomly drawn elements.
// The lower bound is 0.
const RandomValueMax = 10000

// distributions lists every distribution in report order.
var distributions = []Distribution{
	DistributionRandom,
	DistributionSorted,
	DistributionReversed,
	DistributionPartiallySorted,
}

var distributionTitles = map[Distribution]string{
	DistributionRandom:          "Random Arrays",
	DistributionSorted:          "Sorted Arrays",
	DistributionReversed:        "Reversed Arrays",
	DistributionPartiallySorted: "Partially Sorted Arrays",
}

// Distributions returns every distribution in report order.
func Distributions() []Distribution {
	out := make([]Distribution, len(distributions))
	copy(out, distributions)
	return out
}

// Title returns the human-readable heading used in tables and charts.
func (d Distribution) Title() string {
	if t, ok := distributionTitles[d]; ok {
		return t
	}
	return string(d)
}

// IsValidDistribution returns true if name is a recognized distribution.
func IsValidDistribution(name string) bool {
	_, ok := distributionTitles[Distribution(name)]
	return ok
}

// Instance is one generated input together with the descriptor that produced it.
type Instance struct {
	Distribution Distribution
	Size         int
	Data         []int
}

// === Generators ===

// GenerateRandom returns size values drawn uniformly from [0, RandomValueMax].
func GenerateRandom(size int, rng *rand.Rand) ([]int, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	out := make([]int, size)
	fillRandom(out, rng)
	return out, nil
}

// GenerateSorted returns 0..size-1 in ascending order.
func GenerateSorted(size int) ([]int, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	out := make([]int, size)
	for i := range out {
		out[i] = i
	}
	return out, nil
}

// GenerateReversed returns size, size-1, ..., 1.
func GenerateReversed(size int) ([]int, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	out := make([]int, size)
	for i := range out {
		out[i] = size - i
	}
	return out, nil
}

// GeneratePartiallySorted returns an ascending run 0..size/2-1 followed by
// size-size/2 random values drawn the same way as GenerateRandom.
func GeneratePartiallySorted(size int, rng *rand.Rand) ([]int, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	half := size / 2
	out := make([]int, size)
	for i := 0; i < half; i++ {
		out[i] = i
	}
	fillRandom(out[half:], rng)
	return out, nil
}

// Generate builds one instance of dist at the given size. Randomized
// distributions draw from the subsystem named after the distribution.
func Generate(dist Distribution, size int, rng *PartitionedRNG) (Instance, error) {
	var (
		data []int
		err  error
	)
	switch dist {
	case DistributionRandom:
		data, err = GenerateRandom(size, rng.ForSubsystem(string(dist)))
	case DistributionSorted:
		data, err = GenerateSorted(size)
	case DistributionReversed:
		data, err = GenerateReversed(size)
	case DistributionPartiallySorted:
		data, err = GeneratePartiallySorted(size, rng.ForSubsystem(string(dist)))
	default:
		return Instance{}, fmt.Errorf("%w %q", ErrUnknownDistribution, dist)
	}
	if err != nil {
		return Instance{}, fmt.Errorf("generating %s input: %w", dist, err)
	}
	return Instance{Distribution: dist, Size: size, Data: data}, nil
}

// GenerateAll builds one instance of every distribution at the given size,
// in report order.
func GenerateAll(size int, rng *PartitionedRNG) ([]Instance, error) {
	instances := make([]Instance, 0, len(distributions))
	for _, d := range distributions {
		inst, err := Generate(d, size, rng)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

func fillRandom(dst []int, rng *rand.Rand) {
	for i := range dst {
		dst[i] = rng.Intn(RandomValueMax + 1)
	}
}

func checkSize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: size must be non-negative, got %d", ErrInvalidArgument, size)
	}
	return nil
}
