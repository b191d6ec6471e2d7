package bench

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultSizes are the input sizes swept when none are configured.
var DefaultSizes = []int{100, 500, 1000, 2000, 5000}

// DefaultRepetitions is the number of timed runs averaged per sample.
const DefaultRepetitions = 5

// Config parameterizes a benchmark sweep.
type Config struct {
	Sizes       []int    // ascending, non-negative
	Repetitions int      // timed runs per sample, >= 1
	Seed        int64    // master seed for randomized distributions
	Algorithms  []string // algorithm keys; empty selects all
}

// DefaultConfig returns the configuration of a plain `sortbench` run.
func DefaultConfig(seed int64) Config {
	sizes := make([]int, len(DefaultSizes))
	copy(sizes, DefaultSizes)
	return Config{
		Sizes:       sizes,
		Repetitions: DefaultRepetitions,
		Seed:        seed,
	}
}

// Validate checks that all fields in the config are usable.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: at least one size required", ErrInvalidArgument)
	}
	for i, s := range c.Sizes {
		if s < 0 {
			return fmt.Errorf("%w: sizes[%d] must be non-negative, got %d", ErrInvalidArgument, i, s)
		}
		if i > 0 && s <= c.Sizes[i-1] {
			return fmt.Errorf("%w: sizes must be strictly ascending, got %d after %d", ErrInvalidArgument, s, c.Sizes[i-1])
		}
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be >= 1, got %d", ErrInvalidArgument, c.Repetitions)
	}
	if _, err := SelectAlgorithms(c.Algorithms); err != nil {
		return err
	}
	return nil
}

// Runner executes a benchmark sweep.
type Runner struct {
	config     Config
	algorithms []Algorithm
	rng        *PartitionedRNG
	timer      *Timer

	// Progress receives one "Testing with array size: N" line per size. Nil disables.
	Progress io.Writer
}

// NewRunner validates cfg and creates a Runner.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algorithms, err := SelectAlgorithms(cfg.Algorithms)
	if err != nil {
		return nil, err
	}
	return &Runner{
		config:     cfg,
		algorithms: algorithms,
		rng:        NewPartitionedRNG(NewRunKey(cfg.Seed)),
		timer:      NewTimer(),
	}, nil
}

// WithTimer replaces the runner's timer. Used by tests to pin durations.
func (r *Runner) WithTimer(t *Timer) *Runner {
	r.timer = t
	return r
}

// Run sweeps sizes × distributions × algorithms and returns the filled table.
// Every algorithm within one (distribution, size) pair is timed against the
// same generated instance. The first error aborts the run.
func (r *Runner) Run() (*ResultTable, error) {
	names := make([]string, len(r.algorithms))
	for i, a := range r.algorithms {
		names[i] = a.Name
	}
	table := NewResultTable(Distributions(), names)

	for _, size := range r.config.Sizes {
		if r.Progress != nil {
			fmt.Fprintf(r.Progress, "Testing with array size: %d\n", size)
		}
		logrus.Infof("Benchmarking size %d (%d repetitions)", size, r.config.Repetitions)

		instances, err := GenerateAll(size, r.rng)
		if err != nil {
			return nil, err
		}
		table.AddSize(size)

		for _, inst := range instances {
			for _, algo := range r.algorithms {
				mean, err := r.timer.MeasureMean(algo.Sort, inst.Data, r.config.Repetitions)
				if err != nil {
					return nil, fmt.Errorf("timing %s on %s/%d: %w", algo.Name, inst.Distribution, size, err)
				}
				logrus.Debugf("%s %s n=%d mean=%.6fs", inst.Distribution, algo.Key, size, mean)
				if err := table.Record(inst.Distribution, algo.Name, mean); err != nil {
					return nil, err
				}
			}
		}
	}
	return table, nil
}
