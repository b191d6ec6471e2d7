package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sortbench/sortbench/bench"
	"github.com/sortbench/sortbench/bench/report"
)

// FileConfig is the optional YAML configuration passed with --config.
// Absent keys keep their defaults.
type FileConfig struct {
	Sizes       []int    `yaml:"sizes"`
	Repetitions int      `yaml:"repetitions"`
	Seed        int64    `yaml:"seed"`
	Algorithms  []string `yaml:"algorithms"`
	Plot        *string  `yaml:"plot"` // "" disables the chart
	LogY        bool     `yaml:"log_y"`
	Results     string   `yaml:"results"`
}

// Options is the fully resolved configuration of one sortbench invocation.
type Options struct {
	Bench   bench.Config
	Plot    string // chart path; empty skips the chart
	LogY    bool
	Results string // results export path; empty skips the export
}

// defaultOptions returns the options of a plain `sortbench` run.
// A zero seed is replaced by a time-derived one later, in resolveSeed.
func defaultOptions() Options {
	return Options{
		Bench: bench.DefaultConfig(0),
		Plot:  report.DefaultPlotPath,
	}
}

// loadFileConfig parses a YAML config file.
// Uses strict field checking: typos must cause errors.
func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading config %s: %v", report.ErrIOFailure, path, err)
	}
	var cfg FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// apply overlays the values present in the file onto opts.
func (fc *FileConfig) apply(opts *Options) {
	if len(fc.Sizes) > 0 {
		opts.Bench.Sizes = fc.Sizes
	}
	if fc.Repetitions != 0 {
		opts.Bench.Repetitions = fc.Repetitions
	}
	if fc.Seed != 0 {
		opts.Bench.Seed = fc.Seed
	}
	if len(fc.Algorithms) > 0 {
		opts.Bench.Algorithms = fc.Algorithms
	}
	if fc.Plot != nil {
		opts.Plot = *fc.Plot
	}
	if fc.LogY {
		opts.LogY = true
	}
	if fc.Results != "" {
		opts.Results = fc.Results
	}
}

// resolveOptions builds Options from defaults, then the --config file, then
// any flag the user set explicitly. Flags left at their default never
// override file values.
func resolveOptions(cmd *cobra.Command) (Options, error) {
	opts := defaultOptions()
	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return Options{}, err
		}
		fc.apply(&opts)
	}

	flags := cmd.Flags()
	if flags.Changed("sizes") {
		opts.Bench.Sizes = sizes
	}
	if flags.Changed("repetitions") {
		opts.Bench.Repetitions = repetitions
	}
	if flags.Changed("seed") {
		opts.Bench.Seed = seed
	}
	if flags.Changed("algorithms") {
		opts.Bench.Algorithms = algorithms
	}
	if flags.Changed("plot") {
		opts.Plot = plotPath
	}
	if flags.Changed("log-y") {
		opts.LogY = logY
	}
	if flags.Changed("results") {
		opts.Results = resultsPath
	}

	if err := opts.Bench.Validate(); err != nil {
		return Options{}, err
	}
	if err := report.ValidatePlotPath(opts.Plot); err != nil {
		return Options{}, err
	}
	if err := report.ValidateResultsPath(opts.Results); err != nil {
		return Options{}, err
	}
	return opts, nil
}
