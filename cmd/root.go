package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortbench/sortbench/bench"
	"github.com/sortbench/sortbench/bench/report"
)

var (
	// CLI flags; all optional, defaults reproduce a plain `sortbench` run
	sizes       []int    // Input sizes to sweep (ascending)
	repetitions int      // Timed runs averaged per sample
	seed        int64    // Seed for randomized inputs (0 = time-based)
	algorithms  []string // Algorithm keys to run (empty = all)
	plotPath    string   // Chart output path ("" disables)
	logY        bool     // Log-scale time axis
	resultsPath string   // Results export path (.yaml/.yml/.json)
	configPath  string   // Optional YAML config file
	logLevel    string   // Log verbosity level
)

// rootCmd runs the full benchmark sweep when invoked without a subcommand
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark insertion sort, merge sort and the standard library sort",
	Long: "Times each sort algorithm against random, sorted, reversed and partially sorted " +
		"inputs of increasing size, prints the mean timings and writes a 2x2 comparison chart.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		opts, err := resolveOptions(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := runBenchmark(opts, os.Stdout); err != nil {
			logrus.Fatalf("Benchmark failed: %v", err)
		}
	},
}

// resolveSeed replaces a zero seed with one derived from the clock.
func resolveSeed(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}

// runBenchmark executes the sweep described by opts and writes every report.
func runBenchmark(opts Options, out io.Writer) error {
	opts.Bench.Seed = resolveSeed(opts.Bench.Seed)
	logrus.Infof("Starting sweep: sizes=%v repetitions=%d seed=%d",
		opts.Bench.Sizes, opts.Bench.Repetitions, opts.Bench.Seed)

	runner, err := bench.NewRunner(opts.Bench)
	if err != nil {
		return err
	}
	runner.Progress = out

	startTime := time.Now()
	table, err := runner.Run()
	if err != nil {
		return err
	}
	logrus.Infof("Sweep finished in %s", time.Since(startTime).Round(time.Millisecond))

	if opts.Plot != "" {
		if err := report.WritePlot(opts.Plot, table, report.PlotOptions{LogY: opts.LogY}); err != nil {
			return err
		}
	}
	if err := report.PrintTable(out, table); err != nil {
		return err
	}
	largest := table.Sizes[len(table.Sizes)-1]
	if err := report.PrintSummary(out, report.Summarize(table), largest); err != nil {
		return err
	}
	if opts.Results != "" {
		rf, err := report.SaveResults(opts.Results, table, report.RunMetadata{
			Seed:        opts.Bench.Seed,
			Repetitions: opts.Bench.Repetitions,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nResults saved to %s (run %s)\n", opts.Results, rf.RunID)
	}
	return nil
}

// registerRunFlags binds the sweep flags to c.
func registerRunFlags(c *cobra.Command) {
	c.Flags().IntSliceVar(&sizes, "sizes", bench.DefaultSizes, "Comma-separated ascending input sizes")
	c.Flags().IntVar(&repetitions, "repetitions", bench.DefaultRepetitions, "Timed runs averaged per sample")
	c.Flags().Int64Var(&seed, "seed", 0, "Seed for random inputs (0 = derive from clock)")
	c.Flags().StringSliceVar(&algorithms, "algorithms", nil, "Algorithms to run: insertion, merge, baseline (default all)")
	c.Flags().StringVar(&plotPath, "plot", report.DefaultPlotPath, "Chart output path (.png, .jpg, .tif); empty disables")
	c.Flags().BoolVar(&logY, "log-y", false, "Use a log-scale time axis in the chart")
	c.Flags().StringVar(&resultsPath, "results", "", "Write results to this .yaml or .json file")
	c.Flags().StringVar(&configPath, "config", "", "YAML config file; explicitly set flags override it")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
