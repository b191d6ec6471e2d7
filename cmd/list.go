package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sortbench/sortbench/bench"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the sort algorithms that can be benchmarked",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printAlgorithms(cmd.OutOrStdout())
	},
}

var distributionsCmd = &cobra.Command{
	Use:   "distributions",
	Short: "List the input distributions every sweep generates",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printDistributions(cmd.OutOrStdout())
	},
}

func printAlgorithms(w io.Writer) {
	for _, a := range bench.Algorithms() {
		fmt.Fprintf(w, "%-12s %s\n", a.Key, a.Name)
	}
}

func printDistributions(w io.Writer) {
	for _, d := range bench.Distributions() {
		fmt.Fprintf(w, "%-18s %s\n", d, d.Title())
	}
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(distributionsCmd)
}
