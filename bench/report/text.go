// Package report renders a bench.ResultTable as console tables, charts,
// summaries, and result files.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sortbench/sortbench/bench"
)

const (
	sizeColumnWidth   = 10
	sampleColumnWidth = 20
)

// PrintTable writes one section per distribution: a "<Title> Results:"
// heading, a header row of algorithm names, then one row per size with each
// mean formatted to six decimals and an "s" suffix.
func PrintTable(w io.Writer, table *bench.ResultTable) error {
	var b strings.Builder
	for _, d := range table.Distributions {
		fmt.Fprintf(&b, "\n%s Results:\n", d.Title())
		writeSection(&b, table, d)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: writing results table: %v", ErrIOFailure, err)
	}
	return nil
}

func writeSection(b *strings.Builder, table *bench.ResultTable, d bench.Distribution) {
	fmt.Fprintf(b, "%-*s", sizeColumnWidth, "Size")
	for _, a := range table.Algorithms {
		fmt.Fprintf(b, "%-*s", sampleColumnWidth, a)
	}
	b.WriteString("\n")

	for i, size := range table.Sizes {
		fmt.Fprintf(b, "%-*d", sizeColumnWidth, size)
		for _, a := range table.Algorithms {
			series := table.Series(d, a)
			cell := "-"
			if i < len(series) {
				cell = fmt.Sprintf("%.6fs", series[i])
			}
			fmt.Fprintf(b, "%-*s", sampleColumnWidth, cell)
		}
		b.WriteString("\n")
	}
}
