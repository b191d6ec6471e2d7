package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sortbench/sortbench/bench"
)

// DefaultPlotPath is where the chart lands when no path is configured.
const DefaultPlotPath = "sorting_comparison.png"

const (
	gridRows = 2
	gridCols = 2
)

// PlotOptions controls chart rendering.
type PlotOptions struct {
	Width  vg.Length // whole image; zero means 15in
	Height vg.Length // whole image; zero means 10in
	LogY   bool      // log-scale time axis; ignored if any sample is <= 0
}

// WritePlot renders a 2×2 grid of line charts (one per distribution) to path.
// The image format follows the extension: .png, .jpg/.jpeg or .tif/.tiff.
func WritePlot(path string, table *bench.ResultTable, opts PlotOptions) (err error) {
	if err := checkPlotExt(filepath.Ext(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating chart %s: %v", ErrIOFailure, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing chart %s: %v", ErrIOFailure, path, closeErr)
		}
	}()

	if err := RenderPlot(f, filepath.Ext(path), table, opts); err != nil {
		return err
	}
	logrus.Debugf("Wrote chart to '%s'", path)
	return nil
}

// RenderPlot draws the chart grid and encodes it to w in the format named by ext.
func RenderPlot(w io.Writer, ext string, table *bench.ResultTable, opts PlotOptions) error {
	if err := checkPlotExt(ext); err != nil {
		return err
	}
	if len(table.Distributions) > gridRows*gridCols {
		return fmt.Errorf("%w: %d distributions do not fit a %dx%d grid",
			bench.ErrInvalidArgument, len(table.Distributions), gridRows, gridCols)
	}
	if opts.Width == 0 {
		opts.Width = 15 * vg.Inch
	}
	if opts.Height == 0 {
		opts.Height = 10 * vg.Inch
	}

	plots := make([][]*plot.Plot, gridRows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, gridCols)
	}
	for i, d := range table.Distributions {
		p, err := distributionPlot(table, d, opts.LogY)
		if err != nil {
			return err
		}
		plots[i/gridCols][i%gridCols] = p
	}

	img := vgimg.New(opts.Width, opts.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      gridRows,
		Cols:      gridCols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	var encoder io.WriterTo
	switch strings.ToLower(ext) {
	case ".png":
		encoder = vgimg.PngCanvas{Canvas: img}
	case ".jpg", ".jpeg":
		encoder = vgimg.JpegCanvas{Canvas: img}
	case ".tif", ".tiff":
		encoder = vgimg.TiffCanvas{Canvas: img}
	}
	if _, err := encoder.WriteTo(w); err != nil {
		return fmt.Errorf("%w: encoding chart: %v", ErrIOFailure, err)
	}
	return nil
}

func distributionPlot(table *bench.ResultTable, d bench.Distribution, logY bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = d.Title()
	p.X.Label.Text = "Array Size"
	p.Y.Label.Text = "Time (seconds)"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	allPositive := true
	var lines []any
	for _, a := range table.Algorithms {
		series := table.Series(d, a)
		pts := make(plotter.XYs, len(series))
		for i, v := range series {
			pts[i].X = float64(table.Sizes[i])
			pts[i].Y = v
			if v <= 0 {
				allPositive = false
			}
		}
		lines = append(lines, a, pts)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, fmt.Errorf("plotting %s: %w", d, err)
	}

	if logY {
		if allPositive {
			p.Y.Scale = plot.LogScale{}
			p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		} else {
			logrus.Warnf("%s: non-positive timings present, keeping linear y axis", d)
		}
	}
	return p, nil
}
