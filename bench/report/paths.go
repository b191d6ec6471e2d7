package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sortbench/sortbench/bench"
)

var (
	validPlotExts = map[string]bool{
		".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
	}
	validResultsExts = map[string]bool{
		".yaml": true, ".yml": true, ".json": true,
	}
)

// ValidatePlotPath checks that the chart format implied by path's extension
// is supported. An empty path (chart disabled) is valid.
func ValidatePlotPath(path string) error {
	if path == "" {
		return nil
	}
	return checkPlotExt(filepath.Ext(path))
}

// ValidateResultsPath checks that the results format implied by path's
// extension is supported. An empty path (export disabled) is valid.
func ValidateResultsPath(path string) error {
	if path == "" {
		return nil
	}
	return checkResultsExt(filepath.Ext(path))
}

func checkPlotExt(ext string) error {
	if !validPlotExts[strings.ToLower(ext)] {
		return fmt.Errorf("%w: unsupported chart format %q; valid: .png, .jpg, .jpeg, .tif, .tiff",
			bench.ErrInvalidArgument, ext)
	}
	return nil
}

func checkResultsExt(ext string) error {
	if !validResultsExts[strings.ToLower(ext)] {
		return fmt.Errorf("%w: unsupported results format %q; valid: .yaml, .yml, .json",
			bench.ErrInvalidArgument, ext)
	}
	return nil
}
