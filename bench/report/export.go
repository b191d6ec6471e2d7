package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sortbench/sortbench/bench"
)

// RunMetadata describes how a table was produced.
type RunMetadata struct {
	Seed        int64
	Repetitions int
}

// ResultsFile is the on-disk form of a result table.
type ResultsFile struct {
	RunID       string         `yaml:"run_id" json:"run_id"`
	CreatedAt   time.Time      `yaml:"created_at" json:"created_at"`
	Seed        int64          `yaml:"seed" json:"seed"`
	Repetitions int            `yaml:"repetitions" json:"repetitions"`
	Sizes       []int          `yaml:"sizes" json:"sizes"`
	Series      []SeriesRecord `yaml:"series" json:"series"`
}

// SeriesRecord holds one (distribution, algorithm) line; Seconds is index-aligned with Sizes.
type SeriesRecord struct {
	Distribution string    `yaml:"distribution" json:"distribution"`
	Algorithm    string    `yaml:"algorithm" json:"algorithm"`
	Seconds      []float64 `yaml:"seconds" json:"seconds"`
}

// NewResultsFile snapshots a table under a fresh run id.
func NewResultsFile(table *bench.ResultTable, meta RunMetadata) *ResultsFile {
	rf := &ResultsFile{
		RunID:       uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Seed:        meta.Seed,
		Repetitions: meta.Repetitions,
		Sizes:       append([]int(nil), table.Sizes...),
	}
	for _, d := range table.Distributions {
		for _, a := range table.Algorithms {
			rf.Series = append(rf.Series, SeriesRecord{
				Distribution: string(d),
				Algorithm:    a,
				Seconds:      append([]float64(nil), table.Series(d, a)...),
			})
		}
	}
	return rf
}

// SaveResults writes the table to path as YAML (.yaml, .yml) or JSON (.json).
func SaveResults(path string, table *bench.ResultTable, meta RunMetadata) (*ResultsFile, error) {
	rf := NewResultsFile(table, meta)
	data, err := encodeResults(rf, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("%w: writing results %s: %v", ErrIOFailure, path, err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return rf, nil
}

// LoadResults reads a file written by SaveResults.
// YAML is parsed strictly: unrecognized keys are rejected.
func LoadResults(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading results %s: %v", ErrIOFailure, path, err)
	}
	var rf ResultsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rf); err != nil {
			return nil, fmt.Errorf("parsing results %s: %w", path, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&rf); err != nil {
			return nil, fmt.Errorf("parsing results %s: %w", path, err)
		}
	}
	for i, sr := range rf.Series {
		if !bench.IsValidDistribution(sr.Distribution) {
			return nil, fmt.Errorf("results %s: series[%d]: %w %q", path, i, bench.ErrUnknownDistribution, sr.Distribution)
		}
	}
	return &rf, nil
}

func encodeResults(rf *ResultsFile, ext string) ([]byte, error) {
	if err := checkResultsExt(ext); err != nil {
		return nil, err
	}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(rf); err != nil {
			return nil, fmt.Errorf("encoding results: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding results: %w", err)
		}
		return buf.Bytes(), nil
	case ".json":
		data, err := json.MarshalIndent(rf, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding results: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, checkResultsExt(ext)
	}
}
