package bench

import (
	"fmt"
	"strings"
)

// Algorithm keys accepted by LookupAlgorithm and Config.Algorithms.
const (
	AlgorithmInsertion = "insertion"
	AlgorithmMerge     = "merge"
	AlgorithmBaseline  = "baseline"
)

// Algorithm pairs a sort implementation with the names used to select and report it.
type Algorithm struct {
	Key  string   // selection key (e.g. "merge")
	Name string   // display name used in tables and chart legends
	Sort SortFunc // implementation under test
}

// registeredAlgorithms is the dispatch table, in report order.
var registeredAlgorithms = []Algorithm{
	{Key: AlgorithmInsertion, Name: "Insertion Sort", Sort: InsertionSort[int]},
	{Key: AlgorithmMerge, Name: "Merge Sort", Sort: MergeSort[int]},
	{Key: AlgorithmBaseline, Name: "Baseline Sort", Sort: BaselineSort[int]},
}

// Algorithms returns every registered algorithm in report order.
// The returned slice is a copy; callers may reorder it freely.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registeredAlgorithms))
	copy(out, registeredAlgorithms)
	return out
}

// AlgorithmKeys returns the registered keys in report order.
func AlgorithmKeys() []string {
	keys := make([]string, len(registeredAlgorithms))
	for i, a := range registeredAlgorithms {
		keys[i] = a.Key
	}
	return keys
}

// LookupAlgorithm returns the algorithm registered under key.
func LookupAlgorithm(key string) (Algorithm, error) {
	for _, a := range registeredAlgorithms {
		if a.Key == key {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w %q; valid: %s", ErrUnknownAlgorithm, key, strings.Join(AlgorithmKeys(), ", "))
}

// SelectAlgorithms resolves keys to algorithms, always in report order and
// without duplicates. An empty key list selects every algorithm.
func SelectAlgorithms(keys []string) ([]Algorithm, error) {
	if len(keys) == 0 {
		return Algorithms(), nil
	}
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, err := LookupAlgorithm(k); err != nil {
			return nil, err
		}
		wanted[k] = true
	}
	selected := make([]Algorithm, 0, len(wanted))
	for _, a := range registeredAlgorithms {
		if wanted[a.Key] {
			selected = append(selected, a)
		}
	}
	return selected, nil
}
