package bench

import (
	"cmp"
	"slices"
)

// SortFunc sorts a sequence of ints and returns the sorted result.
// Implementations MUST NOT modify their argument.
type SortFunc func([]int) []int

// === Insertion Sort ===

// InsertionSort returns a sorted copy of s. O(N²) on random or reversed input,
// O(N) when s is already sorted.
func InsertionSort[T cmp.Ordered](s []T) []T {
	return InsertionSortFunc(s, cmp.Compare[T])
}

// InsertionSortFunc is InsertionSort with a caller-supplied comparison.
// Only elements strictly greater than the key are shifted, so equal elements
// keep their relative order.
func InsertionSortFunc[T any](s []T, compare func(a, b T) int) []T {
	out := slices.Clone(s)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && compare(out[j], key) > 0 {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}
	return out
}

// === Merge Sort ===

// MergeSort returns a sorted copy of s using top-down recursive merge sort.
func MergeSort[T cmp.Ordered](s []T) []T {
	return MergeSortFunc(s, cmp.Compare[T])
}

// MergeSortFunc is MergeSort with a caller-supplied comparison. Stable.
func MergeSortFunc[T any](s []T, compare func(a, b T) int) []T {
	if len(s) <= 1 {
		return slices.Clone(s)
	}
	mid := len(s) / 2
	left := MergeSortFunc(s[:mid], compare)
	right := MergeSortFunc(s[mid:], compare)
	return MergeFunc(left, right, compare)
}

// Merge combines two sorted slices into a new sorted slice.
func Merge[T cmp.Ordered](left, right []T) []T {
	return MergeFunc(left, right, cmp.Compare[T])
}

// MergeFunc is Merge with a caller-supplied comparison.
// On ties the element from left is taken first.
func MergeFunc[T any](left, right []T, compare func(a, b T) int) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}

// === Baseline Sort ===

// BaselineSort returns a sorted copy of s using the standard library's stable sort.
// It is the reference point the hand-written algorithms are compared against.
func BaselineSort[T cmp.Ordered](s []T) []T {
	return BaselineSortFunc(s, cmp.Compare[T])
}

// BaselineSortFunc is BaselineSort with a caller-supplied comparison.
func BaselineSortFunc[T any](s []T, compare func(a, b T) int) []T {
	out := slices.Clone(s)
	slices.SortStableFunc(out, compare)
	return out
}
