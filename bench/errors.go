package bench

import "errors"

var (
	// ErrInvalidArgument is returned for negative sizes, non-positive
	// repetition counts, and malformed size lists.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownAlgorithm is returned when an algorithm key is not registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnknownDistribution is returned when a distribution key is not recognized.
	ErrUnknownDistribution = errors.New("unknown distribution")
)
