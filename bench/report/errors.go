package report

import "errors"

// ErrIOFailure wraps every failure to read or write a report artifact.
var ErrIOFailure = errors.New("i/o failure")
