package bench

import (
	"fmt"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Clock returns the current time. Tests substitute a fake to pin durations.
type Clock func() time.Time

// Timer measures sort functions against fixed inputs.
type Timer struct {
	now Clock
}

// NewTimer creates a Timer reading wall-clock time.
func NewTimer() *Timer {
	return &Timer{now: time.Now}
}

// NewTimerWithClock creates a Timer that reads time from now.
func NewTimerWithClock(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

// MeasureMean runs fn reps times and returns the mean duration per run in seconds.
// Every run receives its own copy of input, made before the clock starts, so
// copy cost stays outside the measured interval and no run sees another's writes.
func (t *Timer) MeasureMean(fn SortFunc, input []int, reps int) (float64, error) {
	if reps < 1 {
		return 0, fmt.Errorf("%w: repetitions must be >= 1, got %d", ErrInvalidArgument, reps)
	}
	samples := make([]float64, reps)
	for i := range samples {
		data := slices.Clone(input)
		start := t.now()
		fn(data)
		elapsed := t.now().Sub(start).Seconds()
		if elapsed < 0 {
			elapsed = 0 // non-monotonic fake clocks
		}
		samples[i] = elapsed
	}
	return stat.Mean(samples, nil), nil
}

// MeasureMean times fn with the wall clock. See Timer.MeasureMean.
func MeasureMean(fn SortFunc, input []int, reps int) (float64, error) {
	return NewTimer().MeasureMean(fn, input, reps)
}
