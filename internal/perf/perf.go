package perf

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRuns = errors.New("number of runs must be at least 1")
)

// Measure runs apply over every input against a container made by newf,
// runs times, and returns the average elapsed milliseconds. Every run gets
// its own container. Elapsed time is truncated to whole milliseconds per
// run and the average uses integer division.
//
// An error from apply stops the measurement and is returned as is,
// wrapped with its position.
func Measure[C, T any](inputs []T, newf func() C, apply func(C, T) error, runs int) (int64, error) {
	return measure(time.Now, inputs, newf, apply, runs)
}

func measure[C, T any](now func() time.Time, inputs []T, newf func() C, apply func(C, T) error, runs int) (int64, error) {
	if runs < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRuns, runs)
	}
	if len(inputs) == 0 {
		return 0, nil
	}

	var total int64
	for r := 0; r < runs; r++ {
		c := newf()

		start := now()
		for i, in := range inputs {
			if err := apply(c, in); err != nil {
				return 0, fmt.Errorf("run %d, input %d: %w", r, i, err)
			}
		}
		total += now().Sub(start).Milliseconds()
	}

	return total / int64(runs), nil
}
