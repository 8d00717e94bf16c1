package binhist

import (
	"context"
	"math"
	"sync/atomic"
)

// abortCheckMask controls how often classification workers look for a failure of a peer.
const abortCheckMask = 1<<10 - 1

// WhichBin finds index of a bin that holds v using binary search over boundaries.
//
// Bins are half-open: bin i covers [boundaries[i-1], boundaries[i]), bin 0 starts at min.
// Value that is not covered by any bin results in *UnbinnableValueError.
func WhichBin(v float64, boundaries []float64, min float64) (int, error) {
	if math.IsNaN(v) {
		return 0, &UnbinnableValueError{Value: v}
	}

	bottom, top := 0, len(boundaries)-1

	for bottom <= top {
		mid := (bottom + top) / 2
		binMax := boundaries[mid]

		binMin := min
		if mid > 0 {
			binMin = boundaries[mid-1]
		}

		switch {
		case v >= binMax:
			bottom = mid + 1
		case v < binMin:
			top = mid - 1
		default:
			return mid, nil
		}
	}

	return 0, &UnbinnableValueError{Value: v}
}

// Classify counts every measurement of data into its bin of h.
//
// Measurements are split among workers, counters are shared and incremented atomically.
// The first unbinnable value stops all workers and is returned, counters of h are
// meaningless in that case.
func Classify(data Dataset, h *Histogram, workers int) error {
	return fanOut(len(data), workers, func(ctx context.Context, _ int, s span) error {
		for i := s.lo; i < s.hi; i++ {
			if i&abortCheckMask == 0 && ctx.Err() != nil {
				return nil
			}

			bin, err := WhichBin(data[i], h.Boundaries, h.Min)
			if err != nil {
				return err
			}

			atomic.AddInt64(&h.Counts[bin], 1)
		}

		return nil
	})
}
