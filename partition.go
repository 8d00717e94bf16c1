package binhist

import "context"

// Partition builds binCount equal-width bins over [min, max) with zero counters.
//
// Boundary i is the exclusive upper edge of bin i, the last boundary is exactly max.
// Arguments are expected to be valid, see Config.Validate.
func Partition(min, max float64, binCount, workers int) *Histogram {
	h := &Histogram{
		Min:        min,
		Max:        max,
		Boundaries: make([]float64, binCount),
		Counts:     make([]int64, binCount),
	}

	width := (max - min) / float64(binCount)

	_ = fanOut(binCount, workers, func(_ context.Context, _ int, s span) error {
		for i := s.lo; i < s.hi; i++ {
			h.Boundaries[i] = min + float64(i+1)*width
			h.Counts[i] = 0
		}

		return nil
	})

	if binCount > 0 {
		h.Boundaries[binCount-1] = max
	}

	return h
}
