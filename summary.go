package binhist

import (
	"context"

	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
)

const (
	// summaryResolution is a number of distinct recorded values across the measurement range.
	summaryResolution = 1000000
	summarySigFigs    = 3
)

// Summary provides quantiles of raw measurements.
type Summary struct {
	min   float64
	scale float64
	h     *hdrhistogram.Histogram
}

// Summarize records measurements of [min, max) range into a high dynamic range histogram.
//
// Every worker records its part of data separately, partial histograms are merged after all workers are done.
func Summarize(data Dataset, min, max float64, workers int) (*Summary, error) {
	s := &Summary{
		min:   min,
		scale: summaryResolution / (max - min),
		h:     hdrhistogram.New(0, summaryResolution, summarySigFigs),
	}

	spans := split(len(data), workers)
	parts := make([]*hdrhistogram.Histogram, len(spans))

	err := fanOut(len(data), workers, func(_ context.Context, w int, sp span) error {
		part := hdrhistogram.New(0, summaryResolution, summarySigFigs)

		for i := sp.lo; i < sp.hi; i++ {
			if err := part.RecordValue(s.scaled(data[i])); err != nil {
				return errors.Wrapf(err, "record %f", data[i])
			}
		}

		parts[w] = part

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, part := range parts {
		s.h.Merge(part)
	}

	return s, nil
}

func (s *Summary) scaled(v float64) int64 {
	return int64((v - s.min) * s.scale)
}

func (s *Summary) unscaled(v float64) float64 {
	return s.min + v/s.scale
}

// Count returns number of recorded measurements.
func (s *Summary) Count() int64 {
	return s.h.TotalCount()
}

// ValueAt returns measurement value at percentile, e.g. 99.9.
func (s *Summary) ValueAt(percent float64) float64 {
	return s.unscaled(float64(s.h.ValueAtQuantile(percent)))
}

// Mean returns approximate mean of measurements.
func (s *Summary) Mean() float64 {
	return s.unscaled(s.h.Mean())
}

// StdDev returns approximate standard deviation of measurements.
func (s *Summary) StdDev() float64 {
	return s.h.StdDev() / s.scale
}
