// Package binhist implements parallel equal-width histogram of uniformly generated measurements.
package binhist

import (
	"fmt"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config describes a histogram run.
type Config struct {
	// BinCount is a number of equal-width bins, at least 1.
	BinCount int

	// MinMeas is an inclusive lower bound of measurements.
	MinMeas float64

	// MaxMeas is an exclusive upper bound of measurements, must be greater than MinMeas.
	MaxMeas float64

	// DataCount is a number of measurements to generate.
	DataCount int

	// Workers is a number of concurrent workers of every phase, runtime.GOMAXPROCS(0) if zero.
	Workers int

	// Seed initializes random sources of data generation.
	Seed uint64

	// Logger receives debug information about phases, no logging if nil.
	Logger *zap.Logger
}

// Validate checks configuration domain.
func (c Config) Validate() error {
	switch {
	case c.BinCount < 1:
		return errors.Wrapf(ErrInvalidConfig, "bin count %d is less than 1", c.BinCount)
	case math.IsNaN(c.MinMeas) || math.IsInf(c.MinMeas, 0):
		return errors.Wrapf(ErrInvalidConfig, "min measurement %f is not finite", c.MinMeas)
	case math.IsNaN(c.MaxMeas) || math.IsInf(c.MaxMeas, 0):
		return errors.Wrapf(ErrInvalidConfig, "max measurement %f is not finite", c.MaxMeas)
	case c.MaxMeas <= c.MinMeas:
		return errors.Wrapf(ErrInvalidConfig, "max measurement %f is not greater than min measurement %f",
			c.MaxMeas, c.MinMeas)
	case c.DataCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "data count %d is negative", c.DataCount)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers %d is negative", c.Workers)
	case math.IsInf(c.MaxMeas-c.MinMeas, 0):
		return errors.Wrapf(ErrInvalidConfig, "range [%g, %g) is too wide", c.MinMeas, c.MaxMeas)
	}

	// Rounding of min+(i+1)*width is below 2 ulp per boundary.
	width := (c.MaxMeas - c.MinMeas) / float64(c.BinCount)
	if width <= minWidthUlps*ulp(math.Max(math.Abs(c.MinMeas), math.Abs(c.MaxMeas))) {
		return errors.Wrapf(ErrInvalidConfig, "range [%f, %f) is too narrow for %d bins",
			c.MinMeas, c.MaxMeas, c.BinCount)
	}

	return nil
}

// minWidthUlps is the smallest bin width, in ulps of the range magnitude, that keeps boundaries distinct.
const minWidthUlps = 4

func ulp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return c.Workers
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

// Compute generates measurements and counts them into bins.
func Compute(cfg Config) (*Histogram, error) {
	h, _, err := ComputeWithData(cfg)

	return h, err
}

// ComputeWithData generates measurements and counts them into bins, generated dataset is also returned.
//
// Generation and partitioning run concurrently, classification starts after both are complete.
func ComputeWithData(cfg Config) (*Histogram, Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		logger  = cfg.logger()
		workers = cfg.workers()
		data    Dataset
		h       *Histogram
		g       errgroup.Group
	)

	logger.Debug("computing histogram",
		zap.Int("bins", cfg.BinCount),
		zap.Float64("min", cfg.MinMeas),
		zap.Float64("max", cfg.MaxMeas),
		zap.Int("count", cfg.DataCount),
		zap.Int("workers", workers),
		zap.Uint64("seed", cfg.Seed),
	)

	g.Go(func() error {
		start := time.Now()
		data = Generate(cfg.MinMeas, cfg.MaxMeas, cfg.DataCount, workers, cfg.Seed)

		logger.Debug("data generated", zap.Int("count", len(data)), zap.Duration("elapsed", time.Since(start)))

		return nil
	})

	g.Go(func() error {
		start := time.Now()
		h = Partition(cfg.MinMeas, cfg.MaxMeas, cfg.BinCount, workers)

		logger.Debug("bins created", zap.Float64s("boundaries", h.Boundaries),
			zap.Duration("elapsed", time.Since(start)))

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	start := time.Now()

	if err := Classify(data, h, workers); err != nil {
		logger.Error("classification failed", zap.Error(err))

		return nil, nil, errors.Wrap(err, "classify measurements")
	}

	logger.Debug("data classified", zap.Int64s("counts", h.Counts), zap.Duration("elapsed", time.Since(start)))

	return h, data, nil
}

// Histogram keeps index-aligned bin boundaries and counters.
type Histogram struct {
	// Min is a lower edge of the first bin.
	Min float64

	// Max is an upper edge of the last bin.
	Max float64

	// Boundaries are exclusive upper edges of bins.
	Boundaries []float64

	// Counts are numbers of measurements in bins.
	Counts []int64
}

// Len returns number of bins.
func (h *Histogram) Len() int {
	return len(h.Boundaries)
}

// BinMin returns inclusive lower edge of bin i.
func (h *Histogram) BinMin(i int) float64 {
	if i == 0 {
		return h.Min
	}

	return h.Boundaries[i-1]
}

// Total returns sum of all counters.
func (h *Histogram) Total() int64 {
	var total int64

	for _, c := range h.Counts {
		total += c
	}

	return total
}

// Percentile returns upper boundary of a bin where cumulative count reaches percent of total.
func (h *Histogram) Percentile(percent float64) float64 {
	targetCount := int64(percent * float64(h.Total()) / 100)

	var count int64

	for i, c := range h.Counts {
		count += c
		if count >= targetCount {
			return h.Boundaries[i]
		}
	}

	return h.Max
}

// String renders histogram with one marker per measurement.
func (h *Histogram) String() string {
	return h.Format(1)
}

// Format renders histogram, every marker stands for unit measurements.
func (h *Histogram) Format(unit int) string {
	if h.Len() == 0 {
		return ""
	}

	if unit < 1 {
		unit = 1
	}

	const bucketFmt = "%.3f"

	nLen := printfLen(bucketFmt, h.Min)
	if maxLen := printfLen(bucketFmt, h.Max); maxLen > nLen {
		nLen = maxLen
	}

	total := h.Total()
	cLen := printfLen("%d", total)

	var res strings.Builder

	fmt.Fprintf(&res, "[%*s %*s) %*s total%% (total count: %d)\n", nLen, "min", nLen, "max", cLen, "cnt", total)

	for i, c := range h.Counts {
		percent := 0.0
		if total > 0 {
			percent = float64(100*c) / float64(total)
		}

		fmt.Fprintf(&res, "[%*.3f %*.3f) %*d %6.2f%%", nLen, h.BinMin(i), nLen, h.Boundaries[i], cLen, c, percent)

		if marks := strings.Repeat("X", int(c/int64(unit))); len(marks) > 0 {
			fmt.Fprint(&res, " ", marks)
		}

		fmt.Fprintln(&res)
	}

	return res.String()
}

func printfLen(format string, val interface{}) int {
	s := fmt.Sprintf(format, val)

	return len(s)
}
