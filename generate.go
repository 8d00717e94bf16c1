package binhist

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset is a fixed sequence of measurements, read-only once generated.
type Dataset []float64

// Generate produces count values uniformly distributed in [min, max).
//
// Index range is split among workers, each worker draws from its own source
// derived from seed and worker index. Output is reproducible for the same seed,
// count and number of workers.
func Generate(min, max float64, count, workers int, seed uint64) Dataset {
	if count <= 0 {
		return Dataset{}
	}

	data := make(Dataset, count)

	_ = fanOut(count, workers, func(_ context.Context, w int, s span) error {
		rng := rand.New(rand.NewSource(workerSeed(seed, w)))
		u := distuv.Uniform{Min: min, Max: max}

		for i := s.lo; i < s.hi; i++ {
			data[i] = belowMax(u.Quantile(rng.Float64()), max)
		}

		return nil
	})

	return data
}

func workerSeed(seed uint64, w int) uint64 {
	return seed ^ uint64(w+1)*0x9E3779B97F4A7C15
}

// belowMax keeps v strictly under the exclusive upper bound of the range,
// u*(max-min)+min can round up to max.
func belowMax(v, max float64) float64 {
	if v >= max {
		return math.Nextafter(max, math.Inf(-1))
	}

	return v
}
