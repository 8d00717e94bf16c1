package binhist_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/binhist-go"
)

func TestWhichBin(t *testing.T) {
	boundaries := []float64{2, 4, 6}

	for _, tc := range []struct {
		v   float64
		bin int
	}{
		{v: 0, bin: 0},
		{v: 1.999, bin: 0},
		{v: 2, bin: 1},
		{v: 3.5, bin: 1},
		{v: 4, bin: 2},
		{v: 5.999, bin: 2},
	} {
		bin, err := binhist.WhichBin(tc.v, boundaries, 0)
		require.NoError(t, err, tc.v)
		assert.Equal(t, tc.bin, bin, tc.v)
	}
}

func TestWhichBin_unbinnable(t *testing.T) {
	for _, v := range []float64{6, 6.5, -0.001, math.Inf(1), math.Inf(-1)} {
		_, err := binhist.WhichBin(v, []float64{2, 4, 6}, 0)
		require.Error(t, err, v)
		assert.True(t, errors.Is(err, binhist.ErrUnbinnable), v)

		var ue *binhist.UnbinnableValueError

		require.True(t, errors.As(err, &ue), v)
		assert.Equal(t, v, ue.Value)
	}

	_, err := binhist.WhichBin(math.NaN(), []float64{2, 4, 6}, 0)
	assert.True(t, errors.Is(err, binhist.ErrUnbinnable))
}

func TestWhichBin_singleBin(t *testing.T) {
	bin, err := binhist.WhichBin(-1, []float64{1}, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, bin)

	_, err = binhist.WhichBin(1, []float64{1}, -1)
	assert.Error(t, err)
}

func TestClassify_conservation(t *testing.T) {
	for _, count := range []int{0, 1, 7, 1000, 10007} {
		data := binhist.Generate(-5, 5, count, 4, 1)

		var reference []int64

		for _, workers := range []int{1, 2, 3, 8, 13} {
			h := binhist.Partition(-5, 5, 9, workers)

			require.NoError(t, binhist.Classify(data, h, workers))
			assert.Equal(t, int64(count), h.Total(), "count %d, workers %d", count, workers)

			if reference == nil {
				reference = h.Counts

				continue
			}

			assert.Equal(t, reference, h.Counts, "count %d, workers %d", count, workers)
		}
	}
}

func TestClassify_unbinnable(t *testing.T) {
	data := binhist.Generate(0, 10, 100000, 8, 0)
	data[54321] = 10

	h := binhist.Partition(0, 10, 5, 8)

	err := binhist.Classify(data, h, 8)
	require.Error(t, err)

	var ue *binhist.UnbinnableValueError

	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 10.0, ue.Value)
	assert.EqualError(t, err, "value 10.000000 doesn't belong to a bin")
}

func BenchmarkClassify(b *testing.B) {
	data := binhist.Generate(0, 1000, 1000000, 8, 0)

	for _, workers := range []int{1, 8} {
		workers := workers

		b.Run("workers"+strconv.Itoa(workers), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				h := binhist.Partition(0, 1000, 100, workers)
				if err := binhist.Classify(data, h, workers); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
