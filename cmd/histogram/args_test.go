package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/binhist-go"
)

func TestParseArgs(t *testing.T) {
	cfg, err := parseArgs([]string{"4", "0", "20", "1000", "8"})
	require.NoError(t, err)

	assert.Equal(t, binhist.Config{BinCount: 4, MinMeas: 0, MaxMeas: 20, DataCount: 1000, Workers: 8}, cfg)
}

func TestParseArgs_invalid(t *testing.T) {
	for _, args := range [][]string{
		{"4", "0", "20", "1000"},
		{"four", "0", "20", "1000", "8"},
		{"4", "zero", "20", "1000", "8"},
		{"4", "0", "20.x", "1000", "8"},
		{"4", "0", "20", "1e3", "8"},
		{"4", "0", "20", "1000", ""},
	} {
		_, err := parseArgs(args)
		assert.Error(t, err, args)
	}

	for _, args := range [][]string{
		{"0", "0", "20", "1000", "8"},
		{"4", "20", "0", "1000", "8"},
		{"4", "0", "20", "-1", "8"},
		{"4", "0", "20", "1000", "0"},
	} {
		_, err := parseArgs(args)
		assert.True(t, errors.Is(err, binhist.ErrInvalidConfig), args)
	}
}

func TestSavePlot(t *testing.T) {
	hist := binhist.Partition(0, 20, 4, 2)
	hist.Counts = []int64{3, 5, 2, 7}

	file := t.TempDir() + "/hist.png"

	require.NoError(t, savePlot(hist, file))
	assert.FileExists(t, file)
}
