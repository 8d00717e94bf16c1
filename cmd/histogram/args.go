package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/vearutop/binhist-go"
)

// parseArgs reads <bin_count> <min_meas> <max_meas> <data_count> <thread_count>.
func parseArgs(args []string) (binhist.Config, error) {
	var (
		cfg binhist.Config
		err error
	)

	if len(args) != 5 {
		return cfg, errors.Errorf("5 arguments expected, %d received", len(args))
	}

	if cfg.BinCount, err = strconv.Atoi(args[0]); err != nil {
		return cfg, errors.Wrap(err, "bin_count")
	}

	if cfg.MinMeas, err = strconv.ParseFloat(args[1], 64); err != nil {
		return cfg, errors.Wrap(err, "min_meas")
	}

	if cfg.MaxMeas, err = strconv.ParseFloat(args[2], 64); err != nil {
		return cfg, errors.Wrap(err, "max_meas")
	}

	if cfg.DataCount, err = strconv.Atoi(args[3]); err != nil {
		return cfg, errors.Wrap(err, "data_count")
	}

	if cfg.Workers, err = strconv.Atoi(args[4]); err != nil {
		return cfg, errors.Wrap(err, "thread_count")
	}

	if cfg.Workers < 1 {
		return cfg, errors.Wrapf(binhist.ErrInvalidConfig, "thread count %d is less than 1", cfg.Workers)
	}

	return cfg, cfg.Validate()
}
