package binhist

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrUnbinnable matches UnbinnableValueError with errors.Is.
var ErrUnbinnable = errors.New("value not binnable")

// UnbinnableValueError reports a measurement that falls outside of every bin.
//
// It means the dataset and the boundaries disagree, so counters can no longer
// sum up to the number of measurements.
type UnbinnableValueError struct {
	Value float64
}

func (e *UnbinnableValueError) Error() string {
	return fmt.Sprintf("value %f doesn't belong to a bin", e.Value)
}

// Is makes errors.Is(err, ErrUnbinnable) true.
func (e *UnbinnableValueError) Is(target error) bool {
	return target == ErrUnbinnable
}
