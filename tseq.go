// Package tseq provides convenience constructors for building temporal
// sequences from plain Go slices.
//
// A temporal sequence is an ordered run of timestamped values over a bounded
// period, evolving between instants by linear interpolation or by holding
// each value stepwise. The temporal package holds the sequence engine; this
// package only assembles its inputs from parallel slices so callers feeding
// data from columnar sources do not build []temporal.Instant by hand.
package tseq

import (
	"fmt"

	"github.com/tseqio/tseq/errs"
	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/temporal"
	"github.com/tseqio/tseq/value"
)

// Interpolation modes, re-exported so callers of the constructors below do
// not need to import temporal directly.
const (
	InterpLinear = temporal.InterpLinear
	InterpStep   = temporal.InterpStep
)

// FloatSequence builds a float sequence from parallel timestamp and value
// slices. Timestamps are Unix microseconds and must be strictly increasing.
func FloatSequence(timestamps []int64, values []float64, lowerInc, upperInc bool, interp temporal.Interp) (*temporal.Sequence, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps for %d values",
			errs.ErrDimensionalityMismatch, len(timestamps), len(values))
	}
	instants := make([]temporal.Instant, len(timestamps))
	for i, t := range timestamps {
		instants[i] = temporal.NewInstant(value.Float(values[i]), t)
	}

	return temporal.NewSequence(instants, lowerInc, upperInc, interp, true)
}

// Point2DSequence builds a planar point sequence from parallel timestamp and
// coordinate slices.
func Point2DSequence(timestamps []int64, xs, ys []float64, lowerInc, upperInc bool, interp temporal.Interp) (*temporal.Sequence, error) {
	if len(timestamps) != len(xs) || len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d timestamps for %d/%d coordinates",
			errs.ErrDimensionalityMismatch, len(timestamps), len(xs), len(ys))
	}
	instants := make([]temporal.Instant, len(timestamps))
	for i, t := range timestamps {
		instants[i] = temporal.NewInstant(value.Point2D{X: xs[i], Y: ys[i]}, t)
	}

	return temporal.NewSequence(instants, lowerInc, upperInc, interp, true)
}

// Point3DSequence builds a spatial point sequence from parallel timestamp
// and coordinate slices.
func Point3DSequence(timestamps []int64, xs, ys, zs []float64, lowerInc, upperInc bool, interp temporal.Interp) (*temporal.Sequence, error) {
	if len(timestamps) != len(xs) || len(xs) != len(ys) || len(ys) != len(zs) {
		return nil, fmt.Errorf("%w: %d timestamps for %d/%d/%d coordinates",
			errs.ErrDimensionalityMismatch, len(timestamps), len(xs), len(ys), len(zs))
	}
	instants := make([]temporal.Instant, len(timestamps))
	for i, t := range timestamps {
		instants[i] = temporal.NewInstant(value.Point3D{X: xs[i], Y: ys[i], Z: zs[i]}, t)
	}

	return temporal.NewSequence(instants, lowerInc, upperInc, interp, true)
}

// ConstantFloat builds the sequence holding v over the whole period p.
func ConstantFloat(v float64, p period.Period, interp temporal.Interp) *temporal.Sequence {
	return temporal.FromBase(value.Float(v), p, interp)
}
