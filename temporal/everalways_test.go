package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tseqio/tseq/value"
)

func TestEverAlwaysEq(t *testing.T) {
	linear := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})

	require.True(t, linear.EverEq(value.Float(3)))
	require.True(t, linear.EverEq(value.Float(1)))
	require.True(t, linear.EverEq(value.Float(5)))
	require.False(t, linear.EverEq(value.Float(6)))
	require.False(t, linear.EverEq(value.Point2D{X: 1, Y: 1}))
	require.False(t, linear.AlwaysEq(value.Float(3)))

	// An excluded endpoint value is never attained.
	open := floatSeq(t, InterpLinear, false, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.False(t, open.EverEq(value.Float(1)))
	require.True(t, open.EverEq(value.Float(5)))

	constant := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{2, 2})
	require.True(t, constant.AlwaysEq(value.Float(2)))
	require.False(t, constant.AlwaysEq(value.Float(3)))
	require.True(t, constant.EverEq(value.Float(2)))

	// Step sequences attain exactly their instant values.
	step := floatSeq(t, InterpStep, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.True(t, step.EverEq(value.Float(1)))
	require.False(t, step.EverEq(value.Float(3)))
}

func TestEverAlwaysLess(t *testing.T) {
	seq := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})

	require.True(t, seq.EverLt(value.Float(2)))
	require.False(t, seq.EverLt(value.Float(1)))
	require.True(t, seq.EverLe(value.Float(1)))
	require.False(t, seq.EverLe(value.Float(0.5)))

	require.True(t, seq.AlwaysLt(value.Float(6)))
	require.False(t, seq.AlwaysLt(value.Float(5)))
	require.True(t, seq.AlwaysLe(value.Float(5)))
	require.False(t, seq.AlwaysLe(value.Float(4.5)))

	// Comparisons apply to floats only.
	require.False(t, seq.EverLt(value.Point2D{X: 9, Y: 9}))
	require.False(t, seq.AlwaysLe(value.Point2D{X: 9, Y: 9}))
}

func TestEverAlwaysLessExclusiveBounds(t *testing.T) {
	// The maximum 5 sits on the exclusive upper bound, so it is approached
	// but never attained.
	open := floatSeq(t, InterpLinear, true, false,
		[]int64{0, 4 * sec}, []float64{1, 5})

	require.True(t, open.AlwaysLt(value.Float(5)))
	require.True(t, open.AlwaysLe(value.Float(5)))
	require.False(t, open.AlwaysLt(value.Float(4.5)))

	// The minimum 1 sits on the exclusive lower bound.
	openLow := floatSeq(t, InterpLinear, false, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.False(t, openLow.EverLe(value.Float(1)))
	require.True(t, openLow.EverLe(value.Float(1.5)))
	require.False(t, openLow.EverLt(value.Float(1)))
}

func TestEverAlwaysGreater(t *testing.T) {
	seq := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})

	require.True(t, seq.EverGt(value.Float(4)))
	require.False(t, seq.EverGt(value.Float(5)))
	require.True(t, seq.EverGe(value.Float(5)))
	require.False(t, seq.EverGe(value.Float(6)))
	require.True(t, seq.AlwaysGe(value.Float(1)))
	require.False(t, seq.AlwaysGe(value.Float(2)))
	require.True(t, seq.AlwaysGt(value.Float(0)))
	require.False(t, seq.AlwaysGt(value.Float(1)))
}

func TestAlwaysLtStep(t *testing.T) {
	step := floatSeq(t, InterpStep, true, false,
		[]int64{0, 4 * sec, 8 * sec}, []float64{1, 5, 5})

	// Step sequences attain every instant value regardless of bounds.
	require.False(t, step.AlwaysLt(value.Float(5)))
	require.True(t, step.AlwaysLt(value.Float(6)))
}
