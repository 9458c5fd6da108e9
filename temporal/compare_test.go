package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tseqio/tseq/value"
)

func TestSequenceEqual(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.True(t, a.Equal(b))

	// Any differing facet breaks equality.
	differentValue := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 6})
	require.False(t, a.Equal(differentValue))

	differentBound := floatSeq(t, InterpLinear, true, false,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.False(t, a.Equal(differentBound))

	differentInterp := floatSeq(t, InterpStep, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.False(t, a.Equal(differentInterp))
}

func TestSequenceCompare(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	later := floatSeq(t, InterpLinear, true, true,
		[]int64{sec, 4 * sec}, []float64{1, 5})
	require.Equal(t, -1, a.Compare(later))
	require.Equal(t, 1, later.Compare(a))
	require.Zero(t, a.Compare(a))

	bigger := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 6})
	require.Equal(t, -1, a.Compare(bigger))
}

func TestSequenceHash(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.Equal(t, a.Hash(), b.Hash())

	differentBound := floatSeq(t, InterpLinear, true, false,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.NotEqual(t, a.Hash(), differentBound.Hash())

	differentInterp := floatSeq(t, InterpStep, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	require.NotEqual(t, a.Hash(), differentInterp.Hash())

	differentValue := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5.5})
	require.NotEqual(t, a.Hash(), differentValue.Hash())
}

func TestInstantCompareAndHash(t *testing.T) {
	early := NewInstant(value.Float(9), 0)
	late := NewInstant(value.Float(1), sec)
	require.Equal(t, -1, early.Compare(late))
	require.Equal(t, 1, late.Compare(early))

	small := NewInstant(value.Float(1), 0)
	require.Equal(t, 1, early.Compare(small))
	require.Zero(t, small.Compare(small))

	require.Equal(t, small.Hash(), NewInstant(value.Float(1), 0).Hash())
	require.NotEqual(t, small.Hash(), early.Hash())
}
