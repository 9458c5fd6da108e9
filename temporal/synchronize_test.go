package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/value"
)

func TestIntersection(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 8 * sec}, []float64{0, 8})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{4 * sec, 12 * sec}, []float64{10, 2})

	left, right, ok := Intersection(a, b)
	require.True(t, ok)
	require.Equal(t, left.Period(), right.Period())
	require.Equal(t, period.Period{Lower: 4 * sec, Upper: 8 * sec, LowerInc: true, UpperInc: true},
		left.Period())
	require.Equal(t, []float64{4, 8}, seqValues(left))
	require.Equal(t, []float64{10, 6}, seqValues(right))

	far := floatSeq(t, InterpLinear, true, true,
		[]int64{20 * sec, 30 * sec}, []float64{1, 2})
	_, _, ok = Intersection(a, far)
	require.False(t, ok)
}

func TestSynchronizeAlignsTimestamps(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 8 * sec}, []float64{0, 8})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec, 8 * sec}, []float64{3, 1, 7})

	sync1, sync2, ok := Synchronize(a, b, false)
	require.True(t, ok)
	require.Equal(t, seqTimes(sync1), seqTimes(sync2))
	require.Equal(t, []int64{0, 4 * sec, 8 * sec}, seqTimes(sync1))
	// The missing instant of a is materialized by interpolation.
	require.Equal(t, []float64{0, 4, 8}, seqValues(sync1))
	require.Equal(t, []float64{3, 1, 7}, seqValues(sync2))
}

func TestSynchronizeAddsCrossings(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{5, 1})

	sync1, sync2, ok := Synchronize(a, b, true)
	require.True(t, ok)
	require.Equal(t, []int64{0, 2 * sec, 4 * sec}, seqTimes(sync1))
	require.Equal(t, seqTimes(sync1), seqTimes(sync2))
	// Both sequences take the value 3 at the crossing.
	require.Equal(t, 3.0, seqValues(sync1)[1])
	require.Equal(t, 3.0, seqValues(sync2)[1])

	// Without crossings only the shared instants remain.
	plain1, plain2, ok := Synchronize(a, b, false)
	require.True(t, ok)
	require.Equal(t, []int64{0, 4 * sec}, seqTimes(plain1))
	require.Equal(t, []int64{0, 4 * sec}, seqTimes(plain2))
}

func TestSynchronizeMicrosecondSpanKeepsMonotonicTime(t *testing.T) {
	// On a one-microsecond segment the crossing timestamp truncates onto the
	// segment start; inserting it would duplicate a timestamp.
	a := floatSeq(t, InterpLinear, true, true, []int64{0, 1}, []float64{0, 1})
	b := floatSeq(t, InterpLinear, true, true, []int64{0, 1}, []float64{1, 0})

	sync1, sync2, ok := Synchronize(a, b, true)
	require.True(t, ok)
	require.Equal(t, []int64{0, 1}, seqTimes(sync1))
	require.Equal(t, []int64{0, 1}, seqTimes(sync2))
	require.Equal(t, []float64{0, 1}, seqValues(sync1))
	require.Equal(t, []float64{1, 0}, seqValues(sync2))
}

func TestSynchronizeStepWithLinear(t *testing.T) {
	held := floatSeq(t, InterpStep, true, true,
		[]int64{0, 4 * sec}, []float64{3, 0})
	ramp := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{5, 1})

	sync1, sync2, ok := Synchronize(held, ramp, true)
	require.True(t, ok)
	require.Equal(t, InterpStep, sync1.Interp())
	require.Equal(t, InterpLinear, sync2.Interp())
	require.Equal(t, seqTimes(sync1), seqTimes(sync2))
	require.Equal(t, 3, sync1.Count())

	// The crossing sits where the ramp passes the held value 3.
	crossT := seqTimes(sync1)[1]
	require.Equal(t, 2*sec, crossT)
	require.Equal(t, 3.0, seqValues(sync1)[1])
	require.InDelta(t, 3.0, seqValues(sync2)[1], 1e-9)
}

func TestSynchronizePartialOverlap(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 8 * sec}, []float64{0, 8})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{4 * sec, 12 * sec}, []float64{0, 8})

	sync1, sync2, ok := Synchronize(a, b, false)
	require.True(t, ok)
	require.Equal(t, period.Period{Lower: 4 * sec, Upper: 8 * sec, LowerInc: true, UpperInc: true},
		sync1.Period())
	require.Equal(t, seqTimes(sync1), seqTimes(sync2))
	require.Equal(t, []float64{4, 8}, seqValues(sync1))
	require.Equal(t, []float64{0, 4}, seqValues(sync2))
}

func TestSynchronizeInstantOverlap(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{0, 4})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{4 * sec, 8 * sec}, []float64{9, 1})

	sync1, sync2, ok := Synchronize(a, b, true)
	require.True(t, ok)
	require.Equal(t, 1, sync1.Count())
	require.Equal(t, 1, sync2.Count())
	require.Equal(t, NewInstant(value.Float(4), 4*sec), sync1.StartInstant())
	require.Equal(t, NewInstant(value.Float(9), 4*sec), sync2.StartInstant())
}

func TestSynchronizeStepExclusiveUpper(t *testing.T) {
	stepA, err := NewSequence([]Instant{
		NewInstant(value.Float(1), 0),
		NewInstant(value.Float(1), 8*sec),
	}, true, false, InterpStep, false)
	require.NoError(t, err)
	rampB := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec, 8 * sec}, []float64{9, 7, 9})

	sync1, sync2, ok := Synchronize(stepA, rampB, false)
	require.True(t, ok)
	require.False(t, sync1.Period().UpperInc)
	// The step result closes with its held value on the exclusive bound.
	require.Equal(t, []float64{1, 1, 1}, seqValues(sync1))
	require.Equal(t, []float64{9, 7, 9}, seqValues(sync2))
}

func TestSynchronizeInstant(t *testing.T) {
	seq := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})

	at, given, ok := seq.SynchronizeInstant(NewInstant(value.Float(42), 2*sec))
	require.True(t, ok)
	require.Equal(t, NewInstant(value.Float(3), 2*sec), at)
	require.Equal(t, NewInstant(value.Float(42), 2*sec), given)

	_, _, ok = seq.SynchronizeInstant(NewInstant(value.Float(42), 9*sec))
	require.False(t, ok)
}
