package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tseqio/tseq/errs"
	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/value"
)

func TestMergeTouchingSequences(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{4 * sec, 8 * sec}, []float64{5, 2})

	// Input order does not matter.
	set, err := Merge(b, a)
	require.NoError(t, err)
	require.Equal(t, 1, set.Count())
	got := set.Seq(0)
	require.Equal(t, []int64{0, 4 * sec, 8 * sec}, seqTimes(got))
	require.Equal(t, []float64{1, 5, 2}, seqValues(got))
	require.Equal(t, period.Period{Lower: 0, Upper: 8 * sec, LowerInc: true, UpperInc: true},
		got.Period())
}

func TestMergeKeepsGaps(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	c := floatSeq(t, InterpLinear, true, true,
		[]int64{10 * sec, 14 * sec}, []float64{2, 3})

	set, err := Merge(a, c)
	require.NoError(t, err)
	require.Equal(t, 2, set.Count())
	require.Equal(t, 14*sec-10*sec+4*sec, set.Duration())
	require.Equal(t, period.Period{Lower: 0, Upper: 14 * sec, LowerInc: true, UpperInc: true},
		set.Span())
}

func TestMergeStepHeldJunction(t *testing.T) {
	a, err := NewSequence([]Instant{
		NewInstant(value.Float(1), 0),
		NewInstant(value.Float(1), 10*sec),
	}, true, false, InterpStep, false)
	require.NoError(t, err)
	b := floatSeq(t, InterpStep, true, true,
		[]int64{10 * sec, 20 * sec}, []float64{2, 2})

	set, err := Merge(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, set.Count())
	got := set.Seq(0)
	require.Equal(t, []int64{0, 10 * sec, 20 * sec}, seqTimes(got))
	require.Equal(t, []float64{1, 2, 2}, seqValues(got))

	v, ok := got.ValueAt(5 * sec)
	require.True(t, ok)
	require.Equal(t, value.Float(1), v)
	v, ok = got.ValueAt(10 * sec)
	require.True(t, ok)
	require.Equal(t, value.Float(2), v)
}

func TestMergeCollinearJunctionNormalizes(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{4 * sec, 8 * sec}, []float64{5, 9})

	set, err := Merge(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, set.Count())
	// The junction instant is redundant on the collinear run.
	require.Equal(t, []int64{0, 8 * sec}, seqTimes(set.Seq(0)))
	require.Equal(t, []float64{1, 9}, seqValues(set.Seq(0)))
}

func TestMergeErrors(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 10 * sec}, []float64{1, 5})

	t.Run("overlap on time", func(t *testing.T) {
		b := floatSeq(t, InterpLinear, true, true,
			[]int64{5 * sec, 15 * sec}, []float64{1, 5})
		_, err := Merge(a, b)
		require.ErrorIs(t, err, errs.ErrConflictingOverlap)
	})

	t.Run("conflicting boundary values", func(t *testing.T) {
		b := floatSeq(t, InterpLinear, true, true,
			[]int64{10 * sec, 20 * sec}, []float64{9, 1})
		_, err := Merge(a, b)
		require.ErrorIs(t, err, errs.ErrConflictingOverlap)
	})

	t.Run("mixed interpolation", func(t *testing.T) {
		b := floatSeq(t, InterpStep, true, true,
			[]int64{20 * sec, 30 * sec}, []float64{1, 2})
		_, err := Merge(a, b)
		require.ErrorIs(t, err, errs.ErrUnsupportedInterpolation)
	})

	t.Run("mixed kinds", func(t *testing.T) {
		instants := []Instant{
			NewInstant(value.Point2D{X: 1, Y: 1}, 20*sec),
			NewInstant(value.Point2D{X: 2, Y: 2}, 30*sec),
		}
		b, err := NewSequence(instants, true, true, InterpLinear, false)
		require.NoError(t, err)
		_, err = Merge(a, b)
		require.ErrorIs(t, err, errs.ErrDimensionalityMismatch)
	})
}

func TestMergeExclusiveBoundaryKeepsBoth(t *testing.T) {
	// The shared timestamp is covered by b only, so differing values are
	// fine: a approaches 5 but never attains it. The ramp of a must survive,
	// so the two sequences stay separate.
	a := floatSeq(t, InterpLinear, true, false,
		[]int64{0, 4 * sec}, []float64{1, 5})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{4 * sec, 8 * sec}, []float64{7, 9})

	set, err := Merge(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, set.Count())
	require.True(t, set.Seq(0).Equal(a))
	require.True(t, set.Seq(1).Equal(b))

	// With matching junction values the evolutions fuse, and the collinear
	// junction instant normalizes away.
	c := floatSeq(t, InterpLinear, true, true,
		[]int64{4 * sec, 8 * sec}, []float64{5, 9})
	set, err = Merge(a, c)
	require.NoError(t, err)
	require.Equal(t, 1, set.Count())
	require.Equal(t, []int64{0, 8 * sec}, seqTimes(set.Seq(0)))
	require.Equal(t, []float64{1, 9}, seqValues(set.Seq(0)))
}

func TestMergeSingleAndEmpty(t *testing.T) {
	empty, err := Merge()
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	a := floatSeq(t, InterpLinear, true, true,
		[]int64{0, 4 * sec}, []float64{1, 5})
	one, err := Merge(a)
	require.NoError(t, err)
	require.Equal(t, 1, one.Count())
	require.Same(t, a, one.Seq(0))
}
