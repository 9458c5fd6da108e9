package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/value"
)

func TestNewSequenceSetJoinsSeamless(t *testing.T) {
	t.Run("collinear junction", func(t *testing.T) {
		a := floatSeq(t, InterpLinear, true, false,
			[]int64{0, 4 * sec}, []float64{1, 5})
		b := floatSeq(t, InterpLinear, true, true,
			[]int64{4 * sec, 8 * sec}, []float64{5, 9})

		set := NewSequenceSet(a, b)
		require.Equal(t, 1, set.Count())
		require.Equal(t, []int64{0, 8 * sec}, seqTimes(set.Seq(0)))
	})

	t.Run("bent junction stays split", func(t *testing.T) {
		a := floatSeq(t, InterpLinear, true, false,
			[]int64{0, 4 * sec}, []float64{1, 5})
		b := floatSeq(t, InterpLinear, true, true,
			[]int64{4 * sec, 8 * sec}, []float64{5, 1})

		set := NewSequenceSet(a, b)
		require.Equal(t, 1, set.Count())
		// Joined on the equal junction value, keeping the bend.
		require.Equal(t, []int64{0, 4 * sec, 8 * sec}, seqTimes(set.Seq(0)))
	})

	t.Run("gap stays split", func(t *testing.T) {
		a := floatSeq(t, InterpLinear, true, true,
			[]int64{0, 4 * sec}, []float64{1, 5})
		b := floatSeq(t, InterpLinear, true, true,
			[]int64{6 * sec, 8 * sec}, []float64{5, 9})

		set := NewSequenceSet(a, b)
		require.Equal(t, 2, set.Count())
	})

	t.Run("step held junction drops the repeated closer", func(t *testing.T) {
		a, err := NewSequence([]Instant{
			NewInstant(value.Float(1), 0),
			NewInstant(value.Float(1), 4*sec),
		}, true, false, InterpStep, false)
		require.NoError(t, err)
		b := floatSeq(t, InterpStep, true, true,
			[]int64{4 * sec, 8 * sec}, []float64{2, 3})

		set := NewSequenceSet(a, b)
		require.Equal(t, 1, set.Count())
		got := set.Seq(0)
		require.Equal(t, []int64{0, 4 * sec, 8 * sec}, seqTimes(got))
		require.Equal(t, []float64{1, 2, 3}, seqValues(got))
	})

	t.Run("step junction keeps the held instant", func(t *testing.T) {
		// 1 -> 2 -> 3 is collinear on time, but a step evolution attains the
		// held value 2, so the junction instant must survive the join.
		a := floatSeq(t, InterpStep, true, true,
			[]int64{0, 4 * sec}, []float64{1, 2})
		b := floatSeq(t, InterpStep, false, true,
			[]int64{4 * sec, 8 * sec}, []float64{2, 3})

		set := NewSequenceSet(a, b)
		require.Equal(t, 1, set.Count())
		require.Equal(t, []int64{0, 4 * sec, 8 * sec}, seqTimes(set.Seq(0)))
		require.Equal(t, []float64{1, 2, 3}, seqValues(set.Seq(0)))
	})
}

func TestSequenceSetAccessors(t *testing.T) {
	a := floatSeq(t, InterpLinear, true, false,
		[]int64{0, 4 * sec}, []float64{1, 5})
	b := floatSeq(t, InterpLinear, true, true,
		[]int64{6 * sec, 8 * sec}, []float64{5, 9})
	set := NewSequenceSet(a, b)

	require.Equal(t, 2, set.Count())
	require.False(t, set.IsEmpty())
	require.Equal(t, 6*sec, set.Duration())
	require.Equal(t, period.Period{Lower: 0, Upper: 8 * sec, LowerInc: true, UpperInc: true},
		set.Span())

	times := set.Time()
	require.Equal(t, 2, times.Count())
	require.Equal(t, a.Period(), times.Period(0))
	require.Equal(t, b.Period(), times.Period(1))

	other := NewSequenceSet(a, b)
	require.True(t, set.Equal(other))
	require.False(t, set.Equal(NewSequenceSet(a)))

	seqs := set.Sequences()
	require.Len(t, seqs, 2)
	require.Same(t, set.Seq(0), seqs[0])
}

func TestSequenceSetEmpty(t *testing.T) {
	empty := NewSequenceSet()
	require.True(t, empty.IsEmpty())
	require.Zero(t, empty.Count())
	require.Zero(t, empty.Duration())
	require.Equal(t, period.Period{}, empty.Span())
	require.True(t, empty.Time().IsEmpty())
}
