package period

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSetNormalizes(t *testing.T) {
	s := NewSet(
		Period{Lower: 50, Upper: 60, LowerInc: true, UpperInc: true},
		Period{Lower: 0, Upper: 10, LowerInc: true, UpperInc: false},
		Period{Lower: 10, Upper: 20, LowerInc: true, UpperInc: true},
		Period{Lower: 15, Upper: 25, LowerInc: true, UpperInc: true},
	)

	require.Equal(t, 2, s.Count())
	require.Equal(t, Period{Lower: 0, Upper: 25, LowerInc: true, UpperInc: true}, s.Period(0))
	require.Equal(t, Period{Lower: 50, Upper: 60, LowerInc: true, UpperInc: true}, s.Period(1))
	require.Equal(t, Period{Lower: 0, Upper: 60, LowerInc: true, UpperInc: true}, s.Span())
}

func TestSetFindTimestamp(t *testing.T) {
	s := NewSet(
		Period{Lower: 0, Upper: 10, LowerInc: true, UpperInc: false},
		Period{Lower: 20, Upper: 30, LowerInc: true, UpperInc: true},
	)

	i, found := s.FindTimestamp(5)
	require.True(t, found)
	require.Equal(t, 0, i)

	_, found = s.FindTimestamp(10)
	require.False(t, found)

	i, found = s.FindTimestamp(15)
	require.False(t, found)
	require.Equal(t, 1, i)

	require.True(t, s.ContainsTimestamp(30))
	require.False(t, s.ContainsTimestamp(31))
}

func TestSetMinus(t *testing.T) {
	p := Period{Lower: 0, Upper: 100, LowerInc: true, UpperInc: true}
	s := NewSet(
		Period{Lower: 10, Upper: 20, LowerInc: true, UpperInc: false},
		Period{Lower: 50, Upper: 60, LowerInc: false, UpperInc: true},
	)

	out := Minus(p, s)
	require.Equal(t, 3, out.Count())
	require.Equal(t, Period{Lower: 0, Upper: 10, LowerInc: true, UpperInc: false}, out.Period(0))
	require.Equal(t, Period{Lower: 20, Upper: 50, LowerInc: true, UpperInc: true}, out.Period(1))
	require.Equal(t, Period{Lower: 60, Upper: 100, LowerInc: false, UpperInc: true}, out.Period(2))

	// Subtracting a covering set leaves nothing.
	require.True(t, Minus(p, NewSet(p)).IsEmpty())

	// Subtracting an empty set leaves the original.
	out = Minus(p, Set{})
	require.Equal(t, 1, out.Count())
	require.Equal(t, p, out.Period(0))
}

func TestTimestampSet(t *testing.T) {
	ts := NewTimestampSet(30, 10, 20, 10)
	require.Equal(t, 3, ts.Count())
	require.Equal(t, int64(10), ts.Time(0))
	require.Equal(t, int64(30), ts.Time(2))
	require.True(t, ts.Contains(20))
	require.False(t, ts.Contains(25))
	require.Equal(t, 1, ts.Search(15))
	require.Equal(t, Period{Lower: 10, Upper: 30, LowerInc: true, UpperInc: true}, ts.Span())
	require.True(t, NewTimestampSet().IsEmpty())
	require.Equal(t, Period{}, NewTimestampSet().Span())
}

func TestSetEmptySpan(t *testing.T) {
	require.True(t, NewSet().IsEmpty())
	require.Equal(t, Period{}, NewSet().Span())
}
