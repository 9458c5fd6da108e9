package period

import (
	"sort"
	"strings"
)

// TimestampSet is an ordered set of distinct timestamps.
type TimestampSet struct {
	times []int64
}

// NewTimestampSet builds a set from the given timestamps, sorting them and
// dropping duplicates.
func NewTimestampSet(times ...int64) TimestampSet {
	if len(times) == 0 {
		return TimestampSet{}
	}
	ts := make([]int64, len(times))
	copy(ts, times)
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	out := ts[:1]
	for _, t := range ts[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}

	return TimestampSet{times: out}
}

// Count returns the number of timestamps in the set.
func (s TimestampSet) Count() int { return len(s.times) }

// IsEmpty reports whether the set has no timestamps.
func (s TimestampSet) IsEmpty() bool { return len(s.times) == 0 }

// Time returns the i-th timestamp in ascending order.
func (s TimestampSet) Time(i int) int64 { return s.times[i] }

// Span returns the doubly-inclusive bounding period of the set, or the zero
// period for an empty set.
func (s TimestampSet) Span() Period {
	if len(s.times) == 0 {
		return Period{}
	}

	return Period{
		Lower: s.times[0], Upper: s.times[len(s.times)-1],
		LowerInc: true, UpperInc: true,
	}
}

// Contains reports whether t is in the set.
func (s TimestampSet) Contains(t int64) bool {
	i := s.Search(t)
	return i < len(s.times) && s.times[i] == t
}

// Search returns the index of the first timestamp >= t.
func (s TimestampSet) Search(t int64) int {
	return sort.Search(len(s.times), func(i int) bool { return s.times[i] >= t })
}

func (s TimestampSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, t := range s.times {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatTimestamp(t))
	}
	sb.WriteByte('}')

	return sb.String()
}
