package period

import (
	"sort"
	"strings"
)

// Set is an ordered collection of disjoint, non-adjacent periods. It is the
// normalized form every set-valued time computation produces and consumes.
type Set struct {
	periods []Period
}

// NewSet builds a normalized set from the given periods: they are sorted and
// overlapping or adjacent entries are unioned.
func NewSet(periods ...Period) Set {
	if len(periods) == 0 {
		return Set{}
	}
	ps := make([]Period, len(periods))
	copy(ps, periods)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Compare(ps[j]) < 0 })

	out := make([]Period, 0, len(ps))
	curr := ps[0]
	for _, p := range ps[1:] {
		if curr.Overlaps(p) || curr.IsAdjacent(p) {
			if cmpUpper(p.Upper, p.UpperInc, curr.Upper, curr.UpperInc) > 0 {
				curr.Upper, curr.UpperInc = p.Upper, p.UpperInc
			}
			continue
		}
		out = append(out, curr)
		curr = p
	}
	out = append(out, curr)

	return Set{periods: out}
}

// Count returns the number of periods in the set.
func (s Set) Count() int { return len(s.periods) }

// IsEmpty reports whether the set has no periods.
func (s Set) IsEmpty() bool { return len(s.periods) == 0 }

// Period returns the i-th period in time order.
func (s Set) Period(i int) Period { return s.periods[i] }

// Span returns the bounding period of the whole set, or the zero period for
// an empty set.
func (s Set) Span() Period {
	if len(s.periods) == 0 {
		return Period{}
	}
	first := s.periods[0]
	last := s.periods[len(s.periods)-1]

	return Period{
		Lower: first.Lower, Upper: last.Upper,
		LowerInc: first.LowerInc, UpperInc: last.UpperInc,
	}
}

// ContainsTimestamp reports whether any period in the set contains t.
func (s Set) ContainsTimestamp(t int64) bool {
	i, found := s.FindTimestamp(t)
	return found && s.periods[i].ContainsTimestamp(t)
}

// FindTimestamp locates the period containing t. When no period contains t
// it returns the index of the first period starting after t and found is
// false.
func (s Set) FindTimestamp(t int64) (int, bool) {
	i := sort.Search(len(s.periods), func(i int) bool {
		p := s.periods[i]
		return p.Upper > t || (p.Upper == t && p.UpperInc)
	})
	if i < len(s.periods) && s.periods[i].ContainsTimestamp(t) {
		return i, true
	}

	return i, false
}

// Minus returns the portions of p not covered by the set, as a normalized
// set. It is the time-domain complement used to derive every "minus"
// restriction from its "at" counterpart.
func Minus(p Period, s Set) Set {
	remaining := []Period{p}
	for i := 0; i < s.Count(); i++ {
		sub := s.Period(i)
		var next []Period
		for _, r := range remaining {
			next = append(next, r.Minus(sub)...)
		}
		remaining = next
		if len(remaining) == 0 {
			break
		}
	}

	return Set{periods: remaining}
}

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range s.periods {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
