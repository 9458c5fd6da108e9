package value

import "strconv"

// Range is a range of float values with inclusive or exclusive bounds. It is
// the argument type of the numeric restriction operators.
type Range struct {
	Lower, Upper       float64
	LowerInc, UpperInc bool
}

// NewRange builds a range; lower must not exceed upper, and a degenerate
// range (lower == upper) must have both bounds inclusive to be non-empty.
func NewRange(lower, upper float64, lowerInc, upperInc bool) Range {
	return Range{Lower: lower, Upper: upper, LowerInc: lowerInc, UpperInc: upperInc}
}

// IsEmpty reports whether the range contains no values.
func (r Range) IsEmpty() bool {
	if r.Lower > r.Upper {
		return true
	}

	return r.Lower == r.Upper && !(r.LowerInc && r.UpperInc)
}

// Contains reports whether v lies within the range, honoring bound
// inclusivity.
func (r Range) Contains(v float64) bool {
	if v < r.Lower || v > r.Upper {
		return false
	}
	if v == r.Lower && !r.LowerInc {
		return false
	}
	if v == r.Upper && !r.UpperInc {
		return false
	}

	return true
}

// Intersect returns the overlap of two ranges; ok is false when they are
// disjoint.
func (r Range) Intersect(other Range) (Range, bool) {
	var out Range
	switch {
	case r.Lower > other.Lower:
		out.Lower, out.LowerInc = r.Lower, r.LowerInc
	case r.Lower < other.Lower:
		out.Lower, out.LowerInc = other.Lower, other.LowerInc
	default:
		out.Lower, out.LowerInc = r.Lower, r.LowerInc && other.LowerInc
	}
	switch {
	case r.Upper < other.Upper:
		out.Upper, out.UpperInc = r.Upper, r.UpperInc
	case r.Upper > other.Upper:
		out.Upper, out.UpperInc = other.Upper, other.UpperInc
	default:
		out.Upper, out.UpperInc = r.Upper, r.UpperInc && other.UpperInc
	}
	if out.IsEmpty() {
		return Range{}, false
	}

	return out, true
}

// Overlaps reports whether the two ranges share at least one value.
func (r Range) Overlaps(other Range) bool {
	_, ok := r.Intersect(other)
	return ok
}

func (r Range) String() string {
	open, close := "(", ")"
	if r.LowerInc {
		open = "["
	}
	if r.UpperInc {
		close = "]"
	}

	return open + strconv.FormatFloat(r.Lower, 'g', -1, 64) + ", " +
		strconv.FormatFloat(r.Upper, 'g', -1, 64) + close
}
