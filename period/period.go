// Package period implements the time-interval algebra the temporal core
// restricts against: periods with inclusive or exclusive bounds, disjoint
// period sets, and sorted timestamp sets.
//
// Timestamps are int64 Unix microseconds throughout, matching the rest of
// the module.
package period

import (
	"fmt"
	"time"

	"github.com/tseqio/tseq/errs"
)

// Period is a bounded time interval with per-bound inclusivity.
type Period struct {
	Lower, Upper       int64
	LowerInc, UpperInc bool
}

// New builds a period. The bounds must be ordered, and a degenerate period
// (lower == upper) must be doubly inclusive.
func New(lower, upper int64, lowerInc, upperInc bool) (Period, error) {
	if upper < lower {
		return Period{}, fmt.Errorf("%w: period upper bound %d before lower bound %d",
			errs.ErrInvalidBounds, upper, lower)
	}
	if lower == upper && !(lowerInc && upperInc) {
		return Period{}, fmt.Errorf("%w: instantaneous period must have inclusive bounds",
			errs.ErrInvalidBounds)
	}

	return Period{Lower: lower, Upper: upper, LowerInc: lowerInc, UpperInc: upperInc}, nil
}

// At returns the degenerate period covering exactly the timestamp t.
func At(t int64) Period {
	return Period{Lower: t, Upper: t, LowerInc: true, UpperInc: true}
}

// IsInstant reports whether the period covers a single timestamp.
func (p Period) IsInstant() bool { return p.Lower == p.Upper }

// Duration returns the length of the period in microseconds.
func (p Period) Duration() int64 { return p.Upper - p.Lower }

// ContainsTimestamp reports whether t lies within the period.
func (p Period) ContainsTimestamp(t int64) bool {
	if t < p.Lower || t > p.Upper {
		return false
	}
	if t == p.Lower && !p.LowerInc {
		return false
	}
	if t == p.Upper && !p.UpperInc {
		return false
	}

	return true
}

// Contains reports whether the period fully covers other.
func (p Period) Contains(other Period) bool {
	if cmpLower(p.Lower, p.LowerInc, other.Lower, other.LowerInc) > 0 {
		return false
	}

	return cmpUpper(p.Upper, p.UpperInc, other.Upper, other.UpperInc) >= 0
}

// Overlaps reports whether the two periods share at least one timestamp.
func (p Period) Overlaps(other Period) bool {
	_, ok := p.Intersection(other)
	return ok
}

// Intersection returns the overlap of the two periods; ok is false when they
// are disjoint.
func (p Period) Intersection(other Period) (Period, bool) {
	out := p
	if cmpLower(other.Lower, other.LowerInc, out.Lower, out.LowerInc) > 0 {
		out.Lower, out.LowerInc = other.Lower, other.LowerInc
	}
	if cmpUpper(other.Upper, other.UpperInc, out.Upper, out.UpperInc) < 0 {
		out.Upper, out.UpperInc = other.Upper, other.UpperInc
	}
	if out.Upper < out.Lower {
		return Period{}, false
	}
	if out.Lower == out.Upper && !(out.LowerInc && out.UpperInc) {
		return Period{}, false
	}

	return out, true
}

// Minus returns the portions of the period not covered by other, in time
// order. The result holds zero, one, or two periods.
func (p Period) Minus(other Period) []Period {
	inter, ok := p.Intersection(other)
	if !ok {
		return []Period{p}
	}
	var out []Period
	if cmpLower(p.Lower, p.LowerInc, inter.Lower, inter.LowerInc) < 0 {
		out = append(out, Period{
			Lower: p.Lower, Upper: inter.Lower,
			LowerInc: p.LowerInc, UpperInc: !inter.LowerInc,
		})
	}
	if cmpUpper(inter.Upper, inter.UpperInc, p.Upper, p.UpperInc) < 0 {
		out = append(out, Period{
			Lower: inter.Upper, Upper: p.Upper,
			LowerInc: !inter.UpperInc, UpperInc: p.UpperInc,
		})
	}

	return out
}

// IsAdjacent reports whether other starts exactly where the period ends,
// with at least one of the touching bounds inclusive so the union is
// gap-free.
func (p Period) IsAdjacent(other Period) bool {
	return p.Upper == other.Lower && (p.UpperInc || other.LowerInc)
}

// Shift moves the period by d microseconds.
func (p Period) Shift(d int64) Period {
	p.Lower += d
	p.Upper += d

	return p
}

// Equal reports exact equality of bounds and inclusivity flags.
func (p Period) Equal(other Period) bool { return p == other }

// Compare returns -1, 0, or 1 ordering periods by lower bound, then upper
// bound. An inclusive lower bound orders before an exclusive one at the same
// timestamp; an exclusive upper bound orders before an inclusive one.
func (p Period) Compare(other Period) int {
	if c := cmpLower(p.Lower, p.LowerInc, other.Lower, other.LowerInc); c != 0 {
		return c
	}

	return cmpUpper(p.Upper, p.UpperInc, other.Upper, other.UpperInc)
}

func (p Period) String() string {
	open, close := "(", ")"
	if p.LowerInc {
		open = "["
	}
	if p.UpperInc {
		close = "]"
	}

	return open + FormatTimestamp(p.Lower) + ", " + FormatTimestamp(p.Upper) + close
}

// FormatTimestamp renders a microsecond timestamp in the canonical UTC text
// form shared by the sequence codec.
func FormatTimestamp(t int64) string {
	return time.UnixMicro(t).UTC().Format(time.RFC3339Nano)
}

// cmpLower orders two lower bounds: earlier timestamps first, and at equal
// timestamps the inclusive bound starts first.
func cmpLower(t1 int64, inc1 bool, t2 int64, inc2 bool) int {
	if t1 != t2 {
		if t1 < t2 {
			return -1
		}

		return 1
	}
	if inc1 == inc2 {
		return 0
	}
	if inc1 {
		return -1
	}

	return 1
}

// cmpUpper orders two upper bounds: earlier timestamps first, and at equal
// timestamps the exclusive bound ends first.
func cmpUpper(t1 int64, inc1 bool, t2 int64, inc2 bool) int {
	if t1 != t2 {
		if t1 < t2 {
			return -1
		}

		return 1
	}
	if inc1 == inc2 {
		return 0
	}
	if inc1 {
		return 1
	}

	return -1
}
