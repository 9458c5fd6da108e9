package temporal

import (
	"fmt"

	"github.com/tseqio/tseq/errs"
	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/value"
)

// Interp selects how a sequence evolves between consecutive instants.
type Interp uint8

const (
	// InterpLinear blends consecutive values by elapsed time.
	InterpLinear Interp = iota
	// InterpStep holds each value until the next instant.
	InterpStep
)

func (i Interp) String() string {
	if i == InterpStep {
		return "step"
	}

	return "linear"
}

// Sequence is an ordered run of instants over a bounded period with
// inclusive or exclusive bounds and a fixed interpolation mode. Sequences
// are immutable and always in normal form: no instant can be removed without
// changing the evolution the sequence describes.
type Sequence struct {
	instants []Instant
	period   period.Period
	interp   Interp
	kind     value.Kind
	bbox     value.BBox
	traj     []value.Value
}

// NewSequence constructs a sequence from the given instants.
//
// Parameters:
//   - instants: at least one instant, strictly increasing timestamps, all of
//     one value kind
//   - lowerInc, upperInc: bound inclusivity; a single-instant sequence must
//     have both bounds inclusive
//   - interp: interpolation mode; a step sequence with an exclusive upper
//     bound must repeat its held value at the last instant
//   - normalize: when true, redundant instants are removed so the result is
//     in normal form. Pass false only when the input is known to already be
//     normalized, e.g. when reassembling restriction output.
//
// Returns:
//   - *Sequence: the constructed sequence
//   - error: ErrInvalidBounds, ErrNonMonotonicTime, or
//     ErrDimensionalityMismatch describing the violated rule
func NewSequence(instants []Instant, lowerInc, upperInc bool, interp Interp, normalize bool) (*Sequence, error) {
	if len(instants) == 0 {
		return nil, fmt.Errorf("%w: sequence requires at least one instant", errs.ErrInvalidBounds)
	}
	kind := instants[0].v.Kind()
	for i, inst := range instants {
		if inst.v.Kind() != kind {
			return nil, fmt.Errorf("%w: instant %d has kind %s in a %s sequence",
				errs.ErrDimensionalityMismatch, i, inst.v.Kind(), kind)
		}
		if i > 0 && inst.t <= instants[i-1].t {
			return nil, fmt.Errorf("%w: instant %d at %s does not advance past %s",
				errs.ErrNonMonotonicTime, i, period.FormatTimestamp(inst.t),
				period.FormatTimestamp(instants[i-1].t))
		}
	}
	if len(instants) == 1 && !(lowerInc && upperInc) {
		return nil, fmt.Errorf("%w: single-instant sequence must have inclusive bounds",
			errs.ErrInvalidBounds)
	}
	if interp == InterpStep && len(instants) > 1 && !upperInc &&
		!value.Equal(instants[len(instants)-1].v, instants[len(instants)-2].v) {
		return nil, fmt.Errorf("%w: step sequence with exclusive upper bound must close with its held value",
			errs.ErrInvalidBounds)
	}

	own := make([]Instant, len(instants))
	copy(own, instants)

	return assemble(own, lowerInc, upperInc, interp, normalize), nil
}

// FromBase constructs the constant sequence holding v over period p.
func FromBase(v value.Value, p period.Period, interp Interp) *Sequence {
	if p.IsInstant() {
		return assemble([]Instant{{t: p.Lower, v: v}}, true, true, interp, false)
	}
	instants := []Instant{{t: p.Lower, v: v}, {t: p.Upper, v: v}}

	return assemble(instants, p.LowerInc, p.UpperInc, interp, false)
}

// assemble builds a sequence from instants the caller guarantees are valid.
// It takes ownership of the slice.
func assemble(instants []Instant, lowerInc, upperInc bool, interp Interp, normalize bool) *Sequence {
	if normalize && len(instants) > 1 {
		instants = normalizeInstants(instants, interp)
	}
	kind := instants[0].v.Kind()
	p := period.Period{
		Lower: instants[0].t, Upper: instants[len(instants)-1].t,
		LowerInc: lowerInc, UpperInc: upperInc,
	}
	box := value.NewBBox(kind, p.Lower, p.Upper)
	for _, inst := range instants {
		box.Expand(inst.v)
	}
	s := &Sequence{
		instants: instants,
		period:   p,
		interp:   interp,
		kind:     kind,
		bbox:     box,
	}
	if kind.IsPoint() {
		s.traj = makeTrajectory(instants)
	}

	return s
}

// singleton builds the one-instant sequence holding inst.
func singleton(inst Instant, interp Interp) *Sequence {
	return assemble([]Instant{inst}, true, true, interp, false)
}

// makeTrajectory collects the positions a point sequence visits, dropping
// consecutive duplicates. The result is precomputed once at construction.
func makeTrajectory(instants []Instant) []value.Value {
	traj := make([]value.Value, 0, len(instants))
	traj = append(traj, instants[0].v)
	for _, inst := range instants[1:] {
		if !value.Equal(inst.v, traj[len(traj)-1]) {
			traj = append(traj, inst.v)
		}
	}

	return traj
}

// Count returns the number of instants.
func (s *Sequence) Count() int { return len(s.instants) }

// Inst returns the i-th instant in time order.
func (s *Sequence) Inst(i int) Instant { return s.instants[i] }

// StartInstant returns the first instant.
func (s *Sequence) StartInstant() Instant { return s.instants[0] }

// EndInstant returns the last instant.
func (s *Sequence) EndInstant() Instant { return s.instants[len(s.instants)-1] }

// Instants returns a copy of the composing instants.
func (s *Sequence) Instants() []Instant {
	out := make([]Instant, len(s.instants))
	copy(out, s.instants)

	return out
}

// Kind returns the value kind of the sequence.
func (s *Sequence) Kind() value.Kind { return s.kind }

// Interp returns the interpolation mode.
func (s *Sequence) Interp() Interp { return s.interp }

// Period returns the covered time period.
func (s *Sequence) Period() period.Period { return s.period }

// BBox returns the precomputed bounding summary.
func (s *Sequence) BBox() value.BBox { return s.bbox }

// Duration returns the length of the covered period in microseconds.
func (s *Sequence) Duration() int64 { return s.period.Duration() }

// Time returns the covered time as a one-period set.
func (s *Sequence) Time() period.Set { return period.NewSet(s.period) }

// StartTimestamp returns the first instant's timestamp.
func (s *Sequence) StartTimestamp() int64 { return s.instants[0].t }

// EndTimestamp returns the last instant's timestamp.
func (s *Sequence) EndTimestamp() int64 { return s.instants[len(s.instants)-1].t }

// Timestamps returns the instants' timestamps in ascending order.
func (s *Sequence) Timestamps() []int64 {
	out := make([]int64, len(s.instants))
	for i, inst := range s.instants {
		out[i] = inst.t
	}

	return out
}

// Trajectory returns the positions a point sequence visits, consecutive
// duplicates removed. It returns nil for non-point kinds.
func (s *Sequence) Trajectory() []value.Value {
	if s.traj == nil {
		return nil
	}
	out := make([]value.Value, len(s.traj))
	copy(out, s.traj)

	return out
}

// FindSegment locates the segment containing timestamp t using binary
// search, honoring the bound inclusivity at the outer segments. It returns
// the index of the segment's first instant; found is false when t lies
// outside the sequence or at an exclusive bound.
func (s *Sequence) FindSegment(t int64) (int, bool) {
	first, last := 0, len(s.instants)-2
	for first <= last {
		middle := (first + last) / 2
		inst1 := s.instants[middle]
		inst2 := s.instants[middle+1]
		lowerInc := middle == 0 && s.period.LowerInc || middle > 0
		upperInc := middle == len(s.instants)-2 && s.period.UpperInc
		if (inst1.t < t && t < inst2.t) ||
			(lowerInc && inst1.t == t) || (upperInc && inst2.t == t) {
			return middle, true
		}
		if t <= inst1.t {
			last = middle - 1
		} else {
			first = middle + 1
		}
	}

	return -1, false
}

// ValueAt returns the value taken at timestamp t; ok is false when t lies
// outside the sequence or at an exclusive bound.
func (s *Sequence) ValueAt(t int64) (value.Value, bool) {
	if !s.period.ContainsTimestamp(t) {
		return nil, false
	}
	if len(s.instants) == 1 {
		return s.instants[0].v, true
	}
	n, _ := s.FindSegment(t)

	return segValueAt(s.instants[n], s.instants[n+1], s.interp, t), true
}

// ValueAtInclusive is ValueAt admitting timestamps at exclusive bounds; the
// synchronizer uses it to materialize values on half-open boundaries.
func (s *Sequence) ValueAtInclusive(t int64) (value.Value, bool) {
	if t == s.instants[0].t {
		return s.instants[0].v, true
	}
	if t == s.instants[len(s.instants)-1].t {
		return s.instants[len(s.instants)-1].v, true
	}

	return s.ValueAt(t)
}

// Shift returns a copy of the sequence moved by d microseconds. Values are
// unaffected.
func (s *Sequence) Shift(d int64) *Sequence {
	instants := make([]Instant, len(s.instants))
	for i, inst := range s.instants {
		instants[i] = Instant{t: inst.t + d, v: inst.v}
	}
	out := &Sequence{
		instants: instants,
		period:   s.period.Shift(d),
		interp:   s.interp,
		kind:     s.kind,
		bbox:     s.bbox,
		traj:     s.traj,
	}
	out.bbox.Shift(d)

	return out
}

// Append extends the sequence with one instant, keeping the result in
// normal form: when the new instant makes the current last instant
// redundant, the last instant is replaced instead. The result always has an
// inclusive upper bound.
//
// Appending at the current end timestamp with the same value returns the
// sequence unchanged; with a different value it fails with
// ErrConflictingOverlap. Earlier timestamps fail with ErrNonMonotonicTime.
func (s *Sequence) Append(inst Instant) (*Sequence, error) {
	if inst.v.Kind() != s.kind {
		return nil, fmt.Errorf("%w: cannot append a %s instant to a %s sequence",
			errs.ErrDimensionalityMismatch, inst.v.Kind(), s.kind)
	}
	last := s.instants[len(s.instants)-1]
	if inst.t < last.t {
		return nil, fmt.Errorf("%w: append at %s precedes sequence end %s",
			errs.ErrNonMonotonicTime, period.FormatTimestamp(inst.t),
			period.FormatTimestamp(last.t))
	}
	if inst.t == last.t {
		if !value.Equal(inst.v, last.v) {
			return nil, fmt.Errorf("%w: different value at sequence end %s",
				errs.ErrConflictingOverlap, period.FormatTimestamp(inst.t))
		}

		return s, nil
	}

	keep := len(s.instants)
	if keep > 1 && removable(s.instants[keep-2], last, inst, s.interp) {
		keep--
	}
	instants := make([]Instant, 0, keep+1)
	instants = append(instants, s.instants[:keep]...)
	instants = append(instants, inst)

	return assemble(instants, s.period.LowerInc, true, s.interp, false), nil
}
