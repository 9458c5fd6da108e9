package temporal

import (
	"sort"

	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/value"
)

// Restriction engine. Every At operator keeps exactly the portion of the
// sequence satisfying its condition; every Minus operator is its exact
// complement over the sequence's period. The operators are total: arguments
// of a foreign value kind simply select nothing.

// segAtValue restricts one segment to the instants where it takes v.
func segAtValue(inst1, inst2 Instant, interp Interp, lowerInc, upperInc bool, v value.Value) (*Sequence, bool) {
	// Constant segment, either interpolation.
	if value.Equal(inst1.v, inst2.v) {
		if !value.Equal(inst1.v, v) {
			return nil, false
		}

		return assemble([]Instant{inst1, inst2}, lowerInc, upperInc, interp, false), true
	}

	if interp == InterpStep {
		if value.Equal(inst1.v, v) {
			held := []Instant{inst1, {t: inst2.t, v: inst1.v}}
			return assemble(held, lowerInc, false, interp, false), true
		}
		if upperInc && value.Equal(inst2.v, v) {
			return singleton(inst2, interp), true
		}

		return nil, false
	}

	// Linear interpolation: endpoint equality is governed by the bounds.
	if value.Equal(inst1.v, v) {
		if !lowerInc {
			return nil, false
		}

		return singleton(inst1, interp), true
	}
	if value.Equal(inst2.v, v) {
		if !upperInc {
			return nil, false
		}

		return singleton(inst2, interp), true
	}

	t, ok := segValueCrossing(inst1, inst2, v)
	if !ok {
		return nil, false
	}
	proj := v
	if v.Kind() != value.KindFloat {
		proj = segValueAt(inst1, inst2, InterpLinear, t)
	}

	return singleton(Instant{t: t, v: proj}, interp), true
}

// AtValue restricts the sequence to the instants where it takes v.
func (s *Sequence) AtValue(v value.Value) *SequenceSet {
	if len(s.instants) == 1 {
		if !value.Equal(s.instants[0].v, v) {
			return &SequenceSet{}
		}

		return makeSet([]*Sequence{s}, false)
	}
	if v.Kind() != s.kind || !s.bbox.ContainsValue(v) {
		return &SequenceSet{}
	}

	sequences := make([]*Sequence, 0, len(s.instants))
	inst1 := s.instants[0]
	lowerInc := s.period.LowerInc
	for i, inst2 := range s.instants[1:] {
		upperInc := i == len(s.instants)-2 && s.period.UpperInc
		if seq, ok := segAtValue(inst1, inst2, s.interp, lowerInc, upperInc, v); ok {
			sequences = append(sequences, seq)
		}
		inst1 = inst2
		lowerInc = true
	}

	return makeSet(sequences, true)
}

// MinusValue restricts the sequence to the instants where it does not take
// v, the exact complement of AtValue.
func (s *Sequence) MinusValue(v value.Value) *SequenceSet {
	return s.complement(s.AtValue(v))
}

// AtValues restricts the sequence to the instants where it takes any of the
// given values.
func (s *Sequence) AtValues(values []value.Value) *SequenceSet {
	if len(s.instants) == 1 {
		for _, v := range values {
			if value.Equal(s.instants[0].v, v) {
				return makeSet([]*Sequence{s}, false)
			}
		}

		return &SequenceSet{}
	}

	relevant := make([]value.Value, 0, len(values))
	for _, v := range values {
		if v.Kind() == s.kind && s.bbox.ContainsValue(v) {
			relevant = append(relevant, v)
		}
	}
	if len(relevant) == 0 {
		return &SequenceSet{}
	}

	sequences := make([]*Sequence, 0, len(s.instants)*len(relevant))
	inst1 := s.instants[0]
	lowerInc := s.period.LowerInc
	for i, inst2 := range s.instants[1:] {
		upperInc := i == len(s.instants)-2 && s.period.UpperInc
		for _, v := range relevant {
			if seq, ok := segAtValue(inst1, inst2, s.interp, lowerInc, upperInc, v); ok {
				sequences = append(sequences, seq)
			}
		}
		inst1 = inst2
		lowerInc = true
	}
	sortSequences(sequences)

	return makeSet(sequences, true)
}

// MinusValues is the exact complement of AtValues.
func (s *Sequence) MinusValues(values []value.Value) *SequenceSet {
	return s.complement(s.AtValues(values))
}

// segAtRange restricts one float segment to the instants where its value
// lies in r.
func segAtRange(inst1, inst2 Instant, interp Interp, lowerInc, upperInc bool, r value.Range) (*Sequence, bool) {
	v1 := float64(inst1.v.(value.Float))
	v2 := float64(inst2.v.(value.Float))

	// Held or constant segment.
	if interp == InterpStep || v1 == v2 {
		if !r.Contains(v1) {
			return nil, false
		}
		if interp == InterpLinear {
			return assemble([]Instant{inst1, inst2}, lowerInc, upperInc, interp, false), true
		}
		// A held segment never attains its closing instant's value.
		held := []Instant{inst1, {t: inst2.t, v: inst1.v}}

		return assemble(held, lowerInc, false, interp, false), true
	}

	// The values the segment spans, with inclusivity from the bound flags.
	increasing := v1 < v2
	var span value.Range
	if increasing {
		span = value.NewRange(v1, v2, lowerInc, upperInc)
	} else {
		span = value.NewRange(v2, v1, upperInc, lowerInc)
	}
	inter, ok := span.Intersect(r)
	if !ok {
		return nil, false
	}

	if inter.Lower == inter.Upper {
		var t int64
		switch {
		case inter.Lower == v1:
			t = inst1.t
		case inter.Lower == v2:
			t = inst2.t
		default:
			var found bool
			t, found = segValueCrossing(inst1, inst2, value.Float(inter.Lower))
			if !found {
				return nil, false
			}
		}

		return singleton(Instant{t: t, v: value.Float(inter.Lower)}, interp), true
	}

	lowerT, foundLower := segValueCrossing(inst1, inst2, value.Float(inter.Lower))
	upperT, foundUpper := segValueCrossing(inst1, inst2, value.Float(inter.Upper))

	switch {
	case !foundLower && !foundUpper:
		return assemble([]Instant{inst1, inst2}, lowerInc, upperInc, interp, false), true
	case foundLower && foundUpper:
		t1, t2 := lowerT, upperT
		startInc, endInc := inter.LowerInc, inter.UpperInc
		if t2 < t1 {
			t1, t2 = t2, t1
			startInc, endInc = endInc, startInc
		}
		instants := []Instant{
			segAtTimestamp(inst1, inst2, interp, t1),
			segAtTimestamp(inst1, inst2, interp, t2),
		}

		return assemble(instants, startInc, endInc, interp, false), true
	case foundLower:
		if increasing {
			instants := []Instant{segAtTimestamp(inst1, inst2, interp, lowerT), inst2}
			return assemble(instants, inter.LowerInc, upperInc, interp, false), true
		}
		instants := []Instant{inst1, segAtTimestamp(inst1, inst2, interp, lowerT)}

		return assemble(instants, lowerInc, inter.LowerInc, interp, false), true
	default: // foundUpper
		if increasing {
			instants := []Instant{inst1, segAtTimestamp(inst1, inst2, interp, upperT)}
			return assemble(instants, lowerInc, inter.UpperInc, interp, false), true
		}
		instants := []Instant{segAtTimestamp(inst1, inst2, interp, upperT), inst2}

		return assemble(instants, inter.UpperInc, upperInc, interp, false), true
	}
}

// AtRange restricts a float sequence to the instants where its value lies in
// r. Non-float sequences select nothing.
func (s *Sequence) AtRange(r value.Range) *SequenceSet {
	if s.kind != value.KindFloat || r.IsEmpty() || !s.bbox.OverlapsRange(r) {
		return &SequenceSet{}
	}
	if len(s.instants) == 1 {
		if !r.Contains(float64(s.instants[0].v.(value.Float))) {
			return &SequenceSet{}
		}

		return makeSet([]*Sequence{s}, false)
	}

	sequences := s.atRangeSegments(r)

	return makeSet(sequences, true)
}

func (s *Sequence) atRangeSegments(r value.Range) []*Sequence {
	sequences := make([]*Sequence, 0, len(s.instants))
	inst1 := s.instants[0]
	lowerInc := s.period.LowerInc
	for i, inst2 := range s.instants[1:] {
		upperInc := i == len(s.instants)-2 && s.period.UpperInc
		if seq, ok := segAtRange(inst1, inst2, s.interp, lowerInc, upperInc, r); ok {
			sequences = append(sequences, seq)
		}
		inst1 = inst2
		lowerInc = true
	}
	// A step sequence with inclusive upper bound attains its closing value
	// only at the final instant.
	if s.interp == InterpStep && s.period.UpperInc {
		last := s.instants[len(s.instants)-1]
		if r.Contains(float64(last.v.(value.Float))) {
			sequences = append(sequences, singleton(last, InterpStep))
		}
	}

	return sequences
}

// MinusRange is the exact complement of AtRange. Non-float sequences are
// returned whole.
func (s *Sequence) MinusRange(r value.Range) *SequenceSet {
	if s.kind != value.KindFloat {
		return makeSet([]*Sequence{s}, false)
	}

	return s.complement(s.AtRange(r))
}

// AtRanges restricts a float sequence to the instants where its value lies
// in any of the given ranges.
func (s *Sequence) AtRanges(ranges []value.Range) *SequenceSet {
	if s.kind != value.KindFloat {
		return &SequenceSet{}
	}
	norm := normalizeRanges(ranges)
	if len(norm) == 0 {
		return &SequenceSet{}
	}
	if len(s.instants) == 1 {
		v := float64(s.instants[0].v.(value.Float))
		for _, r := range norm {
			if r.Contains(v) {
				return makeSet([]*Sequence{s}, false)
			}
		}

		return &SequenceSet{}
	}

	var sequences []*Sequence
	for _, r := range norm {
		if !s.bbox.OverlapsRange(r) {
			continue
		}
		sequences = append(sequences, s.atRangeSegments(r)...)
	}
	sortSequences(sequences)

	return makeSet(sequences, true)
}

// MinusRanges is the exact complement of AtRanges. Non-float sequences are
// returned whole.
func (s *Sequence) MinusRanges(ranges []value.Range) *SequenceSet {
	if s.kind != value.KindFloat {
		return makeSet([]*Sequence{s}, false)
	}

	return s.complement(s.AtRanges(ranges))
}

// AtMin restricts the sequence to the instants holding its minimum value.
func (s *Sequence) AtMin() *SequenceSet { return s.AtValue(s.MinValue()) }

// AtMax restricts the sequence to the instants holding its maximum value.
func (s *Sequence) AtMax() *SequenceSet { return s.AtValue(s.MaxValue()) }

// MinusMin removes the instants holding the minimum value.
func (s *Sequence) MinusMin() *SequenceSet { return s.MinusValue(s.MinValue()) }

// MinusMax removes the instants holding the maximum value.
func (s *Sequence) MinusMax() *SequenceSet { return s.MinusValue(s.MaxValue()) }

// AtTimestamp returns the instant taken at t; ok is false when t lies
// outside the sequence or at an exclusive bound.
func (s *Sequence) AtTimestamp(t int64) (Instant, bool) {
	if !s.period.ContainsTimestamp(t) {
		return Instant{}, false
	}
	if len(s.instants) == 1 {
		return s.instants[0], true
	}
	n, _ := s.FindSegment(t)

	return segAtTimestamp(s.instants[n], s.instants[n+1], s.interp, t), true
}

// MinusTimestamp removes the timestamp t, splitting the sequence into at
// most two half-open pieces.
func (s *Sequence) MinusTimestamp(t int64) *SequenceSet {
	if !s.period.ContainsTimestamp(t) {
		return makeSet([]*Sequence{s}, false)
	}
	if len(s.instants) == 1 {
		return &SequenceSet{}
	}

	return s.atPeriods(period.Minus(s.period, period.NewSet(period.At(t))))
}

// AtTimestampSet returns the instants taken at the set's timestamps, in time
// order.
func (s *Sequence) AtTimestampSet(ts period.TimestampSet) []Instant {
	if ts.IsEmpty() || !s.period.Overlaps(ts.Span()) {
		return nil
	}
	var out []Instant
	for i := ts.Search(s.period.Lower); i < ts.Count(); i++ {
		t := ts.Time(i)
		if t > s.period.Upper {
			break
		}
		if inst, ok := s.AtTimestamp(t); ok {
			out = append(out, inst)
		}
	}

	return out
}

// MinusTimestampSet removes the set's timestamps, splitting the sequence
// around each contained one.
func (s *Sequence) MinusTimestampSet(ts period.TimestampSet) *SequenceSet {
	var removed []period.Period
	for i := 0; i < ts.Count(); i++ {
		if s.period.ContainsTimestamp(ts.Time(i)) {
			removed = append(removed, period.At(ts.Time(i)))
		}
	}
	if len(removed) == 0 {
		return makeSet([]*Sequence{s}, false)
	}
	if len(s.instants) == 1 {
		return &SequenceSet{}
	}

	return s.atPeriods(period.Minus(s.period, period.NewSet(removed...)))
}

// AtPeriod restricts the sequence to the period p; ok is false when they do
// not overlap. The result reuses the sequence's instants where possible and
// materializes interpolated instants at the period bounds.
func (s *Sequence) AtPeriod(p period.Period) (*Sequence, bool) {
	inter, ok := s.period.Intersection(p)
	if !ok {
		return nil, false
	}
	if len(s.instants) == 1 {
		return s, true
	}
	if inter.IsInstant() {
		inst, _ := s.AtTimestamp(inter.Lower)
		return singleton(inst, s.interp), true
	}

	n, found := s.FindSegment(inter.Lower)
	if !found {
		// The intersection starts at the sequence's exclusive lower bound.
		n = 0
	}
	inst1 := s.instants[n]
	inst2 := s.instants[n+1]
	instants := make([]Instant, 0, len(s.instants)-n)
	instants = append(instants, segAtTimestamp(inst1, inst2, s.interp, inter.Lower))
	for i := n + 2; i < len(s.instants); i++ {
		if inst1.t <= inter.Upper && inter.Upper <= inst2.t {
			break
		}
		inst1 = inst2
		inst2 = s.instants[i]
		if inter.Lower <= inst1.t && inst1.t <= inter.Upper {
			instants = append(instants, inst1)
		}
	}
	if s.interp == InterpLinear || inter.UpperInc {
		instants = append(instants, segAtTimestamp(inst1, inst2, s.interp, inter.Upper))
	} else {
		// A step piece with an exclusive upper bound closes with its held
		// value.
		instants = append(instants, Instant{t: inter.Upper, v: instants[len(instants)-1].v})
	}

	return assemble(instants, inter.LowerInc, inter.UpperInc, s.interp, false), true
}

// MinusPeriod removes the period p, keeping the portions before and after
// it.
func (s *Sequence) MinusPeriod(p period.Period) *SequenceSet {
	if !s.period.Overlaps(p) {
		return makeSet([]*Sequence{s}, false)
	}
	if len(s.instants) == 1 {
		return &SequenceSet{}
	}

	return s.atPeriods(period.Minus(s.period, period.NewSet(p)))
}

// AtPeriodSet restricts the sequence to the set's periods.
func (s *Sequence) AtPeriodSet(ps period.Set) *SequenceSet {
	if ps.IsEmpty() {
		return &SequenceSet{}
	}

	return s.atPeriods(ps)
}

// MinusPeriodSet removes the set's periods.
func (s *Sequence) MinusPeriodSet(ps period.Set) *SequenceSet {
	if ps.IsEmpty() || !s.period.Overlaps(ps.Span()) {
		return makeSet([]*Sequence{s}, false)
	}
	if len(s.instants) == 1 {
		if ps.ContainsTimestamp(s.instants[0].t) {
			return &SequenceSet{}
		}

		return makeSet([]*Sequence{s}, false)
	}

	return s.atPeriods(period.Minus(s.period, ps))
}

// IntersectsTimestamp reports whether the sequence is defined at t.
func (s *Sequence) IntersectsTimestamp(t int64) bool {
	return s.period.ContainsTimestamp(t)
}

// IntersectsTimestampSet reports whether the sequence is defined at any of
// the set's timestamps.
func (s *Sequence) IntersectsTimestampSet(ts period.TimestampSet) bool {
	for i := 0; i < ts.Count(); i++ {
		if s.IntersectsTimestamp(ts.Time(i)) {
			return true
		}
	}

	return false
}

// IntersectsPeriod reports whether the sequence's period overlaps p.
func (s *Sequence) IntersectsPeriod(p period.Period) bool {
	return s.period.Overlaps(p)
}

// IntersectsPeriodSet reports whether the sequence's period overlaps any of
// the set's periods.
func (s *Sequence) IntersectsPeriodSet(ps period.Set) bool {
	for i := 0; i < ps.Count(); i++ {
		if s.IntersectsPeriod(ps.Period(i)) {
			return true
		}
	}

	return false
}

// atPeriods restricts the sequence to each period of the set in turn.
func (s *Sequence) atPeriods(ps period.Set) *SequenceSet {
	sequences := make([]*Sequence, 0, ps.Count())
	for i := 0; i < ps.Count(); i++ {
		if seq, ok := s.AtPeriod(ps.Period(i)); ok {
			sequences = append(sequences, seq)
		}
	}

	return makeSet(sequences, false)
}

// complement derives a Minus result from its At counterpart by restricting
// the sequence to the time its At result does not cover.
func (s *Sequence) complement(at *SequenceSet) *SequenceSet {
	if at.IsEmpty() {
		return makeSet([]*Sequence{s}, false)
	}
	remaining := period.Minus(s.period, at.Time())
	if remaining.IsEmpty() {
		return &SequenceSet{}
	}

	return s.atPeriods(remaining)
}

func sortSequences(sequences []*Sequence) {
	sort.Slice(sequences, func(i, j int) bool {
		return sequences[i].period.Compare(sequences[j].period) < 0
	})
}

// normalizeRanges sorts the given ranges and unions the overlapping and
// adjacent ones, dropping empty entries.
func normalizeRanges(ranges []value.Range) []value.Range {
	norm := make([]value.Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			norm = append(norm, r)
		}
	}
	if len(norm) < 2 {
		return norm
	}
	sort.Slice(norm, func(i, j int) bool {
		if norm[i].Lower != norm[j].Lower {
			return norm[i].Lower < norm[j].Lower
		}

		return norm[i].LowerInc && !norm[j].LowerInc
	})
	out := norm[:1]
	for _, r := range norm[1:] {
		curr := &out[len(out)-1]
		if r.Overlaps(*curr) || (curr.Upper == r.Lower && (curr.UpperInc || r.LowerInc)) {
			if r.Upper > curr.Upper || (r.Upper == curr.Upper && r.UpperInc) {
				curr.Upper, curr.UpperInc = r.Upper, r.UpperInc
			}
			continue
		}
		out = append(out, r)
	}

	return out
}
