package temporal

import (
	"sort"

	"github.com/tseqio/tseq/value"
)

// Values returns the distinct values taken at the composing instants, in
// ascending value order.
func (s *Sequence) Values() []value.Value {
	out := make([]value.Value, len(s.instants))
	for i, inst := range s.instants {
		out[i] = inst.v
	}
	if len(out) > 1 {
		sort.Slice(out, func(i, j int) bool { return value.Less(out[i], out[j]) })
		k := 1
		for _, v := range out[1:] {
			if !value.Equal(v, out[k-1]) {
				out[k] = v
				k++
			}
		}
		out = out[:k]
	}

	return out
}

// MinValue returns the minimum value taken at the composing instants.
func (s *Sequence) MinValue() value.Value {
	min := s.instants[0].v
	for _, inst := range s.instants[1:] {
		if value.Less(inst.v, min) {
			min = inst.v
		}
	}

	return min
}

// MaxValue returns the maximum value taken at the composing instants.
func (s *Sequence) MaxValue() value.Value {
	max := s.instants[0].v
	for _, inst := range s.instants[1:] {
		if value.Less(max, inst.v) {
			max = inst.v
		}
	}

	return max
}

// MinInstant returns the first instant holding the minimum value. Bound
// exclusivity is not taken into account; the instant may sit on an exclusive
// bound.
func (s *Sequence) MinInstant() Instant {
	k := 0
	for i, inst := range s.instants[1:] {
		if value.Less(inst.v, s.instants[k].v) {
			k = i + 1
		}
	}

	return s.instants[k]
}

// MaxInstant returns the first instant holding the maximum value, with the
// same caveat as MinInstant.
func (s *Sequence) MaxInstant() Instant {
	k := 0
	for i, inst := range s.instants[1:] {
		if value.Less(s.instants[k].v, inst.v) {
			k = i + 1
		}
	}

	return s.instants[k]
}

// ValueRange returns the range of values a float sequence takes, recovering
// bound inclusivity from the evolution: an extreme attained only at an
// exclusive sequence bound yields an exclusive range bound. ok is false for
// non-float kinds.
func (s *Sequence) ValueRange() (value.Range, bool) {
	if s.kind != value.KindFloat {
		return value.Range{}, false
	}
	min := s.bbox.XMin[0]
	max := s.bbox.XMax[0]
	if min == max {
		return value.NewRange(min, max, true, true), true
	}
	if s.interp == InterpStep {
		// Step sequences attain every instant value.
		return value.NewRange(min, max, true, true), true
	}

	start := float64(s.instants[0].v.(value.Float))
	end := float64(s.instants[len(s.instants)-1].v.(value.Float))
	var lower, upper float64
	var lowerInc, upperInc bool
	if start < end {
		lower, lowerInc = start, s.period.LowerInc
		upper, upperInc = end, s.period.UpperInc
	} else {
		lower, lowerInc = end, s.period.UpperInc
		upper, upperInc = start, s.period.LowerInc
	}
	minInc := min < lower || (min == lower && lowerInc)
	maxInc := max > upper || (max == upper && upperInc)
	if !minInc || !maxInc {
		// An interior instant attains the extreme regardless of bounds.
		for _, inst := range s.instants[1 : len(s.instants)-1] {
			v := float64(inst.v.(value.Float))
			minInc = minInc || v == min
			maxInc = maxInc || v == max
			if minInc && maxInc {
				break
			}
		}
	}

	return value.NewRange(min, max, minInc, maxInc), true
}

// ValueRanges returns the value ranges a float sequence takes: the single
// spanning range under linear interpolation, or one degenerate range per
// distinct value under step interpolation. ok is false for non-float kinds.
func (s *Sequence) ValueRanges() ([]value.Range, bool) {
	if s.kind != value.KindFloat {
		return nil, false
	}
	if s.interp == InterpLinear {
		r, _ := s.ValueRange()
		return []value.Range{r}, true
	}
	values := s.Values()
	out := make([]value.Range, len(values))
	for i, v := range values {
		f := float64(v.(value.Float))
		out[i] = value.NewRange(f, f, true, true)
	}

	return out, true
}

// Integral returns the area under the curve of a float sequence, in
// value-microseconds. ok is false for non-float kinds.
func (s *Sequence) Integral() (float64, bool) {
	if s.kind != value.KindFloat {
		return 0, false
	}
	var total float64
	inst1 := s.instants[0]
	for _, inst2 := range s.instants[1:] {
		v1 := float64(inst1.v.(value.Float))
		if s.interp == InterpLinear {
			v2 := float64(inst2.v.(value.Float))
			total += (v1 + v2) * float64(inst2.t-inst1.t) / 2.0
		} else {
			total += v1 * float64(inst2.t-inst1.t)
		}
		inst1 = inst2
	}

	return total, true
}

// TimeWeightedAverage returns the integral divided by the duration, or the
// held value for an instantaneous sequence. ok is false for non-float kinds.
func (s *Sequence) TimeWeightedAverage() (float64, bool) {
	if s.kind != value.KindFloat {
		return 0, false
	}
	duration := float64(s.period.Duration())
	if duration == 0 {
		return float64(s.instants[0].v.(value.Float)), true
	}
	integral, _ := s.Integral()

	return integral / duration, true
}

// StepToLinear reinterprets a step sequence under linear interpolation. Each
// held segment becomes a constant linear piece closed on the left and open
// on the right, so the result is a set of disjoint sequences. Calling it on
// a linear sequence returns the sequence unchanged as a one-element set.
func (s *Sequence) StepToLinear() *SequenceSet {
	if s.interp == InterpLinear {
		return makeSet([]*Sequence{s}, false)
	}
	if len(s.instants) == 1 {
		return makeSet([]*Sequence{singleton(s.instants[0], InterpLinear)}, false)
	}

	sequences := make([]*Sequence, 0, len(s.instants))
	inst1 := s.instants[0]
	lowerInc := s.period.LowerInc
	for i, inst2 := range s.instants[1:] {
		last := i == len(s.instants)-2
		upperInc := last && s.period.UpperInc && value.Equal(inst1.v, inst2.v)
		piece := []Instant{inst1, {t: inst2.t, v: inst1.v}}
		sequences = append(sequences, assemble(piece, lowerInc, upperInc, InterpLinear, false))
		inst1 = inst2
		lowerInc = true
	}
	last := s.instants[len(s.instants)-1]
	if s.period.UpperInc && !value.Equal(s.instants[len(s.instants)-2].v, last.v) {
		sequences = append(sequences, singleton(last, InterpLinear))
	}

	return makeSet(sequences, false)
}
