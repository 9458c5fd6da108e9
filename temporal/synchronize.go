package temporal

import "github.com/tseqio/tseq/value"

// Intersection restricts two sequences to their shared period. The results
// cover the same period but keep their own instants; use Synchronize to put
// them on one set of timestamps.
func Intersection(a, b *Sequence) (*Sequence, *Sequence, bool) {
	inter, ok := a.period.Intersection(b.period)
	if !ok {
		return nil, nil, false
	}
	left, _ := a.AtPeriod(inter)
	right, _ := b.AtPeriod(inter)

	return left, right, true
}

// Synchronize splits two overlapping sequences into pairs defined over the
// same instants covering the intersection of their periods. Whenever one
// sequence lacks an instant at the other's timestamp the missing value is
// materialized, so the results are generally denormalized. When crossings is
// true and at least one sequence is linear, the timestamps where the two
// evolutions cross are added as well, so every result segment pair keeps one
// consistent order between the two values.
//
// ok is false when the sequences do not overlap on time.
func Synchronize(a, b *Sequence, crossings bool) (*Sequence, *Sequence, bool) {
	inter, ok := a.period.Intersection(b.period)
	if !ok {
		return nil, nil, false
	}

	// Sequences sharing a single timestamp synchronize to singletons.
	if inter.IsInstant() {
		return singleton(a.instantAt(inter.Lower), a.interp),
			singleton(b.instantAt(inter.Lower), b.interp), true
	}

	inst1 := a.instants[0]
	inst2 := b.instants[0]
	i, j := 0, 0
	if inst1.t < inter.Lower {
		inst1 = a.instantAt(inter.Lower)
		i, _ = a.FindSegment(inter.Lower)
	} else if inst2.t < inter.Lower {
		inst2 = b.instantAt(inter.Lower)
		j, _ = b.FindSegment(inter.Lower)
	}

	capacity := (len(a.instants) - i + len(b.instants) - j) * 2
	instants1 := make([]Instant, 0, capacity)
	instants2 := make([]Instant, 0, capacity)
	addCrossings := crossings && (a.interp == InterpLinear || b.interp == InterpLinear)
	for i < len(a.instants) && j < len(b.instants) &&
		(inst1.t <= inter.Upper || inst2.t <= inter.Upper) {
		switch {
		case inst1.t == inst2.t:
			i++
			j++
		case inst1.t < inst2.t:
			i++
			inst2 = b.instantAt(inst1.t)
		default:
			j++
			inst1 = a.instantAt(inst2.t)
		}
		if addCrossings && len(instants1) > 0 {
			prev1 := instants1[len(instants1)-1]
			prev2 := instants2[len(instants2)-1]
			// The crossing fraction truncates to whole microseconds, which
			// can land on a bounding instant of a very short segment; only
			// interior timestamps keep the results strictly increasing.
			if v1, v2, t, found := segCrossing(prev1, inst1, a.interp, prev2, inst2, b.interp); found &&
				prev1.t < t && t < inst1.t {
				instants1 = append(instants1, Instant{t: t, v: v1})
				instants2 = append(instants2, Instant{t: t, v: v2})
			}
		}
		instants1 = append(instants1, inst1)
		instants2 = append(instants2, inst2)
		if i == len(a.instants) || j == len(b.instants) {
			break
		}
		inst1 = a.instants[i]
		inst2 = b.instants[j]
	}

	// A step result with an exclusive upper bound must close with its held
	// value.
	instants1 = fixStepTail(instants1, a.interp, inter.UpperInc)
	instants2 = fixStepTail(instants2, b.interp, inter.UpperInc)

	return assemble(instants1, inter.LowerInc, inter.UpperInc, a.interp, false),
		assemble(instants2, inter.LowerInc, inter.UpperInc, b.interp, false), true
}

func fixStepTail(instants []Instant, interp Interp, upperInc bool) []Instant {
	k := len(instants)
	if upperInc || k < 2 || interp == InterpLinear {
		return instants
	}
	if !value.Equal(instants[k-2].v, instants[k-1].v) {
		instants[k-1] = Instant{t: instants[k-1].t, v: instants[k-2].v}
	}

	return instants
}

// instantAt materializes the instant taken at t, admitting timestamps on
// exclusive bounds. The caller guarantees t lies within the sequence span.
func (s *Sequence) instantAt(t int64) Instant {
	v, _ := s.ValueAtInclusive(t)

	return Instant{t: t, v: v}
}

// SynchronizeInstant restricts the sequence and a lone instant to their
// shared timestamp, pairing the instant with the value the sequence takes
// there. ok is false when the sequence is not defined at the instant's
// timestamp.
func (s *Sequence) SynchronizeInstant(inst Instant) (Instant, Instant, bool) {
	at, ok := s.AtTimestamp(inst.t)
	if !ok {
		return Instant{}, Instant{}, false
	}

	return at, inst, true
}
