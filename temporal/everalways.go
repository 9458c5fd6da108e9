package temporal

import "github.com/tseqio/tseq/value"

// Ever and always comparisons. Ever asks whether the sequence takes a
// satisfying value at some attained instant of its evolution; always asks
// whether every attained value satisfies. Both answer through the bounding
// summary first and only scan the instants when the summary cannot decide.
// The order comparisons apply to float sequences only.

// EverEq reports whether the sequence ever takes the value v.
func (s *Sequence) EverEq(v value.Value) bool {
	if v.Kind() != s.kind || !s.bbox.ContainsValue(v) {
		return false
	}
	if s.interp == InterpStep || len(s.instants) == 1 {
		for _, inst := range s.instants {
			if value.Equal(inst.v, v) {
				return true
			}
		}

		return false
	}

	inst1 := s.instants[0]
	lowerInc := s.period.LowerInc
	for i, inst2 := range s.instants[1:] {
		upperInc := i == len(s.instants)-2 && s.period.UpperInc
		if segEverEq(inst1, inst2, lowerInc, upperInc, v) {
			return true
		}
		inst1 = inst2
		lowerInc = true
	}

	return false
}

// segEverEq reports whether a linear segment attains v, honoring the bound
// inclusivity at the segment ends.
func segEverEq(inst1, inst2 Instant, lowerInc, upperInc bool, v value.Value) bool {
	if value.Equal(inst1.v, inst2.v) {
		return value.Equal(inst1.v, v)
	}
	if value.Equal(inst1.v, v) {
		return lowerInc
	}
	if value.Equal(inst2.v, v) {
		return upperInc
	}
	_, ok := segValueCrossing(inst1, inst2, v)

	return ok
}

// AlwaysEq reports whether the sequence holds the value v over its whole
// period. The bounding summary decides: the sequence is constant exactly when
// the summary is degenerate at v.
func (s *Sequence) AlwaysEq(v value.Value) bool {
	if v.Kind() != s.kind {
		return false
	}
	coords := v.Coords()
	for i := 0; i < s.bbox.Dims; i++ {
		if s.bbox.XMin[i] != coords[i] || s.bbox.XMax[i] != coords[i] {
			return false
		}
	}

	return true
}

// EverLt reports whether a float sequence ever takes a value below v.
func (s *Sequence) EverLt(v value.Value) bool {
	f, ok := asFloat(v, s.kind)
	if !ok || s.bbox.XMin[0] >= f {
		return false
	}
	// A value below v is attained at an instant whenever one exists at all:
	// under linear interpolation an open bound still leaves values arbitrarily
	// close to the excluded endpoint.
	for _, inst := range s.instants {
		if float64(inst.v.(value.Float)) < f {
			return true
		}
	}

	return false
}

// EverLe reports whether a float sequence ever takes a value not above v.
func (s *Sequence) EverLe(v value.Value) bool {
	f, ok := asFloat(v, s.kind)
	if !ok || s.bbox.XMin[0] > f {
		return false
	}
	if s.interp == InterpStep || len(s.instants) == 1 {
		for _, inst := range s.instants {
			if float64(inst.v.(value.Float)) <= f {
				return true
			}
		}

		return false
	}

	inst1 := s.instants[0]
	lowerInc := s.period.LowerInc
	for i, inst2 := range s.instants[1:] {
		upperInc := i == len(s.instants)-2 && s.period.UpperInc
		if segEverLe(inst1, inst2, lowerInc, upperInc, f) {
			return true
		}
		inst1 = inst2
		lowerInc = true
	}

	return false
}

func segEverLe(inst1, inst2 Instant, lowerInc, upperInc bool, f float64) bool {
	v1 := float64(inst1.v.(value.Float))
	v2 := float64(inst2.v.(value.Float))
	switch {
	case v1 == v2:
		return v1 <= f
	case v1 < v2: // increasing; the infimum sits at the segment start
		return v1 < f || (lowerInc && v1 == f)
	default: // decreasing; the infimum sits at the segment end
		return v2 < f || (upperInc && v2 == f)
	}
}

// AlwaysLt reports whether a float sequence stays strictly below v.
func (s *Sequence) AlwaysLt(v value.Value) bool {
	f, ok := asFloat(v, s.kind)
	if !ok {
		return false
	}
	if s.bbox.XMax[0] < f {
		return true
	}
	if s.bbox.XMax[0] > f {
		return false
	}
	if s.interp == InterpStep || len(s.instants) == 1 {
		// Step sequences attain every instant value, including the maximum.
		return false
	}

	inst1 := s.instants[0]
	lowerInc := s.period.LowerInc
	for i, inst2 := range s.instants[1:] {
		upperInc := i == len(s.instants)-2 && s.period.UpperInc
		if !segAlwaysLt(inst1, inst2, lowerInc, upperInc, f) {
			return false
		}
		inst1 = inst2
		lowerInc = true
	}

	return true
}

func segAlwaysLt(inst1, inst2 Instant, lowerInc, upperInc bool, f float64) bool {
	v1 := float64(inst1.v.(value.Float))
	v2 := float64(inst2.v.(value.Float))
	switch {
	case v1 == v2:
		return v1 < f
	case v1 < v2: // increasing; the supremum sits at the segment end
		return v2 < f || (!upperInc && v2 == f)
	default: // decreasing; the supremum sits at the segment start
		return v1 < f || (!lowerInc && v1 == f)
	}
}

// AlwaysLe reports whether a float sequence never exceeds v. An excluded
// endpoint above v is never attained under linear interpolation, but values
// arbitrarily close to it are, so the bounding summary decides.
func (s *Sequence) AlwaysLe(v value.Value) bool {
	f, ok := asFloat(v, s.kind)
	if !ok {
		return false
	}

	return s.bbox.XMax[0] <= f
}

// EverGt reports whether a float sequence ever takes a value above v.
func (s *Sequence) EverGt(v value.Value) bool {
	f, ok := asFloat(v, s.kind)
	if !ok {
		return false
	}

	return s.bbox.XMax[0] > f
}

// EverGe reports whether a float sequence ever takes a value not below v.
func (s *Sequence) EverGe(v value.Value) bool {
	if s.kind != value.KindFloat || v.Kind() != value.KindFloat {
		return false
	}

	return !s.AlwaysLt(v)
}

// AlwaysGt reports whether a float sequence stays strictly above v.
func (s *Sequence) AlwaysGt(v value.Value) bool {
	if s.kind != value.KindFloat || v.Kind() != value.KindFloat {
		return false
	}

	return !s.EverLe(v)
}

// AlwaysGe reports whether a float sequence never drops below v.
func (s *Sequence) AlwaysGe(v value.Value) bool {
	if s.kind != value.KindFloat || v.Kind() != value.KindFloat {
		return false
	}

	return !s.EverLt(v)
}

// asFloat narrows an order-comparison argument; the comparison applies only
// when both the sequence and the argument are floats.
func asFloat(v value.Value, kind value.Kind) (float64, bool) {
	if kind != value.KindFloat || v.Kind() != value.KindFloat {
		return 0, false
	}

	return float64(v.(value.Float)), true
}
