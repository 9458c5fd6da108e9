package temporal

import "github.com/tseqio/tseq/value"

// Segment algebra: the per-segment primitives every higher-level operation
// is assembled from. A segment is the evolution between two consecutive
// instants; under step interpolation it holds the start value, under linear
// interpolation it blends the endpoint values by elapsed time.

// segValueAt returns the value of the segment a..b at timestamp t.
// The timestamp must lie within [a.t, b.t].
func segValueAt(a, b Instant, interp Interp, t int64) value.Value {
	if value.Equal(a.v, b.v) || t == a.t || (interp == InterpStep && t < b.t) {
		return a.v
	}
	if t == b.t {
		return b.v
	}
	ratio := float64(t-a.t) / float64(b.t-a.t)

	return value.Interpolate(a.v, b.v, ratio)
}

// segAtTimestamp materializes the instant taken by the segment a..b at t.
func segAtTimestamp(a, b Instant, interp Interp, t int64) Instant {
	return Instant{t: t, v: segValueAt(a, b, interp, t)}
}

// segValueCrossing returns the timestamp at which the linear segment a..b
// passes through target. Crossings are only reported strictly inside the
// segment; endpoint equality is handled by the callers through the bound
// flags.
func segValueCrossing(a, b Instant, target value.Value) (int64, bool) {
	fraction, dist, ok := value.Locate(a.v, b.v, target)
	if !ok || dist > value.Epsilon {
		return 0, false
	}
	if fraction <= value.Epsilon || fraction >= 1.0-value.Epsilon {
		return 0, false
	}
	t := a.t + int64(float64(b.t-a.t)*fraction)

	return t, true
}

// segCrossing returns the timestamp at which two time-synchronized segments
// take the same value, together with the value of each segment there. At
// least one segment must be linear; a step segment contributes its held
// start value. Crossings are only reported strictly inside the shared span.
func segCrossing(s1, e1 Instant, interp1 Interp, s2, e2 Instant, interp2 Interp) (v1, v2 value.Value, t int64, ok bool) {
	if interp1 == InterpStep {
		t, ok = segValueCrossing(s2, e2, s1.v)
		if !ok {
			return nil, nil, 0, false
		}

		return s1.v, segValueAt(s2, e2, InterpLinear, t), t, true
	}
	if interp2 == InterpStep {
		t, ok = segValueCrossing(s1, e1, s2.v)
		if !ok {
			return nil, nil, 0, false
		}

		return segValueAt(s1, e1, InterpLinear, t), s2.v, t, true
	}

	fraction, ok := value.CrossFraction(s1.v, e1.v, s2.v, e2.v)
	if !ok {
		return nil, nil, 0, false
	}
	t = s1.t + int64(float64(e1.t-s1.t)*fraction)

	return segValueAt(s1, e1, InterpLinear, t), segValueAt(s2, e2, InterpLinear, t), t, true
}

// segCollinear reports whether the middle instant is redundant on the linear
// run a..c, i.e. whether its value matches the interpolation of a and c at
// its timestamp.
func segCollinear(a, b, c Instant) bool {
	ratio := float64(b.t-a.t) / float64(c.t-a.t)

	return value.Collinear(a.v, b.v, c.v, ratio)
}
