package value

import (
	"fmt"
	"math"
	"strconv"
)

// Epsilon is the process-wide numeric tolerance for fractional positions,
// distances and collinearity deviations. It is a deliberate global policy
// choice shared by every geometric routine in the temporal core.
const Epsilon = 1e-5

// Kind identifies the base type of a temporal value.
type Kind uint8

const (
	// KindFloat is a one-dimensional numeric value.
	KindFloat Kind = iota + 1
	// KindPoint2D is a planar position.
	KindPoint2D
	// KindPoint3D is a spatial position.
	KindPoint3D
	// KindDouble2 is a 2-tuple accumulator.
	KindDouble2
	// KindDouble3 is a 3-tuple accumulator.
	KindDouble3
	// KindDouble4 is a 4-tuple accumulator.
	KindDouble4
)

// Dims returns the number of float64 coordinates a value of this kind
// carries.
func (k Kind) Dims() int {
	switch k {
	case KindFloat:
		return 1
	case KindPoint2D, KindDouble2:
		return 2
	case KindPoint3D, KindDouble3:
		return 3
	case KindDouble4:
		return 4
	default:
		return 0
	}
}

// IsPoint reports whether the kind is a spatial point kind. Point sequences
// carry a precomputed trajectory.
func (k Kind) IsPoint() bool {
	return k == KindPoint2D || k == KindPoint3D
}

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindPoint2D:
		return "point2d"
	case KindPoint3D:
		return "point3d"
	case KindDouble2:
		return "double2"
	case KindDouble3:
		return "double3"
	case KindDouble4:
		return "double4"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is one temporal base value. Implementations are small immutable
// structs; the interface exposes the kind tag and the raw coordinates, and
// the package-level operations dispatch on those once at the segment-algebra
// boundary.
type Value interface {
	// Kind returns the value's kind tag.
	Kind() Kind
	// Coords returns the value's coordinates. The slice is freshly
	// allocated; callers may keep it.
	Coords() []float64
	// String renders the value in canonical text form.
	String() string
}

// Float is a one-dimensional numeric value.
type Float float64

// Kind returns KindFloat.
func (Float) Kind() Kind { return KindFloat }

// Coords returns the single coordinate.
func (v Float) Coords() []float64 { return []float64{float64(v)} }

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// Make builds a value of the given kind from its coordinates. It is the
// inverse of Value.Coords and is used by the binary decoder.
func Make(kind Kind, coords []float64) (Value, error) {
	if len(coords) != kind.Dims() {
		return nil, fmt.Errorf("kind %s requires %d coordinates, got %d",
			kind, kind.Dims(), len(coords))
	}
	switch kind {
	case KindFloat:
		return Float(coords[0]), nil
	case KindPoint2D:
		return Point2D{X: coords[0], Y: coords[1]}, nil
	case KindPoint3D:
		return Point3D{X: coords[0], Y: coords[1], Z: coords[2]}, nil
	case KindDouble2:
		return Double2{coords[0], coords[1]}, nil
	case KindDouble3:
		return Double3{coords[0], coords[1], coords[2]}, nil
	case KindDouble4:
		return Double4{coords[0], coords[1], coords[2], coords[3]}, nil
	default:
		return nil, fmt.Errorf("unknown value kind %d", uint8(kind))
	}
}

// Equal reports whether two values have the same kind and exactly equal
// coordinates. Equality is deliberately exact; tolerance applies only to
// derived quantities (see the package documentation).
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	ca, cb := a.Coords(), b.Coords()
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}

	return true
}

// Less reports whether a orders strictly before b. Values of the same kind
// compare lexicographically by coordinates; values of different kinds
// compare by kind tag. The result is a total order usable for index keys.
func Less(a, b Value) bool {
	return Compare(a, b) < 0
}

// Compare returns -1, 0, or 1 depending on whether a orders before, equal
// to, or after b.
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}

		return 1
	}
	ca, cb := a.Coords(), b.Coords()
	for i := range ca {
		if ca[i] < cb[i] {
			return -1
		}
		if ca[i] > cb[i] {
			return 1
		}
	}

	return 0
}

// Interpolate returns the linear blend of start and end at the given ratio
// in [0, 1]. Both values must share a kind.
func Interpolate(start, end Value, ratio float64) Value {
	cs, ce := start.Coords(), end.Coords()
	out := make([]float64, len(cs))
	for i := range cs {
		out[i] = cs[i] + (ce[i]-cs[i])*ratio
	}
	v, _ := Make(start.Kind(), out)

	return v
}

// Collinear reports whether mid equals the linear interpolation of start and
// end at the given time ratio, within Epsilon on every coordinate. The ratio
// is the duration start..mid divided by the duration start..end. The caller
// guarantees the three values share a kind and that the segment is not
// constant.
func Collinear(start, mid, end Value, ratio float64) bool {
	cs, cm, ce := start.Coords(), mid.Coords(), end.Coords()
	for i := range cs {
		interp := cs[i] + (ce[i]-cs[i])*ratio
		if math.Abs(cm[i]-interp) > Epsilon {
			return false
		}
	}

	return true
}

// Locate projects target onto the segment start..end and returns the
// fractional position in [0, 1] along the segment together with the distance
// between target and the projected position.
//
// For floats the fraction is the relative position of target within the
// segment's value span and the distance is zero when target lies inside the
// span. For points the fraction is the orthogonal projection onto the
// segment. Tuple kinds do not support location; ok is false for them and for
// kind mismatches.
func Locate(start, end, target Value) (fraction, dist float64, ok bool) {
	kind := start.Kind()
	if end.Kind() != kind || target.Kind() != kind {
		return 0, 0, false
	}
	switch kind {
	case KindFloat:
		v1 := float64(start.(Float))
		v2 := float64(end.(Float))
		v := float64(target.(Float))
		lo := math.Min(v1, v2)
		hi := math.Max(v1, v2)
		if v < lo || v > hi {
			return 0, 0, false
		}
		if hi == lo {
			return 0, 0, true
		}
		partial := (v - lo) / (hi - lo)
		if v1 < v2 {
			return partial, 0, true
		}

		return 1 - partial, 0, true
	case KindPoint2D, KindPoint3D:
		return locatePoint(start.Coords(), end.Coords(), target.Coords())
	default:
		return 0, 0, false
	}
}

// locatePoint computes the orthogonal projection of target onto the segment
// s..e, returning the clamped fraction and the distance from target to the
// projected position.
func locatePoint(s, e, target []float64) (float64, float64, bool) {
	var num, den float64
	for i := range s {
		num += (target[i] - s[i]) * (e[i] - s[i])
		den += (e[i] - s[i]) * (e[i] - s[i])
	}
	if den == 0 {
		// Degenerate segment, projection collapses to the start point.
		return 0, distance(s, target), true
	}
	fraction := num / den
	fraction = math.Max(0, math.Min(1, fraction))
	closest := make([]float64, len(s))
	for i := range s {
		closest[i] = s[i] + (e[i]-s[i])*fraction
	}

	return fraction, distance(closest, target), true
}

func distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// CrossFraction solves for the fractional position at which two
// time-synchronized linear segments take the same value. The segments run
// over the same time span; start1/start2 are the values at its beginning and
// end1/end2 the values at its end.
//
// Each coordinate is solved independently; a crossing exists only when every
// coordinate with a non-parallel difference agrees on the fraction within
// Epsilon and that fraction is strictly interior to the span. The returned
// fraction is the average of the agreeing per-coordinate fractions, which
// bounds the accumulated floating error of the independent solves.
func CrossFraction(start1, end1, start2, end2 Value) (float64, bool) {
	c1 := start1.Coords()
	d1 := end1.Coords()
	c2 := start2.Coords()
	d2 := end2.Coords()

	var fracs [4]float64
	n := 0
	for i := range c1 {
		denom := d1[i] - c1[i] - d2[i] + c2[i]
		if denom == 0 {
			// Parallel on this axis; it constrains nothing.
			continue
		}
		f := (c2[i] - c1[i]) / denom
		if f <= Epsilon || f >= 1.0-Epsilon {
			// Crossing occurs at or outside the span.
			return 0, false
		}
		fracs[n] = f
		n++
	}
	if n == 0 {
		// Parallel segments.
		return 0, false
	}
	sum := fracs[0]
	for i := 1; i < n; i++ {
		if math.Abs(fracs[i]-fracs[0]) > Epsilon {
			// The axes cross at different times.
			return 0, false
		}
		sum += fracs[i]
	}

	return sum / float64(n), true
}
