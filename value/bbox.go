package value

import "math"

// BBox is the precomputed bounding summary of a sequence: the per-axis value
// extent together with the covered time span in microseconds. Axes beyond
// the kind's dimensionality are unused and stay zero so that boxes of equal
// kind compare field by field.
type BBox struct {
	XMin, XMax [4]float64
	Dims       int
	TMin, TMax int64
}

// NewBBox returns an empty box for the given kind anchored at the given
// timestamp span. The box contains no values until Expand is called.
func NewBBox(kind Kind, tmin, tmax int64) BBox {
	b := BBox{Dims: kind.Dims(), TMin: tmin, TMax: tmax}
	for i := 0; i < b.Dims; i++ {
		b.XMin[i] = math.MaxFloat64
		b.XMax[i] = -math.MaxFloat64
	}

	return b
}

// Expand grows the box to cover v.
func (b *BBox) Expand(v Value) {
	for i, c := range v.Coords() {
		if c < b.XMin[i] {
			b.XMin[i] = c
		}
		if c > b.XMax[i] {
			b.XMax[i] = c
		}
	}
}

// ExpandBox grows the box to cover another box of the same kind.
func (b *BBox) ExpandBox(other BBox) {
	for i := 0; i < b.Dims; i++ {
		if other.XMin[i] < b.XMin[i] {
			b.XMin[i] = other.XMin[i]
		}
		if other.XMax[i] > b.XMax[i] {
			b.XMax[i] = other.XMax[i]
		}
	}
	if other.TMin < b.TMin {
		b.TMin = other.TMin
	}
	if other.TMax > b.TMax {
		b.TMax = other.TMax
	}
}

// Shift moves the box's time span by d microseconds. The value extent is
// unaffected.
func (b *BBox) Shift(d int64) {
	b.TMin += d
	b.TMax += d
}

// ContainsValue reports whether v lies within the box's value extent on
// every axis. The box does not record bound inclusivity, so this is a
// necessary-but-not-sufficient filter used to cut off restriction scans
// early.
func (b BBox) ContainsValue(v Value) bool {
	coords := v.Coords()
	if len(coords) != b.Dims {
		return false
	}
	for i, c := range coords {
		if c < b.XMin[i] || c > b.XMax[i] {
			return false
		}
	}

	return true
}

// OverlapsRange reports whether the box's first-axis extent intersects the
// given numeric range. Like ContainsValue this ignores bound inclusivity.
func (b BBox) OverlapsRange(r Range) bool {
	return b.XMin[0] <= r.Upper && r.Lower <= b.XMax[0]
}

// Equal reports exact equality of the two boxes.
func (b BBox) Equal(other BBox) bool {
	return b == other
}

// Compare returns -1, 0, or 1 ordering boxes by time span first and value
// extent second. Together with the period and instant comparisons it yields
// the total order used for index keys.
func (b BBox) Compare(other BBox) int {
	if c := cmpInt64(b.TMin, other.TMin); c != 0 {
		return c
	}
	if c := cmpInt64(b.TMax, other.TMax); c != 0 {
		return c
	}
	for i := 0; i < b.Dims; i++ {
		if c := cmpFloat(b.XMin[i], other.XMin[i]); c != 0 {
			return c
		}
		if c := cmpFloat(b.XMax[i], other.XMax[i]); c != 0 {
			return c
		}
	}

	return 0
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
