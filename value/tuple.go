package value

import "strings"

// Double2, Double3 and Double4 are fixed-size numeric tuples. They carry
// aggregation accumulators (sum/count pairs, centroid components) through
// temporal operations. Aggregates are based on sums, so tuple segments never
// need intermediate crossing points; only equality, interpolation,
// collinearity and bounding behavior are defined for them.

// Double2 is a 2-tuple accumulator.
type Double2 [2]float64

// Kind returns KindDouble2.
func (Double2) Kind() Kind { return KindDouble2 }

// Coords returns the tuple components.
func (v Double2) Coords() []float64 { return []float64{v[0], v[1]} }

func (v Double2) String() string { return fmtTuple(v[:]) }

// Double3 is a 3-tuple accumulator.
type Double3 [3]float64

// Kind returns KindDouble3.
func (Double3) Kind() Kind { return KindDouble3 }

// Coords returns the tuple components.
func (v Double3) Coords() []float64 { return []float64{v[0], v[1], v[2]} }

func (v Double3) String() string { return fmtTuple(v[:]) }

// Double4 is a 4-tuple accumulator.
type Double4 [4]float64

// Kind returns KindDouble4.
func (Double4) Kind() Kind { return KindDouble4 }

// Coords returns the tuple components.
func (v Double4) Coords() []float64 { return []float64{v[0], v[1], v[2], v[3]} }

func (v Double4) String() string { return fmtTuple(v[:]) }

func fmtTuple(coords []float64) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmtCoord(c))
	}
	sb.WriteByte('}')

	return sb.String()
}
