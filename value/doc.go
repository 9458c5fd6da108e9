// Package value implements the primitive value operations the temporal core
// is parameterized by.
//
// A temporal sequence carries values of exactly one Kind. The closed set of
// kinds covers:
//
//   - KindFloat: one-dimensional numeric values with a total order
//   - KindPoint2D, KindPoint3D: planar and spatial positions
//   - KindDouble2, KindDouble3, KindDouble4: fixed-size numeric tuples used
//     by aggregation (sum/avg/centroid accumulators)
//
// Every kind supports exact equality, lexicographic ordering, linear
// interpolation, collinearity testing and bounding-box expansion. Locating a
// target value on a segment and intersecting two time-synchronized segments
// are only meaningful for floats and points; the tuple kinds are
// accumulator carriers that never need intermediate crossing points.
//
// # Tolerance policy
//
// Value equality is exact. The tolerance constant Epsilon applies only to
// derived floating quantities: fractional positions along a segment,
// point-to-segment distances, and collinearity deviations. These originate
// from distinct floating computations that are mathematically but not
// bit-wise equal, so all such comparisons route through Epsilon instead of
// ==. Epsilon is fixed at process start and never mutated.
package value
