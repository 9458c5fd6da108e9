// Package temporal implements sequences of timestamped values: ordered
// instants over a bounded period, with linear or step interpolation between
// them.
//
// A sequence is immutable after construction and always held in normal form,
// so equal evolutions have equal representations. All operations that can
// split a sequence (restriction, complement, merge) return a SequenceSet of
// disjoint sequences in time order.
//
// Timestamps are int64 Unix microseconds. Value comparisons are exact;
// derived quantities such as crossing fractions are routed through the
// process-wide tolerance in the value package.
package temporal
