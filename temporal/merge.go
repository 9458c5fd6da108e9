package temporal

import (
	"fmt"
	"sort"

	"github.com/tseqio/tseq/errs"
	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/value"
)

// Merge combines sequences that do not overlap on time into one normalized
// set. Runs of sequences touching at a shared boundary instant are stitched
// into a single sequence; the remaining gaps keep the result a set.
//
// The inputs must share one interpolation mode and one value kind. Two
// inputs may share at most a single boundary timestamp; when both cover it
// inclusively they must agree on its value.
func Merge(sequences ...*Sequence) (*SequenceSet, error) {
	if len(sequences) == 0 {
		return &SequenceSet{}, nil
	}
	if len(sequences) == 1 {
		return makeSet([]*Sequence{sequences[0]}, false), nil
	}

	sorted := make([]*Sequence, len(sequences))
	copy(sorted, sequences)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].period.Compare(sorted[j].period) < 0
	})

	if err := validateMerge(sorted); err != nil {
		return nil, err
	}

	var out []*Sequence
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && joinsPrevious(sorted[end-1], sorted[end]) {
			end++
		}
		out = append(out, stitchRun(sorted[start:end]))
		start = end
	}

	return makeSet(out, true), nil
}

func validateMerge(sorted []*Sequence) error {
	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if curr.interp != prev.interp {
			return fmt.Errorf("%w: cannot merge %s and %s sequences",
				errs.ErrUnsupportedInterpolation, prev.interp, curr.interp)
		}
		if curr.kind != prev.kind {
			return fmt.Errorf("%w: cannot merge %s and %s sequences",
				errs.ErrDimensionalityMismatch, prev.kind, curr.kind)
		}
		last := prev.instants[len(prev.instants)-1]
		first := curr.instants[0]
		if last.t > first.t {
			return fmt.Errorf("%w: sequence starting at %s overlaps its predecessor",
				errs.ErrConflictingOverlap, period.FormatTimestamp(first.t))
		}
		if last.t == first.t && prev.period.UpperInc && curr.period.LowerInc &&
			!value.Equal(last.v, first.v) {
			return fmt.Errorf("%w: different values at shared instant %s",
				errs.ErrConflictingOverlap, period.FormatTimestamp(first.t))
		}
	}

	return nil
}

// joinsPrevious reports whether curr continues prev's output sequence: they
// meet at one timestamp, curr's lower bound is inclusive, and the junction
// is seamless. A step sequence closing on an exclusive bound repeats its
// held value there, so its closing instant is an artifact and the junction
// always joins; a linear sequence with an open end keeps its approach
// values, so it only joins a successor starting at the same value.
func joinsPrevious(prev, curr *Sequence) bool {
	last := prev.instants[len(prev.instants)-1]
	first := curr.instants[0]
	if !curr.period.LowerInc || last.t != first.t {
		return false
	}
	if prev.period.UpperInc || prev.interp == InterpStep {
		return true
	}

	return value.Equal(last.v, first.v)
}

// stitchRun concatenates a run of sequences joined at shared boundary
// instants into one sequence. Each junction keeps a single instant: the
// predecessor's when its upper bound is inclusive, the successor's
// otherwise.
func stitchRun(run []*Sequence) *Sequence {
	if len(run) == 1 {
		return run[0]
	}

	var instants []Instant
	for m, seq := range run {
		start := 0
		if m > 0 && run[m-1].period.UpperInc {
			start = 1
		}
		end := len(seq.instants)
		if !seq.period.UpperInc {
			end--
		}
		instants = append(instants, seq.instants[start:end]...)
	}
	last := run[len(run)-1]
	if !last.period.UpperInc {
		instants = append(instants, last.instants[len(last.instants)-1])
	}

	return assemble(instants, run[0].period.LowerInc, last.period.UpperInc, run[0].interp, true)
}
