package temporal

import (
	"strings"

	"github.com/tseqio/tseq/period"
)

// SequenceSet is an ordered collection of disjoint sequences sharing one
// value kind and interpolation mode. It is the result shape of every
// operation that can split a sequence.
type SequenceSet struct {
	seqs []*Sequence
}

// NewSequenceSet builds a set from already ordered, disjoint sequences,
// joining seamless junctions so the result is in normal form.
func NewSequenceSet(sequences ...*Sequence) *SequenceSet {
	return makeSet(sequences, true)
}

// makeSet wraps the given sequences, optionally joining seamless junctions.
func makeSet(sequences []*Sequence, normalize bool) *SequenceSet {
	if len(sequences) == 0 {
		return &SequenceSet{}
	}
	if normalize && len(sequences) > 1 {
		sequences = normalizeSeqArray(sequences)
	}

	return &SequenceSet{seqs: sequences}
}

// Count returns the number of composing sequences.
func (ss *SequenceSet) Count() int { return len(ss.seqs) }

// IsEmpty reports whether the set has no sequences.
func (ss *SequenceSet) IsEmpty() bool { return len(ss.seqs) == 0 }

// Seq returns the i-th sequence in time order.
func (ss *SequenceSet) Seq(i int) *Sequence { return ss.seqs[i] }

// Sequences returns a copy of the composing sequence slice.
func (ss *SequenceSet) Sequences() []*Sequence {
	out := make([]*Sequence, len(ss.seqs))
	copy(out, ss.seqs)

	return out
}

// Span returns the bounding period of the whole set, or the zero period for
// an empty set.
func (ss *SequenceSet) Span() period.Period {
	if len(ss.seqs) == 0 {
		return period.Period{}
	}
	first := ss.seqs[0].period
	last := ss.seqs[len(ss.seqs)-1].period

	return period.Period{
		Lower: first.Lower, Upper: last.Upper,
		LowerInc: first.LowerInc, UpperInc: last.UpperInc,
	}
}

// Time returns the covered time as a normalized period set.
func (ss *SequenceSet) Time() period.Set {
	periods := make([]period.Period, len(ss.seqs))
	for i, seq := range ss.seqs {
		periods[i] = seq.period
	}

	return period.NewSet(periods...)
}

// Duration returns the summed duration of the composing sequences in
// microseconds.
func (ss *SequenceSet) Duration() int64 {
	var total int64
	for _, seq := range ss.seqs {
		total += seq.Duration()
	}

	return total
}

// Equal reports whether the two sets hold pairwise equal sequences.
func (ss *SequenceSet) Equal(other *SequenceSet) bool {
	if len(ss.seqs) != len(other.seqs) {
		return false
	}
	for i, seq := range ss.seqs {
		if !seq.Equal(other.seqs[i]) {
			return false
		}
	}

	return true
}

func (ss *SequenceSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, seq := range ss.seqs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(seq.text(true))
	}
	sb.WriteByte('}')

	return sb.String()
}
