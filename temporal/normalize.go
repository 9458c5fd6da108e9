package temporal

import "github.com/tseqio/tseq/value"

// normalizeInstants removes the redundant instants of an ordered run. Under
// step interpolation an instant is redundant when the previous kept instant
// already holds its value; under linear interpolation when it is the middle
// of an equal-valued triple or collinear with its kept predecessor and its
// successor. The first and last instants are always kept since they anchor
// the sequence bounds.
func normalizeInstants(instants []Instant, interp Interp) []Instant {
	result := make([]Instant, 0, len(instants))
	inst1 := instants[0]
	inst2 := instants[1]
	result = append(result, inst1)
	for _, inst3 := range instants[2:] {
		if removable(inst1, inst2, inst3, interp) {
			inst2 = inst3
			continue
		}
		result = append(result, inst2)
		inst1 = inst2
		inst2 = inst3
	}

	return append(result, inst2)
}

func removable(inst1, inst2, inst3 Instant, interp Interp) bool {
	if interp == InterpStep {
		return value.Equal(inst1.v, inst2.v)
	}
	if value.Equal(inst1.v, inst2.v) && value.Equal(inst2.v, inst3.v) {
		return true
	}

	return segCollinear(inst1, inst2, inst3)
}

// normalizeSeqArray joins adjacent sequences of an ordered, non-overlapping
// run wherever the junction is seamless. Three junction shapes are joinable:
//
//  1. The last segment of the left sequence and the first segment of the
//     right one form a single constant or collinear segment; both junction
//     instants are dropped.
//  2. Step sequences where the left upper bound is exclusive; the left
//     sequence's repeated closing instant is dropped.
//  3. The junction instants carry the same value at the same timestamp; the
//     duplicate on the right is dropped.
//
// Each input sequence must already be in normal form.
func normalizeSeqArray(sequences []*Sequence) []*Sequence {
	result := make([]*Sequence, 0, len(sequences))
	seq1 := sequences[0]
	for _, seq2 := range sequences[1:] {
		if joined, ok := tryJoin(seq1, seq2); ok {
			seq1 = joined
			continue
		}
		result = append(result, seq1)
		seq1 = seq2
	}

	return append(result, seq1)
}

func tryJoin(seq1, seq2 *Sequence) (*Sequence, bool) {
	if !seq1.period.IsAdjacent(seq2.period) {
		return nil, false
	}
	last1 := seq1.instants[len(seq1.instants)-1]
	first1 := seq2.instants[0]

	if len(seq1.instants) > 1 && len(seq2.instants) > 1 {
		last2 := seq1.instants[len(seq1.instants)-2]
		first2 := seq2.instants[1]
		constStep := seq1.interp == InterpStep &&
			value.Equal(last2.v, last1.v) && value.Equal(last1.v, first1.v)
		constRun := value.Equal(last2.v, last1.v) &&
			value.Equal(last1.v, first1.v) && value.Equal(first1.v, first2.v)
		collinearRun := seq1.interp == InterpLinear &&
			value.Equal(last1.v, first1.v) && segCollinear(last2, first1, first2)
		if constStep || constRun || collinearRun {
			return joinSequences(seq1, seq2, true, true), true
		}
	}
	// A step sequence with an exclusive upper bound closes with a repeated
	// held value; the junction replaces it with the right sequence's start.
	if seq1.interp == InterpStep && !seq1.period.UpperInc {
		return joinSequences(seq1, seq2, true, false), true
	}
	if value.Equal(last1.v, first1.v) {
		return joinSequences(seq1, seq2, false, true), true
	}

	return nil, false
}

// joinSequences concatenates two adjacent sequences into one, optionally
// dropping the junction instants. The result takes the left lower bound and
// the right upper bound. The caller guarantees the junction is seamless.
func joinSequences(seq1, seq2 *Sequence, removeLast, removeFirst bool) *Sequence {
	count1 := len(seq1.instants)
	if removeLast {
		count1--
	}
	start2 := 0
	if removeFirst {
		start2 = 1
	}
	instants := make([]Instant, 0, count1+len(seq2.instants)-start2)
	instants = append(instants, seq1.instants[:count1]...)
	instants = append(instants, seq2.instants[start2:]...)

	return assemble(instants, seq1.period.LowerInc, seq2.period.UpperInc, seq1.interp, false)
}
