package temporal

import "github.com/tseqio/tseq/internal/hash"

// Equal reports whether two sequences describe the same evolution: same
// interpolation, same period and bounds, and pairwise equal instants. Both
// sides being in normal form, structural equality is semantic equality.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.interp != other.interp || len(s.instants) != len(other.instants) {
		return false
	}
	if !s.period.Equal(other.period) {
		return false
	}
	for i, inst := range s.instants {
		if !inst.Equal(other.instants[i]) {
			return false
		}
	}

	return true
}

// Compare orders sequences by period first, bounding summary second, then
// instants and interpolation. The result is a total order usable for
// B-tree index keys; it has no semantic meaning beyond being consistent.
func (s *Sequence) Compare(other *Sequence) int {
	if c := s.period.Compare(other.period); c != 0 {
		return c
	}
	if c := s.bbox.Compare(other.bbox); c != 0 {
		return c
	}
	count := len(s.instants)
	if len(other.instants) < count {
		count = len(other.instants)
	}
	for i := 0; i < count; i++ {
		if c := s.instants[i].Compare(other.instants[i]); c != 0 {
			return c
		}
	}
	if len(s.instants) != len(other.instants) {
		if len(s.instants) < len(other.instants) {
			return -1
		}

		return 1
	}
	if s.interp != other.interp {
		if s.interp < other.interp {
			return -1
		}

		return 1
	}

	return 0
}

// Hash returns the xxHash64 of the sequence. The bound and interpolation
// flags seed the hash so sequences differing only in them collide no more
// than unrelated ones; the instants fold in order-sensitively.
func (s *Sequence) Hash() uint64 {
	var flags byte
	if s.period.LowerInc {
		flags |= 0x01
	}
	if s.period.UpperInc {
		flags |= 0x02
	}
	if s.interp == InterpStep {
		flags |= 0x04
	}
	h := hash.Seed(flags)
	for _, inst := range s.instants {
		h = hash.Combine(h, inst.Hash())
	}

	return h
}
