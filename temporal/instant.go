package temporal

import (
	"github.com/tseqio/tseq/internal/hash"
	"github.com/tseqio/tseq/period"
	"github.com/tseqio/tseq/value"
)

// Instant is a single timestamped value, the atom every sequence is built
// from. Instants are immutable value types and safe to copy and share.
type Instant struct {
	t int64
	v value.Value
}

// NewInstant creates an instant holding v at timestamp t (Unix
// microseconds).
func NewInstant(v value.Value, t int64) Instant {
	return Instant{t: t, v: v}
}

// Time returns the instant's timestamp in Unix microseconds.
func (i Instant) Time() int64 { return i.t }

// Value returns the instant's value.
func (i Instant) Value() value.Value { return i.v }

// Equal reports whether the two instants have the same timestamp and exactly
// equal values.
func (i Instant) Equal(other Instant) bool {
	return i.t == other.t && value.Equal(i.v, other.v)
}

// Compare orders instants by timestamp first and value second.
func (i Instant) Compare(other Instant) int {
	if i.t != other.t {
		if i.t < other.t {
			return -1
		}

		return 1
	}

	return value.Compare(i.v, other.v)
}

// Hash returns the xxHash64 of the instant's timestamp and coordinates.
func (i Instant) Hash() uint64 {
	return hash.Instant(i.t, i.v.Coords())
}

// String renders the instant as "value@timestamp".
func (i Instant) String() string {
	return i.v.String() + "@" + period.FormatTimestamp(i.t)
}
