// Package hash provides the xxHash64 helpers backing the sequence hash
// function used by hash indexes.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Instant computes the hash of one (timestamp, coordinates) pair.
func Instant(t int64, coords []float64) uint64 {
	buf := make([]byte, 8+8*len(coords))
	binary.LittleEndian.PutUint64(buf, uint64(t))
	for i, c := range coords {
		binary.LittleEndian.PutUint64(buf[8+8*i:], math.Float64bits(c))
	}

	return xxhash.Sum64(buf)
}

// Seed derives the hash seed from a flag byte. Sequences differing only in
// bound inclusivity or interpolation hash differently because of it.
func Seed(flags byte) uint64 {
	return xxhash.Sum64([]byte{flags})
}

// Combine folds the next element hash into the accumulator. The combination
// is order-sensitive, mirroring the classic array-hash recurrence.
func Combine(acc, h uint64) uint64 {
	return (acc << 5) - acc + h
}
