// Package compress provides the block compression codecs used by the
// sequence storage envelope.
//
// Encoded sequence payloads are small (typically a few hundred bytes to a
// few kilobytes of delta-packed timestamps and raw float64 coordinates) and
// highly regular, which compresses well under every supported algorithm:
//
//   - Zstd: best ratio, for cold storage and archival
//   - S2: fastest, for hot paths and in-memory spill
//   - LZ4: balanced, for network transmission
//   - None: passthrough, for already-compressed or debug payloads
package compress

import "fmt"

// Type identifies a compression algorithm. Its byte value is stored in the
// storage envelope header, so the constants are part of the wire format and
// must not be renumbered.
type Type uint8

const (
	// TypeNone stores the payload uncompressed.
	TypeNone Type = iota
	// TypeZstd selects Zstandard compression.
	TypeZstd
	// TypeS2 selects S2 (Snappy-compatible) compression.
	TypeS2
	// TypeLZ4 selects LZ4 block compression.
	TypeLZ4
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(t))
	}
}

// Compressor compresses one payload.
//
// Memory management: the returned slice is newly allocated and owned by the
// caller (TypeNone excepted, which returns the input as-is); the input slice
// is never modified; internal buffers may be pooled for reuse.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the same
// algorithm. It validates the compressed framing and returns an error for
// corrupted or incompatible input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
