package compress

// ZstdCompressor provides Zstandard compression, the best-ratio codec of the
// set. It suits cold storage and long-term retention of sequence blocks.
//
// The implementation is selected at build time: with cgo enabled the
// libzstd-backed implementation is used, otherwise the pure-Go one. Both
// produce interchangeable streams.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
