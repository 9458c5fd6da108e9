// Package seqblob encodes groups of sequences into a self-describing binary
// envelope for storage and transport.
//
// The envelope is a fixed header followed by a payload holding the
// concatenated sequence encodings. Timestamps are delta encoded as zigzag
// varints since consecutive instants of a sequence sit close together;
// coordinates are stored as raw little-endian float64 bits. The whole
// payload is run through the configured compression codec, selectable per
// envelope and recorded in the header so readers need no out-of-band
// configuration.
package seqblob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tseqio/tseq/compress"
	"github.com/tseqio/tseq/endian"
	"github.com/tseqio/tseq/errs"
	"github.com/tseqio/tseq/temporal"
	"github.com/tseqio/tseq/value"
)

const (
	// Envelope magic "TSQB".
	magic = uint32(0x5453_5142)

	version = 1

	// magic, version, compression type and sequence count.
	headerSize = 4 + 1 + 1 + 4

	boundLowerInc = 0x01
	boundUpperInc = 0x02
)

// Encode packs the given sequences into one envelope, compressing the
// payload with the codec of the given type.
func Encode(sequences []*temporal.Sequence, ctype compress.Type) ([]byte, error) {
	codec, err := compress.GetCodec(ctype)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	payload := make([]byte, 0, payloadSize(sequences))
	for _, seq := range sequences {
		payload = appendSequence(payload, seq, engine)
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = engine.AppendUint32(out, magic)
	out = append(out, version, byte(ctype))
	out = engine.AppendUint32(out, uint32(len(sequences)))

	return append(out, compressed...), nil
}

// Decode unpacks an envelope produced by Encode.
func Decode(data []byte) ([]*temporal.Sequence, error) {
	engine := endian.GetLittleEndianEngine()
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: truncated envelope header", errs.ErrDecode)
	}
	if engine.Uint32(data) != magic {
		return nil, fmt.Errorf("%w: bad envelope magic", errs.ErrDecode)
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: unsupported envelope version %d", errs.ErrDecode, data[4])
	}
	codec, err := compress.GetCodec(compress.Type(data[5]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecode, err)
	}
	count := int(engine.Uint32(data[6:10]))

	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: decompress payload: %v", errs.ErrDecode, err)
	}
	// A sequence encoding takes at least its three header bytes and one
	// count byte; a larger count cannot come from a well-formed envelope.
	if count > len(payload)/4 {
		return nil, fmt.Errorf("%w: %d sequences cannot fit in %d payload bytes",
			errs.ErrDecode, count, len(payload))
	}

	sequences := make([]*temporal.Sequence, 0, count)
	for i := 0; i < count; i++ {
		seq, n, err := decodeSequence(payload, engine)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		sequences = append(sequences, seq)
		payload = payload[n:]
	}
	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrDecode, len(payload))
	}

	return sequences, nil
}

// payloadSize estimates the uncompressed payload size; varints make it an
// upper bound.
func payloadSize(sequences []*temporal.Sequence) int {
	size := 0
	for _, seq := range sequences {
		size += 3 + binary.MaxVarintLen32 +
			seq.Count()*(binary.MaxVarintLen64+seq.Kind().Dims()*8)
	}

	return size
}

func appendSequence(buf []byte, seq *temporal.Sequence, engine endian.EndianEngine) []byte {
	p := seq.Period()
	var bounds byte
	if p.LowerInc {
		bounds |= boundLowerInc
	}
	if p.UpperInc {
		bounds |= boundUpperInc
	}
	buf = append(buf, byte(seq.Kind()), byte(seq.Interp()), bounds)
	buf = binary.AppendUvarint(buf, uint64(seq.Count()))

	var prev int64
	for i := 0; i < seq.Count(); i++ {
		inst := seq.Inst(i)
		buf = binary.AppendVarint(buf, inst.Time()-prev)
		prev = inst.Time()
		for _, c := range inst.Value().Coords() {
			buf = engine.AppendUint64(buf, math.Float64bits(c))
		}
	}

	return buf
}

func decodeSequence(data []byte, engine endian.EndianEngine) (*temporal.Sequence, int, error) {
	if len(data) < 4 {
		return nil, 0, fmt.Errorf("%w: truncated sequence header", errs.ErrDecode)
	}
	kind := value.Kind(data[0])
	dims := kind.Dims()
	if dims == 0 {
		return nil, 0, fmt.Errorf("%w: unknown value kind %d", errs.ErrDecode, data[0])
	}
	if data[1] > byte(temporal.InterpStep) {
		return nil, 0, fmt.Errorf("%w: unknown interpolation %d", errs.ErrDecode, data[1])
	}
	interp := temporal.Interp(data[1])
	bounds := data[2]
	if bounds&^(boundLowerInc|boundUpperInc) != 0 {
		return nil, 0, fmt.Errorf("%w: malformed bound flags 0x%02x", errs.ErrDecode, bounds)
	}
	off := 3

	count, n := binary.Uvarint(data[off:])
	if n <= 0 || count == 0 {
		return nil, 0, fmt.Errorf("%w: malformed instant count", errs.ErrDecode)
	}
	off += n
	// Each instant takes at least one delta byte plus its coordinates.
	if count > uint64(len(data[off:])/(1+dims*8)) {
		return nil, 0, fmt.Errorf("%w: %d instants cannot fit in %d payload bytes",
			errs.ErrDecode, count, len(data[off:]))
	}

	instants := make([]temporal.Instant, 0, count)
	coords := make([]float64, dims)
	var prev int64
	for i := uint64(0); i < count; i++ {
		delta, n := binary.Varint(data[off:])
		if n <= 0 {
			return nil, 0, fmt.Errorf("%w: malformed timestamp delta", errs.ErrDecode)
		}
		off += n
		prev += delta
		if len(data[off:]) < dims*8 {
			return nil, 0, fmt.Errorf("%w: truncated coordinates", errs.ErrDecode)
		}
		for d := range coords {
			coords[d] = math.Float64frombits(engine.Uint64(data[off:]))
			off += 8
		}
		v, err := value.Make(kind, coords)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errs.ErrDecode, err)
		}
		instants = append(instants, temporal.NewInstant(v, prev))
	}

	seq, err := temporal.NewSequence(instants,
		bounds&boundLowerInc != 0, bounds&boundUpperInc != 0, interp, true)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.ErrDecode, err)
	}

	return seq, off, nil
}
