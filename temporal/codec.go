package temporal

import (
	"fmt"
	"math"
	"strings"

	"github.com/tseqio/tseq/endian"
	"github.com/tseqio/tseq/errs"
	"github.com/tseqio/tseq/value"
)

// Text and binary codecs. The text form is for humans and logs; the binary
// form is the canonical little-endian encoding the storage envelope builds
// on.

const (
	boundLowerInc = 0x01
	boundUpperInc = 0x02

	// kind, interpolation and bound bytes plus the instant count.
	binaryHeaderSize = 3 + 4
)

// String renders the sequence in canonical text form: the instants as
// "value@timestamp" between bound brackets, prefixed with the interpolation
// marker when it deviates from the linear default.
func (s *Sequence) String() string {
	return s.text(false)
}

// text renders the sequence; a component of a set output leaves the
// interpolation marker to the enclosing set.
func (s *Sequence) text(component bool) string {
	var sb strings.Builder
	if !component && s.interp == InterpStep {
		sb.WriteString("Interp=Stepwise;")
	}
	if s.period.LowerInc {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	for i, inst := range s.instants {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(inst.String())
	}
	if s.period.UpperInc {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}

	return sb.String()
}

// AppendBinary appends the canonical binary encoding of the sequence to buf
// and returns the extended slice.
func (s *Sequence) AppendBinary(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	var bounds byte
	if s.period.LowerInc {
		bounds |= boundLowerInc
	}
	if s.period.UpperInc {
		bounds |= boundUpperInc
	}
	buf = append(buf, byte(s.kind), byte(s.interp), bounds)
	buf = engine.AppendUint32(buf, uint32(len(s.instants)))
	for _, inst := range s.instants {
		buf = engine.AppendUint64(buf, uint64(inst.t))
		for _, c := range inst.v.Coords() {
			buf = engine.AppendUint64(buf, math.Float64bits(c))
		}
	}

	return buf
}

// EncodeBinary returns the canonical binary encoding of the sequence.
func (s *Sequence) EncodeBinary() []byte {
	size := binaryHeaderSize + len(s.instants)*(8+s.kind.Dims()*8)

	return s.AppendBinary(make([]byte, 0, size))
}

// DecodeBinary parses one sequence from its canonical binary encoding. The
// input must hold exactly one encoded sequence; trailing bytes are rejected.
func DecodeBinary(data []byte) (*Sequence, error) {
	seq, n, err := decodeBinary(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after sequence", errs.ErrDecode, len(data)-n)
	}

	return seq, nil
}

// decodeBinary parses one sequence from the front of data and returns the
// number of bytes consumed. The storage envelope uses it to read
// concatenated encodings.
func decodeBinary(data []byte) (*Sequence, int, error) {
	if len(data) < binaryHeaderSize {
		return nil, 0, fmt.Errorf("%w: truncated sequence header", errs.ErrDecode)
	}
	kind := value.Kind(data[0])
	dims := kind.Dims()
	if dims == 0 {
		return nil, 0, fmt.Errorf("%w: unknown value kind %d", errs.ErrDecode, data[0])
	}
	if data[1] > byte(InterpStep) {
		return nil, 0, fmt.Errorf("%w: unknown interpolation %d", errs.ErrDecode, data[1])
	}
	interp := Interp(data[1])
	bounds := data[2]
	if bounds&^(boundLowerInc|boundUpperInc) != 0 {
		return nil, 0, fmt.Errorf("%w: malformed bound flags 0x%02x", errs.ErrDecode, bounds)
	}

	engine := endian.GetLittleEndianEngine()
	count := int(engine.Uint32(data[3:7]))
	if count == 0 {
		return nil, 0, fmt.Errorf("%w: sequence without instants", errs.ErrDecode)
	}
	instSize := 8 + dims*8
	total := binaryHeaderSize + count*instSize
	if len(data) < total {
		return nil, 0, fmt.Errorf("%w: %d instants need %d bytes, have %d",
			errs.ErrDecode, count, total, len(data))
	}

	instants := make([]Instant, count)
	coords := make([]float64, dims)
	off := binaryHeaderSize
	for i := range instants {
		t := int64(engine.Uint64(data[off:]))
		off += 8
		for d := range coords {
			coords[d] = math.Float64frombits(engine.Uint64(data[off:]))
			off += 8
		}
		v, err := value.Make(kind, coords)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errs.ErrDecode, err)
		}
		instants[i] = Instant{t: t, v: v}
	}

	// Self-produced streams are already normal; normalizing here keeps the
	// decoder total over hand-crafted denormalized input as well.
	seq, err := NewSequence(instants, bounds&boundLowerInc != 0, bounds&boundUpperInc != 0, interp, true)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.ErrDecode, err)
	}

	return seq, total, nil
}
