// Package errs defines the sentinel errors shared across the tseq packages.
//
// All validation failures are detected eagerly at the point of violation and
// wrapped with fmt.Errorf("%w: ...") so that callers can test them with
// errors.Is while still receiving context about the offending input.
package errs

import "errors"

var (
	// ErrInvalidBounds reports a malformed bound combination: a single-instant
	// sequence with an exclusive bound, or a step-interpolated sequence whose
	// exclusive upper bound does not repeat the held value.
	ErrInvalidBounds = errors.New("invalid sequence bounds")

	// ErrNonMonotonicTime reports timestamps that are not strictly increasing
	// on construction or append.
	ErrNonMonotonicTime = errors.New("timestamps are not strictly increasing")

	// ErrDimensionalityMismatch reports incompatible value kinds combined in
	// one sequence, append, or merge.
	ErrDimensionalityMismatch = errors.New("incompatible value kinds")

	// ErrConflictingOverlap reports merge inputs that overlap on a
	// non-degenerate period, or that disagree on the value at a shared
	// boundary instant.
	ErrConflictingOverlap = errors.New("conflicting overlap between sequences")

	// ErrUnsupportedInterpolation reports an operation that requires one
	// interpolation mode applied to a sequence with the other, or merge
	// inputs with mixed interpolation modes.
	ErrUnsupportedInterpolation = errors.New("unsupported interpolation mode")

	// ErrDecode reports a malformed binary stream.
	ErrDecode = errors.New("malformed binary stream")
)
