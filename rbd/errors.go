package rbd

import "errors"

// Error kinds returned by this package. Arithmetic on well-formed inputs is
// infallible; these are surfaced to the caller rather than locally
// recovered, per the no-partial-answer policy: a failing analysis returns
// no partial result.
var (
	// ErrOutOfRange is returned when a ProbabilityMap lookup index has a
	// magnitude exceeding the map's known bounds.
	ErrOutOfRange = errors.New("rbd: lookup index out of range")

	// ErrZeroLiteral is returned when a Term contains the literal 0, or
	// when 0 is passed directly to a lookup.
	ErrZeroLiteral = errors.New("rbd: zero is not a valid literal")

	// ErrNestedParallelism is returned when a caller attempts to enter a
	// second data-parallel region (topology fan-out or intra-SDP) while
	// one is already active. The two parallel regions must not nest.
	ErrNestedParallelism = errors.New("rbd: topology and intra-SDP parallel regions must not be nested")
)
