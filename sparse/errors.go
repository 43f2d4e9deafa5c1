package sparse

import "errors"

// Sentinel errors returned by the sparse carriers. Tests match these
// with errors.Is; callers that add context wrap with %w.
var (
	// ErrBadDimensions indicates a negative column or row count.
	ErrBadDimensions = errors.New("sparse: dimensions must be non-negative")

	// ErrBadStart indicates a CSC start array that is not non-decreasing,
	// does not begin at zero, or disagrees with the entry count.
	ErrBadStart = errors.New("sparse: malformed column start array")

	// ErrIndexOutOfRange indicates a row index outside [0, numRow) in the
	// CSC entry data, or a column index outside [0, numCol+numRow) passed
	// to CollectColumn.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrEntryMismatch indicates index and value slices of unequal length.
	ErrEntryMismatch = errors.New("sparse: index/value length mismatch")
)
