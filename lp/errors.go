package lp

import "errors"

// Sentinel errors returned by Lp validation. Callers add context with
// wrapping; tests match with errors.Is.
var (
	// ErrBadDimensions indicates a negative column or row count.
	ErrBadDimensions = errors.New("lp: dimensions must be non-negative")

	// ErrBadSense indicates a sense outside {+1, -1}.
	ErrBadSense = errors.New("lp: sense must be +1 (min) or -1 (max)")

	// ErrBadMatrix indicates malformed CSC data: wrong AStart length,
	// decreasing starts, entry-count disagreement, or row indices outside
	// [0, NumRow).
	ErrBadMatrix = errors.New("lp: malformed constraint matrix")

	// ErrBadVectorLength indicates cost or bound vectors whose length
	// disagrees with the dimensions.
	ErrBadVectorLength = errors.New("lp: vector length mismatch")

	// ErrBoundOrder indicates a lower bound strictly above its upper bound.
	ErrBoundOrder = errors.New("lp: lower bound exceeds upper bound")
)
