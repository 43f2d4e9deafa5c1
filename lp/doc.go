// Package lp defines the linear-program entity the engine consumes and
// the scaling state attached to it.
//
// An Lp is min Sense·cᵀx subject to RowLower ≤ Ax ≤ RowUpper and
// ColLower ≤ x ≤ ColUpper, with A held column-major (CSC: AStart,
// AIndex, AValue). Bounds use the numeric.Inf sentinel for ±∞; a bound
// equal to the sentinel is never rescaled.
//
// The engine keeps two Lps: the caller's input and the simplex working
// copy that the transforms (transposition, scaling, permutation,
// tightening) mutate. Clone produces the working copy; EqualTo supports
// the bit-identity guarantees the transforms make when they cancel.
//
// Scale carries the equilibration state: positive per-column and
// per-row factors (powers of two after rounding) plus the cost scale.
package lp
