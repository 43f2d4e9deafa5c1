// Package simplex is the dual revised-simplex core: the state machine
// that prepares a working LP, carries the basis and work arrays through
// pivots, and keeps every derived quantity's validity flag honest.
//
// The central type is Model, an aggregate owning the input LP, the
// simplex working LP, scaling state, basis, work arrays, status flags,
// the deterministic random stream, the pricing-side sparse matrix view
// and the basis factor. Components take the model by pointer and are
// strictly single-threaded; the pricing loop and factorization kernel
// are invoked synchronously.
//
// A solve is staged as:
//
//  1. NewModel copies the input LP into the working LP and validates it.
//  2. Optional transforms, each a no-op once its is_* flag is set (the
//     matching Options toggles are not read by these methods):
//     TransposeLp (dual form, cancelled when n/m > 0.2 or bound shapes
//     do not map), ScaleLp (equilibration to powers of two), PermuteLp
//     (seeded random column order), TightenLp (row-by-row bound
//     tightening).
//  3. SetupForSolve installs a logical basis when none is valid (the
//     install populates the work arrays: phase-2 bounds, sense-signed
//     costs, values per the move/value contract) and wires the matrix
//     view and factor. Cost perturbation is applied only by an explicit
//     InitialiseCost(true).
//  4. The pricing loop (external) drives pivots: FTRAN/BTRAN through
//     the factor, then UpdatePivots + UpdateFactor + UpdateMatrix per
//     pivot, with ComputeFactor on refresh and ComputePrimal /
//     ComputeDual / ComputeDualObjectiveValue re-deriving values.
//     CorrectDual repairs dual infeasibilities between iterations by
//     bound flips (boxed) and cost shifts (one-sided).
//
// Every mutating action feeds UpdateStatus, which clears exactly the
// downstream has_* flags that the action invalidates; validation
// (OKToSolve and friends) cross-checks basis, work arrays and the
// nonbasic move/value contract, returning sentinel-wrapped errors
// instead of asserting.
package simplex
