// Package dsimplex is a dual revised-simplex engine for linear programs
// of the form min cᵀx subject to Lr ≤ Ax ≤ Ur, Lc ≤ x ≤ Uc, with sparse
// column-major constraint data and possibly infinite bounds on either side.
//
// 🚀 What is dsimplex?
//
//	A library-first LP engine that brings together:
//		• LP carrier: sparse CSC problem data, scaling state, validation
//		• Preparation: dual transposition, equilibration scaling,
//		  column permutation, row-by-row bound tightening
//		• Basis machinery: logical/new basis install, work arrays,
//		  nonbasic move/value contract
//		• Numerics: basis factorization (LU + product-form updates),
//		  FTRAN/BTRAN, primal/dual/objective computation
//		• Dual feasibility repair: bound flipping, cost shifting,
//		  deterministic cost perturbation
//		• Pivot pipeline: basis, factor and matrix updates with an
//		  incremental dual objective
//
// ✨ Why choose dsimplex?
//
//   - Deterministic – a fixed-seed random stream makes successive runs
//     on the same LP bit-reproducible
//   - Explicit state machine – every cached quantity has a validity
//     flag with a documented invalidation lifecycle
//   - Library-friendly – sentinel errors, no global state, no I/O in
//     the core; pricing loops and readers plug in from outside
//
// Under the hood, everything is organized per concern:
//
//	numeric/ — infinity sentinel, fuzzy-infinity predicate, power-of-two rounding
//	random/  — deterministic integer/fraction stream
//	sparse/  — dense-sparse vectors, CSC matrix with partitioned CSR mirror
//	factor/  — basis factorization: build, ftran, btran, rank-one update
//	lp/      — the LP entity, scale vectors, structural validation
//	simplex/ — the core: model aggregate, transforms, basis & work arrays,
//	           objective/primal/dual computation, pivot pipeline, validation
//
// The simplex pivot-selection inner loops (pricing, ratio test) are
// deliberately external collaborators: the core exposes the basis,
// work arrays and factor they need, and consumes their pivot choices
// through UpdatePivots/UpdateFactor/UpdateMatrix.
//
//	go get github.com/katalvlaran/dsimplex
package dsimplex
