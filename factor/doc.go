// Package factor maintains an invertible representation of the current
// simplex basis B: the m basic columns of the constraint matrix (unit
// vectors for logical variables). The contract is the classic one:
//
//	Build  — refactorize from scratch; returns the rank deficiency
//	         (0 on success, k > 0 when k pivots were unusable)
//	FTran  — x := B⁻¹·x  (forward solve, pivot columns, primal values)
//	BTran  — y := B⁻ᵀ·y  (backward solve, pricing vectors)
//	Update — fold one pivot into the representation without rebuilding
//
// The representation is a dense LU factorization (gonum/mat) of the
// basis at the last Build, composed with a product-form eta file: each
// Update appends the FTRAN-form entering column as an elementary
// transformation, and FTran/BTran apply the file after/before the LU
// solves. The caller bounds the file length via its update limit and
// triggers Build when it is reached.
//
// The factor borrows the caller's basicIndex slice at Setup: Build
// reads it in place, so the caller must not reallocate it while the
// factor is live. The constraint data slices are borrowed on the same
// terms.
package factor
