// Package sparse supplies the two sparse carriers the simplex core
// works with: Vector, a dense-sparse buffer (dense value array plus an
// index list of the nonzero positions), and Matrix, a column-major CSC
// copy of the constraint matrix mirrored by a row-major CSR copy whose
// rows keep nonbasic entries ahead of basic ones.
//
// Vector is the FTRAN/BTRAN workhorse: kernels write values into Array
// and register first-touched positions in Index, so downstream passes
// can iterate either sparsely (Index[:Count]) or densely (Array).
// Entries that cancel below numeric.Tiny are stored as numeric.Zero,
// keeping the position indexed without polluting further arithmetic.
//
// Matrix serves three pricing-side operations:
//
//   - CollectColumn gathers column j, scaled by α, into a Vector
//     (logical columns are implicit unit vectors);
//   - PriceByColumn computes yᵀ = πᵀA restricted to structural columns;
//   - Update maintains the nonbasic-first partition of the CSR rows as
//     a pivot moves one column into the basis and another out.
//
// Setup builds both copies from caller-owned CSC slices; SetupLogical
// is the fast path for an all-logical basis, where every structural
// entry starts in the nonbasic partition.
package sparse
