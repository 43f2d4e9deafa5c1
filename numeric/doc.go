// Package numeric defines the shared floating-point conventions of the
// engine: the finite sentinel used for infinite bounds, the fuzzy
// infinity predicate, power-of-two rounding for scale factors, and the
// drop tolerances applied by the sparse kernels.
//
// Conventions:
//
//   - Inf (1e30) is the bound sentinel. Any magnitude at or above Inf is
//     treated as infinite by IsInf; arithmetic never relies on IEEE ±Inf.
//   - Scale factors are rounded to the nearest integer power of two with
//     NearestPowerOfTwo so that scaling multiplies mantissas exactly.
//   - Tiny (1e-14) is the threshold below which a sparse entry produced
//     by cancellation is considered numerically zero; such entries are
//     stored as Zero (1e-50) so the position stays indexed without
//     contributing to further arithmetic.
package numeric
