package numeric

import "math"

// Inf is the finite sentinel representing an infinite bound.
const Inf = 1e30

// Tiny is the cancellation threshold for sparse kernels: results with
// magnitude below Tiny are treated as numerically zero.
const Tiny = 1e-14

// Zero replaces a cancelled sparse entry so its index stays live
// without contributing to further arithmetic.
const Zero = 1e-50

// ln2 caches log(2) for the power-of-two rounding below.
var ln2 = math.Log(2.0)

// IsInf reports whether v is an infinite bound, i.e. |v| ≥ Inf.
func IsInf(v float64) bool {
	return math.Abs(v) >= Inf
}

// NearestPowerOfTwo rounds x to 2^round(log₂ x). x must be positive;
// the result is the scale factor actually applied by equilibration so
// that rescaling only shifts exponents.
func NearestPowerOfTwo(x float64) float64 {
	return math.Pow(2.0, math.Floor(math.Log(x)/ln2+0.5))
}
