package sparse

import (
	"math"

	"github.com/katalvlaran/dsimplex/numeric"
)

// Vector is a dense-sparse buffer of fixed dimension: a dense value
// array plus the list of positions known to hold nonzeros. Count is the
// length of the valid prefix of Index. Kernels that fill a Vector must
// register each first-touched position in Index; positions cancelled
// during accumulation stay registered with value numeric.Zero.
type Vector struct {
	// Count is the number of registered nonzero positions.
	Count int
	// Index holds the registered positions in Index[:Count].
	Index []int
	// Array is the dense value array, length Dim.
	Array []float64
}

// NewVector returns a cleared Vector of dimension n.
func NewVector(n int) *Vector {
	return &Vector{
		Index: make([]int, n),
		Array: make([]float64, n),
	}
}

// Dim returns the dense dimension of the vector.
func (v *Vector) Dim() int { return len(v.Array) }

// Clear zeroes the registered positions and empties the index list.
// Only positions in Index[:Count] are touched, so clearing after a
// sparse fill is O(Count), not O(n).
func (v *Vector) Clear() {
	for i := 0; i < v.Count; i++ {
		v.Array[v.Index[i]] = 0
	}
	v.Count = 0
}

// Add accumulates value at position i, registering i on first touch and
// collapsing cancellation below numeric.Tiny to numeric.Zero.
func (v *Vector) Add(i int, value float64) {
	before := v.Array[i]
	after := before + value
	if before == 0 {
		v.Index[v.Count] = i
		v.Count++
	}
	if math.Abs(after) < numeric.Tiny {
		after = numeric.Zero
	}
	v.Array[i] = after
}

// Norm2 returns the squared Euclidean norm over the registered entries.
func (v *Vector) Norm2() float64 {
	n := 0.0
	for i := 0; i < v.Count; i++ {
		x := v.Array[v.Index[i]]
		n += x * x
	}

	return n
}

// CopyFrom makes v an exact copy of src. Dimensions must match; the
// caller guarantees it.
func (v *Vector) CopyFrom(src *Vector) {
	v.Clear()
	for i := 0; i < src.Count; i++ {
		j := src.Index[i]
		v.Index[i] = j
		v.Array[j] = src.Array[j]
	}
	v.Count = src.Count
}
