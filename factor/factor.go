package factor

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dsimplex/numeric"
	"github.com/katalvlaran/dsimplex/sparse"
)

// Sentinel errors for the factor contract.
var (
	// ErrNotBuilt is returned by FTran/BTran/Update before the first Build.
	ErrNotBuilt = errors.New("factor: no factorization built")

	// ErrSingular is returned when a solve meets an exactly singular
	// basis; Build reported the deficiency and the caller did not repair it.
	ErrSingular = errors.New("factor: basis is singular")

	// ErrZeroPivot is returned by Update when the entering column has a
	// negligible pivot in the leaving row.
	ErrZeroPivot = errors.New("factor: zero pivot in update")
)

// pivotTol classifies an LU diagonal entry as unusable, relative to the
// largest basis entry magnitude, or to 1 when every entry is smaller.
const pivotTol = 1e-11

// eta is one product-form elementary transformation: the FTRAN-form
// entering column w with pivot row r, stored as the pivot value and the
// off-pivot nonzeros.
type eta struct {
	row   int
	pivot float64
	index []int
	value []float64
}

// Factor holds the dense LU of the basis at the last Build plus the eta
// file accumulated since. The zero value is unusable; call Setup.
type Factor struct {
	numCol, numRow int

	// Borrowed constraint data (CSC) and basic index.
	aStart     []int
	aIndex     []int
	aValue     []float64
	basicIndex []int

	lu    mat.LU
	basis *mat.Dense
	etas  []eta
	built bool
	// rank deficiency reported by the last Build.
	deficiency int

	// dense scratch for solves.
	rhs *mat.VecDense
	sol mat.VecDense
}

// Setup wires the factor to the constraint data and the basis index.
// All slices are borrowed: the caller must not reallocate them while
// the factor is live. Rebinding is allowed (transforms call Setup again).
func (f *Factor) Setup(numCol, numRow int, aStart, aIndex []int, aValue []float64, basicIndex []int) {
	f.numCol, f.numRow = numCol, numRow
	f.aStart, f.aIndex, f.aValue = aStart, aIndex, aValue
	f.basicIndex = basicIndex
	f.basis = mat.NewDense(max(numRow, 1), max(numRow, 1), nil)
	f.rhs = mat.NewVecDense(max(numRow, 1), nil)
	f.built = false
	f.etas = f.etas[:0]
}

// Build refactorizes the basis from basicIndex and clears the eta file.
// The return value is the rank deficiency: 0 on success, k > 0 when k
// diagonal pivots of U were negligible. On deficiency the factorization
// is kept so the caller can inspect it, but solves will fail until the
// basis is repaired and Build is called again.
func (f *Factor) Build() int {
	m := f.numRow
	f.etas = f.etas[:0]
	f.built = true
	f.deficiency = 0
	if m == 0 {
		return 0
	}

	f.basis.Zero()
	maxEntry := 1.0
	for r := 0; r < m; r++ {
		v := f.basicIndex[r]
		if v < f.numCol {
			for k := f.aStart[v]; k < f.aStart[v+1]; k++ {
				f.basis.Set(f.aIndex[k], r, f.aValue[k])
				maxEntry = math.Max(maxEntry, math.Abs(f.aValue[k]))
			}
		} else {
			f.basis.Set(v-f.numCol, r, 1)
		}
	}

	f.lu.Factorize(f.basis)

	var u mat.TriDense
	f.lu.UTo(&u)
	tol := pivotTol * maxEntry
	for i := 0; i < m; i++ {
		if math.Abs(u.At(i, i)) <= tol {
			f.deficiency++
		}
	}

	return f.deficiency
}

// FTran overwrites v with B⁻¹·v: the LU solve of the last Build
// followed by the eta file in application order.
func (f *Factor) FTran(v *sparse.Vector) error {
	if err := f.solve(v, false); err != nil {
		return err
	}
	for e := range f.etas {
		applyEtaForward(&f.etas[e], v.Array)
	}
	reindex(v)

	return nil
}

// BTran overwrites v with B⁻ᵀ·v: the eta file in reverse order followed
// by the transposed LU solve.
func (f *Factor) BTran(v *sparse.Vector) error {
	if !f.built {
		return ErrNotBuilt
	}
	for e := len(f.etas) - 1; e >= 0; e-- {
		applyEtaTransposed(&f.etas[e], v.Array)
	}

	return f.solve(v, true)
}

// Update folds a pivot into the representation: column is the entering
// column in FTRAN form (already B⁻¹·a_q), rowOut the leaving position.
// rowEp, the BTRAN-form pivot row, is accepted for contract parity with
// kernels that exploit it; the product-form file does not need it.
func (f *Factor) Update(column, rowEp *sparse.Vector, rowOut int) error {
	_ = rowEp
	if !f.built {
		return ErrNotBuilt
	}
	pivot := column.Array[rowOut]
	if math.Abs(pivot) < numeric.Tiny {
		return ErrZeroPivot
	}

	e := eta{row: rowOut, pivot: pivot}
	for i := 0; i < column.Count; i++ {
		j := column.Index[i]
		w := column.Array[j]
		if j == rowOut || w == 0 || math.Abs(w) < numeric.Zero*2 {
			continue
		}
		e.index = append(e.index, j)
		e.value = append(e.value, w)
	}
	f.etas = append(f.etas, e)

	return nil
}

// UpdateCount reports the current eta-file length (updates since Build).
func (f *Factor) UpdateCount() int { return len(f.etas) }

// solve runs the dense LU solve on the vector, re-registering nonzeros.
func (f *Factor) solve(v *sparse.Vector, trans bool) error {
	if !f.built {
		return ErrNotBuilt
	}
	if f.deficiency > 0 {
		return ErrSingular
	}
	m := f.numRow
	if m == 0 {
		return nil
	}

	for i := 0; i < m; i++ {
		f.rhs.SetVec(i, v.Array[i])
	}
	if err := f.lu.SolveVecTo(&f.sol, trans, f.rhs); err != nil {
		return errors.Join(ErrSingular, err)
	}
	for i := 0; i < m; i++ {
		v.Array[i] = f.sol.AtVec(i)
	}
	reindex(v)

	return nil
}

// applyEtaForward applies E⁻¹ to a dense array:
// x[r] := x[r]/w_r, then x[i] -= w_i·x[r] for the off-pivot entries.
func applyEtaForward(e *eta, x []float64) {
	t := x[e.row] / e.pivot
	if t != 0 {
		for k, i := range e.index {
			x[i] -= e.value[k] * t
		}
	}
	x[e.row] = t
}

// applyEtaTransposed applies E⁻ᵀ to a dense array: only the pivot row
// changes, x[r] := (x[r] − Σ_{i≠r} w_i·x[i]) / w_r.
func applyEtaTransposed(e *eta, x []float64) {
	s := 0.0
	for k, i := range e.index {
		s += e.value[k] * x[i]
	}
	x[e.row] = (x[e.row] - s) / e.pivot
}

// reindex rebuilds the index list of a vector whose dense array was
// rewritten by a dense kernel.
func reindex(v *sparse.Vector) {
	v.Count = 0
	for i, x := range v.Array {
		if x != 0 {
			if math.Abs(x) < numeric.Tiny {
				v.Array[i] = 0

				continue
			}
			v.Index[v.Count] = i
			v.Count++
		}
	}
}
