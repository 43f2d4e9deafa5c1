package sparse

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dsimplex/numeric"
)

// Matrix is the pricing-side view of the constraint matrix: a CSC copy
// of the caller's column data plus a CSR mirror whose rows are
// partitioned with nonbasic entries first. The partition boundary per
// row (arNEnd) moves as pivots exchange columns with the basis, so
// row-wise pricing can skip basic columns without branching.
//
// Both copies are rebuilt by Setup/SetupLogical; the caller's slices
// are copied, never borrowed.
type Matrix struct {
	numCol, numRow int

	// Column-wise copy.
	aStart []int
	aIndex []int
	aValue []float64

	// Row-wise copy, nonbasic entries first in each row.
	arStart []int
	arNEnd  []int
	arIndex []int
	arValue []float64
}

// NumCol returns the structural column count.
func (m *Matrix) NumCol() int { return m.numCol }

// NumRow returns the row count.
func (m *Matrix) NumRow() int { return m.numRow }

// validate checks the caller's CSC triplet before any allocation.
func validate(numCol, numRow int, aStart, aIndex []int, aValue []float64) error {
	if numCol < 0 || numRow < 0 {
		return errors.Wrapf(ErrBadDimensions, "numCol=%d numRow=%d", numCol, numRow)
	}
	if len(aStart) != numCol+1 || aStart[0] != 0 {
		return errors.Wrapf(ErrBadStart, "len(aStart)=%d want %d", len(aStart), numCol+1)
	}
	for j := 0; j < numCol; j++ {
		if aStart[j+1] < aStart[j] {
			return errors.Wrapf(ErrBadStart, "aStart decreases at column %d", j)
		}
	}
	if aStart[numCol] != len(aIndex) {
		return errors.Wrapf(ErrBadStart, "aStart[%d]=%d but %d entries", numCol, aStart[numCol], len(aIndex))
	}
	if len(aIndex) != len(aValue) {
		return errors.Wrapf(ErrEntryMismatch, "%d indices, %d values", len(aIndex), len(aValue))
	}
	for k, r := range aIndex {
		if r < 0 || r >= numRow {
			return errors.Wrapf(ErrIndexOutOfRange, "entry %d references row %d of %d", k, r, numRow)
		}
	}

	return nil
}

// Setup rebuilds both copies from the CSC triplet, partitioning each
// CSR row by nonbasicFlag (1 = nonbasic, entry goes in the leading
// partition). nonbasicFlag covers structural columns only here; logical
// columns never appear in the stored matrix.
func (m *Matrix) Setup(numCol, numRow int, aStart, aIndex []int, aValue []float64, nonbasicFlag []int) error {
	if err := validate(numCol, numRow, aStart, aIndex, aValue); err != nil {
		return err
	}

	m.copyColWise(numCol, numRow, aStart, aIndex, aValue)

	// Count nonbasic and basic entries per row.
	countN := make([]int, numRow)
	countB := make([]int, numRow)
	for j := 0; j < numCol; j++ {
		if nonbasicFlag[j] != 0 {
			for k := aStart[j]; k < aStart[j+1]; k++ {
				countN[aIndex[k]]++
			}
		} else {
			for k := aStart[j]; k < aStart[j+1]; k++ {
				countB[aIndex[k]]++
			}
		}
	}

	nnz := aStart[numCol]
	m.arStart = make([]int, numRow+1)
	m.arNEnd = make([]int, numRow)
	m.arIndex = make([]int, nnz)
	m.arValue = make([]float64, nnz)
	for i := 0; i < numRow; i++ {
		m.arStart[i+1] = m.arStart[i] + countN[i] + countB[i]
		m.arNEnd[i] = m.arStart[i] + countN[i]
	}

	// Fill: nonbasic columns into the leading partition, basic after.
	fillN := make([]int, numRow)
	fillB := make([]int, numRow)
	copy(fillN, m.arStart)
	copy(fillB, m.arNEnd)
	for j := 0; j < numCol; j++ {
		fill := fillN
		if nonbasicFlag[j] == 0 {
			fill = fillB
		}
		for k := aStart[j]; k < aStart[j+1]; k++ {
			i := aIndex[k]
			m.arIndex[fill[i]] = j
			m.arValue[fill[i]] = aValue[k]
			fill[i]++
		}
	}

	return nil
}

// SetupLogical is the fast path for an all-logical basis: every
// structural column is nonbasic, so the CSR rows need no partition
// bookkeeping beyond arNEnd = row end.
func (m *Matrix) SetupLogical(numCol, numRow int, aStart, aIndex []int, aValue []float64) error {
	if err := validate(numCol, numRow, aStart, aIndex, aValue); err != nil {
		return err
	}

	m.copyColWise(numCol, numRow, aStart, aIndex, aValue)

	count := make([]int, numRow)
	for _, i := range aIndex {
		count[i]++
	}
	nnz := aStart[numCol]
	m.arStart = make([]int, numRow+1)
	m.arNEnd = make([]int, numRow)
	m.arIndex = make([]int, nnz)
	m.arValue = make([]float64, nnz)
	for i := 0; i < numRow; i++ {
		m.arStart[i+1] = m.arStart[i] + count[i]
		m.arNEnd[i] = m.arStart[i+1]
	}
	fill := make([]int, numRow)
	copy(fill, m.arStart)
	for j := 0; j < numCol; j++ {
		for k := aStart[j]; k < aStart[j+1]; k++ {
			i := aIndex[k]
			m.arIndex[fill[i]] = j
			m.arValue[fill[i]] = aValue[k]
			fill[i]++
		}
	}

	return nil
}

func (m *Matrix) copyColWise(numCol, numRow int, aStart, aIndex []int, aValue []float64) {
	m.numCol, m.numRow = numCol, numRow
	m.aStart = append([]int(nil), aStart...)
	m.aIndex = append([]int(nil), aIndex...)
	m.aValue = append([]float64(nil), aValue...)
}

// CollectColumn accumulates α·A_j into buf. Index j may address a
// logical column (j ≥ numCol), which is the implicit unit vector of its
// row. buf must have dimension numRow.
func (m *Matrix) CollectColumn(buf *Vector, j int, alpha float64) error {
	switch {
	case j < 0 || j >= m.numCol+m.numRow:
		return errors.Wrapf(ErrIndexOutOfRange, "column %d of %d", j, m.numCol+m.numRow)
	case j < m.numCol:
		for k := m.aStart[j]; k < m.aStart[j+1]; k++ {
			buf.Add(m.aIndex[k], alpha*m.aValue[k])
		}
	default:
		buf.Add(j-m.numCol, alpha)
	}

	return nil
}

// PriceByColumn computes out = πᵀA over the structural columns: for
// each column j, out[j] = Σ_i π[i]·A_ij. out must have dimension numCol
// and arrive cleared; π is read densely.
func (m *Matrix) PriceByColumn(out *Vector, pi *Vector) {
	for j := 0; j < m.numCol; j++ {
		value := 0.0
		for k := m.aStart[j]; k < m.aStart[j+1]; k++ {
			value += pi.Array[m.aIndex[k]] * m.aValue[k]
		}
		if math.Abs(value) > numeric.Tiny {
			out.Array[j] = value
			out.Index[out.Count] = j
			out.Count++
		}
	}
}

// Update maintains the CSR partition across a pivot: columnIn leaves
// the nonbasic partition of every row it touches, columnOut rejoins it.
// Logical columns (index ≥ numCol) are not stored and need no work.
func (m *Matrix) Update(columnIn, columnOut int) {
	if columnIn < m.numCol {
		for k := m.aStart[columnIn]; k < m.aStart[columnIn+1]; k++ {
			i := m.aIndex[k]
			m.arNEnd[i]--
			find := m.arStart[i]
			swap := m.arNEnd[i]
			for m.arIndex[find] != columnIn {
				find++
			}
			m.arIndex[find], m.arIndex[swap] = m.arIndex[swap], m.arIndex[find]
			m.arValue[find], m.arValue[swap] = m.arValue[swap], m.arValue[find]
		}
	}
	if columnOut < m.numCol {
		for k := m.aStart[columnOut]; k < m.aStart[columnOut+1]; k++ {
			i := m.aIndex[k]
			find := m.arNEnd[i]
			swap := m.arNEnd[i]
			m.arNEnd[i]++
			for m.arIndex[find] != columnOut {
				find++
			}
			m.arIndex[find], m.arIndex[swap] = m.arIndex[swap], m.arIndex[find]
			m.arValue[find], m.arValue[swap] = m.arValue[swap], m.arValue[find]
		}
	}
}

// RowNonbasic returns, for tests and row-wise pricing, the column
// indices currently in the nonbasic partition of row i.
func (m *Matrix) RowNonbasic(i int) []int {
	return m.arIndex[m.arStart[i]:m.arNEnd[i]]
}
