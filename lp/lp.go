package lp

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/dsimplex/numeric"
)

// Objective senses.
const (
	// Minimize is the canonical sense; costs are used as given.
	Minimize = 1
	// Maximize negates the costs inside the working arrays.
	Maximize = -1
)

// Lp is one linear program: min Sense·cᵀx subject to
// RowLower ≤ Ax ≤ RowUpper, ColLower ≤ x ≤ ColUpper.
// The constraint matrix is column-major: column j owns entries
// AIndex/AValue[AStart[j]:AStart[j+1]]. Infinite bounds hold the
// numeric.Inf sentinel.
type Lp struct {
	NumCol int
	NumRow int
	Sense  int
	Offset float64

	AStart []int
	AIndex []int
	AValue []float64

	ColCost  []float64
	ColLower []float64
	ColUpper []float64
	RowLower []float64
	RowUpper []float64

	ModelName string
}

// Validate checks the structural invariants of the entity. It reports
// the first violation with positional context wrapped over a sentinel.
func (l *Lp) Validate() error {
	if l.NumCol < 0 || l.NumRow < 0 {
		return errors.Wrapf(ErrBadDimensions, "numCol=%d numRow=%d", l.NumCol, l.NumRow)
	}
	if l.Sense != Minimize && l.Sense != Maximize {
		return errors.Wrapf(ErrBadSense, "sense=%d", l.Sense)
	}
	if len(l.AStart) != l.NumCol+1 || l.AStart[0] != 0 {
		return errors.Wrapf(ErrBadMatrix, "len(AStart)=%d want %d", len(l.AStart), l.NumCol+1)
	}
	for j := 0; j < l.NumCol; j++ {
		if l.AStart[j+1] < l.AStart[j] {
			return errors.Wrapf(ErrBadMatrix, "AStart decreases at column %d", j)
		}
	}
	if l.AStart[l.NumCol] != len(l.AIndex) || len(l.AIndex) != len(l.AValue) {
		return errors.Wrapf(ErrBadMatrix, "AStart[%d]=%d, %d indices, %d values",
			l.NumCol, l.AStart[l.NumCol], len(l.AIndex), len(l.AValue))
	}
	for k, r := range l.AIndex {
		if r < 0 || r >= l.NumRow {
			return errors.Wrapf(ErrBadMatrix, "entry %d references row %d of %d", k, r, l.NumRow)
		}
	}
	if len(l.ColCost) != l.NumCol || len(l.ColLower) != l.NumCol || len(l.ColUpper) != l.NumCol {
		return errors.Wrap(ErrBadVectorLength, "column vectors")
	}
	if len(l.RowLower) != l.NumRow || len(l.RowUpper) != l.NumRow {
		return errors.Wrap(ErrBadVectorLength, "row vectors")
	}
	for j := 0; j < l.NumCol; j++ {
		if l.ColLower[j] > l.ColUpper[j] {
			return errors.Wrapf(ErrBoundOrder, "column %d: [%g, %g]", j, l.ColLower[j], l.ColUpper[j])
		}
	}
	for i := 0; i < l.NumRow; i++ {
		if l.RowLower[i] > l.RowUpper[i] {
			return errors.Wrapf(ErrBoundOrder, "row %d: [%g, %g]", i, l.RowLower[i], l.RowUpper[i])
		}
	}

	return nil
}

// Clone returns a deep copy. The copy shares nothing with the receiver,
// so transforms can mutate it while the input stays pristine.
func (l *Lp) Clone() *Lp {
	c := *l
	c.AStart = append([]int(nil), l.AStart...)
	c.AIndex = append([]int(nil), l.AIndex...)
	c.AValue = append([]float64(nil), l.AValue...)
	c.ColCost = append([]float64(nil), l.ColCost...)
	c.ColLower = append([]float64(nil), l.ColLower...)
	c.ColUpper = append([]float64(nil), l.ColUpper...)
	c.RowLower = append([]float64(nil), l.RowLower...)
	c.RowUpper = append([]float64(nil), l.RowUpper...)

	return &c
}

// EqualTo reports bit-identity of the two programs: every dimension,
// scalar, and slice entry equal. Used by the cancelled-transform
// guarantees; no tolerance is involved.
func (l *Lp) EqualTo(o *Lp) bool {
	if l.NumCol != o.NumCol || l.NumRow != o.NumRow ||
		l.Sense != o.Sense || l.Offset != o.Offset {
		return false
	}

	return equalInts(l.AStart, o.AStart) &&
		equalInts(l.AIndex, o.AIndex) &&
		equalFloats(l.AValue, o.AValue) &&
		equalFloats(l.ColCost, o.ColCost) &&
		equalFloats(l.ColLower, o.ColLower) &&
		equalFloats(l.ColUpper, o.ColUpper) &&
		equalFloats(l.RowLower, o.RowLower) &&
		equalFloats(l.RowUpper, o.RowUpper)
}

// IsFreeCol reports whether column j has no finite bound.
func (l *Lp) IsFreeCol(j int) bool {
	return numeric.IsInf(-l.ColLower[j]) && numeric.IsInf(l.ColUpper[j])
}

// IsFreeRow reports whether row i has no finite bound.
func (l *Lp) IsFreeRow(i int) bool {
	return numeric.IsInf(-l.RowLower[i]) && numeric.IsInf(l.RowUpper[i])
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
