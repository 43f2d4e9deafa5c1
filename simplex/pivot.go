package simplex

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/dsimplex/numeric"
	"github.com/katalvlaran/dsimplex/sparse"
)

// InvertHint advises the pricing loop about the factor state after an
// update.
type InvertHint int

const (
	// InvertHintNone — nothing to do.
	InvertHintNone InvertHint = iota
	// InvertHintUpdateLimitReached — the update budget is spent; call
	// ComputeFactor before the next pivot.
	InvertHintUpdateLimitReached
)

// SourceOut values: which bound the leaving variable lands on.
const (
	// SourceOutToLower sends the leaver to its lower bound.
	SourceOutToLower = -1
	// SourceOutToUpper sends the leaver to its upper bound.
	SourceOutToUpper = 1
	// SourceOutFixed means the leaver is fixed; both bounds agree.
	SourceOutFixed = 0
)

// SetSourceOutFromBound picks the bound a leaving variable should land
// on: fixed variables need no choice, a finite lower bound wins
// otherwise, and only an upper-only variable leaves upward. A free
// variable leaving the basis has no bound to land on; the upper choice
// is returned and the caller should treat it as trouble.
func (m *Model) SetSourceOutFromBound(columnOut int) int {
	if m.Info.WorkLower[columnOut] == m.Info.WorkUpper[columnOut] {
		return SourceOutFixed
	}
	if !numeric.IsInf(-m.Info.WorkLower[columnOut]) {
		return SourceOutToLower
	}

	return SourceOutToUpper
}

// UpdatePivots performs the basis bookkeeping of one pivot: columnIn
// becomes basic in rowOut, the previous occupant leaves to the bound
// selected by sourceOut, and the incremental dual objective absorbs the
// leaver's contribution.
//
// The accumulated term is newValue(columnOut)·workDual(columnOut) — the
// new value with the dual current on entry. Callers must not re-set
// WorkValue[columnOut] before calling.
func (m *Model) UpdatePivots(columnIn, rowOut, sourceOut int) int {
	defer m.Clocks.start(ClockUpdatePivots)()

	columnOut := m.Basis.BasicIndex[rowOut]

	// Incoming variable.
	m.Basis.BasicIndex[rowOut] = columnIn
	m.Basis.NonbasicFlag[columnIn] = FlagBasic
	m.Basis.NonbasicMove[columnIn] = MoveZero
	m.Info.BaseLower[rowOut] = m.Info.WorkLower[columnIn]
	m.Info.BaseUpper[rowOut] = m.Info.WorkUpper[columnIn]

	// Outgoing variable: place it on a bound per sourceOut.
	m.Basis.NonbasicFlag[columnOut] = FlagNonbasic
	switch {
	case m.Info.WorkLower[columnOut] == m.Info.WorkUpper[columnOut]:
		m.Info.WorkValue[columnOut] = m.Info.WorkLower[columnOut]
		m.Basis.NonbasicMove[columnOut] = MoveZero
	case sourceOut == SourceOutToLower:
		m.Info.WorkValue[columnOut] = m.Info.WorkLower[columnOut]
		m.Basis.NonbasicMove[columnOut] = MoveUp
	default:
		m.Info.WorkValue[columnOut] = m.Info.WorkUpper[columnOut]
		m.Basis.NonbasicMove[columnOut] = MoveDown
	}

	m.Info.UpdatedDualObjectiveValue += m.Info.WorkValue[columnOut] * m.Info.WorkDual[columnOut]
	m.Info.UpdateCount++

	numCol := m.SimplexLp.NumCol
	if columnOut >= numCol {
		m.Info.NumBasicLogicals--
	}
	if columnIn >= numCol {
		m.Info.NumBasicLogicals++
	}

	// B⁻¹ no longer matches the basis, and the rebuild data is stale.
	m.Status.HasInvert = false
	m.Status.HasFreshInvert = false
	m.Status.HasFreshRebuild = false

	return columnOut
}

// UpdateFactor folds the pivot into the factor. column is the entering
// column in FTRAN form, rowEp the BTRAN-form pivot row. The returned
// hint asks for a refactorization once the update budget is spent.
func (m *Model) UpdateFactor(column, rowEp *sparse.Vector, rowOut int) (InvertHint, error) {
	defer m.Clocks.start(ClockUpdateFactor)()

	if err := m.Factor.Update(column, rowEp, rowOut); err != nil {
		return InvertHintNone, errors.Wrap(err, "simplex: factor update")
	}
	// B⁻¹ is represented again, though not freshly.
	m.Status.HasInvert = true

	if m.Info.UpdateCount >= m.Opts.UpdateLimit {
		return InvertHintUpdateLimitReached, nil
	}

	return InvertHintNone, nil
}

// UpdateMatrix tells the matrix view about the basis swap so its
// row-wise partitions stay aligned with the nonbasic set.
func (m *Model) UpdateMatrix(columnIn, columnOut int) {
	defer m.Clocks.start(ClockUpdateMatrix)()
	m.Matrix.Update(columnIn, columnOut)
}

// ComputeFactor refactorizes the basis. The returned count is the rank
// deficiency reported by the factor build: zero on success, k > 0 when
// k pivots were unusable. The core reports it and leaves recovery to
// the caller.
func (m *Model) ComputeFactor() int {
	defer m.Clocks.start(ClockInvert)()

	rankDeficiency := m.Factor.Build()
	m.Info.UpdateCount = 0
	m.Status.HasInvert = true
	m.Status.HasFreshInvert = true

	return rankDeficiency
}

// FlipBound moves a nonbasic boxed variable to its other bound: the
// move toggles and the value follows it.
func (m *Model) FlipBound(v int) {
	m.Basis.NonbasicMove[v] = -m.Basis.NonbasicMove[v]
	if m.Basis.NonbasicMove[v] == MoveUp {
		m.Info.WorkValue[v] = m.Info.WorkLower[v]
	} else {
		m.Info.WorkValue[v] = m.Info.WorkUpper[v]
	}
}

// ShiftCost records a cost shift for a column. A previous shift must
// have been taken back first.
func (m *Model) ShiftCost(v int, amount float64) error {
	if m.Info.WorkShift[v] != 0 {
		return errors.Wrapf(ErrShiftPending, "column %d holds %g", v, m.Info.WorkShift[v])
	}
	m.Info.CostsPerturbed = true
	m.Info.WorkShift[v] = amount

	return nil
}

// ShiftBack removes a recorded cost shift from the column's dual.
func (m *Model) ShiftBack(v int) {
	m.Info.WorkDual[v] -= m.Info.WorkShift[v]
	m.Info.WorkShift[v] = 0
}
