package simplex

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/dsimplex/numeric"
)

// NonbasicFlagBasicIndexOK checks the basis partition: exactly numRow
// basic flags, and every BasicIndex entry flagged basic.
func (m *Model) NonbasicFlagBasicIndexOK() error {
	numRow := m.SimplexLp.NumRow
	numBasic := 0
	for _, flag := range m.Basis.NonbasicFlag {
		if flag == FlagBasic {
			numBasic++
		}
	}
	if numBasic != numRow {
		return errors.Wrapf(ErrBasisCardinality, "%d basic flags, want %d", numBasic, numRow)
	}
	for row, v := range m.Basis.BasicIndex {
		if m.Basis.NonbasicFlag[v] != FlagBasic {
			return errors.Wrapf(ErrStructuralInvariant,
				"basicIndex[%d]=%d is flagged nonbasic", row, v)
		}
	}

	return nil
}

// WorkArraysOK checks the work arrays against the working LP. Only
// phase-2 bounds are compared with the LP (phase-1 bounds are
// artificial by design); ranges are checked in every phase, and costs
// only while unperturbed.
func (m *Model) WorkArraysOK(phase int) error {
	sl := m.SimplexLp
	if phase == Phase2 {
		for col := 0; col < sl.NumCol; col++ {
			if !numeric.IsInf(-m.Info.WorkLower[col]) && m.Info.WorkLower[col] != sl.ColLower[col] {
				return errors.Wrapf(ErrStructuralInvariant,
					"col %d workLower %g, want %g", col, m.Info.WorkLower[col], sl.ColLower[col])
			}
			if !numeric.IsInf(m.Info.WorkUpper[col]) && m.Info.WorkUpper[col] != sl.ColUpper[col] {
				return errors.Wrapf(ErrStructuralInvariant,
					"col %d workUpper %g, want %g", col, m.Info.WorkUpper[col], sl.ColUpper[col])
			}
		}
		for row := 0; row < sl.NumRow; row++ {
			v := sl.NumCol + row
			if !numeric.IsInf(-m.Info.WorkLower[v]) && m.Info.WorkLower[v] != -sl.RowUpper[row] {
				return errors.Wrapf(ErrStructuralInvariant,
					"row %d workLower %g, want %g", row, m.Info.WorkLower[v], -sl.RowUpper[row])
			}
			if !numeric.IsInf(m.Info.WorkUpper[v]) && m.Info.WorkUpper[v] != -sl.RowLower[row] {
				return errors.Wrapf(ErrStructuralInvariant,
					"row %d workUpper %g, want %g", row, m.Info.WorkUpper[v], -sl.RowLower[row])
			}
		}
	}
	for v := 0; v < m.numTot(); v++ {
		if m.Info.WorkRange[v] != m.Info.WorkUpper[v]-m.Info.WorkLower[v] {
			return errors.Wrapf(ErrStructuralInvariant,
				"variable %d workRange %g, want %g", v, m.Info.WorkRange[v],
				m.Info.WorkUpper[v]-m.Info.WorkLower[v])
		}
	}
	if !m.Info.CostsPerturbed {
		for col := 0; col < sl.NumCol; col++ {
			if m.Info.WorkCost[col] != float64(sl.Sense)*sl.ColCost[col] {
				return errors.Wrapf(ErrStructuralInvariant,
					"col %d workCost %g, want %g", col, m.Info.WorkCost[col],
					float64(sl.Sense)*sl.ColCost[col])
			}
		}
		for row := 0; row < sl.NumRow; row++ {
			v := sl.NumCol + row
			if m.Info.WorkCost[v] != 0 {
				return errors.Wrapf(ErrStructuralInvariant,
					"row %d workCost %g, want 0", row, m.Info.WorkCost[v])
			}
		}
	}

	return nil
}

// OneNonbasicMoveVsWorkArraysOK checks the move/value contract for one
// variable. Basic variables pass trivially.
func (m *Model) OneNonbasicMoveVsWorkArraysOK(v int) error {
	if m.Basis.NonbasicFlag[v] != FlagNonbasic {
		return nil
	}
	lower, upper := m.Info.WorkLower[v], m.Info.WorkUpper[v]
	move, value := m.Basis.NonbasicMove[v], m.Info.WorkValue[v]

	expect := func(wantMove int, wantValue float64, shape string) error {
		if move != wantMove {
			return errors.Wrapf(ErrStructuralInvariant,
				"%s variable %d: move %d, want %d", shape, v, move, wantMove)
		}
		if value != wantValue {
			return errors.Wrapf(ErrStructuralInvariant,
				"%s variable %d: value %g, want %g", shape, v, value, wantValue)
		}

		return nil
	}

	switch {
	case !numeric.IsInf(-lower) && !numeric.IsInf(upper):
		if lower == upper {
			return expect(MoveZero, lower, "fixed")
		}
		switch move {
		case MoveUp:
			return expect(MoveUp, lower, "boxed")
		case MoveDown:
			return expect(MoveDown, upper, "boxed")
		default:
			return errors.Wrapf(ErrStructuralInvariant,
				"boxed variable %d: move %d, want up or down", v, move)
		}
	case !numeric.IsInf(-lower):
		return expect(MoveUp, lower, "lower-bounded")
	case !numeric.IsInf(upper):
		return expect(MoveDown, upper, "upper-bounded")
	default:
		return expect(MoveZero, 0, "free")
	}
}

// AllNonbasicMoveVsWorkArraysOK checks the contract for every nonbasic
// variable.
func (m *Model) AllNonbasicMoveVsWorkArraysOK() error {
	for v := 0; v < m.numTot(); v++ {
		if err := m.OneNonbasicMoveVsWorkArraysOK(v); err != nil {
			return err
		}
	}

	return nil
}

// OKToSolve runs the pre-solve self-checks. Level 0 trusts the flags:
// a valid basis, both matrix copies and an invertible representation
// must be present. Level 1 adds the structural checks: basis
// partition, work arrays, and the move/value contract for every
// nonbasic variable.
func (m *Model) OKToSolve(level, phase int) error {
	if !m.Basis.Valid {
		return ErrNoBasis
	}
	if !m.Status.HasMatrixColWise || !m.Status.HasMatrixRowWise {
		return errors.Wrap(ErrStructuralInvariant, "matrix copies not set up")
	}
	if !m.Status.HasInvert {
		return errors.Wrap(ErrStructuralInvariant, "no basis inverse representation")
	}
	if level <= 0 {
		return nil
	}

	if err := m.NonbasicFlagBasicIndexOK(); err != nil {
		return err
	}
	if err := m.WorkArraysOK(phase); err != nil {
		return err
	}

	return m.AllNonbasicMoveVsWorkArraysOK()
}
