package simplex

import "github.com/pkg/errors"

// initialiseBasicIndex rebuilds BasicIndex from NonbasicFlag, keeping
// row order, and checks the basis cardinality: exactly numRow basic
// flags.
func (m *Model) initialiseBasicIndex() error {
	numRow := m.SimplexLp.NumRow
	numBasic := 0
	for v := 0; v < m.numTot(); v++ {
		if m.Basis.NonbasicFlag[v] == FlagBasic {
			numBasic++
		}
	}
	if numBasic != numRow {
		return errors.Wrapf(ErrBasisCardinality, "%d basic flags, want %d", numBasic, numRow)
	}
	row := 0
	for v := 0; v < m.numTot(); v++ {
		if m.Basis.NonbasicFlag[v] == FlagBasic {
			m.Basis.BasicIndex[row] = v
			row++
		}
	}

	return nil
}

// allocateWorkAndBaseArrays sizes the work arrays (n+m) and base arrays
// (m) for the current working LP.
func (m *Model) allocateWorkAndBaseArrays() {
	numTot := m.numTot()
	numRow := m.SimplexLp.NumRow

	grow := func(buf []float64, n int) []float64 {
		if cap(buf) < n {
			return make([]float64, n)
		}

		return buf[:n]
	}

	m.Info.WorkCost = grow(m.Info.WorkCost, numTot)
	m.Info.WorkDual = grow(m.Info.WorkDual, numTot)
	m.Info.WorkShift = grow(m.Info.WorkShift, numTot)
	m.Info.WorkLower = grow(m.Info.WorkLower, numTot)
	m.Info.WorkUpper = grow(m.Info.WorkUpper, numTot)
	m.Info.WorkRange = grow(m.Info.WorkRange, numTot)
	m.Info.WorkValue = grow(m.Info.WorkValue, numTot)
	m.Info.BaseLower = grow(m.Info.BaseLower, numRow)
	m.Info.BaseUpper = grow(m.Info.BaseUpper, numRow)
	m.Info.BaseValue = grow(m.Info.BaseValue, numRow)
}

// InitialiseWithLogicalBasis installs the all-logical basis on a fresh
// model, allocates the work and base arrays and populates them.
func (m *Model) InitialiseWithLogicalBasis() error {
	sl := m.SimplexLp
	m.Basis.resize(sl.NumCol, sl.NumRow)
	for row := 0; row < sl.NumRow; row++ {
		m.Basis.BasicIndex[row] = sl.NumCol + row
		m.Basis.NonbasicFlag[sl.NumCol+row] = FlagBasic
	}
	for col := 0; col < sl.NumCol; col++ {
		m.Basis.NonbasicFlag[col] = FlagNonbasic
	}
	m.Info.NumBasicLogicals = sl.NumRow
	m.Basis.Valid = true

	m.allocateWorkAndBaseArrays()
	m.PopulateWorkArrays()

	m.UpdateStatus(ActionNewBasis)

	return nil
}

// ReplaceWithLogicalBasis is InitialiseWithLogicalBasis for a model
// whose arrays may already exist; it reuses them when sized.
func (m *Model) ReplaceWithLogicalBasis() error {
	return m.InitialiseWithLogicalBasis()
}

// ReplaceWithNewBasis installs an externally supplied basicIndex,
// flags every listed variable basic and the rest nonbasic, recounts
// the basic logicals, and repopulates the work arrays.
func (m *Model) ReplaceWithNewBasis(basicIndex []int) error {
	sl := m.SimplexLp
	if len(basicIndex) != sl.NumRow {
		return errors.Wrapf(ErrBasisCardinality, "%d entries, want %d", len(basicIndex), sl.NumRow)
	}
	numTot := m.numTot()
	for row, v := range basicIndex {
		if v < 0 || v >= numTot {
			return errors.Wrapf(ErrStructuralInvariant, "basicIndex[%d]=%d of %d", row, v, numTot)
		}
	}
	m.Basis.resize(sl.NumCol, sl.NumRow)
	for v := 0; v < numTot; v++ {
		m.Basis.NonbasicFlag[v] = FlagNonbasic
	}
	m.Info.NumBasicLogicals = 0
	for row, v := range basicIndex {
		if v >= sl.NumCol {
			m.Info.NumBasicLogicals++
		}
		m.Basis.BasicIndex[row] = v
		m.Basis.NonbasicFlag[v] = FlagBasic
	}
	m.Basis.Valid = true

	m.allocateWorkAndBaseArrays()
	m.PopulateWorkArrays()

	m.UpdateStatus(ActionNewBasis)

	return nil
}

// InitialiseFromNonbasic derives BasicIndex from the nonbasic flags,
// allocates the arrays and populates them.
func (m *Model) InitialiseFromNonbasic() error {
	m.Basis.resize(m.SimplexLp.NumCol, m.SimplexLp.NumRow)
	if err := m.initialiseBasicIndex(); err != nil {
		return err
	}
	m.allocateWorkAndBaseArrays()
	m.PopulateWorkArrays()
	m.SetupNumBasicLogicals()
	m.Basis.Valid = true

	m.UpdateStatus(ActionNewBasis)

	return nil
}

// ReplaceFromNonbasic is InitialiseFromNonbasic over existing arrays.
func (m *Model) ReplaceFromNonbasic() error {
	if err := m.initialiseBasicIndex(); err != nil {
		return err
	}
	m.PopulateWorkArrays()
	m.SetupNumBasicLogicals()
	m.Basis.Valid = true

	m.UpdateStatus(ActionNewBasis)

	return nil
}
