package simplex

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dsimplex/numeric"
	"github.com/katalvlaran/dsimplex/sparse"
)

// ComputeDualObjectiveValue recomputes the dual objective from scratch:
// Σ workValue·workDual over the nonbasic variables. Outside phase 1 the
// sum is mapped back to the caller's units: multiplied by the cost
// scale and reduced by the LP offset.
func (m *Model) ComputeDualObjectiveValue(phase int) {
	m.Info.DualObjectiveValue = 0
	for v := 0; v < m.numTot(); v++ {
		if m.Basis.NonbasicFlag[v] != FlagNonbasic {
			continue
		}
		m.Info.DualObjectiveValue += m.Info.WorkValue[v] * m.Info.WorkDual[v]
	}
	if phase != Phase1 {
		m.Info.DualObjectiveValue *= m.Scale.Cost
		m.Info.DualObjectiveValue -= m.SimplexLp.Offset
	}
	m.Status.HasDualObjectiveValue = true
}

// ComputePrimal recomputes the basic primal values: gather the nonbasic
// activity b = Σ workValue·A_j, FTRAN it, and store the negated result
// per row together with the bounds of the basic variable there.
func (m *Model) ComputePrimal() error {
	sl := m.SimplexLp
	buffer := sparse.NewVector(sl.NumRow)
	for v := 0; v < m.numTot(); v++ {
		if m.Basis.NonbasicFlag[v] == FlagNonbasic && m.Info.WorkValue[v] != 0 {
			if err := m.Matrix.CollectColumn(buffer, v, m.Info.WorkValue[v]); err != nil {
				return errors.Wrap(err, "simplex: compute primal")
			}
		}
	}
	if err := m.Factor.FTran(buffer); err != nil {
		return errors.Wrap(err, "simplex: compute primal")
	}

	for row := 0; row < sl.NumRow; row++ {
		v := m.Basis.BasicIndex[row]
		m.Info.BaseValue[row] = -buffer.Array[row]
		m.Info.BaseLower[row] = m.Info.WorkLower[v]
		m.Info.BaseUpper[row] = m.Info.WorkUpper[v]
	}
	m.Status.HasBasicPrimalValues = true

	return nil
}

// ComputeDual recomputes the nonbasic reduced costs: BTRAN the basic
// costs-plus-shifts into π, price the structural columns, and read the
// logicals straight off π.
func (m *Model) ComputeDual() error {
	sl := m.SimplexLp
	buffer := sparse.NewVector(sl.NumRow)
	for row := 0; row < sl.NumRow; row++ {
		v := m.Basis.BasicIndex[row]
		buffer.Index[row] = row
		buffer.Array[row] = m.Info.WorkCost[v] + m.Info.WorkShift[v]
	}
	buffer.Count = sl.NumRow
	if err := m.Factor.BTran(buffer); err != nil {
		return errors.Wrap(err, "simplex: compute dual")
	}

	bufferLong := sparse.NewVector(sl.NumCol)
	m.Matrix.PriceByColumn(bufferLong, buffer)
	for col := 0; col < sl.NumCol; col++ {
		m.Info.WorkDual[col] = m.Info.WorkCost[col] - bufferLong.Array[col]
	}
	for row := 0; row < sl.NumRow; row++ {
		v := sl.NumCol + row
		m.Info.WorkDual[v] = m.Info.WorkCost[v] - buffer.Array[row]
	}
	m.Status.HasNonbasicDualValues = true

	return nil
}

// CorrectDual repairs dual infeasibilities among the nonbasic
// variables. Boxed variables are flipped to their other bound (their
// dual stays as is); one-sided variables get their cost shifted so the
// dual lands just inside the feasible side, ±(1+u)·τ_d with a fresh
// random fraction u; free variables cannot be repaired and are only
// counted. The returned count is the number of free infeasibilities
// left for the pricing loop to resolve.
func (m *Model) CorrectDual() int {
	tauD := m.Opts.DualFeasibilityTolerance
	const inf = numeric.Inf
	count := 0
	for v := 0; v < m.numTot(); v++ {
		if m.Basis.NonbasicFlag[v] != FlagNonbasic {
			continue
		}
		if m.Info.WorkLower[v] == -inf && m.Info.WorkUpper[v] == inf {
			if math.Abs(m.Info.WorkDual[v]) >= tauD {
				count++
			}

			continue
		}
		if float64(m.Basis.NonbasicMove[v])*m.Info.WorkDual[v] > -tauD {
			continue
		}
		if m.Info.WorkLower[v] != -inf && m.Info.WorkUpper[v] != inf {
			m.FlipBound(v)

			continue
		}
		// One-sided: shift the cost so the dual lands inside.
		m.Info.CostsPerturbed = true
		dual := (1 + m.Random.Fraction()) * tauD
		if m.Basis.NonbasicMove[v] != MoveUp {
			dual = -dual
		}
		shift := dual - m.Info.WorkDual[v]
		m.Info.WorkDual[v] = dual
		m.Info.WorkCost[v] += shift
	}

	return count
}

// ComputeDualInfeasibleInDual counts dual infeasibilities the dual
// simplex cares about: boxed variables are flippable, so only free
// variables and infeasible one-sided variables contribute.
func (m *Model) ComputeDualInfeasibleInDual() int {
	tauD := m.Opts.DualFeasibilityTolerance
	const inf = numeric.Inf
	count := 0
	for v := 0; v < m.numTot(); v++ {
		if m.Basis.NonbasicFlag[v] != FlagNonbasic {
			continue
		}
		if m.Info.WorkLower[v] == -inf && m.Info.WorkUpper[v] == inf {
			if math.Abs(m.Info.WorkDual[v]) >= tauD {
				count++
			}
		}
		if m.Info.WorkLower[v] == -inf || m.Info.WorkUpper[v] == inf {
			if float64(m.Basis.NonbasicMove[v])*m.Info.WorkDual[v] <= -tauD {
				count++
			}
		}
	}

	return count
}

// ComputeDualInfeasibleInPrimal counts dual infeasibilities without
// assuming flips: every nonbasic variable whose move points against
// its dual contributes, boxed or not.
func (m *Model) ComputeDualInfeasibleInPrimal() int {
	tauD := m.Opts.DualFeasibilityTolerance
	const inf = numeric.Inf
	count := 0
	for v := 0; v < m.numTot(); v++ {
		if m.Basis.NonbasicFlag[v] != FlagNonbasic {
			continue
		}
		if m.Info.WorkLower[v] == -inf && m.Info.WorkUpper[v] == inf {
			if math.Abs(m.Info.WorkDual[v]) >= tauD {
				count++
			}
		}
		if float64(m.Basis.NonbasicMove[v])*m.Info.WorkDual[v] <= -tauD {
			count++
		}
	}

	return count
}

// ComputePrimalObjectiveFunctionValue evaluates cᵀx over the structural
// variables — basic ones from BaseValue, nonbasic ones from WorkValue —
// scaled back to the caller's cost units.
func (m *Model) ComputePrimalObjectiveFunctionValue() float64 {
	sl := m.SimplexLp
	value := 0.0
	for row := 0; row < sl.NumRow; row++ {
		v := m.Basis.BasicIndex[row]
		if v < sl.NumCol {
			value += m.Info.BaseValue[row] * sl.ColCost[v]
		}
	}
	for col := 0; col < sl.NumCol; col++ {
		if m.Basis.NonbasicFlag[col] == FlagNonbasic {
			value += m.Info.WorkValue[col] * sl.ColCost[col]
		}
	}

	return value * m.Scale.Cost
}
