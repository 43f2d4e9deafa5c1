package simplex

import (
	"math"

	"github.com/katalvlaran/dsimplex/numeric"
)

// Phase selectors for InitialiseBound.
const (
	// Phase1 installs the artificial dual-phase-1 bounds.
	Phase1 = 1
	// Phase2 installs the LP bounds.
	Phase2 = 2
)

// Perturbation tuning, from the original engine: base magnitude
// 5e-7·bigc, damping of large cost ranges, and the tiny symmetric noise
// applied to logicals.
const (
	perturbBase      = 5e-7
	perturbBigcDamp  = 100.0
	perturbBoxedRate = 0.01
	logicalNoise     = 1e-12
)

// PopulateWorkArrays fills cost, bound and value arrays for the current
// basis: phase-2 bounds, unperturbed costs, values per the nonbasic
// move/value contract.
func (m *Model) PopulateWorkArrays() {
	m.InitialiseCost(false)
	m.InitialiseBound(Phase2)
	m.InitialiseValue()
}

// InitialiseCost copies the sense-signed LP costs into WorkCost (zero
// for logicals), zeroes WorkShift, and — when perturb and the option
// both allow — applies the deterministic cost perturbation.
func (m *Model) InitialiseCost(perturb bool) {
	sl := m.SimplexLp
	numCol, numTot := sl.NumCol, m.numTot()

	for col := 0; col < numCol; col++ {
		m.Info.WorkCost[col] = float64(sl.Sense) * sl.ColCost[col]
		m.Info.WorkShift[col] = 0
	}
	for v := numCol; v < numTot; v++ {
		m.Info.WorkCost[v] = 0
		m.Info.WorkShift[v] = 0
	}

	m.Info.CostsPerturbed = false
	if !perturb || !m.Opts.PerturbCosts {
		return
	}
	m.Info.CostsPerturbed = true

	// Perturbation magnitude: the largest cost, damped when very large.
	bigc := 0.0
	for col := 0; col < numCol; col++ {
		bigc = math.Max(bigc, math.Abs(m.Info.WorkCost[col]))
	}
	if bigc > perturbBigcDamp {
		bigc = math.Sqrt(math.Sqrt(bigc))
	}

	// With almost no boxed variables, keep the perturbation simple.
	boxedRate := 0.0
	for v := 0; v < numTot; v++ {
		if m.Info.WorkRange[v] < numeric.Inf {
			boxedRate++
		}
	}
	boxedRate /= float64(numTot)
	if boxedRate < perturbBoxedRate {
		bigc = math.Min(bigc, 1.0)
	}

	base := perturbBase * bigc
	for col := 0; col < numCol; col++ {
		lower, upper := sl.ColLower[col], sl.ColUpper[col]
		xpert := (math.Abs(m.Info.WorkCost[col]) + 1) * base * (1 + m.Info.TotRandomValue[col])
		switch {
		case lower == -numeric.Inf && upper == numeric.Inf:
			// Free: no perturbation.
		case upper == numeric.Inf:
			m.Info.WorkCost[col] += xpert
		case lower == -numeric.Inf:
			m.Info.WorkCost[col] += -xpert
		case lower != upper:
			if m.Info.WorkCost[col] >= 0 {
				m.Info.WorkCost[col] += xpert
			} else {
				m.Info.WorkCost[col] -= xpert
			}
		default:
			// Fixed: no perturbation.
		}
	}
	for v := numCol; v < numTot; v++ {
		m.Info.WorkCost[v] += (0.5 - m.Info.TotRandomValue[v]) * logicalNoise
	}
}

// InitialiseBound installs the phase-2 bounds (rows contribute
// (−RowUpper, −RowLower) at the logical positions) and, in phase 1,
// replaces them with the artificial dual-phase-1 bounds that keep every
// nonbasic variable dual-feasible at a finite value.
func (m *Model) InitialiseBound(phase int) {
	sl := m.SimplexLp
	numCol, numTot := sl.NumCol, m.numTot()

	for col := 0; col < numCol; col++ {
		m.Info.WorkLower[col] = sl.ColLower[col]
		m.Info.WorkUpper[col] = sl.ColUpper[col]
		m.Info.WorkRange[col] = m.Info.WorkUpper[col] - m.Info.WorkLower[col]
	}
	for row := 0; row < sl.NumRow; row++ {
		v := numCol + row
		m.Info.WorkLower[v] = -sl.RowUpper[row]
		m.Info.WorkUpper[v] = -sl.RowLower[row]
		m.Info.WorkRange[v] = m.Info.WorkUpper[v] - m.Info.WorkLower[v]
	}
	if phase == Phase2 {
		return
	}

	for v := 0; v < numTot; v++ {
		switch {
		case m.Info.WorkLower[v] == -numeric.Inf && m.Info.WorkUpper[v] == numeric.Inf:
			// Row variables stay free: they should never become nonbasic.
			if v >= numCol {
				continue
			}
			m.Info.WorkLower[v], m.Info.WorkUpper[v] = -1000, 1000
		case m.Info.WorkLower[v] == -numeric.Inf:
			m.Info.WorkLower[v], m.Info.WorkUpper[v] = -1, 0
		case m.Info.WorkUpper[v] == numeric.Inf:
			m.Info.WorkLower[v], m.Info.WorkUpper[v] = 0, 1
		default:
			m.Info.WorkLower[v], m.Info.WorkUpper[v] = 0, 0
		}
		m.Info.WorkRange[v] = m.Info.WorkUpper[v] - m.Info.WorkLower[v]
	}
}

// InitialiseValue applies the nonbasic move/value contract to every
// variable.
func (m *Model) InitialiseValue() {
	m.InitialiseValueFromNonbasic(0, m.numTot()-1)
}

// InitialiseValueFromNonbasic sets WorkValue and NonbasicMove for the
// variables in [first, last] from their flags and bounds:
//
//	fixed            → move 0, value at the bound
//	boxed            → keep an up/down move, else default to lower
//	lower-bounded    → move +1, value at lower
//	upper-bounded    → move −1, value at upper
//	free             → move 0, value 0
//
// Basic variables get move 0 and keep their value.
func (m *Model) InitialiseValueFromNonbasic(first, last int) {
	for v := first; v <= last; v++ {
		if m.Basis.NonbasicFlag[v] != FlagNonbasic {
			m.Basis.NonbasicMove[v] = MoveZero

			continue
		}
		switch {
		case m.Info.WorkLower[v] == m.Info.WorkUpper[v]:
			m.Info.WorkValue[v] = m.Info.WorkLower[v]
			m.Basis.NonbasicMove[v] = MoveZero
		case !numeric.IsInf(-m.Info.WorkLower[v]):
			if !numeric.IsInf(m.Info.WorkUpper[v]) {
				// Boxed: respect an existing move, else start at lower.
				switch m.Basis.NonbasicMove[v] {
				case MoveUp:
					m.Info.WorkValue[v] = m.Info.WorkLower[v]
				case MoveDown:
					m.Info.WorkValue[v] = m.Info.WorkUpper[v]
				default:
					m.Basis.NonbasicMove[v] = MoveUp
					m.Info.WorkValue[v] = m.Info.WorkLower[v]
				}
			} else {
				m.Info.WorkValue[v] = m.Info.WorkLower[v]
				m.Basis.NonbasicMove[v] = MoveUp
			}
		case !numeric.IsInf(m.Info.WorkUpper[v]):
			m.Info.WorkValue[v] = m.Info.WorkUpper[v]
			m.Basis.NonbasicMove[v] = MoveDown
		default:
			m.Info.WorkValue[v] = 0
			m.Basis.NonbasicMove[v] = MoveZero
		}
	}
}

// GetNonbasicMove returns the canonical move for a variable's bound
// shape: up from a finite lower bound (boxed starts at lower), down
// from an upper-only bound, zero for fixed and free.
func (m *Model) GetNonbasicMove(v int) int {
	switch {
	case !numeric.IsInf(-m.Info.WorkLower[v]):
		if !numeric.IsInf(m.Info.WorkUpper[v]) && m.Info.WorkLower[v] == m.Info.WorkUpper[v] {
			return MoveZero
		}

		return MoveUp
	case !numeric.IsInf(m.Info.WorkUpper[v]):
		return MoveDown
	default:
		return MoveZero
	}
}
