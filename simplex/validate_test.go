package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsimplex/simplex"
)

// ------------------------------------------------------------------------
// 1. OKToSolve levels
// ------------------------------------------------------------------------

func TestOKToSolve_NoBasis(t *testing.T) {
	m := newScenarioModel(t)
	require.ErrorIs(t, m.OKToSolve(0, simplex.Phase2), simplex.ErrNoBasis)
}

func TestOKToSolve_FlagsAndStructure(t *testing.T) {
	m := newSolvableScenarioModel(t)
	require.NoError(t, m.OKToSolve(0, simplex.Phase2))
	require.NoError(t, m.OKToSolve(1, simplex.Phase2))
}

func TestOKToSolve_MissingInvert(t *testing.T) {
	m := newScenarioModel(t)
	require.NoError(t, m.SetupForSolve())
	// No ComputeFactor yet: flags must fail level 0.
	require.ErrorIs(t, m.OKToSolve(0, simplex.Phase2), simplex.ErrStructuralInvariant)
}

// ------------------------------------------------------------------------
// 2. Structural violations are named
// ------------------------------------------------------------------------

func TestValidation_DetectsBrokenPartition(t *testing.T) {
	m := newSolvableScenarioModel(t)

	m.Basis.NonbasicFlag[0] = simplex.FlagBasic // two basics for one row
	require.ErrorIs(t, m.NonbasicFlagBasicIndexOK(), simplex.ErrBasisCardinality)
	require.ErrorIs(t, m.OKToSolve(1, simplex.Phase2), simplex.ErrBasisCardinality)
	m.Basis.NonbasicFlag[0] = simplex.FlagNonbasic

	m.Basis.NonbasicFlag[m.Basis.BasicIndex[0]] = simplex.FlagNonbasic
	m.Basis.NonbasicFlag[0] = simplex.FlagBasic // cardinality holds, index broken
	require.ErrorIs(t, m.NonbasicFlagBasicIndexOK(), simplex.ErrStructuralInvariant)
}

func TestValidation_DetectsWorkArrayDrift(t *testing.T) {
	m := newSolvableScenarioModel(t)

	m.Info.WorkRange[1] = 42 // breaks P4
	require.ErrorIs(t, m.WorkArraysOK(simplex.Phase2), simplex.ErrStructuralInvariant)
	m.Info.WorkRange[1] = m.Info.WorkUpper[1] - m.Info.WorkLower[1]

	m.Info.WorkLower[0] = 0.5 // disagrees with the LP column bound
	require.ErrorIs(t, m.WorkArraysOK(simplex.Phase2), simplex.ErrStructuralInvariant)
}

func TestValidation_DetectsCostDrift(t *testing.T) {
	m := newSolvableScenarioModel(t)

	m.Info.WorkCost[0] = 2
	require.ErrorIs(t, m.WorkArraysOK(simplex.Phase2), simplex.ErrStructuralInvariant)

	// Perturbed costs are trusted.
	m.Info.CostsPerturbed = true
	require.NoError(t, m.WorkArraysOK(simplex.Phase2))
}

func TestValidation_DetectsContractBreak(t *testing.T) {
	m := newSolvableScenarioModel(t)

	m.Info.WorkValue[0] = 0.5 // boxed at neither bound
	require.ErrorIs(t, m.OneNonbasicMoveVsWorkArraysOK(0), simplex.ErrStructuralInvariant)
	require.ErrorIs(t, m.AllNonbasicMoveVsWorkArraysOK(), simplex.ErrStructuralInvariant)

	// Basic variables pass trivially.
	require.NoError(t, m.OneNonbasicMoveVsWorkArraysOK(2))
}
