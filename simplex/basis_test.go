package simplex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsimplex/lp"
	"github.com/katalvlaran/dsimplex/simplex"
)

// shapesLp has one column of every bound shape plus one row, so the
// move/value contract and the perturbation rules are all exercised:
// col0 free, col1 lower-only, col2 upper-only, col3 fixed, col4 boxed.
func shapesLp() *lp.Lp {
	return &lp.Lp{
		NumCol: 5, NumRow: 1,
		Sense:    lp.Minimize,
		AStart:   []int{0, 1, 2, 3, 4, 5},
		AIndex:   []int{0, 0, 0, 0, 0},
		AValue:   []float64{1, 1, 1, 1, 1},
		ColCost:  []float64{1, 1, 1, 1, 1},
		ColLower: []float64{-inf, 0, -inf, 2, 0},
		ColUpper: []float64{inf, inf, 0, 2, 1},
		RowLower: []float64{-inf},
		RowUpper: []float64{5},
	}
}

// ------------------------------------------------------------------------
// 1. Logical basis install: P1–P4
// ------------------------------------------------------------------------

func TestInitialiseWithLogicalBasis(t *testing.T) {
	m := newModel(t, shapesLp())
	require.NoError(t, m.InitialiseWithLogicalBasis())

	// P1: exactly numRow basic flags; P2: basicIndex consistency.
	require.NoError(t, m.NonbasicFlagBasicIndexOK())
	require.Equal(t, []int{5}, m.Basis.BasicIndex)
	require.Equal(t, 1, m.Info.NumBasicLogicals)
	require.True(t, m.Basis.Valid)

	// P3: the move/value contract per bound shape.
	require.Equal(t, simplex.MoveZero, m.Basis.NonbasicMove[0]) // free
	require.Equal(t, 0.0, m.Info.WorkValue[0])
	require.Equal(t, simplex.MoveUp, m.Basis.NonbasicMove[1]) // lower-only
	require.Equal(t, 0.0, m.Info.WorkValue[1])
	require.Equal(t, simplex.MoveDown, m.Basis.NonbasicMove[2]) // upper-only
	require.Equal(t, 0.0, m.Info.WorkValue[2])
	require.Equal(t, simplex.MoveZero, m.Basis.NonbasicMove[3]) // fixed
	require.Equal(t, 2.0, m.Info.WorkValue[3])
	require.Equal(t, simplex.MoveUp, m.Basis.NonbasicMove[4]) // boxed starts at lower
	require.Equal(t, 0.0, m.Info.WorkValue[4])
	require.NoError(t, m.AllNonbasicMoveVsWorkArraysOK())

	// P4: workRange = workUpper − workLower everywhere.
	require.NoError(t, m.WorkArraysOK(simplex.Phase2))

	// Logical bounds are the negated row bounds: [−5, +∞).
	require.Equal(t, -5.0, m.Info.WorkLower[5])
	require.Equal(t, inf, m.Info.WorkUpper[5])
}

// R1: invalidating and reinstalling the logical basis reproduces the
// state of a fresh install.
func TestLogicalBasisReinstallRoundTrip(t *testing.T) {
	a := newModel(t, shapesLp())
	require.NoError(t, a.InitialiseWithLogicalBasis())
	a.Invalidate()
	a.Status.Valid = true
	require.NoError(t, a.ReplaceWithLogicalBasis())

	b := newModel(t, shapesLp())
	require.NoError(t, b.InitialiseWithLogicalBasis())

	require.Equal(t, b.Basis.BasicIndex, a.Basis.BasicIndex)
	require.Equal(t, b.Basis.NonbasicFlag, a.Basis.NonbasicFlag)
	require.Equal(t, b.Basis.NonbasicMove, a.Basis.NonbasicMove)
	require.Equal(t, b.Info.WorkLower, a.Info.WorkLower)
	require.Equal(t, b.Info.WorkUpper, a.Info.WorkUpper)
	require.Equal(t, b.Info.WorkRange, a.Info.WorkRange)
	require.Equal(t, b.Info.WorkValue, a.Info.WorkValue)
	require.Equal(t, b.Info.WorkCost, a.Info.WorkCost)
	require.Equal(t, b.Status, a.Status)
}

// ------------------------------------------------------------------------
// 2. External basis install
// ------------------------------------------------------------------------

func TestReplaceWithNewBasis(t *testing.T) {
	m := newScenarioModel(t)
	require.NoError(t, m.ReplaceWithNewBasis([]int{0}))
	require.Equal(t, []int{0}, m.Basis.BasicIndex)
	require.Equal(t, simplex.FlagBasic, m.Basis.NonbasicFlag[0])
	require.Equal(t, simplex.FlagNonbasic, m.Basis.NonbasicFlag[1])
	require.Equal(t, simplex.FlagNonbasic, m.Basis.NonbasicFlag[2])
	require.Equal(t, 0, m.Info.NumBasicLogicals)
	require.NoError(t, m.NonbasicFlagBasicIndexOK())

	require.ErrorIs(t, m.ReplaceWithNewBasis([]int{0, 1}), simplex.ErrBasisCardinality)
	require.ErrorIs(t, m.ReplaceWithNewBasis([]int{7}), simplex.ErrStructuralInvariant)
}

func TestInitialiseFromNonbasic(t *testing.T) {
	m := newScenarioModel(t)
	require.NoError(t, m.InitialiseWithLogicalBasis())

	// Flip the partition by hand: x0 basic, logical nonbasic.
	m.Basis.NonbasicFlag[0] = simplex.FlagBasic
	m.Basis.NonbasicFlag[2] = simplex.FlagNonbasic
	require.NoError(t, m.ReplaceFromNonbasic())
	require.Equal(t, []int{0}, m.Basis.BasicIndex)
	require.Equal(t, 0, m.Info.NumBasicLogicals)

	// Too many basic flags must be rejected.
	m.Basis.NonbasicFlag[1] = simplex.FlagBasic
	require.ErrorIs(t, m.ReplaceFromNonbasic(), simplex.ErrBasisCardinality)
}

// ------------------------------------------------------------------------
// 3. Phase-1 bounds
// ------------------------------------------------------------------------

func TestInitialiseBoundPhase1(t *testing.T) {
	m := newModel(t, shapesLp())
	require.NoError(t, m.InitialiseWithLogicalBasis())
	m.InitialiseBound(simplex.Phase1)

	// Free structural → artificial box; one-sided → unit boxes;
	// boxed/fixed → collapsed.
	require.Equal(t, -1000.0, m.Info.WorkLower[0])
	require.Equal(t, 1000.0, m.Info.WorkUpper[0])
	require.Equal(t, 0.0, m.Info.WorkLower[1])
	require.Equal(t, 1.0, m.Info.WorkUpper[1])
	require.Equal(t, -1.0, m.Info.WorkLower[2])
	require.Equal(t, 0.0, m.Info.WorkUpper[2])
	require.Equal(t, 0.0, m.Info.WorkLower[3])
	require.Equal(t, 0.0, m.Info.WorkUpper[3])
	require.Equal(t, 0.0, m.Info.WorkLower[4])
	require.Equal(t, 0.0, m.Info.WorkUpper[4])

	// Logical [−5, +∞) maps to the lower unit box too.
	require.Equal(t, 0.0, m.Info.WorkLower[5])
	require.Equal(t, 1.0, m.Info.WorkUpper[5])

	// Ranges follow (P4 under phase-1 bounds).
	require.NoError(t, m.WorkArraysOK(simplex.Phase1))
}

func TestInitialiseBoundPhase1KeepsFreeRows(t *testing.T) {
	l := scenarioLp()
	l.RowLower[0], l.RowUpper[0] = -inf, inf
	m := newModel(t, l)
	require.NoError(t, m.InitialiseWithLogicalBasis())
	m.InitialiseBound(simplex.Phase1)

	require.Equal(t, -inf, m.Info.WorkLower[2])
	require.Equal(t, inf, m.Info.WorkUpper[2])
}

// ------------------------------------------------------------------------
// 4. Cost perturbation
// ------------------------------------------------------------------------

func TestInitialiseCostPerturbation(t *testing.T) {
	opts := simplex.DefaultOptions() // perturbation enabled
	m, err := simplex.NewModel(shapesLp(), opts)
	require.NoError(t, err)
	require.NoError(t, m.InitialiseWithLogicalBasis())

	// PopulateWorkArrays leaves costs exact; perturb explicitly.
	require.False(t, m.Info.CostsPerturbed)
	m.InitialiseCost(true)
	require.True(t, m.Info.CostsPerturbed)

	cost := m.Info.WorkCost
	// Free and fixed stay exact.
	require.Equal(t, 1.0, cost[0])
	require.Equal(t, 1.0, cost[3])
	// Lower-only up, upper-only down, boxed follows the cost sign (+).
	require.Greater(t, cost[1], 1.0)
	require.Less(t, cost[2], 1.0)
	require.Greater(t, cost[4], 1.0)
	// Magnitude: xpert = (|c|+1)·5e-7·bigc·(1+r) with bigc=1, r ∈ [0,1).
	for _, v := range []int{1, 2, 4} {
		require.InDelta(t, 1.0, cost[v], 2.1e-6)
		require.GreaterOrEqual(t, math.Abs(cost[v]-1.0), 1e-6)
	}
	// Logicals get symmetric noise within ±0.5e-12.
	require.LessOrEqual(t, math.Abs(cost[5]), 0.5e-12)

	// Determinism: a second model perturbs identically.
	n, err := simplex.NewModel(shapesLp(), opts)
	require.NoError(t, err)
	require.NoError(t, n.InitialiseWithLogicalBasis())
	n.InitialiseCost(true)
	require.Equal(t, m.Info.WorkCost, n.Info.WorkCost)
}

func TestInitialiseCostRespectsOption(t *testing.T) {
	m := newScenarioModel(t) // PerturbCosts=false
	require.NoError(t, m.InitialiseWithLogicalBasis())
	m.InitialiseCost(true)
	require.False(t, m.Info.CostsPerturbed)
	require.Equal(t, []float64{1, 1, 0}, m.Info.WorkCost)
}

// Maximisation flips the signs the work arrays see.
func TestInitialiseCostAppliesSense(t *testing.T) {
	l := scenarioLp()
	l.Sense = lp.Maximize
	m := newModel(t, l)
	require.NoError(t, m.InitialiseWithLogicalBasis())
	require.Equal(t, []float64{-1, -1, 0}, m.Info.WorkCost)
}

// ------------------------------------------------------------------------
// 5. Basis growth
// ------------------------------------------------------------------------

func TestAppendBasisOperations(t *testing.T) {
	m := newScenarioModel(t)
	require.NoError(t, m.InitialiseWithLogicalBasis())

	// Two appended structural columns arrive nonbasic; the logical block
	// shifts with the column count. The basis grows before the LP counts
	// are bumped.
	m.AppendNonbasicColsToBasis(2)
	m.SimplexLp.NumCol += 2
	require.Equal(t, []int{4}, m.Basis.BasicIndex)
	require.Equal(t, simplex.FlagNonbasic, m.Basis.NonbasicFlag[2])
	require.Equal(t, simplex.FlagNonbasic, m.Basis.NonbasicFlag[3])
	require.Equal(t, simplex.FlagBasic, m.Basis.NonbasicFlag[4])

	// One appended row arrives with its logical basic.
	m.AppendBasicRowsToBasis(1)
	m.SimplexLp.NumRow++
	require.Equal(t, []int{4, 5}, m.Basis.BasicIndex)
	require.Equal(t, simplex.FlagBasic, m.Basis.NonbasicFlag[5])
	require.Equal(t, 2, m.Info.NumBasicLogicals)
}
