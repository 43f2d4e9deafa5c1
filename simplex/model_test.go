package simplex_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsimplex/lp"
	"github.com/katalvlaran/dsimplex/simplex"
)

func TestNewModel_RejectsBadInput(t *testing.T) {
	bad := scenarioLp()
	bad.ColCost = nil
	_, err := simplex.NewModel(bad, simplex.DefaultOptions())
	require.ErrorIs(t, err, lp.ErrBadVectorLength)

	opts := simplex.DefaultOptions()
	opts.UpdateLimit = 0
	_, err = simplex.NewModel(scenarioLp(), opts)
	require.ErrorIs(t, err, simplex.ErrBadOptions)
}

func TestNewModel_ClonesWorkingLp(t *testing.T) {
	m := newScenarioModel(t)
	require.True(t, m.Status.Valid)
	require.True(t, m.SimplexLp.EqualTo(m.Lp))

	m.SimplexLp.ColCost[0] = 99
	require.Equal(t, 1.0, m.Lp.ColCost[0], "input LP stays pristine")
}

func TestNewModel_SeedsRandomVectors(t *testing.T) {
	m := newScenarioModel(t)
	require.Len(t, m.Info.ColPermutation, 2)
	require.Len(t, m.Info.TotPermutation, 3)
	require.Len(t, m.Info.TotRandomValue, 3)
	for _, f := range m.Info.TotRandomValue {
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestSetupForSolve_EmptyRowsIsNoop(t *testing.T) {
	l := &lp.Lp{
		NumCol: 1, NumRow: 0,
		Sense:    lp.Minimize,
		AStart:   []int{0, 0},
		ColCost:  []float64{1},
		ColLower: []float64{0},
		ColUpper: []float64{1},
	}
	m, err := simplex.NewModel(l, simplex.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, m.SetupForSolve())
	require.False(t, m.Basis.Valid)
}

// ------------------------------------------------------------------------
// Budgets
// ------------------------------------------------------------------------

func TestCheckBudget_Iterations(t *testing.T) {
	m := newScenarioModel(t)
	require.NoError(t, m.CheckBudget())

	m.Opts.IterationLimit = 10
	m.Info.IterationCount = 10
	err := m.CheckBudget()
	require.ErrorIs(t, err, simplex.ErrBudgetExhausted)
	require.Equal(t, simplex.StatusOutOfTime, m.Status.SolutionStatus)
}

func TestCheckBudget_WallClock(t *testing.T) {
	m := newScenarioModel(t)
	m.Opts.RunTimeLimit = 1e-9
	time.Sleep(time.Millisecond)
	require.ErrorIs(t, m.CheckBudget(), simplex.ErrBudgetExhausted)
}

// ------------------------------------------------------------------------
// Clocks and reporting
// ------------------------------------------------------------------------

func TestClocksAccumulateSymmetrically(t *testing.T) {
	m := newSolvableScenarioModel(t)
	for i := 0; i < 1000; i++ {
		require.Zero(t, m.ComputeFactor())
	}
	require.Greater(t, int64(m.Clocks.Total(simplex.ClockInvert)), int64(0))

	before := m.Clocks.Total(simplex.ClockUpdatePivots)
	m.UpdatePivots(0, 0, simplex.SourceOutToUpper)
	require.GreaterOrEqual(t, int64(m.Clocks.Total(simplex.ClockUpdatePivots)), int64(before))
}

func TestReportIteration(t *testing.T) {
	m := newScenarioModel(t)
	m.Info.IterationCount = 7
	m.Info.DualObjectiveValue = 1.5
	var sb strings.Builder
	m.ReportIteration(&sb, 1)
	require.Contains(t, sb.String(), "Iter          7")
	require.Contains(t, sb.String(), "1.5000000000e+00")
}
