package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsimplex/lp"
	"github.com/katalvlaran/dsimplex/numeric"
	"github.com/katalvlaran/dsimplex/simplex"
)

// scenarioLp is the small reference program used across the package
// tests: min x₀+x₁ subject to x₀+x₁ ≥ 1, 0 ≤ xᵢ ≤ 1. Its optimum is 1.
func scenarioLp() *lp.Lp {
	return &lp.Lp{
		NumCol: 2, NumRow: 1,
		Sense:     lp.Minimize,
		AStart:    []int{0, 1, 2},
		AIndex:    []int{0, 0},
		AValue:    []float64{1, 1},
		ColCost:   []float64{1, 1},
		ColLower:  []float64{0, 0},
		ColUpper:  []float64{1, 1},
		RowLower:  []float64{1},
		RowUpper:  []float64{numeric.Inf},
		ModelName: "scenario",
	}
}

// newScenarioModel builds a model over scenarioLp with perturbation off
// so work arrays stay exact.
func newScenarioModel(t *testing.T) *simplex.Model {
	t.Helper()
	opts := simplex.DefaultOptions()
	opts.PerturbCosts = false
	m, err := simplex.NewModel(scenarioLp(), opts)
	require.NoError(t, err)

	return m
}

// newSolvableScenarioModel additionally installs the logical basis and
// wires matrix and factor.
func newSolvableScenarioModel(t *testing.T) *simplex.Model {
	t.Helper()
	m := newScenarioModel(t)
	require.NoError(t, m.SetupForSolve())
	require.Zero(t, m.ComputeFactor())

	return m
}
