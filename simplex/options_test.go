package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsimplex/simplex"
)

func TestDefaultOptions(t *testing.T) {
	o := simplex.DefaultOptions()
	require.NoError(t, o.Validate())
	require.Equal(t, 1e-7, o.PrimalFeasibilityTolerance)
	require.Equal(t, 1e-7, o.DualFeasibilityTolerance)
	require.True(t, o.PerturbCosts)
	require.False(t, o.Transpose)
	require.False(t, o.Scale)
	require.False(t, o.Permute)
	require.False(t, o.Tighten)
	require.Equal(t, simplex.DefaultUpdateLimit, o.UpdateLimit)
}

func TestOptionsValidate(t *testing.T) {
	mutations := []func(*simplex.Options){
		func(o *simplex.Options) { o.PrimalFeasibilityTolerance = 0 },
		func(o *simplex.Options) { o.DualFeasibilityTolerance = -1e-7 },
		func(o *simplex.Options) { o.IterationLimit = 0 },
		func(o *simplex.Options) { o.UpdateLimit = -1 },
		func(o *simplex.Options) { o.RunTimeLimit = 0 },
	}
	for i, mutate := range mutations {
		o := simplex.DefaultOptions()
		mutate(&o)
		require.ErrorIs(t, o.Validate(), simplex.ErrBadOptions, "case %d", i)
	}
}
