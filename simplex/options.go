package simplex

import "github.com/pkg/errors"

// Defaults — single source of truth for the zero configuration.
const (
	// DefaultPrimalFeasibilityTolerance is τ_p, the primal bound slack
	// below which a value counts as feasible.
	DefaultPrimalFeasibilityTolerance = 1e-7

	// DefaultDualFeasibilityTolerance is τ_d, used by CorrectDual and the
	// dual infeasibility counts.
	DefaultDualFeasibilityTolerance = 1e-7

	// DefaultDualObjectiveValueUpperBound disables the early-exit
	// threshold (nothing reaches +Inf of the sentinel kind).
	DefaultDualObjectiveValueUpperBound = 1e30

	// DefaultIterationLimit caps simplex iterations.
	DefaultIterationLimit = 1 << 31

	// DefaultUpdateLimit caps factor updates between refactorizations.
	DefaultUpdateLimit = 5000

	// DefaultRunTimeLimit is the wall-clock budget in seconds; effectively
	// unlimited.
	DefaultRunTimeLimit = 1e30
)

// Options is the engine configuration: one field per recognized key.
// Strategy fields are pass-throughs consumed by the pricing loop; the
// core stores them but takes no decisions on them.
type Options struct {
	// Pricing-loop choices, passed through.
	Strategy               int
	CrashStrategy          int
	DualEdgeWeightStrategy int
	PriceStrategy          int

	// Tolerances.
	PrimalFeasibilityTolerance float64
	DualFeasibilityTolerance   float64

	// Early exit when the dual objective exceeds this value.
	DualObjectiveValueUpperBound float64

	// PerturbCosts permits the deterministic cost perturbation applied by
	// InitialiseCost(true); PopulateWorkArrays never perturbs.
	PerturbCosts bool

	// Budgets.
	IterationLimit int
	UpdateLimit    int
	RunTimeLimit   float64 // seconds

	// Preparation toggles, carried for the caller: TransposeLp, ScaleLp,
	// PermuteLp and TightenLp do not read them.
	Transpose bool
	Scale     bool
	Permute   bool
	Tighten   bool
}

// DefaultOptions returns the documented default configuration:
// preparation off, perturbation on, budgets effectively unlimited.
func DefaultOptions() Options {
	return Options{
		PrimalFeasibilityTolerance:   DefaultPrimalFeasibilityTolerance,
		DualFeasibilityTolerance:     DefaultDualFeasibilityTolerance,
		DualObjectiveValueUpperBound: DefaultDualObjectiveValueUpperBound,
		PerturbCosts:                 true,
		IterationLimit:               DefaultIterationLimit,
		UpdateLimit:                  DefaultUpdateLimit,
		RunTimeLimit:                 DefaultRunTimeLimit,
	}
}

// Validate rejects configurations the core cannot honour.
func (o *Options) Validate() error {
	switch {
	case o.PrimalFeasibilityTolerance <= 0:
		return errors.Wrapf(ErrBadOptions, "primal feasibility tolerance %g", o.PrimalFeasibilityTolerance)
	case o.DualFeasibilityTolerance <= 0:
		return errors.Wrapf(ErrBadOptions, "dual feasibility tolerance %g", o.DualFeasibilityTolerance)
	case o.IterationLimit <= 0:
		return errors.Wrapf(ErrBadOptions, "iteration limit %d", o.IterationLimit)
	case o.UpdateLimit <= 0:
		return errors.Wrapf(ErrBadOptions, "update limit %d", o.UpdateLimit)
	case o.RunTimeLimit <= 0:
		return errors.Wrapf(ErrBadOptions, "run time limit %g", o.RunTimeLimit)
	}

	return nil
}
