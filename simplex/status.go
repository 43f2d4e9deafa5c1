package simplex

import (
	"fmt"
	"io"
)

// Action names a mutation of the working LP or basis. UpdateStatus maps
// each action to the set of derived-data flags it invalidates.
type Action int

const (
	// ActionTranspose — the working LP was replaced by its dual.
	ActionTranspose Action = iota
	// ActionScale — matrix, bounds and costs were rescaled.
	ActionScale
	// ActionPermute — columns were reordered.
	ActionPermute
	// ActionTighten — column bounds were tightened.
	ActionTighten
	// ActionNewCosts — costs changed; duals and the objective are stale.
	ActionNewCosts
	// ActionNewBounds — bounds changed; basic primals and the objective
	// are stale.
	ActionNewBounds
	// ActionNewBasis — a basis was installed or replaced.
	ActionNewBasis
	// ActionNewCols — columns were appended.
	ActionNewCols
	// ActionNewRows — rows were appended.
	ActionNewRows
	// ActionDelCols — columns were deleted.
	ActionDelCols
	// ActionDelRows — rows were deleted.
	ActionDelRows
	// ActionDelRowsBasisOK — rows were deleted but the basis provably
	// survives; no derived data is invalidated.
	ActionDelRowsBasisOK
)

// Status is the validity ledger of the working LP and everything
// derived from it. Transform flags (Is*) say which preparations have
// been applied; Has* flags say which derived quantities are current.
type Status struct {
	Valid        bool
	IsTransposed bool
	IsScaled     bool
	IsPermuted   bool
	IsTightened  bool

	HasBasis                   bool
	HasMatrixColWise           bool
	HasMatrixRowWise           bool
	HasFactorArrays            bool
	HasDualSteepestEdgeWeights bool
	HasNonbasicDualValues      bool
	HasBasicPrimalValues       bool
	HasInvert                  bool
	HasFreshInvert             bool
	HasFreshRebuild            bool
	HasDualObjectiveValue      bool

	SolutionStatus SolutionStatus
}

// InvalidateData clears every derived-data flag: basis presence, cached
// matrix forms, factor arrays, edge weights, nonbasic duals, basic
// primals, invert freshness and the dual objective.
func (m *Model) InvalidateData() {
	s := &m.Status
	s.HasBasis = false
	s.HasMatrixColWise = false
	s.HasMatrixRowWise = false
	s.HasFactorArrays = false
	s.HasDualSteepestEdgeWeights = false
	s.HasNonbasicDualValues = false
	s.HasBasicPrimalValues = false
	s.HasInvert = false
	s.HasFreshInvert = false
	s.HasFreshRebuild = false
	s.HasDualObjectiveValue = false
}

// Invalidate additionally clears the working-LP flags, returning the
// model to "no working LP" state.
func (m *Model) Invalidate() {
	s := &m.Status
	s.Valid = false
	s.IsTransposed = false
	s.IsScaled = false
	s.IsPermuted = false
	s.IsTightened = false
	m.InvalidateData()
}

// UpdateStatus records the consequences of an action on the flag set.
func (m *Model) UpdateStatus(action Action) {
	s := &m.Status
	switch action {
	case ActionTranspose:
		s.IsTransposed = true
		m.InvalidateData()
	case ActionScale:
		s.IsScaled = true
		m.InvalidateData()
	case ActionPermute:
		s.IsPermuted = true
		m.InvalidateData()
	case ActionTighten:
		s.IsTightened = true
		m.InvalidateData()
	case ActionNewCosts:
		s.HasNonbasicDualValues = false
		s.HasFreshRebuild = false
		s.HasDualObjectiveValue = false
	case ActionNewBounds:
		s.HasBasicPrimalValues = false
		s.HasFreshRebuild = false
		s.HasDualObjectiveValue = false
	case ActionNewBasis, ActionNewCols, ActionNewRows, ActionDelCols, ActionDelRows:
		m.InvalidateData()
	case ActionDelRowsBasisOK:
		// Basis survives; nothing derived is invalidated.
	}
}

// ReportStatus writes the flag ledger, one flag per line.
func (m *Model) ReportStatus(w io.Writer) {
	s := &m.Status
	fmt.Fprintf(w, "valid =                          %v\n", s.Valid)
	fmt.Fprintf(w, "is_transposed =                  %v\n", s.IsTransposed)
	fmt.Fprintf(w, "is_scaled =                      %v\n", s.IsScaled)
	fmt.Fprintf(w, "is_permuted =                    %v\n", s.IsPermuted)
	fmt.Fprintf(w, "is_tightened =                   %v\n", s.IsTightened)
	fmt.Fprintf(w, "has_basis =                      %v\n", s.HasBasis)
	fmt.Fprintf(w, "has_matrix_col_wise =            %v\n", s.HasMatrixColWise)
	fmt.Fprintf(w, "has_matrix_row_wise =            %v\n", s.HasMatrixRowWise)
	fmt.Fprintf(w, "has_factor_arrays =              %v\n", s.HasFactorArrays)
	fmt.Fprintf(w, "has_dual_steepest_edge_weights = %v\n", s.HasDualSteepestEdgeWeights)
	fmt.Fprintf(w, "has_nonbasic_dual_values =       %v\n", s.HasNonbasicDualValues)
	fmt.Fprintf(w, "has_basic_primal_values =        %v\n", s.HasBasicPrimalValues)
	fmt.Fprintf(w, "has_invert =                     %v\n", s.HasInvert)
	fmt.Fprintf(w, "has_fresh_invert =               %v\n", s.HasFreshInvert)
	fmt.Fprintf(w, "has_fresh_rebuild =              %v\n", s.HasFreshRebuild)
	fmt.Fprintf(w, "has_dual_objective_value =       %v\n", s.HasDualObjectiveValue)
}

// SolutionStatus is the terminal state reported to the caller.
type SolutionStatus int

const (
	// StatusUnset — no solve has concluded.
	StatusUnset SolutionStatus = iota
	// StatusOptimal — optimal primal–dual pair found.
	StatusOptimal
	// StatusInfeasible — certificate of primal infeasibility.
	StatusInfeasible
	// StatusUnbounded — certificate of primal unboundedness.
	StatusUnbounded
	// StatusSingular — basis rank deficiency could not be repaired.
	StatusSingular
	// StatusFailed — structural invariant violation or unrecoverable error.
	StatusFailed
	// StatusReachedDualObjectiveUpperBound — early exit on the configured
	// dual objective threshold.
	StatusReachedDualObjectiveUpperBound
	// StatusOutOfTime — iteration or wall-clock budget exhausted.
	StatusOutOfTime
)

// String renders the caller-facing wording for each terminal state.
func (s SolutionStatus) String() string {
	switch s {
	case StatusUnset:
		return "Unset"
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Primal unbounded"
	case StatusSingular:
		return "Singular basis"
	case StatusFailed:
		return "Failed"
	case StatusReachedDualObjectiveUpperBound:
		return "Reached dual objective value upper bound"
	case StatusOutOfTime:
		return "Time limit exceeded"
	}

	return ""
}
