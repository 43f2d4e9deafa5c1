package simplex

import (
	"errors"
	"fmt"
)

// Sentinel errors of the core. Validation wraps these with positional
// context; tests match with errors.Is.
var (
	// ErrStructuralInvariant covers every failed structural self-check:
	// basis cardinality, basicIndex/nonbasicFlag disagreement, work-array
	// drift from the LP bounds, or a broken nonbasic move/value contract.
	// A solve meeting it must abort with StatusFailed.
	ErrStructuralInvariant = errors.New("simplex: structural invariant violated")

	// ErrBasisCardinality is the specific invariant that the number of
	// basic flags differs from numRow. It wraps ErrStructuralInvariant,
	// so errors.Is matches either sentinel.
	ErrBasisCardinality = fmt.Errorf("%w: basic variable count differs from numRow", ErrStructuralInvariant)

	// ErrBudgetExhausted reports that the iteration or wall-clock budget
	// was consumed between pivots. Work arrays remain consistent; the
	// solve terminates with StatusOutOfTime.
	ErrBudgetExhausted = errors.New("simplex: iteration or time budget exhausted")

	// ErrShiftPending guards ShiftCost's precondition that no shift is
	// already recorded for the column.
	ErrShiftPending = errors.New("simplex: cost shift already pending for column")

	// ErrBadOptions reports an unusable configuration value.
	ErrBadOptions = errors.New("simplex: invalid option value")

	// ErrNoBasis reports an operation that needs a valid basis before one
	// was installed.
	ErrNoBasis = errors.New("simplex: no valid basis installed")
)
