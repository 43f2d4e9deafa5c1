package simplex

// Nonbasic flag values.
const (
	// FlagBasic marks a variable inside the basis.
	FlagBasic = 0
	// FlagNonbasic marks a variable outside the basis.
	FlagNonbasic = 1
)

// Nonbasic move directions: which bound a nonbasic variable sits on and
// the direction it may move away from it.
const (
	// MoveUp — nonbasic at its lower bound.
	MoveUp = 1
	// MoveDown — nonbasic at its upper bound.
	MoveDown = -1
	// MoveZero — fixed, free at zero, or basic.
	MoveZero = 0
)

// Basis carries the basis partition. BasicIndex lists the basic
// variable of each row; NonbasicFlag and NonbasicMove cover all n+m
// variables. Invariants (when Valid): exactly numRow flags are
// FlagBasic, and NonbasicFlag[BasicIndex[r]] == FlagBasic for every r.
// The basis is shared with the pricing loop; the core mutates it
// through UpdatePivots, FlipBound (also via CorrectDual), the value
// initialisation and the install and append operations.
type Basis struct {
	Valid        bool
	BasicIndex   []int
	NonbasicFlag []int
	NonbasicMove []int
}

// resize prepares the basis arrays for an LP of the given shape without
// reallocating BasicIndex when its capacity suffices — the factor
// borrows that slice.
func (b *Basis) resize(numCol, numRow int) {
	numTot := numCol + numRow
	if cap(b.BasicIndex) < numRow {
		b.BasicIndex = make([]int, numRow)
	}
	b.BasicIndex = b.BasicIndex[:numRow]
	if cap(b.NonbasicFlag) < numTot {
		b.NonbasicFlag = make([]int, numTot)
	}
	b.NonbasicFlag = b.NonbasicFlag[:numTot]
	if cap(b.NonbasicMove) < numTot {
		b.NonbasicMove = make([]int, numTot)
	}
	b.NonbasicMove = b.NonbasicMove[:numTot]
}

// Info is the working state surrounding the basis: paired work arrays
// over all n+m variables, base arrays over the rows, the permutation
// and random vectors, and the iteration bookkeeping.
//
// For nonbasic variables the (WorkLower, WorkUpper, WorkValue,
// NonbasicMove) quadruple obeys the move/value contract; for basic
// variables WorkValue holds the last nonbasic value and the Base*
// arrays hold the live primal state.
type Info struct {
	WorkCost  []float64
	WorkDual  []float64
	WorkShift []float64

	WorkLower []float64
	WorkUpper []float64
	WorkRange []float64
	WorkValue []float64

	BaseLower []float64
	BaseUpper []float64
	BaseValue []float64

	// Deterministic vectors regenerated from the fixed seed: the column
	// permutation, the full-length permutation, and fractions in [0,1).
	ColPermutation []int
	TotPermutation []int
	TotRandomValue []float64

	// NumBasicLogicals counts logical variables inside the basis.
	NumBasicLogicals int

	IterationCount int
	UpdateCount    int

	// DualObjectiveValue is the last fully computed dual objective;
	// UpdatedDualObjectiveValue is its incrementally maintained shadow.
	DualObjectiveValue        float64
	UpdatedDualObjectiveValue float64

	// CostsPerturbed records that WorkCost no longer equals the LP costs.
	CostsPerturbed bool
}
