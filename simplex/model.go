package simplex

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dsimplex/factor"
	"github.com/katalvlaran/dsimplex/lp"
	"github.com/katalvlaran/dsimplex/random"
	"github.com/katalvlaran/dsimplex/sparse"
)

// Model is the aggregate the whole core operates on: the input LP, the
// simplex working LP, scaling, basis, work arrays, status flags,
// configuration, random stream, matrix view and basis factor.
// All operations take the model by pointer; nothing is safe for
// concurrent use.
type Model struct {
	Lp        *lp.Lp // input, never mutated by the core
	SimplexLp *lp.Lp // working copy the transforms operate on
	Scale     lp.Scale
	Basis     Basis
	Info      Info
	Status    Status
	Opts      Options

	Random *random.Source
	Matrix *sparse.Matrix
	Factor *factor.Factor
	Clocks Clocks

	startTime time.Time
}

// NewModel validates the input LP and configuration, copies the LP into
// the working slot, resets scaling, and seeds the deterministic
// vectors. No basis is installed yet; SetupForSolve does that.
func NewModel(input *lp.Lp, opts Options) (*Model, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.Wrap(err, "simplex: input LP rejected")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		Lp:        input,
		SimplexLp: input.Clone(),
		Opts:      opts,
		Random:    random.New(),
		Matrix:    &sparse.Matrix{},
		Factor:    &factor.Factor{},
		startTime: time.Now(),
	}
	m.Scale.Reset(input.NumCol, input.NumRow)
	m.initialiseRandomVectors()
	m.Status.Valid = true

	return m, nil
}

// numTot returns the variable count n+m of the working LP.
func (m *Model) numTot() int {
	return m.SimplexLp.NumCol + m.SimplexLp.NumRow
}

// initialiseRandomVectors (re)generates the deterministic vectors: a
// column permutation, then — after resetting the stream so the second
// pass is independent of the first — a full n+m permutation and the
// fraction vector. Both passes run Fisher–Yates top-down on the shared
// stream so successive runs are bit-identical.
func (m *Model) initialiseRandomVectors() {
	numCol := m.SimplexLp.NumCol
	numTot := m.numTot()

	m.Random.Reset()
	m.Info.ColPermutation = makeIdentity(m.Info.ColPermutation, numCol)
	for i := numCol - 1; i >= 1; i-- {
		j := m.Random.Integer() % (i + 1)
		m.Info.ColPermutation[i], m.Info.ColPermutation[j] = m.Info.ColPermutation[j], m.Info.ColPermutation[i]
	}

	m.Random.Reset()
	m.Info.TotPermutation = makeIdentity(m.Info.TotPermutation, numTot)
	for i := numTot - 1; i >= 1; i-- {
		j := m.Random.Integer() % (i + 1)
		m.Info.TotPermutation[i], m.Info.TotPermutation[j] = m.Info.TotPermutation[j], m.Info.TotPermutation[i]
	}

	if cap(m.Info.TotRandomValue) < numTot {
		m.Info.TotRandomValue = make([]float64, numTot)
	}
	m.Info.TotRandomValue = m.Info.TotRandomValue[:numTot]
	for i := 0; i < numTot; i++ {
		m.Info.TotRandomValue[i] = m.Random.Fraction()
	}
}

func makeIdentity(buf []int, n int) []int {
	if cap(buf) < n {
		buf = make([]int, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = i
	}

	return buf
}

// SetupNumBasicLogicals recounts the logical variables in the basis.
func (m *Model) SetupNumBasicLogicals() {
	m.Info.NumBasicLogicals = 0
	for _, v := range m.Basis.BasicIndex {
		if v >= m.SimplexLp.NumCol {
			m.Info.NumBasicLogicals++
		}
	}
}

// SetupForSolve brings the model to a solvable state: installs a
// logical basis when none is valid, wires the matrix view (fast path
// when the basis is all-logical) and binds the factor to the current
// basicIndex slice.
func (m *Model) SetupForSolve() error {
	sl := m.SimplexLp
	if sl.NumRow == 0 {
		return nil
	}

	if m.Basis.Valid {
		m.SetupNumBasicLogicals()
	} else if err := m.ReplaceWithLogicalBasis(); err != nil {
		return err
	}
	m.Status.HasBasis = true

	if !(m.Status.HasMatrixColWise && m.Status.HasMatrixRowWise) {
		var err error
		if m.Info.NumBasicLogicals == sl.NumRow {
			err = m.Matrix.SetupLogical(sl.NumCol, sl.NumRow, sl.AStart, sl.AIndex, sl.AValue)
		} else {
			err = m.Matrix.Setup(sl.NumCol, sl.NumRow, sl.AStart, sl.AIndex, sl.AValue, m.Basis.NonbasicFlag)
		}
		if err != nil {
			return errors.Wrap(err, "simplex: matrix setup")
		}
		m.Status.HasMatrixColWise = true
		m.Status.HasMatrixRowWise = true
	}

	// The factor borrows BasicIndex; the slice must not be reallocated
	// while the factor is live (resize keeps it in place).
	m.Factor.Setup(sl.NumCol, sl.NumRow, sl.AStart, sl.AIndex, sl.AValue, m.Basis.BasicIndex)
	m.Status.HasFactorArrays = true

	return nil
}

// AppendNonbasicColsToBasis grows the basis for numNew appended
// structural columns, shifting the logical block up and flagging the
// new columns nonbasic.
func (m *Model) AppendNonbasicColsToBasis(numNew int) {
	if numNew == 0 {
		return
	}
	numCol, numRow := m.SimplexLp.NumCol, m.SimplexLp.NumRow
	newNumCol := numCol + numNew
	newNumTot := newNumCol + numRow

	flag := make([]int, newNumTot)
	move := make([]int, newNumTot)
	copy(flag, m.Basis.NonbasicFlag[:numCol])
	copy(move, m.Basis.NonbasicMove[:numCol])
	for row := 0; row < numRow; row++ {
		flag[newNumCol+row] = m.Basis.NonbasicFlag[numCol+row]
		move[newNumCol+row] = m.Basis.NonbasicMove[numCol+row]
	}
	for col := numCol; col < newNumCol; col++ {
		flag[col] = FlagNonbasic
	}
	for row := range m.Basis.BasicIndex {
		if m.Basis.BasicIndex[row] >= numCol {
			m.Basis.BasicIndex[row] += numNew
		}
	}
	m.Basis.NonbasicFlag = flag
	m.Basis.NonbasicMove = move
}

// AppendBasicRowsToBasis grows the basis for numNew appended rows,
// making each new logical basic in its own row.
func (m *Model) AppendBasicRowsToBasis(numNew int) {
	if numNew == 0 {
		return
	}
	numCol, numRow := m.SimplexLp.NumCol, m.SimplexLp.NumRow
	newNumRow := numRow + numNew

	index := make([]int, newNumRow)
	copy(index, m.Basis.BasicIndex)
	flag := make([]int, numCol+newNumRow)
	move := make([]int, numCol+newNumRow)
	copy(flag, m.Basis.NonbasicFlag)
	copy(move, m.Basis.NonbasicMove)
	for row := numRow; row < newNumRow; row++ {
		v := numCol + row
		flag[v] = FlagBasic
		index[row] = v
	}
	m.Basis.BasicIndex = index
	m.Basis.NonbasicFlag = flag
	m.Basis.NonbasicMove = move
	m.Info.NumBasicLogicals += numNew
}

// CheckBudget reports whether the iteration and wall-clock budgets
// still admit another pivot. On exhaustion it records StatusOutOfTime
// and returns ErrBudgetExhausted; all state stays consistent.
func (m *Model) CheckBudget() error {
	if m.Info.IterationCount >= m.Opts.IterationLimit {
		m.Status.SolutionStatus = StatusOutOfTime

		return errors.Wrapf(ErrBudgetExhausted, "iteration %d of %d", m.Info.IterationCount, m.Opts.IterationLimit)
	}
	if elapsed := time.Since(m.startTime).Seconds(); elapsed > m.Opts.RunTimeLimit {
		m.Status.SolutionStatus = StatusOutOfTime

		return errors.Wrapf(ErrBudgetExhausted, "%.3fs of %.3fs", elapsed, m.Opts.RunTimeLimit)
	}

	return nil
}

// ReportIteration writes one iteration log line: count, dual objective
// and the caller's invertibility marker.
func (m *Model) ReportIteration(w io.Writer, iv int) {
	fmt.Fprintf(w, "Iter %10d: %20.10e %2d\n", m.Info.IterationCount, m.Info.DualObjectiveValue, iv)
}
