package simplex

import "github.com/katalvlaran/dsimplex/numeric"

// transposeRatio is the shape heuristic: with more than one column per
// five rows the primal is already the better side to solve.
const transposeRatio = 0.2

// TransposeLp replaces the working LP with the dual of the input LP
// when that is heuristically beneficial. The operation cancels — and
// leaves the working LP bit-identical to the input — when the LP is not
// tall enough (numCol/numRow > 0.2) or when any column or row has a
// bound shape the dual mapping does not cover:
//
//	column (−∞,+∞) → row [c, c]     row L=U      → free column, cost −L
//	column [0,+∞)  → row [−∞, c]    row (−∞, U]  → column [−∞,0], cost −U
//	column (−∞,0]  → row [c, +∞]    row [L, +∞)  → column [0,+∞], cost −L
//	column [0,0]   → row (−∞,+∞)    row (−∞,+∞)  → column [0,0], cost 0
func (m *Model) TransposeLp() {
	if m.Status.IsTransposed {
		return
	}
	primal := m.Lp
	numCol, numRow := primal.NumCol, primal.NumRow

	if float64(numCol)/float64(numRow) > transposeRatio {
		return
	}

	const inf = numeric.Inf

	// Primal columns become dual rows.
	dualRowLower := make([]float64, numCol)
	dualRowUpper := make([]float64, numCol)
	for j := 0; j < numCol; j++ {
		lower, upper := primal.ColLower[j], primal.ColUpper[j]
		switch {
		case lower == -inf && upper == inf:
			dualRowLower[j], dualRowUpper[j] = primal.ColCost[j], primal.ColCost[j]
		case lower == 0 && upper == inf:
			dualRowLower[j], dualRowUpper[j] = -inf, primal.ColCost[j]
		case lower == -inf && upper == 0:
			dualRowLower[j], dualRowUpper[j] = primal.ColCost[j], inf
		case lower == 0 && upper == 0:
			dualRowLower[j], dualRowUpper[j] = -inf, inf
		default:
			return // cancelled by column shape
		}
	}

	// Primal rows become dual columns.
	dualColLower := make([]float64, numRow)
	dualColUpper := make([]float64, numRow)
	dualCost := make([]float64, numRow)
	for i := 0; i < numRow; i++ {
		lower, upper := primal.RowLower[i], primal.RowUpper[i]
		switch {
		case lower == upper:
			dualColLower[i], dualColUpper[i], dualCost[i] = -inf, inf, -lower
		case lower == -inf && upper != inf:
			dualColLower[i], dualColUpper[i], dualCost[i] = -inf, 0, -upper
		case lower != -inf && upper == inf:
			dualColLower[i], dualColUpper[i], dualCost[i] = 0, inf, -lower
		case lower == -inf && upper == inf:
			dualColLower[i], dualColUpper[i], dualCost[i] = 0, 0, 0
		default:
			return // cancelled by row shape
		}
	}

	// Transpose the matrix by CSR construction from the primal CSC.
	nnz := len(primal.AIndex)
	work := make([]int, numRow)
	arStart := make([]int, numRow+1)
	arIndex := make([]int, nnz)
	arValue := make([]float64, nnz)
	for _, i := range primal.AIndex {
		work[i]++
	}
	for i := 1; i <= numRow; i++ {
		arStart[i] = arStart[i-1] + work[i-1]
	}
	copy(work, arStart[:numRow])
	for col := 0; col < numCol; col++ {
		for k := primal.AStart[col]; k < primal.AStart[col+1]; k++ {
			row := primal.AIndex[k]
			arIndex[work[row]] = col
			arValue[work[row]] = primal.AValue[k]
			work[row]++
		}
	}

	dual := m.SimplexLp
	dual.NumCol, dual.NumRow = numRow, numCol
	dual.AStart, dual.AIndex, dual.AValue = arStart, arIndex, arValue
	dual.ColCost = dualCost
	dual.ColLower, dual.ColUpper = dualColLower, dualColUpper
	dual.RowLower, dual.RowUpper = dualRowLower, dualRowUpper
	m.Scale.Reset(dual.NumCol, dual.NumRow)
	m.initialiseRandomVectors()

	m.UpdateStatus(ActionTranspose)
}
