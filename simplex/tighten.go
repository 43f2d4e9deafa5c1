package simplex

import (
	"math"

	"github.com/katalvlaran/dsimplex/numeric"
)

// Tightening constants, from the original engine.
const (
	// tightenBigB treats a bound beyond this magnitude as infinite.
	tightenBigB = 1e10

	// tightenMaxPasses bounds the fixed-point iteration.
	tightenMaxPasses = 10

	// tightenActivityMargin widens computed row activities.
	tightenActivityMargin = 1e-8

	// tightenLargeMargin is the extra relative margin on activities
	// beyond 1e8 in magnitude.
	tightenLargeMargin = 1e-12

	// tightenImprove is the minimum improvement that counts as a change.
	tightenImprove = 1e-12

	// tightenUseTolerance drives the final relax-back: ranges shrunk
	// below it are relaxed by 100× this value toward the originals.
	tightenUseTolerance = 1e-3

	// tightenRedundancySlack accepts a row as redundant.
	tightenRedundancySlack = 1e-7

	// tightenInfActivity stands in for one infinite contribution when
	// testing row redundancy.
	tightenInfActivity = 1e31
)

// TightenLp shrinks column bounds from row activity ranges: for each
// non-free row the minimal and maximal achievable activity imply bounds
// on every participating column. Passes repeat until none changes a
// bound (at most ten); bounds tightened into a near-empty range are
// then relaxed back toward — never past — the originals.
func (m *Model) TightenLp() {
	if m.Status.IsTightened {
		return
	}
	sl := m.SimplexLp
	numCol, numRow := sl.NumCol, sl.NumRow

	// Row-wise copy of A.
	nnz := len(sl.AIndex)
	work := make([]int, numRow)
	arStart := make([]int, numRow+1)
	arIndex := make([]int, nnz)
	arValue := make([]float64, nnz)
	for _, i := range sl.AIndex {
		work[i]++
	}
	for i := 1; i <= numRow; i++ {
		arStart[i] = arStart[i-1] + work[i-1]
	}
	copy(work, arStart[:numRow])
	for col := 0; col < numCol; col++ {
		for k := sl.AStart[col]; k < sl.AStart[col+1]; k++ {
			row := sl.AIndex[k]
			arIndex[work[row]] = col
			arValue[work[row]] = sl.AValue[k]
			work[row]++
		}
	}

	colLower0 := append([]float64(nil), sl.ColLower...)
	colUpper0 := append([]float64(nil), sl.ColUpper...)

	for pass := 0; pass < tightenMaxPasses; pass++ {
		changed := 0
		for row := 0; row < numRow; row++ {
			if sl.RowLower[row] < -tightenBigB && sl.RowUpper[row] > tightenBigB {
				continue // free row
			}

			// Activity range of the row, counting infinite contributions.
			ninfU, ninfL := 0, 0
			xmaxU, xminL := 0.0, 0.0
			for k := arStart[row]; k < arStart[row+1]; k++ {
				col := arIndex[k]
				value := arValue[k]
				upper, lower := sl.ColUpper[col], sl.ColLower[col]
				if value < 0 {
					upper, lower = -sl.ColLower[col], -sl.ColUpper[col]
				}
				value = math.Abs(value)
				if upper < tightenBigB {
					xmaxU += upper * value
				} else {
					ninfU++
				}
				if lower > -tightenBigB {
					xminL += lower * value
				} else {
					ninfL++
				}
			}

			xmaxU += tightenActivityMargin * math.Abs(xmaxU)
			xminL -= tightenActivityMargin * math.Abs(xminL)
			xminLmargin, xmaxUmargin := 0.0, 0.0
			if math.Abs(xminL) > 1e8 {
				xminLmargin = tightenLargeMargin * math.Abs(xminL)
			}
			if math.Abs(xmaxU) > 1e8 {
				xmaxUmargin = tightenLargeMargin * math.Abs(xmaxU)
			}

			// Redundant row: its bounds cannot cut the activity range.
			compU := xmaxU + float64(ninfU)*tightenInfActivity
			compL := xminL - float64(ninfL)*tightenInfActivity
			if compU <= sl.RowUpper[row]+tightenRedundancySlack &&
				compL >= sl.RowLower[row]-tightenRedundancySlack {
				continue
			}

			rowL, rowU := sl.RowLower[row], sl.RowUpper[row]
			for k := arStart[row]; k < arStart[row+1]; k++ {
				value := arValue[k]
				col := arIndex[k]
				colL, colU := sl.ColLower[col], sl.ColUpper[col]
				newL, newU := -numeric.Inf, numeric.Inf

				if value > 0 {
					if rowL > -tightenBigB && ninfU <= 1 && (ninfU == 0 || colU > tightenBigB) {
						newL = (rowL-xmaxU)/value + float64(1-ninfU)*colU - xmaxUmargin
					}
					if rowU < tightenBigB && ninfL <= 1 && (ninfL == 0 || colL < -tightenBigB) {
						newU = (rowU-xminL)/value + float64(1-ninfL)*colL + xminLmargin
					}
				} else {
					if rowL > -tightenBigB && ninfU <= 1 && (ninfU == 0 || colL < -tightenBigB) {
						newU = (rowL-xmaxU)/value + float64(1-ninfU)*colL + xmaxUmargin
					}
					if rowU < tightenBigB && ninfL <= 1 && (ninfL == 0 || colU > tightenBigB) {
						newL = (rowU-xminL)/value + float64(1-ninfL)*colU - xminLmargin
					}
				}

				if newU < colU-tightenImprove && newU < tightenBigB {
					sl.ColUpper[col] = math.Max(newU, colL)
					changed++
				}
				if newL > colL+tightenImprove && newL > -tightenBigB {
					sl.ColLower[col] = math.Min(newL, colU)
					changed++
				}
			}
		}
		if changed == 0 {
			break
		}
	}

	// Relax tightened bounds back toward the originals when the range
	// collapsed below the tolerance; never past the original bound.
	relax := 100.0 * tightenUseTolerance
	for col := 0; col < numCol; col++ {
		if colUpper0[col] <= colLower0[col]+tightenUseTolerance {
			continue
		}
		if sl.ColUpper[col]-sl.ColLower[col] < tightenUseTolerance+tightenActivityMargin {
			sl.ColLower[col] = math.Max(colLower0[col], sl.ColLower[col]-relax)
			sl.ColUpper[col] = math.Min(colUpper0[col], sl.ColUpper[col]+relax)
		}
	}

	m.UpdateStatus(ActionTighten)
}
