package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dsimplex/numeric"
)

// Scaling windows, from the original engine.
const (
	// scaleSkipMin/scaleSkipMax bound the |A| window inside which matrix
	// scaling is skipped entirely.
	scaleSkipMin = 0.2
	scaleSkipMax = 5.0

	// scaleIncludeCostBelow: column costs join the equilibration scan
	// when the smallest nonzero |c| is under this.
	scaleIncludeCostBelow = 0.1

	// scalePasses is the fixed equilibration iteration count.
	scalePasses = 6

	// costScaleMin/costScaleMax bound the max-|cost| window inside which
	// costs are left unscaled; maxCostScale caps the applied factor.
	costScaleMin = 1.0 / 16
	costScaleMax = 16.0
	maxCostScale = 1024.0
)

// ScaleLp equilibrates the working LP: iterative geometric-mean column
// and row factors, rounded to powers of two, applied to the matrix,
// costs and finite bounds. When every |A_ij| already sits in
// [0.2, 5] the matrix is left untouched and only the SCALE action is
// recorded, so scaling is idempotent and cheap on well-posed inputs.
func (m *Model) ScaleLp() {
	if m.Status.IsScaled {
		return
	}
	defer m.Clocks.start(ClockScale)()

	sl := m.SimplexLp
	m.Scale.Reset(sl.NumCol, sl.NumRow)
	numCol, numRow := sl.NumCol, sl.NumRow
	colScale, rowScale := m.Scale.Col, m.Scale.Row

	// Range of |A|: inside the skip window there is nothing to gain.
	const inf = numeric.Inf
	min0, max0 := inf, 0.0
	for _, v := range sl.AValue {
		a := math.Abs(v)
		min0 = math.Min(min0, a)
		max0 = math.Max(max0, a)
	}
	if min0 >= scaleSkipMin && max0 <= scaleSkipMax {
		m.UpdateStatus(ActionScale)

		return
	}

	// Include costs in the column scan when the smallest nonzero cost is
	// small enough to matter.
	minNzCost := inf
	for _, c := range sl.ColCost {
		if c != 0 {
			minNzCost = math.Min(minNzCost, math.Abs(c))
		}
	}
	includeCost := minNzCost < scaleIncludeCostBelow

	rowMin := make([]float64, numRow)
	rowMax := make([]float64, numRow)
	for pass := 0; pass < scalePasses; pass++ {
		for i := range rowMin {
			rowMin[i] = inf
			rowMax[i] = 1 / inf
		}
		for col := 0; col < numCol; col++ {
			colMin, colMax := inf, 1/inf
			if cost := math.Abs(sl.ColCost[col]); includeCost && cost != 0 {
				colMin = math.Min(colMin, cost)
				colMax = math.Max(colMax, cost)
			}
			for k := sl.AStart[col]; k < sl.AStart[col+1]; k++ {
				v := math.Abs(sl.AValue[k]) * rowScale[sl.AIndex[k]]
				colMin = math.Min(colMin, v)
				colMax = math.Max(colMax, v)
			}
			colScale[col] = 1 / math.Sqrt(colMin*colMax)
			for k := sl.AStart[col]; k < sl.AStart[col+1]; k++ {
				i := sl.AIndex[k]
				v := math.Abs(sl.AValue[k]) * colScale[col]
				rowMin[i] = math.Min(rowMin[i], v)
				rowMax[i] = math.Max(rowMax[i], v)
			}
		}
		for i := 0; i < numRow; i++ {
			rowScale[i] = 1 / math.Sqrt(rowMin[i]*rowMax[i])
		}
	}

	// Round every factor to a power of two so the rescale is exact.
	for col := 0; col < numCol; col++ {
		colScale[col] = numeric.NearestPowerOfTwo(colScale[col])
	}
	for i := 0; i < numRow; i++ {
		rowScale[i] = numeric.NearestPowerOfTwo(rowScale[i])
	}

	// Apply: matrix, costs, then finite bounds (infinite sentinels are
	// never rescaled).
	for col := 0; col < numCol; col++ {
		for k := sl.AStart[col]; k < sl.AStart[col+1]; k++ {
			sl.AValue[k] *= colScale[col] * rowScale[sl.AIndex[k]]
		}
	}
	for col := 0; col < numCol; col++ {
		if sl.ColLower[col] != -inf {
			sl.ColLower[col] /= colScale[col]
		}
		if sl.ColUpper[col] != inf {
			sl.ColUpper[col] /= colScale[col]
		}
		sl.ColCost[col] *= colScale[col]
	}
	for i := 0; i < numRow; i++ {
		if sl.RowLower[i] != -inf {
			sl.RowLower[i] *= rowScale[i]
		}
		if sl.RowUpper[i] != inf {
			sl.RowUpper[i] *= rowScale[i]
		}
	}

	m.UpdateStatus(ActionScale)
}

// ScaleCosts divides all costs by a power-of-two factor when the
// largest |cost| falls outside [1/16, 16]; the factor is capped at
// 1024. Scaling costs down effectively loosens the dual tolerance, so
// the cap keeps that effect bounded.
func (m *Model) ScaleCosts() {
	sl := m.SimplexLp
	maxNzCost := 0.0
	if sl.NumCol > 0 {
		maxNzCost = floats.Max(absCosts(sl.ColCost))
	}

	costScale := 1.0
	if maxNzCost > 0 && (maxNzCost < costScaleMin || maxNzCost > costScaleMax) {
		costScale = math.Min(numeric.NearestPowerOfTwo(maxNzCost), maxCostScale)
	}
	m.Scale.Cost = costScale
	if costScale == 1 {
		return
	}
	for col := range sl.ColCost {
		sl.ColCost[col] /= costScale
	}
}

// absCosts returns |c| for the max scan; zero costs stay zero and so
// never win the scan.
func absCosts(c []float64) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = math.Abs(v)
	}

	return out
}
