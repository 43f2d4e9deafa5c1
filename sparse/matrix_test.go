package sparse_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsimplex/numeric"
	"github.com/katalvlaran/dsimplex/sparse"
)

// Shared fixture:
//
//	A = | 1 0 2 |
//	    | 0 3 4 |
//
// CSC: col0 {row0:1}, col1 {row1:3}, col2 {row0:2, row1:4}.
var (
	fixStart = []int{0, 1, 2, 4}
	fixIndex = []int{0, 1, 0, 1}
	fixValue = []float64{1, 3, 2, 4}
)

// ------------------------------------------------------------------------
// 1. Setup validation
// ------------------------------------------------------------------------

func TestSetup_RejectsMalformedInput(t *testing.T) {
	var m sparse.Matrix

	err := m.SetupLogical(-1, 2, fixStart, fixIndex, fixValue)
	require.ErrorIs(t, err, sparse.ErrBadDimensions)

	err = m.SetupLogical(3, 2, []int{0, 1, 2}, fixIndex, fixValue)
	require.ErrorIs(t, err, sparse.ErrBadStart)

	err = m.SetupLogical(3, 2, []int{0, 2, 1, 4}, fixIndex, fixValue)
	require.ErrorIs(t, err, sparse.ErrBadStart)

	err = m.SetupLogical(3, 2, fixStart, []int{0, 1, 0, 5}, fixValue)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)

	err = m.SetupLogical(3, 2, fixStart, fixIndex, []float64{1})
	require.ErrorIs(t, err, sparse.ErrEntryMismatch)
}

// ------------------------------------------------------------------------
// 2. CollectColumn: structural and logical gathers
// ------------------------------------------------------------------------

func TestCollectColumn(t *testing.T) {
	var m sparse.Matrix
	require.NoError(t, m.SetupLogical(3, 2, fixStart, fixIndex, fixValue))

	buf := sparse.NewVector(2)

	// Structural column 2 scaled by 0.5.
	require.NoError(t, m.CollectColumn(buf, 2, 0.5))
	require.Equal(t, 2, buf.Count)
	require.Equal(t, 1.0, buf.Array[0])
	require.Equal(t, 2.0, buf.Array[1])

	// Logical column 4 = e_1 scaled by -1 accumulates on top.
	require.NoError(t, m.CollectColumn(buf, 4, -1))
	require.Equal(t, 1.0, buf.Array[1])

	// Out of range.
	require.ErrorIs(t, m.CollectColumn(buf, 5, 1), sparse.ErrIndexOutOfRange)
}

func TestCollectColumn_CancellationKeepsIndex(t *testing.T) {
	var m sparse.Matrix
	require.NoError(t, m.SetupLogical(3, 2, fixStart, fixIndex, fixValue))

	buf := sparse.NewVector(2)
	require.NoError(t, m.CollectColumn(buf, 0, 1))  // row0 += 1
	require.NoError(t, m.CollectColumn(buf, 3, -1)) // logical row0 -= 1
	require.Equal(t, 1, buf.Count)
	require.Equal(t, numeric.Zero, buf.Array[0])
}

// ------------------------------------------------------------------------
// 3. PriceByColumn
// ------------------------------------------------------------------------

func TestPriceByColumn(t *testing.T) {
	var m sparse.Matrix
	require.NoError(t, m.SetupLogical(3, 2, fixStart, fixIndex, fixValue))

	pi := sparse.NewVector(2)
	pi.Add(0, 1)
	pi.Add(1, 2)

	out := sparse.NewVector(3)
	m.PriceByColumn(out, pi)

	// πᵀA = (1, 6, 1·2+2·4) = (1, 6, 10)
	require.Equal(t, 1.0, out.Array[0])
	require.Equal(t, 6.0, out.Array[1])
	require.Equal(t, 10.0, out.Array[2])
	require.Equal(t, 3, out.Count)
}

// ------------------------------------------------------------------------
// 4. Row partition maintenance across pivots
// ------------------------------------------------------------------------

func sortedCopy(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)

	return out
}

func TestUpdate_MovesColumnsAcrossPartition(t *testing.T) {
	var m sparse.Matrix
	require.NoError(t, m.SetupLogical(3, 2, fixStart, fixIndex, fixValue))

	// All structurals start nonbasic.
	require.Equal(t, []int{0, 2}, sortedCopy(m.RowNonbasic(0)))
	require.Equal(t, []int{1, 2}, sortedCopy(m.RowNonbasic(1)))

	// Column 2 enters the basis, logical 3 leaves (not stored: no-op side).
	m.Update(2, 3)
	require.Equal(t, []int{0}, sortedCopy(m.RowNonbasic(0)))
	require.Equal(t, []int{1}, sortedCopy(m.RowNonbasic(1)))

	// Column 0 enters, column 2 comes back out.
	m.Update(0, 2)
	require.Equal(t, []int{2}, sortedCopy(m.RowNonbasic(0)))
	require.Equal(t, []int{1, 2}, sortedCopy(m.RowNonbasic(1)))
}

func TestSetup_PartitionHonoursFlags(t *testing.T) {
	var m sparse.Matrix
	// Column 1 basic, columns 0 and 2 nonbasic.
	require.NoError(t, m.Setup(3, 2, fixStart, fixIndex, fixValue, []int{1, 0, 1}))
	require.Equal(t, []int{0, 2}, sortedCopy(m.RowNonbasic(0)))
	require.Equal(t, []int{2}, sortedCopy(m.RowNonbasic(1)))
}

// ------------------------------------------------------------------------
// 5. Vector behaviour
// ------------------------------------------------------------------------

func TestVectorClearIsSparse(t *testing.T) {
	v := sparse.NewVector(4)
	v.Add(1, 2.5)
	v.Add(3, -1)
	require.Equal(t, 2, v.Count)
	require.Equal(t, 7.25, v.Norm2())

	v.Clear()
	require.Equal(t, 0, v.Count)
	for i := 0; i < v.Dim(); i++ {
		require.Zero(t, v.Array[i])
	}
}

func TestVectorCopyFrom(t *testing.T) {
	src := sparse.NewVector(4)
	src.Add(0, 1)
	src.Add(2, 3)

	dst := sparse.NewVector(4)
	dst.Add(1, 9) // stale content must vanish
	dst.CopyFrom(src)

	require.Equal(t, 2, dst.Count)
	require.Equal(t, 1.0, dst.Array[0])
	require.Equal(t, 0.0, dst.Array[1])
	require.Equal(t, 3.0, dst.Array[2])
}
