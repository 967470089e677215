package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestSubmatrix_Window verifies S[i][j] = M[rowOff+i][colOff+j] for an
// interior window.
func TestSubmatrix_Window(t *testing.T) {
	m := mustDense(t, [][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	s, err := matrix.Submatrix(m, 1, 2, 2)
	require.NoError(t, err)
	requireRows(t, [][]int64{{7, 8}, {11, 12}}, s)
}

// TestSubmatrix_OutOfRange verifies windows exceeding matrix bounds and
// non-positive sizes are rejected.
func TestSubmatrix_OutOfRange(t *testing.T) {
	m := mustDense(t, [][]int64{{1, 2}, {3, 4}})

	_, err := matrix.Submatrix(m, 1, 1, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange, "window past the edge")

	_, err = matrix.Submatrix(m, -1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange, "negative offset")

	_, err = matrix.Submatrix(m, 0, 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero size")

	_, err = matrix.Submatrix(nil, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCombineQuadrants_Placement verifies exact index correspondence of the
// four blocks in the combined matrix.
func TestCombineQuadrants_Placement(t *testing.T) {
	c11 := mustDense(t, [][]int64{{1, 2}, {3, 4}})
	c12 := mustDense(t, [][]int64{{5, 6}, {7, 8}})
	c21 := mustDense(t, [][]int64{{9, 10}, {11, 12}})
	c22 := mustDense(t, [][]int64{{13, 14}, {15, 16}})

	r, err := matrix.CombineQuadrants(c11, c12, c21, c22)
	require.NoError(t, err)
	requireRows(t, [][]int64{
		{1, 2, 5, 6},
		{3, 4, 7, 8},
		{9, 10, 13, 14},
		{11, 12, 15, 16},
	}, r)
}

// TestCombineQuadrants_SplitRoundTrip verifies Submatrix → CombineQuadrants
// reconstructs the original square matrix exactly.
func TestCombineQuadrants_SplitRoundTrip(t *testing.T) {
	m, err := matrix.Random(8, 8, 100, 7)
	require.NoError(t, err)

	half := 4
	q11, err := matrix.Submatrix(m, 0, 0, half)
	require.NoError(t, err)
	q12, err := matrix.Submatrix(m, 0, half, half)
	require.NoError(t, err)
	q21, err := matrix.Submatrix(m, half, 0, half)
	require.NoError(t, err)
	q22, err := matrix.Submatrix(m, half, half, half)
	require.NoError(t, err)

	r, err := matrix.CombineQuadrants(q11, q12, q21, q22)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, r), "split/combine must round-trip")
}

// TestCombineQuadrants_MismatchedBlocks verifies unequal block sizes fail.
func TestCombineQuadrants_MismatchedBlocks(t *testing.T) {
	small := mustDense(t, [][]int64{{1}})
	big := mustDense(t, [][]int64{{1, 2}, {3, 4}})

	_, err := matrix.CombineQuadrants(big, big, big, small)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.CombineQuadrants(big, nil, big, big)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPad_ZeroFill verifies the original occupies the top-left corner and
// every padded entry is zero.
func TestPad_ZeroFill(t *testing.T) {
	m := mustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}}) // 2×3

	p, err := matrix.Pad(m, 4)
	require.NoError(t, err)
	requireRows(t, [][]int64{
		{1, 2, 3, 0},
		{4, 5, 6, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, p)
}

// TestPad_Idempotent verifies padding a matrix already at the target size
// returns an equal matrix, and that Extract inverts Pad exactly.
func TestPad_Idempotent(t *testing.T) {
	m, err := matrix.Random(4, 4, 100, 11)
	require.NoError(t, err)

	p, err := matrix.Pad(m, 4)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, p), "padding at own size must be a no-op")

	// Pad then Extract at the original shape recovers the original exactly.
	rect, err := matrix.Random(3, 5, 100, 13)
	require.NoError(t, err)
	padded, err := matrix.Pad(rect, 8)
	require.NoError(t, err)
	back, err := matrix.Extract(padded, 3, 5)
	require.NoError(t, err)
	require.True(t, matrix.Equal(rect, back), "Extract must invert Pad")
}

// TestPad_Shrinking verifies a target smaller than the operand is rejected.
func TestPad_Shrinking(t *testing.T) {
	m := mustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Pad(m, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Pad(m, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestExtract_Window verifies the top-left window copy and bounds checks.
func TestExtract_Window(t *testing.T) {
	m := mustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	r, err := matrix.Extract(m, 2, 2)
	require.NoError(t, err)
	requireRows(t, [][]int64{{1, 2}, {4, 5}}, r)

	_, err = matrix.Extract(m, 4, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Extract(m, 0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNextPowerOfTwo covers the n ≤ 1 convention, exact powers and
// in-between values.
func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{
		-3: 1,
		0:  1,
		1:  1,
		2:  2,
		3:  4,
		4:  4,
		5:  8,
		63: 64,
		64: 64,
		65: 128,
	}
	for n, want := range cases {
		require.Equal(t, want, matrix.NextPowerOfTwo(n), "NextPowerOfTwo(%d)", n)
	}
}
