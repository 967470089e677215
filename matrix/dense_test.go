package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive dimensions are
// rejected with ErrInvalidDimensions before any allocation happens.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must error")
}

// TestNewDense_ZeroFilled verifies that a fresh Dense starts at all zeros.
func TestNewDense_ZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, int64(0), v)
		}
	}
}

// TestNewDenseFromRows_RoundTrip verifies element placement and that the
// input slices are copied, not aliased.
func TestNewDenseFromRows_RoundTrip(t *testing.T) {
	rows := [][]int64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(6), v)

	// Mutating the source must not affect the matrix.
	rows[0][0] = 99
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v, "matrix must own its storage")
}

// TestNewDenseFromRows_BadShape verifies ragged and empty inputs are rejected.
func TestNewDenseFromRows_BadShape(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape, "nil input must error")

	_, err = matrix.NewDenseFromRows([][]int64{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape, "empty row must error")

	_, err = matrix.NewDenseFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape, "ragged rows must error")
}

// TestDense_AtSet_OutOfRange verifies both indexers return ErrOutOfRange for
// every out-of-bounds corner instead of panicking.
func TestDense_AtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])

		err = m.Set(idx[0], idx[1], 7)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", idx[0], idx[1])
	}
}

// TestDense_Clone_Independence verifies Clone produces a deep copy.
func TestDense_Clone_Independence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 42))

	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v, "clone must not observe writes to the original")
}

// TestIdentity verifies ones on the diagonal and zeros elsewhere.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, int64(1), v)
			} else {
				require.Equal(t, int64(0), v)
			}
		}
	}
}

// TestRandom_BoundsAndReproducibility verifies values stay within
// [-maxAbs, +maxAbs] and that an identical seed reproduces the same matrix.
func TestRandom_BoundsAndReproducibility(t *testing.T) {
	const maxAbs = int64(50)
	a, err := matrix.Random(8, 5, maxAbs, 1)
	require.NoError(t, err)

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			require.LessOrEqual(t, v, maxAbs)
			require.GreaterOrEqual(t, v, -maxAbs)
		}
	}

	b, err := matrix.Random(8, 5, maxAbs, 1)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, b), "same seed must reproduce the same matrix")

	c, err := matrix.Random(8, 5, maxAbs, 2)
	require.NoError(t, err)
	require.False(t, matrix.Equal(a, c), "different seeds should diverge")
}

// TestDense_String verifies small matrices print in full while large ones are
// summarized by shape only.
func TestDense_String(t *testing.T) {
	small, err := matrix.NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", small.String())

	big, err := matrix.NewDense(11, 11)
	require.NoError(t, err)
	require.True(t, strings.Contains(big.String(), "11x11"), "large matrices print shape only")
}
