// Package matrix: Dense is a concrete, row-major implementation of the Matrix
// interface, storing elements in a flat slice for performance and cache
// friendliness.

package matrix

import (
	"fmt"
	"math/rand"
)

// displayLimit caps the size at which String prints full contents; larger
// matrices are summarized by shape only to keep logs readable.
const displayLimit = 10

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]int64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows builds a Dense matrix from row slices.
// Stage 1 (Validate): reject empty input and ragged rows (ErrBadShape).
// Stage 2 (Execute): copy every row into the flat backing slice.
// The input slices are copied, never aliased; mutating them afterwards does
// not affect the returned matrix.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	// Reject degenerate input: no rows, or an empty first row.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	// Enforce rectangularity before allocating.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
	}
	m := &Dense{r: r, c: c, data: make([]int64, r*c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Random returns an r×c Dense with elements uniformly drawn from
// [-maxAbs, +maxAbs]. The seed makes the output reproducible, which matters
// for deterministic tests and benchmarks; maxAbs <= 0 yields a zero matrix.
// Complexity: O(r*c) time and memory.
func Random(rows, cols int, maxAbs int64, seed int64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if maxAbs <= 0 {
		return m, nil // nothing to draw; zero matrix is a valid sample
	}
	rng := rand.New(rand.NewSource(seed))
	span := 2*maxAbs + 1 // values in [-maxAbs, +maxAbs]
	for idx := range m.data {
		m.data[idx] = rng.Int63n(span) - maxAbs
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]int64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Matrices larger than displayLimit in either dimension are summarized by
// shape only; full dumps of big operands drown logs without telling anything.
// Complexity: O(r*c) for string construction on small matrices, O(1) otherwise.
func (m *Dense) String() string {
	if m.r > displayLimit || m.c > displayLimit {
		return fmt.Sprintf("Dense(%dx%d)", m.r, m.c)
	}
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%d", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
