// SPDX-License-Identifier: MIT
// Package matrix: block-level helpers for divide-and-conquer kernels.
// Submatrix/CombineQuadrants split and rebuild square matrices around their
// midpoint; Pad/Extract convert between caller-shaped operands and the square
// power-of-two working copies the recursive engine requires.

package matrix

import "fmt"

// Operation tags for block helpers (see matrixErrorf in ops.go).
const (
	opSubmatrix = "Submatrix"
	opCombine   = "CombineQuadrants"
	opPad       = "Pad"
	opExtract   = "Extract"
)

// Submatrix copies the size×size window of m anchored at (rowOff, colOff)
// into a fresh Dense: S[i][j] = m[rowOff+i][colOff+j].
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); require size > 0, non-negative offsets and
//     rowOff+size ≤ Rows, colOff+size ≤ Cols (ErrOutOfRange otherwise).
//   - Stage 2: Fast-path row-block copies for *Dense; At/Set fallback.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (size ≤ 0), ErrOutOfRange.
// Complexity: Time O(size²), Space O(size²).
func Submatrix(m Matrix, rowOff, colOff, size int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if size <= 0 {
		return nil, matrixErrorf(opSubmatrix, ErrInvalidDimensions)
	}
	// The window must lie fully inside m.
	if rowOff < 0 || colOff < 0 || rowOff+size > m.Rows() || colOff+size > m.Cols() {
		return nil, matrixErrorf(opSubmatrix, ErrOutOfRange)
	}

	res, err := NewDense(size, size)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	// Fast path: copy whole row segments from the flat backing slice.
	if dm, ok := m.(*Dense); ok {
		var srcBase int
		for i := 0; i < size; i++ {
			srcBase = (rowOff+i)*dm.c + colOff
			copy(res.data[i*size:(i+1)*size], dm.data[srcBase:srcBase+size])
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var v int64
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v, err = m.At(rowOff+i, colOff+j)
			if err != nil {
				return nil, matrixErrorf(opSubmatrix, fmt.Errorf("At(%d,%d): %w", rowOff+i, colOff+j, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opSubmatrix, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// CombineQuadrants assembles four equal square blocks into one matrix of
// twice their size: c11 top-left, c12 top-right, c21 bottom-left, c22
// bottom-right, with exact index correspondence (no overlap).
//
// Implementation:
//   - Stage 1: all four blocks non-nil, square, and of identical size
//     (ErrDimensionMismatch otherwise).
//   - Stage 2: Fast-path row-block copies when all blocks are *Dense;
//     At/Set fallback with fixed quadrant order c11→c12→c21→c22.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(n²) for n = 2·half, Space O(n²).
func CombineQuadrants(c11, c12, c21, c22 Matrix) (Matrix, error) {
	quads := [4]Matrix{c11, c12, c21, c22}
	for _, q := range quads {
		if err := ValidateNotNil(q); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
		if err := ValidateSquare(q); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
	}
	half := c11.Rows()
	for _, q := range quads[1:] {
		if q.Rows() != half {
			return nil, matrixErrorf(opCombine, ErrDimensionMismatch)
		}
	}

	n := 2 * half
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	// Fast path: every block is *Dense → copy row segments directly.
	d11, ok11 := c11.(*Dense)
	d12, ok12 := c12.(*Dense)
	d21, ok21 := c21.(*Dense)
	d22, ok22 := c22.(*Dense)
	if ok11 && ok12 && ok21 && ok22 {
		var dstTop, dstBot int
		for i := 0; i < half; i++ {
			dstTop = i * n                          // start of row i in the top half
			dstBot = (i + half) * n                 // start of row i in the bottom half
			copy(res.data[dstTop:dstTop+half], d11.data[i*half:(i+1)*half])
			copy(res.data[dstTop+half:dstTop+n], d12.data[i*half:(i+1)*half])
			copy(res.data[dstBot:dstBot+half], d21.data[i*half:(i+1)*half])
			copy(res.data[dstBot+half:dstBot+n], d22.data[i*half:(i+1)*half])
		}

		return res, nil
	}

	// Fallback: interface path; place each quadrant at its (rowOff, colOff).
	place := func(q Matrix, rowOff, colOff int) error {
		var v int64
		for i := 0; i < half; i++ {
			for j := 0; j < half; j++ {
				v, err = q.At(i, j)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				if err = res.Set(rowOff+i, colOff+j, v); err != nil {
					return fmt.Errorf("Set(%d,%d): %w", rowOff+i, colOff+j, err)
				}
			}
		}
		return nil
	}
	if err = place(c11, 0, 0); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err = place(c12, 0, half); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err = place(c21, half, 0); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err = place(c22, half, half); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	return res, nil
}

// Pad returns a size×size matrix holding m in its top-left corner and zeros
// elsewhere. Zero-padding is semantically neutral for multiplication: padded
// rows and columns contribute zero to every dot product in the unpadded
// result region. Padding is idempotent — when m is already size×size the
// returned matrix equals m (a fresh copy, so the caller's operand is never
// aliased by the engine's working set).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (size smaller than either
// dimension of m), ErrInvalidDimensions (size ≤ 0).
// Complexity: Time O(size²), Space O(size²).
func Pad(m Matrix, size int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if size <= 0 {
		return nil, matrixErrorf(opPad, ErrInvalidDimensions)
	}
	// Padding can only grow; shrinking is Extract's job.
	if size < m.Rows() || size < m.Cols() {
		return nil, matrixErrorf(opPad, ErrDimensionMismatch)
	}

	res, err := NewDense(size, size)
	if err != nil {
		return nil, matrixErrorf(opPad, err)
	}

	rows, cols := m.Rows(), m.Cols()
	// Fast path: copy row segments from the flat backing slice.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(res.data[i*size:i*size+cols], dm.data[i*cols:(i+1)*cols])
		}

		return res, nil
	}

	// Fallback: interface path.
	var v int64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opPad, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opPad, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Extract returns the rows×cols top-left window of m — the inverse of Pad,
// used to recover the true-shaped result after the recursion finishes.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (non-positive target shape),
// ErrOutOfRange (window larger than m).
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Extract(m Matrix, rows, cols int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExtract, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opExtract, ErrInvalidDimensions)
	}
	if rows > m.Rows() || cols > m.Cols() {
		return nil, matrixErrorf(opExtract, ErrOutOfRange)
	}

	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opExtract, err)
	}

	// Fast path: copy row segments from the flat backing slice.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(res.data[i*cols:(i+1)*cols], dm.data[i*dm.c:i*dm.c+cols])
		}

		return res, nil
	}

	// Fallback: interface path.
	var v int64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opExtract, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opExtract, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// NextPowerOfTwo returns the smallest power of two ≥ n, with the convention
// that n ≤ 1 maps to 1.
// Complexity: O(log n).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	power := 1
	for power < n {
		power *= 2
	}

	return power
}
