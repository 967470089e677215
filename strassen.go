// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// Multiply — Strassen matrix product C = A × B.
//
// Description:
//
//	Multiply is the single public entry point of the engine. It accepts two
//	rectangular int64 matrices A (r1×c1) and B (r2×c2) and returns their
//	product C (r1×c2) under standard matrix multiplication semantics.
//
// Algorithm outline:
//  1. Validate multiplicability: both operands present, no zero dimension,
//     c1 == r2. Fail with ErrIncompatibleShapes otherwise.
//  2. paddedSize = NextPowerOfTwo(max(r1, c1, r2, c2)).
//  3. Zero-pad both operands independently to paddedSize×paddedSize; the
//     caller's matrices are never touched again.
//  4. Recurse: n ≤ Threshold delegates to the standard triple-loop product;
//     otherwise split into quadrants, compute the seven Strassen products,
//     and recombine.
//  5. Extract the r1×c2 top-left window of the padded result.
//
// Inputs:
//   - a, b : operand matrices (any Matrix implementation; Dense is fastest).
//   - opts : per-call configuration; nil selects DefaultOptions().
//
// Returns:
//   - matrix.Matrix: freshly allocated r1×c2 product.
//
// Errors:
//   - ErrIncompatibleShapes — operands cannot be multiplied (checked before
//     any computation begins).
//   - ErrBadThreshold       — negative Options.Threshold (zero selects the
//     default).
//
// Determinism:
//   - Sequential and parallel modes compute the exact same formulas on
//     independent operands and produce identical results.
//
// Complexity:
//   - Time O(n^log₂7) for n = paddedSize; Space O(n²) amortized — quadrant
//     temporaries form a geometric series n², n²/4, n²/16, … and each lives
//     only for the duration of its enclosing call frame.
func Multiply(a, b matrix.Matrix, opts *Options) (matrix.Matrix, error) {
	// Resolve configuration: nil opts and zero fields mean defaults.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Threshold < 1 {
		return nil, fmt.Errorf("Multiply: %w", ErrBadThreshold)
	}
	if cfg.ParallelDepth <= 0 {
		cfg.ParallelDepth = DefaultParallelDepth
	}

	// Precondition: reject non-multiplicable operands before any allocation.
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("Multiply: %w", ErrIncompatibleShapes)
	}

	// Normalize both operands to a common square power-of-two working size.
	rows, cols := a.Rows(), b.Cols()
	size := matrix.NextPowerOfTwo(maxDim(a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	pa, err := matrix.Pad(a, size)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	pb, err := matrix.Pad(b, size)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	// Run the recursion on the padded pair.
	var prod matrix.Matrix
	if cfg.Parallel {
		prod, err = recurseParallel(pa, pb, cfg.Threshold, cfg.ParallelDepth)
	} else {
		prod, err = recurse(pa, pb, cfg.Threshold)
	}
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	// Recover the true-shaped result.
	res, err := matrix.Extract(prod, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	return res, nil
}

// recurse is the sequential Strassen recursion over square power-of-two
// matrices of identical size n.
//
// Base case: n ≤ threshold → standard triple-loop product.
// Recursive case: split A and B at the midpoint, compute
//
//	M1 = (A11+A22)(B11+B22)
//	M2 = (A21+A22)B11
//	M3 = A11(B12−B22)
//	M4 = A22(B21−B11)
//	M5 = (A11+A12)B22
//	M6 = (A21−A11)(B11+B12)
//	M7 = (A12−A22)(B21+B22)
//
// and assemble the result quadrants from them. The operand pairs are fixed:
// exactly these seven products preserve the 7-multiply count that yields the
// O(n^log₂7) bound — reassociating them breaks the asymptotic guarantee.
//
// Every call operates on freshly allocated, independently owned matrices;
// there is no shared mutable state between branches.
func recurse(a, b matrix.Matrix, threshold int) (matrix.Matrix, error) {
	n := a.Rows()

	// Base case: below the threshold the standard product wins on constants.
	if n <= threshold {
		return matrix.Mul(a, b)
	}

	// Split both operands into quadrants.
	half := n / 2
	aq, err := splitQuadrants(a, half)
	if err != nil {
		return nil, err
	}
	bq, err := splitQuadrants(b, half)
	if err != nil {
		return nil, err
	}

	// Compute the seven products in fixed order M1..M7.
	var m [7]matrix.Matrix
	var left, right matrix.Matrix
	for i, operands := range strassenOperands {
		left, right, err = operands(aq, bq)
		if err != nil {
			return nil, err
		}
		m[i], err = recurse(left, right, threshold)
		if err != nil {
			return nil, err
		}
	}

	// Assemble and combine the result quadrants.
	return assembleQuadrants(m)
}

// quadrants indexes the four blocks of a split square matrix.
type quadrants struct {
	q11, q12, q21, q22 matrix.Matrix
}

// splitQuadrants extracts the four half×half blocks of a square matrix of
// even size 2·half. Failure here means the engine violated its own
// power-of-two invariant, not a user error.
func splitQuadrants(m matrix.Matrix, half int) (quadrants, error) {
	var q quadrants
	var err error
	if q.q11, err = matrix.Submatrix(m, 0, 0, half); err != nil {
		return q, err
	}
	if q.q12, err = matrix.Submatrix(m, 0, half, half); err != nil {
		return q, err
	}
	if q.q21, err = matrix.Submatrix(m, half, 0, half); err != nil {
		return q, err
	}
	if q.q22, err = matrix.Submatrix(m, half, half, half); err != nil {
		return q, err
	}

	return q, nil
}

// branchOperands builds the two operands of one Strassen product from the
// quadrants of A and B. Each branch reads only its own quadrant copies, which
// is what makes the seven branches independently evaluable.
type branchOperands func(a, b quadrants) (left, right matrix.Matrix, err error)

// strassenOperands lists the seven operand builders in fixed order M1..M7.
var strassenOperands = [7]branchOperands{
	// M1 = (A11+A22)(B11+B22)
	func(a, b quadrants) (matrix.Matrix, matrix.Matrix, error) {
		l, err := matrix.Add(a.q11, a.q22)
		if err != nil {
			return nil, nil, err
		}
		r, err := matrix.Add(b.q11, b.q22)
		if err != nil {
			return nil, nil, err
		}
		return l, r, nil
	},
	// M2 = (A21+A22)B11
	func(a, b quadrants) (matrix.Matrix, matrix.Matrix, error) {
		l, err := matrix.Add(a.q21, a.q22)
		if err != nil {
			return nil, nil, err
		}
		return l, b.q11, nil
	},
	// M3 = A11(B12−B22)
	func(a, b quadrants) (matrix.Matrix, matrix.Matrix, error) {
		r, err := matrix.Sub(b.q12, b.q22)
		if err != nil {
			return nil, nil, err
		}
		return a.q11, r, nil
	},
	// M4 = A22(B21−B11)
	func(a, b quadrants) (matrix.Matrix, matrix.Matrix, error) {
		r, err := matrix.Sub(b.q21, b.q11)
		if err != nil {
			return nil, nil, err
		}
		return a.q22, r, nil
	},
	// M5 = (A11+A12)B22
	func(a, b quadrants) (matrix.Matrix, matrix.Matrix, error) {
		l, err := matrix.Add(a.q11, a.q12)
		if err != nil {
			return nil, nil, err
		}
		return l, b.q22, nil
	},
	// M6 = (A21−A11)(B11+B12)
	func(a, b quadrants) (matrix.Matrix, matrix.Matrix, error) {
		l, err := matrix.Sub(a.q21, a.q11)
		if err != nil {
			return nil, nil, err
		}
		r, err := matrix.Add(b.q11, b.q12)
		if err != nil {
			return nil, nil, err
		}
		return l, r, nil
	},
	// M7 = (A12−A22)(B21+B22)
	func(a, b quadrants) (matrix.Matrix, matrix.Matrix, error) {
		l, err := matrix.Sub(a.q12, a.q22)
		if err != nil {
			return nil, nil, err
		}
		r, err := matrix.Add(b.q21, b.q22)
		if err != nil {
			return nil, nil, err
		}
		return l, r, nil
	},
}

// assembleQuadrants folds the seven products into the four result quadrants
// and combines them:
//
//	C11 = M1 + M4 − M5 + M7
//	C12 = M3 + M5
//	C21 = M2 + M4
//	C22 = M1 + M3 − M2 + M6
func assembleQuadrants(m [7]matrix.Matrix) (matrix.Matrix, error) {
	// C11 = M1 + M4 − M5 + M7
	t, err := matrix.Add(m[0], m[3])
	if err != nil {
		return nil, err
	}
	t, err = matrix.Sub(t, m[4])
	if err != nil {
		return nil, err
	}
	c11, err := matrix.Add(t, m[6])
	if err != nil {
		return nil, err
	}

	// C12 = M3 + M5
	c12, err := matrix.Add(m[2], m[4])
	if err != nil {
		return nil, err
	}

	// C21 = M2 + M4
	c21, err := matrix.Add(m[1], m[3])
	if err != nil {
		return nil, err
	}

	// C22 = M1 + M3 − M2 + M6
	t, err = matrix.Add(m[0], m[2])
	if err != nil {
		return nil, err
	}
	t, err = matrix.Sub(t, m[1])
	if err != nil {
		return nil, err
	}
	c22, err := matrix.Add(t, m[5])
	if err != nil {
		return nil, err
	}

	return matrix.CombineQuadrants(c11, c12, c21, c22)
}

// maxDim returns the maximum of the given dimensions.
func maxDim(dims ...int) int {
	maxVal := dims[0]
	for _, d := range dims[1:] {
		if d > maxVal {
			maxVal = d
		}
	}

	return maxVal
}
