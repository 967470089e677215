// SPDX-License-Identifier: MIT
// Package strassen: sentinel error set. All public failures are matched via
// errors.Is; internal helper operations assume shape-compatible operands by
// construction and never surface shape errors of their own.

package strassen

import "errors"

var (
	// ErrIncompatibleShapes is returned by Multiply before any computation
	// begins when the operands cannot be multiplied under standard shape
	// rules: either matrix is nil or zero-dimensioned, or A.Cols != B.Rows.
	// There is no recovery; the caller must supply conformant matrices.
	ErrIncompatibleShapes = errors.New("strassen: incompatible shapes for multiplication")

	// ErrBadThreshold indicates a negative base-case threshold in Options.
	// Threshold must be ≥ 1 (zero selects DefaultThreshold).
	ErrBadThreshold = errors.New("strassen: threshold must be >= 1")
)
