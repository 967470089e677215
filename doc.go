// Package strassen multiplies integer matrices with Strassen's
// divide-and-conquer algorithm, trading one recursive multiplication for a
// handful of additions at every level: O(n^log₂7) ≈ O(n^2.807) instead of
// the standard O(n³).
//
// 🚀 What does it do?
//
//	One entry point, Multiply, accepts two rectangular int64 matrices and
//	returns their product:
//		• Shapes are validated up front — incompatible operands fail fast
//		  with ErrIncompatibleShapes, before any work is done.
//		• Both operands are zero-padded to a common square power-of-two
//		  size (mathematically neutral for multiplication), recursed on,
//		  and the true-shaped result is extracted at the end.
//		• Below a configurable Threshold the recursion bottoms out in the
//		  exhaustive triple-loop product, where the constant factors win.
//		• Optionally, the seven independent products of each level are
//		  evaluated fork-join style on separate goroutines.
//
// ✨ Guarantees
//
//   - Caller-supplied matrices are never mutated; every intermediate lives
//     only for the duration of its call frame.
//   - Sequential and parallel modes produce identical results.
//   - Pure Go, deterministic, no global state — Threshold is per-call
//     configuration via Options, not a mutable global.
//
// The matrix subpackage holds the Dense container and the primitive kernels
// (Add, Sub, Mul, Submatrix, CombineQuadrants, Pad, Extract) the engine is
// built from; they are usable on their own.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]int64{{5, 6}, {7, 8}})
//	c, err := strassen.Multiply(a, b, nil) // nil → DefaultOptions
//	// c = [[19, 22], [43, 50]]
package strassen
