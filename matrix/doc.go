// Package matrix provides dense integer matrices and the arithmetic
// primitives required by divide-and-conquer multiplication:
//
//   - Dense: a row-major, flat-slice container of int64 values with O(1)
//     element access and cheap deep copies.
//   - Elementwise kernels: Add, Sub — fresh-result, operands never mutated.
//   - Mul: the standard O(r·n·c) triple-loop product, used both as the
//     recursion base case and as a correctness oracle in tests.
//   - Block helpers: Submatrix, CombineQuadrants, Pad, Extract and
//     NextPowerOfTwo — the shape-normalization machinery that turns
//     arbitrary rectangular operands into square power-of-two working
//     copies and back.
//
// All arithmetic is native int64 with standard two's-complement wraparound;
// the package performs no overflow detection.
//
// Errors are package-level sentinels (errors.go) matched via errors.Is.
// Validation lives in central validators (validators.go) so kernels stay
// minimal and fail fast with consistent sentinels.
package matrix
