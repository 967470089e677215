// Package strassen: options and defaults for the recursive engine.
package strassen

// DefaultThreshold is the matrix size at or below which the recursion
// delegates to the standard triple-loop product. Below this size the
// constant-factor cost of the 7-multiply decomposition exceeds its
// asymptotic benefit.
const DefaultThreshold = 64

// DefaultParallelDepth bounds how many recursion levels fork their seven
// products onto goroutines when Parallel is enabled. Two levels yield at
// most 7² concurrent leaf tasks, which saturates common core counts without
// drowning the scheduler in tiny goroutines.
const DefaultParallelDepth = 2

// Options configures a single Multiply call.
//
// Fields:
//   - Threshold     — base-case size switch; n ≤ Threshold uses the standard
//     product. Must be ≥ 1 (ErrBadThreshold otherwise). Zero means
//     DefaultThreshold.
//   - Parallel      — evaluate the seven independent products of each level
//     fork-join style. Results are identical to the sequential path; the
//     branches share no mutable state, so no locking is involved.
//   - ParallelDepth — recursion levels that fork when Parallel is true.
//     Values ≤ 0 mean DefaultParallelDepth. Ignored when Parallel is false.
//
// Example:
//
//	opts := strassen.DefaultOptions()
//	opts.Parallel = true
//	c, err := strassen.Multiply(a, b, &opts)
type Options struct {
	Threshold     int
	Parallel      bool
	ParallelDepth int
}

// DefaultOptions returns the canonical sequential configuration:
// Threshold = DefaultThreshold, Parallel disabled.
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		Parallel:      false,
		ParallelDepth: DefaultParallelDepth,
	}
}
