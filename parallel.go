// SPDX-License-Identifier: MIT

package strassen

import (
	"github.com/katalvlaran/strassen/matrix"
	"golang.org/x/sync/errgroup"
)

// recurseParallel evaluates the seven Strassen products of one recursion
// level fork-join style: spawn seven tasks, wait for all, combine.
//
// Safety: each branch builds its operands from its own quadrant copies and
// writes only its own slot of the product array, so concurrent evaluation
// needs no locking — the join barrier (errgroup.Wait) is the only
// synchronization point, exactly the fork-join shape the formulas permit.
//
// depth bounds the fan-out: levels fork while depth > 0 and fall back to the
// sequential recursion below, so at most 7^depth tasks exist at once. Results
// are identical to recurse for the same operands and threshold.
func recurseParallel(a, b matrix.Matrix, threshold, depth int) (matrix.Matrix, error) {
	n := a.Rows()

	// Base case mirrors the sequential path exactly.
	if n <= threshold {
		return matrix.Mul(a, b)
	}
	// Fan-out budget exhausted: continue sequentially.
	if depth <= 0 {
		return recurse(a, b, threshold)
	}

	half := n / 2
	aq, err := splitQuadrants(a, half)
	if err != nil {
		return nil, err
	}
	bq, err := splitQuadrants(b, half)
	if err != nil {
		return nil, err
	}

	// Fork: one task per product, each writing its own slot of m.
	var m [7]matrix.Matrix
	var g errgroup.Group
	for i := range strassenOperands {
		operands := strassenOperands[i]
		slot := i
		g.Go(func() error {
			left, right, branchErr := operands(aq, bq)
			if branchErr != nil {
				return branchErr
			}
			m[slot], branchErr = recurseParallel(left, right, threshold, depth-1)

			return branchErr
		})
	}
	// Join: block until all seven products exist (or the first failure).
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return assembleQuadrants(m)
}
