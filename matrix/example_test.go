package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// ExampleMul demonstrates the standard triple-loop product on a small pair.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]int64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExamplePad demonstrates zero-padding a rectangular matrix to a square
// power-of-two working size and recovering it afterwards.
func ExamplePad() {
	m, _ := matrix.NewDenseFromRows([][]int64{{1, 2, 3}, {4, 5, 6}})

	padded, _ := matrix.Pad(m, matrix.NextPowerOfTwo(3))
	back, _ := matrix.Extract(padded, 2, 3)

	fmt.Print(padded)
	fmt.Println(matrix.Equal(m, back))
	// Output:
	// [1, 2, 3, 0]
	// [4, 5, 6, 0]
	// [0, 0, 0, 0]
	// [0, 0, 0, 0]
	// true
}
