package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/distmv/matrix"
)

// ExampleMatVec multiplies a 2×3 matrix by a vector.
func ExampleMatVec() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	y, err := matrix.MatVec(m, []float64{1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(y)
	// Output:
	// [6 15]
}

// ExampleDense_RowBlock cuts the middle rows out of a 3×2 matrix.
func ExampleDense_RowBlock() {
	m, _ := matrix.NewDenseFrom(3, 2, []float64{1, 2, 3, 4, 5, 6})
	blk, _ := m.RowBlock(1, 1)
	fmt.Print(blk)
	// Output:
	// [3, 4]
}
