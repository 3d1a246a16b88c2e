// SPDX-License-Identifier: MIT

package matvec

import "github.com/katalvlaran/distmv/matrix"

// MultiplyAccumulate returns block·x as a fresh vector of length block.Rows().
// Each entry is summed left to right over the columns starting from zero, so
// repeated calls on the same inputs are bit-identical. No communication.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (len(x) != block.Cols()).
// Complexity: O(rows*cols).
func MultiplyAccumulate(block *matrix.Dense, x []float64) ([]float64, error) {
	if block == nil {
		return nil, matrix.ErrNilMatrix
	}

	return matrix.MatVec(block, x)
}

// MultiplyAccumulateInto writes block·x into out (len == block.Rows()),
// overwriting its contents.
func MultiplyAccumulateInto(block *matrix.Dense, x, out []float64) error {
	if block == nil {
		return matrix.ErrNilMatrix
	}

	return matrix.MatVecInto(block, x, out)
}
