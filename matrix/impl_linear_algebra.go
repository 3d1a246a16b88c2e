// SPDX-License-Identifier: MIT
// Package matrix: the matrix-vector kernels.
//
// Purpose:
//   - Provide the canonical y = A·x kernel used by both the distributed local
//     multiply and the serial reference, so the two share accumulation semantics.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.
//   - Accumulation order is fixed: for each row i, j runs 0..cols-1 left to right,
//     starting from ZeroSum. No zero skipping, no blocking, no reordering.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec     = "MatVec"
	opMatVecInto = "MatVecInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x into a fresh slice.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order; repeated calls are bit-identical.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if err := matVec(m, x, y); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}

// MatVecInto computes y = m * x into a caller-owned y (len == m.Rows()).
// y is overwritten, not accumulated into; prior contents do not matter.
//
// Errors:
//   - ErrNilMatrix (nil m, x or y), ErrDimensionMismatch (len(x) != Cols or len(y) != Rows).
//
// Complexity: Time O(r*c), Space O(1).
func MatVecInto(m Matrix, x, y []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := ValidateVecLen(y, m.Rows()); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := matVec(m, x, y); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}

	return nil
}

// matVec is the shared kernel. Assumes m non-nil and len(y) == m.Rows().
// Implementation:
//   - Stage 1: ValidateVecLen(x, cols).
//   - Stage 2: *Dense fast path over the flat buffer, one pass per row.
//   - Stage 3: fallback via At for other Matrix implementations.
//
// Both paths accumulate in the same order from the same starting value.
func matVec(m Matrix, x, y []float64) error {
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return err
	}

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			row := d.data[base : base+d.c : base+d.c] // bounds-check elimination hint
			for j = 0; j < len(row); j++ {
				acc += row[j] * x[j]
			}
			y[i] = acc
		}

		return nil
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var mv, acc float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return nil
}
