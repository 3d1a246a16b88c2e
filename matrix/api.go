// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import (
	"fmt"
	"math"
)

const (
	opStackRows = "StackRows"
	opAllClose  = "AllClose"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// StackRows concatenates row-blocks top to bottom into one Dense.
// Implementation:
//   - Stage 1: validate every block is non-nil and has the same column count.
//   - Stage 2: allocate sum(rows)×cols and copy each block's flat buffer in order.
//
// Behavior highlights:
//   - Inverse of cutting a matrix with RowBlock over a tiling of its rows.
//   - Numeric policy is taken from the first block.
//
// Errors:
//   - ErrInvalidDimensions (no blocks), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func StackRows(blocks ...*Dense) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opStackRows, ErrInvalidDimensions)
	}
	var rows int
	cols := -1
	for k, b := range blocks {
		if b == nil {
			return nil, matrixErrorf(opStackRows, fmt.Errorf("block %d: %w", k, ErrNilMatrix))
		}
		if cols >= 0 && b.c != cols {
			return nil, matrixErrorf(opStackRows, fmt.Errorf("block %d: cols %d, want %d: %w", k, b.c, cols, ErrDimensionMismatch))
		}
		cols = b.c
		rows += b.r
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opStackRows, err)
	}
	out.validateNaNInf = blocks[0].validateNaNInf
	off := 0
	for _, b := range blocks {
		off += copy(out.data[off:], b.data)
	}

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most eps (WithEpsilon; DefaultEpsilon otherwise).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := gatherOptions(opts...).eps

	// Fast-path: both *Dense compare flat buffers.
	if da, ok := a.(*Dense); ok {
		if db, ok2 := b.(*Dense); ok2 {
			for k := range da.data {
				if math.Abs(da.data[k]-db.data[k]) > eps {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // shape already validated
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
