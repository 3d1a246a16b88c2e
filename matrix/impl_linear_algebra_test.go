package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/distmv/matrix"
	"github.com/stretchr/testify/require"
)

// TestMatVecSmall checks a hand-computed product.
func TestMatVecSmall(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)
}

// TestMatVecIdentity: I·x == x exactly.
func TestMatVecIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	x := []float64{1, 2, 3, 4}
	y, err := matrix.MatVec(I, x)
	require.NoError(t, err)
	require.Equal(t, x, y)
}

// TestMatVecFallbackBitIdentical: the *Dense fast path and the generic
// fallback must agree bit for bit (same accumulation order).
func TestMatVecFallbackBitIdentical(t *testing.T) {
	m := MustDense(t, 17, 33)
	RandomFill(t, m, 7)
	x := RandomVec(33, 11)

	fast, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)

	for i := range fast {
		require.Equal(t, math.Float64bits(fast[i]), math.Float64bits(slow[i]), "row %d", i)
	}
}

// TestMatVecDeterministic: repeated calls are bit-identical.
func TestMatVecDeterministic(t *testing.T) {
	m := MustDense(t, 50, 50)
	RandomFill(t, m, 3)
	x := RandomVec(50, 5)

	first, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		again, err := matrix.MatVec(m, x)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestMatVecInto overwrites stale output and validates lengths.
func TestMatVecInto(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 1, 2, 2})
	y := []float64{99, 99}
	require.NoError(t, matrix.MatVecInto(m, []float64{1, 2}, y))
	require.Equal(t, []float64{3, 6}, y)

	require.ErrorIs(t, matrix.MatVecInto(m, []float64{1, 2}, make([]float64, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MatVecInto(m, nil, y), matrix.ErrNilMatrix)
}

// TestMatVecErrors covers nil and mismatched operands.
func TestMatVecErrors(t *testing.T) {
	_, err := matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(MustDense(t, 2, 2), []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
