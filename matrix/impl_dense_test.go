// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/distmv/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Len(t, m.RawRowMajor(), 12)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetNaNPolicy checks the finite-only guard and its opt-out.
func TestSetNaNPolicy(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestNewDenseFrom covers copy semantics and every error branch.
func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	m := NewFilledDense(t, 2, 3, src)
	src[0] = 100 // caller keeps ownership
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(2, 3, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.NewDenseFrom(2, 3, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestRowBlock checks contiguous row extraction and its bounds.
func TestRowBlock(t *testing.T) {
	m := NewFilledDense(t, 4, 2, []float64{
		0, 1,
		2, 3,
		4, 5,
		6, 7,
	})

	blk, err := m.RowBlock(1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 4, 5}, blk.RawRowMajor())

	// Independence from the base.
	blk.RawRowMajor()[0] = -1
	v, _ := m.At(1, 0)
	require.Equal(t, 2.0, v)

	_, err = m.RowBlock(3, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowBlock(-1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowBlock(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDoApply covers visitor early stop and in-place transform policy.
func TestDoApply(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	var seen int
	m.Do(func(i, j int, v float64) bool {
		seen++
		return v < 2 // stop after the second element
	})
	require.Equal(t, 2, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, []float64{10, 20, 30, 40}, m.RawRowMajor())

	err := m.Apply(func(i, j int, v float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
