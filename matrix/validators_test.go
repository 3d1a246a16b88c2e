package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/distmv/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	err := matrix.ValidateFinite([]float64{0, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "index 1")
}

func TestValidateRowRange(t *testing.T) {
	m := MustDense(t, 4, 4)
	cases := []struct {
		name    string
		r0, n   int
		wantErr error
	}{
		{"whole", 0, 4, nil},
		{"tail", 2, 2, nil},
		{"zero rows", 0, 0, matrix.ErrInvalidDimensions},
		{"negative start", -1, 2, matrix.ErrOutOfRange},
		{"past end", 3, 2, matrix.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRowRange(m, tc.r0, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
