package matvec_test

import (
	"testing"

	"github.com/katalvlaran/distmv/generate"
	"github.com/katalvlaran/distmv/matrix"
	"github.com/katalvlaran/distmv/matvec"
	"github.com/stretchr/testify/require"
)

// problem returns a seeded n×n instance of pattern p.
func problem(tb testing.TB, n int, p generate.Pattern) matvec.Inputs {
	tb.Helper()
	a, b, err := generate.Problem(n, generate.WithPattern(p), generate.WithSeed(42))
	require.NoError(tb, err)

	return matvec.Inputs{N: n, A: a, B: b}
}

// dense builds a rows×cols matrix from row-major values.
func dense(tb testing.TB, rows, cols int, vals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(tb, err)

	return m
}
