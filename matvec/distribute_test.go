package matvec_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/distmv/comm"
	"github.com/katalvlaran/distmv/generate"
	"github.com/katalvlaran/distmv/matrix"
	"github.com/katalvlaran/distmv/matvec"
	"github.com/stretchr/testify/require"
)

// launch runs fn on a fresh World of p participants.
func launch(t *testing.T, p int, fn comm.RankFunc) error {
	t.Helper()
	w, err := comm.NewWorld(p)
	require.NoError(t, err)

	return comm.Launch(context.Background(), w, fn)
}

// Concatenating the scattered blocks in rank order reproduces A, and every
// participant holds a bit-identical copy of b.
func TestDistribution_RoundTrip(t *testing.T) {
	const n, p = 60, 4
	in := problem(t, n, generate.PatternDense)
	plan, err := matvec.Partition(n, p)
	require.NoError(t, err)

	blocks := make([]*matrix.Dense, p)
	vecs := make([][]float64, p)
	err = launch(t, p, func(ctx context.Context, c comm.Communicator) error {
		var a *matrix.Dense
		var b []float64
		if c.Rank() == comm.Root {
			a, b = in.A, in.B
		}
		x, err := matvec.Broadcast(ctx, c, b, n)
		if err != nil {
			return err
		}
		block, err := matvec.Scatter(ctx, c, a, plan)
		if err != nil {
			return err
		}
		vecs[c.Rank()], blocks[c.Rank()] = x, block

		return nil
	})
	require.NoError(t, err)

	for r := 0; r < p; r++ {
		require.Equal(t, in.B, vecs[r], "rank %d", r)
		require.Equal(t, plan.BlockSize, blocks[r].Rows())
		require.Equal(t, n, blocks[r].Cols())
	}
	stacked, err := matrix.StackRows(blocks...)
	require.NoError(t, err)
	require.Equal(t, in.A.RawRowMajor(), stacked.RawRowMajor())
}

func TestBroadcast_Idempotent(t *testing.T) {
	b := []float64{3, 1, 4, 1, 5, 9}
	err := launch(t, 3, func(ctx context.Context, c comm.Communicator) error {
		var src []float64
		if c.Rank() == comm.Root {
			src = b
		}
		first, err := matvec.Broadcast(ctx, c, src, len(b))
		if err != nil {
			return err
		}
		second, err := matvec.Broadcast(ctx, c, src, len(b))
		if err != nil {
			return err
		}
		require.Equal(t, first, second)
		require.Equal(t, b, first)

		return nil
	})
	require.NoError(t, err)
}

func TestBroadcast_RootVectorWrongLength(t *testing.T) {
	err := launch(t, 2, func(ctx context.Context, c comm.Communicator) error {
		_, err := matvec.Broadcast(ctx, c, []float64{1, 2, 3}, 4)
		return err
	})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestBroadcast_RootVectorNotFinite(t *testing.T) {
	err := launch(t, 3, func(ctx context.Context, c comm.Communicator) error {
		_, err := matvec.Broadcast(ctx, c, []float64{1, math.Inf(-1)}, 2)
		return err
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// A root matrix that is not N×N is rejected before the scatter, and the abort
// fails every other participant.
func TestScatter_WrongMatrixShape(t *testing.T) {
	const p = 2
	plan, err := matvec.Partition(4, p)
	require.NoError(t, err)

	cases := []struct {
		name       string
		rows, cols int
		want       error
	}{
		{"fewer elements", 2, 4, matrix.ErrNonSquare},
		{"N*N elements, wrong shape", 2, 8, matrix.ErrNonSquare},
		{"square, wrong N", 2, 2, matrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrong, err := matrix.NewZeros(tc.rows, tc.cols)
			require.NoError(t, err)

			errs := make([]error, p)
			err = launch(t, p, func(ctx context.Context, c comm.Communicator) error {
				var a *matrix.Dense
				if c.Rank() == comm.Root {
					a = wrong
				}
				_, errs[c.Rank()] = matvec.Scatter(ctx, c, a, plan)
				return errs[c.Rank()]
			})
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, errs[comm.Root], tc.want)
			require.ErrorIs(t, errs[1], matvec.ErrCommunication)
			require.ErrorIs(t, errs[1], comm.ErrAborted)
		})
	}
}

// A 2×8 matrix holds N*N elements for N=4 but is not 4×4; the run fails in
// the distribute stage even when validation is off.
func TestRunLocal_MatrixWithNxNElementsButWrongShape(t *testing.T) {
	a := dense(t, 2, 8,
		1, 2, 3, 4, 5, 6, 7, 8,
		0, 0, 0, 0, 0, 0, 0, 0)

	results, err := matvec.RunLocal(context.Background(), 2,
		matvec.Inputs{N: 4, A: a, B: []float64{1, 1, 1, 1}}, matvec.WithoutValidation())
	require.Nil(t, results)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	stage, ok := matvec.FailedStage(err)
	require.True(t, ok)
	require.Equal(t, matvec.StageDistribute, stage)
}

func TestScatter_PlanGroupMismatch(t *testing.T) {
	plan, err := matvec.Partition(4, 4)
	require.NoError(t, err)
	err = launch(t, 2, func(ctx context.Context, c comm.Communicator) error {
		_, err := matvec.Scatter(ctx, c, nil, plan)
		return err
	})
	require.ErrorIs(t, err, matvec.ErrConfiguration)
}

func TestGather_RankOrder(t *testing.T) {
	const p = 4
	plan, err := matvec.Partition(8, p)
	require.NoError(t, err)

	results := make([][]float64, p)
	err = launch(t, p, func(ctx context.Context, c comm.Communicator) error {
		r := float64(c.Rank())
		global, err := matvec.Gather(ctx, c, []float64{10 * r, 10*r + 1}, plan)
		results[c.Rank()] = global
		return err
	})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 10, 11, 20, 21, 30, 31}, results[0])
	for r := 1; r < p; r++ {
		require.Nil(t, results[r])
	}
}

func TestGather_MalformedContribution(t *testing.T) {
	plan, err := matvec.Partition(4, 2)
	require.NoError(t, err)
	err = launch(t, 2, func(ctx context.Context, c comm.Communicator) error {
		local := []float64{1, 2}
		if c.Rank() == 1 {
			local = []float64{1}
		}
		_, err := matvec.Gather(ctx, c, local, plan)
		return err
	})
	require.ErrorIs(t, err, matvec.ErrCommunication)
	require.ErrorIs(t, err, comm.ErrMalformed)
}

// Scatter receives straight into the block's storage and still rejects
// non-finite values in it.
func TestScatter_NonFiniteBlock(t *testing.T) {
	const n, p = 4, 2
	plan, err := matvec.Partition(n, p)
	require.NoError(t, err)
	vals := make([]float64, n*n)
	vals[3*n+1] = math.NaN() // row 3 belongs to rank 1
	a, err := matrix.NewDenseFrom(n, n, vals, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	errs := make([]error, p)
	err = launch(t, p, func(ctx context.Context, c comm.Communicator) error {
		var src *matrix.Dense
		if c.Rank() == comm.Root {
			src = a
		}
		_, errs[c.Rank()] = matvec.Scatter(ctx, c, src, plan)
		return errs[c.Rank()]
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.NoError(t, errs[comm.Root])
	require.ErrorIs(t, errs[1], matrix.ErrNaNInf)
}
