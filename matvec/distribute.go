// SPDX-License-Identifier: MIT

package matvec

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/distmv/comm"
	"github.com/katalvlaran/distmv/matrix"
)

var log = logging.Logger("distmv/matvec")

// abortf aborts the group with err and returns it. Used for failures the
// root detects before entering a collective, which would otherwise leave the
// other participants blocked.
func abortf(c comm.Communicator, err error) error {
	c.Abort(err)

	return err
}

// Broadcast gives every participant its own copy of the root's vector b.
//
// Contract:
//   - n is known on every participant; b is read on the root only and must
//     have length n. Non-root b is ignored.
//   - Every returned slice is a private, bit-identical copy.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch or matrix.ErrNaNInf
//     (root's b), after aborting the group.
//   - comm.ErrCommunication from the collective.
//
// Complexity: O(n) per participant.
func Broadcast(ctx context.Context, c comm.Communicator, b []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Broadcast: n=%d: %w", n, ErrConfiguration)
	}
	buf := make([]float64, n)
	if c.Rank() == comm.Root {
		if err := matrix.ValidateVecLen(b, n); err != nil {
			return nil, abortf(c, fmt.Errorf("Broadcast: %w", err))
		}
		if err := matrix.ValidateFinite(b); err != nil {
			return nil, abortf(c, fmt.Errorf("Broadcast: %w", err))
		}
		copy(buf, b)
	}
	if err := c.Bcast(ctx, buf, comm.Root); err != nil {
		return nil, fmt.Errorf("Broadcast: %w", err)
	}
	log.Debugw("broadcast done", "rank", c.Rank(), "n", n)

	return buf, nil
}

// Scatter delivers row-block i of the root's matrix a to participant i.
//
// Implementation:
//   - Stage 1: check plan.P against the group size (ErrConfiguration).
//   - Stage 2: the root checks a is N×N and offers its row-major buffer.
//   - Stage 3: Scatterv writes straight into a fresh BlockSize×N Dense; the
//     received values must be finite.
//
// Non-root a is ignored and may be nil.
//
// Errors:
//   - ErrConfiguration.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare or matrix.ErrDimensionMismatch
//     (root's a), after aborting the group.
//   - matrix.ErrNaNInf (received block).
//   - comm.ErrCommunication (unreachable peer, malformed payload).
//
// Complexity: O(N*N) on the root, O(BlockSize*N) elsewhere.
func Scatter(ctx context.Context, c comm.Communicator, a *matrix.Dense, plan Plan) (*matrix.Dense, error) {
	if plan.P != c.Size() {
		return nil, fmt.Errorf("Scatter: plan for %d participants, group has %d: %w", plan.P, c.Size(), ErrConfiguration)
	}
	rank := c.Rank()

	var send []float64
	if rank == comm.Root {
		if err := matrix.ValidateSquare(a); err != nil {
			return nil, abortf(c, fmt.Errorf("Scatter: %w", err))
		}
		if a.Rows() != plan.N {
			return nil, abortf(c, fmt.Errorf("Scatter: matrix is %dx%d, plan is for N=%d: %w", a.Rows(), a.Cols(), plan.N, matrix.ErrDimensionMismatch))
		}
		send = a.RawRowMajor()
	}

	block, err := matrix.NewDense(plan.BlockSize, plan.N)
	if err != nil {
		return nil, fmt.Errorf("Scatter: %w", err)
	}
	recv := block.RawRowMajor()
	if err = c.Scatterv(ctx, send, plan.Counts, recv, comm.Root); err != nil {
		return nil, fmt.Errorf("Scatter: %w", err)
	}
	if err = matrix.ValidateFinite(recv); err != nil {
		return nil, fmt.Errorf("Scatter: %w", err)
	}
	lo, hi := plan.Rows(rank)
	log.Debugw("scatter done", "rank", rank, "rows", fmt.Sprintf("[%d,%d)", lo, hi))

	return block, nil
}
