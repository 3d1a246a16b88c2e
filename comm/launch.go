// SPDX-License-Identifier: MIT

package comm

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RankFunc is the SPMD body run by every participant.
type RankFunc func(ctx context.Context, c Communicator) error

// Launch runs fn once per rank of w, each in its own goroutine, and waits for
// all of them.
//
// Implementation:
//   - Stage 1: one errgroup goroutine per rank, each bound to its Endpoint.
//   - Stage 2: the first non-nil error aborts w, which unblocks every peer
//     waiting in a collective.
//   - Stage 3: report the originating failure: the lowest-rank error that is
//     not a consequence of the abort, or the errgroup's first error.
//
// Behavior highlights:
//   - Fail-fast: either every rank returns nil or Launch returns an error.
//   - A World is single-use; after a failure it stays aborted.
func Launch(ctx context.Context, w *World, fn RankFunc) error {
	if w == nil {
		return fmt.Errorf("Launch: nil world: %w", ErrInvalidRank)
	}
	errs := make([]error, w.Size())
	g, gctx := errgroup.WithContext(ctx)
	for rank := 0; rank < w.Size(); rank++ {
		ep, err := w.Endpoint(rank)
		if err != nil {
			return fmt.Errorf("Launch: %w", err)
		}
		g.Go(func() error {
			if err := fn(gctx, ep); err != nil {
				errs[rank] = err
				w.Abort(err)
				return err
			}

			return nil
		})
	}

	first := g.Wait()
	if first == nil {
		return nil
	}
	for _, err := range errs {
		if err != nil && !errors.Is(err, ErrAborted) {
			return err
		}
	}

	return first
}
