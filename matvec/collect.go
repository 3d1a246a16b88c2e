// SPDX-License-Identifier: MIT

package matvec

import (
	"context"
	"fmt"

	"github.com/katalvlaran/distmv/comm"
)

// Gather assembles the participants' local results on the root in rank order:
// global[i*BlockSize : (i+1)*BlockSize] is rank i's local vector.
// The root returns the length-N global vector; every other participant
// returns nil.
//
// Errors: ErrConfiguration (plan does not match the group),
// comm.ErrCommunication (missing contribution, or a local vector whose length
// is not BlockSize).
func Gather(ctx context.Context, c comm.Communicator, local []float64, plan Plan) ([]float64, error) {
	if plan.P != c.Size() {
		return nil, fmt.Errorf("Gather: plan for %d participants, group has %d: %w", plan.P, c.Size(), ErrConfiguration)
	}

	var global []float64
	if c.Rank() == comm.Root {
		global = make([]float64, plan.N)
	}
	if err := c.Gatherv(ctx, local, global, plan.RowCounts, comm.Root); err != nil {
		return nil, fmt.Errorf("Gather: %w", err)
	}

	return global, nil
}
