// SPDX-License-Identifier: MIT

package matvec

import (
	"context"
	"time"

	"github.com/katalvlaran/distmv/comm"
	"github.com/katalvlaran/distmv/matrix"
)

// Inputs are one participant's arguments to Run. N is known everywhere;
// A and B are read on the root only.
type Inputs struct {
	N int
	A *matrix.Dense
	B []float64
}

// Timings are wall-clock durations of the pipeline stages on one participant.
type Timings struct {
	Distribute time.Duration // Broadcast + Scatter
	Compute    time.Duration // MultiplyAccumulate
	Gather     time.Duration
	Total      time.Duration // Partition through Validate
}

// DistributeCompute is the interval from the start of distribution to the end
// of the local multiply.
func (t Timings) DistributeCompute() time.Duration { return t.Distribute + t.Compute }

// Result is one participant's view of a completed run.
// Global and Report are set on the root only (Report stays nil when
// validation is disabled).
type Result struct {
	Rank    int
	Size    int
	Plan    Plan
	Local   []float64
	Global  []float64
	Report  *Report
	Timings Timings
}

// Run executes the full pipeline for the calling participant:
// Partition → Broadcast → Scatter → MultiplyAccumulate → Gather → Validate.
//
// Behavior highlights:
//   - Partition failures return before any communication; every participant
//     computes the same verdict, so the group fails uniformly without an abort.
//   - Any later failure aborts the group through c.Abort, so peers blocked in a
//     collective fail too. No participant returns a partial result.
//   - Validation runs on the root only, after the gather.
//
// Every error is a *StageError.
func Run(ctx context.Context, c comm.Communicator, in Inputs, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	rank := c.Rank()
	start := time.Now()

	plan, err := Partition(in.N, c.Size())
	if err != nil {
		log.Errorw("stage failed", "stage", StagePartition, "rank", rank, "n", in.N, "p", c.Size(), "err", err)
		return nil, &StageError{Stage: StagePartition, Rank: rank, Err: err}
	}
	res := &Result{Rank: rank, Size: c.Size(), Plan: plan}

	t := time.Now()
	x, err := Broadcast(ctx, c, in.B, plan.N)
	if err != nil {
		return nil, fail(c, StageDistribute, err)
	}
	block, err := Scatter(ctx, c, in.A, plan)
	if err != nil {
		return nil, fail(c, StageDistribute, err)
	}
	res.Timings.Distribute = time.Since(t)

	t = time.Now()
	res.Local, err = MultiplyAccumulate(block, x)
	if err != nil {
		return nil, fail(c, StageCompute, err)
	}
	res.Timings.Compute = time.Since(t)

	t = time.Now()
	res.Global, err = Gather(ctx, c, res.Local, plan)
	if err != nil {
		return nil, fail(c, StageGather, err)
	}
	res.Timings.Gather = time.Since(t)

	if rank == comm.Root && o.validate {
		rep, err := Validate(in.A, in.B, res.Global, opts...)
		if err != nil {
			return nil, fail(c, StageValidate, err)
		}
		res.Report = &rep
	}
	res.Timings.Total = time.Since(start)
	log.Debugw("run done", "rank", rank, "n", plan.N, "p", plan.P, "total", res.Timings.Total)

	return res, nil
}

// fail wraps err as a StageError for the caller's rank and aborts the group.
func fail(c comm.Communicator, stage Stage, err error) error {
	se := &StageError{Stage: stage, Rank: c.Rank(), Err: err}
	log.Errorw("stage failed", "stage", stage, "rank", c.Rank(), "err", err)
	c.Abort(se)

	return se
}

// RunLocal runs the pipeline on p in-process participants over a fresh
// comm.World and returns their results in rank order.
//
// in.A and in.B are handed to the root only. On failure the returned error is
// the originating participant's *StageError and no results are returned.
func RunLocal(ctx context.Context, p int, in Inputs, opts ...Option) ([]*Result, error) {
	if _, err := Partition(in.N, p); err != nil {
		return nil, &StageError{Stage: StagePartition, Rank: comm.Root, Err: err}
	}
	w, err := comm.NewWorld(p)
	if err != nil {
		return nil, &StageError{Stage: StagePartition, Rank: comm.Root, Err: err}
	}

	results := make([]*Result, p)
	err = comm.Launch(ctx, w, func(ctx context.Context, c comm.Communicator) error {
		local := Inputs{N: in.N}
		if c.Rank() == comm.Root {
			local = in
		}
		res, err := Run(ctx, c, local, opts...)
		if err != nil {
			return err
		}
		results[c.Rank()] = res

		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
