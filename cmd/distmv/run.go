// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distmv/comm"
	"github.com/katalvlaran/distmv/config"
	"github.com/katalvlaran/distmv/generate"
	"github.com/katalvlaran/distmv/matvec"
	"github.com/katalvlaran/distmv/report"
)

func newRunCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline once and print the root's summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd, rf)
			if err != nil {
				return err
			}
			if cfg.Transport == config.TransportMPI {
				return runMPI(cmd.Context(), cfg)
			}

			return runLocal(cmd.Context(), cfg)
		},
	}
}

func problem(cfg config.Config) (matvec.Inputs, error) {
	a, b, err := generate.Problem(cfg.N, cfg.GenerateOptions()...)
	if err != nil {
		return matvec.Inputs{}, err
	}

	return matvec.Inputs{N: cfg.N, A: a, B: b}, nil
}

func runLocal(ctx context.Context, cfg config.Config) error {
	in, err := problem(cfg)
	if err != nil {
		return err
	}
	results, err := matvec.RunLocal(ctx, cfg.Procs, in, cfg.MatvecOptions()...)
	if err != nil {
		return err
	}
	report.Summary(os.Stdout, results[comm.Root])

	return nil
}

// runMPI runs this process's rank. Only the root generates the problem and
// prints; a failing rank aborts the whole job.
func runMPI(ctx context.Context, cfg config.Config) error {
	c, stop, err := comm.StartMPI()
	if err != nil {
		return err
	}
	defer stop()

	in := matvec.Inputs{N: cfg.N}
	if c.Rank() == comm.Root {
		if in, err = problem(cfg); err != nil {
			c.Abort(err)
			return err
		}
	}
	res, err := matvec.Run(ctx, c, in, cfg.MatvecOptions()...)
	if err != nil {
		return err
	}

	p := report.NewPrinter(os.Stdout, comm.Identity{Rank: c.Rank(), Size: c.Size()})
	if p.ID.IsRoot() {
		report.Summary(p.W, res)
	}
	p.AllPrintf("local block done in %v\n", res.Timings.Compute)

	return nil
}
