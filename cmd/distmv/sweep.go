// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distmv/comm"
	"github.com/katalvlaran/distmv/config"
	"github.com/katalvlaran/distmv/matvec"
	"github.com/katalvlaran/distmv/report"
)

func newSweepCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run the same problem at every --sweep group size and compare the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd, rf)
			if err != nil {
				return err
			}
			if cfg.Transport != config.TransportLocal {
				return fmt.Errorf("sweep: transport %q: %w", cfg.Transport, config.ErrInvalidConfig)
			}
			rows, err := sweep(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			report.SweepTable(os.Stdout, rows)

			return nil
		},
	}
}

// sweep runs the configured problem at every size in cfg.Sweep and measures
// each global result against the first one.
func sweep(ctx context.Context, cfg config.Config) ([]report.SweepRow, error) {
	in, err := problem(cfg)
	if err != nil {
		return nil, err
	}

	rows := make([]report.SweepRow, 0, len(cfg.Sweep))
	var first []float64
	for _, p := range cfg.Sweep {
		results, err := matvec.RunLocal(ctx, p, in, cfg.MatvecOptions()...)
		if err != nil {
			return nil, fmt.Errorf("sweep P=%d: %w", p, err)
		}
		root := results[comm.Root]
		if first == nil {
			first = root.Global
		}
		diff, err := matvec.MaxAbsDiff(first, root.Global)
		if err != nil {
			return nil, err
		}
		rows = append(rows, report.SweepRow{
			P:           p,
			Timings:     root.Timings,
			MaxAbsError: root.Report.MaxAbsError,
			Diff:        diff,
			Diverged:    root.Report.Diverged || diff > root.Report.Tolerance,
		})
	}

	return rows, nil
}
