// SPDX-License-Identifier: MIT

// Command distmv runs the distributed matrix-vector product.
//
//	distmv run   [flags]   one run over the configured transport
//	distmv sweep [flags]   the same problem at several group sizes, compared
//
// With --transport=mpi the binary must be built with -tags mpi and started
// under mpirun; every rank runs the same command and only rank 0 prints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/distmv/config"
	"github.com/katalvlaran/distmv/report"
)

var log = logging.Logger("distmv/cmd")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		report.Failure(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:           "distmv",
		Short:         "Distributed dense matrix-vector multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "TOML configuration file")
	pf.StringVar(&rf.envFile, "env-file", ".env", "dotenv file with DISTMV_* variables")
	config.RegisterFlags(pf)

	root.AddCommand(newRunCmd(&rf), newSweepCmd(&rf))

	return root
}

// resolve builds the effective configuration for cmd and applies its log level.
func resolve(cmd *cobra.Command, rf *rootFlags) (config.Config, error) {
	cfg, err := config.Load(rf.configPath, rf.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if err = cfg.ApplyFlags(cmd.Flags()); err != nil {
		return config.Config{}, fmt.Errorf("config: flags: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if err = logging.SetLogLevelRegex("^distmv/", cfg.LogLevel); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	log.Debugw("configuration", "n", cfg.N, "p", cfg.Procs, "transport", cfg.Transport, "pattern", cfg.Pattern, "seed", cfg.Seed)

	return cfg, nil
}
