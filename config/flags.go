// SPDX-License-Identifier: MIT

package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagN         = "n"
	FlagProcs     = "procs"
	FlagSeed      = "seed"
	FlagPattern   = "pattern"
	FlagTolerance = "tolerance"
	FlagTransport = "transport"
	FlagLogLevel  = "log-level"
	FlagSweep     = "sweep"
)

// RegisterFlags defines one flag per Config field on fs, using the built-in
// defaults for help text. Values are read back with ApplyFlags.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(FlagN, d.N, "matrix dimension N")
	fs.IntP(FlagProcs, "p", d.Procs, "number of participants (local transport)")
	fs.Int64(FlagSeed, d.Seed, "random seed for the generated problem")
	fs.String(FlagPattern, d.Pattern, "matrix fill pattern: original, dense, identity or zero")
	fs.Float64(FlagTolerance, d.Tolerance, "divergence tolerance (0 means 1e-9*N)")
	fs.String(FlagTransport, d.Transport, "transport: local or mpi")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.IntSlice(FlagSweep, d.Sweep, "participant counts compared by sweep")
}

// ApplyFlags overlays every flag the user set explicitly on fs.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool { return err == nil && fs.Changed(name) }

	if changed(FlagN) {
		c.N, err = fs.GetInt(FlagN)
	}
	if changed(FlagProcs) {
		c.Procs, err = fs.GetInt(FlagProcs)
	}
	if changed(FlagSeed) {
		c.Seed, err = fs.GetInt64(FlagSeed)
	}
	if changed(FlagPattern) {
		c.Pattern, err = fs.GetString(FlagPattern)
	}
	if changed(FlagTolerance) {
		c.Tolerance, err = fs.GetFloat64(FlagTolerance)
	}
	if changed(FlagTransport) {
		c.Transport, err = fs.GetString(FlagTransport)
	}
	if changed(FlagLogLevel) {
		c.LogLevel, err = fs.GetString(FlagLogLevel)
	}
	if changed(FlagSweep) {
		c.Sweep, err = fs.GetIntSlice(FlagSweep)
	}

	return err
}
