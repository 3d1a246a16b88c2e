// SPDX-License-Identifier: MIT

// Package config resolves the run configuration of the distmv command.
//
// Layers, lowest precedence first:
//
//	defaults → TOML file → .env file and DISTMV_* environment → command-line flags
//
// Each layer only overrides the keys it sets.
package config

import (
	"errors"
	"fmt"
	"math"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/distmv/generate"
	"github.com/katalvlaran/distmv/matvec"
)

// ErrInvalidConfig reports a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Transports.
const (
	TransportLocal = "local" // in-process goroutine group
	TransportMPI   = "mpi"   // one OS process per rank under mpirun
)

// Defaults.
const (
	DefaultN         = 1000
	DefaultProcs     = 4
	DefaultSeed      = generate.DefaultSeed
	DefaultPattern   = string(generate.DefaultPattern)
	DefaultTransport = TransportLocal
	DefaultLogLevel  = "warn"
)

// DefaultSweep is the list of group sizes compared by the sweep command.
func DefaultSweep() []int { return []int{1, 2, 4} }

// Config is the resolved run configuration.
type Config struct {
	N         int     `toml:"n"`
	Procs     int     `toml:"procs"`
	Seed      int64   `toml:"seed"`
	Pattern   string  `toml:"pattern"`
	Tolerance float64 `toml:"tolerance"` // 0 means 1e-9 * N
	Transport string  `toml:"transport"`
	LogLevel  string  `toml:"log_level"`
	Sweep     []int   `toml:"sweep"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		N:         DefaultN,
		Procs:     DefaultProcs,
		Seed:      DefaultSeed,
		Pattern:   DefaultPattern,
		Transport: DefaultTransport,
		LogLevel:  DefaultLogLevel,
		Sweep:     DefaultSweep(),
	}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("config: "+format+": %w", append(args, ErrInvalidConfig)...)
}

// Validate checks every field. For the local transport it also checks that
// N divides evenly over Procs, reporting matvec.ErrConfiguration alongside
// ErrInvalidConfig. Sweep sizes are checked by the sweep itself.
func (c Config) Validate() error {
	if c.N <= 0 {
		return invalidf("n=%d must be positive", c.N)
	}
	if _, err := generate.ParsePattern(c.Pattern); err != nil {
		return invalidf("pattern %q (want one of %v)", c.Pattern, generate.Patterns())
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return invalidf("tolerance %v must be finite and non-negative", c.Tolerance)
	}
	if _, err := logging.LevelFromString(c.LogLevel); err != nil {
		return invalidf("log level %q", c.LogLevel)
	}
	for _, p := range c.Sweep {
		if p <= 0 {
			return invalidf("sweep size %d must be positive", p)
		}
	}

	switch c.Transport {
	case TransportLocal:
		return c.checkDivides(c.Procs)
	case TransportMPI:
		return nil
	default:
		return invalidf("transport %q (want %s or %s)", c.Transport, TransportLocal, TransportMPI)
	}
}

func (c Config) checkDivides(p int) error {
	if _, err := matvec.Partition(c.N, p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// PatternValue returns Pattern as a generate.Pattern. Call after Validate.
func (c Config) PatternValue() generate.Pattern { return generate.Pattern(c.Pattern) }

// MatvecOptions returns the pipeline options implied by c.
func (c Config) MatvecOptions() []matvec.Option {
	return []matvec.Option{matvec.WithTolerance(c.Tolerance)}
}

// GenerateOptions returns the problem generator options implied by c.
func (c Config) GenerateOptions() []generate.Option {
	return []generate.Option{generate.WithSeed(c.Seed), generate.WithPattern(c.PatternValue())}
}
