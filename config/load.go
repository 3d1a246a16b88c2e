// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment key read by ApplyEnv.
const EnvPrefix = "DISTMV_"

// Environment keys.
const (
	EnvN         = EnvPrefix + "N"
	EnvProcs     = EnvPrefix + "PROCS"
	EnvSeed      = EnvPrefix + "SEED"
	EnvPattern   = EnvPrefix + "PATTERN"
	EnvTolerance = EnvPrefix + "TOLERANCE"
	EnvTransport = EnvPrefix + "TRANSPORT"
	EnvLogLevel  = EnvPrefix + "LOG_LEVEL"
	EnvSweep     = EnvPrefix + "SWEEP"
)

// Load resolves defaults, then the TOML file at path (skipped when path is
// empty), then the dotenv file at envFile (skipped when empty or missing)
// together with the process environment.
// Flags are applied separately with ApplyFlags.
func Load(path, envFile string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if envFile != "" {
		// godotenv never overrides variables already set in the environment.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadFile overlays the TOML document at path onto c. Unknown keys are
// rejected.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("config: decode %s: %w: %w", path, ErrInvalidConfig, err)
	}

	return nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays every DISTMV_* key that lookup reports as set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	var err error
	num := func(key string, set func(string) error) {
		if v, ok := lookup(key); ok && err == nil {
			if perr := set(strings.TrimSpace(v)); perr != nil {
				err = invalidf("%s=%q", key, v)
			}
		}
	}

	num(EnvN, func(v string) (e error) { c.N, e = strconv.Atoi(v); return })
	num(EnvProcs, func(v string) (e error) { c.Procs, e = strconv.Atoi(v); return })
	num(EnvSeed, func(v string) (e error) { c.Seed, e = strconv.ParseInt(v, 10, 64); return })
	num(EnvTolerance, func(v string) (e error) { c.Tolerance, e = strconv.ParseFloat(v, 64); return })
	num(EnvSweep, func(v string) (e error) { c.Sweep, e = ParseSizes(v); return })
	str(EnvPattern, &c.Pattern)
	str(EnvTransport, &c.Transport)
	str(EnvLogLevel, &c.LogLevel)

	return err
}

// ParseSizes parses a comma-separated list of positive integers such as "1,2,4".
func ParseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return nil, invalidf("size %q", p)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, invalidf("empty size list %q", s)
	}

	return out, nil
}
