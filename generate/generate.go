// SPDX-License-Identifier: MIT

// Package generate builds seeded test problems (A, b) for the distributed
// matrix-vector product.
//
// Every generator draws from a private math/rand source seeded by WithSeed,
// in a fixed order, so the same (n, options) always yields the same problem.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/distmv/matrix"
)

// ErrBadSize reports a non-positive problem size.
var ErrBadSize = errors.New("generate: size must be positive")

// ErrUnknownPattern reports a Pattern value outside the defined set.
var ErrUnknownPattern = errors.New("generate: unknown pattern")

// Pattern selects how A is filled.
type Pattern string

const (
	// PatternOriginal is a zero matrix with a random strip of up to 100
	// values at the start of row 0, the same strip copied into row 1 just
	// after it, and a random diagonal (which wins where it overlaps the strip).
	PatternOriginal Pattern = "original"
	// PatternDense fills every element uniformly from [0, 1).
	PatternDense Pattern = "dense"
	// PatternIdentity is the n×n identity.
	PatternIdentity Pattern = "identity"
	// PatternZero is the n×n zero matrix.
	PatternZero Pattern = "zero"
)

// Patterns lists every supported pattern in a stable order.
func Patterns() []Pattern {
	return []Pattern{PatternOriginal, PatternDense, PatternIdentity, PatternZero}
}

// ParsePattern maps a name to a Pattern.
func ParsePattern(s string) (Pattern, error) {
	for _, p := range Patterns() {
		if string(p) == s {
			return p, nil
		}
	}

	return "", fmt.Errorf("ParsePattern(%q): %w", s, ErrUnknownPattern)
}

const (
	// DefaultSeed seeds the generator when WithSeed is not given.
	DefaultSeed int64 = 42
	// DefaultPattern is used when WithPattern is not given.
	DefaultPattern = PatternOriginal

	stripWidth = 100
)

// Option configures Problem.
type Option func(*Options)

// Options is the resolved generator configuration.
type Options struct {
	seed    int64
	pattern Pattern
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithPattern selects the fill pattern for A.
func WithPattern(p Pattern) Option {
	return func(o *Options) { o.pattern = p }
}

func gatherOptions(user ...Option) Options {
	o := Options{seed: DefaultSeed, pattern: DefaultPattern}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Problem returns an n×n matrix A and a length-n vector b.
//
// Implementation:
//   - Stage 1: fill A according to the pattern.
//   - Stage 2: draw b uniformly from [0, 1) with the same source, after A.
//
// Errors: ErrBadSize (n <= 0), ErrUnknownPattern.
// Complexity: O(n*n).
func Problem(n int, opts ...Option) (*matrix.Dense, []float64, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("Problem(%d): %w", n, ErrBadSize)
	}
	o := gatherOptions(opts...)
	rng := rand.New(rand.NewSource(o.seed))

	a, err := fill(n, o.pattern, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("Problem(%d): %w", n, err)
	}

	return a, Vector(n, rng), nil
}

// Vector draws n values uniformly from [0, 1).
func Vector(n int, rng *rand.Rand) []float64 {
	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()
	}

	return b
}

func fill(n int, p Pattern, rng *rand.Rand) (*matrix.Dense, error) {
	switch p {
	case PatternZero:
		return matrix.NewZeros(n, n)
	case PatternIdentity:
		return matrix.NewIdentity(n)
	case PatternDense:
		a, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		if err = a.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }); err != nil {
			return nil, err
		}

		return a, nil
	case PatternOriginal:
		return original(n, rng)
	default:
		return nil, fmt.Errorf("%q: %w", p, ErrUnknownPattern)
	}
}

// original builds the strip-plus-diagonal matrix. The strip width is
// min(100, n/2) so the copy in row 1 always fits.
func original(n int, rng *rand.Rand) (*matrix.Dense, error) {
	a, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	data := a.RawRowMajor()

	w := min(stripWidth, n/2)
	for j := 0; j < w; j++ {
		v := rng.Float64()
		data[j] = v     // row 0, column j
		data[n+w+j] = v // row 1, column w+j
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = rng.Float64()
	}

	return a, nil
}
