// SPDX-License-Identifier: MIT

package matvec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/distmv/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Report is the outcome of validating a distributed result.
type Report struct {
	// MaxAbsError is max_i |reference[i] - result[i]|.
	MaxAbsError float64
	// Tolerance is the bound MaxAbsError was compared against.
	Tolerance float64
	// Diverged is set when MaxAbsError exceeds Tolerance (or is NaN).
	// Advisory only: accumulation order may legitimately differ.
	Diverged bool
	// Reference is the serial product a·b.
	Reference []float64
	// BLASResidual is max_i |reference[i] - blas[i]| where blas is gonum's
	// dgemv product. Informative; it is not compared against Tolerance.
	BLASResidual float64
}

// Validate recomputes a·b serially and measures result against it.
//
// Implementation:
//   - Stage 1: a must be square, b and result of length N.
//   - Stage 2: reference via matrix.MatVec, the same kernel the participants use.
//   - Stage 3: L∞ distance between reference and result; compare to the tolerance.
//   - Stage 4: cross-check the reference against gonum/mat MulVec.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
// Complexity: O(N*N).
func Validate(a *matrix.Dense, b, result []float64, opts ...Option) (Report, error) {
	if a == nil {
		return Report{}, fmt.Errorf("Validate: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return Report{}, fmt.Errorf("Validate: %w", err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(result, n); err != nil {
		return Report{}, fmt.Errorf("Validate: result: %w", err)
	}
	ref, err := matrix.MatVec(a, b)
	if err != nil {
		return Report{}, fmt.Errorf("Validate: %w", err)
	}

	o := gatherOptions(opts...)
	rep := Report{
		MaxAbsError: floats.Distance(ref, result, math.Inf(1)),
		Tolerance:   o.toleranceFor(n),
		Reference:   ref,
	}
	if floats.HasNaN(result) {
		rep.MaxAbsError = math.NaN()
	}
	rep.Diverged = math.IsNaN(rep.MaxAbsError) || rep.MaxAbsError > rep.Tolerance

	var y mat.VecDense
	y.MulVec(mat.NewDense(n, n, a.RawRowMajor()), mat.NewVecDense(n, b))
	rep.BLASResidual = floats.Distance(ref, y.RawVector().Data, math.Inf(1))

	if rep.Diverged {
		log.Warnw("result diverges from serial reference", "n", n, "maxAbsError", rep.MaxAbsError, "tolerance", rep.Tolerance)
	}

	return rep, nil
}

// MaxAbsDiff returns max_i |x[i] - y[i]|, the measure used to compare runs at
// different group sizes.
// Errors: matrix.ErrDimensionMismatch when the lengths differ.
func MaxAbsDiff(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("MaxAbsDiff: len %d vs %d: %w", len(x), len(y), matrix.ErrDimensionMismatch)
	}

	return floats.Distance(x, y, math.Inf(1)), nil
}
