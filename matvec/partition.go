// SPDX-License-Identifier: MIT

package matvec

import "fmt"

// Plan is the row-block layout of an N×N matrix over P participants.
// Every participant derives the same Plan from (N, P).
type Plan struct {
	N         int
	P         int
	BlockSize int   // rows per participant, N / P
	Counts    []int // matrix elements scattered to rank i: BlockSize * N
	Displs    []int // offset of rank i's block in the row-major matrix
	RowCounts []int // result entries gathered from rank i: BlockSize
}

// Partition splits n rows evenly over p participants.
// Implementation:
//   - Stage 1: reject n <= 0, p <= 0 and n % p != 0 with ErrConfiguration.
//   - Stage 2: fill the per-rank scatter counts, displacements and gather counts.
//
// Pure function; no communication.
// Complexity: O(p).
func Partition(n, p int) (Plan, error) {
	if n <= 0 || p <= 0 {
		return Plan{}, fmt.Errorf("Partition(%d,%d): sizes must be positive: %w", n, p, ErrConfiguration)
	}
	if n%p != 0 {
		return Plan{}, fmt.Errorf("Partition(%d,%d): %d rows do not divide evenly over %d participants: %w", n, p, n, p, ErrConfiguration)
	}

	bs := n / p
	plan := Plan{
		N:         n,
		P:         p,
		BlockSize: bs,
		Counts:    make([]int, p),
		Displs:    make([]int, p),
		RowCounts: make([]int, p),
	}
	for i := 0; i < p; i++ {
		plan.Counts[i] = bs * n
		plan.Displs[i] = i * bs * n
		plan.RowCounts[i] = bs
	}

	return plan, nil
}

// Rows returns the half-open row range [lo, hi) owned by rank.
func (p Plan) Rows(rank int) (lo, hi int) {
	return rank * p.BlockSize, (rank + 1) * p.BlockSize
}
