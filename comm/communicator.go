// SPDX-License-Identifier: MIT

package comm

import "context"

// Communicator is one participant's handle on the group.
//
// All collectives are blocking and must be called by every participant in the
// same order with compatible arguments. Buffers are contiguous float64
// slices; counts[i] is the element count owned by rank i and displacements are
// the running sums of counts, in rank order.
//
// On failure a collective returns an error wrapping ErrCommunication and the
// group is aborted.
type Communicator interface {
	// Rank returns this participant's rank in [0, Size()).
	Rank() int

	// Size returns the number of participants.
	Size() int

	// Bcast copies root's buf into buf on every other participant.
	// len(buf) must be identical on every participant.
	Bcast(ctx context.Context, buf []float64, root int) error

	// Scatterv delivers send[displ(i) : displ(i)+counts[i]] from root into recv
	// on rank i. send is only read on root and must hold sum(counts) elements;
	// len(recv) must equal counts[Rank()].
	Scatterv(ctx context.Context, send []float64, counts []int, recv []float64, root int) error

	// Gatherv assembles every participant's send into recv on root, in rank
	// order. len(send) must equal counts[Rank()]; recv is only written on root
	// and must hold sum(counts) elements.
	Gatherv(ctx context.Context, send []float64, recv []float64, counts []int, root int) error

	// Barrier returns once every participant has entered it.
	Barrier(ctx context.Context) error

	// Abort fails the whole group with err. Safe to call more than once.
	Abort(err error)
}

// validateCounts checks that counts has one non-negative entry per rank and
// returns their sum.
func validateCounts(counts []int, size int) (int, error) {
	if len(counts) != size {
		return 0, ErrMalformed
	}
	total := 0
	for _, c := range counts {
		if c < 0 {
			return 0, ErrMalformed
		}
		total += c
	}

	return total, nil
}

// displacements returns the rank-ordered starting offsets for counts.
func displacements(counts []int) []int {
	displs := make([]int, len(counts))
	off := 0
	for i, c := range counts {
		displs[i] = off
		off += c
	}

	return displs
}
