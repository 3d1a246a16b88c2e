// SPDX-License-Identifier: MIT

//go:build mpi

package comm

import (
	"context"
	"fmt"
	"os"

	mpi "github.com/sbromberger/gompi"
)

// maxTag keeps message tags inside the range every MPI implementation
// guarantees (MPI_TAG_UB >= 32767).
const maxTag = 32767

// MPI is a Communicator over MPI_COMM_WORLD.
//
// MPI calls cannot be interrupted, so ctx is only checked on entry to each
// collective. Abort exits the process with a non-zero status, which makes the
// launcher (mpirun) tear down the rest of the job.
type MPI struct {
	c   *mpi.Communicator
	id  Identity
	seq uint64
}

var _ Communicator = (*MPI)(nil)

// StartMPI initialises MPI and returns the world communicator together with
// the function that finalises MPI. stop must be called exactly once, after
// the last collective.
func StartMPI() (Communicator, func(), error) {
	mpi.Start(true)
	c := mpi.NewCommunicator(nil)
	id := Identity{Rank: c.Rank(), Size: c.Size()}
	if err := id.Validate(); err != nil {
		mpi.Stop()
		return nil, nil, fmt.Errorf("StartMPI: %w", err)
	}
	log.Infow("mpi started", "rank", id.Rank, "size", id.Size)

	return &MPI{c: c, id: id}, mpi.Stop, nil
}

// Rank returns this process's rank in MPI_COMM_WORLD.
func (m *MPI) Rank() int { return m.id.Rank }

// Size returns the number of MPI processes.
func (m *MPI) Size() int { return m.id.Size }

// Abort logs err and terminates the process.
func (m *MPI) Abort(err error) {
	log.Errorw("aborting mpi job", "rank", m.id.Rank, "err", err)
	os.Exit(1)
}

// begin advances the collective sequence and returns the tag for its messages.
func (m *MPI) begin(ctx context.Context, root int) (int, error) {
	m.seq++
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if root < 0 || root >= m.id.Size {
		return 0, fmt.Errorf("root %d: %w", root, ErrInvalidRank)
	}

	return int(m.seq % maxTag), nil
}

func (m *MPI) fail(op string, err error) error {
	return commErrorf(op, m.id.Rank, err)
}

// Bcast broadcasts buf from root with MPI_Bcast.
func (m *MPI) Bcast(ctx context.Context, buf []float64, root int) error {
	if _, err := m.begin(ctx, root); err != nil {
		return m.fail(opBcast, err)
	}
	m.c.BcastFloat64s(buf, root)

	return nil
}

// Scatterv sends each rank its slice from root with point-to-point messages
// tagged by the collective sequence number.
func (m *MPI) Scatterv(ctx context.Context, send []float64, counts []int, recv []float64, root int) error {
	tag, err := m.begin(ctx, root)
	if err != nil {
		return m.fail(opScatterv, err)
	}
	total, err := validateCounts(counts, m.id.Size)
	if err != nil {
		return m.fail(opScatterv, fmt.Errorf("counts %v for %d ranks: %w", counts, m.id.Size, err))
	}
	if len(recv) != counts[m.id.Rank] {
		return m.fail(opScatterv, fmt.Errorf("recv len %d, want %d: %w", len(recv), counts[m.id.Rank], ErrMalformed))
	}

	if m.id.Rank == root {
		if len(send) != total {
			return m.fail(opScatterv, fmt.Errorf("counts sum to %d, send holds %d: %w", total, len(send), ErrMalformed))
		}
		displs := displacements(counts)
		for dst := 0; dst < m.id.Size; dst++ {
			piece := send[displs[dst] : displs[dst]+counts[dst]]
			if dst == root {
				copy(recv, piece)
				continue
			}
			m.c.SendFloat64s(piece, dst, tag)
		}

		return nil
	}

	vals, _ := m.c.RecvFloat64s(root, tag)
	if len(vals) != len(recv) {
		return m.fail(opScatterv, fmt.Errorf("from rank %d: %d elements, want %d: %w", root, len(vals), len(recv), ErrMalformed))
	}
	copy(recv, vals)

	return nil
}

// Gatherv collects every rank's send into recv on root in rank order.
func (m *MPI) Gatherv(ctx context.Context, send []float64, recv []float64, counts []int, root int) error {
	tag, err := m.begin(ctx, root)
	if err != nil {
		return m.fail(opGatherv, err)
	}
	total, err := validateCounts(counts, m.id.Size)
	if err != nil {
		return m.fail(opGatherv, fmt.Errorf("counts %v for %d ranks: %w", counts, m.id.Size, err))
	}
	if len(send) != counts[m.id.Rank] {
		return m.fail(opGatherv, fmt.Errorf("send len %d, want %d: %w", len(send), counts[m.id.Rank], ErrMalformed))
	}

	if m.id.Rank != root {
		m.c.SendFloat64s(send, root, tag)
		return nil
	}

	if len(recv) != total {
		return m.fail(opGatherv, fmt.Errorf("recv len %d, counts sum to %d: %w", len(recv), total, ErrMalformed))
	}
	displs := displacements(counts)
	for src := 0; src < m.id.Size; src++ {
		dst := recv[displs[src] : displs[src]+counts[src]]
		if src == root {
			copy(dst, send)
			continue
		}
		vals, _ := m.c.RecvFloat64s(src, tag)
		if len(vals) != counts[src] {
			return m.fail(opGatherv, fmt.Errorf("from rank %d: %d elements, want %d: %w", src, len(vals), counts[src], ErrMalformed))
		}
		copy(dst, vals)
	}

	return nil
}

// Barrier blocks until every process has entered it.
func (m *MPI) Barrier(ctx context.Context) error {
	if _, err := m.begin(ctx, Root); err != nil {
		return m.fail(opBarrier, err)
	}
	m.c.Barrier()

	return nil
}
