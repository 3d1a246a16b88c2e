// SPDX-License-Identifier: MIT

package comm

import (
	"context"
	"fmt"
	"sync"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("distmv/comm")

// kind identifies the collective a message belongs to.
type kind uint8

const (
	kindBcast kind = iota + 1
	kindScatter
	kindGather
	kindBarrier
)

// Collective names used in error wrappers and logs.
const (
	opBcast    = "Bcast"
	opScatterv = "Scatterv"
	opGatherv  = "Gatherv"
	opBarrier  = "Barrier"
)

func (k kind) String() string {
	switch k {
	case kindBcast:
		return opBcast
	case kindScatter:
		return opScatterv
	case kindGather:
		return opGatherv
	case kindBarrier:
		return opBarrier
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// message is one point-to-point transfer inside a collective.
// payload is a private snapshot owned by the receiver once delivered.
type message struct {
	seq     uint64
	kind    kind
	payload []float64
}

// World is an in-process SPMD group of Size() participants.
//
// links[src][dst] is an unbuffered channel, so a send completes only once the
// receiver has taken the message; per-pair FIFO order plus the per-endpoint
// sequence number lets the receiver verify that both sides are in the same
// collective.
type World struct {
	size  int
	links [][]chan message // links[src][dst]; nil on the diagonal

	done  chan struct{} // closed by the first Abort
	once  sync.Once
	mu    sync.Mutex
	cause error
}

// NewWorld creates a group of size participants.
// Errors: ErrInvalidRank when size <= 0.
// Complexity: O(size^2) channels.
func NewWorld(size int) (*World, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewWorld: size %d: %w", size, ErrInvalidRank)
	}
	links := make([][]chan message, size)
	for src := range links {
		links[src] = make([]chan message, size)
		for dst := range links[src] {
			if src != dst {
				links[src][dst] = make(chan message)
			}
		}
	}

	return &World{
		size:  size,
		links: links,
		done:  make(chan struct{}),
	}, nil
}

// Size returns the number of participants.
func (w *World) Size() int { return w.size }

// Endpoint returns the Communicator for rank. Each endpoint must be driven by
// a single goroutine; endpoints of different ranks run concurrently.
func (w *World) Endpoint(rank int) (*Endpoint, error) {
	id := Identity{Rank: rank, Size: w.size}
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("Endpoint: %w", err)
	}

	return &Endpoint{w: w, id: id}, nil
}

// Abort fails the group. The first call records err as the cause and wakes
// every participant blocked in a collective; later calls are no-ops.
func (w *World) Abort(err error) {
	w.once.Do(func() {
		w.mu.Lock()
		w.cause = err
		w.mu.Unlock()
		close(w.done)
		log.Warnw("group aborted", "size", w.size, "cause", err)
	})
}

// Cause returns the error passed to the first Abort, or nil.
func (w *World) Cause() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.cause
}

// abortedErr describes the abort to a peer that did not cause it.
func (w *World) abortedErr() error {
	return fmt.Errorf("%w (cause: %v)", ErrAborted, w.Cause())
}

// Endpoint is one participant's view of a World. It implements Communicator.
type Endpoint struct {
	w   *World
	id  Identity
	seq uint64 // collectives entered so far; identical across ranks in a healthy group
}

var _ Communicator = (*Endpoint)(nil)

// Rank returns this participant's rank.
func (e *Endpoint) Rank() int { return e.id.Rank }

// Size returns the group size.
func (e *Endpoint) Size() int { return e.id.Size }

// Identity returns the (rank, size) pair.
func (e *Endpoint) Identity() Identity { return e.id }

// Abort fails the whole group.
func (e *Endpoint) Abort(err error) { e.w.Abort(err) }

// begin opens a collective: checks for a prior abort and the root argument,
// and returns the sequence number shared by all participants for this call.
func (e *Endpoint) begin(ctx context.Context, root int) (uint64, error) {
	e.seq++
	select {
	case <-e.w.done:
		return e.seq, e.w.abortedErr()
	default:
	}
	if err := ctx.Err(); err != nil {
		return e.seq, err
	}
	if root < 0 || root >= e.id.Size {
		return e.seq, fmt.Errorf("root %d: %w", root, ErrInvalidRank)
	}

	return e.seq, nil
}

// fail wraps err for op and aborts the group unless the failure is itself the
// consequence of an abort.
func (e *Endpoint) fail(op string, err error) error {
	wrapped := commErrorf(op, e.id.Rank, err)
	select {
	case <-e.w.done:
	default:
		e.w.Abort(wrapped)
		log.Errorw("collective failed", "op", op, "rank", e.id.Rank, "err", err)
	}

	return wrapped
}

// send hands a snapshot of payload to dst.
func (e *Endpoint) send(ctx context.Context, dst int, m message) error {
	select {
	case e.w.links[e.id.Rank][dst] <- m:
		return nil
	case <-e.w.done:
		return e.w.abortedErr()
	case <-ctx.Done():
		return e.ctxErr(ctx)
	}
}

// recv takes the next message from src and checks it belongs to collective
// (k, seq) and carries want elements.
func (e *Endpoint) recv(ctx context.Context, src int, k kind, seq uint64, want int) ([]float64, error) {
	select {
	case m := <-e.w.links[src][e.id.Rank]:
		if m.kind != k || m.seq != seq {
			return nil, fmt.Errorf("from rank %d: got %v#%d, want %v#%d: %w", src, m.kind, m.seq, k, seq, ErrMalformed)
		}
		if want >= 0 && len(m.payload) != want {
			return nil, fmt.Errorf("from rank %d: %d elements, want %d: %w", src, len(m.payload), want, ErrMalformed)
		}

		return m.payload, nil
	case <-e.w.done:
		return nil, e.w.abortedErr()
	case <-ctx.Done():
		return nil, e.ctxErr(ctx)
	}
}

// ctxErr prefers the abort over a cancellation that raced with it, so peers
// of a failed participant consistently report ErrAborted.
func (e *Endpoint) ctxErr(ctx context.Context) error {
	select {
	case <-e.w.done:
		return e.w.abortedErr()
	default:
		return ctx.Err()
	}
}

// snapshot copies v so the receiver never aliases the sender's memory.
func snapshot(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Bcast copies root's buf into every other participant's buf.
// Implementation:
//   - Stage 1: root takes one read-only snapshot of buf.
//   - Stage 2: root sends it to ranks in ascending order; each send completes
//     only when that receiver has taken it.
//   - Stage 3: receivers check the length and copy into their own buf.
//
// Complexity: O(P*len(buf)) copies in total, O(P) sequential hand-offs on root.
func (e *Endpoint) Bcast(ctx context.Context, buf []float64, root int) error {
	seq, err := e.begin(ctx, root)
	if err != nil {
		return e.fail(opBcast, err)
	}
	log.Debugw("enter", "op", opBcast, "rank", e.id.Rank, "seq", seq, "n", len(buf))

	if e.id.Rank == root {
		snap := snapshot(buf)
		for dst := 0; dst < e.id.Size; dst++ {
			if dst == root {
				continue
			}
			if err = e.send(ctx, dst, message{seq: seq, kind: kindBcast, payload: snap}); err != nil {
				return e.fail(opBcast, err)
			}
		}

		return nil
	}

	payload, err := e.recv(ctx, root, kindBcast, seq, len(buf))
	if err != nil {
		return e.fail(opBcast, err)
	}
	copy(buf, payload)

	return nil
}

// Scatterv delivers contiguous, non-overlapping slices of root's send buffer,
// slice i to rank i, in rank order.
//
// Errors (all wrapping ErrCommunication):
//   - ErrMalformed: len(counts) != Size, a negative count, len(recv) != counts[rank],
//     or (on root) sum(counts) != len(send).
//   - ErrAborted / context errors while waiting.
//
// Complexity: O(len(send)) copies on root, O(counts[rank]) on each receiver.
func (e *Endpoint) Scatterv(ctx context.Context, send []float64, counts []int, recv []float64, root int) error {
	seq, err := e.begin(ctx, root)
	if err != nil {
		return e.fail(opScatterv, err)
	}
	total, err := validateCounts(counts, e.id.Size)
	if err != nil {
		return e.fail(opScatterv, fmt.Errorf("counts %v for %d ranks: %w", counts, e.id.Size, err))
	}
	if len(recv) != counts[e.id.Rank] {
		return e.fail(opScatterv, fmt.Errorf("recv len %d, want %d: %w", len(recv), counts[e.id.Rank], ErrMalformed))
	}
	log.Debugw("enter", "op", opScatterv, "rank", e.id.Rank, "seq", seq, "count", counts[e.id.Rank])

	if e.id.Rank == root {
		if len(send) != total {
			return e.fail(opScatterv, fmt.Errorf("counts sum to %d, send holds %d: %w", total, len(send), ErrMalformed))
		}
		displs := displacements(counts)
		for dst := 0; dst < e.id.Size; dst++ {
			piece := send[displs[dst] : displs[dst]+counts[dst]]
			if dst == root {
				copy(recv, piece)
				continue
			}
			if err = e.send(ctx, dst, message{seq: seq, kind: kindScatter, payload: snapshot(piece)}); err != nil {
				return e.fail(opScatterv, err)
			}
		}

		return nil
	}

	payload, err := e.recv(ctx, root, kindScatter, seq, counts[e.id.Rank])
	if err != nil {
		return e.fail(opScatterv, err)
	}
	copy(recv, payload)

	return nil
}

// Gatherv assembles every participant's send buffer into root's recv buffer
// at rank-ordered displacements, regardless of the order in which
// participants arrive.
//
// Errors (all wrapping ErrCommunication):
//   - ErrMalformed: bad counts, len(send) != counts[rank], (root) len(recv) != sum(counts),
//     or a contribution of the wrong length.
//   - ErrAborted / context errors while waiting.
func (e *Endpoint) Gatherv(ctx context.Context, send []float64, recv []float64, counts []int, root int) error {
	seq, err := e.begin(ctx, root)
	if err != nil {
		return e.fail(opGatherv, err)
	}
	total, err := validateCounts(counts, e.id.Size)
	if err != nil {
		return e.fail(opGatherv, fmt.Errorf("counts %v for %d ranks: %w", counts, e.id.Size, err))
	}
	if len(send) != counts[e.id.Rank] {
		return e.fail(opGatherv, fmt.Errorf("send len %d, want %d: %w", len(send), counts[e.id.Rank], ErrMalformed))
	}
	log.Debugw("enter", "op", opGatherv, "rank", e.id.Rank, "seq", seq, "count", len(send))

	if e.id.Rank != root {
		if err = e.send(ctx, root, message{seq: seq, kind: kindGather, payload: snapshot(send)}); err != nil {
			return e.fail(opGatherv, err)
		}

		return nil
	}

	if len(recv) != total {
		return e.fail(opGatherv, fmt.Errorf("recv len %d, counts sum to %d: %w", len(recv), total, ErrMalformed))
	}
	displs := displacements(counts)
	for src := 0; src < e.id.Size; src++ {
		dst := recv[displs[src] : displs[src]+counts[src]]
		if src == root {
			copy(dst, send)
			continue
		}
		payload, err := e.recv(ctx, src, kindGather, seq, counts[src])
		if err != nil {
			return e.fail(opGatherv, err)
		}
		copy(dst, payload)
	}

	return nil
}

// Barrier is a gather of empty messages to Root followed by a release
// broadcast from Root.
func (e *Endpoint) Barrier(ctx context.Context) error {
	seq, err := e.begin(ctx, Root)
	if err != nil {
		return e.fail(opBarrier, err)
	}
	if e.id.Rank != Root {
		if err = e.send(ctx, Root, message{seq: seq, kind: kindBarrier}); err != nil {
			return e.fail(opBarrier, err)
		}
		if _, err = e.recv(ctx, Root, kindBarrier, seq, 0); err != nil {
			return e.fail(opBarrier, err)
		}

		return nil
	}
	for src := 1; src < e.id.Size; src++ {
		if _, err = e.recv(ctx, src, kindBarrier, seq, 0); err != nil {
			return e.fail(opBarrier, err)
		}
	}
	for dst := 1; dst < e.id.Size; dst++ {
		if err = e.send(ctx, dst, message{seq: seq, kind: kindBarrier}); err != nil {
			return e.fail(opBarrier, err)
		}
	}

	return nil
}
