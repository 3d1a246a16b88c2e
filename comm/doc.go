// Package comm provides the collective-communication substrate for SPMD
// programs: a fixed group of participants, identified by rank, that all run
// the same code and meet at collective operations.
//
// What
//
//   - Communicator: Bcast, Scatterv, Gatherv, Barrier and Abort over
//     contiguous float64 buffers, in the MPI style (counts per rank, a root).
//   - World: an in-process group of P endpoints connected by unbuffered,
//     per-pair FIFO channels. Each message carries the collective sequence
//     number and kind, so a participant that diverges from the group's call
//     sequence is reported as malformed instead of silently mixing payloads.
//   - Launch: runs one goroutine per rank under an errgroup; the first failing
//     participant aborts the World and every blocked peer returns ErrAborted.
//   - StartMPI: the same Communicator over MPI (github.com/sbromberger/gompi),
//     compiled only with the "mpi" build tag.
//
// Failure model
//
//	Fail-fast, all-or-nothing. Every collective failure wraps ErrCommunication,
//	and a participant that detects one aborts the whole group, so no peer is
//	left blocked and no partial result is ever produced.
package comm
