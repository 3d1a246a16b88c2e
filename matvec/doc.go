// SPDX-License-Identifier: MIT

// Package matvec computes y = A·b for a dense N×N matrix A across P
// participants of an SPMD group.
//
// What
//
//	Partition   N rows into P equal row-blocks (ErrConfiguration if N % P != 0).
//	Broadcast   b from the root to every participant.
//	Scatter     row-block i of A to participant i.
//	MultiplyAccumulate  the local block against b, in a fixed column order.
//	Gather      the local results into the global vector on the root, in rank order.
//	Validate    the global vector against a serial reference (root only).
//
// Run chains the stages for one participant; RunLocal runs a whole group
// in-process over a comm.World.
//
// Errors
//
//	Every failure in Run is a *StageError naming the stage and the rank.
//	errors.Is reaches ErrConfiguration, comm.ErrCommunication or the matrix
//	sentinels through it. Any failure after partitioning aborts the group, so
//	no participant is left waiting on a collective and no partial result is
//	returned. Numeric divergence is not an error: it is reported in
//	Report.Diverged and left to the caller.
//
// Determinism
//
//	Each output entry is accumulated left to right over the columns starting
//	from zero, identically in the local multiply and the serial reference, so
//	for a given A and b the result does not depend on P.
package matvec
