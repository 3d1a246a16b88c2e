// Package distmv computes dense matrix-vector products y = A·b across a group
// of cooperating participants in the SPMD style: every participant runs the
// same program and they meet at collective operations.
//
// What is in the box?
//
//	matrix/   row-major Dense, sentinel errors, validators and the fixed-order MatVec kernel
//	comm/     Communicator (Bcast, Scatterv, Gatherv, Barrier, Abort), the in-process World,
//	          Launch, and an MPI communicator behind the "mpi" build tag
//	matvec/   Partition, Broadcast, Scatter, MultiplyAccumulate, Gather, Validate and Run
//	generate/ seeded problem generation
//	config/   defaults → TOML → .env/DISTMV_* → flags
//	report/   rank-0 printing, run summaries and sweep tables
//	cmd/distmv the command-line entry point (run, sweep)
//
// Guarantees
//
//   - N must divide evenly over P; otherwise ErrConfiguration before any communication.
//   - Row-block i goes to rank i and comes back to position i: results are in rank order.
//   - Each output entry is accumulated left to right over the columns, so the result does
//     not depend on P.
//   - Fail-fast: any failure aborts the whole group and names the stage that failed.
//
// Quick start
//
//	results, err := matvec.RunLocal(ctx, 4, matvec.Inputs{N: n, A: a, B: b})
//	// results[0].Global is A·b, results[0].Report the residual against a serial reference.
package distmv
