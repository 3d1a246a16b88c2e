// SPDX-License-Identifier: MIT

//go:build !mpi

package comm

// StartMPI always fails with ErrMPIUnavailable; build with -tags mpi and run
// under mpirun to use the MPI transport.
func StartMPI() (Communicator, func(), error) {
	return nil, nil, ErrMPIUnavailable
}
