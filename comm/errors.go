// SPDX-License-Identifier: MIT

package comm

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failed collective wraps ErrCommunication plus one of
// the more specific sentinels below, so both errors.Is checks hold.
var (
	// ErrCommunication is the umbrella for any collective that could not
	// complete for every participant.
	ErrCommunication = errors.New("comm: collective failed")

	// ErrAborted is returned to participants blocked in (or entering) a
	// collective after another participant aborted the group.
	ErrAborted = errors.New("comm: group aborted")

	// ErrMalformed reports a payload or count vector with the wrong length,
	// or a message from a different collective than the one expected.
	ErrMalformed = errors.New("comm: malformed payload")

	// ErrInvalidRank reports a rank or group size outside 0 <= rank < size.
	ErrInvalidRank = errors.New("comm: invalid rank")

	// ErrMPIUnavailable is returned by StartMPI in builds without the mpi tag.
	ErrMPIUnavailable = errors.New("comm: built without mpi support (use -tags mpi)")
)

// commErrorf tags err with the collective name and the local rank and
// attaches ErrCommunication.
func commErrorf(op string, rank int, err error) error {
	return fmt.Errorf("%s[rank %d]: %w: %w", op, rank, ErrCommunication, err)
}
