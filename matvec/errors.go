// SPDX-License-Identifier: MIT

package matvec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/distmv/comm"
)

// ErrConfiguration reports a problem size that cannot be split evenly over
// the group (N <= 0, P <= 0 or N % P != 0). It is detected before any
// communication and is identical on every participant.
var ErrConfiguration = errors.New("matvec: invalid configuration")

// ErrCommunication is comm.ErrCommunication, re-exported for callers that only
// import matvec.
var ErrCommunication = comm.ErrCommunication

// Stage names a step of the pipeline.
type Stage string

const (
	StagePartition  Stage = "partition"
	StageDistribute Stage = "distribute"
	StageCompute    Stage = "compute"
	StageGather     Stage = "gather"
	StageValidate   Stage = "validate"
)

// StageError records which stage failed on which participant.
type StageError struct {
	Stage Stage
	Rank  int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("matvec: %s stage failed on rank %d: %v", e.Stage, e.Rank, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// FailedStage extracts the stage from an error returned by Run or RunLocal.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}

	return "", false
}
