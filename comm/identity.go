// SPDX-License-Identifier: MIT

package comm

import "fmt"

// Root is the coordinating participant: it owns data before distribution and
// after collection.
const Root = 0

// Identity is a participant's immutable (rank, size) pair, fixed for the
// lifetime of the group.
type Identity struct {
	Rank int
	Size int
}

// Validate enforces 0 <= Rank < Size.
func (id Identity) Validate() error {
	if id.Size <= 0 || id.Rank < 0 || id.Rank >= id.Size {
		return fmt.Errorf("rank %d of %d: %w", id.Rank, id.Size, ErrInvalidRank)
	}

	return nil
}

// IsRoot reports whether this participant is the coordinating one.
func (id Identity) IsRoot() bool { return id.Rank == Root }

// String renders the identity as "rank/size".
func (id Identity) String() string { return fmt.Sprintf("%d/%d", id.Rank, id.Size) }
