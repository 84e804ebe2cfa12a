package dag

import "errors"

var (
	// ErrInvalidParents is returned when the parent list passed to
	// Add fails a structural check: a duplicate parent, a non-genesis
	// block with no parents, or a genesis add attempted against a
	// non-empty store.
	ErrInvalidParents = errors.New("dag: invalid parent list")

	// ErrUnknownParent is returned when a parent pointer does not
	// belong to this store.
	ErrUnknownParent = errors.New("dag: unknown parent")

	// ErrDuplicateName is returned when an explicitly requested block
	// name is already taken.
	ErrDuplicateName = errors.New("dag: duplicate block name")

	// ErrAncestorMissingConsensus is returned when the consensus
	// engine cannot compute GHOSTDAG fields for a block because its
	// selected parent has no computed consensus fields (no BlueSet). The
	// block is not inserted.
	ErrAncestorMissingConsensus = errors.New("dag: ancestor missing consensus data")
)
