package treenode

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyPath is returned by SetNodeAt, which only replaces descendants.
	ErrEmptyPath = errors.New("cannot replace the node at the empty path")

	// ErrNodeNotFoundInParent is matched by every *NotFoundInParentError.
	ErrNodeNotFoundInParent = errors.New("node not found among its parent's children")
)

// IndexOutOfRangeError reports a child index outside [0, Count). Depth is
// the position of the bad index within the path, 0 for direct children.
type IndexOutOfRangeError struct {
	Index int
	Count int
	Depth int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d) at depth %d", e.Index, e.Count, e.Depth)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// NotFoundInParentError reports a broken parent link found by LocatePath.
// Height counts parent steps from the starting node to the orphaned one.
type NotFoundInParentError struct {
	Height int
}

func (e *NotFoundInParentError) Error() string {
	return fmt.Sprintf("%s (%d levels above the start node)", ErrNodeNotFoundInParent, e.Height)
}

func (e *NotFoundInParentError) Is(target error) bool {
	return target == ErrNodeNotFoundInParent
}
