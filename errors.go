package depot

import (
	"errors"
	"fmt"
)

// ErrStopIteration can be returned from a ForEach closure to end iteration
// early. ForEach swallows it and returns nil; borrows are still released.
var ErrStopIteration = errors.New("stop iteration")

// InvalidEntityError reports an operation on a dead or never-allocated
// entity handle, including stale handles whose index has been recycled.
type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity (%d, gen %d) is not alive", e.Entity.Index(), e.Entity.Generation())
}

// BorrowConflictError reports an attempt to acquire column access that
// aliases an already-active conflicting borrow. It is a hard stop for the
// requesting operation, never a wait.
type BorrowConflictError struct {
	Component string
	Requested AccessMode
}

func (e BorrowConflictError) Error() string {
	if e.Component == "" {
		return "borrow conflict: world has active column borrows"
	}
	return fmt.Sprintf("borrow conflict: cannot take %s access to %s", e.Requested, e.Component)
}

// TypeMismatchError reports a type-erased column handle resolving to the
// wrong concrete column type. It cannot happen through handles minted by
// FactoryNewComponent unless the global type registry was reset while
// worlds were live.
type TypeMismatchError struct {
	Component string
	Got       string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("column for %s holds %s", e.Component, e.Got)
}
