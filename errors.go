package pinboard

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural misuse of a Board. They are reported by
// panicking with an *OpError, or returned (joined) from Board.Verify.
var (
	ErrInvalidParent       = errors.New("parent is not a container")
	ErrDetachedItem        = errors.New("item has been removed")
	ErrDanglingContainment = errors.New("containment index is inconsistent")
	ErrDepthMismatch       = errors.New("depth does not match parent depth")
)

// OpError describes a failed board operation.
type OpError struct {
	Op     string
	ItemID uint32
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("pinboard: %s item %d: %v", e.Op, e.ItemID, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// opPanic panics with an *OpError for op on item.
func opPanic(op string, it *Item, err error) {
	var id uint32
	if it != nil {
		id = it.ID
	}
	panic(&OpError{Op: op, ItemID: id, Err: err})
}
