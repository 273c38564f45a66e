package pinboard

import (
	"errors"
	"fmt"
)

// SetDebugMode enables or disables debug mode. When enabled, every mutating
// operation verifies the whole board and panics on the first inconsistency,
// and tree depth and child count warnings are logged.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// IsDebugMode reports whether debug mode is enabled.
func (b *Board) IsDebugMode() bool {
	return b.debug
}

// afterMutation runs the debug-mode invariant check after op.
func (b *Board) afterMutation(op string) {
	if !b.debug {
		return
	}
	if err := b.Verify(); err != nil {
		panic(&OpError{Op: op, Err: err})
	}
}

// Verify walks the board and reports every broken invariant: depth out of
// step with the parent, ownership lists that disagree with parent links, and
// containment entries that are missing, duplicated, stale or geometrically
// wrong. Returns nil for a consistent board.
func (b *Board) Verify() error {
	var errs []error
	live := 0
	b.Walk(func(it *Item) bool {
		live++
		errs = append(errs, verifyItem(b, it)...)
		return true
	})
	if live != len(b.items) {
		errs = append(errs, fmt.Errorf("%w: element index holds %d items, tree holds %d",
			ErrDanglingContainment, len(b.items), live))
	}
	return errors.Join(errs...)
}

func verifyItem(b *Board, it *Item) []error {
	var errs []error
	fail := func(sentinel error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: item %d: %s", sentinel, it.ID, fmt.Sprintf(format, args...)))
	}

	if it.detached {
		fail(ErrDetachedItem, "removed item is still reachable")
	}
	if b.items[it.element] != it {
		fail(ErrDanglingContainment, "element index does not point at item")
	}

	if it.parent == nil {
		if it.depth != 0 {
			fail(ErrDepthMismatch, "root depth %d", it.depth)
		}
	} else {
		if it.depth != it.parent.depth+1 {
			fail(ErrDepthMismatch, "depth %d under parent depth %d", it.depth, it.parent.depth)
		}
		if n := countOf(it.parent.children, it); n != 1 {
			fail(ErrDanglingContainment, "listed %d times among parent's children", n)
		}
		if it.parent.Kind != KindContainer {
			fail(ErrInvalidParent, "parent %d is a leaf", it.parent.ID)
		}
	}

	switch {
	case it.parent == nil:
		if it.container != nil {
			fail(ErrDanglingContainment, "root has a container")
		}
	case it.Kind == KindLeaf:
		if it.container != nil || len(it.contained) > 0 {
			fail(ErrDanglingContainment, "leaf takes part in containment")
		}
	case it.container == nil:
		fail(ErrDanglingContainment, "container item is not indexed")
	default:
		if n := countOf(it.container.contained, it); n != 1 {
			fail(ErrDanglingContainment, "listed %d times by container %d", n, it.container.ID)
		}
		if !isAncestor(it.container, it.parent) {
			fail(ErrDanglingContainment, "container %d is not an ancestor", it.container.ID)
		}
		if want := resolveContainer(it); want != it.container {
			fail(ErrDanglingContainment, "indexed under %d, geometry says %d", it.container.ID, want.ID)
		}
	}

	for _, entry := range it.contained {
		if entry.detached || entry.container != it {
			fail(ErrDanglingContainment, "stale contained entry %d", entry.ID)
		}
	}
	return errs
}

func countOf(list []*Item, target *Item) int {
	n := 0
	for _, it := range list {
		if it == target {
			n++
		}
	}
	return n
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(b *Board, it *Item) {
	if it.depth > debugMaxTreeDepth {
		b.logger.Warn("tree depth exceeds threshold", "item", it.ID, "depth", it.depth, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if an item has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(b *Board, it *Item) {
	if len(it.children) > debugMaxChildCount {
		b.logger.Warn("child count exceeds threshold", "item", it.ID, "children", len(it.children), "threshold", debugMaxChildCount)
	}
}
