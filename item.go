package pinboard

// Item is one positioned element on a Board. X and Y are relative to the
// parent's frame; Width and Height are measured once when the item is created.
//
// Items are created, moved and removed through their Board. Writing X or Y
// directly bypasses containment upkeep; use Board.Move instead.
type Item struct {
	ID   uint32
	Kind Kind

	X, Y          float64
	Width, Height float64

	depth    int
	parent   *Item
	children []*Item

	// container is the nearest ancestor whose box encloses this one.
	// Non-owning; scrubbed explicitly on removal.
	container *Item
	contained []*Item

	element  Element
	detached bool
}

// Parent returns the owning item, or nil for the root and for removed items.
func (it *Item) Parent() *Item {
	return it.parent
}

// Children returns the owned items in paint order. The returned slice MUST NOT
// be mutated by the caller.
func (it *Item) Children() []*Item {
	return it.children
}

// NumChildren returns the number of owned items.
func (it *Item) NumChildren() int {
	return len(it.children)
}

// ChildAt returns the child at the given index.
func (it *Item) ChildAt(index int) *Item {
	return it.children[index]
}

// Depth returns the distance from the root. The root has depth 0.
func (it *Item) Depth() int {
	return it.depth
}

// Container returns the containing container, or nil for the root, leaves and
// removed items.
func (it *Item) Container() *Item {
	return it.container
}

// ContainedItems returns the descendant containers for which this item is the
// containing container. The returned slice MUST NOT be mutated by the caller.
func (it *Item) ContainedItems() []*Item {
	return it.contained
}

// Element returns the wrapped visual element.
func (it *Item) Element() Element {
	return it.element
}

// IsContainer reports whether the item is a container.
func (it *Item) IsContainer() bool {
	return it.Kind == KindContainer
}

// IsRoot reports whether the item is a board root.
func (it *Item) IsRoot() bool {
	return it.parent == nil && !it.detached
}

// IsDetached reports whether the item has been removed from its board.
func (it *Item) IsDetached() bool {
	return it.detached
}

// Bounds returns the item's box in its parent's frame.
func (it *Item) Bounds() Rect {
	return Rect{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height}
}

// RootPosition returns the item's top-left corner in the root frame.
func (it *Item) RootPosition() (x, y float64) {
	if it.parent == nil {
		return 0, 0
	}
	return ToRootFrame(it.X, it.Y, it.parent)
}

// removeChild removes child from it.children without touching child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (it *Item) removeChild(child *Item) {
	for i, c := range it.children {
		if c == child {
			copy(it.children[i:], it.children[i+1:])
			it.children[len(it.children)-1] = nil
			it.children = it.children[:len(it.children)-1]
			return
		}
	}
}

// removeContained drops entry from it.contained.
func (it *Item) removeContained(entry *Item) {
	for i, c := range it.contained {
		if c == entry {
			copy(it.contained[i:], it.contained[i+1:])
			it.contained[len(it.contained)-1] = nil
			it.contained = it.contained[:len(it.contained)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Item) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
