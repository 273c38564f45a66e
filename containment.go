package pinboard

// resolveContainer finds the container that should hold it in the index:
// starting at it.parent, the item's box is bubbled outward through each
// ancestor it escapes until one encloses it. The root encloses everything.
// Comparison is boundary-inclusive.
func resolveContainer(it *Item) *Item {
	box := it.Bounds()
	c := it.parent
	for c.parent != nil && !c.encloses(box) {
		box = box.Translate(c.X, c.Y)
		c = c.parent
	}
	return c
}

// encloses reports whether box, expressed in c's own frame, lies within c.
func (c *Item) encloses(box Rect) bool {
	return Rect{Width: c.Width, Height: c.Height}.Encloses(box)
}

// assignContainer places a container item in the containment index of its
// tightest enclosing ancestor. Leaves and the root are ignored. When the
// winner is unchanged the index is left as is, keeping its order stable.
func (b *Board) assignContainer(it *Item) {
	if it.Kind != KindContainer || it.parent == nil {
		return
	}
	next := resolveContainer(it)
	if it.container == next {
		return
	}
	if it.container != nil {
		it.container.removeContained(it)
	}
	it.container = next
	next.contained = append(next.contained, it)
	b.logger.Debug("contain", "item", it.ID, "container", next.ID)
}

// refreshContainment re-evaluates it and every container below it. A moved
// container shifts descendants that had bubbled past it, so the whole
// subtree is rechecked.
func (b *Board) refreshContainment(it *Item) {
	if it.Kind != KindContainer {
		return
	}
	b.assignContainer(it)
	for _, child := range it.children {
		b.refreshContainment(child)
	}
}

// unindex removes it and its whole subtree from the containment index.
func unindex(it *Item) {
	if it.container != nil {
		it.container.removeContained(it)
		it.container = nil
	}
	it.contained = nil
	for _, child := range it.children {
		unindex(child)
	}
}
