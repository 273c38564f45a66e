package pinboard

// findDropTarget searches the containment index below search for the deepest
// container whose box contains (x, y), expressed in search's own frame.
// Containers inside skip's subtree and exclude itself are never candidates.
// On equal depth the first match in index order wins.
func findDropTarget(x, y float64, search, skip, exclude *Item) *Item {
	best := search
	for _, next := range search.contained {
		if next == exclude || isAncestor(skip, next) {
			continue
		}
		// Bring the point into next's parent frame. next may sit several
		// generations below search when it escaped intermediate boxes.
		cx, cy := x, y
		for p := next.parent; p != search; p = p.parent {
			cx -= p.X
			cy -= p.Y
		}
		if !next.Bounds().Contains(cx, cy) {
			continue
		}
		found := findDropTarget(cx-next.X, cy-next.Y, next, skip, exclude)
		if found.depth > best.depth {
			best = found
		}
	}
	return best
}

// DropTarget reports which container would adopt it if dropped at the
// root-frame point (x, y), without changing anything. exclude, when non-nil,
// is also never chosen.
func (b *Board) DropTarget(it *Item, x, y float64, exclude *Item) *Item {
	b.checkLive("drop target", it)
	return findDropTarget(x, y, b.root, it, exclude)
}

// PlaceDown drops it at the root-frame point (x, y): the deepest indexed
// container under the point becomes its parent. The item keeps its on-screen
// position; only the frame its coordinates are expressed in changes.
// exclude, when non-nil, is never chosen (stamping excludes the original).
// Returns the resolved parent.
func (b *Board) PlaceDown(it *Item, x, y float64, exclude *Item) *Item {
	b.checkLive("place", it)
	if it.parent == nil {
		opPanic("place", it, ErrInvalidParent)
	}
	target := findDropTarget(x, y, b.root, it, exclude)
	if target != it.parent {
		ax, ay := ToRootFrame(it.X, it.Y, it.parent)
		lx, ly := ToItemFrame(ax, ay, target)
		b.reparent(it, target, lx, ly)
	}
	b.logger.Debug("place", "item", it.ID, "parent", target.ID, "x", x, "y", y)
	b.afterMutation("place")
	return target
}

// Reparent moves it under target and sets its position to (x, y) in target's
// frame. Unlike PlaceDown, the on-screen position is whatever (x, y) says.
// Panics if target is a leaf, either item has been removed, or target lies
// inside its subtree.
func (b *Board) Reparent(it, target *Item, x, y float64) {
	b.checkLive("reparent", it)
	b.checkLive("reparent", target)
	if it.parent == nil || target.Kind != KindContainer {
		opPanic("reparent", it, ErrInvalidParent)
	}
	if target == it.parent {
		b.move(it, x, y)
	} else {
		b.reparent(it, target, x, y)
	}
	b.logger.Debug("reparent", "item", it.ID, "parent", target.ID)
	b.afterMutation("reparent")
}

// reparent moves it under target at (x, y) in target's frame, carrying the
// element along and fixing depth and containment for the whole subtree.
func (b *Board) reparent(it, target *Item, x, y float64) {
	if isAncestor(it, target) {
		panic("pinboard: reparenting would create a cycle")
	}
	it.parent.removeChild(it)
	target.element.Adopt(it.element)
	target.children = append(target.children, it)
	it.parent = target
	setDepth(it, target.depth+1)
	b.move(it, x, y)
}

// setDepth assigns depth to it and renumbers its descendants.
func setDepth(it *Item, depth int) {
	it.depth = depth
	for _, child := range it.children {
		setDepth(child, depth+1)
	}
}
