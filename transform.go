package pinboard

// ToRootFrame converts (x, y), expressed in from's own frame, to the root
// frame by adding the position of from and each of its ancestors.
// The root has no position, so the walk stops there.
func ToRootFrame(x, y float64, from *Item) (float64, float64) {
	for it := from; it != nil && it.parent != nil; it = it.parent {
		x += it.X
		y += it.Y
	}
	return x, y
}

// ToItemFrame converts (x, y), expressed in the root frame, to to's own frame.
// To express a point as an item position, pass the item's parent.
func ToItemFrame(x, y float64, to *Item) (float64, float64) {
	for it := to; it != nil && it.parent != nil; it = it.parent {
		x -= it.X
		y -= it.Y
	}
	return x, y
}

// LocalToRoot converts a point in the item's own frame to the root frame.
func (it *Item) LocalToRoot(lx, ly float64) (x, y float64) {
	return ToRootFrame(lx, ly, it)
}

// RootToLocal converts a root-frame point to the item's own frame.
func (it *Item) RootToLocal(x, y float64) (lx, ly float64) {
	return ToItemFrame(x, y, it)
}
