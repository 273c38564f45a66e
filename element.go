package pinboard

// Element is the visual collaborator wrapped by an Item. The board never paints;
// it measures elements once, moves them between visual parents when items are
// reparented, and reports position changes through SetOffset.
//
// Implementations must be comparable (pointer types are) because the board
// indexes items by element.
type Element interface {
	// IsContainer reports whether the element should become a container item.
	IsContainer() bool

	// Bounds returns the element's rendered box in root-relative coordinates.
	Bounds() Rect

	// Elements returns the element's existing child elements in paint order.
	Elements() []Element

	// Parent returns the visual parent, or nil for a detached or root element.
	Parent() Element

	// Adopt appends child to this element, detaching it from any previous parent.
	Adopt(child Element)

	// Detach removes the element from its visual parent.
	Detach()

	// SetOffset places the element at (x, y) relative to its visual parent.
	SetOffset(x, y float64)

	// CloneElement returns a deep copy of the element and its children,
	// not attached to any parent.
	CloneElement() Element
}
