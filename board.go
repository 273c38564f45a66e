package pinboard

import (
	"io"

	"github.com/charmbracelet/log"
)

// Board owns the item tree rooted at a sentinel container that represents the
// visible surface, plus the element index that maps visual elements back to
// their items. A Board is not safe for concurrent use; all operations are
// expected to run on the input-handling goroutine.
type Board struct {
	root   *Item
	items  map[Element]*Item
	nextID uint32

	debug  bool
	logger *log.Logger
}

// NewBoard wraps rootElement as the board root and adopts every element
// already beneath it. The root element is pinned to the origin.
func NewBoard(rootElement Element) *Board {
	if rootElement == nil {
		panic("pinboard: nil root element")
	}
	b := &Board{
		items:  make(map[Element]*Item),
		logger: log.New(io.Discard),
	}
	rootElement.SetOffset(0, 0)
	r := rootElement.Bounds()
	b.root = &Item{
		ID:      b.newID(),
		Kind:    KindContainer,
		Width:   r.Width,
		Height:  r.Height,
		element: rootElement,
	}
	b.items[rootElement] = b.root
	b.adoptChildren(b.root)
	return b
}

// Root returns the board's root item.
func (b *Board) Root() *Item {
	return b.root
}

// Len returns the number of live items, including the root.
func (b *Board) Len() int {
	return len(b.items)
}

// SetLogger sets the logger used for operation tracing and debug warnings.
// A nil logger silences output.
func (b *Board) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	b.logger = l
}

// Logger returns the board's logger.
func (b *Board) Logger() *log.Logger {
	return b.logger
}

func (b *Board) newID() uint32 {
	b.nextID++
	return b.nextID
}

// --- Structural operations ---

// Create wraps element as a new child of parent and adopts any child elements
// that are not wrapped yet, so a whole existing visual subtree becomes items in
// one call. The element keeps its on-screen position: its measured box is
// converted into parent's frame. Creating an already wrapped element returns
// the existing item.
//
// Panics if parent is a leaf or has been removed.
func (b *Board) Create(parent *Item, element Element) *Item {
	b.checkLive("create", parent)
	if parent.Kind != KindContainer {
		opPanic("create", parent, ErrInvalidParent)
	}
	if element == nil {
		panic("pinboard: cannot create item for nil element")
	}
	if it, ok := b.items[element]; ok {
		return it
	}
	it := b.wrap(parent, element)
	b.adoptChildren(it)
	b.afterMutation("create")
	return it
}

// wrap creates the item for a single element under parent.
func (b *Board) wrap(parent *Item, el Element) *Item {
	r := el.Bounds()
	if el.Parent() != parent.element {
		parent.element.Adopt(el)
	}
	kind := KindLeaf
	if el.IsContainer() {
		kind = KindContainer
	}
	it := &Item{
		ID:      b.newID(),
		Kind:    kind,
		Width:   r.Width,
		Height:  r.Height,
		depth:   parent.depth + 1,
		parent:  parent,
		element: el,
	}
	it.X, it.Y = ToItemFrame(r.X, r.Y, parent)
	el.SetOffset(it.X, it.Y)
	parent.children = append(parent.children, it)
	b.items[el] = it
	b.assignContainer(it)
	b.logger.Debug("create", "item", it.ID, "kind", it.Kind, "parent", parent.ID)
	if b.debug {
		debugCheckTreeDepth(b, it)
		debugCheckChildCount(b, parent)
	}
	return it
}

// adoptChildren wraps every unwrapped child element of a container item.
// Children of leaves stay part of the leaf's visual content.
func (b *Board) adoptChildren(it *Item) {
	if it.Kind != KindContainer {
		return
	}
	for _, child := range it.element.Elements() {
		if _, ok := b.items[child]; ok {
			continue
		}
		b.adoptChildren(b.wrap(it, child))
	}
}

// Move sets the item's position in its parent's frame, renders the element there and
// re-evaluates containment for it and its subtree. Move never reparents; see
// PlaceDown.
func (b *Board) Move(it *Item, x, y float64) {
	b.checkLive("move", it)
	if it.parent == nil {
		opPanic("move", it, ErrInvalidParent)
	}
	b.move(it, x, y)
	b.afterMutation("move")
}

func (b *Board) move(it *Item, x, y float64) {
	it.X = x
	it.Y = y
	it.element.SetOffset(x, y)
	b.refreshContainment(it)
}

// Clone deep-copies the item's element, attaches the copy under the same parent and
// wraps the copied subtree. The clone starts at the original's position.
func (b *Board) Clone(it *Item) *Item {
	b.checkLive("clone", it)
	if it.parent == nil {
		opPanic("clone", it, ErrInvalidParent)
	}
	el := it.element.CloneElement()
	it.parent.element.Adopt(el)
	c := b.wrap(it.parent, el)
	b.adoptChildren(c)
	b.logger.Debug("clone", "item", it.ID, "clone", c.ID)
	b.afterMutation("clone")
	return c
}

// Remove detaches the item's element, unlinks it from its parent and scrubs every
// containment entry in its subtree. The item and its descendants are marked
// removed; any further operation on them panics.
func (b *Board) Remove(it *Item) {
	b.checkLive("remove", it)
	if it.parent == nil {
		opPanic("remove", it, ErrInvalidParent)
	}
	it.element.Detach()
	it.parent.removeChild(it)
	it.parent = nil
	unindex(it)
	b.forget(it)
	b.logger.Debug("remove", "item", it.ID)
	b.afterMutation("remove")
}

// forget drops it and its subtree from the element index and marks them removed.
func (b *Board) forget(it *Item) {
	delete(b.items, it.element)
	it.detached = true
	for _, child := range it.children {
		b.forget(child)
	}
}

// Raise moves it to the end of its parent's paint order.
func (b *Board) Raise(it *Item) {
	b.checkLive("raise", it)
	p := it.parent
	if p == nil || p.children[len(p.children)-1] == it {
		return
	}
	p.removeChild(it)
	p.children = append(p.children, it)
	p.element.Adopt(it.element)
}

// --- Lookup ---

// ItemFor returns the item wrapping element, or the item of its nearest
// wrapped visual ancestor. Returns nil when no ancestor is wrapped.
func (b *Board) ItemFor(element Element) *Item {
	for el := element; el != nil; el = el.Parent() {
		if it, ok := b.items[el]; ok {
			return it
		}
	}
	return nil
}

// ItemAt returns the topmost item whose box contains the root-frame point
// (x, y), searching children in reverse paint order. Returns nil when only the
// root lies under the point.
func (b *Board) ItemAt(x, y float64) *Item {
	return hitItem(b.root, x, y)
}

// ElementAt returns the element of the topmost item at the root-frame point
// (x, y), or the root element when no item is hit. It stands in for the
// visual layer's own hit test when events are synthesized.
func (b *Board) ElementAt(x, y float64) Element {
	if it := b.ItemAt(x, y); it != nil {
		return it.element
	}
	return b.root.element
}

// hitItem searches the item's subtree with (x, y) in the item's own frame.
func hitItem(it *Item, x, y float64) *Item {
	for i := len(it.children) - 1; i >= 0; i-- {
		c := it.children[i]
		if h := hitItem(c, x-c.X, y-c.Y); h != nil {
			return h
		}
	}
	if it.parent == nil {
		return nil
	}
	if x >= 0 && x <= it.Width && y >= 0 && y <= it.Height {
		return it
	}
	return nil
}

// Walk calls fn for every live item in pre-order, starting at the root.
// Returning false from fn skips the item's subtree.
func (b *Board) Walk(fn func(it *Item) bool) {
	walk(b.root, fn)
}

func walk(it *Item, fn func(*Item) bool) {
	if !fn(it) {
		return
	}
	for _, child := range it.children {
		walk(child, fn)
	}
}

// checkLive panics when it is nil or has been removed.
func (b *Board) checkLive(op string, it *Item) {
	if it == nil {
		panic("pinboard: " + op + " on nil item")
	}
	if it.detached {
		opPanic(op, it, ErrDetachedItem)
	}
}
