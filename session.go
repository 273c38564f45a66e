package pinboard

import (
	"math"

	"github.com/tanema/gween/ease"
)

// defaultClickSlop is how far (per axis, in pixels) the pointer may travel
// between press and release for the release to still count as a click.
const defaultClickSlop = 10.0

// CarryEvent describes a carry session transition.
type CarryEvent struct {
	Type     EventType
	ItemID   uint32  // item picked up, placed, stamped (the clone), removed or restored
	ParentID uint32  // resulting parent for place, stamp and cancel; 0 otherwise
	X, Y     float64 // cursor position in the root frame

	// Removed lists the descendants that left the board together with ItemID,
	// for remove events and cancels that discard a clone.
	Removed []uint32
}

// EventSink receives every carry event emitted by a Session. It is the bridge
// for optional integrations such as an ECS world.
type EventSink interface {
	EmitEvent(event CarryEvent)
}

type eventHandler struct {
	id uint32
	fn func(CarryEvent)
}

// CallbackHandle allows removing a registered session callback.
type CallbackHandle struct {
	id      uint32
	session *Session
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.session == nil {
		return
	}
	s := h.session
	for i := range s.handlers {
		if s.handlers[i].id == h.id {
			copy(s.handlers[i:], s.handlers[i+1:])
			s.handlers[len(s.handlers)-1] = eventHandler{}
			s.handlers = s.handlers[:len(s.handlers)-1]
			return
		}
	}
}

// Session tracks the single item carried by one pointer on one board.
//
//	Idle --pickup--> Carried --place--> Idle
//	Carried --stamp--> Carried (a clone is dropped, the original stays carried)
//	Carried/Idle --remove--> Idle
//	Carried --cancel--> Idle (pickup position restored)
//
// While carried, the item follows the cursor at the offset recorded at pickup,
// in its current parent's frame. Reparenting only happens on release.
type Session struct {
	board *Board

	carried          *Item
	offsetX, offsetY float64
	originX, originY float64
	fresh            bool // carried item is a clone made at pickup

	cursorX, cursorY float64

	// ClickSlop is the per-axis tolerance between press and release.
	ClickSlop   float64
	left, right bool
	clickX      float64
	clickY      float64
	clickTarget Element

	handlers []eventHandler
	nextID   uint32
	sink     EventSink
}

// NewSession creates an idle session on b.
func NewSession(b *Board) *Session {
	return &Session{board: b, ClickSlop: defaultClickSlop}
}

// Board returns the session's board.
func (s *Session) Board() *Board {
	return s.board
}

// Carried returns the carried item, or nil when idle.
func (s *Session) Carried() *Item {
	s.dropDetached()
	return s.carried
}

// IsCarrying reports whether an item is being carried.
func (s *Session) IsCarrying() bool {
	s.dropDetached()
	return s.carried != nil
}

// dropDetached ends a carry whose item was removed directly on the board.
func (s *Session) dropDetached() {
	if s.carried != nil && s.carried.detached {
		s.carried = nil
	}
}

// Cursor returns the last known cursor position in the root frame.
func (s *Session) Cursor() (x, y float64) {
	return s.cursorX, s.cursorY
}

// SetEventSink sets the optional event bridge.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// OnEvent registers a callback fired for every carry event.
func (s *Session) OnEvent(fn func(CarryEvent)) CallbackHandle {
	s.nextID++
	s.handlers = append(s.handlers, eventHandler{id: s.nextID, fn: fn})
	return CallbackHandle{id: s.nextID, session: s}
}

func (s *Session) emit(typ EventType, it, parent *Item) {
	e := CarryEvent{Type: typ, X: s.cursorX, Y: s.cursorY}
	if it != nil {
		e.ItemID = it.ID
		if it.IsDetached() {
			e.Removed = descendantIDs(it, nil)
		}
	}
	if parent != nil {
		e.ParentID = parent.ID
	}
	s.board.logger.Debug(typ.String(), "item", e.ItemID, "parent", e.ParentID, "x", e.X, "y", e.Y)
	for _, h := range s.handlers {
		h.fn(e)
	}
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}

// descendantIDs appends the IDs of the descendants of it in pre-order.
func descendantIDs(it *Item, ids []uint32) []uint32 {
	for _, c := range it.children {
		ids = append(ids, c.ID)
		ids = descendantIDs(c, ids)
	}
	return ids
}

// --- Carry operations ---

// MoveCursor records the cursor position and drags the carried item, if any.
func (s *Session) MoveCursor(x, y float64) {
	s.cursorX = x
	s.cursorY = y
	s.dropDetached()
	if s.carried != nil {
		s.board.Move(s.carried, x-s.offsetX, y-s.offsetY)
	}
}

// Pickup starts carrying it. The offset between the cursor and the item's
// position is held until the item is placed. The item is raised to the top of
// its parent's paint order. Returns false if it is nil or the root, or if
// another item is already carried.
func (s *Session) Pickup(it *Item) bool {
	s.dropDetached()
	if it == nil || it.IsRoot() || s.carried != nil {
		return false
	}
	s.board.checkLive("pickup", it)
	s.carried = it
	s.offsetX = s.cursorX - it.X
	s.offsetY = s.cursorY - it.Y
	s.originX = it.X
	s.originY = it.Y
	s.fresh = false
	s.board.Raise(it)
	s.emit(EventPickup, it, nil)
	return true
}

// CloneAndPickup clones it and carries the clone. Returns the clone, or nil
// under the same conditions that make Pickup fail.
func (s *Session) CloneAndPickup(it *Item) *Item {
	s.dropDetached()
	if it == nil || it.IsRoot() || s.carried != nil {
		return nil
	}
	c := s.board.Clone(it)
	s.Pickup(c)
	s.fresh = true
	return c
}

// Place drops the carried item at the cursor and returns its new parent.
// Returns false when idle.
func (s *Session) Place() (*Item, bool) {
	s.dropDetached()
	if s.carried == nil {
		return nil, false
	}
	it := s.carried
	s.MoveCursor(s.cursorX, s.cursorY)
	parent := s.board.PlaceDown(it, s.cursorX, s.cursorY, nil)
	s.carried = nil
	s.emit(EventPlace, it, parent)
	return parent, true
}

// Stamp drops a clone of the carried item at the cursor, never into the
// carried item itself. The original stays carried. Returns the clone, or nil
// when idle.
func (s *Session) Stamp() *Item {
	s.dropDetached()
	if s.carried == nil {
		return nil
	}
	c := s.board.Clone(s.carried)
	parent := s.board.PlaceDown(c, s.cursorX, s.cursorY, s.carried)
	s.emit(EventStamp, c, parent)
	return c
}

// Remove removes the carried item if there is one, otherwise target. The
// session is idle afterwards. Returns false if there was nothing removable.
func (s *Session) Remove(target *Item) bool {
	s.dropDetached()
	it := s.carried
	if it == nil {
		it = target
	}
	s.carried = nil
	if it == nil || it.IsRoot() || it.IsDetached() {
		return false
	}
	s.board.Remove(it)
	s.emit(EventRemove, it, nil)
	return true
}

// Cancel abandons the carry: the item returns to the position it had at
// pickup. Carrying never reparents, so the parent is unchanged. A clone made by
// CloneAndPickup is removed instead. Returns false when idle.
func (s *Session) Cancel() bool {
	it, ok := s.endCarry()
	if !ok {
		return false
	}
	if it == nil {
		return true
	}
	s.board.Move(it, s.originX, s.originY)
	s.emit(EventCancel, it, it.parent)
	return true
}

// CancelGlide is Cancel with an animated return. The returned Glide carries
// the item back to its pickup position over duration seconds and must be
// updated by the caller. Returns nil when nothing needs animating (idle, or
// the carried clone was discarded).
func (s *Session) CancelGlide(duration float32, fn ease.TweenFunc) *Glide {
	it, ok := s.endCarry()
	if !ok || it == nil {
		return nil
	}
	s.emit(EventCancel, it, it.parent)
	return NewGlide(s.board, it, s.originX, s.originY, duration, fn)
}

// endCarry clears the carried slot for a cancel. It returns the item still to
// restore, or nil when the carry ended without one: a discarded clone, or an
// item removed behind the session's back.
func (s *Session) endCarry() (*Item, bool) {
	it := s.carried
	if it == nil {
		return nil, false
	}
	s.carried = nil
	switch {
	case it.IsDetached():
		return nil, true
	case s.fresh:
		s.board.Remove(it)
		s.emit(EventCancel, it, nil)
		return nil, true
	}
	return it, true
}

// --- Pointer input ---

// PointerEvent feeds one pointer event into the session. target is the
// element under the pointer as reported by the visual layer; it may be nil.
//
// A press and release on the same target within ClickSlop is a click:
//   - left click: pick up the item under the pointer, or place the carried one
//   - right click: clone and pick up the item under the pointer, or stamp
//   - both buttons: remove the carried item, or the item under the pointer
//
// Releases that travelled further, or landed on another target, reset the
// button state and do nothing.
func (s *Session) PointerEvent(kind PointerKind, x, y float64, button MouseButton, target Element) {
	s.MoveCursor(x, y)
	switch kind {
	case PointerDown:
		if !s.left && !s.right {
			s.clickX = x
			s.clickY = y
			s.clickTarget = target
		}
		switch button {
		case MouseButtonLeft:
			s.left = true
		case MouseButtonRight:
			s.right = true
		}
	case PointerUp:
		if target != s.clickTarget ||
			math.Abs(x-s.clickX) > s.ClickSlop || math.Abs(y-s.clickY) > s.ClickSlop {
			s.left = false
			s.right = false
			return
		}
		switch button {
		case MouseButtonLeft:
			if !s.left {
				return
			}
			s.left = false
			if s.right {
				s.right = false
				s.Remove(s.itemFor(target))
			} else if s.carried != nil {
				s.Place()
			} else {
				s.Pickup(s.itemFor(target))
			}
		case MouseButtonRight:
			if !s.right {
				return
			}
			s.right = false
			if s.left {
				s.left = false
				s.Remove(s.itemFor(target))
			} else if s.carried != nil {
				s.Stamp()
			} else {
				s.CloneAndPickup(s.itemFor(target))
			}
		}
	}
}

func (s *Session) itemFor(target Element) *Item {
	if target == nil {
		return nil
	}
	return s.board.ItemFor(target)
}
