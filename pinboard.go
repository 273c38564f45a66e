package pinboard

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill for boxes without an explicit color.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Encloses reports whether other lies entirely inside r.
// Touching edges count as inside.
func (r Rect) Encloses(other Rect) bool {
	return other.X >= r.X && other.X+other.Width <= r.X+r.Width &&
		other.Y >= r.Y && other.Y+other.Height <= r.Y+r.Height
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Kind distinguishes items that can own other items from those that cannot.
type Kind uint8

const (
	KindContainer Kind = iota // owns children and takes part in containment
	KindLeaf                  // terminal item; its visual children are not wrapped
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary (left) mouse button
	MouseButtonRight                    // secondary (right) mouse button
)

// PointerKind identifies the kind of pointer event delivered to a Session.
type PointerKind uint8

const (
	PointerMove PointerKind = iota // pointer moved (buttons may be held)
	PointerDown                    // a button was pressed
	PointerUp                      // a button was released
)

// EventType identifies a carry session transition.
type EventType uint8

const (
	EventPickup EventType = iota // an item became carried
	EventPlace                   // the carried item was dropped
	EventStamp                   // a clone of the carried item was dropped
	EventRemove                  // an item was removed
	EventCancel                  // the carry was abandoned and the item restored
)

func (e EventType) String() string {
	switch e {
	case EventPickup:
		return "pickup"
	case EventPlace:
		return "place"
	case EventStamp:
		return "stamp"
	case EventRemove:
		return "remove"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}
