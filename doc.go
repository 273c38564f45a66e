// Package pinboard is the containment and coordinate core of a freeform
// spatial canvas: items are picked up, dragged, cloned, stamped, nested inside
// container regions and removed, while their coordinates and the containment
// index stay consistent.
//
// # Board and items
//
// A [Board] wraps a tree of visual [Element] values. The root element becomes
// the root [Item], a container with depth 0 that stands for the visible
// surface. Every other item stores its position relative to its parent:
//
//	surface := pinboard.NewBox("surface", 0, 0, 640, 480)
//	tray := surface.AddBox(pinboard.NewBox("tray", 20, 20, 200, 200))
//	tray.AddBox(pinboard.NewLeafBox("note", 10, 10, 60, 30))
//
//	board := pinboard.NewBoard(surface) // adopts tray and note
//
// Items are created with [Board.Create], repositioned with [Board.Move],
// reparented by dropping them with [Board.PlaceDown], copied with
// [Board.Clone] and deleted with [Board.Remove].
//
// # Coordinates
//
// [ToRootFrame] and [ToItemFrame] convert points between an item's own frame
// and the root frame by walking the ownership chain. To express a root point
// as an item position, convert into the item's parent.
//
// # Containment
//
// Each container item is indexed under the nearest ancestor whose box fully
// encloses it, which is not necessarily its parent: a container dragged partly
// outside its parent bubbles up to the first ancestor that still holds it, and
// the root holds everything. Drop resolution searches this index, not the
// ownership tree, for the deepest container under a point.
//
// # Carrying
//
// A [Session] carries one item per pointer. Feed it pointer events with
// [Session.PointerEvent], or call [Session.Pickup], [Session.Place],
// [Session.Stamp], [Session.Remove] and [Session.Cancel] directly.
//
// # Debugging
//
// [Board.Verify] checks every invariant of the tree and index. With
// [Board.SetDebugMode] enabled, each mutating call verifies the board and
// panics on the first inconsistency. Misuse such as nesting under a leaf or
// touching a removed item always panics with an [OpError].
//
// The [view] subpackage renders [Box] trees with Ebitengine and routes mouse
// input into a Session.
//
// [view]: https://pkg.go.dev/github.com/phanxgames/pinboard/view
package pinboard
