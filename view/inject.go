package view

import "github.com/phanxgames/pinboard"

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates, which are also the board's root frame.
type syntheticPointerEvent struct {
	x, y   float64
	kind   pinboard.PointerKind
	button pinboard.MouseButton
}

// InjectPress queues a button press at (x, y). Queued events are consumed
// one per frame, ahead of real mouse input.
func (g *Game) InjectPress(x, y float64, button pinboard.MouseButton) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		x: x, y: y, kind: pinboard.PointerDown, button: button,
	})
}

// InjectMove queues a pointer move to (x, y).
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		x: x, y: y, kind: pinboard.PointerMove,
	})
}

// InjectRelease queues a button release at (x, y).
func (g *Game) InjectRelease(x, y float64, button pinboard.MouseButton) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		x: x, y: y, kind: pinboard.PointerUp, button: button,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (g *Game) InjectClick(x, y float64, button pinboard.MouseButton) {
	g.InjectPress(x, y, button)
	g.InjectRelease(x, y, button)
}

// InjectCarry queues a full left-button carry: a click at (fromX, fromY) to
// pick up, linearly interpolated moves, and a click at (toX, toY) to place.
// The sequence consumes frames frames; the minimum is 5 (two clicks and one
// move).
func (g *Game) InjectCarry(fromX, fromY, toX, toY float64, frames int) {
	if frames < 5 {
		frames = 5
	}
	g.InjectClick(fromX, fromY, pinboard.MouseButtonLeft)
	steps := frames - 4
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectClick(toX, toY, pinboard.MouseButtonLeft)
}

// Pending returns the number of queued synthetic events.
func (g *Game) Pending() int {
	return len(g.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the session. Returns true if an event was consumed (real mouse input
// should be skipped).
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.send(evt.kind, evt.x, evt.y, evt.button)
	return true
}
