package view

import "github.com/phanxgames/pinboard"

// processPointer turns a sampled pointer state into session events: a move
// when the position changed, then a down or up for every button whose state
// flipped since the last sample. Left is reported before right.
func (g *Game) processPointer(x, y float64, left, right bool) {
	if x != g.mouseX || y != g.mouseY {
		g.mouseX, g.mouseY = x, y
		g.send(pinboard.PointerMove, x, y, pinboard.MouseButtonLeft)
	}
	if left != g.left {
		g.left = left
		g.send(edge(left), x, y, pinboard.MouseButtonLeft)
	}
	if right != g.right {
		g.right = right
		g.send(edge(right), x, y, pinboard.MouseButtonRight)
	}
}

func edge(pressed bool) pinboard.PointerKind {
	if pressed {
		return pinboard.PointerDown
	}
	return pinboard.PointerUp
}

// send delivers one pointer event with the element under (x, y) as target.
func (g *Game) send(kind pinboard.PointerKind, x, y float64, button pinboard.MouseButton) {
	g.session.PointerEvent(kind, x, y, button, g.board.ElementAt(x, y))
}
