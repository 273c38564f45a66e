package pinboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide animates an item's position toward a target in its parent's frame.
// Each Update moves the item through Board.Move, so containment stays current
// for every frame of the animation. The target is in the frame of the parent
// the item had when the glide was created, so the glide stops as soon as the
// item is removed or moved under another parent.
//
// There is no global animation manager. Callers Update glides themselves.
type Glide struct {
	board  *Board
	target *Item
	parent *Item
	x, y   *gween.Tween
	toX    float64
	toY    float64
	Done   bool
}

// NewGlide creates a Glide that moves it from its current position to
// (toX, toY) over duration seconds using the easing function. A nil fn uses
// ease.OutQuad.
func NewGlide(b *Board, it *Item, toX, toY float64, duration float32, fn ease.TweenFunc) *Glide {
	if fn == nil {
		fn = ease.OutQuad
	}
	return &Glide{
		board:  b,
		target: it,
		parent: it.parent,
		x:      gween.New(float32(it.X), float32(toX), duration, fn),
		y:      gween.New(float32(it.Y), float32(toY), duration, fn),
		toX:    toX,
		toY:    toY,
	}
}

// Item returns the item being animated.
func (g *Glide) Item() *Item {
	return g.target
}

// Stop ends the glide where the item currently is.
func (g *Glide) Stop() {
	g.Done = true
}

// Update advances the glide by dt seconds and moves the item.
func (g *Glide) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDetached() || g.target.parent != g.parent {
		g.Done = true
		return
	}
	x, doneX := g.x.Update(dt)
	y, doneY := g.y.Update(dt)
	g.Done = doneX && doneY
	if g.Done {
		// Tweens run in float32; land exactly on the requested target.
		g.board.Move(g.target, g.toX, g.toY)
		return
	}
	g.board.Move(g.target, float64(x), float64(y))
}
