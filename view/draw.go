package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/pinboard"
)

// containerFillAlpha is the fill opacity of container boxes, so their
// contents stay readable. Leaves are drawn opaque.
const containerFillAlpha = 0.3

// Draw paints the root box's color, every box in paint order, and the
// carried item's subtree on top.
func (g *Game) Draw(screen *ebiten.Image) {
	root, ok := g.board.Root().Element().(*pinboard.Box)
	if !ok {
		return
	}
	screen.Fill(toRGBA(root.Color))

	carried := g.carriedBox()
	for _, b := range root.Boxes() {
		g.drawBox(screen, b, carried)
	}
	if carried != nil {
		g.drawBox(screen, carried, nil)
	}

	if g.cfg.ShowStatus {
		g.drawStatus(screen)
	}
	g.flushScreenshots(screen)
}

func (g *Game) carriedBox() *pinboard.Box {
	it := g.session.Carried()
	if it == nil {
		return nil
	}
	b, _ := it.Element().(*pinboard.Box)
	return b
}

// drawBox draws b and its subtree, leaving out skip's subtree.
func (g *Game) drawBox(dst *ebiten.Image, b, skip *pinboard.Box) {
	if b == skip {
		return
	}
	r := b.Bounds()
	if b.IsContainer() {
		g.fillRect(dst, r, b.Color, containerFillAlpha)
		g.strokeRect(dst, r, b.Color)
	} else {
		g.fillRect(dst, r, b.Color, 1)
	}
	for _, c := range b.Boxes() {
		g.drawBox(dst, c, skip)
	}
}

// pixel returns a 1x1 white image, created on first use so that a Game can
// be built without a graphics context.
func (g *Game) pixel() *ebiten.Image {
	if g.whitePixel == nil {
		g.whitePixel = ebiten.NewImage(1, 1)
		g.whitePixel.Fill(color.White)
	}
	return g.whitePixel
}

func (g *Game) fillRect(dst *ebiten.Image, r pinboard.Rect, c pinboard.Color, alpha float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	a := c.A * alpha
	op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	dst.DrawImage(g.pixel(), &op)
}

// strokeRect outlines r with a 1px border drawn inside its edges.
func (g *Game) strokeRect(dst *ebiten.Image, r pinboard.Rect, c pinboard.Color) {
	g.fillRect(dst, pinboard.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c, 1)
	g.fillRect(dst, pinboard.Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, c, 1)
	g.fillRect(dst, pinboard.Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c, 1)
	g.fillRect(dst, pinboard.Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, c, 1)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.statusText()))
}

// statusText describes the board and the carry state.
func (g *Game) statusText() string {
	carried := "-"
	if it := g.session.Carried(); it != nil {
		carried = fmt.Sprintf("#%d", it.ID)
		if b, ok := it.Element().(*pinboard.Box); ok && b.Name != "" {
			carried += " " + b.Name
		}
	}
	return fmt.Sprintf("items: %d\ncarrying: %s", g.board.Len()-1, carried)
}

// toRGBA converts a straight-alpha Color to premultiplied color.RGBA.
func toRGBA(c pinboard.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
