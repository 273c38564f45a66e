package view

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/pinboard"
	"github.com/tanema/gween/ease"
)

// cancelGlideDuration is how long, in seconds, a cancelled item takes to
// glide home.
const cancelGlideDuration = 0.25

// RunConfig configures a window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowStatus draws FPS, item count and the carried item in the corner.
	ShowStatus bool
	// ScreenshotDir is where F12 and script screenshots are written.
	// Defaults to "screenshots".
	ScreenshotDir string
}

// Game implements ebiten.Game for one board and one carry session.
type Game struct {
	board   *pinboard.Board
	session *pinboard.Session
	cfg     RunConfig

	// ctx ends the game loop when done; nil means run until the window closes.
	ctx context.Context

	runner *pinboard.Runner
	glide  *pinboard.Glide

	// Last physical pointer state, for edge detection.
	mouseX, mouseY float64
	left, right    bool

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string

	whitePixel *ebiten.Image
}

// NewGame creates a Game. A zero Width or Height falls back to the root
// item's size.
func NewGame(b *pinboard.Board, s *pinboard.Session, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = int(b.Root().Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(b.Root().Height)
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	return &Game{board: b, session: s, cfg: cfg}
}

// Run opens a window for b and blocks until it is closed.
func Run(b *pinboard.Board, s *pinboard.Session, cfg RunConfig) error {
	return NewGame(b, s, cfg).Run()
}

// Run opens the game's window and blocks until it is closed.
func (g *Game) Run() error {
	return g.RunContext(context.Background())
}

// RunContext is Run, but the window also closes when ctx is done. In that
// case the context's error is returned.
func (g *Game) RunContext(ctx context.Context) error {
	g.ctx = ctx
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return ctx.Err()
}

// SetRunner attaches a replay script. It is stepped once per frame while
// the inject queue is empty; its screenshot steps are captured by the view.
func (g *Game) SetRunner(r *pinboard.Runner) {
	g.runner = r
	if r != nil {
		r.OnScreenshot = g.Screenshot
	}
}

// Update advances animations and consumes one frame of input.
func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.updateGlide(1 / float32(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}

	if g.processInjectedInput() {
		return nil
	}
	if g.runner != nil && !g.runner.Done() {
		g.runner.Step(g.session)
		return nil
	}
	mx, my := ebiten.CursorPosition()
	g.processPointer(float64(mx), float64(my),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	return nil
}

// Layout reports the configured surface size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) updateGlide(dt float32) {
	if g.glide == nil {
		return
	}
	// Picking the item up again hands it back to the cursor.
	if g.session.Carried() == g.glide.Item() {
		g.glide.Stop()
		g.glide = nil
		return
	}
	g.glide.Update(dt)
	if g.glide.Done {
		g.glide = nil
	}
}

// cancel abandons the carry with an animated return.
func (g *Game) cancel() {
	if glide := g.session.CancelGlide(cancelGlideDuration, ease.OutQuad); glide != nil {
		g.glide = glide
	}
}
