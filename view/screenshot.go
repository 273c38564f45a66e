package view

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next drawn frame to be saved under
// RunConfig.ScreenshotDir. Several labels queued in one frame share the image.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots saves the finished frame once per queued label. Errors go
// to the board logger and never stop the game.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	logger := g.board.Logger()
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.cfg.ScreenshotDir, 0o755); err != nil {
		logger.Error("screenshot", "dir", g.cfg.ScreenshotDir, "err", err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	unpremultiply(img.Pix, pixels)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshotQueue {
		path, err := saveFrame(g.cfg.ScreenshotDir, screenshotName(stamp, label), img)
		if err != nil {
			logger.Error("screenshot", "label", label, "err", err)
			continue
		}
		logger.Info("screenshot", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA pixels into straight-alpha dst.
func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}

// saveFrame writes img as dir/name and returns the path. Frames are encoded
// at BestSpeed so a burst of script screenshots does not stall the loop.
func saveFrame(dir, name string, img image.Image) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot %s: %w", name, err)
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("screenshot %s: %w", name, err)
	}
	return path, f.Close()
}

// screenshotName builds "<stamp>_<label>.png". The label is lowercased and
// anything outside [a-z0-9.-] becomes an underscore; a blank label is "frame".
func screenshotName(stamp, label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = "frame"
	}
	label = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
	return stamp + "_" + label + ".png"
}
