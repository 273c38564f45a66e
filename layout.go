package pinboard

import (
	"fmt"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// layoutBox is one [[box]] table. Offsets are relative to the enclosing box.
type layoutBox struct {
	Name   string      `toml:"name"`
	X      float64     `toml:"x"`
	Y      float64     `toml:"y"`
	Width  float64     `toml:"width"`
	Height float64     `toml:"height"`
	Color  string      `toml:"color"`
	Leaf   bool        `toml:"leaf"`
	Boxes  []layoutBox `toml:"box"`
}

// layoutFile is the top-level TOML structure for a layout.
type layoutFile struct {
	Width  float64     `toml:"width"`
	Height float64     `toml:"height"`
	Color  string      `toml:"color"`
	Boxes  []layoutBox `toml:"box"`
}

// LoadLayout parses a TOML layout into a Box tree whose root is the surface:
//
//	width = 640
//	height = 480
//
//	[[box]]
//	name = "tray"
//	x = 20
//	y = 20
//	width = 200
//	height = 160
//	color = "#3b82f6"
//
//	  [[box.box]]
//	  name = "note"
//	  leaf = true
//	  x = 10
//	  y = 10
//	  width = 60
//	  height = 30
//
// Pass the result to NewBoard.
func LoadLayout(data []byte) (*Box, error) {
	var lf layoutFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if lf.Width <= 0 || lf.Height <= 0 {
		return nil, fmt.Errorf("parse layout: surface size %vx%v must be positive", lf.Width, lf.Height)
	}
	root := NewBox("root", 0, 0, lf.Width, lf.Height)
	if lf.Color != "" {
		c, err := parseHexColor(lf.Color)
		if err != nil {
			return nil, fmt.Errorf("parse layout: surface: %w", err)
		}
		root.Color = c
	}
	if err := buildBoxes(root, lf.Boxes, "box"); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return root, nil
}

func buildBoxes(parent *Box, boxes []layoutBox, path string) error {
	for i, lb := range boxes {
		where := fmt.Sprintf("%s[%d]", path, i)
		if lb.Name != "" {
			where = fmt.Sprintf("%s %q", where, lb.Name)
		}
		if lb.Width < 0 || lb.Height < 0 {
			return fmt.Errorf("%s: negative size %vx%v", where, lb.Width, lb.Height)
		}
		var b *Box
		if lb.Leaf {
			b = NewLeafBox(lb.Name, lb.X, lb.Y, lb.Width, lb.Height)
		} else {
			b = NewBox(lb.Name, lb.X, lb.Y, lb.Width, lb.Height)
		}
		if lb.Color != "" {
			c, err := parseHexColor(lb.Color)
			if err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
			b.Color = c
		}
		parent.AddBox(b)
		if err := buildBoxes(b, lb.Boxes, where+".box"); err != nil {
			return err
		}
	}
	return nil
}

// parseHexColor parses "#rgb" or "#rrggbb" into an opaque Color.
func parseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}
