package pinboard

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// scriptStep represents a single action in a replay script.
type scriptStep struct {
	Action string  `toml:"action"`
	Label  string  `toml:"label"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	ToX    float64 `toml:"to_x"`
	ToY    float64 `toml:"to_y"`
	Button string  `toml:"button"`
	Frames int     `toml:"frames"`
}

// script is the top-level TOML structure for a replay script.
type script struct {
	Steps []scriptStep `toml:"steps"`
}

var scriptActions = map[string]bool{
	"move": true, "down": true, "up": true,
	"click": true, "rightclick": true, "bothclick": true, "drag": true,
	"place": true, "stamp": true, "cancel": true,
	"wait": true, "screenshot": true,
}

// Runner replays a script of pointer actions against a Session, one step per
// call to Step. Pointer actions resolve their target with Board.ElementAt.
type Runner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// OnScreenshot, when set, is called for "screenshot" steps.
	OnScreenshot func(label string)
}

// LoadScript parses a TOML replay script:
//
//	[[steps]]
//	action = "click"
//	x = 40
//	y = 40
//
// Actions: move, down, up (button = "left"|"right"), click, rightclick,
// bothclick, drag (x, y to to_x, to_y), place, stamp, cancel, wait (frames),
// screenshot (label).
func LoadScript(data []byte) (*Runner, error) {
	var sc script
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseButton(st.Button); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Runner{steps: sc.Steps}, nil
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

// Done reports whether all steps have been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Len returns the number of steps in the script.
func (r *Runner) Len() int {
	return len(r.steps)
}

// Step executes the next step against s, or counts down a pending wait.
func (r *Runner) Step(s *Session) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.exec(s, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// Run executes every remaining step immediately. Waits are skipped.
func (r *Runner) Run(s *Session) {
	for !r.done {
		r.waitCount = 0
		r.Step(s)
	}
}

func (r *Runner) exec(s *Session, st scriptStep) {
	b := s.Board()
	button, _ := parseButton(st.Button)
	switch st.Action {
	case "move":
		s.PointerEvent(PointerMove, st.X, st.Y, button, b.ElementAt(st.X, st.Y))
	case "down":
		s.PointerEvent(PointerDown, st.X, st.Y, button, b.ElementAt(st.X, st.Y))
	case "up":
		s.PointerEvent(PointerUp, st.X, st.Y, button, b.ElementAt(st.X, st.Y))
	case "click":
		click(s, st.X, st.Y, MouseButtonLeft)
	case "rightclick":
		click(s, st.X, st.Y, MouseButtonRight)
	case "bothclick":
		target := b.ElementAt(st.X, st.Y)
		s.PointerEvent(PointerDown, st.X, st.Y, MouseButtonLeft, target)
		s.PointerEvent(PointerDown, st.X, st.Y, MouseButtonRight, target)
		s.PointerEvent(PointerUp, st.X, st.Y, MouseButtonLeft, target)
		s.PointerEvent(PointerUp, st.X, st.Y, MouseButtonRight, target)
	case "drag":
		s.PointerEvent(PointerMove, st.X, st.Y, button, b.ElementAt(st.X, st.Y))
		s.PointerEvent(PointerMove, st.ToX, st.ToY, button, b.ElementAt(st.ToX, st.ToY))
	case "place":
		s.Place()
	case "stamp":
		s.Stamp()
	case "cancel":
		s.Cancel()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	}
}

// click presses and releases button at (x, y) on whatever is under the point.
func click(s *Session, x, y float64, button MouseButton) {
	target := s.Board().ElementAt(x, y)
	s.PointerEvent(PointerDown, x, y, button, target)
	s.PointerEvent(PointerUp, x, y, button, target)
}
