package pinboard

import (
	"os"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
[[steps]]
action = "screenshot"
label = "initial"

[[steps]]
action = "drag"
x = 20
y = 20
to_x = 300
to_y = 300

[[steps]]
action = "wait"
frames = 3

[[steps]]
action = "down"
button = "right"
`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.Len() != 4 {
		t.Fatalf("expected 4 steps, got %d", runner.Len())
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if st := runner.steps[1]; st.X != 20 || st.ToX != 300 || st.ToY != 300 {
		t.Errorf("step 1 mismatch: %+v", st)
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Button != "right" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":         `not toml [[`,
		"empty":          `steps = []`,
		"unknown action": "[[steps]]\naction = \"jump\"",
		"unknown button": "[[steps]]\naction = \"down\"\nbutton = \"middle\"",
	}
	for name, src := range cases {
		if _, err := LoadScript([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerRun_PickupDragPlace(t *testing.T) {
	b, _, bb := newNested(t)
	s := NewSession(b)
	runner, err := LoadScript([]byte(`
[[steps]]
action = "click"
x = 20
y = 20

[[steps]]
action = "drag"
x = 100
y = 100
to_x = 300
to_y = 300

[[steps]]
action = "wait"
frames = 10

[[steps]]
action = "click"
x = 300
y = 300
`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Run(s)
	if !runner.Done() {
		t.Fatal("runner should be done after Run")
	}
	if s.IsCarrying() {
		t.Error("second click should have placed B")
	}
	if bb.Parent() != b.Root() {
		t.Errorf("B parent = %v, want root", bb.Parent())
	}
	assertPos(t, bb, 290, 290)
	assertVerified(t, b)
}

func TestRunnerStep_Wait(t *testing.T) {
	b, _, _ := newNested(t)
	s := NewSession(b)
	runner, err := LoadScript([]byte(`
[[steps]]
action = "move"
x = 5
y = 5

[[steps]]
action = "wait"
frames = 3

[[steps]]
action = "move"
x = 7
y = 7
`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		runner.Step(s)
	}
	if runner.Done() {
		t.Fatal("runner finished before the wait elapsed")
	}
	if x, _ := s.Cursor(); x != 5 {
		t.Errorf("cursor X = %v during wait, want 5", x)
	}
	runner.Step(s)
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if x, _ := s.Cursor(); x != 7 {
		t.Errorf("cursor X = %v, want 7", x)
	}
}

func TestRunnerScreenshotCallback(t *testing.T) {
	b, _, _ := newNested(t)
	runner, err := LoadScript([]byte("[[steps]]\naction = \"screenshot\"\nlabel = \"after\""))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	runner.OnScreenshot = func(label string) { got = append(got, label) }
	runner.Run(NewSession(b))
	if len(got) != 1 || got[0] != "after" {
		t.Errorf("screenshots = %v, want [after]", got)
	}
}

func TestRunnerBothClickRemoves(t *testing.T) {
	b, _, bb := newNested(t)
	runner, err := LoadScript([]byte("[[steps]]\naction = \"bothclick\"\nx = 20\ny = 20"))
	if err != nil {
		t.Fatal(err)
	}
	runner.Run(NewSession(b))
	if !bb.IsDetached() {
		t.Error("bothclick should remove B")
	}
}

func TestExampleDeskReplay(t *testing.T) {
	layout, err := os.ReadFile("examples/layouts/desk.toml")
	if err != nil {
		t.Fatal(err)
	}
	steps, err := os.ReadFile("examples/layouts/tidy.toml")
	if err != nil {
		t.Fatal(err)
	}
	root, err := LoadLayout(layout)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBoard(root)
	b.SetDebugMode(true)
	runner, err := LoadScript(steps)
	if err != nil {
		t.Fatal(err)
	}

	byName := func(name string) *Item {
		var found *Item
		b.Walk(func(it *Item) bool {
			if bx, ok := it.Element().(*Box); ok && bx.Name == name {
				found = it
			}
			return found == nil
		})
		return found
	}
	sticky := byName("sticky")

	s := NewSession(b)
	runner.Run(s)

	archive, folder, receipt := byName("archive"), byName("folder"), byName("receipt")
	if folder.Parent() != archive || receipt.Parent() != folder {
		t.Errorf("folder under %v, receipt under %v; want archive and folder", folder.Parent(), receipt.Parent())
	}
	if archive.NumChildren() != 3 {
		t.Errorf("archive has %d children, want folder and two stamps", archive.NumChildren())
	}
	if !sticky.IsDetached() {
		t.Error("sticky should be removed")
	}
	if s.IsCarrying() {
		t.Error("the memo copy should have been cancelled")
	}
	if b.Len() != 8 {
		t.Errorf("Len = %d, want 8", b.Len())
	}
	assertVerified(t, b)
}
