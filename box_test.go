package pinboard

import "testing"

func TestBoxBoundsAreRootRelative(t *testing.T) {
	root := NewBox("root", 0, 0, 100, 100)
	a := root.AddBox(NewBox("a", 10, 20, 50, 50))
	c := a.AddBox(NewLeafBox("c", 5, 5, 10, 10))

	if got, want := c.Bounds(), (Rect{X: 15, Y: 25, Width: 10, Height: 10}); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
	if c.IsContainer() || !a.IsContainer() {
		t.Error("container flags mismatch")
	}
	if c.Parent() != Element(a) {
		t.Error("Parent should return the visual parent")
	}
	if root.Parent() != nil {
		t.Error("unparented box should report a nil Parent")
	}
}

func TestBoxAdoptMovesBetweenParents(t *testing.T) {
	p1 := NewBox("p1", 0, 0, 10, 10)
	p2 := NewBox("p2", 0, 0, 10, 10)
	c := p1.AddBox(NewBox("c", 0, 0, 1, 1))

	p2.Adopt(c)
	if len(p1.Boxes()) != 0 || len(p2.Boxes()) != 1 || c.ParentBox() != p2 {
		t.Error("Adopt should detach from the previous parent")
	}

	// Re-adopting by the same parent moves the child to the end.
	d := p2.AddBox(NewBox("d", 0, 0, 1, 1))
	p2.Adopt(c)
	if p2.Boxes()[0] != d || p2.Boxes()[1] != c {
		t.Error("re-adopted child should be last")
	}
}

func TestBoxAdoptCyclePanics(t *testing.T) {
	a := NewBox("a", 0, 0, 10, 10)
	b := a.AddBox(NewBox("b", 0, 0, 5, 5))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adopting an ancestor")
		}
	}()
	b.Adopt(a)
}

func TestBoxCloneIsDeep(t *testing.T) {
	a := NewBox("a", 3, 4, 10, 10)
	a.Color = Color{R: 1, A: 1}
	a.AddBox(NewLeafBox("leaf", 1, 1, 2, 2))

	c := a.CloneElement().(*Box)
	if c == a || c.ParentBox() != nil {
		t.Fatal("clone should be a new unparented box")
	}
	if c.Color != a.Color || c.Name != "a" {
		t.Error("clone should copy name and color")
	}
	if len(c.Boxes()) != 1 || c.Boxes()[0] == a.Boxes()[0] || c.Boxes()[0].ParentBox() != c {
		t.Error("children should be copied and re-parented")
	}
	c.Boxes()[0].SetOffset(9, 9)
	if x, _ := a.Boxes()[0].Offset(); x != 1 {
		t.Error("mutating the clone changed the original")
	}
}
