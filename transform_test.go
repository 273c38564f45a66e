package pinboard

import "testing"

// newChain builds root -> A(13.5, 7.25) -> B(2.25, 4.5) -> C(1, 1) and a
// sibling branch root -> D(300, 20). Offsets are exact binary fractions.
func newChain(t *testing.T) (b *Board, a, bb, c, d *Item) {
	t.Helper()
	surface := NewBox("surface", 0, 0, 1000, 1000)
	ab := surface.AddBox(NewBox("A", 13.5, 7.25, 200, 200))
	bbx := ab.AddBox(NewBox("B", 2.25, 4.5, 100, 100))
	cb := bbx.AddBox(NewBox("C", 1, 1, 10, 10))
	db := surface.AddBox(NewBox("D", 300, 20, 100, 100))
	b = NewBoard(surface)
	return b, b.ItemFor(ab), b.ItemFor(bbx), b.ItemFor(cb), b.ItemFor(db)
}

func TestToRootFrame(t *testing.T) {
	_, a, _, c, _ := newChain(t)

	x, y := ToRootFrame(0, 0, c)
	if x != 16.75 || y != 12.75 {
		t.Errorf("ToRootFrame(0,0,C) = (%v, %v), want (16.75, 12.75)", x, y)
	}
	x, y = ToRootFrame(1, 2, a)
	if x != 14.5 || y != 9.25 {
		t.Errorf("ToRootFrame(1,2,A) = (%v, %v), want (14.5, 9.25)", x, y)
	}
}

func TestToRootFrameAtRootIsIdentity(t *testing.T) {
	b, _, _, _, _ := newChain(t)
	x, y := ToRootFrame(3, 4, b.Root())
	if x != 3 || y != 4 {
		t.Errorf("ToRootFrame at root = (%v, %v), want (3, 4)", x, y)
	}
	x, y = ToItemFrame(3, 4, b.Root())
	if x != 3 || y != 4 {
		t.Errorf("ToItemFrame at root = (%v, %v), want (3, 4)", x, y)
	}
}

func TestToItemFrame(t *testing.T) {
	_, _, bb, _, _ := newChain(t)
	x, y := ToItemFrame(20, 20, bb)
	if x != 4.25 || y != 8.25 {
		t.Errorf("ToItemFrame(20,20,B) = (%v, %v), want (4.25, 8.25)", x, y)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	_, a, bb, c, d := newChain(t)
	items := []*Item{a, bb, c, d}
	points := [][2]float64{{0, 0}, {5.5, -3.25}, {120, 64.125}}

	for _, from := range items {
		for _, to := range items {
			for _, p := range points {
				ax, ay := ToRootFrame(p[0], p[1], from)
				lx, ly := ToItemFrame(ax, ay, to)
				rx, ry := ToRootFrame(lx, ly, to)
				if rx != ax || ry != ay {
					t.Errorf("round trip %d->%d of %v: got (%v, %v), want (%v, %v)",
						from.ID, to.ID, p, rx, ry, ax, ay)
				}
			}
		}
	}
}

func TestRoundTripSurvivesReparent(t *testing.T) {
	b, a, _, c, d := newChain(t)
	ax, ay := c.RootPosition()

	b.Reparent(c, d, 0, 0)
	lx, ly := ToItemFrame(ax, ay, d)
	b.Move(c, lx, ly)

	if x, y := c.RootPosition(); x != ax || y != ay {
		t.Errorf("root position after reparent = (%v, %v), want (%v, %v)", x, y, ax, ay)
	}
	b.Reparent(c, a, 0, 0)
	lx, ly = ToItemFrame(ax, ay, a)
	b.Move(c, lx, ly)
	if x, y := c.RootPosition(); x != ax || y != ay {
		t.Errorf("root position after second reparent = (%v, %v), want (%v, %v)", x, y, ax, ay)
	}
	assertVerified(t, b)
}

func TestLocalRootHelpers(t *testing.T) {
	_, _, bb, _, _ := newChain(t)
	x, y := bb.LocalToRoot(1, 1)
	lx, ly := bb.RootToLocal(x, y)
	if lx != 1 || ly != 1 {
		t.Errorf("RootToLocal(LocalToRoot(1,1)) = (%v, %v)", lx, ly)
	}
	if x != 16.75 || y != 12.75 {
		t.Errorf("LocalToRoot(1,1) = (%v, %v), want (16.75, 12.75)", x, y)
	}
}
