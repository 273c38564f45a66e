package pinboard

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// coord returns a multiple of 0.25 in [-50, 350). Quarter steps keep every
// frame conversion exact in float64.
func coord(r *rand.Rand) float64 {
	return float64(r.IntN(1600))/4 - 50
}

func liveItems(b *Board) (all, containers []*Item) {
	b.Walk(func(it *Item) bool {
		all = append(all, it)
		if it.IsContainer() {
			containers = append(containers, it)
		}
		return true
	})
	return all, containers
}

func pick(r *rand.Rand, items []*Item) *Item {
	return items[r.IntN(len(items))]
}

// mutate applies one random structural operation and returns its name.
func mutate(r *rand.Rand, b *Board) string {
	all, containers := liveItems(b)
	nonRoot := all[1:]
	if len(nonRoot) == 0 {
		b.Create(b.Root(), NewBox("seed", coord(r), coord(r), 120, 120))
		return "create"
	}

	switch op := r.IntN(6); {
	case op == 0 || len(nonRoot) < 3:
		w, h := float64(10+r.IntN(150)), float64(10+r.IntN(150))
		parent := pick(r, containers)
		if r.IntN(3) == 0 {
			b.Create(parent, NewLeafBox("leaf", coord(r), coord(r), w, h))
		} else {
			b.Create(parent, NewBox("box", coord(r), coord(r), w, h))
		}
		return "create"
	case op == 1:
		b.Move(pick(r, nonRoot), coord(r), coord(r))
		return "move"
	case op == 2:
		b.PlaceDown(pick(r, nonRoot), coord(r), coord(r), nil)
		return "placeDown"
	case op == 3 && len(all) > 6:
		b.Remove(pick(r, nonRoot))
		return "remove"
	case op == 4 && len(all) < 40:
		b.Clone(pick(r, nonRoot))
		return "clone"
	default:
		it := pick(r, nonRoot)
		target := pick(r, containers)
		if isAncestor(it, target) {
			return "skip"
		}
		b.Reparent(it, target, coord(r), coord(r))
		return "reparent"
	}
}

func TestRandomSequencesKeepBoardConsistent(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			r := rand.New(rand.NewPCG(seed, 0x9e3779b9))
			b := NewBoard(NewBox("surface", 0, 0, 400, 400))
			b.SetDebugMode(true)

			for step := 0; step < 200; step++ {
				op := mutate(r, b)
				if err := b.Verify(); err != nil {
					t.Fatalf("step %d (%s): %v", step, op, err)
				}

				all, _ := liveItems(b)
				from, to := pick(r, all), pick(r, all)
				px, py := coord(r), coord(r)
				ax, ay := ToRootFrame(px, py, from)
				lx, ly := ToItemFrame(ax, ay, to)
				if rx, ry := ToRootFrame(lx, ly, to); rx != ax || ry != ay {
					t.Fatalf("step %d (%s): round trip %d->%d of (%v, %v) gave (%v, %v), want (%v, %v)",
						step, op, from.ID, to.ID, px, py, rx, ry, ax, ay)
				}
			}
		})
	}
}
