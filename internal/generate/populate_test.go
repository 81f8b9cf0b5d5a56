package generate

import (
	"math/rand"
	"testing"

	"raywizard/internal/engine"
	"raywizard/internal/gamemap"
	"raywizard/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// makeLayout builds a water-logged layout with n rooms in a row.
func makeLayout(n int) *Layout {
	layout := &Layout{Map: gamemap.New(12*n+2, 12, gamemap.TileWater)}
	for i := range n {
		layout.Rooms = append(layout.Rooms, gamemap.NewRect(1+i*12, 1, 9, 9))
	}
	return layout
}

func TestPopulateOneHostilePerInteriorRoom(t *testing.T) {
	for rooms := 1; rooms <= 6; rooms++ {
		layout := makeLayout(rooms)
		got := Populate(layout, 1, rand.New(rand.NewSource(int64(rooms))))
		want := max(rooms-2, 0)
		if len(got.Hostiles) != want {
			t.Errorf("rooms=%d: %d hostiles, want %d", rooms, len(got.Hostiles), want)
		}
		for i, h := range got.Hostiles {
			cx, cy := layout.Rooms[i+1].Center()
			if h.X != cx || h.Y != cy {
				t.Errorf("rooms=%d: hostile %d at (%d,%d), want room center (%d,%d)", rooms, i, h.X, h.Y, cx, cy)
			}
			if layout.Map.Kind(h.X, h.Y) != gamemap.TileFloor {
				t.Errorf("rooms=%d: hostile %d standing in %s", rooms, i, layout.Map.Kind(h.X, h.Y))
			}
		}
	}
}

func TestPopulatePlayerAndStairs(t *testing.T) {
	layout := makeLayout(4)
	got := Populate(layout, 2, rand.New(rand.NewSource(7)))
	px, py := layout.Rooms[0].Center()
	sx, sy := layout.Rooms[3].Center()
	if got.Player != (geom.Point{X: px, Y: py}) {
		t.Errorf("player at %v", got.Player)
	}
	if got.Stairs != (geom.Point{X: sx, Y: sy}) {
		t.Errorf("stairs at %v", got.Stairs)
	}
	for _, p := range []geom.Point{got.Player, got.Stairs} {
		if layout.Map.Kind(p.X, p.Y) != gamemap.TileFloor {
			t.Errorf("%v not forced to floor", p)
		}
	}
}

func TestPopulateCasterMix(t *testing.T) {
	seen := map[engine.Kind]bool{}
	for seed := int64(0); seed < 20; seed++ {
		for _, h := range Populate(makeLayout(8), 1, rand.New(rand.NewSource(seed))).Hostiles {
			seen[h.Kind] = true
		}
	}
	for _, k := range []engine.Kind{engine.KindHunter, engine.KindAcidCaster, engine.KindHeatCaster} {
		if !seen[k] {
			t.Errorf("level 1 never spawned %s", k)
		}
	}
	if seen[engine.KindColdCaster] {
		t.Error("ice casters do not belong on level 1")
	}
}

func TestPopulateLoneRoom(t *testing.T) {
	layout := makeLayout(1)
	got := Populate(layout, 1, rand.New(rand.NewSource(3)))
	if got.Player != got.Stairs {
		t.Errorf("a lone room puts the stairs under the player: %v vs %v", got.Player, got.Stairs)
	}
	if len(got.Hostiles) != 0 {
		t.Errorf("%d hostiles in a lone room", len(got.Hostiles))
	}
}

func TestPickFreeAvoidsClaimedCenter(t *testing.T) {
	room := gamemap.NewRect(0, 0, 6, 6)
	cx, cy := room.Center()
	claimed := mapset.New[geom.Point]()
	claimed.Put(geom.Point{X: cx, Y: cy})

	rng := rand.New(rand.NewSource(1))
	for range 50 {
		p := pickFree(room, rng, claimed)
		if p == (geom.Point{X: cx, Y: cy}) {
			t.Fatal("picked the claimed center")
		}
		if !room.Inner().Contains(p.X, p.Y) {
			t.Fatalf("%v outside the room interior", p)
		}
	}
}
