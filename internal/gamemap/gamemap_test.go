package gamemap

import (
	"testing"

	"raywizard/internal/effect"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8, TileWall)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestTileCatalogCosts(t *testing.T) {
	cases := []struct {
		kind             TileKind
		walk, swim, fly  uint8
		transparent      bool
	}{
		{TileWall, 0, 0, 0, false},
		{TileFloor, 1, 0, 1, true},
		{TileRubble, 1, 0, 1, true},
		{TileWater, 0, 1, 1, true},
		{TileIceFloor, 1, 0, 1, true},
		{TileIceWall, 0, 0, 0, true},
		{TileAcid, 1, 1, 1, true},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			tile := Lookup(c.kind)
			if tile.WalkCost != c.walk || tile.SwimCost != c.swim || tile.FlyCost != c.fly {
				t.Errorf("costs = %d/%d/%d, want %d/%d/%d",
					tile.WalkCost, tile.SwimCost, tile.FlyCost, c.walk, c.swim, c.fly)
			}
			if tile.Transparent != c.transparent {
				t.Errorf("transparent = %v, want %v", tile.Transparent, c.transparent)
			}
		})
	}
}

func TestAcidCarriesBurn(t *testing.T) {
	acid := Lookup(TileAcid)
	if !acid.Dangerous {
		t.Error("acid must be flagged dangerous")
	}
	if acid.Effect == nil || acid.Effect.Power != 1 {
		t.Errorf("acid effect = %+v, want power 1", acid.Effect)
	}
	if Lookup(TileFloor).Effect != nil {
		t.Error("floor must not carry an effect")
	}
}

func TestTerrainRules(t *testing.T) {
	cases := []struct {
		name    string
		effect  effect.Kind
		from    TileKind
		to      TileKind
		changed bool
	}{
		{"cold freezes water", effect.Cold, TileWater, TileIceFloor, true},
		{"cold freezes acid", effect.Cold, TileAcid, TileIceFloor, true},
		{"cold ignores floor", effect.Cold, TileFloor, TileFloor, false},
		{"heat melts ice floor", effect.Heat, TileIceFloor, TileWater, true},
		{"heat melts ice wall", effect.Heat, TileIceWall, TileWater, true},
		{"dig breaks wall", effect.Dig, TileWall, TileRubble, true},
		{"dig breaks ice wall", effect.Dig, TileIceWall, TileIceFloor, true},
		{"acid corrodes floor", effect.PlaceAcid, TileFloor, TileAcid, true},
		{"acid floods water", effect.PlaceAcid, TileWater, TileAcid, true},
		{"acid spares walls", effect.PlaceAcid, TileWall, TileWall, false},
		{"plain damage keeps terrain", effect.Damage, TileWater, TileWater, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New(3, 3, c.from)
			changed := m.ApplyTerrain(1, 1, effect.New(c.effect, 1))
			if changed != c.changed {
				t.Errorf("changed = %v, want %v", changed, c.changed)
			}
			if got := m.Kind(1, 1); got != c.to {
				t.Errorf("tile = %v, want %v", got, c.to)
			}
		})
	}
}

func TestColdHeatRoundTrip(t *testing.T) {
	m := New(1, 1, TileWater)
	m.ApplyTerrain(0, 0, effect.New(effect.Cold, 2))
	if m.Kind(0, 0) != TileIceFloor {
		t.Fatalf("after cold: %v", m.Kind(0, 0))
	}
	m.ApplyTerrain(0, 0, effect.New(effect.Heat, 2))
	if m.Kind(0, 0) != TileWater {
		t.Errorf("after heat: %v, want water", m.Kind(0, 0))
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	d := Rect{4, 0, 6, 2}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if !a.Intersects(d) {
		t.Error("shared edge counts as overlap")
	}
}

func TestNewRectInner(t *testing.T) {
	r := NewRect(2, 3, 5, 4)
	if r.X2 != 6 || r.Y2 != 6 {
		t.Fatalf("NewRect = %+v", r)
	}
	in := r.Inner()
	if in != (Rect{3, 4, 5, 5}) {
		t.Errorf("Inner = %+v", in)
	}
}

func TestReveal(t *testing.T) {
	m := New(3, 2, TileFloor)
	vis := [][]bool{{true, false, false}, {false, false, true}}
	m.Reveal(vis)
	if !m.Explored[0][0] || !m.Explored[1][2] || m.Explored[0][1] {
		t.Errorf("explored = %v", m.Explored)
	}
	m.Reveal([][]bool{{false, false, false}, {false, false, false}})
	if !m.Explored[0][0] {
		t.Error("explored memory must persist")
	}
}
