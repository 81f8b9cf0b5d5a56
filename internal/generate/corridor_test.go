package generate

import (
	"math/rand"
	"testing"

	"raywizard/internal/gamemap"
	"raywizard/internal/geom"
)

func TestCorridorPathElbows(t *testing.T) {
	cases := []struct {
		name        string
		elbowFirstX bool
		elbow       geom.Point
	}{
		{"horizontal first", true, geom.Point{X: 10, Y: 2}},
		{"vertical first", false, geom.Point{X: 2, Y: 8}},
	}
	for _, tc := range cases {
		path := corridorPath(2, 2, 10, 8, tc.elbowFirstX)
		if path[0] != (geom.Point{X: 2, Y: 2}) {
			t.Errorf("%s: starts at %v", tc.name, path[0])
		}
		if last := path[len(path)-1]; last != (geom.Point{X: 10, Y: 8}) {
			t.Errorf("%s: ends at %v", tc.name, last)
		}
		found := false
		for _, p := range path {
			found = found || p == tc.elbow
		}
		if !found {
			t.Errorf("%s: elbow %v missing", tc.name, tc.elbow)
		}
		for i := 1; i < len(path); i++ {
			if geom.Chebyshev(path[i-1], path[i]) > 1 {
				t.Errorf("%s: gap between %v and %v", tc.name, path[i-1], path[i])
			}
		}
	}
}

func TestCarveCorridorIsTwoWide(t *testing.T) {
	for seed := range 10 {
		gmap := gamemap.New(20, 20, gamemap.TileWall)
		carveCorridor(gmap, 3, 5, 12, 5, rand.New(rand.NewSource(int64(seed))))
		for x := 3; x <= 12; x++ {
			if gmap.Kind(x, 5) != gamemap.TileFloor || gmap.Kind(x-1, 4) != gamemap.TileFloor {
				t.Fatalf("seed %d: corridor not two wide at x=%d", seed, x)
			}
		}
		if gmap.Kind(13, 5) != gamemap.TileWall || gmap.Kind(3, 6) != gamemap.TileWall {
			t.Errorf("seed %d: carved outside the corridor", seed)
		}
	}
}

func TestCarveCorridorClipsAtEdge(t *testing.T) {
	gmap := gamemap.New(10, 10, gamemap.TileWall)
	carveCorridor(gmap, 0, 0, 0, 9, rand.New(rand.NewSource(1)))
	for y := range 10 {
		if gmap.Kind(0, y) != gamemap.TileFloor {
			t.Errorf("(0,%d) should be floor", y)
		}
	}
}

func TestPlaceRoomRejectsOverlap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.RoomMinSize, cfg.RoomMaxSize = 10, 10
	rng := rand.New(rand.NewSource(1))

	room, ok := placeRoom(&cfg, rng, nil)
	if !ok || room != gamemap.NewRect(0, 0, 10, 10) {
		t.Fatalf("first room %+v ok=%v", room, ok)
	}
	if _, ok := placeRoom(&cfg, rng, []gamemap.Rect{room}); ok {
		t.Error("a second full-map room cannot fit")
	}
}

func TestNearestRoom(t *testing.T) {
	rooms := []gamemap.Rect{
		gamemap.NewRect(0, 0, 5, 5),
		gamemap.NewRect(30, 0, 5, 5),
		gamemap.NewRect(10, 10, 5, 5),
	}
	got := nearest(gamemap.NewRect(14, 14, 5, 5), rooms)
	if got != rooms[2] {
		t.Errorf("nearest = %+v", got)
	}
}
