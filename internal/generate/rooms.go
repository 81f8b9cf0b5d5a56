package generate

import (
	"math/rand"

	"raywizard/internal/gamemap"
	"raywizard/internal/geom"
)

// placeRoom proposes one room of random size fully inside the map and
// rejects it if it touches any accepted room.
func placeRoom(cfg *Config, rng *rand.Rand, accepted []gamemap.Rect) (gamemap.Rect, bool) {
	w := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
	h := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
	x := rng.Intn(cfg.Width - w + 1)
	y := rng.Intn(cfg.Height - h + 1)
	room := gamemap.NewRect(x, y, w, h)
	for _, other := range accepted {
		if room.Intersects(other) {
			return gamemap.Rect{}, false
		}
	}
	return room, true
}

// carveRoom opens the room's interior; the one-cell border stays wall.
func carveRoom(m *gamemap.GameMap, room gamemap.Rect) {
	in := room.Inner()
	for y := in.Y1; y <= in.Y2; y++ {
		for x := in.X1; x <= in.X2; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
}

// nearest returns the room whose center is closest to room's by Manhattan
// distance. Ties go to the earliest room.
func nearest(room gamemap.Rect, rooms []gamemap.Rect) gamemap.Rect {
	cx, cy := room.Center()
	from := geom.Point{X: cx, Y: cy}
	best, bestD := rooms[0], -1
	for _, r := range rooms {
		x, y := r.Center()
		if d := geom.Manhattan(from, geom.Point{X: x, Y: y}); bestD < 0 || d < bestD {
			best, bestD = r, d
		}
	}
	return best
}
