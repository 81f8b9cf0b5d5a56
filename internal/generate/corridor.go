package generate

import (
	"math/rand"

	"raywizard/internal/gamemap"
	"raywizard/internal/geom"
)

// corridorPath is the L-shaped tunnel between two points: two straight
// segments meeting at the elbow. The elbow cell appears twice.
func corridorPath(x1, y1, x2, y2 int, elbowFirstX bool) []geom.Point {
	mx, my := x1, y2
	if elbowFirstX {
		mx, my = x2, y1
	}
	return append(geom.Line(x1, y1, mx, my), geom.Line(mx, my, x2, y2)...)
}

// carveCorridor digs a two-wide L-shaped tunnel between (x1,y1) and (x2,y2).
// The elbow corner is picked by a coin flip.
func carveCorridor(m *gamemap.GameMap, x1, y1, x2, y2 int, rng *rand.Rand) {
	path := corridorPath(x1, y1, x2, y2, rng.Intn(2) == 0)
	for _, p := range path {
		carve(m, p.X, p.Y)
		carve(m, p.X-1, p.Y-1)
	}
}

func carve(m *gamemap.GameMap, x, y int) {
	if m.InBounds(x, y) {
		m.Set(x, y, gamemap.TileFloor)
	}
}
