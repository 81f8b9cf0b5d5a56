// Package geom holds grid coordinates and the line/area tracing helpers used
// by actions and the dungeon generator.
package geom

// Point is a cell coordinate on the map grid.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Direction) Point {
	return Point{p.X + d.DX, p.Y + d.DY}
}

// Direction is a step offset. Actions only accept offsets in the unit
// neighbourhood; see Valid.
type Direction struct {
	DX, DY int
}

// Zero reports whether d is the "wait" offset.
func (d Direction) Zero() bool { return d.DX == 0 && d.DY == 0 }

// Valid reports whether both components lie in -1..1.
func (d Direction) Valid() bool {
	return d.DX >= -1 && d.DX <= 1 && d.DY >= -1 && d.DY <= 1
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool { return d.DX != 0 && d.DY != 0 }

// Neighbors8 lists the eight unit offsets, cardinals first.
var Neighbors8 = [8]Direction{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// DistSq is the squared Euclidean distance between a and b.
func DistSq(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Manhattan is |dx| + |dy|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev is max(|dx|, |dy|).
func Chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
