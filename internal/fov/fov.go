// Package fov computes visibility grids with symmetric shadowcasting: if a
// floor cell B is visible from floor cell A then A is visible from B.
package fov

import "raywizard/internal/geom"

// quadrant transforms map (depth, col) within one quadrant to a world offset:
//
//	worldX = ox + depth*dx + col*cx
//	worldY = oy + depth*dy + col*cy
var quadrants = [4][4]int{
	{0, -1, 1, 0}, // north
	{1, 0, 0, 1},  // east
	{0, 1, 1, 0},  // south
	{-1, 0, 0, 1}, // west
}

// slope is the exact fraction num/den with den > 0.
type slope struct{ num, den int }

// Compute returns a [y][x] visibility grid for an observer at origin.
// transparent is indexed [y][x]. Cells farther than radius (Euclidean) are
// never visible; radius <= 0 means unbounded. The origin is always visible.
func Compute(transparent [][]bool, origin geom.Point, radius int) [][]bool {
	h := len(transparent)
	w := 0
	if h > 0 {
		w = len(transparent[0])
	}
	vis := make([][]bool, h)
	for y := range h {
		vis[y] = make([]bool, w)
	}
	if origin.X < 0 || origin.X >= w || origin.Y < 0 || origin.Y >= h {
		return vis
	}
	vis[origin.Y][origin.X] = true

	s := scanner{transparent: transparent, vis: vis, w: w, h: h, origin: origin, radius: radius}
	for _, q := range quadrants {
		s.q = q
		s.scan(1, slope{-1, 1}, slope{1, 1})
	}
	return vis
}

// Invert returns a copy of transparent with every cell flipped. Used for
// earth vision, where rock is see-through and open air blocks.
func Invert(transparent [][]bool) [][]bool {
	out := make([][]bool, len(transparent))
	for y, row := range transparent {
		out[y] = make([]bool, len(row))
		for x, v := range row {
			out[y][x] = !v
		}
	}
	return out
}

// Merge ORs src into dst in place. Both grids must have the same shape.
func Merge(dst, src [][]bool) {
	for y := range min(len(dst), len(src)) {
		for x := range min(len(dst[y]), len(src[y])) {
			dst[y][x] = dst[y][x] || src[y][x]
		}
	}
}

type scanner struct {
	transparent [][]bool
	vis         [][]bool
	w, h        int
	origin      geom.Point
	radius      int
	q           [4]int
}

func (s *scanner) world(depth, col int) (int, int) {
	return s.origin.X + depth*s.q[0] + col*s.q[2], s.origin.Y + depth*s.q[1] + col*s.q[3]
}

// wall treats cells off the grid as opaque.
func (s *scanner) wall(depth, col int) bool {
	x, y := s.world(depth, col)
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return true
	}
	return !s.transparent[y][x]
}

func (s *scanner) inRadius(depth, col int) bool {
	return s.radius <= 0 || depth*depth+col*col <= s.radius*s.radius
}

func (s *scanner) reveal(depth, col int) {
	x, y := s.world(depth, col)
	if x < 0 || x >= s.w || y < 0 || y >= s.h || !s.inRadius(depth, col) {
		return
	}
	s.vis[y][x] = true
}

func (s *scanner) scan(depth int, start, end slope) {
	if s.radius > 0 && depth > s.radius {
		return
	}
	minCol := roundTiesUp(depth, start)
	maxCol := roundTiesDown(depth, end)

	// prev: 0 none, 1 wall, 2 floor
	prev := 0
	for col := minCol; col <= maxCol; col++ {
		isWall := s.wall(depth, col)
		if isWall || symmetric(depth, col, start, end) {
			s.reveal(depth, col)
		}
		if prev == 1 && !isWall {
			start = tileSlope(depth, col)
		}
		if prev == 2 && isWall {
			s.scan(depth+1, start, tileSlope(depth, col))
		}
		if isWall {
			prev = 1
		} else {
			prev = 2
		}
	}
	if prev == 2 {
		s.scan(depth+1, start, end)
	}
}

// tileSlope is the slope of the left edge of the cell: (2col-1)/(2depth).
func tileSlope(depth, col int) slope {
	return slope{2*col - 1, 2 * depth}
}

// symmetric reports whether the cell centre lies inside the sector.
func symmetric(depth, col int, start, end slope) bool {
	return col*start.den >= depth*start.num && col*end.den <= depth*end.num
}

// roundTiesUp is floor(depth*s + 1/2).
func roundTiesUp(depth int, s slope) int {
	return floorDiv(2*depth*s.num+s.den, 2*s.den)
}

// roundTiesDown is ceil(depth*s - 1/2).
func roundTiesDown(depth int, s slope) int {
	return -floorDiv(s.den-2*depth*s.num, 2*s.den)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
