package geom

// Bounds reports whether a point lies on the grid.
type Bounds func(Point) bool

// Line returns the Bresenham line from (x0, y0) to (x1, y1), both ends included.
func Line(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	pts := make([]Point, 0, max(dx, -dy)+1)
	e := dx + dy
	for {
		pts = append(pts, Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Ray walks from origin in steps of d until it leaves the grid. The origin
// itself is not part of the ray, except for the zero direction which yields
// only the origin.
func Ray(origin Point, d Direction, in Bounds) []Point {
	if d.Zero() {
		if in(origin) {
			return []Point{origin}
		}
		return nil
	}
	var pts []Point
	for p := origin.Add(d); in(p); p = p.Add(d) {
		pts = append(pts, p)
	}
	return pts
}

// Square lists every in-bounds cell within Chebyshev distance radius of
// center, row by row.
func Square(center Point, radius int, withCenter bool, in Bounds) []Point {
	var pts []Point
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := Point{x, y}
			if p == center && !withCenter {
				continue
			}
			if in(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}
