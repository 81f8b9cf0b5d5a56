package fov

import (
	"strings"
	"testing"

	"raywizard/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// parseGrid turns '#' into opaque and anything else into transparent cells.
func parseGrid(rows ...string) [][]bool {
	grid := make([][]bool, len(rows))
	for y, row := range rows {
		grid[y] = make([]bool, len(row))
		for x, ch := range row {
			grid[y][x] = ch != '#'
		}
	}
	return grid
}

func openGrid(w, h int) [][]bool {
	rows := make([]string, h)
	for y := range rows {
		rows[y] = strings.Repeat(".", w)
	}
	return parseGrid(rows...)
}

func visibleSet(vis [][]bool) mapset.Set[geom.Point] {
	s := mapset.New[geom.Point]()
	for y, row := range vis {
		for x, v := range row {
			if v {
				s.Put(geom.Point{X: x, Y: y})
			}
		}
	}
	return s
}

func TestOriginAlwaysVisible(t *testing.T) {
	grid := parseGrid("###", "#.#", "###")
	vis := Compute(grid, geom.Point{X: 1, Y: 1}, 5)
	if !vis[1][1] {
		t.Error("origin must be visible")
	}
	if !vis[0][0] || !vis[2][2] {
		t.Error("surrounding walls must be visible")
	}
}

func TestRadiusBound(t *testing.T) {
	grid := openGrid(21, 21)
	vis := Compute(grid, geom.Point{X: 10, Y: 10}, 4)
	for y := range 21 {
		for x := range 21 {
			dx, dy := x-10, y-10
			if dx*dx+dy*dy > 16 && vis[y][x] {
				t.Fatalf("(%d,%d) visible beyond radius", x, y)
			}
		}
	}
	if !vis[10][14] || !vis[14][10] || !vis[6][10] || !vis[10][6] {
		t.Error("cells at exactly radius along the axes must be visible")
	}
}

func TestWallBlocksSight(t *testing.T) {
	grid := parseGrid(
		".......",
		".......",
		"...#...",
		".......",
		".......",
	)
	vis := Compute(grid, geom.Point{X: 3, Y: 4}, 0)
	if !vis[2][3] {
		t.Error("the wall itself should be visible")
	}
	if vis[0][3] {
		t.Error("cell directly behind the wall must be hidden")
	}
	if !vis[0][0] {
		t.Error("open corner should be visible")
	}
}

func TestUnboundedRadiusSeesWholeRoom(t *testing.T) {
	grid := openGrid(30, 12)
	vis := Compute(grid, geom.Point{X: 0, Y: 0}, 0)
	if n := visibleSet(vis).Size(); n != 30*12 {
		t.Errorf("visible = %d, want all %d cells", n, 30*12)
	}
}

func TestSymmetry(t *testing.T) {
	cases := []struct {
		name   string
		radius int
		grid   [][]bool
	}{
		{"single corridor", 0, parseGrid(
			"##########",
			"#........#",
			"##########",
		)},
		{"bent corridor", 0, parseGrid(
			"#######",
			"#....##",
			"####.##",
			"####..#",
			"#######",
		)},
		{"open room with wall segment", 0, parseGrid(
			"...........",
			"...........",
			"....###....",
			"...........",
			"...........",
			"...........",
		)},
		{"pillars with radius", 5, parseGrid(
			"..........",
			".#..#..#..",
			"..........",
			"...#..#...",
			"..........",
			".#....#.#.",
			"..........",
		)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var floors []geom.Point
			for y, row := range tc.grid {
				for x, open := range row {
					if open {
						floors = append(floors, geom.Point{X: x, Y: y})
					}
				}
			}
			views := make(map[geom.Point]mapset.Set[geom.Point], len(floors))
			for _, p := range floors {
				views[p] = visibleSet(Compute(tc.grid, p, tc.radius))
			}
			for _, a := range floors {
				for _, b := range floors {
					if views[a].Has(b) != views[b].Has(a) {
						t.Fatalf("asymmetric: %v sees %v = %v, reverse = %v",
							a, b, views[a].Has(b), views[b].Has(a))
					}
				}
			}
		})
	}
}

func TestInvertSeesThroughRock(t *testing.T) {
	grid := parseGrid(
		"#####",
		"#####",
		"##.##",
		"#####",
		"#####",
	)
	normal := Compute(grid, geom.Point{X: 2, Y: 2}, 2)
	if normal[0][2] {
		t.Fatal("rock should hide the far cell normally")
	}
	earth := Compute(Invert(grid), geom.Point{X: 2, Y: 2}, 2)
	if !earth[0][2] || !earth[2][0] {
		t.Error("inverted pass should see through surrounding rock")
	}
	Merge(normal, earth)
	if !normal[0][2] {
		t.Error("merge should OR the earth pass into the normal grid")
	}
}

func TestOriginOffGrid(t *testing.T) {
	vis := Compute(openGrid(3, 3), geom.Point{X: -1, Y: 0}, 3)
	if visibleSet(vis).Size() != 0 {
		t.Error("off-grid origin should see nothing")
	}
}
