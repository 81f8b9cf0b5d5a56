package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(w, h int) Bounds {
	return func(p Point) bool { return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h }
}

func TestLineEndpoints(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
		length         int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical up", 2, 7, 2, 3, 5},
		{"diagonal", 0, 0, 4, 4, 5},
		{"shallow", 0, 0, 6, 2, 7},
		{"single point", 3, 3, 3, 3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts := Line(tc.x0, tc.y0, tc.x1, tc.y1)
			require.Len(t, pts, tc.length)
			assert.Equal(t, Point{tc.x0, tc.y0}, pts[0])
			assert.Equal(t, Point{tc.x1, tc.y1}, pts[len(pts)-1])
			for i := 1; i < len(pts); i++ {
				assert.Equal(t, 1, Chebyshev(pts[i-1], pts[i]), "line must be 8-connected")
			}
		})
	}
}

func TestRayStopsAtEdge(t *testing.T) {
	pts := Ray(Point{2, 2}, Direction{1, 0}, box(6, 6))
	assert.Equal(t, []Point{{3, 2}, {4, 2}, {5, 2}}, pts)

	pts = Ray(Point{0, 0}, Direction{-1, -1}, box(6, 6))
	assert.Empty(t, pts)
}

func TestRayZeroDirectionTargetsOrigin(t *testing.T) {
	assert.Equal(t, []Point{{1, 1}}, Ray(Point{1, 1}, Direction{}, box(3, 3)))
}

func TestSquareExcludesCenter(t *testing.T) {
	pts := Square(Point{5, 5}, 2, false, box(20, 20))
	assert.Len(t, pts, 24)
	assert.NotContains(t, pts, Point{5, 5})

	pts = Square(Point{5, 5}, 2, true, box(20, 20))
	assert.Len(t, pts, 25)
	assert.Contains(t, pts, Point{5, 5})
}

func TestSquareClipsToBounds(t *testing.T) {
	pts := Square(Point{0, 0}, 1, true, box(10, 10))
	assert.ElementsMatch(t, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, pts)
}

func TestDirectionValid(t *testing.T) {
	assert.True(t, Direction{-1, 1}.Valid())
	assert.True(t, Direction{}.Valid())
	assert.False(t, Direction{2, 0}.Valid())
	assert.False(t, Direction{0, -2}.Valid())
}
