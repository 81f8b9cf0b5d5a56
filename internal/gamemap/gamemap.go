// Package gamemap holds the terrain grid of one dungeon level, the tile
// catalog and the effect-driven terrain rules.
package gamemap

// Rect is an axis-aligned rectangle with inclusive edges, used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds the rectangle of size w×h whose top-left corner is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Inner is the rectangle without its one-cell border.
func (r Rect) Inner() Rect {
	return Rect{r.X1 + 1, r.Y1 + 1, r.X2 - 1, r.Y2 - 1}
}

// Contains reports whether (x, y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Width and Height are the inclusive extents.
func (r Rect) Width() int  { return r.X2 - r.X1 + 1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// GameMap is the tile grid of one level plus the player's explored memory.
// Tiles are stored by kind; Tile() resolves the catalog entry.
type GameMap struct {
	Width, Height int
	Tiles         [][]TileKind
	Explored      [][]bool
}

// New creates a GameMap filled with fill.
func New(width, height int, fill TileKind) *GameMap {
	m := &GameMap{Width: width, Height: height}
	m.Tiles = make([][]TileKind, height)
	m.Explored = make([][]bool, height)
	for y := range height {
		m.Tiles[y] = make([]TileKind, width)
		m.Explored[y] = make([]bool, width)
	}
	m.Fill(fill)
	return m
}

// Fill overwrites every cell with k.
func (m *GameMap) Fill(k TileKind) {
	for y := range m.Height {
		for x := range m.Width {
			m.Tiles[y][x] = k
		}
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Kind returns the tile kind at (x, y). Panics if out of bounds.
func (m *GameMap) Kind(x, y int) TileKind {
	return m.Tiles[y][x]
}

// Tile returns the catalog entry for the cell at (x, y). Panics if out of bounds.
func (m *GameMap) Tile(x, y int) *Tile {
	return Lookup(m.Tiles[y][x])
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, k TileKind) {
	m.Tiles[y][x] = k
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tile(x, y).Transparent
}

// Transparency returns a fresh [y][x] transparency grid.
func (m *GameMap) Transparency() [][]bool {
	grid := make([][]bool, m.Height)
	for y := range m.Height {
		grid[y] = make([]bool, m.Width)
		for x := range m.Width {
			grid[y][x] = m.Tile(x, y).Transparent
		}
	}
	return grid
}

// Reveal merges a visibility grid into the explored memory.
func (m *GameMap) Reveal(visible [][]bool) {
	for y := range min(m.Height, len(visible)) {
		for x := range min(m.Width, len(visible[y])) {
			if visible[y][x] {
				m.Explored[y][x] = true
			}
		}
	}
}
