package gamemap

import "raywizard/internal/effect"

// terrainRules maps an effect kind to the tile replacements it performs.
// PlaceAcid is handled separately since it converts everything but walls.
var terrainRules = map[effect.Kind]map[TileKind]TileKind{
	effect.Cold: {
		TileWater: TileIceFloor,
		TileAcid:  TileIceFloor,
	},
	effect.Heat: {
		TileIceFloor: TileWater,
		TileIceWall:  TileWater,
	},
	effect.Dig: {
		TileWall:    TileRubble,
		TileIceWall: TileIceFloor,
	},
}

// Transform reports the tile kind that k becomes under an effect of kind e.
func Transform(e effect.Kind, k TileKind) (TileKind, bool) {
	if e == effect.PlaceAcid {
		if k == TileWall || k == TileIceWall || k == TileAcid {
			return k, false
		}
		return TileAcid, true
	}
	to, ok := terrainRules[e][k]
	return to, ok
}

// ApplyTerrain mutates the cell at (x, y) according to e and reports whether
// the tile changed.
func (m *GameMap) ApplyTerrain(x, y int, e effect.Effect) bool {
	if !m.InBounds(x, y) {
		return false
	}
	to, ok := Transform(e.Kind, m.Tiles[y][x])
	if !ok {
		return false
	}
	m.Tiles[y][x] = to
	return true
}
