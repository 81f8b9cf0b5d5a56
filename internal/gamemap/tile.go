package gamemap

import (
	"raywizard/internal/effect"

	"github.com/gdamore/tcell/v2"
)

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileRubble
	TileWater
	TileIceFloor
	TileIceWall
	TileAcid
)

// Tile is the terrain data shared by every cell of the same kind.
// A zero move cost means the locomotion mode cannot enter the cell.
type Tile struct {
	Kind        TileKind
	Name        string
	WalkCost    uint8
	SwimCost    uint8
	FlyCost     uint8
	Transparent bool
	Glyph       rune
	FG, BG      tcell.Color
	Effect      *effect.Effect // applied to whoever ends a turn here
	Dangerous   bool
}

var acidBurn = effect.New(effect.Damage, 1)

var tiles = [...]Tile{
	TileWall: {
		Kind: TileWall, Name: "wall",
		Glyph: ' ', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(47, 29, 5),
	},
	TileFloor: {
		Kind: TileFloor, Name: "floor", WalkCost: 1, FlyCost: 1, Transparent: true,
		Glyph: '.', FG: tcell.NewRGBColor(255, 190, 105), BG: tcell.NewRGBColor(124, 77, 17),
	},
	TileRubble: {
		Kind: TileRubble, Name: "rubble", WalkCost: 1, FlyCost: 1, Transparent: true,
		Glyph: ',', FG: tcell.NewRGBColor(0, 0, 0), BG: tcell.NewRGBColor(124, 77, 17),
	},
	TileWater: {
		Kind: TileWater, Name: "water", SwimCost: 1, FlyCost: 1, Transparent: true,
		Glyph: '~', FG: tcell.NewRGBColor(139, 192, 230), BG: tcell.NewRGBColor(15, 52, 79),
	},
	TileIceFloor: {
		Kind: TileIceFloor, Name: "ice", WalkCost: 1, FlyCost: 1, Transparent: true,
		Glyph: '+', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(77, 131, 170),
	},
	TileIceWall: {
		Kind: TileIceWall, Name: "ice wall", Transparent: true,
		Glyph: '=', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(77, 131, 170),
	},
	TileAcid: {
		Kind: TileAcid, Name: "acid", WalkCost: 1, SwimCost: 1, FlyCost: 1, Transparent: true,
		Glyph: '°', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(86, 208, 86),
		Effect: &acidBurn, Dangerous: true,
	},
}

// Lookup returns the catalog entry for k. Unknown kinds read as wall.
func Lookup(k TileKind) *Tile {
	if int(k) < len(tiles) {
		return &tiles[k]
	}
	return &tiles[TileWall]
}

func (k TileKind) String() string { return Lookup(k).Name }
