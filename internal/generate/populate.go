package generate

import (
	"math/rand"

	"raywizard/internal/engine"
	"raywizard/internal/gamemap"
	"raywizard/internal/geom"

	"github.com/zyedidia/generic/mapset"
)

// Spawn is one hostile to create.
type Spawn struct {
	Kind engine.Kind
	X, Y int
}

// Placement is where Populate put everything.
type Placement struct {
	Player   geom.Point
	Stairs   geom.Point
	Hostiles []Spawn
}

// Populate picks the player spawn in the first room, the stairs in the
// last, and one hostile at the center of every room in between. Each of
// those cells is forced to floor so nothing starts in a wall or a pool.
func Populate(layout *Layout, level int, rng *rand.Rand) Placement {
	rooms := layout.Rooms
	claimed := mapset.New[geom.Point]()
	claim := func(room gamemap.Rect) geom.Point {
		p := pickFree(room, rng, claimed)
		claimed.Put(p)
		layout.Map.Set(p.X, p.Y, gamemap.TileFloor)
		return p
	}

	var out Placement
	out.Player = claim(rooms[0])
	if len(rooms) > 2 {
		for _, room := range rooms[1 : len(rooms)-1] {
			kind := engine.KindHunter
			if rng.Intn(2) == 1 {
				kind = casterFor(level, rng)
			}
			p := claim(room)
			out.Hostiles = append(out.Hostiles, Spawn{Kind: kind, X: p.X, Y: p.Y})
		}
	}
	// a lone room holds both the player and the stairs
	x, y := rooms[len(rooms)-1].Center()
	out.Stairs = geom.Point{X: x, Y: y}
	layout.Map.Set(x, y, gamemap.TileFloor)
	return out
}

// casterFor picks the ranged hostile of a level: acid or fire on the first,
// ice below.
func casterFor(level int, rng *rand.Rand) engine.Kind {
	if level != 1 {
		return engine.KindColdCaster
	}
	if rng.Intn(2) == 1 {
		return engine.KindAcidCaster
	}
	return engine.KindHeatCaster
}

// pickFree returns the room's center, or a random interior cell if the
// center is already claimed. It tries up to 20 times before settling for
// the center anyway.
func pickFree(room gamemap.Rect, rng *rand.Rand, claimed mapset.Set[geom.Point]) geom.Point {
	cx, cy := room.Center()
	center := geom.Point{X: cx, Y: cy}
	if !claimed.Has(center) {
		return center
	}
	in := room.Inner()
	const maxAttempts = 20
	for range maxAttempts {
		p := geom.Point{X: in.X1 + rng.Intn(in.Width()), Y: in.Y1 + rng.Intn(in.Height())}
		if !claimed.Has(p) {
			return p
		}
	}
	return center
}
