package engine

import (
	"raywizard/internal/fov"
	"raywizard/internal/geom"
)

// StatusEarthVision lets the bearer see the rock right next to it.
const StatusEarthVision = "earth vision"

// earthReach is how far earth vision reaches into rock, in Chebyshev steps.
const earthReach = 1

// FOV returns the [y][x] grid of cells a can see. With shared set, the
// personal vision of every same-faction ally that shares vision is merged
// in; allies never contribute their own shared vision.
func (w *World) FOV(a *Actor, shared bool) [][]bool {
	transparent := w.Level.Map.Transparency()
	vis := w.personalFOV(a, transparent)
	if !shared {
		return vis
	}
	for _, other := range w.Level.actors {
		if other == a || !other.Info().ShareVision || other.Faction != a.Faction {
			continue
		}
		fov.Merge(vis, w.personalFOV(other, transparent))
	}
	return vis
}

func (w *World) personalFOV(a *Actor, transparent [][]bool) [][]bool {
	radius := a.Info().ViewRadius
	vis := fov.Compute(transparent, a.Pos(), radius)
	if a.HasStatus(StatusEarthVision) {
		origin := a.Pos()
		rock := fov.Compute(fov.Invert(transparent), origin, 0)
		for y, row := range rock {
			for x, seen := range row {
				if seen && geom.Chebyshev(origin, geom.Point{X: x, Y: y}) <= earthReach {
					vis[y][x] = true
				}
			}
		}
	}
	return vis
}

// PlayerSees reports whether (x, y) is in the player's shared vision.
func (w *World) PlayerSees(x, y int) bool {
	view := w.PlayerView()
	return view != nil && w.Level.Map.InBounds(x, y) && view[y][x]
}

// PlayerView is the player's shared vision, or nil once the player is gone.
func (w *World) PlayerView() [][]bool {
	if w.Level == nil || w.Player == nil || !w.Level.HasActor(w.Player) {
		return nil
	}
	return w.FOV(w.Player, true)
}

// Targets lists the actors of another faction that a can see, in level order.
func (w *World) Targets(a *Actor, shared bool) []*Actor {
	vis := w.FOV(a, shared)
	var out []*Actor
	for _, other := range w.Level.actors {
		if other.Faction == a.Faction || !w.Level.Map.InBounds(other.X, other.Y) {
			continue
		}
		if vis[other.Y][other.X] {
			out = append(out, other)
		}
	}
	return out
}

// nearestTarget is the first visible enemy with the smallest squared distance.
func (w *World) nearestTarget(a *Actor) *Actor {
	var best *Actor
	bestD := 0
	for _, t := range w.Targets(a, true) {
		d := geom.DistSq(a.Pos(), t.Pos())
		if best == nil || d < bestD {
			best, bestD = t, d
		}
	}
	return best
}
