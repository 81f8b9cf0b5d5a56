package engine

import (
	"fmt"

	"raywizard/internal/gamemap"
	"raywizard/internal/geom"
)

// FeatureKind identifies a static map feature.
type FeatureKind uint8

const (
	FeatureStairsDown FeatureKind = iota
)

// Feature is a non-acting map object such as stairs.
type Feature struct {
	Kind FeatureKind
	X, Y int
}

// Glyph is the rune drawn for the feature.
func (f Feature) Glyph() rune {
	switch f.Kind {
	case FeatureStairsDown:
		return '>'
	}
	return '?'
}

// Level is one dungeon floor: its terrain, rooms, features, and the actors
// living on it. Every actor on the level is also in its schedule.
type Level struct {
	Number   int
	Map      *gamemap.GameMap
	Rooms    []gamemap.Rect
	Features []Feature

	actors   []*Actor
	schedule Schedule
}

// NewLevel wraps a generated map.
func NewLevel(number int, m *gamemap.GameMap) *Level {
	return &Level{Number: number, Map: m}
}

// Schedule is the level's turn queue.
func (l *Level) Schedule() *Schedule { return &l.schedule }

// AddActor registers a on the level and at the back of the schedule.
func (l *Level) AddActor(a *Actor) {
	if l.HasActor(a) {
		panic(fmt.Sprintf("engine: %s#%d registered twice", a.Name(), a.ID))
	}
	l.actors = append(l.actors, a)
	l.schedule.PushBack(a)
}

// AddSchedulable schedules a non-actor entity.
func (l *Level) AddSchedulable(s Schedulable) {
	if a, ok := s.(*Actor); ok {
		l.AddActor(a)
		return
	}
	l.schedule.PushBack(s)
}

// RemoveActor drops a from both the actor set and the schedule.
func (l *Level) RemoveActor(a *Actor) bool {
	for i, o := range l.actors {
		if o == a {
			l.actors = append(l.actors[:i], l.actors[i+1:]...)
			l.schedule.Remove(a)
			return true
		}
	}
	return false
}

// HasActor reports whether a lives on this level.
func (l *Level) HasActor(a *Actor) bool {
	for _, o := range l.actors {
		if o == a {
			return true
		}
	}
	return false
}

// Actors returns the live actors in registration order.
func (l *Level) Actors() []*Actor {
	return append([]*Actor(nil), l.actors...)
}

// ActorAt returns the first actor standing on (x, y), or nil.
func (l *Level) ActorAt(x, y int) *Actor {
	for _, a := range l.actors {
		if a.X == x && a.Y == y {
			return a
		}
	}
	return nil
}

// ActorsAt returns every actor standing on (x, y).
func (l *Level) ActorsAt(x, y int) []*Actor {
	var out []*Actor
	for _, a := range l.actors {
		if a.X == x && a.Y == y {
			out = append(out, a)
		}
	}
	return out
}

// InBounds reports whether p is on the map.
func (l *Level) InBounds(p geom.Point) bool { return l.Map.InBounds(p.X, p.Y) }

// Passable reports whether any mode in loco can enter (x, y).
func (l *Level) Passable(x, y int, loco Locomotion) bool {
	if !l.Map.InBounds(x, y) {
		return false
	}
	t := l.Map.Tile(x, y)
	return (loco&Walk != 0 && t.WalkCost != 0) ||
		(loco&Swim != 0 && t.SwimCost != 0) ||
		(loco&Fly != 0 && t.FlyCost != 0)
}

// Blocked reports whether a mover with loco cannot enter (x, y). When an
// actor is in the way it is returned as well.
func (l *Level) Blocked(x, y int, loco Locomotion) (bool, *Actor) {
	if !l.Map.InBounds(x, y) {
		return true, nil
	}
	if other := l.ActorAt(x, y); other != nil {
		return true, other
	}
	return !l.Passable(x, y, loco), nil
}

// FeatureAt returns the feature on (x, y), if any.
func (l *Level) FeatureAt(x, y int) (Feature, bool) {
	for _, f := range l.Features {
		if f.X == x && f.Y == y {
			return f, true
		}
	}
	return Feature{}, false
}
