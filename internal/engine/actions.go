package engine

import (
	"fmt"

	"raywizard/internal/effect"
	"raywizard/internal/geom"
)

// Action is one verb bound to an actor. Perform resolves a single step and
// reports whether it used the actor's turn. The only error Perform returns
// on its own is a cancellation; Frontend failures pass through.
type Action interface {
	Actor() *Actor
	Perform(w *World) (bool, error)
}

// resolveDirection returns d if set, otherwise asks the player. Only the
// player may be prompted.
func resolveDirection(w *World, a *Actor, d *geom.Direction) (geom.Direction, error) {
	if d != nil {
		if !d.Valid() {
			panic(fmt.Sprintf("engine: direction %+v outside the unit neighbourhood", *d))
		}
		return *d, nil
	}
	if a != w.Player {
		panic(fmt.Sprintf("engine: %s#%d asked for a direction", a.Name(), a.ID))
	}
	dir, ok := w.frontend.Direction(w)
	if !ok {
		return geom.Direction{}, Cancel("No direction given.")
	}
	if !dir.Valid() {
		panic(fmt.Sprintf("engine: frontend returned direction %+v", dir))
	}
	return dir, nil
}

// Idle waits a turn.
type Idle struct {
	actor *Actor
}

// NewIdle binds a wait to a.
func NewIdle(a *Actor) *Idle { return &Idle{actor: a} }

func (i *Idle) Actor() *Actor                { return i.actor }
func (i *Idle) Perform(*World) (bool, error) { return true, nil }

// Move steps one cell. A nil Dir asks the player.
type Move struct {
	actor *Actor
	Dir   *geom.Direction
}

// NewMove binds a step in direction d to a.
func NewMove(a *Actor, d geom.Direction) *Move { return &Move{actor: a, Dir: &d} }

func (m *Move) Actor() *Actor { return m.actor }

func (m *Move) Perform(w *World) (bool, error) {
	d, err := resolveDirection(w, m.actor, m.Dir)
	if err != nil {
		return false, err
	}
	if d.Zero() {
		return NewIdle(m.actor).Perform(w)
	}
	a := m.actor
	dest := a.Pos().Add(d)
	blocked, other := w.Level.Blocked(dest.X, dest.Y, a.Info().Locomotion)
	if other != nil {
		return bump(w, a, other), nil
	}
	if blocked {
		return false, nil
	}
	a.X, a.Y = dest.X, dest.Y
	return true, nil
}

// PlaceActor spawns an actor of kind Spawn next to the caster.
type PlaceActor struct {
	actor *Actor
	Spawn Kind
	Dir   *geom.Direction
}

func (p *PlaceActor) Actor() *Actor { return p.actor }

func (p *PlaceActor) Perform(w *World) (bool, error) {
	d, err := resolveDirection(w, p.actor, p.Dir)
	if err != nil {
		return false, err
	}
	dest := p.actor.Pos().Add(d)
	if blocked, _ := w.Level.Blocked(dest.X, dest.Y, p.Spawn.Info().Locomotion); blocked {
		return false, Cancel("That position is blocked!")
	}
	spawned := w.NewActor(p.Spawn, dest.X, dest.Y)
	spawned.Faction = p.actor.Faction
	w.Level.AddActor(spawned)
	return true, nil
}

// Beam applies Effect along a straight line from the caster, stopping
// before the first opaque cell.
type Beam struct {
	actor  *Actor
	Effect effect.Effect
	Dir    *geom.Direction
}

func (b *Beam) Actor() *Actor { return b.actor }

func (b *Beam) Perform(w *World) (bool, error) {
	d, err := resolveDirection(w, b.actor, b.Dir)
	if err != nil {
		return false, err
	}
	view := w.PlayerView()
	for _, p := range geom.Ray(b.actor.Pos(), d, w.inBounds) {
		if !w.Level.Map.IsTransparent(p.X, p.Y) {
			break
		}
		if view != nil && view[p.Y][p.X] {
			w.frontend.Frame(w, []geom.Point{p})
		}
		w.ApplyEffect(b.Effect, p.X, p.Y)
	}
	return true, nil
}

// Blast applies Effect to every cell within Radius of the caster except the
// caster's own cell.
type Blast struct {
	actor  *Actor
	Radius int
	Effect effect.Effect
}

func (b *Blast) Actor() *Actor { return b.actor }

func (b *Blast) Perform(w *World) (bool, error) {
	area(w, geom.Square(b.actor.Pos(), b.Radius, false, w.inBounds), b.Effect)
	return true, nil
}

// Ball applies Effect to every cell within Radius of Target, including it.
type Ball struct {
	actor  *Actor
	Target geom.Point
	Radius int
	Effect effect.Effect
}

func (b *Ball) Actor() *Actor { return b.actor }

func (b *Ball) Perform(w *World) (bool, error) {
	area(w, geom.Square(b.Target, b.Radius, true, w.inBounds), b.Effect)
	return true, nil
}

// area shows one frame of the visible cells, then applies e to all of them.
func area(w *World, cells []geom.Point, e effect.Effect) {
	var shown []geom.Point
	view := w.PlayerView()
	for _, p := range cells {
		if view != nil && view[p.Y][p.X] {
			shown = append(shown, p)
		}
	}
	if len(shown) > 0 {
		w.frontend.Frame(w, shown)
	}
	for _, p := range cells {
		w.ApplyEffect(e, p.X, p.Y)
	}
}

// RandomStep moves in one of the eight directions.
type RandomStep struct {
	actor *Actor
}

func (r *RandomStep) Actor() *Actor { return r.actor }

func (r *RandomStep) Perform(w *World) (bool, error) {
	d := geom.Neighbors8[w.RNG.Intn(len(geom.Neighbors8))]
	return NewMove(r.actor, d).Perform(w)
}
