package engine

import (
	"fmt"

	"raywizard/internal/effect"
	"raywizard/internal/geom"
)

// behavior builds the default action of a's kind.
func (w *World) behavior(a *Actor) Action {
	switch a.Info().Behavior {
	case BehaviorPlayerControl:
		return &PlayerControl{actor: a}
	case BehaviorExplore:
		return &Explore{actor: a}
	case BehaviorSeekEnemy:
		return &SeekEnemy{actor: a}
	case BehaviorRangedIdle:
		info := a.Info()
		return &RangedIdle{actor: a, Radius: info.Range, Effect: info.Attack}
	case BehaviorRandomPatrol:
		return &RandomPatrol{actor: a}
	}
	return NewIdle(a)
}

// Pathfind walks a precomputed shortest path toward Dest, one step per turn.
type Pathfind struct {
	actor *Actor
	Dest  geom.Point
	path  []geom.Point // stack: next waypoint last
}

// NewPathfind plans a path for a to dest. Cells holding other actors cost
// extra but are not forbidden.
func NewPathfind(w *World, a *Actor, dest geom.Point) *Pathfind {
	cost := w.moveCosts(a)
	for _, other := range w.Level.actors {
		if other != a && cost.in(other.Pos()) && cost[other.Y][other.X] > 0 {
			cost[other.Y][other.X] += occupiedPenalty
		}
	}
	steps := findPath(cost, a.Pos(), dest)
	stack := make([]geom.Point, len(steps))
	for i, p := range steps {
		stack[len(steps)-1-i] = p
	}
	return &Pathfind{actor: a, Dest: dest, path: stack}
}

func (p *Pathfind) Actor() *Actor { return p.actor }

// Remaining lists the waypoints still to walk, nearest first.
func (p *Pathfind) Remaining() []geom.Point {
	out := make([]geom.Point, len(p.path))
	for i, pt := range p.path {
		out[len(p.path)-1-i] = pt
	}
	return out
}

func (p *Pathfind) Perform(w *World) (bool, error) {
	if len(p.path) == 0 {
		return false, nil
	}
	next := p.path[len(p.path)-1]
	p.path = p.path[:len(p.path)-1]
	d := geom.Direction{DX: next.X - p.actor.X, DY: next.Y - p.actor.Y}
	if !d.Valid() {
		p.path = nil
		return false, nil
	}
	ok, err := NewMove(p.actor, d).Perform(w)
	if err != nil {
		return false, err
	}
	if !ok {
		p.path = nil
		return false, nil
	}
	return true, nil
}

// RandomPatrol wanders between uniformly random destinations.
type RandomPatrol struct {
	actor *Actor
	path  *Pathfind
}

func (r *RandomPatrol) Actor() *Actor { return r.actor }

func (r *RandomPatrol) Perform(w *World) (bool, error) {
	if r.path == nil {
		m := w.Level.Map
		dest := geom.Point{X: w.RNG.Intn(m.Width), Y: w.RNG.Intn(m.Height)}
		r.path = NewPathfind(w, r.actor, dest)
	}
	ok, err := r.path.Perform(w)
	if err != nil || !ok {
		r.path = nil
	}
	return ok, err
}

// SeekEnemy chases the nearest visible enemy, replanning every turn one is
// in sight.
type SeekEnemy struct {
	actor *Actor
	path  *Pathfind
}

func (s *SeekEnemy) Actor() *Actor { return s.actor }

func (s *SeekEnemy) Perform(w *World) (bool, error) {
	if t := w.nearestTarget(s.actor); t != nil {
		s.path = NewPathfind(w, s.actor, t.Pos())
	}
	if s.path == nil {
		return false, nil
	}
	ok, err := s.path.Perform(w)
	if err != nil {
		return false, err
	}
	if !ok {
		s.path = nil
	}
	return ok, nil
}

// RangedIdle casts a Ball at the nearest visible enemy and then rests for a
// few turns; with nobody in sight it patrols.
type RangedIdle struct {
	actor  *Actor
	Radius int
	Effect effect.Effect
	patrol *RandomPatrol
}

func (r *RangedIdle) Actor() *Actor { return r.actor }

func (r *RangedIdle) Perform(w *World) (bool, error) {
	if t := w.nearestTarget(r.actor); t != nil {
		r.actor.SkipTurns += rangedRecovery
		w.ReportAt(fmt.Sprintf("The %s casts %s!", r.actor.Name(), r.Effect.Name()), r.actor.X, r.actor.Y)
		return (&Ball{actor: r.actor, Target: t.Pos(), Radius: r.Radius, Effect: r.Effect}).Perform(w)
	}
	if r.patrol == nil {
		r.patrol = &RandomPatrol{actor: r.actor}
	}
	return r.patrol.Perform(w)
}

// Explore steps toward the nearest cell the player has not yet explored,
// avoiding actors and dangerous terrain.
type Explore struct {
	actor *Actor
}

func (e *Explore) Actor() *Actor { return e.actor }

func (e *Explore) Perform(w *World) (bool, error) {
	m := w.Level.Map
	cost := w.moveCosts(e.actor)
	for _, a := range w.Level.actors {
		if cost.in(a.Pos()) {
			cost[a.Y][a.X] = 0
		}
	}
	dist := make([][]int, m.Height)
	for y := range m.Height {
		dist[y] = make([]int, m.Width)
		for x := range m.Width {
			dist[y][x] = unreachable
			if m.Tile(x, y).Dangerous {
				cost[y][x] = 0
			}
			if !m.Explored[y][x] {
				dist[y][x] = 0
				cost[y][x] = 1
			}
		}
	}
	distanceMap(dist, cost)
	// the actor's own cell never joins the search, so start from "unreachable"
	dist[e.actor.Y][e.actor.X] = unreachable
	d, ok := descend(dist, e.actor.Pos())
	if !ok {
		return false, Cancel("No more areas to explore.")
	}
	return NewMove(e.actor, d).Perform(w)
}

// AutoExplore explores until an enemy comes into the actor's own view or the
// player presses a key.
type AutoExplore struct {
	actor *Actor
}

// NewAutoExplore binds auto-exploration to a.
func NewAutoExplore(a *Actor) *AutoExplore { return &AutoExplore{actor: a} }

func (x *AutoExplore) Actor() *Actor { return x.actor }

func (x *AutoExplore) Perform(w *World) (bool, error) {
	if targets := w.Targets(x.actor, false); len(targets) > 0 {
		return false, Cancel(fmt.Sprintf("You see a %s nearby!", targets[0].Name()))
	}
	if x.actor == w.Player {
		w.Camera.X, w.Camera.Y = x.actor.X, x.actor.Y
		w.frontend.Frame(w, nil)
		if w.frontend.Pending() {
			return false, Cancel("Auto-explore interrupted.")
		}
	}
	return (&Explore{actor: x.actor}).Perform(w)
}
