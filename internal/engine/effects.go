package engine

import (
	"fmt"

	"raywizard/internal/effect"
	"raywizard/internal/geom"

	"github.com/sirupsen/logrus"
)

// ApplyEffect resolves e at (x, y): every actor standing there is affected
// first, then the terrain is transformed.
func (w *World) ApplyEffect(e effect.Effect, x, y int) {
	for _, a := range w.Level.ActorsAt(x, y) {
		w.affect(a, e)
	}
	w.Level.Map.ApplyTerrain(x, y, e)
}

// affect dispatches an effect to an actor according to its kind.
func (w *World) affect(a *Actor, e effect.Effect) {
	if !w.Level.HasActor(a) {
		return
	}
	switch a.Kind {
	case KindBomb, KindFlyingBomb:
		if e.Kind == effect.Heat {
			w.explode(a)
		}
	case KindTotem:
		w.Level.RemoveActor(a)
		w.ReportAt("The totem shatters!", a.X, a.Y)
		for _, p := range geom.Square(a.Pos(), totemRadius, true, w.inBounds) {
			w.ApplyEffect(e, p.X, p.Y)
		}
	default:
		w.damage(a, e)
	}
}

func (w *World) damage(a *Actor, e effect.Effect) {
	w.ReportAt(fmt.Sprintf("%s takes %d damage.", a.Title(), e.Power), a.X, a.Y)
	a.HP -= e.Power
	if a == w.Player {
		w.LastHurt = e.Name()
	}
	if a.HP > 0 {
		return
	}
	w.ReportAt(fmt.Sprintf("%s dies.", a.Title()), a.X, a.Y)
	w.Level.RemoveActor(a)
	w.log.WithFields(logrus.Fields{"actor": a.ID, "kind": a.Name(), "effect": e.Name()}).Debug("actor died")
}

// explode detonates a bomb: a digging blast around it, then it is gone.
func (w *World) explode(a *Actor) {
	if a.detonate {
		return
	}
	a.detonate = true
	w.ReportAt(fmt.Sprintf("The %s explodes!", a.Name()), a.X, a.Y)
	blast := &Blast{actor: a, Radius: bombBlastRadius, Effect: effect.New(effect.Dig, bombBlastPower)}
	blast.Perform(w) //nolint:errcheck // blasts never cancel
	w.Level.RemoveActor(a)
}
