package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"raywizard/internal/gamemap"
	"raywizard/internal/geom"

	"github.com/sirupsen/logrus"
)

// ActorID is unique within a World.
type ActorID uint32

// Actor is a schedulable creature or device on a level. Actors never hold a
// reference to the level that owns them; everything they touch comes in
// through the *World passed to OnTurn.
type Actor struct {
	ID        ActorID
	Kind      Kind
	X, Y      int
	HP        int
	Faction   Faction
	Status    map[string]int // status name -> turns remaining
	SkipTurns int
	Fuse      int

	ai       Action
	detonate bool
}

func newActor(id ActorID, k Kind, x, y int) *Actor {
	info := k.Info()
	return &Actor{
		ID:      id,
		Kind:    k,
		X:       x,
		Y:       y,
		HP:      info.HP,
		Faction: info.Faction,
		Status:  map[string]int{},
		Fuse:    info.Fuse,
	}
}

// Info is the static description of the actor's kind.
func (a *Actor) Info() KindInfo { return a.Kind.Info() }

// Name is the kind's display name.
func (a *Actor) Name() string { return a.Kind.Info().Name }

// Title is Name with the first letter upper-cased, for log lines.
func (a *Actor) Title() string { return title(a.Name()) }

// Pos is the actor's cell.
func (a *Actor) Pos() geom.Point { return geom.Point{X: a.X, Y: a.Y} }

// Glyph is the rune drawn for the actor. Bombs show their remaining fuse.
func (a *Actor) Glyph() rune {
	if a.Info().Fuse > 0 && a.Fuse >= 0 && a.Fuse <= 9 {
		return rune('0' + a.Fuse)
	}
	return a.Info().Glyph
}

// Action is the cached in-progress action, or nil.
func (a *Actor) Action() Action { return a.ai }

// SetAction replaces the cached action. The action must belong to a.
func (a *Actor) SetAction(act Action) {
	if act != nil && act.Actor() != a {
		panic(fmt.Sprintf("engine: action %T bound to another actor assigned to %s#%d", act, a.Name(), a.ID))
	}
	a.ai = act
}

// HasStatus reports whether a status effect is active.
func (a *Actor) HasStatus(name string) bool {
	_, ok := a.Status[name]
	return ok
}

// MoveCost is the cost of entering t with the actor's locomotion set, or 0
// if no enabled mode can enter it. Flying wins over walking over swimming.
func (a *Actor) MoveCost(t *gamemap.Tile) int {
	loco := a.Info().Locomotion
	switch {
	case loco&Fly != 0 && t.FlyCost != 0:
		return int(t.FlyCost)
	case loco&Walk != 0 && t.WalkCost != 0:
		return int(t.WalkCost)
	case loco&Swim != 0 && t.SwimCost != 0:
		return int(t.SwimCost)
	}
	return 0
}

// ConsumeSkip uses up one forced skip, reporting whether one was pending.
func (a *Actor) ConsumeSkip() bool {
	if a.SkipTurns > 0 {
		a.SkipTurns--
		return true
	}
	return false
}

// OnTurn performs the cached action once, building the kind's default
// behavior first if there is none.
func (a *Actor) OnTurn(w *World) error {
	if a.ai == nil {
		a.ai = w.behavior(a)
	}
	if a.ai.Actor() != a {
		panic(fmt.Sprintf("engine: %s#%d is performing an action of another actor", a.Name(), a.ID))
	}
	ok, err := a.ai.Perform(w)
	switch {
	case err != nil && errors.Is(err, ErrCancelled) && a != w.Player:
		// Monsters pick a new plan next time; the turn is spent.
		w.log.WithFields(logrus.Fields{"actor": a.ID, "kind": a.Name()}).
			Debugf("behavior cancelled: %s", cancelReason(err))
		a.ai = nil
	case err != nil:
		return err
	case !ok:
		a.ai = nil
	}
	if a.Info().Fuse > 0 && w.Level.HasActor(a) {
		a.Fuse--
		if a.Fuse < 0 {
			w.explode(a)
		}
	}
	return nil
}

// bump resolves mover walking into other and reports whether the mover's
// turn was used. Hunters hurt enemies on contact either way round.
func bump(w *World, mover, other *Actor) bool {
	switch {
	case mover.Kind == KindHunter && other.Faction != mover.Faction:
		w.ApplyEffect(mover.Info().Attack, other.X, other.Y)
		return true
	case other.Kind == KindHunter && other.Faction != mover.Faction:
		w.ApplyEffect(other.Info().Attack, mover.X, mover.Y)
		return true
	}
	return false
}

// endTurn ticks status timers and applies the terrain's passive effect.
func (a *Actor) endTurn(w *World) {
	names := make([]string, 0, len(a.Status))
	for name := range a.Status {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.Status[name]--
		if a.Status[name] <= 0 {
			delete(a.Status, name)
			w.Report(fmt.Sprintf("%s has worn off.", title(name)))
		}
	}
	if !w.Level.HasActor(a) || !w.Level.Map.InBounds(a.X, a.Y) {
		return
	}
	if e := w.Level.Map.Tile(a.X, a.Y).Effect; e != nil {
		w.ApplyEffect(*e, a.X, a.Y)
	}
}

func title(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
