package engine

import (
	"fmt"

	"raywizard/internal/effect"
)

// SpellSlots is the size of the hotbar.
const SpellSlots = 10

// SpellKind selects what casting a spell does.
type SpellKind uint8

const (
	SpellPlace SpellKind = iota // spawn an allied actor next to the caster
	SpellBeam
	SpellBlast
	SpellStatus // grant the caster a timed status
)

// Spell is one hotbar entry. CooldownLeft counts down at the end of each
// player turn; a spell can be cast when it is zero.
type Spell struct {
	Name         string
	Kind         SpellKind
	Cooldown     int
	CooldownLeft int
	Spawn        Kind
	Effect       effect.Effect
	Radius       int
	Status       string
	Duration     int
}

func defaultSpells() [SpellSlots]*Spell {
	return [SpellSlots]*Spell{
		{Name: "Place bomb", Kind: SpellPlace, Spawn: KindBomb, Cooldown: 8},
		{Name: "Ice beam", Kind: SpellBeam, Effect: effect.New(effect.Cold, 2), Cooldown: 3},
		{Name: "Heat beam", Kind: SpellBeam, Effect: effect.New(effect.Heat, 5), Cooldown: 8},
		{Name: "Place totem", Kind: SpellPlace, Spawn: KindTotem, Cooldown: 8},
		{Name: "Heat blast", Kind: SpellBlast, Effect: effect.New(effect.Heat, effect.DefaultPower), Radius: 5, Cooldown: 8},
		{Name: "Seeking bomb", Kind: SpellPlace, Spawn: KindFlyingBomb, Cooldown: 12},
		{Name: "Create scout", Kind: SpellPlace, Spawn: KindScout, Cooldown: 24},
		{Name: "Earth Vision", Kind: SpellStatus, Status: StatusEarthVision, Duration: 12, Cooldown: 24},
	}
}

// action builds the action that casting s performs for caster.
func (s *Spell) action(caster *Actor) Action {
	switch s.Kind {
	case SpellPlace:
		return &PlaceActor{actor: caster, Spawn: s.Spawn}
	case SpellBeam:
		return &Beam{actor: caster, Effect: s.Effect}
	case SpellBlast:
		return &Blast{actor: caster, Radius: s.Radius, Effect: s.Effect}
	case SpellStatus:
		return &grantStatus{actor: caster, Status: s.Status, Duration: s.Duration}
	}
	panic(fmt.Sprintf("engine: unknown spell kind %d", s.Kind))
}

// grantStatus adds a timed status to its actor.
type grantStatus struct {
	actor    *Actor
	Status   string
	Duration int
}

func (g *grantStatus) Actor() *Actor { return g.actor }

func (g *grantStatus) Perform(*World) (bool, error) {
	g.actor.Status[g.Status] = g.Duration
	return true, nil
}

// Cast casts the spell in slot for the player. It reports whether the turn
// was used; a spell on cooldown costs nothing.
func (w *World) Cast(slot int) (bool, error) {
	if slot < 0 || slot >= SpellSlots || w.Spells[slot] == nil {
		return false, nil
	}
	sp := w.Spells[slot]
	if sp.CooldownLeft > 0 {
		w.Report(fmt.Sprintf("%s is on cooldown!", sp.Name))
		return false, nil
	}
	w.Report(fmt.Sprintf("You cast %s", sp.Name))
	ok, err := sp.action(w.Player).Perform(w)
	if err != nil {
		return false, err
	}
	if ok {
		// end-of-turn decay runs later this same turn
		sp.CooldownLeft = sp.Cooldown + 1
	}
	return ok, nil
}
