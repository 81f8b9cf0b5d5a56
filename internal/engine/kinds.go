package engine

import (
	"raywizard/internal/effect"

	"github.com/gdamore/tcell/v2"
)

// Faction partitions actors into allegiance groups.
type Faction string

const (
	FactionPlayer  Faction = "player"
	FactionHostile Faction = "hostile"
)

// Locomotion is the set of movement modes an actor can use.
type Locomotion uint8

const (
	Walk Locomotion = 1 << iota
	Swim
	Fly
)

// Kind identifies an actor type.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindScout
	KindBomb
	KindFlyingBomb
	KindTotem
	KindHunter
	KindHeatCaster
	KindColdCaster
	KindAcidCaster
)

// Behavior is the default AI strategy of an actor kind.
type Behavior uint8

const (
	BehaviorIdle Behavior = iota
	BehaviorPlayerControl
	BehaviorExplore
	BehaviorSeekEnemy
	BehaviorRangedIdle
	BehaviorRandomPatrol
)

// KindInfo is the static description of an actor kind.
type KindInfo struct {
	Name        string
	Glyph       rune
	Color       tcell.Color
	HP          int
	Faction     Faction
	Locomotion  Locomotion
	ViewRadius  int
	ShareVision bool
	Behavior    Behavior
	Attack      effect.Effect // bump attack or ranged ball
	Range       int           // ranged ball radius
	Fuse        int           // bombs: ticks until detonation
}

const (
	defaultViewRadius = 10
	playerMaxHP       = 12
	bombFuse          = 5
	bombBlastRadius   = 2
	bombBlastPower    = 10
	totemRadius       = 2
	rangedRecovery    = 5
)

var white = tcell.NewRGBColor(0xFF, 0xFF, 0xFF)

var kinds = map[Kind]KindInfo{
	KindPlayer: {
		Name: "player", Glyph: '@', Color: white, HP: playerMaxHP,
		Faction: FactionPlayer, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorPlayerControl,
	},
	KindScout: {
		Name: "scout", Glyph: 's', Color: white, HP: 1,
		Faction: FactionPlayer, Locomotion: Walk | Fly, ViewRadius: defaultViewRadius,
		ShareVision: true, Behavior: BehaviorExplore,
	},
	KindBomb: {
		Name: "bomb", Glyph: '5', Color: tcell.NewRGBColor(0xFF, 0x60, 0x20), HP: 10,
		Faction: FactionPlayer, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorIdle, Fuse: bombFuse,
	},
	KindFlyingBomb: {
		Name: "flying bomb", Glyph: '5', Color: tcell.NewRGBColor(0xFF, 0xA0, 0x20), HP: 10,
		Faction: FactionPlayer, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorSeekEnemy, Fuse: bombFuse,
	},
	KindTotem: {
		Name: "totem", Glyph: '&', Color: tcell.NewRGBColor(0xC0, 0x80, 0xFF), HP: 10,
		Faction: FactionPlayer, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorIdle,
	},
	KindHunter: {
		Name: "hunter", Glyph: 'H', Color: tcell.NewRGBColor(0x56, 0xD0, 0x56), HP: 10,
		Faction: FactionHostile, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorSeekEnemy, Attack: effect.New(effect.PlaceAcid, 2),
	},
	KindHeatCaster: {
		Name: "fire caster", Glyph: 'F', Color: tcell.NewRGBColor(0xFF, 0x40, 0x20), HP: 10,
		Faction: FactionHostile, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorRangedIdle, Attack: effect.New(effect.Heat, 2), Range: 3,
	},
	KindColdCaster: {
		Name: "ice caster", Glyph: 'C', Color: tcell.NewRGBColor(0x8B, 0xC0, 0xE6), HP: 10,
		Faction: FactionHostile, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorRangedIdle, Attack: effect.New(effect.Cold, 1), Range: 2,
	},
	KindAcidCaster: {
		Name: "acid caster", Glyph: 'A', Color: tcell.NewRGBColor(0x56, 0xD0, 0x56), HP: 10,
		Faction: FactionHostile, Locomotion: Walk, ViewRadius: defaultViewRadius,
		Behavior: BehaviorRangedIdle, Attack: effect.New(effect.PlaceAcid, 1), Range: 1,
	},
}

// Info returns the static description of k. Panics on an unknown kind.
func (k Kind) Info() KindInfo {
	info, ok := kinds[k]
	if !ok {
		panic("engine: unknown actor kind")
	}
	return info
}

func (k Kind) String() string { return k.Info().Name }
