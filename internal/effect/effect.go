// Package effect describes the damage and terrain-mutation units that spells,
// hazards and monster attacks apply to a map cell.
package effect

// Kind selects the terrain rule an Effect carries in addition to its damage.
type Kind uint8

const (
	Damage Kind = iota // plain damage, no terrain rule
	Cold
	Heat
	Dig
	PlaceAcid
)

var kindNames = [...]string{
	Damage:    "damage",
	Cold:      "cold",
	Heat:      "heat",
	Dig:       "dig",
	PlaceAcid: "acid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// DefaultPower is used when a caster does not specify one.
const DefaultPower = 5

// Effect is applied at a coordinate: it hurts whoever stands there by Power,
// then transforms the terrain according to its Kind.
type Effect struct {
	Kind  Kind
	Power int
}

// New returns an Effect of kind k with the given power.
func New(k Kind, power int) Effect { return Effect{Kind: k, Power: power} }

// Name is the effect's in-fiction name.
func (e Effect) Name() string { return e.Kind.String() }
