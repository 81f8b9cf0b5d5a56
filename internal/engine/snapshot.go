package engine

import (
	"fmt"
	"maps"
	"math/rand"

	"raywizard/internal/gamemap"
)

// Snapshot is the whole state of a World as plain data. Cached actions are
// not captured; restored actors rebuild their default behavior.
type Snapshot struct {
	Seed     int64           `json:"seed"`
	Turn     int             `json:"turn"`
	Level    int             `json:"level"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Tiles    []uint8         `json:"tiles"`    // row-major tile kinds
	Explored []bool          `json:"explored"` // row-major
	Rooms    []gamemap.Rect  `json:"rooms"`
	Features []Feature       `json:"features"`
	Actors   []ActorSnapshot `json:"actors"` // schedule order
	Spells   []SpellState    `json:"spells"`
	Log      []string        `json:"log"`
	LastHurt string          `json:"last_hurt,omitempty"`
}

// ActorSnapshot is the persisted part of an Actor.
type ActorSnapshot struct {
	ID        ActorID        `json:"id"`
	Kind      Kind           `json:"kind"`
	X         int            `json:"x"`
	Y         int            `json:"y"`
	HP        int            `json:"hp"`
	Faction   Faction        `json:"faction"`
	Status    map[string]int `json:"status,omitempty"`
	SkipTurns int            `json:"skip_turns,omitempty"`
	Fuse      int            `json:"fuse,omitempty"`
	Player    bool           `json:"player,omitempty"`
}

// SpellState is the cooldown of one hotbar slot.
type SpellState struct {
	Slot         int `json:"slot"`
	CooldownLeft int `json:"cooldown_left"`
}

// Snapshot captures the world.
func (w *World) Snapshot() *Snapshot {
	m := w.Level.Map
	s := &Snapshot{
		Seed:     w.Seed,
		Turn:     w.Turn,
		Level:    w.Level.Number,
		Width:    m.Width,
		Height:   m.Height,
		Tiles:    make([]uint8, 0, m.Width*m.Height),
		Explored: make([]bool, 0, m.Width*m.Height),
		Rooms:    append([]gamemap.Rect(nil), w.Level.Rooms...),
		Features: append([]Feature(nil), w.Level.Features...),
		Log:      append([]string(nil), w.Log...),
		LastHurt: w.LastHurt,
	}
	for y := range m.Height {
		for x := range m.Width {
			s.Tiles = append(s.Tiles, uint8(m.Tiles[y][x]))
			s.Explored = append(s.Explored, m.Explored[y][x])
		}
	}
	for _, e := range w.Level.schedule.Entries() {
		a, ok := e.(*Actor)
		if !ok {
			continue
		}
		s.Actors = append(s.Actors, ActorSnapshot{
			ID: a.ID, Kind: a.Kind, X: a.X, Y: a.Y, HP: a.HP, Faction: a.Faction,
			Status: maps.Clone(a.Status), SkipTurns: a.SkipTurns, Fuse: a.Fuse,
			Player: a == w.Player,
		})
	}
	for i, sp := range w.Spells {
		if sp != nil && sp.CooldownLeft > 0 {
			s.Spells = append(s.Spells, SpellState{Slot: i, CooldownLeft: sp.CooldownLeft})
		}
	}
	return s
}

// Restore rebuilds a World from a snapshot. The random generator is
// reseeded from the snapshot's seed and turn.
func Restore(s *Snapshot, cfg *Config) (*World, error) {
	if s.Width <= 0 || s.Height <= 0 || len(s.Tiles) != s.Width*s.Height || len(s.Explored) != len(s.Tiles) {
		return nil, fmt.Errorf("engine: snapshot grid is %dx%d with %d tiles", s.Width, s.Height, len(s.Tiles))
	}
	w, err := newWorld(cfg)
	if err != nil {
		return nil, err
	}
	w.Seed = s.Seed
	w.RNG = rand.New(rand.NewSource(s.Seed + int64(s.Turn)))
	w.Turn = s.Turn
	w.Log = append([]string(nil), s.Log...)
	w.LastHurt = s.LastHurt
	w.Spells = defaultSpells()
	for _, st := range s.Spells {
		if st.Slot >= 0 && st.Slot < SpellSlots && w.Spells[st.Slot] != nil {
			w.Spells[st.Slot].CooldownLeft = st.CooldownLeft
		}
	}

	m := gamemap.New(s.Width, s.Height, gamemap.TileWall)
	for i, k := range s.Tiles {
		x, y := i%s.Width, i/s.Width
		m.Tiles[y][x] = gamemap.TileKind(k)
		m.Explored[y][x] = s.Explored[i]
	}
	l := NewLevel(s.Level, m)
	l.Rooms = append(l.Rooms, s.Rooms...)
	l.Features = append(l.Features, s.Features...)

	for _, as := range s.Actors {
		if _, ok := kinds[as.Kind]; !ok {
			return nil, fmt.Errorf("engine: snapshot actor %d has unknown kind %d", as.ID, as.Kind)
		}
		a := newActor(as.ID, as.Kind, as.X, as.Y)
		a.HP, a.Faction, a.SkipTurns, a.Fuse = as.HP, as.Faction, as.SkipTurns, as.Fuse
		if as.Status != nil {
			a.Status = maps.Clone(as.Status)
		}
		l.AddActor(a)
		if as.Player {
			w.Player = a
		}
		w.nextID = max(w.nextID, a.ID)
	}
	if w.Player == nil {
		return nil, fmt.Errorf("engine: snapshot has no player")
	}
	w.Level = l
	w.Camera = gamemap.Camera{X: w.Player.X, Y: w.Player.Y}
	return w, nil
}
