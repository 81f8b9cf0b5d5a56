// Package generate builds dungeon levels: rooms joined by corridors, pools
// of water or acid grown by a cellular automaton, a hostile in every
// interior room, the player in the first room and stairs in the last.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"raywizard/internal/engine"
	"raywizard/internal/gamemap"

	"github.com/sirupsen/logrus"
)

// Stages reported to Config.Debug, in pipeline order.
const (
	StageFill     = "fill"
	StageRoom     = "room"
	StageCorridor = "corridor"
	StageWater    = "water"
	StagePopulate = "populate"
	StageStairs   = "stairs"
)

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	RoomMinSize   int
	RoomMaxSize   int
	MaxRooms      int     // placement attempts, not a guaranteed count
	NearestChance float64 // chance a corridor joins the nearest room instead of the previous one
	WallPercent   int     // noise density of wall-ish cells, 0-100
	WaterRule     int     // weighted wall-ish count below which a cell floods
	Passes        int     // smoothing passes of the automaton

	// Debug, if set, receives the map after every stage.
	Debug func(stage string, m *gamemap.GameMap)
}

// DefaultConfig is the standard 80×45 dungeon.
func DefaultConfig() Config {
	return Config{
		Width:         80,
		Height:        45,
		RoomMinSize:   4,
		RoomMaxSize:   20,
		MaxRooms:      100,
		NearestChance: 0.8,
		WallPercent:   80,
		WaterRule:     25,
		Passes:        1,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("generate: map size %dx%d", c.Width, c.Height)
	case c.RoomMinSize < 3 || c.RoomMaxSize < c.RoomMinSize:
		return fmt.Errorf("generate: room size range %d..%d", c.RoomMinSize, c.RoomMaxSize)
	case c.RoomMaxSize > c.Width || c.RoomMaxSize > c.Height:
		return fmt.Errorf("generate: rooms up to %d do not fit a %dx%d map", c.RoomMaxSize, c.Width, c.Height)
	case c.MaxRooms <= 0:
		return errors.New("generate: MaxRooms must be positive")
	case c.NearestChance < 0 || c.NearestChance > 1:
		return fmt.Errorf("generate: NearestChance %v outside 0..1", c.NearestChance)
	case c.WallPercent < 0 || c.WallPercent > 100:
		return fmt.Errorf("generate: WallPercent %d outside 0..100", c.WallPercent)
	case c.Passes < 1:
		return fmt.Errorf("generate: Passes %d", c.Passes)
	}
	return nil
}

// Theme is the cosmetic tile set of a level.
type Theme struct {
	Wall        gamemap.TileKind
	Water       gamemap.TileKind
	WallPercent int // overrides Config.WallPercent when non-zero
}

// ThemeFor returns the tile set of a level. Levels past the table reuse the
// last theme.
func ThemeFor(level int) Theme {
	switch level {
	case 1:
		return Theme{Wall: gamemap.TileWall, Water: gamemap.TileWater}
	case 2:
		return Theme{Wall: gamemap.TileIceWall, Water: gamemap.TileIceFloor}
	default:
		return Theme{Wall: gamemap.TileWall, Water: gamemap.TileAcid, WallPercent: 70}
	}
}

// Generator implements engine.Generator.
type Generator struct {
	cfg Config
	log logrus.FieldLogger
}

// New returns a Generator. A nil logger falls back to the standard logrus
// logger.
func New(cfg Config, log logrus.FieldLogger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Generator{cfg: cfg, log: log.WithField("component", "generate")}, nil
}

// Generate builds level number level using the world's random generator and
// places the player in it.
func (g *Generator) Generate(w *engine.World, level int) (*engine.Level, error) {
	layout, err := Carve(&g.cfg, level, w.RNG)
	if err != nil {
		return nil, err
	}
	l := engine.NewLevel(level, layout.Map)
	l.Rooms = layout.Rooms

	spawns := Populate(layout, level, w.RNG)
	for _, s := range spawns.Hostiles {
		l.AddActor(w.NewActor(s.Kind, s.X, s.Y))
	}
	g.debug(StagePopulate, layout.Map)

	w.PlacePlayer(l, spawns.Player.X, spawns.Player.Y)
	l.Features = append(l.Features, engine.Feature{Kind: engine.FeatureStairsDown, X: spawns.Stairs.X, Y: spawns.Stairs.Y})
	g.debug(StageStairs, layout.Map)

	g.log.WithFields(logrus.Fields{
		"level":    level,
		"rooms":    len(layout.Rooms),
		"hostiles": len(spawns.Hostiles),
		"flooded":  layout.Flooded,
	}).Debug("level generated")
	return l, nil
}

func (g *Generator) debug(stage string, m *gamemap.GameMap) {
	if g.cfg.Debug != nil {
		g.cfg.Debug(stage, m)
	}
}

// Layout is the terrain of a level before anything is placed on it.
type Layout struct {
	Map     *gamemap.GameMap
	Rooms   []gamemap.Rect // in acceptance order
	Theme   Theme
	Flooded int // cells turned into water by the automaton
}

// Carve runs the terrain stages of the pipeline: fill, rooms, corridors and
// water.
func Carve(cfg *Config, level int, rng *rand.Rand) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	debug := func(stage string, m *gamemap.GameMap) {
		if cfg.Debug != nil {
			cfg.Debug(stage, m)
		}
	}
	theme := ThemeFor(level)
	m := gamemap.New(cfg.Width, cfg.Height, theme.Wall)
	debug(StageFill, m)

	out := &Layout{Map: m, Theme: theme}
	for range cfg.MaxRooms {
		room, ok := placeRoom(cfg, rng, out.Rooms)
		if !ok {
			continue
		}
		carveRoom(m, room)
		debug(StageRoom, m)
		if len(out.Rooms) > 0 {
			other := out.Rooms[len(out.Rooms)-1]
			if rng.Float64() < cfg.NearestChance {
				other = nearest(room, out.Rooms)
			}
			x1, y1 := room.Center()
			x2, y2 := other.Center()
			carveCorridor(m, x1, y1, x2, y2, rng)
			debug(StageCorridor, m)
		}
		out.Rooms = append(out.Rooms, room)
	}
	if len(out.Rooms) == 0 {
		return nil, errors.New("generate: no room could be placed")
	}

	density := cfg.WallPercent
	if theme.WallPercent != 0 {
		density = theme.WallPercent
	}
	water := flood(noise(cfg.Width, cfg.Height, density, rng), cfg.WaterRule, cfg.Passes)
	for y := range cfg.Height {
		for x := range cfg.Width {
			if water[y][x] {
				m.Set(x, y, theme.Water)
				out.Flooded++
			}
		}
	}
	debug(StageWater, m)
	return out, nil
}
