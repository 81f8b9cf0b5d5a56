// Package engine is the turn-based simulation core: the schedule-driven game
// loop, actors and their actions, effect resolution, and shared vision.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"raywizard/internal/gamemap"
	"raywizard/internal/geom"

	"github.com/sirupsen/logrus"
)

// FinalLevel is the deepest level; descending from it wins the game.
const FinalLevel = 3

// maxLog caps the in-game message log.
const maxLog = 100

// Outcome is how a run ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDied
	OutcomeWon
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDied:
		return "died"
	case OutcomeWon:
		return "won"
	case OutcomeQuit:
		return "quit"
	}
	return "playing"
}

// Config carries the collaborators of a World.
type Config struct {
	Seed      int64
	Level     int // starting level, 1 if zero
	Generator Generator
	Frontend  Frontend           // NopFrontend if nil
	Logger    logrus.FieldLogger // discarded if nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("engine: nil config")
	}
	if c.Generator == nil {
		return errors.New("engine: a generator is required")
	}
	if c.Level < 0 || c.Level > FinalLevel {
		return fmt.Errorf("engine: level %d out of range 1..%d", c.Level, FinalLevel)
	}
	return nil
}

// World owns the current level, the player, the spell bar and the log. It
// is the context every action and effect receives.
type World struct {
	Seed     int64
	RNG      *rand.Rand
	Level    *Level
	Player   *Actor
	Spells   [SpellSlots]*Spell
	Log      []string
	Turn     int
	Camera   gamemap.Camera
	Outcome  Outcome
	LastHurt string // what last damaged the player

	gen      Generator
	frontend Frontend
	log      logrus.FieldLogger
	nextID   ActorID
}

// New builds a world and generates its first level.
func New(cfg *Config) (*World, error) {
	w, err := newWorld(cfg)
	if err != nil {
		return nil, err
	}
	w.Player = w.NewActor(KindPlayer, 0, 0)
	w.Spells = defaultSpells()

	level := cfg.Level
	if level == 0 {
		level = 1
	}
	if err := w.generate(level); err != nil {
		return nil, err
	}
	return w, nil
}

func newWorld(cfg *Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		Seed:     cfg.Seed,
		RNG:      rand.New(rand.NewSource(cfg.Seed)),
		gen:      cfg.Generator,
		frontend: cfg.Frontend,
		log:      cfg.Logger,
	}
	if w.frontend == nil {
		w.frontend = NopFrontend{}
	}
	if w.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		w.log = l
	}
	return w, nil
}

// SetFrontend swaps the interactive collaborator, e.g. after a restore.
func (w *World) SetFrontend(f Frontend) {
	if f == nil {
		f = NopFrontend{}
	}
	w.frontend = f
}

// Logger is the diagnostics logger.
func (w *World) Logger() logrus.FieldLogger { return w.log }

// NewActor creates an actor with a fresh ID. It is not placed on any level.
func (w *World) NewActor(k Kind, x, y int) *Actor {
	w.nextID++
	return newActor(w.nextID, k, x, y)
}

// PlacePlayer moves the player onto level l at (x, y), detaching it from
// the current level first.
func (w *World) PlacePlayer(l *Level, x, y int) {
	if w.Level != nil {
		w.Level.RemoveActor(w.Player)
	}
	if l.HasActor(w.Player) {
		l.RemoveActor(w.Player)
	}
	w.Player.X, w.Player.Y = x, y
	w.Player.SetAction(nil)
	l.AddActor(w.Player)
}

func (w *World) generate(level int) error {
	l, err := w.gen.Generate(w, level)
	if err != nil {
		return fmt.Errorf("generate level %d: %w", level, err)
	}
	if !l.HasActor(w.Player) {
		return fmt.Errorf("generate level %d: player was not placed", level)
	}
	w.Level = l
	w.Camera = gamemap.Camera{X: w.Player.X, Y: w.Player.Y}
	w.Level.Map.Reveal(w.FOV(w.Player, true))
	w.log.WithFields(logrus.Fields{"level": level, "rooms": len(l.Rooms), "actors": len(l.actors)}).
		Info("entered level")
	return nil
}

// Report appends a line to the message log.
func (w *World) Report(msg string) {
	w.Log = append(w.Log, msg)
	if len(w.Log) > maxLog {
		w.Log = w.Log[len(w.Log)-maxLog:]
	}
}

// ReportAt logs msg only if the player can see (x, y).
func (w *World) ReportAt(msg string, x, y int) {
	if w.PlayerSees(x, y) {
		w.Report(msg)
	}
}

// Running reports whether the loop should continue.
func (w *World) Running() bool {
	return w.Outcome == OutcomeNone && w.Level != nil && w.Level.HasActor(w.Player)
}

// RunLoop steps the world until the player dies, wins or quits.
func (w *World) RunLoop(ctx context.Context) (Outcome, error) {
	for w.Running() {
		if err := ctx.Err(); err != nil {
			return OutcomeQuit, err
		}
		if err := w.Step(); err != nil {
			if errors.Is(err, ErrQuit) {
				w.Outcome = OutcomeQuit
				break
			}
			return w.Outcome, err
		}
	}
	if w.Outcome == OutcomeNone {
		w.Outcome = OutcomeDied
		w.Report("You die.")
	}
	w.log.WithFields(logrus.Fields{"outcome": w.Outcome.String(), "turn": w.Turn, "level": w.Level.Number}).
		Info("game over")
	return w.Outcome, nil
}

// Step resolves the turn of the entity at the front of the schedule.
func (w *World) Step() error {
	sched := w.Level.Schedule()
	front := sched.Front()
	if front == nil {
		return errors.New("engine: schedule is empty")
	}
	if front.ConsumeSkip() {
		return nil
	}
	if err := front.OnTurn(w); err != nil {
		if !errors.Is(err, ErrCancelled) {
			return err
		}
		if a, ok := front.(*Actor); ok {
			if a == w.Player {
				w.Report(cancelReason(err))
			}
			a.SetAction(nil)
		}
		w.log.WithField("turn", w.Turn).Debugf("turn cancelled: %s", cancelReason(err))
		return nil
	}
	// the level may have been replaced, or the entity removed, mid-turn
	if sched != w.Level.Schedule() || sched.Front() != front {
		return nil
	}
	sched.Rotate()
	w.endTurn(front)
	return nil
}

func (w *World) endTurn(s Schedulable) {
	a, ok := s.(*Actor)
	if !ok {
		return
	}
	a.endTurn(w)
	if a != w.Player {
		return
	}
	w.Turn++
	for _, sp := range w.Spells {
		if sp != nil && sp.CooldownLeft > 0 {
			sp.CooldownLeft--
		}
	}
	if w.Level.HasActor(a) {
		w.Level.Map.Reveal(w.FOV(a, true))
	}
}

// descend takes the player down the stairs under them.
func (w *World) descend() (bool, error) {
	f, ok := w.Level.FeatureAt(w.Player.X, w.Player.Y)
	if !ok || f.Kind != FeatureStairsDown {
		w.Report("There are no stairs here.")
		return false, nil
	}
	w.Player.HP = playerMaxHP
	if w.Level.Number >= FinalLevel {
		w.Outcome = OutcomeWon
		w.Report("You have escaped your dungeon prison!")
		return true, nil
	}
	if err := w.generate(w.Level.Number + 1); err != nil {
		return false, err
	}
	w.Report(fmt.Sprintf("You descend to level %d.", w.Level.Number))
	return true, nil
}

// Regenerate rebuilds the current level from scratch.
func (w *World) Regenerate() error {
	return w.generate(w.Level.Number)
}

// inBounds adapts the current map for the geom tracing helpers.
func (w *World) inBounds(p geom.Point) bool { return w.Level.InBounds(p) }
