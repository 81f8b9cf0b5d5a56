// Package game runs one play session on a tcell screen: it builds or
// resumes a World, drives the turn loop through the terminal frontend, and
// records the result (a save on quit, a run log line on death or victory).
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"raywizard/internal/config"
	"raywizard/internal/engine"
	"raywizard/internal/generate"
	"raywizard/internal/runlog"
	"raywizard/internal/savegame"
	"raywizard/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Options configure a session.
type Options struct {
	Config config.Config
	// Store keeps saves; nil disables saving and resuming.
	Store savegame.Store
	// Continue resumes the most recent save when there is one.
	Continue bool
	// Generator overrides the dungeon generator.
	Generator engine.Generator
	Now       func() time.Time
}

// Game is the top-level orchestrator of one session.
type Game struct {
	screen tcell.Screen
	ui     *ui.UI
	world  *engine.World
	store  savegame.Store
	cfg    config.Config
	now    func() time.Time
	log    logrus.FieldLogger

	// SavedID is the save written when the player quit, if any.
	SavedID string
}

// New prepares a session on an initialised screen.
func New(ctx context.Context, screen tcell.Screen, opts Options, log logrus.FieldLogger) (*Game, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := &Game{
		screen: screen,
		ui:     ui.New(screen, log),
		store:  opts.Store,
		cfg:    opts.Config,
		now:    opts.Now,
		log:    log,
	}
	if g.now == nil {
		g.now = time.Now
	}

	gen := opts.Generator
	if gen == nil {
		var err error
		if gen, err = generate.New(generate.DefaultConfig(), log); err != nil {
			return nil, err
		}
	}
	ecfg := &engine.Config{
		Seed:      g.cfg.ResolveSeed(g.now()),
		Level:     g.cfg.Level,
		Generator: gen,
		Frontend:  g.ui,
		Logger:    log,
	}

	if opts.Continue && g.store != nil {
		w, err := g.resume(ctx, ecfg)
		if err != nil {
			return nil, err
		}
		if w != nil {
			g.world = w
			return g, nil
		}
	}

	w, err := engine.New(ecfg)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.world = w
	log.WithFields(logrus.Fields{"seed": w.Seed, "level": w.Level.Number}).Info("new game")
	return g, nil
}

// resume loads the latest save. Saves are single use: a resumed save is
// deleted. It returns a nil World when there is nothing to resume.
func (g *Game) resume(ctx context.Context, ecfg *engine.Config) (*engine.World, error) {
	id, err := g.store.Latest(ctx)
	if errors.Is(err, savegame.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snap, err := g.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := engine.Restore(snap, ecfg)
	if err != nil {
		return nil, fmt.Errorf("resume %s: %w", id, err)
	}
	if err := g.store.Delete(ctx, id); err != nil {
		g.log.WithError(err).WithField("id", id).Warn("resumed save not deleted")
	}
	w.Report("Welcome back.")
	g.log.WithFields(logrus.Fields{"id": id, "turn": w.Turn, "level": w.Level.Number}).Info("resumed game")
	return w, nil
}

// World is the session's world.
func (g *Game) World() *engine.World { return g.world }

// Run plays until the player dies, wins or quits.
func (g *Game) Run(ctx context.Context) (engine.Outcome, error) {
	outcome, err := g.world.RunLoop(ctx)
	if err != nil {
		return outcome, err
	}
	switch outcome {
	case engine.OutcomeQuit:
		if err := g.save(ctx); err != nil {
			return outcome, err
		}
	case engine.OutcomeDied, engine.OutcomeWon:
		runlog.Save(g.cfg.DataDir, runlog.FromWorld(g.world, g.now()), g.log)
		if err := g.ui.End(g.world); err != nil && !errors.Is(err, ui.ErrClosed) {
			return outcome, err
		}
	}
	return outcome, nil
}

func (g *Game) save(ctx context.Context) error {
	if g.store == nil {
		return nil
	}
	id, err := g.store.Save(ctx, g.world.Snapshot())
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	g.SavedID = id
	g.log.WithFields(logrus.Fields{"id": id, "turn": g.world.Turn}).Info("game saved")
	return nil
}
