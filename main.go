// raywizard is a turn-based roguelike played in the terminal: a wizard
// fights their way down three dungeon levels with a hotbar of spells.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"raywizard/internal/config"
	"raywizard/internal/engine"
	"raywizard/internal/game"
	"raywizard/internal/logger"
	"raywizard/internal/savegame"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	var resume bool
	cmd := &cobra.Command{
		Use:          "raywizard",
		Short:        "A turn-based roguelike about a wizard and their spells",
		Long:         `raywizard is played in the terminal. Press ? in game for the key reference.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), cfg, resume)
		},
	}
	config.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append diagnostics to this file (discarded if empty)")
	cmd.Flags().BoolVar(&resume, "continue", false, "resume the most recent save")
	return cmd, nil
}

func play(ctx context.Context, cfg config.Config, resume bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	out, closeLog, err := openLogOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, out)
	if err != nil {
		return err
	}

	store, err := savegame.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	g, err := game.New(ctx, screen, game.Options{Config: cfg, Store: store, Continue: resume}, log)
	if err != nil {
		screen.Fini()
		return err
	}
	outcome, err := g.Run(ctx)
	screen.Fini()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"outcome": outcome.String(), "turn": g.World().Turn}).Info("bye")
	fmt.Println(summary(outcome, g))
	return nil
}

// openLogOutput opens the diagnostics file. The terminal belongs to the
// game, so an empty path discards logs.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func summary(outcome engine.Outcome, g *game.Game) string {
	w := g.World()
	switch outcome {
	case engine.OutcomeWon:
		return fmt.Sprintf("You escaped the dungeon in %d turns.", w.Turn)
	case engine.OutcomeDied:
		if w.LastHurt != "" {
			return fmt.Sprintf("Killed by %s on level %d after %d turns.", w.LastHurt, w.Level.Number, w.Turn)
		}
		return fmt.Sprintf("You died on level %d after %d turns.", w.Level.Number, w.Turn)
	}
	if g.SavedID != "" {
		return "Game saved. Run with --continue to resume."
	}
	return "Goodbye."
}
