package game

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"raywizard/internal/config"
	"raywizard/internal/engine"
	"raywizard/internal/gamemap"
	"raywizard/internal/runlog"
	"raywizard/internal/savegame"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// room is a 20×10 floor with the player at (5,5).
type room struct{}

func (room) Generate(w *engine.World, level int) (*engine.Level, error) {
	l := engine.NewLevel(level, gamemap.New(20, 10, gamemap.TileFloor))
	w.PlacePlayer(l, 5, 5)
	return l, nil
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	screen tcell.SimulationScreen
	store  *savegame.BoltStore
	opts   Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	log, _ := test.NewNullLogger()
	store, err := savegame.OpenBolt(dir, log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.Seed = 42
	cfg.DataDir = dir
	return &fixture{
		store: store,
		opts: Options{
			Config:    cfg,
			Store:     store,
			Generator: room{},
			Now:       func() time.Time { return fixedNow },
		},
	}
}

func (f *fixture) start(t *testing.T, keys ...rune) *Game {
	t.Helper()
	f.screen = tcell.NewSimulationScreen("")
	require.NoError(t, f.screen.Init())
	t.Cleanup(f.screen.Fini)
	for _, r := range keys {
		switch r {
		case 0x1b:
			f.screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
		case '\r':
			f.screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		default:
			f.screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
		}
	}
	log, _ := test.NewNullLogger()
	g, err := New(context.Background(), f.screen, f.opts, log)
	require.NoError(t, err)
	return g
}

// quit opens the escape menu, moves to Quit and confirms.
var quit = []rune{0x1b, 'j', '\r'}

func TestQuitSaves(t *testing.T) {
	f := newFixture(t)
	g := f.start(t, append([]rune{'l', 'l'}, quit...)...)

	outcome, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, engine.OutcomeQuit, outcome)
	require.NotEmpty(t, g.SavedID)

	latest, err := f.store.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, g.SavedID, latest)

	snap, err := f.store.Load(context.Background(), latest)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Turn)
	assert.EqualValues(t, 42, snap.Seed)
}

func TestContinue(t *testing.T) {
	f := newFixture(t)
	g := f.start(t, append([]rune{'l'}, quit...)...)
	_, err := g.Run(context.Background())
	require.NoError(t, err)

	f.opts.Continue = true
	g = f.start(t)
	w := g.World()
	assert.Equal(t, 1, w.Turn)
	assert.Equal(t, 6, w.Player.X)
	assert.Contains(t, w.Log, "Welcome back.")

	_, err = f.store.Latest(context.Background())
	assert.ErrorIs(t, err, savegame.ErrNotFound, "a resumed save is used up")
}

func TestContinueWithoutSave(t *testing.T) {
	f := newFixture(t)
	f.opts.Continue = true
	g := f.start(t)
	assert.Equal(t, 0, g.World().Turn)
	assert.NotContains(t, g.World().Log, "Welcome back.")
}

func TestQuitWithoutStore(t *testing.T) {
	f := newFixture(t)
	f.opts.Store = nil
	g := f.start(t, quit...)
	outcome, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, engine.OutcomeQuit, outcome)
	assert.Empty(t, g.SavedID)
}

func TestDeathIsLogged(t *testing.T) {
	f := newFixture(t)
	g := f.start(t, ' ')
	w := g.World()
	w.LastHurt = "hunter"
	w.Level.RemoveActor(w.Player)

	outcome, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, engine.OutcomeDied, outcome)

	file, err := os.Open(filepath.Join(f.opts.Config.DataDir, runlog.FileName))
	require.NoError(t, err)
	defer file.Close()
	sc := bufio.NewScanner(file)
	require.True(t, sc.Scan())
	var rec runlog.Record
	require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
	assert.Equal(t, runlog.Record{
		EndedAt: fixedNow, Seed: 42, LevelReached: 1, Outcome: "died", CauseOfDeath: "hunter",
	}, rec)
	assert.False(t, sc.Scan(), "one line per run")
}
