package engine

import (
	"testing"

	"raywizard/internal/gamemap"
	"raywizard/internal/geom"

	"github.com/stretchr/testify/require"
)

// arena generates a single open room of the given fill with the player at
// start. Each call builds a fresh level.
type arena struct {
	width, height int
	fill          gamemap.TileKind
	start         geom.Point
	stairs        *geom.Point
	calls         int
}

func (g *arena) Generate(w *World, level int) (*Level, error) {
	g.calls++
	m := gamemap.New(g.width, g.height, g.fill)
	l := NewLevel(level, m)
	l.Rooms = []gamemap.Rect{{X1: 0, Y1: 0, X2: g.width - 1, Y2: g.height - 1}}
	if g.stairs != nil {
		l.Features = append(l.Features, Feature{Kind: FeatureStairsDown, X: g.stairs.X, Y: g.stairs.Y})
	}
	w.PlacePlayer(l, g.start.X, g.start.Y)
	return l, nil
}

// scripted replays canned commands and directions. It quits once the
// commands run out.
type scripted struct {
	commands []Command
	dirs     []*geom.Direction // nil entries decline the prompt
	frames   int
	pending  bool
}

func (s *scripted) Command(*World) (Command, error) {
	if len(s.commands) == 0 {
		return Command{}, ErrQuit
	}
	c := s.commands[0]
	s.commands = s.commands[1:]
	return c, nil
}

func (s *scripted) Direction(*World) (geom.Direction, bool) {
	if len(s.dirs) == 0 || s.dirs[0] == nil {
		if len(s.dirs) > 0 {
			s.dirs = s.dirs[1:]
		}
		return geom.Direction{}, false
	}
	d := *s.dirs[0]
	s.dirs = s.dirs[1:]
	return d, true
}

func (s *scripted) Frame(*World, []geom.Point) { s.frames++ }
func (s *scripted) Pending() bool             { return s.pending }

func dir(dx, dy int) *geom.Direction { return &geom.Direction{DX: dx, DY: dy} }

// newArenaWorld builds a world on a width×height floor with the player at (px, py).
func newArenaWorld(t *testing.T, width, height, px, py int) (*World, *scripted) {
	t.Helper()
	fe := &scripted{}
	w, err := New(&Config{
		Seed:      7,
		Generator: &arena{width: width, height: height, fill: gamemap.TileFloor, start: geom.Point{X: px, Y: py}},
		Frontend:  fe,
	})
	require.NoError(t, err)
	return w, fe
}

// spawn registers a new actor of kind k at (x, y).
func spawn(w *World, k Kind, x, y int) *Actor {
	a := w.NewActor(k, x, y)
	w.Level.AddActor(a)
	return a
}

// fakeEntity is a minimal schedulable for loop tests.
type fakeEntity struct {
	name  string
	turns int
	skip  int
	err   error
}

func (f *fakeEntity) OnTurn(*World) error {
	f.turns++
	return f.err
}

func (f *fakeEntity) ConsumeSkip() bool {
	if f.skip > 0 {
		f.skip--
		return true
	}
	return false
}
