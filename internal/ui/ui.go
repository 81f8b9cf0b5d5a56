// Package ui is the interactive terminal frontend. It turns tcell key
// events into engine commands and runs the modal screens (direction
// prompt, help, escape menu, end screens).
package ui

import (
	"fmt"
	"time"

	"raywizard/internal/engine"
	"raywizard/internal/geom"
	"raywizard/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// AnimationDelay is how long a highlighted animation frame stays up.
const AnimationDelay = 50 * time.Millisecond

// ErrClosed is returned once the screen stops delivering events, e.g. when
// an SSH client disconnects. It counts as a quit.
var ErrClosed = fmt.Errorf("ui: input closed: %w", engine.ErrQuit)

// UI implements engine.Frontend on a tcell screen.
type UI struct {
	screen tcell.Screen
	r      *render.Renderer
	log    logrus.FieldLogger

	// Delay is the pause after each animation frame.
	Delay time.Duration
}

var _ engine.Frontend = (*UI)(nil)

// New wraps an initialised screen. A nil log uses the standard logger.
func New(screen tcell.Screen, log logrus.FieldLogger) *UI {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &UI{
		screen: screen,
		r:      render.NewRenderer(screen),
		log:    log,
		Delay:  AnimationDelay,
	}
}

// Command blocks until a key maps to a command the engine handles. Help
// and the escape menu run here; quitting from the menu returns ErrQuit.
func (u *UI) Command(w *engine.World) (engine.Command, error) {
	for {
		ev, err := u.poll(func() { u.r.Draw(w, nil) })
		if err != nil {
			return engine.Command{}, err
		}
		cmd, ok := keyToCommand(ev)
		if !ok {
			continue
		}
		switch cmd.Kind {
		case engine.CmdHelp:
			if err := u.help(w); err != nil {
				return engine.Command{}, err
			}
		case engine.CmdCancel:
			quit, err := u.menu(w)
			if err != nil {
				return engine.Command{}, err
			}
			if quit {
				return engine.Command{}, engine.ErrQuit
			}
		case engine.CmdConfirm:
		default:
			return cmd, nil
		}
	}
}

// Direction asks for a unit offset, highlighting the cells around the
// player. Escape declines.
func (u *UI) Direction(w *engine.World) (geom.Direction, bool) {
	p := w.Player
	var around []geom.Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			around = append(around, geom.Point{X: p.X + dx, Y: p.Y + dy})
		}
	}
	for {
		ev, err := u.poll(func() {
			u.r.Draw(w, around)
			u.r.DrawPrompt("Pick a direction...")
		})
		if err != nil {
			return geom.Direction{}, false
		}
		if ev.Key() == tcell.KeyEscape {
			return geom.Direction{}, false
		}
		if dx, dy, ok := moveDelta(ev); ok {
			return geom.Direction{DX: dx, DY: dy}, true
		}
	}
}

// Frame draws the world once. Highlighted frames are animation steps and
// stay up for Delay.
func (u *UI) Frame(w *engine.World, highlight []geom.Point) {
	u.r.Frame(w, highlight)
	if len(highlight) > 0 && u.Delay > 0 {
		time.Sleep(u.Delay)
	}
}

// Pending reports whether a key is waiting.
func (u *UI) Pending() bool { return u.screen.HasPendingEvent() }

// poll redraws with draw and waits for the next key. Resizes redraw.
func (u *UI) poll(draw func()) (*tcell.EventKey, error) {
	for {
		draw()
		u.r.Show()
		switch ev := u.screen.PollEvent().(type) {
		case nil:
			u.log.Debug("screen closed")
			return nil, ErrClosed
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			return ev, nil
		}
	}
}
