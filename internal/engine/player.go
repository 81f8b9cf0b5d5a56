package engine

import (
	"raywizard/internal/geom"

	"github.com/sirupsen/logrus"
)

// PlayerControl hands the turn to the interactive layer until one of its
// commands uses the turn.
type PlayerControl struct {
	actor *Actor
}

func (p *PlayerControl) Actor() *Actor { return p.actor }

func (p *PlayerControl) Perform(w *World) (bool, error) {
	if p.actor != w.Player {
		panic("engine: PlayerControl bound to a non-player actor")
	}
	w.Camera.X, w.Camera.Y = p.actor.X, p.actor.Y
	for {
		cmd, err := w.frontend.Command(w)
		if err != nil {
			return false, err
		}
		done, err := w.Execute(cmd)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
}

// Execute applies one player command and reports whether it ended the
// player's turn. Presentation-only commands (help, confirm, cancel) are
// accepted and ignored here.
func (w *World) Execute(cmd Command) (bool, error) {
	w.log.WithFields(logrus.Fields{"turn": w.Turn, "command": cmd.Kind}).Debug("player command")
	switch cmd.Kind {
	case CmdMove:
		return NewMove(w.Player, geom.Direction{DX: cmd.DX, DY: cmd.DY}).Perform(w)
	case CmdCast:
		return w.Cast(cmd.Slot)
	case CmdDescend:
		return w.descend()
	case CmdAscend:
		w.Report("There are no stairs up here.")
		return false, nil
	case CmdAutoExplore:
		w.Player.SetAction(NewAutoExplore(w.Player))
		return true, nil
	case CmdDebugRegenerate:
		if err := w.Regenerate(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
