package engine

import "raywizard/internal/geom"

//go:generate mockgen -destination=mock/frontend.go -package=enginemock raywizard/internal/engine Frontend

// CommandKind enumerates the decisions the interactive layer can make.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdMove             // DX, DY; the zero offset waits
	CmdCast             // Slot
	CmdDescend
	CmdAscend
	CmdHelp
	CmdAutoExplore
	CmdCancel
	CmdConfirm
	CmdDebugRegenerate
)

// Command is one player decision.
type Command struct {
	Kind   CommandKind
	DX, DY int
	Slot   int
}

// MoveCmd builds a movement command.
func MoveCmd(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }

// CastCmd builds a spell command for a hotbar slot.
func CastCmd(slot int) Command { return Command{Kind: CmdCast, Slot: slot} }

// Frontend is the interactive collaborator. Command and Direction block
// until the player decides; they are the only suspension points of the
// simulation.
type Frontend interface {
	// Command returns the next player decision. ErrQuit ends the game.
	Command(w *World) (Command, error)
	// Direction asks for a unit offset; ok is false if the player declined.
	Direction(w *World) (d geom.Direction, ok bool)
	// Frame presents the current state once, highlighting cells (may be nil).
	Frame(w *World, highlight []geom.Point)
	// Pending reports whether input is waiting to be read.
	Pending() bool
}

// NopFrontend drives a world without a player interface: every command is
// a wait and every prompt is declined.
type NopFrontend struct{}

func (NopFrontend) Command(*World) (Command, error)         { return MoveCmd(0, 0), nil }
func (NopFrontend) Direction(*World) (geom.Direction, bool) { return geom.Direction{}, false }
func (NopFrontend) Frame(*World, []geom.Point)              {}
func (NopFrontend) Pending() bool                           { return false }

// Generator builds levels. Implementations must place w.Player on the new
// level (see World.PlacePlayer).
type Generator interface {
	Generate(w *World, level int) (*Level, error)
}
