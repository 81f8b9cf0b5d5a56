package ui

import (
	"raywizard/internal/engine"

	"github.com/gdamore/tcell/v2"
)

// moveDelta maps a movement key to its offset. Arrow keys and the numpad
// with NumLock off (Home/End/PgUp/PgDn/Clear) work alongside the vi keys.
// The zero offset waits.
func moveDelta(ev *tcell.EventKey) (dx, dy int, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyRight:
		return 1, 0, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyHome:
		return -1, -1, true
	case tcell.KeyPgUp:
		return 1, -1, true
	case tcell.KeyEnd:
		return -1, 1, true
	case tcell.KeyPgDn:
		return 1, 1, true
	case tcell.KeyClear:
		return 0, 0, true
	case tcell.KeyRune:
	default:
		return 0, 0, false
	}

	switch ev.Rune() {
	case 'k':
		return 0, -1, true
	case 'j':
		return 0, 1, true
	case 'l':
		return 1, 0, true
	case 'h':
		return -1, 0, true
	case 'y':
		return -1, -1, true
	case 'u':
		return 1, -1, true
	case 'b':
		return -1, 1, true
	case 'n':
		return 1, 1, true
	case '.':
		return 0, 0, true
	}
	return 0, 0, false
}

// keyToCommand maps a tcell key event to a player command.
func keyToCommand(ev *tcell.EventKey) (engine.Command, bool) {
	if dx, dy, ok := moveDelta(ev); ok {
		return engine.MoveCmd(dx, dy), true
	}

	// Named keys.
	switch ev.Key() {
	case tcell.KeyEscape:
		return engine.Command{Kind: engine.CmdCancel}, true
	case tcell.KeyEnter:
		return engine.Command{Kind: engine.CmdConfirm}, true
	case tcell.KeyF1:
		return engine.Command{Kind: engine.CmdHelp}, true
	case tcell.KeyF2:
		return engine.Command{Kind: engine.CmdDebugRegenerate}, true
	case tcell.KeyRune:
	default:
		return engine.Command{}, false
	}

	// Rune keys.
	r := ev.Rune()
	switch {
	case r >= '1' && r <= '9':
		return engine.CastCmd(int(r - '1')), true
	case r == '0':
		return engine.CastCmd(9), true
	}
	switch r {
	case '>':
		return engine.Command{Kind: engine.CmdDescend}, true
	case '<':
		return engine.Command{Kind: engine.CmdAscend}, true
	case '?':
		return engine.Command{Kind: engine.CmdHelp}, true
	case 'x':
		return engine.Command{Kind: engine.CmdAutoExplore}, true
	}
	return engine.Command{}, false
}
