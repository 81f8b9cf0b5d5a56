package ui

import (
	"raywizard/internal/engine"
	"raywizard/internal/render"

	"github.com/gdamore/tcell/v2"
)

const helpText = `Move with the arrow keys, the vi keys, or the number pad with NumLock off (Home/End/PgUp/PgDn).

 y k u
 h . l
 b j n

[.] waits a turn.
[1]..[9] and [0] cast the spells on the hotbar.
[>] takes the stairs down.
[x] explores automatically until something comes into view.
[esc] closes this screen and cancels prompts.
[?] shows this screen.`

const winText = `Congratulations!

You have escaped your dungeon prison and won the game!
Now you roam the planet with your newfound freedom.`

const (
	boxWidth  = 60
	boxHeight = 32
)

var menuItems = []string{"Return to game", "Quit"}

const (
	menuReturn = iota
	menuQuit
)

// help shows the key reference until any key is pressed.
func (u *UI) help(w *engine.World) error {
	_, err := u.poll(func() {
		u.r.Draw(w, nil)
		u.r.Fade(16)
		u.r.DrawBox(helpText, boxWidth, boxHeight)
	})
	return err
}

// menu runs the escape menu and reports whether the player chose to quit.
// Vertical moves select, Enter or wait confirm, Escape returns to the game.
func (u *UI) menu(w *engine.World) (bool, error) {
	cursor := menuReturn
	for {
		ev, err := u.poll(func() {
			u.r.Draw(w, nil)
			u.r.Fade(12)
			u.r.DrawMenu(menuItems, cursor)
		})
		if err != nil {
			return false, err
		}
		switch ev.Key() {
		case tcell.KeyEscape:
			return false, nil
		case tcell.KeyEnter:
			return cursor == menuQuit, nil
		}
		dx, dy, ok := moveDelta(ev)
		if !ok || dx != 0 {
			continue
		}
		if dy == 0 {
			return cursor == menuQuit, nil
		}
		cursor = (cursor + dy + len(menuItems)) % len(menuItems)
	}
}

// End shows the closing screen for a finished run and waits for a key.
// Quitting has no closing screen.
func (u *UI) End(w *engine.World) error {
	var draw func()
	switch w.Outcome {
	case engine.OutcomeWon:
		draw = func() {
			u.screen.Clear()
			u.r.DrawBox(winText, boxWidth, boxHeight)
		}
	case engine.OutcomeDied:
		draw = func() {
			u.r.Draw(w, nil)
			u.r.DrawPrompt("You died. Press any key.")
		}
	default:
		return nil
	}
	_, err := u.poll(draw)
	return err
}

// Renderer exposes the drawing layer, e.g. for generator debug views.
func (u *UI) Renderer() *render.Renderer { return u.r }
