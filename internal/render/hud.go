package render

import (
	"fmt"
	"strings"

	"raywizard/internal/engine"
	"raywizard/internal/gamemap"

	"github.com/mattn/go-runewidth"
)

func (r *Renderer) drawBorders(l Layout) {
	_, sh := r.screen.Size()
	for y := 0; y < sh; y++ {
		r.screen.SetContent(l.Spells.X1-1, y, Border, nil, borderStyle)
	}
	for x := 0; x <= l.Map.X2; x++ {
		r.screen.SetContent(x, l.Map.Y2+1, Border, nil, borderStyle)
	}
	for y := l.Status.Y1; y <= l.Status.Y2; y++ {
		r.screen.SetContent(l.Status.X1-1, y, Border, nil, borderStyle)
	}
}

// drawSpells renders the hotbar down the right-hand column. Empty slots
// are skipped.
func (r *Renderer) drawSpells(w *engine.World, l Layout) {
	for i, s := range w.Spells {
		if s == nil {
			continue
		}
		y := l.Spells.Y1 + i*slotHeight
		if y+1 > l.Spells.Y2 {
			break
		}
		style := TextStyle
		if s.CooldownLeft > 0 {
			style = DimTextStyle
		}
		r.drawText(l.Spells.X1, y, l.Spells.X2, fmt.Sprintf("%2d. %s", i+1, s.Name), style)
		r.drawText(l.Spells.X1, y+1, l.Spells.X2, fmt.Sprintf("Cooldown: %d/%d", s.CooldownLeft, s.Cooldown), DimTextStyle)
	}
}

// drawLog fills the log panel from the bottom with the newest messages,
// wrapping long ones.
func (r *Renderer) drawLog(w *engine.World, l Layout) {
	width := l.Log.Width()
	y := l.Log.Y2 + 1
	for i := len(w.Log) - 1; i >= 0; i-- {
		lines := wrap(w.Log[i], width)
		y -= len(lines)
		if y < l.Log.Y1 {
			return
		}
		for j, line := range lines {
			r.drawText(l.Log.X1, y+j, l.Log.X2, line, TextStyle)
		}
	}
}

func (r *Renderer) drawStatus(w *engine.World, l Layout) {
	p := w.Player
	r.drawText(l.Status.X1, l.Status.Y1, l.Status.X2, fmt.Sprintf("Status - %d,%d", p.X, p.Y), TextStyle)
	r.drawText(l.Status.X1, l.Status.Y1+1, l.Status.X2, fmt.Sprintf("HP %d", p.HP), TextStyle)
	r.drawText(l.Status.X1, l.Status.Y1+2, l.Status.X2, fmt.Sprintf("Turn %d", w.Turn), DimTextStyle)
	if w.Level != nil {
		r.drawText(l.Status.X1, l.Status.Y2, l.Status.X2, fmt.Sprintf("Dungeon level %d", w.Level.Number), TextStyle)
	}
}

// DrawPrompt writes a one-line prompt on the last row of the map view.
func (r *Renderer) DrawPrompt(msg string) {
	l := r.Layout()
	r.clear(gamemap.Rect{X1: l.Map.X1, Y1: l.Map.Y2, X2: l.Map.X2, Y2: l.Map.Y2})
	r.drawText(l.Map.X1, l.Map.Y2, l.Map.X2, msg, TextStyle)
}

// DrawBox writes text into a centered width×height box. Lines are wrapped
// to the box width.
func (r *Renderer) DrawBox(text string, width, height int) {
	sw, sh := r.screen.Size()
	box := centered(sw, sh, width, height)
	y := box.Y1
	for _, para := range strings.Split(text, "\n") {
		for _, line := range wrap(para, box.Width()) {
			if y > box.Y2 {
				return
			}
			r.drawText(box.X1, y, box.X2, line, TextStyle)
			y++
		}
	}
}

// DrawMenu lists items in a centered box with the cursor row inverted.
func (r *Renderer) DrawMenu(items []string, cursor int) {
	sw, sh := r.screen.Size()
	box := centered(sw, sh, 30, 8)
	r.clear(box)
	for i, item := range items {
		style := TextStyle
		if i == cursor {
			style = selectedStyle
		}
		r.drawText(box.X1, box.Y1+i, box.X2, item, style)
	}
}

// clear blanks every cell of rect in the text style.
func (r *Renderer) clear(rect gamemap.Rect) {
	for y := rect.Y1; y <= rect.Y2; y++ {
		for x := rect.X1; x <= rect.X2; x++ {
			r.screen.SetContent(x, y, ' ', nil, TextStyle)
		}
	}
}

func centered(sw, sh, width, height int) gamemap.Rect {
	width, height = min(width, sw), min(height, sh)
	x, y := (sw-width)/2, (sh-height)/2
	return gamemap.NewRect(x, y, width, height)
}

// wrap hard-wraps s into lines no wider than width columns.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(runewidth.Wrap(s, width), "\n")
}
