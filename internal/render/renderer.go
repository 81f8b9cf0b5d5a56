// Package render draws a World onto a tcell screen: the map through the
// camera, actors and features in the player's sight, and the UI panels.
package render

import (
	"raywizard/internal/engine"
	"raywizard/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// rememberedDiv darkens explored cells that are out of sight.
const rememberedDiv = 2

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen is the underlying tcell screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Layout is the panel layout for the current screen size.
func (r *Renderer) Layout() Layout {
	w, h := r.screen.Size()
	return NewLayout(w, h)
}

// Draw renders the map, panels and log without presenting them.
// highlight cells are drawn with inverted colors.
func (r *Renderer) Draw(w *engine.World, highlight []geom.Point) {
	r.screen.Clear()
	l := r.Layout()
	r.drawMap(w, l, highlight)
	if l.HasPanels() {
		r.drawBorders(l)
		r.drawSpells(w, l)
		r.drawLog(w, l)
		r.drawStatus(w, l)
	}
}

// Frame draws and presents one frame.
func (r *Renderer) Frame(w *engine.World, highlight []geom.Point) {
	r.Draw(w, highlight)
	r.screen.Show()
}

// Show presents whatever has been drawn.
func (r *Renderer) Show() { r.screen.Show() }

// drawMap renders the viewport: visible cells in full color, remembered
// cells dimmed, everything else as shroud.
func (r *Renderer) drawMap(w *engine.World, l Layout, highlight []geom.Point) {
	if w.Level == nil {
		return
	}
	m := w.Level.Map
	view := w.PlayerView()
	mw, mh := l.Map.Width(), l.Map.Height()
	shroud := tcell.StyleDefault.Foreground(shroudColor).Background(black)

	glyphs := make(map[geom.Point]cell)
	for _, f := range w.Level.Features {
		glyphs[geom.Point{X: f.X, Y: f.Y}] = cell{ch: f.Glyph(), fg: stairsColor, feature: true}
	}
	if view != nil {
		for _, a := range w.Level.Actors() {
			if m.InBounds(a.X, a.Y) && view[a.Y][a.X] {
				glyphs[a.Pos()] = cell{ch: a.Glyph(), fg: a.Info().Color}
			}
		}
	}
	lit := make(map[geom.Point]bool, len(highlight))
	for _, p := range highlight {
		lit[p] = true
	}

	for sy := 0; sy < mh; sy++ {
		for sx := 0; sx < mw; sx++ {
			wx, wy := w.Camera.ScreenToWorld(sx, sy, mw, mh)
			x, y := l.Map.X1+sx, l.Map.Y1+sy
			if !m.InBounds(wx, wy) {
				r.screen.SetContent(x, y, ' ', nil, shroud)
				continue
			}
			seen := view != nil && view[wy][wx]
			if !seen && !m.Explored[wy][wx] {
				r.screen.SetContent(x, y, ' ', nil, shroud)
				continue
			}
			t := m.Tile(wx, wy)
			ch, fg, bg := t.Glyph, t.FG, t.BG
			if g, ok := glyphs[geom.Point{X: wx, Y: wy}]; ok && (seen || g.feature) {
				ch, fg = g.ch, g.fg
			}
			if !seen {
				fg, bg = dim(fg, rememberedDiv), dim(bg, rememberedDiv)
			}
			if lit[geom.Point{X: wx, Y: wy}] {
				fg, bg = invert(fg), invert(bg)
			}
			r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

type cell struct {
	ch      rune
	fg      tcell.Color
	feature bool
}

// MapCell returns the screen cell showing world (wx, wy), if on screen.
func (r *Renderer) MapCell(w *engine.World, wx, wy int) (sx, sy int, ok bool) {
	return r.Layout().MapToScreen(w.Camera, wx, wy)
}

// Fade darkens everything drawn so far; overlays are drawn over it.
func (r *Renderer) Fade(div int32) {
	sw, sh := r.screen.Size()
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			ch, comb, st, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, ch, comb, fade(st, div))
		}
	}
}

// drawText writes text from (x, y), stopping at column maxX (inclusive).
// Wide runes take two columns.
func (r *Renderer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw-1 > maxX {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		if cw == 2 {
			// Fill the second column to avoid rendering artifacts.
			r.screen.SetContent(col+1, y, ' ', nil, style)
		}
		col += cw
	}
	return col
}

