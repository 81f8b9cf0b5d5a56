package render

import "raywizard/internal/gamemap"

const (
	// panelWidth is the spell bar column on the right.
	panelWidth = 24
	// panelHeight is the log and status strip along the bottom.
	panelHeight = 12
	// statusWidth is the status box left of the spell bar.
	statusWidth = 20
	// slotHeight is the rows given to each spell slot.
	slotHeight = 3
)

// Layout splits a screen into the map viewport and the UI panels.
// Rectangles are inclusive screen cells.
type Layout struct {
	Map    gamemap.Rect
	Spells gamemap.Rect
	Log    gamemap.Rect
	Status gamemap.Rect
}

// NewLayout computes the panels for a screenW×screenH terminal. Tiny
// screens give the whole area to the map.
func NewLayout(screenW, screenH int) Layout {
	if screenW <= panelWidth+statusWidth+1 || screenH <= panelHeight+1 {
		return Layout{Map: gamemap.Rect{X1: 0, Y1: 0, X2: screenW - 1, Y2: screenH - 1}}
	}
	mapW := screenW - panelWidth
	mapH := screenH - panelHeight
	return Layout{
		Map:    gamemap.Rect{X1: 0, Y1: 0, X2: mapW - 1, Y2: mapH - 1},
		Spells: gamemap.Rect{X1: mapW + 1, Y1: 0, X2: screenW - 1, Y2: screenH - 1},
		Log:    gamemap.Rect{X1: 0, Y1: mapH + 1, X2: mapW - statusWidth - 2, Y2: screenH - 1},
		Status: gamemap.Rect{X1: mapW - statusWidth, Y1: mapH + 1, X2: mapW - 1, Y2: screenH - 1},
	}
}

// HasPanels reports whether the screen was large enough for the UI.
func (l Layout) HasPanels() bool { return l.Spells != gamemap.Rect{} }

// MapToScreen converts world (wx, wy) to the screen cell showing it through
// cam; visible is false when that cell falls outside the map viewport.
func (l Layout) MapToScreen(cam gamemap.Camera, wx, wy int) (sx, sy int, visible bool) {
	vx, vy, _ := cam.WorldToScreen(wx, wy, l.Map.Width(), l.Map.Height())
	sx, sy = l.Map.X1+vx, l.Map.Y1+vy
	return sx, sy, l.Map.Contains(sx, sy)
}
