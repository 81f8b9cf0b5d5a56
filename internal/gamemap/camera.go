package gamemap

// Camera is the world cell shown at the middle of the viewport.
type Camera struct {
	X, Y int
}

// Views returns the matching screen and world rectangles for drawing a
// worldW×worldH map onto a screenW×screenH viewport with the camera centred.
// ok is false when the two do not overlap at all.
func (c Camera) Views(worldW, worldH, screenW, screenH int) (screen, world Rect, ok bool) {
	// world x of screen column 0
	left := c.X - screenW/2
	top := c.Y - screenH/2

	wx1, wy1 := max(left, 0), max(top, 0)
	wx2, wy2 := min(left+screenW, worldW)-1, min(top+screenH, worldH)-1
	if wx1 > wx2 || wy1 > wy2 {
		return Rect{}, Rect{}, false
	}
	world = Rect{wx1, wy1, wx2, wy2}
	screen = Rect{wx1 - left, wy1 - top, wx2 - left, wy2 - top}
	return screen, world, true
}

// WorldToScreen converts world (wx, wy) to viewport (sx, sy).
// visible is false when the result falls outside the viewport.
func (c Camera) WorldToScreen(wx, wy, screenW, screenH int) (sx, sy int, visible bool) {
	sx = wx - c.X + screenW/2
	sy = wy - c.Y + screenH/2
	visible = sx >= 0 && sx < screenW && sy >= 0 && sy < screenH
	return
}

// ScreenToWorld converts viewport (sx, sy) to world coordinates.
func (c Camera) ScreenToWorld(sx, sy, screenW, screenH int) (int, int) {
	return sx + c.X - screenW/2, sy + c.Y - screenH/2
}
