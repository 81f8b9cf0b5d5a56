package render

import "github.com/gdamore/tcell/v2"

var (
	black        = tcell.NewRGBColor(0, 0, 0)
	white        = tcell.NewRGBColor(255, 255, 255)
	borderColor  = tcell.NewRGBColor(94, 4, 2)
	textColor    = white
	textDimColor = tcell.NewRGBColor(128, 128, 128)
	shroudColor  = tcell.NewRGBColor(0x40, 0x40, 0x40)
	stairsColor  = tcell.NewRGBColor(255, 255, 255)
)

// Border is the shaded cell drawn between the map and the panels.
const Border = '▒'

// Text styles shared by the panels and overlays.
var (
	TextStyle     = tcell.StyleDefault.Foreground(textColor).Background(black)
	DimTextStyle  = tcell.StyleDefault.Foreground(textDimColor).Background(black)
	borderStyle   = tcell.StyleDefault.Foreground(borderColor).Background(black)
	selectedStyle = tcell.StyleDefault.Foreground(black).Background(textColor)
)

// dim scales a color towards black; remembered tiles are drawn with it.
func dim(c tcell.Color, div int32) tcell.Color {
	if !c.Valid() {
		return c
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(r/div, g/div, b/div)
}

// invert flips both colors of a style, used to highlight cells.
func invert(c tcell.Color) tcell.Color {
	if !c.Valid() {
		return white
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(255-r, 255-g, 255-b)
}

func fade(st tcell.Style, div int32) tcell.Style {
	fg, bg, attr := st.Decompose()
	return tcell.StyleDefault.Foreground(dim(fg, div)).Background(dim(bg, div)).Attributes(attr)
}
