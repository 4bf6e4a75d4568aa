package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termpaint/core"
)

// PixelToTcell converts a pixel to a tcell color
// Non-opaque pixels map to the terminal's default color; alpha is never blended
func PixelToTcell(p core.Pixel) tcell.Color {
	if !p.Opaque() {
		return tcell.ColorReset
	}
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

// ContrastColor returns black or white, whichever reads better on top of p
// Non-opaque pixels are treated as a dark default background
func ContrastColor(p core.Pixel) tcell.Color {
	if !p.Opaque() {
		return tcell.ColorWhite
	}
	c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
	l, _, _ := c.Lab()
	if l > 0.5 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
