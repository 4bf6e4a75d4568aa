package core

// Pixel stores explicit 8-bit RGBA channels, decoupled from tcell
// Equality is exact channel-wise equality, so Pixel is usable with ==
type Pixel struct {
	R, G, B, A uint8
}

// Predefined pixels
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
)

// RGBA builds a pixel from all four channels
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// RGB builds a fully opaque pixel
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// Opaque reports whether the pixel is rendered with its RGB value
// Anything below full alpha shows the terminal's default background; partial alpha is not blended
func (p Pixel) Opaque() bool {
	return p.A == 255
}
