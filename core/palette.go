package core

// PaletteColumns is the number of swatches in one palette row
const PaletteColumns = 10

// PaletteRows is the number of swatch rows
const PaletteRows = 2

// Palette is the fixed swatch sequence. A swatch is identified by its index,
// laid out row-major as two rows of PaletteColumns
var Palette = [PaletteRows * PaletteColumns]Pixel{
	RGB(0, 0, 0),
	RGB(120, 120, 120),
	RGB(153, 0, 48),
	RGB(237, 28, 36),
	RGB(255, 126, 0),
	RGB(255, 242, 0),
	RGB(34, 177, 76),
	RGB(0, 183, 239),
	RGB(47, 54, 153),
	RGB(111, 49, 152),
	RGB(255, 255, 255),
	RGB(180, 180, 180),
	RGB(156, 90, 60),
	RGB(255, 163, 177),
	RGB(255, 194, 14),
	RGB(245, 228, 156),
	RGB(168, 230, 29),
	RGB(153, 217, 234),
	RGB(112, 154, 209),
	RGB(181, 165, 213),
}

// Swatch returns the palette entry for a swatch grid cell
// Returns false when row or column falls outside the grid
func Swatch(row, col int) (Pixel, bool) {
	if row < 0 || row >= PaletteRows || col < 0 || col >= PaletteColumns {
		return Pixel{}, false
	}
	return Palette[row*PaletteColumns+col], true
}

// SwatchIndex returns the palette index holding p, or -1
func SwatchIndex(p Pixel) int {
	for i, s := range Palette {
		if s == p {
			return i
		}
	}
	return -1
}
