package dialog

import (
	"github.com/lixenwraith/termpaint/canvas"
	"github.com/lixenwraith/termpaint/core"
)

// Frame is the flat draw description produced by a render pass
// Positions are absolute terminal cells
type Frame struct {
	Visible bool
	Toolbar ToolbarView
	Palette PaletteView
}

// ToolbarView describes the tool selector panel
type ToolbarView struct {
	Bound Bound
	Items []ToolItem
}

// ToolItem is one selectable tool row
type ToolItem struct {
	Tool   canvas.Tool
	At     core.Point // icon cell
	Active bool
}

// PaletteView describes the swatch panel
type PaletteView struct {
	Bound    Bound
	Swatches []SwatchItem
}

// SwatchItem is one palette entry; it spans SwatchWidth cells starting at At
type SwatchItem struct {
	Index    int
	Color    core.Pixel
	At       core.Point
	Selected bool
}
