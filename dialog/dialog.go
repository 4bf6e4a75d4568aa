// Package dialog owns the overlay layout (toolbar and palette) and decides
// whether a pointer coordinate belongs to a UI control.
package dialog

import (
	"github.com/lixenwraith/termpaint/canvas"
	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/core"
)

// Target receives the mutations a control hit produces; *canvas.Canvas satisfies it
type Target interface {
	SetTool(t canvas.Tool)
	SetColor(p core.Pixel)
}

// ActionType discriminates the outcome of an interaction
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionSelectTool
	ActionSelectColor
)

// Action reports what Interact changed
type Action struct {
	Type   ActionType
	Tool   canvas.Tool
	Color  core.Pixel
	Swatch int
}

// DialogState holds overlay visibility, layout anchors and the bounds of the last render pass
type DialogState struct {
	hidden bool
	size   core.Size

	toolbarPos core.Point
	palettePos core.Point

	bounds []Bound
}

// New creates a hidden dialog laid out for the given terminal size
func New(size core.Size) *DialogState {
	d := &DialogState{
		hidden: true,
		bounds: make([]Bound, 0, 2),
	}
	d.Resize(size)
	return d
}

// Resize recomputes panel anchors; bounds follow on the next Render
func (d *DialogState) Resize(size core.Size) {
	d.size = size

	top := max(size.Rows-constants.DialogBottomOffset, 0)
	d.toolbarPos = core.Point{X: constants.ToolbarLeft, Y: top}
	d.palettePos = core.Point{X: constants.ToolbarLeft + constants.ToolbarWidth, Y: top}
}

// Size returns the terminal size the layout was computed for
func (d *DialogState) Size() core.Size {
	return d.size
}

// Hidden reports whether the dialog is hidden
func (d *DialogState) Hidden() bool {
	return d.hidden
}

// SetHidden sets visibility; bounds follow on the next Render
func (d *DialogState) SetHidden(hidden bool) {
	d.hidden = hidden
}

// Toggle flips visibility and returns true if now hidden
func (d *DialogState) Toggle() bool {
	d.hidden = !d.hidden
	return d.hidden
}

// Bounds returns the rectangles of the last render pass in insertion order. Callers must not modify it
func (d *DialogState) Bounds() []Bound {
	return d.bounds
}

// HitTest returns the first bound containing p
func (d *DialogState) HitTest(p core.Point) (Bound, bool) {
	for _, b := range d.bounds {
		if b.Contains(p) {
			return b, true
		}
	}
	return Bound{}, false
}

// Render rebuilds the bounds list and returns what to draw
// A hidden dialog yields an empty bounds list and an invisible frame
func (d *DialogState) Render(tool canvas.Tool, color core.Pixel) Frame {
	d.bounds = d.bounds[:0]

	if d.hidden {
		return Frame{}
	}

	toolbar := NewBound(BoundToolbar, d.toolbarPos, constants.ToolbarWidth, constants.ToolbarHeight)
	palette := NewBound(BoundPalette, d.palettePos, constants.PaletteWidth, constants.PaletteHeight)
	d.bounds = append(d.bounds, toolbar, palette)

	return Frame{
		Visible: true,
		Toolbar: toolbarView(toolbar, tool),
		Palette: paletteView(palette, color),
	}
}

func toolbarView(b Bound, active canvas.Tool) ToolbarView {
	col := b.Left + constants.ToolbarIconColumn
	return ToolbarView{
		Bound: b,
		Items: []ToolItem{
			{Tool: canvas.ToolPaintbrush, At: core.Point{X: col, Y: b.Top + constants.ToolbarPaintbrushRow}, Active: active == canvas.ToolPaintbrush},
			{Tool: canvas.ToolBucket, At: core.Point{X: col, Y: b.Top + constants.ToolbarBucketRow}, Active: active == canvas.ToolBucket},
		},
	}
}

func paletteView(b Bound, current core.Pixel) PaletteView {
	swatches := make([]SwatchItem, 0, len(core.Palette))
	for i, color := range core.Palette {
		row, col := i/core.PaletteColumns, i%core.PaletteColumns
		swatches = append(swatches, SwatchItem{
			Index: i,
			Color: color,
			At: core.Point{
				X: b.Left + constants.PaletteMarginX + col*constants.SwatchWidth,
				Y: b.Top + constants.PaletteMarginY + row,
			},
			Selected: color == current,
		})
	}
	return PaletteView{Bound: b, Swatches: swatches}
}

// Interact maps a pointer coordinate inside a rendered bound to a control and applies it to target
// Coordinates on a border, margin or outside every bound are ignored
func (d *DialogState) Interact(pos core.Point, target Target) Action {
	b, ok := d.HitTest(pos)
	if !ok {
		return Action{}
	}

	switch b.Kind {
	case BoundToolbar:
		return interactToolbar(b, pos, target)
	case BoundPalette:
		return interactPalette(b, pos, target)
	}
	return Action{}
}

func interactToolbar(b Bound, pos core.Point, target Target) Action {
	// Border and margin columns left of the icons are not tool hits
	if pos.X-b.Left < constants.ToolbarIconColumn {
		return Action{}
	}

	var tool canvas.Tool
	switch pos.Y - b.Top {
	case constants.ToolbarPaintbrushRow:
		tool = canvas.ToolPaintbrush
	case constants.ToolbarBucketRow:
		tool = canvas.ToolBucket
	default:
		return Action{}
	}

	target.SetTool(tool)
	return Action{Type: ActionSelectTool, Tool: tool}
}

func interactPalette(b Bound, pos core.Point, target Target) Action {
	// Offsets are checked for sign before dividing: integer division truncates toward zero
	dx := pos.X - b.Left - constants.PaletteMarginX
	dy := pos.Y - b.Top - constants.PaletteMarginY
	if dx < 0 || dy < 0 {
		return Action{}
	}

	row, col := dy, dx/constants.SwatchWidth
	color, ok := core.Swatch(row, col)
	if !ok {
		return Action{}
	}

	target.SetColor(color)
	return Action{Type: ActionSelectColor, Color: color, Swatch: row*core.PaletteColumns + col}
}
