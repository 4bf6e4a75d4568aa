package app

import (
	"github.com/lixenwraith/termpaint/canvas"
	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/core"
	"github.com/lixenwraith/termpaint/dialog"
)

// Target identifies which layer consumed a pointer event
type Target uint8

const (
	TargetNone Target = iota
	TargetOverlay
	TargetCanvas
)

func (t Target) String() string {
	switch t {
	case TargetOverlay:
		return "overlay"
	case TargetCanvas:
		return "canvas"
	default:
		return "none"
	}
}

// Result describes the outcome of one dispatched pointer event
type Result struct {
	Target Target
	Action dialog.Action // set for TargetOverlay
	Pixel  core.Point    // canvas coordinate for TargetCanvas
	Tool   canvas.Tool   // tool applied for TargetCanvas
	Change int           // pixels changed for TargetCanvas
}

// Dispatcher routes terminal-cell pointer coordinates to the dialog first, then the canvas
type Dispatcher struct {
	dialog *dialog.DialogState
	canvas *canvas.Canvas
}

// NewDispatcher binds a dialog and the canvas it edits
func NewDispatcher(d *dialog.DialogState, c *canvas.Canvas) *Dispatcher {
	return &Dispatcher{dialog: d, canvas: c}
}

// Dispatch applies a primary-button press or drag at p
// Bounds from the last dialog render are tested in insertion order; the first hit consumes the event
func (d *Dispatcher) Dispatch(p core.Point) Result {
	if _, ok := d.dialog.HitTest(p); ok {
		return Result{
			Target: TargetOverlay,
			Action: d.dialog.Interact(p, d.canvas),
		}
	}

	px := CellToPixel(p)
	tool := d.canvas.Tool()
	return Result{
		Target: TargetCanvas,
		Pixel:  px,
		Tool:   tool,
		Change: d.canvas.InteractWithPixel(px.X, px.Y),
	}
}

// CellToPixel maps a terminal cell to a canvas pixel: column floor-divided by PixelWidth, row unchanged
// Negative columns stay negative so they fall outside the canvas
func CellToPixel(p core.Point) core.Point {
	x := p.X / constants.PixelWidth
	if p.X < 0 && p.X%constants.PixelWidth != 0 {
		x--
	}
	return core.Point{X: x, Y: p.Y}
}
