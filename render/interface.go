package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/core"
	"github.com/lixenwraith/termpaint/dialog"
)

// Surface is the cell grid renderers draw into; tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Screen is a Surface that can be cleared and presented
type Screen interface {
	Surface
	Clear()
	Show()
	Sync()
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Canvas grid, indexed [y][x]
	Pixels [][]core.Pixel

	// Overlay draw description from the dialog's render pass
	Overlay dialog.Frame
}

// SystemRenderer is implemented by every drawing stage
type SystemRenderer interface {
	Render(ctx RenderContext, s Surface)
}

// VisibilityToggle is optionally implemented by renderers that skip some frames
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
