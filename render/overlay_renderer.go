package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termpaint/canvas"
	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/core"
	"github.com/lixenwraith/termpaint/dialog"
)

// selectionMarker is drawn over the swatch matching the current color
const selectionMarker = '•'

// OverlayRenderer draws the toolbar and palette panels described by the dialog frame
type OverlayRenderer struct {
	asciiIcons bool
}

// NewOverlayRenderer creates the overlay stage; asciiIcons selects single-letter tool icons
func NewOverlayRenderer(asciiIcons bool) *OverlayRenderer {
	return &OverlayRenderer{asciiIcons: asciiIcons}
}

// IsVisible reports whether the dialog produced anything to draw this frame
func (r *OverlayRenderer) IsVisible(ctx RenderContext) bool {
	return ctx.Overlay.Visible
}

func (r *OverlayRenderer) Render(ctx RenderContext, s Surface) {
	frame := ctx.Overlay
	clearPanel(s, frame.Toolbar.Bound)
	for _, item := range frame.Toolbar.Items {
		style := tcell.StyleDefault
		if item.Active {
			style = style.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
		}
		drawCell(s, item.At, r.icon(item.Tool), constants.ToolbarWidth-constants.ToolbarIconColumn, style)
	}

	clearPanel(s, frame.Palette.Bound)
	for _, sw := range frame.Palette.Swatches {
		style := tcell.StyleDefault.Background(PixelToTcell(sw.Color))
		mark := ' '
		if sw.Selected {
			mark = selectionMarker
			style = style.Foreground(ContrastColor(sw.Color))
		}
		for i := 0; i < constants.SwatchWidth; i++ {
			s.SetContent(sw.At.X+i, sw.At.Y, mark, nil, style)
		}
	}
}

func (r *OverlayRenderer) icon(t canvas.Tool) string {
	switch t {
	case canvas.ToolBucket:
		if r.asciiIcons {
			return constants.IconBucketASCII
		}
		return constants.IconBucket
	default:
		if r.asciiIcons {
			return constants.IconPaintbrushASCII
		}
		return constants.IconPaintbrush
	}
}

// clearPanel resets a bound to blank default-styled cells
func clearPanel(s Surface, b dialog.Bound) {
	for y := b.Top; y < b.Bottom; y++ {
		for x := b.Left; x < b.Right; x++ {
			s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// drawCell writes text starting at p and pads with blanks to span cells
// Zero-width runes attach to the preceding cell as combining characters
func drawCell(s Surface, p core.Point, text string, span int, style tcell.Style) {
	type glyph struct {
		main  rune
		comb  []rune
		width int
	}

	glyphs := make([]glyph, 0, len(text))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 && len(glyphs) > 0 {
			last := &glyphs[len(glyphs)-1]
			last.comb = append(last.comb, r)
			continue
		}
		glyphs = append(glyphs, glyph{main: r, width: max(w, 1)})
	}

	x := p.X
	for _, g := range glyphs {
		if x+g.width > p.X+span {
			break
		}
		s.SetContent(x, p.Y, g.main, g.comb, style)
		x += g.width
	}
	for ; x < p.X+span; x++ {
		s.SetContent(x, p.Y, ' ', nil, style)
	}
}
