package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/constants"
)

// CanvasRenderer draws each pixel as PixelWidth blank cells on the pixel's background
type CanvasRenderer struct{}

// NewCanvasRenderer creates the canvas stage
func NewCanvasRenderer() *CanvasRenderer {
	return &CanvasRenderer{}
}

func (r *CanvasRenderer) Render(ctx RenderContext, s Surface) {
	width, height := s.Size()

	for y, row := range ctx.Pixels {
		if y >= height {
			return
		}
		for x, p := range row {
			style := tcell.StyleDefault.Background(PixelToTcell(p))
			sx := x * constants.PixelWidth
			for i := 0; i < constants.PixelWidth && sx+i < width; i++ {
				s.SetContent(sx+i, y, ' ', nil, style)
			}
		}
	}
}
