// Package canvas owns the pixel grid together with the active drawing color and tool.
package canvas

import "github.com/lixenwraith/termpaint/core"

// Tool selects how pointer interaction mutates the grid
type Tool uint8

const (
	ToolPaintbrush Tool = iota
	ToolBucket
)

// String returns human-readable tool name
func (t Tool) String() string {
	switch t {
	case ToolPaintbrush:
		return "Paintbrush"
	case ToolBucket:
		return "Bucket"
	default:
		return "Unknown"
	}
}

// Canvas is a fixed-size row-major grid of pixels, origin top-left
type Canvas struct {
	width  int
	height int
	rows   [][]core.Pixel // rows[y][x], all rows share one backing slice

	color core.Pixel
	tool  Tool

	stack []core.Point // flood fill work stack, reused between fills
}

// New allocates a width x height grid of opaque white, drawing color black and the paintbrush selected
// Non-positive dimensions produce an empty canvas on which every interaction is a no-op
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]core.Pixel, width*height)
	for i := range cells {
		cells[i] = core.White
	}

	rows := make([][]core.Pixel, height)
	for y := range rows {
		rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}

	return &Canvas{
		width:  width,
		height: height,
		rows:   rows,
		color:  core.Black,
		tool:   ToolPaintbrush,
	}
}

// Width returns the grid width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the grid height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// Pixels returns the grid for rendering, indexed [y][x]. Callers must not modify it
func (c *Canvas) Pixels() [][]core.Pixel {
	return c.rows
}

// At returns the pixel at (x, y), false when out of bounds
func (c *Canvas) At(x, y int) (core.Pixel, bool) {
	if !c.inBounds(x, y) {
		return core.Pixel{}, false
	}
	return c.rows[y][x], true
}

// Tool returns the active tool
func (c *Canvas) Tool() Tool {
	return c.tool
}

// SetTool replaces the active tool
func (c *Canvas) SetTool(t Tool) {
	c.tool = t
}

// Color returns the current drawing color
func (c *Canvas) Color() core.Pixel {
	return c.color
}

// SetColor replaces the drawing color; non-opaque values are accepted
func (c *Canvas) SetColor(p core.Pixel) {
	c.color = p
}

// InteractWithPixel applies the active tool at (x, y)
// Out-of-bounds coordinates are ignored for every tool
// Returns the number of pixels whose value changed
func (c *Canvas) InteractWithPixel(x, y int) int {
	if !c.inBounds(x, y) {
		return 0
	}

	switch c.tool {
	case ToolBucket:
		return c.floodFill(x, y)
	default:
		return c.paint(x, y)
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) paint(x, y int) int {
	if c.rows[y][x] == c.color {
		return 0
	}
	c.rows[y][x] = c.color
	return 1
}
