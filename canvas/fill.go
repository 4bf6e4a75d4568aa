package canvas

import "github.com/lixenwraith/termpaint/core"

// neighbors are the four axis-aligned offsets: up, down, left, right
var neighbors = [4]core.Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// maxRetainedStack caps the work stack capacity kept on the canvas between fills
const maxRetainedStack = 4096

// floodFill recolors the 4-connected region of cells sharing the seed's color
// Cells are recolored as they are pushed, so each is pushed at most once and the
// color comparison doubles as the visited marker
func (c *Canvas) floodFill(x, y int) int {
	target := c.rows[y][x]
	if target == c.color {
		return 0
	}

	c.rows[y][x] = c.color
	stack := append(c.stack[:0], core.Point{X: x, Y: y})
	filled := 1

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range neighbors {
			n := p.Add(d)
			if !c.inBounds(n.X, n.Y) || c.rows[n.Y][n.X] != target {
				continue
			}
			c.rows[n.Y][n.X] = c.color
			filled++
			stack = append(stack, n)
		}
	}

	if cap(stack) > maxRetainedStack {
		stack = nil
	}
	c.stack = stack[:0]
	return filled
}
