package core

// Point represents a 2D coordinate, X is the column and Y the row
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size holds terminal dimensions in cells
type Size struct {
	Rows, Columns int
}
