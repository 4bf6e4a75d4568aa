package dialog

import "github.com/lixenwraith/termpaint/core"

// BoundKind tags which control a bound belongs to
type BoundKind uint8

const (
	BoundToolbar BoundKind = iota
	BoundPalette
)

// String returns human-readable bound name
func (k BoundKind) String() string {
	switch k {
	case BoundToolbar:
		return "Toolbar"
	case BoundPalette:
		return "Palette"
	default:
		return "Unknown"
	}
}

// Bound is a half-open rectangle in terminal cells: [Left, Right) x [Top, Bottom)
// Adjacent bounds sharing an edge never both claim the edge coordinate
type Bound struct {
	Kind   BoundKind
	Top    int
	Left   int
	Bottom int
	Right  int
}

// NewBound creates a bound from its top-left corner and size
func NewBound(kind BoundKind, pos core.Point, width, height int) Bound {
	return Bound{
		Kind:   kind,
		Top:    pos.Y,
		Left:   pos.X,
		Bottom: pos.Y + height,
		Right:  pos.X + width,
	}
}

// Contains reports whether p lies inside the bound
func (b Bound) Contains(p core.Point) bool {
	return p.X >= b.Left && p.X < b.Right && p.Y >= b.Top && p.Y < b.Bottom
}

// Overlaps reports whether two bounds share at least one cell
func (b Bound) Overlaps(o Bound) bool {
	return b.Left < o.Right && o.Left < b.Right && b.Top < o.Bottom && o.Top < b.Bottom
}

// Origin returns the top-left cell
func (b Bound) Origin() core.Point {
	return core.Point{X: b.Left, Y: b.Top}
}

// Width returns the bound width in cells
func (b Bound) Width() int {
	return b.Right - b.Left
}

// Height returns the bound height in cells
func (b Bound) Height() int {
	return b.Bottom - b.Top
}
