package element

import "github.com/dshills/sortlist/internal/pointer"

// Rect is a rectangle in screen cells.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the position falls inside the rectangle.
func (r Rect) Contains(p pointer.Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// MidY returns the vertical midpoint row of the rectangle.
func (r Rect) MidY() int {
	return r.Y + r.H/2
}
