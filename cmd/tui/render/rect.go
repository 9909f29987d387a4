// Package render holds the screen geometry shared by the layout and the
// components.
package render

import "github.com/jesseduffield/lazycore/pkg/boxlayout"

// Rect is a screen region in cells. X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// FromDimensions converts an inclusive boxlayout window to a Rect.
func FromDimensions(d boxlayout.Dimensions) Rect {
	return NewRect(d.X0, d.Y0, d.X1-d.X0+1, d.Y1-d.Y0+1)
}

// IsEmpty reports whether the rect has no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column past the rect.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inset shrinks the rect by h columns on each side and v rows top and bottom.
func (r Rect) Inset(h, v int) Rect {
	return NewRect(r.X+h, r.Y+v, r.Width-2*h, r.Height-2*v)
}

// Centered returns a width x height rect centered in r, clamped so that it
// keeps a one-cell margin inside r.
func (r Rect) Centered(width, height int) Rect {
	width = min(width, max(r.Width-2, 0))
	height = min(height, max(r.Height-2, 0))
	x := r.X + max(r.Width-width, 0)/2
	y := r.Y + max(r.Height-height, 0)/2
	return NewRect(x, y, width, height)
}
