package core

import "math"

// Viewport maps world space onto a pixel or cell grid of the given size.
// World x=-1 is the left edge, world y=1 is the top edge.
type Viewport struct {
	W, H int
}

// NewViewport creates a viewport for a w x h target.
func NewViewport(w, h int) Viewport {
	return Viewport{W: w, H: h}
}

// X converts a world x-coordinate to a target column.
func (v Viewport) X(x float64) float64 {
	return (x + 1) / 2 * float64(v.W)
}

// Y converts a world y-coordinate to a target row.
func (v Viewport) Y(y float64) float64 {
	return (1 - y) / 2 * float64(v.H)
}

// Bounds returns the target-space rectangle covered by b as
// top-left corner and size, without rounding.
func (v Viewport) Bounds(b Box) (x, y, w, h float64) {
	x = v.X(b.Left())
	y = v.Y(b.Top())
	return x, y, v.X(b.Right()) - x, v.Y(b.Bottom()) - y
}

// Cells returns the grid cells covered by b. The result is always at
// least one cell wide and tall so small boxes stay visible.
func (v Viewport) Cells(b Box) Rect {
	x0 := int(math.Floor(v.X(b.Left())))
	x1 := int(math.Ceil(v.X(b.Right())))
	y0 := int(math.Floor(v.Y(b.Top())))
	y1 := int(math.Ceil(v.Y(b.Bottom())))
	return NewRect(x0, y0, Max(1, x1-x0), Max(1, y1-y0))
}
