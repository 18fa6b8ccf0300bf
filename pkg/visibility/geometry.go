package visibility

import "math"

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlap of r and o, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Ratio is the fraction of target covered by root, in [0, 1].
// A zero-area target counts as fully covered when it lies inside root.
func Ratio(target, root Rect) float64 {
	if target.Empty() {
		if target.X >= root.X && target.X <= root.X+root.Width &&
			target.Y >= root.Y && target.Y <= root.Y+root.Height {
			return 1
		}
		return 0
	}
	return target.Intersect(root).Area() / target.Area()
}

// Box is a fixed-bounds Element.
type Box Rect

func (b Box) Bounds() Rect { return Rect(b) }
