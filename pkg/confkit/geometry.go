package confkit

import "github.com/BrandonKowalski/confkit/pkg/confkit/internal"

// Point is a position in screen pixels.
type Point struct {
	X, Y int32
}

// Rect is an axis-aligned rectangle in screen pixels, laid out like sdl.Rect.
type Rect struct {
	X, Y, W, H int32
}

func (r Rect) Right() int32   { return r.X + r.W }
func (r Rect) Bottom() int32  { return r.Y + r.H }
func (r Rect) CenterX() int32 { return r.X + r.W/2 }
func (r Rect) CenterY() int32 { return r.Y + r.H/2 }
func (r Rect) Empty() bool    { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether r and o share at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlap of r and o, or an empty rectangle at r's origin.
func (r Rect) Intersect(o Rect) Rect {
	x, y := max(r.X, o.X), max(r.Y, o.Y)
	right, bottom := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Inset shrinks r by p on each side.
func (r Rect) Inset(p internal.Padding) Rect {
	return Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: max(0, r.W-p.Horizontal()),
		H: max(0, r.H-p.Vertical()),
	}
}

// Grow expands r by n pixels on every side.
func (r Rect) Grow(n int32) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}
