// SPDX-License-Identifier: Unlicense OR MIT

// Package axis maps orientation-relative layout axes onto physical ones.
//
// Layout code reasons in (U, V) coordinates: U runs along the flow of
// children and V across it. For a Horizontal orientation U is X and V is Y;
// for a Vertical orientation U is Y and V is X. All conversion between the
// two systems goes through Orientation.Convert, so the two orientations
// share one code path.
package axis

import "math"

// Orientation is the Horizontal or Vertical flow direction.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Point is a physical pair, used both for positions and sizes.
type Point struct {
	X, Y float64
}

// Coord is an orientation-relative pair. U is the flow axis, V the cross
// axis.
type Coord struct {
	U, V float64
}

// Bounds is a physical rectangle.
type Bounds struct {
	X, Y, Width, Height float64
}

// Rect is a rectangle in orientation-relative coordinates.
type Rect struct {
	Orientation Orientation
	Position    Coord
	Size        Coord
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Convert swaps the components of p for Vertical and returns it unchanged
// for Horizontal. Convert is its own inverse.
func (o Orientation) Convert(p Point) Point {
	if o == Vertical {
		return Point{X: p.Y, Y: p.X}
	}
	return p
}

// Coord maps a physical pair to (U, V).
func (o Orientation) Coord(p Point) Coord {
	p = o.Convert(p)
	return Coord{U: p.X, V: p.Y}
}

// Point maps (U, V) back to a physical pair.
func (o Orientation) Point(c Coord) Point {
	return o.Convert(Point{X: c.U, Y: c.V})
}

// Size maps a physical width and height to (U, V).
func (o Orientation) Size(width, height float64) Coord {
	return o.Coord(Point{X: width, Y: height})
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

// Add returns the component-wise sum c+d.
func (c Coord) Add(d Coord) Coord {
	return Coord{U: c.U + d.U, V: c.V + d.V}
}

// Sub returns the component-wise difference c-d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{U: c.U - d.U, V: c.V - d.V}
}

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Max returns the bottom right corner of b.
func (b Bounds) Max() Point {
	return Point{X: b.X + b.Width, Y: b.Y + b.Height}
}

// RectFromBounds returns the Rect covering the physical rectangle at (x, y)
// with the given width and height.
func RectFromBounds(o Orientation, x, y, width, height float64) Rect {
	return Rect{
		Orientation: o,
		Position:    o.Coord(Point{X: x, Y: y}),
		Size:        o.Size(width, height),
	}
}

// RectFromCorners returns the Rect spanned by two opposite corners, in any
// order.
func RectFromCorners(o Orientation, a, b Point) Rect {
	lo := Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
	hi := Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
	return RectFromBounds(o, lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y)
}

// High returns the far corner, Position+Size.
func (r Rect) High() Coord {
	return r.Position.Add(r.Size)
}

// Bounds converts r to physical coordinates.
func (r Rect) Bounds() Bounds {
	p := r.Orientation.Point(r.Position)
	s := r.Orientation.Point(r.Size)
	return Bounds{X: p.X, Y: p.Y, Width: s.X, Height: s.Y}
}

// Unbounded reports whether v stands for an unconstrained extent.
func Unbounded(v float64) bool {
	return math.IsInf(v, 1) || math.IsNaN(v)
}
